// seehuhn.de/go/outline - card outline geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package outline

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// flattenArc calls emit for points along an elliptical arc, ending with
// the arc's end point. The start point is not emitted.
func flattenArc(s Segment, tol float64, emit func(vec.Vec2)) {
	r := max(s.RX, s.RY)
	if r < tol {
		// arc too small to matter
		emit(s.End)
		return
	}

	// For a chord subtending angle θ on a circle of radius r, the maximum
	// deviation (sagitta) is r*(1 - cos(θ/2)). For this to equal tol:
	//   θ = 2*acos(1 - tol/r)
	angleStep := 2 * math.Acos(1-tol/r)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(s.Sweep)/angleStep)), 1)

	dt := s.Sweep / float64(n)
	for i := 1; i < n; i++ {
		emit(ellipsePoint(s.Center, s.RX, s.RY, s.Theta0+float64(i)*dt))
	}
	emit(s.End)
}

// flattenCubic calls emit for points along a cubic Bézier curve, ending
// with p3. The start point p0 is not emitted.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * tol))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i < n; i++ {
		emit(cubicPoint(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	emit(p3)
}

// cubicPoint evaluates a cubic Bézier curve at t.
func cubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
}

// quadPoint evaluates a quadratic Bézier curve at t.
func quadPoint(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

// dedupeClosed removes consecutive duplicate points from a closed
// polygon, including a final point which repeats the first.
func dedupeClosed(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() > samePointThreshold {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[len(out)-1].Sub(out[0]).Length() <= samePointThreshold {
		out = out[:len(out)-1]
	}
	return out
}
