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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// MinInteriorAngle is the smallest interior angle, in radians, which an
// outline may have.
const MinInteriorAngle = 5 * math.Pi / 180

// cross returns the z component of the cross product a × b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// signedArea returns twice the signed area of a polygon. With the y axis
// pointing down, positive means clockwise on screen.
func signedArea(vertices []vec.Vec2) float64 {
	n := len(vertices)
	var area float64
	for i := range n {
		j := (i + 1) % n
		area += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	return area
}

func orientationOf(vertices []vec.Vec2) Orientation {
	a := signedArea(vertices)
	switch {
	case a > areaThreshold:
		return Clockwise
	case a < -areaThreshold:
		return CounterClockwise
	default:
		return Degenerate
	}
}

// windingSign returns +1 for clockwise and -1 for counter-clockwise
// polygons.
func windingSign(vertices []vec.Vec2) float64 {
	if signedArea(vertices) < 0 {
		return -1
	}
	return 1
}

// bounds returns the bounding box of a non-empty point set.
func bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// interiorAngle returns the interior angle at vertex i of a polygon with
// winding sign s. Reflex corners have angles above π.
func interiorAngle(vertices []vec.Vec2, i int, s float64) float64 {
	n := len(vertices)
	prev := vertices[(i+n-1)%n]
	cur := vertices[i]
	next := vertices[(i+1)%n]
	e1 := cur.Sub(prev)
	e2 := next.Sub(cur)
	// signed turn angle, positive for convex corners
	turn := math.Atan2(s*cross(e1, e2), e1.Dot(e2))
	return math.Pi - turn
}

// InteriorAngles returns the interior angle, in radians, at each vertex
// of a simple polygon.
func InteriorAngles(vertices []vec.Vec2) []float64 {
	s := windingSign(vertices)
	res := make([]float64, len(vertices))
	for i := range vertices {
		res[i] = interiorAngle(vertices, i, s)
	}
	return res
}

// minAngle returns the smallest interior angle of a polygon.
func minAngle(vertices []vec.Vec2) float64 {
	s := windingSign(vertices)
	m := math.Inf(1)
	for i := range vertices {
		m = min(m, interiorAngle(vertices, i, s))
	}
	return m
}

// segmentsIntersect reports whether the closed segments ab and cd share a
// point.
func segmentsIntersect(a, b, c, d vec.Vec2) bool {
	d1 := cross(b.Sub(a), c.Sub(a))
	d2 := cross(b.Sub(a), d.Sub(a))
	d3 := cross(d.Sub(c), a.Sub(c))
	d4 := cross(d.Sub(c), b.Sub(c))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// collinear and touching cases
	return (d1 == 0 && onSegment(a, b, c)) ||
		(d2 == 0 && onSegment(a, b, d)) ||
		(d3 == 0 && onSegment(c, d, a)) ||
		(d4 == 0 && onSegment(c, d, b))
}

// onSegment reports whether p, known to be collinear with ab, lies
// within the bounding box of ab.
func onSegment(a, b, p vec.Vec2) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}

// IsSimple reports whether a closed polygon is simple: it has at least
// three vertices, no zero-length edges, and no two non-adjacent edges
// intersect.
func IsSimple(vertices []vec.Vec2) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	for i := range n {
		if vertices[(i+1)%n].Sub(vertices[i]).Length() < zeroLengthThreshold {
			return false
		}
	}
	for i := range n {
		a, b := vertices[i], vertices[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share a vertex
			}
			c, d := vertices[j], vertices[(j+1)%n]
			if segmentsIntersect(a, b, c, d) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether a polygon satisfies the outline invariants:
// it is simple and no interior angle is below MinInteriorAngle.
func IsValid(vertices []vec.Vec2) bool {
	return IsSimple(vertices) && minAngle(vertices) >= MinInteriorAngle-angleEpsilon
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := max(0, min(1, p.Sub(a).Dot(ab)/l2))
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// distToPolygon returns the distance from p to the boundary of a closed
// polygon.
func distToPolygon(p vec.Vec2, vertices []vec.Vec2) float64 {
	n := len(vertices)
	d := math.Inf(1)
	for i := range n {
		d = min(d, distToSegment(p, vertices[i], vertices[(i+1)%n]))
	}
	return d
}

// containsPoint reports whether p lies inside a closed polygon, using the
// even-odd rule.
func containsPoint(vertices []vec.Vec2, p vec.Vec2) bool {
	inside := false
	n := len(vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := vertices[i], vertices[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum edge length, in millimetres.
	// Shorter edges are treated as degenerate.
	zeroLengthThreshold = 1e-9

	// samePointThreshold is the distance below which two consecutive
	// flattened points are merged.
	samePointThreshold = 1e-9

	// areaThreshold is the smallest (doubled) area for which an
	// orientation is reported.
	areaThreshold = 1e-12

	// collinearityThreshold is the sine of the turn angle below which a
	// corner counts as straight.
	collinearityThreshold = 1e-6

	// angleEpsilon absorbs rounding errors in angle comparisons.
	angleEpsilon = 1e-9
)
