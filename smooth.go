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

const (
	// smoothMinSizeMm is the size below which Smooth returns the exact
	// elliptical arc instead of fitting a spline.
	smoothMinSizeMm = 4.0

	// smoothSamplesPerMm is the sampling density of the arc profile.
	smoothSamplesPerMm = 2.0

	// Bounds on the number of profile samples.
	smoothMinSamples = 32
	smoothMaxSamples = 512

	// smoothMaxFilletFraction limits base fillets to this fraction of
	// min(W/2, H).
	smoothMaxFilletFraction = 0.45

	// Bounds on the spline tension.
	minTension = 0.55
	maxTension = 1.0

	// tensionFalloff controls how fast the tension drops as the arc's
	// aspect ratio moves away from a circle.
	tensionFalloff = 0.25

	// searchIterations is the number of bisection steps used by
	// numerical searches.
	searchIterations = 48
)

// halfProfile describes the curved part of a half-circle type outline:
// an elliptical arc over the top, vertical walls and a base at y=base.
type halfProfile struct {
	center vec.Vec2 // centre of the arc
	rx, ry float64
	base   float64 // y coordinate of the base line
}

func (h halfProfile) left() float64  { return h.center.X - h.rx }
func (h halfProfile) right() float64 { return h.center.X + h.rx }

// profileOf extracts the profile from a half-circle or extended
// half-circle outline. The second return value is false if o does not
// have the expected form.
func profileOf(o *Outline) (halfProfile, bool) {
	for _, s := range o.Segments {
		if s.Kind == SegmentArc {
			return halfProfile{center: s.Center, rx: s.RX, ry: s.RY, base: o.Start.Y}, true
		}
	}
	return halfProfile{}, false
}

// samples returns points along the profile from the bottom-left corner,
// up the left wall, over the arc and down to the bottom-right corner.
func (h halfProfile) samples() []vec.Vec2 {
	wall := h.base - h.center.Y
	arcLen := math.Pi * math.Sqrt((h.rx*h.rx+h.ry*h.ry)/2)
	total := arcLen + 2*wall
	n := int(math.Ceil(total * smoothSamplesPerMm))
	n = max(smoothMinSamples, min(n, smoothMaxSamples))

	var pts []vec.Vec2
	nWall := int(math.Round(float64(n) * wall / total))
	nArc := max(n-2*nWall, smoothMinSamples/4)
	for i := range nWall {
		t := float64(i) / float64(nWall)
		pts = append(pts, vec.Vec2{X: h.left(), Y: h.base - t*wall})
	}
	for i := range nArc + 1 {
		theta := math.Pi + math.Pi*float64(i)/float64(nArc)
		pts = append(pts, ellipsePoint(h.center, h.rx, h.ry, theta))
	}
	for i := 1; i <= nWall; i++ {
		t := float64(i) / float64(nWall)
		pts = append(pts, vec.Vec2{X: h.right(), Y: h.center.Y + t*wall})
	}
	return pts
}

// tension returns the spline tension for the profile. Circles get full
// Catmull-Rom tension; flat or tall arcs get less.
func (h halfProfile) tension() float64 {
	aspect := h.ry / h.rx
	t := 1 - tensionFalloff*math.Abs(math.Log(aspect))
	return max(minTension, min(t, maxTension))
}

// Smooth returns a smoothed copy of a half-circle or extended half-circle
// outline. The curved profile is sampled, resampled to uniform arc length
// and refitted with a centripetal Catmull-Rom spline. If r > 0, the two
// corners where the profile meets the base are filleted.
//
// Outlines smaller than a few millimetres keep their exact arc and are
// not filleted. Outlines of other archetypes are returned unchanged.
func Smooth(o *Outline, r float64) *Outline {
	h, ok := profileOf(o)
	if !ok || (o.Archetype != HalfCircle && o.Archetype != ExtendedHalfCircle) {
		return o.Clone()
	}
	res := &Outline{
		Archetype: o.Archetype,
		Kind:      KindRounded,
	}

	height := h.base - (h.center.Y - h.ry)
	if min(2*h.rx, height) < smoothMinSizeMm {
		c := o.Clone()
		c.Kind = KindRounded
		return c
	}

	profile := h.samples()
	first, last := profile[0], profile[len(profile)-1]
	var fl, fr *baseFillet
	if r > 0 {
		rho := min(r, smoothMaxFilletFraction*min(h.rx, height))
		if rho < r {
			Logger().Debug("base fillet clamped", "requested", r, "radius", rho)
		}
		fl = findBaseFillet(profile, h, rho, true)
		fr = findBaseFillet(profile, h, rho, false)
		if fl == nil || fr == nil {
			Logger().Debug("base fillet search failed, corners left sharp")
			fl, fr = nil, nil
		}
	}

	// trim the profile to the tangent points
	lo, hi := 0, len(profile)-1
	if fl != nil {
		lo = fl.index + 1
		first = fl.tangent
		hi = fr.index
		last = fr.tangent
	}
	trimmed := []vec.Vec2{first}
	for _, p := range profile[lo : hi+1] {
		if p.Sub(trimmed[len(trimmed)-1]).Length() > samePointThreshold {
			trimmed = append(trimmed, p)
		}
	}
	if last.Sub(trimmed[len(trimmed)-1]).Length() > samePointThreshold {
		trimmed = append(trimmed, last)
	}

	even := resample(trimmed, len(trimmed))
	tension := h.tension()

	if fl != nil {
		res.Start = fl.base
		res.Segments = append(res.Segments, fl.arc(fl.base, fl.tangent))
	} else {
		res.Start = even[0]
	}
	res.Segments = appendCatmullRom(res.Segments, even, tension)
	if fr != nil {
		res.Segments = append(res.Segments, fr.arc(fr.tangent, fr.base))
	}
	res.Segments = append(res.Segments, Line(res.Start))

	leftCorner := vec.Vec2{X: h.left(), Y: h.base}
	rightCorner := vec.Vec2{X: h.right(), Y: h.base}
	res.Corners = []Corner{{Vertex: leftCorner, Convex: true}, {Vertex: rightCorner, Convex: true}}
	if fl != nil {
		res.Corners[0].Radius = fl.radius
		res.Corners[1].Radius = fr.radius
	}
	return res
}

// baseFillet is a fillet between the base line and the profile.
type baseFillet struct {
	center  vec.Vec2
	radius  float64
	base    vec.Vec2 // tangent point on the base line
	tangent vec.Vec2 // tangent point on the profile
	index   int      // the tangent point lies on profile[index]→profile[index+1]
}

// arc returns the fillet arc from a to b, turning clockwise on screen.
func (f *baseFillet) arc(a, b vec.Vec2) Segment {
	va, vb := a.Sub(f.center), b.Sub(f.center)
	theta0 := math.Atan2(va.Y, va.X)
	sweep := math.Atan2(vb.Y, vb.X) - theta0
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	for sweep > 2*math.Pi {
		sweep -= 2 * math.Pi
	}
	s := Arc(f.center, f.radius, f.radius, theta0, sweep)
	s.End = b
	return s
}

// findBaseFillet finds the circle of radius rho which touches the base
// line from above and the profile from the inside, near the left or
// right end of the base. The centre's x coordinate is found by bisection
// on the distance from the centre to the profile polyline.
//
// For a circle of radius R centred on the base line the result agrees
// with the closed form cx = R - sqrt((R-rho)² - rho²) measured from the
// left edge.
func findBaseFillet(profile []vec.Vec2, h halfProfile, rho float64, left bool) *baseFillet {
	cy := h.base - rho
	dist := func(x float64) float64 {
		d, _, _ := closestOnPolyline(vec.Vec2{X: x, Y: cy}, profile)
		return d
	}

	// The centre lies between the profile (distance 0) and the middle.
	outer, inner := h.left(), h.center.X
	if !left {
		outer = h.right()
	}
	if dist(inner) < rho {
		return nil
	}
	for range searchIterations {
		mid := (outer + inner) / 2
		if dist(mid) < rho {
			outer = mid
		} else {
			inner = mid
		}
	}

	c := vec.Vec2{X: inner, Y: cy}
	_, p, idx := closestOnPolyline(c, profile)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return nil
	}
	return &baseFillet{
		center:  c,
		radius:  rho,
		base:    vec.Vec2{X: c.X, Y: h.base},
		tangent: p,
		index:   idx,
	}
}

// closestOnPolyline returns the distance from p to an open polyline, the
// closest point, and the index of the segment containing it.
func closestOnPolyline(p vec.Vec2, pts []vec.Vec2) (float64, vec.Vec2, int) {
	best := math.Inf(1)
	var bestPt vec.Vec2
	bestIdx := 0
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		ab := b.Sub(a)
		l2 := ab.Dot(ab)
		t := 0.0
		if l2 > 0 {
			t = max(0, min(1, p.Sub(a).Dot(ab)/l2))
		}
		q := a.Add(ab.Mul(t))
		if d := p.Sub(q).Length(); d < best {
			best, bestPt, bestIdx = d, q, i
		}
	}
	return best, bestPt, bestIdx
}

// resample returns n points spaced at equal arc length along an open
// polyline. The end points are kept.
func resample(pts []vec.Vec2, n int) []vec.Vec2 {
	if len(pts) < 2 || n < 2 {
		return append([]vec.Vec2(nil), pts...)
	}
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i].Sub(pts[i-1]).Length()
	}
	total := cum[len(cum)-1]

	res := make([]vec.Vec2, 0, n)
	res = append(res, pts[0])
	j := 0
	for i := 1; i < n-1; i++ {
		target := total * float64(i) / float64(n-1)
		for j < len(pts)-2 && cum[j+1] < target {
			j++
		}
		seg := cum[j+1] - cum[j]
		t := 0.0
		if seg > 0 {
			t = (target - cum[j]) / seg
		}
		res = append(res, pts[j].Add(pts[j+1].Sub(pts[j]).Mul(t)))
	}
	return append(res, pts[len(pts)-1])
}

// appendCatmullRom appends cubic Bézier segments for an open centripetal
// Catmull-Rom spline through pts, starting at pts[0]. Tension 1 gives the
// standard spline; smaller values pull the control points towards the
// curve points. The end tangents use reflected phantom points.
func appendCatmullRom(segs []Segment, pts []vec.Vec2, tension float64) []Segment {
	n := len(pts)
	if n < 3 {
		for _, p := range pts[1:] {
			segs = append(segs, Line(p))
		}
		return segs
	}
	at := func(i int) vec.Vec2 {
		switch {
		case i < 0:
			return pts[0].Mul(2).Sub(pts[1])
		case i >= n:
			return pts[n-1].Mul(2).Sub(pts[n-2])
		default:
			return pts[i]
		}
	}

	for i := 0; i+1 < n; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)

		// centripetal parametrisation: knot intervals |Δp|^½
		d1 := math.Sqrt(p1.Sub(p0).Length())
		d2 := math.Sqrt(p2.Sub(p1).Length())
		d3 := math.Sqrt(p3.Sub(p2).Length())
		if d2 == 0 {
			continue
		}
		if d1 == 0 {
			d1 = d2
		}
		if d3 == 0 {
			d3 = d2
		}

		b1 := p2.Mul(d1 * d1).Sub(p0.Mul(d2 * d2)).
			Add(p1.Mul(2*d1*d1 + 3*d1*d2 + d2*d2)).
			Mul(1 / (3 * d1 * (d1 + d2)))
		b2 := p1.Mul(d3 * d3).Sub(p3.Mul(d2 * d2)).
			Add(p2.Mul(2*d3*d3 + 3*d3*d2 + d2*d2)).
			Mul(1 / (3 * d3 * (d3 + d2)))

		c1 := p1.Add(b1.Sub(p1).Mul(tension))
		c2 := p2.Add(b2.Sub(p2).Mul(tension))
		segs = append(segs, Cubic(c1, c2, p2))
	}
	return segs
}
