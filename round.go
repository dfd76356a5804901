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

// PxPerMm is the number of device pixels per millimetre at 96 dpi.
const PxPerMm = 96 / 25.4

// FilletMode selects how corner fillets are represented.
type FilletMode int

const (
	// FilletAuto uses exact arcs, except on shapes which are small on
	// screen, where fillets are sampled quadratic curves. The choice is
	// made once per outline.
	FilletAuto FilletMode = iota

	// FilletArc always uses exact circular arcs.
	FilletArc

	// FilletQuad always samples a quadratic Bézier curve into straight
	// segments.
	FilletQuad
)

const (
	// cuspCosineThreshold is the cosine of the interior angle above which
	// a corner is considered a cusp and left sharp.
	cuspCosineThreshold = 0.9999

	// arcThresholdPx is the bounding box diagonal, in device pixels,
	// from which FilletAuto uses exact arcs.
	arcThresholdPx = 40.0

	// quadSegmentPx is the approximate length, in device pixels, of one
	// straight piece of a sampled quadratic fillet with the largest
	// radius its corner admits.
	quadSegmentPx = 3.0

	// maxQuadSegments bounds the number of pieces of a sampled fillet.
	maxQuadSegments = 64

	// simpleTolerance is the flattening tolerance used to check that a
	// rounded polygon is still simple, in millimetres.
	simpleTolerance = 0.01

	// sealSeamRadiusMm is the fillet radius from which renderers are
	// asked to seal the boundary of angular archetypes.
	sealSeamRadiusMm = 3.0

	// pentagonSideWeight scales the radius at the two corners where an
	// adaptive triangle was clipped by the sides of its box. These
	// corners have obtuse angles and look under-rounded otherwise.
	pentagonSideWeight = 1.5
)

// Round returns a copy of o with the given corner radius applied. It
// dispatches on the archetype:
//   - polygonal outlines fillet the convex corners of Base;
//   - half-circle shapes are passed to Smooth;
//   - the lock rounds only the corners between straight edges;
//   - circles have no corners and are returned unchanged.
//
// A radius of zero or less returns an unchanged copy of o.
func Round(o *Outline, r float64) *Outline {
	if r <= 0 || math.IsNaN(r) {
		return o.Clone()
	}

	switch {
	case o.Archetype == HalfCircle || o.Archetype == ExtendedHalfCircle:
		return Smooth(o, r)
	case o.Ellipse != nil:
		c := o.Clone()
		c.Kind = KindRounded
		return c
	case len(o.Base) >= 3:
		radii := make([]float64, len(o.Base))
		for i := range radii {
			radii[i] = r
		}
		if o.Archetype == AdaptiveTriangle && !o.Full && o.Kind != KindCustomEdited {
			weightPentagon(o.Base, radii)
		}
		res := RoundPolygonRadii(o.Base, radii, FilletAuto)
		res.Archetype = o.Archetype
		res.Full = o.Full
		if o.Kind == KindCustomEdited {
			res.Kind = KindCustomEdited
		}
		res.Marks = o.Clone().Marks
		res.SealSeams = needsSeal(o.Archetype, res.Corners)
		return res
	default:
		res := roundSegments(o, func(int) float64 { return r }, FilletAuto)
		res.Kind = KindRounded
		return res
	}
}

// RoundPolygon returns a closed outline along the polygon pts, with every
// convex corner replaced by a fillet of radius r. The radius is clamped
// per corner so that neither the radius nor the distance from the
// corner to the fillet's tangent points exceeds half the shorter
// adjacent edge. Concave and degenerate corners are left sharp.
func RoundPolygon(pts []vec.Vec2, r float64, mode FilletMode) *Outline {
	radii := make([]float64, len(pts))
	for i := range radii {
		radii[i] = r
	}
	return RoundPolygonRadii(pts, radii, mode)
}

// RoundPolygonRadii is like RoundPolygon, but uses the requested radius
// radii[i] at vertex pts[i]. Missing radii count as zero.
//
// If a fillet would cut through an edge further along a simple polygon,
// for example at a convex corner next to a deep notch, the radius at
// that corner is reduced until the rounded outline is simple again.
// Polygons with fewer than three vertices are returned unrounded.
func RoundPolygonRadii(pts []vec.Vec2, radii []float64, mode FilletMode) *Outline {
	base := append([]vec.Vec2(nil), pts...)
	n := len(base)
	if n < 3 {
		if n == 0 {
			return &Outline{Kind: KindRaw}
		}
		o := polygonOutline(0, KindRaw, base)
		o.Base = base
		return o
	}

	r := make([]float64, n)
	copy(r, radii)
	mode = filletMode(mode, base)

	res := roundBase(base, r, mode)
	if !IsSimple(base) || IsSimple(res.Flatten(simpleTolerance)) {
		return res
	}

	s := windingSign(base)
	for i, c := range res.Corners {
		if c.Radius == 0 || filletClear(base, i, c.Radius, s, mode) {
			continue
		}
		lo, hi := 0.0, c.Radius
		for range bisectionSteps {
			mid := (lo + hi) / 2
			if filletClear(base, i, mid, s, mode) {
				lo = mid
			} else {
				hi = mid
			}
		}
		Logger().Debug("fillet limited by nearby edge",
			"x", c.Vertex.X, "y", c.Vertex.Y, "requested", r[i], "radius", lo)
		r[i] = lo
	}
	res = roundBase(base, r, mode)
	if IsSimple(res.Flatten(simpleTolerance)) {
		return res
	}

	// fillets of different corners overlap; shrink all of them together
	scaled := make([]float64, n)
	scaleTo := func(f float64) *Outline {
		for i := range r {
			scaled[i] = r[i] * f
		}
		return roundBase(base, scaled, mode)
	}
	lo, hi := 0.0, 1.0
	for range bisectionSteps {
		mid := (lo + hi) / 2
		if IsSimple(scaleTo(mid).Flatten(simpleTolerance)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	Logger().Debug("fillets scaled down", "factor", lo)
	return scaleTo(lo)
}

// roundBase fillets the corners of a closed polygon with the given
// radii, without any checks between non-adjacent corners.
func roundBase(base []vec.Vec2, radii []float64, mode FilletMode) *Outline {
	poly := polygonOutline(0, KindRounded, base)
	n := len(base)

	// Segment k of poly ends at base vertex (k+1) mod n.
	res := roundSegments(poly, func(k int) float64 {
		return radii[(k+1)%n]
	}, mode)

	corners := make([]Corner, n)
	for k, c := range res.Corners {
		corners[(k+1)%n] = c
	}
	res.Corners = corners
	res.Base = base
	res.Kind = KindRounded
	return res
}

// roundSegments fillets every corner where two straight segments of o
// meet. radius(k) gives the requested radius at the end of segment k.
// The returned outline has one Corners entry per segment junction.
func roundSegments(o *Outline, radius func(k int) float64, mode FilletMode) *Outline {
	n := len(o.Segments)
	res := o.Clone()
	res.Segments = res.Segments[:0]
	res.Corners = make([]Corner, n)
	if n < 2 {
		return res
	}

	flat := o.Flatten(boundsTolerance)
	s := windingSign(flat)
	mode = filletMode(mode, flat)

	starts := make([]vec.Vec2, n)
	starts[0] = o.Start
	for i := 1; i < n; i++ {
		starts[i] = o.Segments[i-1].End
	}

	fillets := make([]*fillet, n)
	for k, seg := range o.Segments {
		next := o.Segments[(k+1)%n]
		res.Corners[k].Vertex = seg.End
		if seg.Kind != SegmentLine || next.Kind != SegmentLine {
			continue
		}
		f, convex := computeFillet(starts[k], seg.End, next.End, radius(k), s)
		res.Corners[k].Convex = convex
		if f != nil {
			fillets[k] = f
			res.Corners[k].Radius = f.radius
		}
	}

	if f := fillets[n-1]; f != nil {
		res.Start = f.t2
	}
	cur := res.Start
	for k, seg := range o.Segments {
		if seg.Kind == SegmentLine {
			end := seg.End
			if f := fillets[k]; f != nil {
				end = f.t1
			}
			if end.Sub(cur).Length() > zeroLengthThreshold {
				res.Segments = append(res.Segments, Line(end))
			}
			cur = end
		} else {
			res.Segments = append(res.Segments, seg)
			cur = seg.End
		}
		if f := fillets[k]; f != nil {
			res.Segments = f.appendTo(res.Segments, mode)
			cur = f.t2
		}
	}
	return res
}

// fillet is a circular arc which replaces a polygon corner.
type fillet struct {
	corner  vec.Vec2 // the original vertex
	t1, t2  vec.Vec2 // tangent points on the incoming and outgoing edge
	center  vec.Vec2
	radius  float64
	theta0  float64 // angle of t1 seen from center
	sweep   float64 // signed, with the sign of the polygon's winding
	arcSpan float64 // unsigned turning angle of the fillet

	// pieces is the number of straight pieces of a sampled quadratic
	// fillet. It depends on the corner but not on the radius, so that
	// the outline changes continuously with the radius.
	pieces int
}

// computeFillet computes the fillet at corner c between the edges p→c and
// c→n, for a polygon with winding sign s. It returns nil if the corner is
// concave, degenerate or r is not positive. The second return value
// reports whether the corner is convex.
func computeFillet(p, c, n vec.Vec2, r, s float64) (*fillet, bool) {
	e1 := c.Sub(p)
	e2 := n.Sub(c)
	l1, l2 := e1.Length(), e2.Length()
	if l1 < zeroLengthThreshold || l2 < zeroLengthThreshold {
		return nil, false
	}
	turn := s * cross(e1, e2) / (l1 * l2) // sine of the turning angle
	convex := turn > collinearityThreshold
	if !convex || r <= 0 {
		return nil, convex
	}

	u1 := e1.Mul(-1 / l1) // from c towards p
	u2 := e2.Mul(1 / l2)  // from c towards n
	cosTheta := u1.Dot(u2)
	if cosTheta > cuspCosineThreshold {
		Logger().Debug("cusp left sharp", "x", c.X, "y", c.Y)
		return nil, convex
	}
	theta := math.Acos(max(-1, min(1, cosTheta))) // interior angle
	tanHalf := math.Tan(theta / 2)

	// The tangent distance is r/tan(θ/2). Both it and r must not exceed
	// half the shorter edge.
	maxDist := min(l1, l2) / 2
	rhoMax := min(maxDist, maxDist*tanHalf)
	rho := min(r, rhoMax)
	if rho < r {
		Logger().Debug("fillet radius clamped", "requested", r, "radius", rho)
	}
	if rho < zeroLengthThreshold {
		return nil, convex
	}
	d := rho / tanHalf

	bisector := u1.Add(u2)
	bisector = bisector.Mul(1 / bisector.Length())
	center := c.Add(bisector.Mul(rho / math.Sin(theta/2)))

	f := &fillet{
		corner:  c,
		t1:      c.Add(u1.Mul(d)),
		t2:      c.Add(u2.Mul(d)),
		center:  center,
		radius:  rho,
		arcSpan: math.Pi - theta,
	}
	pieces := math.Ceil(rhoMax * f.arcSpan * PxPerMm / quadSegmentPx)
	f.pieces = max(2, min(int(pieces), maxQuadSegments))
	v := f.t1.Sub(center)
	f.theta0 = math.Atan2(v.Y, v.X)
	f.sweep = s * f.arcSpan
	return f, convex
}

// appendTo appends the segments of the fillet, from t1 to t2. mode must
// not be FilletAuto.
func (f *fillet) appendTo(segs []Segment, mode FilletMode) []Segment {
	if mode != FilletQuad {
		a := Arc(f.center, f.radius, f.radius, f.theta0, f.sweep)
		a.End = f.t2
		return append(segs, a)
	}

	for i := 1; i < f.pieces; i++ {
		t := float64(i) / float64(f.pieces)
		segs = append(segs, Line(quadPoint(f.t1, f.corner, f.t2, t)))
	}
	return append(segs, Line(f.t2))
}

// points returns the flattened fillet, from t1 to t2.
func (f *fillet) points(mode FilletMode) []vec.Vec2 {
	pts := []vec.Vec2{f.t1}
	for _, s := range f.appendTo(nil, mode) {
		if s.Kind == SegmentArc {
			flattenArc(s, simpleTolerance, func(p vec.Vec2) {
				pts = append(pts, p)
			})
		} else {
			pts = append(pts, s.End)
		}
	}
	return pts
}

// filletMode resolves FilletAuto for the polygon pts. The result depends
// only on the size of the shape, never on the radius.
func filletMode(mode FilletMode, pts []vec.Vec2) FilletMode {
	if mode != FilletAuto {
		return mode
	}
	b := bounds(pts)
	if math.Hypot(b.URx-b.LLx, b.URy-b.LLy)*PxPerMm >= arcThresholdPx {
		return FilletArc
	}
	return FilletQuad
}

// filletClear reports whether a fillet of radius r at vertex i of the
// simple polygon base stays clear of all edges not adjacent to i.
func filletClear(base []vec.Vec2, i int, r, s float64, mode FilletMode) bool {
	n := len(base)
	prev, next := (i+n-1)%n, (i+1)%n
	f, _ := computeFillet(base[prev], base[i], base[next], r, s)
	if f == nil {
		return true
	}
	arc := f.points(mode)
	for j := range n {
		if j == prev || j == i {
			continue
		}
		a, b := base[j], base[(j+1)%n]
		for k := 1; k < len(arc); k++ {
			if segmentsIntersect(arc[k-1], arc[k], a, b) {
				return false
			}
		}
	}
	return true
}

// weightPentagon scales the radii at the corners where a clipped
// adaptive triangle meets the sides of its bounding box.
func weightPentagon(pts []vec.Vec2, radii []float64) {
	b := bounds(pts)
	for i, p := range pts {
		onSide := math.Abs(p.X-b.LLx) < 1e-9 || math.Abs(p.X-b.URx) < 1e-9
		if onSide && p.Y < b.URy-1e-9 {
			radii[i] *= pentagonSideWeight
		}
	}
}

// needsSeal reports whether renderers should seal the fillets of an
// angular archetype.
func needsSeal(a Archetype, corners []Corner) bool {
	switch a {
	case Hexagon, Octagon, Triangle, BlockArrow, PointerArrow:
	default:
		return false
	}
	for _, c := range corners {
		if c.Radius >= sealSeamRadiusMm {
			return true
		}
	}
	return false
}
