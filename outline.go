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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind records how an outline was derived.
type Kind int

const (
	// KindRaw is the direct output of the base shape generator.
	KindRaw Kind = iota

	// KindRounded is an outline whose convex corners have been filleted,
	// or whose arcs have been smoothed.
	KindRounded

	// KindCustomEdited is an outline whose base vertices were moved by
	// the user. The unrounded vertices are kept in Outline.Base.
	KindCustomEdited
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindRounded:
		return "rounded"
	case KindCustomEdited:
		return "customEdited"
	default:
		return "unknown"
	}
}

// Orientation is the winding direction of a closed outline, as seen on
// screen with the y axis pointing down.
type Orientation int

const (
	Degenerate Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "degenerate"
	}
}

// SegmentKind identifies the geometry of a Segment.
type SegmentKind uint8

const (
	SegmentLine SegmentKind = iota
	SegmentArc
	SegmentCubic
)

// Segment is one piece of a closed outline. Every segment starts where
// the previous one ended; the first segment starts at Outline.Start.
type Segment struct {
	Kind SegmentKind
	End  vec.Vec2

	// Arc parameters, used for SegmentArc. Points on the arc are
	// Center + (RX·cos θ, RY·sin θ) for θ from Theta0 to Theta0+Sweep.
	Center        vec.Vec2
	RX, RY        float64
	Theta0, Sweep float64

	// Control points, used for SegmentCubic.
	C1, C2 vec.Vec2
}

// Line returns a straight segment ending at p.
func Line(p vec.Vec2) Segment {
	return Segment{Kind: SegmentLine, End: p}
}

// Arc returns an axis-aligned elliptical arc segment. The end point is
// derived from the arc parameters.
func Arc(center vec.Vec2, rx, ry, theta0, sweep float64) Segment {
	return Segment{
		Kind:   SegmentArc,
		End:    ellipsePoint(center, rx, ry, theta0+sweep),
		Center: center,
		RX:     rx,
		RY:     ry,
		Theta0: theta0,
		Sweep:  sweep,
	}
}

// Cubic returns a cubic Bézier segment.
func Cubic(c1, c2, p vec.Vec2) Segment {
	return Segment{Kind: SegmentCubic, C1: c1, C2: c2, End: p}
}

func ellipsePoint(center vec.Vec2, rx, ry, theta float64) vec.Vec2 {
	return vec.Vec2{
		X: center.X + rx*math.Cos(theta),
		Y: center.Y + ry*math.Sin(theta),
	}
}

// Ellipse is the exact parametric description of a circular or
// elliptical outline.
type Ellipse struct {
	Center vec.Vec2
	RX, RY float64
}

// Arch describes the top arch of the lock archetype.
type Arch struct {
	Center  vec.Vec2 // midpoint of the chord, on the top edge of the body
	RX, RY  float64  // half chord width, arch height
	BodyTop float64  // y coordinate of the rectangular body's top edge
}

// Corner is the rounding result for one base vertex.
type Corner struct {
	Vertex vec.Vec2
	Convex bool

	// Radius is the fillet radius actually applied. It is zero for
	// concave or degenerate corners and when no rounding was requested.
	Radius float64
}

// Outline is the closed boundary of a shape, in millimetres.
//
// An Outline is a value: the functions in this package never modify an
// Outline passed to them, and return fresh copies instead.
type Outline struct {
	Archetype Archetype
	Kind      Kind

	Start    vec.Vec2
	Segments []Segment

	// Base holds the pre-rounding vertices for polygonal outlines.
	// It is nil for outlines without meaningful corners.
	Base []vec.Vec2

	// Corners has one entry per Base vertex after rounding.
	Corners []Corner

	// Ellipse is set for circle and ellipse based archetypes.
	Ellipse *Ellipse

	// Arch is set for the lock archetype.
	Arch *Arch

	// Marks are open polylines to be engraved inside the outline.
	Marks [][]vec.Vec2

	// Full is only meaningful for the adaptive triangle. It is true if
	// the unclipped three-vertex triangle was returned.
	Full bool

	// SealSeams asks renderers to stroke the boundary in the fill colour
	// in addition to filling it. This hides hairline gaps which
	// anti-aliased renderers leave at large fillets.
	SealSeams bool
}

// polygonOutline builds a closed outline from straight edges.
func polygonOutline(a Archetype, kind Kind, pts []vec.Vec2) *Outline {
	o := &Outline{
		Archetype: a,
		Kind:      kind,
		Start:     pts[0],
		Segments:  make([]Segment, 0, len(pts)),
	}
	for _, p := range pts[1:] {
		o.Segments = append(o.Segments, Line(p))
	}
	o.Segments = append(o.Segments, Line(pts[0]))
	return o
}

// Clone returns a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	c := *o
	c.Segments = append([]Segment(nil), o.Segments...)
	if o.Base != nil {
		c.Base = append([]vec.Vec2(nil), o.Base...)
	}
	if o.Corners != nil {
		c.Corners = append([]Corner(nil), o.Corners...)
	}
	if o.Ellipse != nil {
		e := *o.Ellipse
		c.Ellipse = &e
	}
	if o.Arch != nil {
		a := *o.Arch
		c.Arch = &a
	}
	if o.Marks != nil {
		c.Marks = make([][]vec.Vec2, len(o.Marks))
		for i, m := range o.Marks {
			c.Marks[i] = append([]vec.Vec2(nil), m...)
		}
	}
	return &c
}

// Path returns the outline as a path iterator. Arcs are converted to
// cubic Bézier curves.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		buf[0] = o.Start
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, s := range o.Segments {
			switch s.Kind {
			case SegmentLine:
				buf[0] = s.End
				if !yield(path.CmdLineTo, buf[:1]) {
					return
				}
			case SegmentCubic:
				buf[0], buf[1], buf[2] = s.C1, s.C2, s.End
				if !yield(path.CmdCubeTo, buf[:3]) {
					return
				}
			case SegmentArc:
				ok := true
				arcToCubics(s, func(c1, c2, p vec.Vec2) bool {
					buf[0], buf[1], buf[2] = c1, c2, p
					ok = yield(path.CmdCubeTo, buf[:3])
					return ok
				})
				if !ok {
					return
				}
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Data returns the outline as path data.
func (o *Outline) Data() *path.Data {
	d := (&path.Data{}).MoveTo(o.Start)
	for cmd, pts := range o.Path() {
		switch cmd {
		case path.CmdLineTo:
			d = d.LineTo(pts[0])
		case path.CmdCubeTo:
			d = d.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			d = d.Close()
		}
	}
	return d
}

// arcToCubics approximates an elliptical arc by cubic Bézier curves, one
// for every quarter turn or part thereof. Iteration stops early if fn
// returns false.
func arcToCubics(s Segment, fn func(c1, c2, p vec.Vec2) bool) {
	n := max(1, int(math.Ceil(math.Abs(s.Sweep)/(math.Pi/2)-1e-9)))
	delta := s.Sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	deriv := func(theta float64) vec.Vec2 {
		return vec.Vec2{X: -s.RX * math.Sin(theta), Y: s.RY * math.Cos(theta)}
	}

	a := s.Theta0
	p0 := ellipsePoint(s.Center, s.RX, s.RY, a)
	for i := 1; i <= n; i++ {
		b := s.Theta0 + float64(i)*delta
		p3 := ellipsePoint(s.Center, s.RX, s.RY, b)
		if i == n {
			p3 = s.End
		}
		c1 := p0.Add(deriv(a).Mul(k))
		c2 := p3.Sub(deriv(b).Mul(k))
		if !fn(c1, c2, p3) {
			return
		}
		a, p0 = b, p3
	}
}

// Flatten approximates the outline by a closed polygon. The maximum
// distance between the polygon and the outline is at most tol. The first
// point is not repeated at the end.
func (o *Outline) Flatten(tol float64) []vec.Vec2 {
	pts := []vec.Vec2{o.Start}
	emit := func(p vec.Vec2) {
		pts = append(pts, p)
	}
	cur := o.Start
	for _, s := range o.Segments {
		switch s.Kind {
		case SegmentLine:
			emit(s.End)
		case SegmentArc:
			flattenArc(s, tol, emit)
		case SegmentCubic:
			flattenCubic(cur, s.C1, s.C2, s.End, tol, emit)
		}
		cur = s.End
	}
	return dedupeClosed(pts)
}

// Bounds returns the bounding box of the outline. LLx and LLy hold the
// minimum coordinates. The box is exact for lines and arcs; cubic
// segments are flattened first.
func (o *Outline) Bounds() rect.Rect {
	pts := []vec.Vec2{o.Start}
	cur := o.Start
	for _, s := range o.Segments {
		switch s.Kind {
		case SegmentLine:
			pts = append(pts, s.End)
		case SegmentArc:
			pts = append(pts, s.End)
			pts = appendArcExtrema(pts, s)
		case SegmentCubic:
			flattenCubic(cur, s.C1, s.C2, s.End, boundsTolerance, func(p vec.Vec2) {
				pts = append(pts, p)
			})
		}
		cur = s.End
	}
	return bounds(pts)
}

// appendArcExtrema appends the points of an arc where the tangent is
// horizontal or vertical.
func appendArcExtrema(pts []vec.Vec2, s Segment) []vec.Vec2 {
	lo, hi := s.Theta0, s.Theta0+s.Sweep
	if lo > hi {
		lo, hi = hi, lo
	}
	k := math.Ceil(lo / (math.Pi / 2))
	for theta := k * math.Pi / 2; theta <= hi; theta += math.Pi / 2 {
		pts = append(pts, ellipsePoint(s.Center, s.RX, s.RY, theta))
	}
	return pts
}

// Perimeter returns the length of the outline in millimetres.
func (o *Outline) Perimeter() float64 {
	var total float64
	cur := o.Start
	for _, s := range o.Segments {
		switch s.Kind {
		case SegmentLine:
			total += s.End.Sub(cur).Length()
		case SegmentArc:
			if s.RX == s.RY {
				total += s.RX * math.Abs(s.Sweep)
				break
			}
			prev := cur
			flattenArc(s, perimeterTolerance, func(p vec.Vec2) {
				total += p.Sub(prev).Length()
				prev = p
			})
		case SegmentCubic:
			prev := cur
			flattenCubic(cur, s.C1, s.C2, s.End, perimeterTolerance, func(p vec.Vec2) {
				total += p.Sub(prev).Length()
				prev = p
			})
		}
		cur = s.End
	}
	return total
}

// Area returns the enclosed area in square millimetres.
func (o *Outline) Area() float64 {
	return math.Abs(signedArea(o.Flatten(perimeterTolerance))) / 2
}

// Orientation returns the winding direction of the outline.
func (o *Outline) Orientation() Orientation {
	return orientationOf(o.Flatten(boundsTolerance))
}

// Translate returns a copy of the outline moved by d.
func (o *Outline) Translate(d vec.Vec2) *Outline {
	return o.Transform(matrix.Matrix{1, 0, 0, 1, d.X, d.Y})
}

// Transform returns a copy of the outline with m applied to all
// coordinates. Arcs stay arcs as long as m does not rotate or shear;
// otherwise they are replaced by cubic Bézier curves.
func (o *Outline) Transform(m matrix.Matrix) *Outline {
	apply := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
	axisAligned := m[1] == 0 && m[2] == 0

	c := o.Clone()
	c.Start = apply(o.Start)
	c.Segments = c.Segments[:0]
	for _, s := range o.Segments {
		switch s.Kind {
		case SegmentLine:
			c.Segments = append(c.Segments, Line(apply(s.End)))
		case SegmentCubic:
			c.Segments = append(c.Segments, Cubic(apply(s.C1), apply(s.C2), apply(s.End)))
		case SegmentArc:
			if !axisAligned {
				arcToCubics(s, func(c1, c2, p vec.Vec2) bool {
					c.Segments = append(c.Segments, Cubic(apply(c1), apply(c2), apply(p)))
					return true
				})
				continue
			}
			theta, sweep := s.Theta0, s.Sweep
			if m[0] < 0 {
				theta, sweep = math.Pi-theta, -sweep
			}
			if m[3] < 0 {
				theta, sweep = -theta, -sweep
			}
			t := Arc(apply(s.Center), s.RX*math.Abs(m[0]), s.RY*math.Abs(m[3]), theta, sweep)
			t.End = apply(s.End)
			c.Segments = append(c.Segments, t)
		}
	}
	for i, p := range c.Base {
		c.Base[i] = apply(p)
	}
	for i := range c.Corners {
		c.Corners[i].Vertex = apply(c.Corners[i].Vertex)
	}
	if c.Ellipse != nil {
		if axisAligned {
			c.Ellipse.Center = apply(c.Ellipse.Center)
			c.Ellipse.RX *= math.Abs(m[0])
			c.Ellipse.RY *= math.Abs(m[3])
		} else {
			c.Ellipse = nil
		}
	}
	if c.Arch != nil {
		if axisAligned && m[3] > 0 {
			c.Arch.Center = apply(c.Arch.Center)
			c.Arch.RX *= math.Abs(m[0])
			c.Arch.RY *= m[3]
			c.Arch.BodyTop = m[3]*c.Arch.BodyTop + m[5]
		} else {
			c.Arch = nil
		}
	}
	for _, mark := range c.Marks {
		for i, p := range mark {
			mark[i] = apply(p)
		}
	}
	return c
}

const (
	// boundsTolerance is the flattening tolerance used for bounding boxes
	// and orientation tests, in millimetres.
	boundsTolerance = 0.005

	// perimeterTolerance is the flattening tolerance used for length and
	// area measurements, in millimetres.
	perimeterTolerance = 0.001
)
