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
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Generate returns the unrounded outline for a shape. The outline fills
// the box from (0, 0) to (WidthMm, HeightMm), with the y axis pointing
// down, and runs clockwise on screen.
//
// CornerRadiusMm is ignored; use Round or Build to apply it.
func Generate(spec ShapeSpec) (*Outline, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	gen := generators[spec.Archetype]
	return gen(spec), nil
}

// Build generates the outline for a shape and rounds it with the shape's
// corner radius.
func Build(spec ShapeSpec) (*Outline, error) {
	raw, err := Generate(spec)
	if err != nil {
		return nil, err
	}
	return Round(raw, spec.CornerRadiusMm), nil
}

var generators = [numArchetypes]func(ShapeSpec) *Outline{
	Rectangle:          templateGenerator(Rectangle, rectangleTemplate),
	Circle:             genCircle,
	Hexagon:            templateGenerator(Hexagon, hexagonTemplate),
	Octagon:            templateGenerator(Octagon, octagonTemplate),
	Triangle:           templateGenerator(Triangle, triangleTemplate),
	AdaptiveTriangle:   genAdaptiveTriangle,
	BlockArrow:         templateGenerator(BlockArrow, blockArrowTemplate),
	PointerArrow:       templateGenerator(PointerArrow, pointerArrowTemplate),
	Flag:               templateGenerator(Flag, flagTemplate),
	Diamond:            templateGenerator(Diamond, diamondTemplate),
	HalfCircle:         genHalfCircle,
	ExtendedHalfCircle: genExtendedHalfCircle,
	Lock:               genLock,
	CircleLine:         genCircle,
	CircleCross:        genCircle,
}

// Fractional vertex templates, in clockwise order on screen. The unit
// square is scaled to the requested width and height.
var (
	rectangleTemplate = []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	hexagonTemplate   = []vec.Vec2{
		{X: 0.25, Y: 0}, {X: 0.75, Y: 0}, {X: 1, Y: 0.5},
		{X: 0.75, Y: 1}, {X: 0.25, Y: 1}, {X: 0, Y: 0.5},
	}
	octagonTemplate = func() []vec.Vec2 {
		// regular octagon inscribed in the unit square
		c := 1 / (2 + math.Sqrt2)
		return []vec.Vec2{
			{X: c, Y: 0}, {X: 1 - c, Y: 0}, {X: 1, Y: c}, {X: 1, Y: 1 - c},
			{X: 1 - c, Y: 1}, {X: c, Y: 1}, {X: 0, Y: 1 - c}, {X: 0, Y: c},
		}
	}()
	triangleTemplate   = []vec.Vec2{{X: 0.5, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	blockArrowTemplate = []vec.Vec2{
		{X: 0, Y: 0.25}, {X: 0.6, Y: 0.25}, {X: 0.6, Y: 0}, {X: 1, Y: 0.5},
		{X: 0.6, Y: 1}, {X: 0.6, Y: 0.75}, {X: 0, Y: 0.75},
	}
	pointerArrowTemplate = []vec.Vec2{
		{X: 0, Y: 0}, {X: 0.75, Y: 0}, {X: 1, Y: 0.5}, {X: 0.75, Y: 1}, {X: 0, Y: 1},
	}
	flagTemplate = []vec.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.75, Y: 0.5}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	diamondTemplate = []vec.Vec2{{X: 0.5, Y: 0}, {X: 1, Y: 0.5}, {X: 0.5, Y: 1}, {X: 0, Y: 0.5}}
)

func templateGenerator(a Archetype, tmpl []vec.Vec2) func(ShapeSpec) *Outline {
	return func(spec ShapeSpec) *Outline {
		pts := scaleTemplate(tmpl, spec.WidthMm, spec.HeightMm)
		o := polygonOutline(a, KindRaw, pts)
		o.Base = pts
		return o
	}
}

func scaleTemplate(tmpl []vec.Vec2, w, h float64) []vec.Vec2 {
	pts := make([]vec.Vec2, len(tmpl))
	for i, p := range tmpl {
		pts[i] = vec.Vec2{X: p.X * w, Y: p.Y * h}
	}
	return pts
}

// genCircle generates the circle, ellipse, circle-with-line and
// circle-with-cross archetypes.
func genCircle(spec ShapeSpec) *Outline {
	w, h := spec.WidthMm, spec.HeightMm
	e := &Ellipse{Center: vec.Vec2{X: w / 2, Y: h / 2}, RX: w / 2, RY: h / 2}
	o := ellipseOutline(spec.Archetype, e)

	switch spec.Archetype {
	case CircleLine:
		o.Marks = [][]vec.Vec2{
			{{X: 0, Y: h / 2}, {X: w, Y: h / 2}},
		}
	case CircleCross:
		o.Marks = [][]vec.Vec2{
			{{X: 0, Y: h / 2}, {X: w, Y: h / 2}},
			{{X: w / 2, Y: 0}, {X: w / 2, Y: h}},
		}
	}
	return o
}

// ellipseOutline returns a closed outline consisting of a single
// full-turn arc, starting at the rightmost point.
func ellipseOutline(a Archetype, e *Ellipse) *Outline {
	start := vec.Vec2{X: e.Center.X + e.RX, Y: e.Center.Y}
	arc := Arc(e.Center, e.RX, e.RY, 0, 2*math.Pi)
	arc.End = start
	return &Outline{
		Archetype: a,
		Kind:      KindRaw,
		Start:     start,
		Segments:  []Segment{arc},
		Ellipse:   e,
	}
}

// genHalfCircle generates the upper half of an ellipse which touches all
// four sides of the box. The straight base runs along the bottom edge.
func genHalfCircle(spec ShapeSpec) *Outline {
	w, h := spec.WidthMm, spec.HeightMm
	return halfEllipseOutline(spec.Archetype, w, h, w/2, h, h)
}

// genExtendedHalfCircle generates a semicircle of diameter W on top of a
// W×(H - W/2) rectangle. If the box is not tall enough for the full
// semicircle, the result equals the half-circle archetype.
func genExtendedHalfCircle(spec ShapeSpec) *Outline {
	w, h := spec.WidthMm, spec.HeightMm
	r := w / 2
	if h <= r {
		return halfEllipseOutline(spec.Archetype, w, h, r, h, h)
	}
	return halfEllipseOutline(spec.Archetype, w, h, r, r, r)
}

// halfEllipseOutline returns the outline formed by the top half of an
// ellipse with radii rx, ry centred at (w/2, cy), optional vertical walls
// from y=cy down to y=h, and the base line.
func halfEllipseOutline(a Archetype, w, h, rx, ry, cy float64) *Outline {
	center := vec.Vec2{X: w / 2, Y: cy}
	o := &Outline{
		Archetype: a,
		Kind:      KindRaw,
		Start:     vec.Vec2{X: 0, Y: h},
	}
	if h-cy > zeroLengthThreshold {
		o.Segments = append(o.Segments, Line(vec.Vec2{X: center.X - rx, Y: cy}))
	}
	arc := Arc(center, rx, ry, math.Pi, math.Pi)
	arc.End = vec.Vec2{X: center.X + rx, Y: cy}
	o.Segments = append(o.Segments, arc)
	if h-cy > zeroLengthThreshold {
		o.Segments = append(o.Segments, Line(vec.Vec2{X: w, Y: h}))
	}
	o.Segments = append(o.Segments, Line(o.Start))
	return o
}

// genLock generates a rectangular body with an arch on top. The arch
// is half an ellipse centred on the body's top edge.
func genLock(spec ShapeSpec) *Outline {
	w, h := spec.WidthMm, spec.HeightMm
	aw, ah := spec.lockArch()
	cx := w / 2
	arch := &Arch{
		Center:  vec.Vec2{X: cx, Y: ah},
		RX:      aw / 2,
		RY:      ah,
		BodyTop: ah,
	}

	left := vec.Vec2{X: cx - arch.RX, Y: ah}
	right := vec.Vec2{X: cx + arch.RX, Y: ah}

	o := &Outline{
		Archetype: Lock,
		Kind:      KindRaw,
		Arch:      arch,
	}
	o.Start = vec.Vec2{X: 0, Y: ah}
	if left.X > zeroLengthThreshold {
		o.Segments = append(o.Segments, Line(left))
	} else {
		o.Start = left
	}
	a := Arc(arch.Center, arch.RX, arch.RY, math.Pi, math.Pi)
	a.End = right
	o.Segments = append(o.Segments, a)
	if w-right.X > zeroLengthThreshold {
		o.Segments = append(o.Segments, Line(vec.Vec2{X: w, Y: ah}))
	}
	o.Segments = append(o.Segments,
		Line(vec.Vec2{X: w, Y: h}),
		Line(vec.Vec2{X: 0, Y: h}),
		Line(o.Start),
	)
	return o
}

// AdaptiveTriangleRatio is the width to height ratio of an equilateral
// triangle. Adaptive triangles at or above this ratio are stretched;
// narrower boxes clip the sides of an equilateral triangle.
var AdaptiveTriangleRatio = 2 / math.Sqrt(3)

// genAdaptiveTriangle generates the adaptive triangle.
func genAdaptiveTriangle(spec ShapeSpec) *Outline {
	w, h := spec.WidthMm, spec.HeightMm
	if w/h >= AdaptiveTriangleRatio {
		pts := scaleTemplate(triangleTemplate, w, h)
		o := polygonOutline(AdaptiveTriangle, KindRaw, pts)
		o.Base = pts
		o.Full = true
		return o
	}

	half := h * AdaptiveTriangleRatio / 2
	ideal := []vec.Vec2{
		{X: w / 2, Y: 0},
		{X: w/2 + half, Y: h},
		{X: w/2 - half, Y: h},
	}
	pts := ClipToRect(ideal, rect.Rect{LLx: 0, LLy: 0, URx: w, URy: h})

	// start at the apex, like the unclipped triangle
	apex := 0
	for i, p := range pts {
		if p.Y < pts[apex].Y {
			apex = i
		}
	}
	pts = slices.Concat(pts[apex:], pts[:apex])

	o := polygonOutline(AdaptiveTriangle, KindRaw, pts)
	o.Base = pts
	return o
}
