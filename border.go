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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// BorderMode selects which border rings are drawn.
type BorderMode int

const (
	// BorderThin draws only the hairline.
	BorderThin BorderMode = iota

	// BorderFixed additionally draws a decorative border of width
	// FixedBorderMm above the hairline.
	BorderFixed
)

func (m BorderMode) String() string {
	switch m {
	case BorderThin:
		return "thin-outline"
	case BorderFixed:
		return "fixed-2mm"
	default:
		return fmt.Sprintf("BorderMode(%d)", int(m))
	}
}

// ParseBorderMode returns the border mode with the given name.
func ParseBorderMode(name string) (BorderMode, error) {
	for _, m := range []BorderMode{BorderThin, BorderFixed} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown border mode %q", name)
}

const (
	// HairlineWidthMm is the default stroke width of the hairline.
	HairlineWidthMm = 0.25

	// FixedBorderMm is the stroke width of the decorative border.
	FixedBorderMm = 2.0

	// insetTolerance is the flattening tolerance used before offsetting
	// free-form outlines, in millimetres.
	insetTolerance = 0.01

	// insetMiterLimit is the largest ratio between the miter length and
	// the offset distance before a reflex corner is bevelled.
	insetMiterLimit = 4.0

	// minMiterCosine bounds the miter length at near-cusp corners.
	minMiterCosine = 1e-3
)

// BorderSpec describes the border rings of a card.
type BorderSpec struct {
	// ThicknessMm is the stroke width of the hairline. Zero selects
	// HairlineWidthMm.
	ThicknessMm float64
	Mode        BorderMode
	ColorRef    string
}

// Borders are the paths to be stroked for the border rings. Each
// outline is inset by half its stroke width, so that the stroke lies
// inside the card.
type Borders struct {
	Hairline        *Outline
	HairlineWidthMm float64

	// Decorative is nil unless the border mode is BorderFixed.
	Decorative        *Outline
	DecorativeWidthMm float64

	ColorRef string
}

// BuildBorders derives the border rings for an outline.
func BuildBorders(o *Outline, spec BorderSpec) Borders {
	w := spec.ThicknessMm
	if w <= 0 {
		w = HairlineWidthMm
	}
	b := Borders{
		Hairline:        Inset(o, w/2),
		HairlineWidthMm: w,
		ColorRef:        spec.ColorRef,
	}
	if spec.Mode == BorderFixed {
		b.Decorative = Inset(o, FixedBorderMm/2)
		b.DecorativeWidthMm = FixedBorderMm
	}
	return b
}

// Inset returns an outline which runs inside o at distance d.
//
// Rectangles shrink their size and corner radius, and ellipses shrink
// their radii about the centre. All other outlines are flattened and
// every vertex is moved along the inward bisector of its two edges.
// Reflex corners whose miter would exceed insetMiterLimit are bevelled.
// Inset does not remove loops created by offsetting narrow features.
func Inset(o *Outline, d float64) *Outline {
	if d <= 0 {
		return o.Clone()
	}

	switch {
	case o.Archetype == Rectangle && o.Kind != KindCustomEdited && len(o.Base) == 4:
		return insetRectangle(o, d)
	case o.Ellipse != nil:
		e := *o.Ellipse
		e.RX = max(e.RX-d, 0)
		e.RY = max(e.RY-d, 0)
		res := ellipseOutline(o.Archetype, &e)
		res.Kind = o.Kind
		return res
	}

	pts := o.Flatten(insetTolerance)
	inner := offsetPolygon(pts, d)
	res := polygonOutline(o.Archetype, o.Kind, inner)
	return res
}

// insetRectangle shrinks a possibly rounded rectangle by d on each side.
func insetRectangle(o *Outline, d float64) *Outline {
	b := bounds(o.Base)
	var r float64
	for _, c := range o.Corners {
		r = max(r, c.Radius)
	}
	w := max(b.URx-b.LLx-2*d, 0)
	h := max(b.URy-b.LLy-2*d, 0)
	x0, y0 := b.LLx+d, b.LLy+d
	pts := []vec.Vec2{
		{X: x0, Y: y0}, {X: x0 + w, Y: y0}, {X: x0 + w, Y: y0 + h}, {X: x0, Y: y0 + h},
	}
	if w == 0 || h == 0 {
		return polygonOutline(Rectangle, o.Kind, pts)
	}
	res := RoundPolygon(pts, max(r-d, 0), FilletArc)
	res.Archetype = Rectangle
	res.Kind = o.Kind
	return res
}

// offsetPolygon moves every vertex of a closed polygon inwards by d. The
// inward side is found from the polygon's winding direction.
func offsetPolygon(pts []vec.Vec2, d float64) []vec.Vec2 {
	n := len(pts)
	s := windingSign(pts)
	normal := func(a, b vec.Vec2) vec.Vec2 {
		t := b.Sub(a)
		l := t.Length()
		if l == 0 {
			return vec.Vec2{}
		}
		return vec.Vec2{X: -t.Y * s / l, Y: t.X * s / l}
	}

	res := make([]vec.Vec2, 0, n)
	for i := range n {
		prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
		n1 := normal(prev, cur)
		n2 := normal(cur, next)

		m := n1.Add(n2)
		ml := m.Length()
		if ml < zeroLengthThreshold {
			// edges reverse direction; use the incoming normal
			res = append(res, cur.Add(n1.Mul(d)))
			continue
		}
		m = m.Mul(1 / ml)
		cosHalf := m.Dot(n1)
		convex := s*cross(cur.Sub(prev), next.Sub(cur)) > 0

		// Offset edges meet on the inner side of a convex corner. At
		// reflex corners they open a gap, which is closed with a miter
		// or, beyond the miter limit, a bevel.
		if !convex && 1/cosHalf > insetMiterLimit {
			res = append(res, cur.Add(n1.Mul(d)), cur.Add(n2.Mul(d)))
			continue
		}
		miter := d / math.Max(cosHalf, minMiterCosine)
		res = append(res, cur.Add(m.Mul(miter)))
	}
	return dedupeClosed(res)
}
