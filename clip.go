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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ClipToRect clips a convex polygon against an axis-aligned rectangle,
// using the Sutherland-Hodgman algorithm. The vertex order of the input
// is preserved. The result is empty if the polygon lies outside the
// rectangle.
func ClipToRect(poly []vec.Vec2, r rect.Rect) []vec.Vec2 {
	edges := []struct {
		inside func(vec.Vec2) bool
		cut    func(a, b vec.Vec2) vec.Vec2
	}{
		{ // left
			inside: func(p vec.Vec2) bool { return p.X >= r.LLx },
			cut:    func(a, b vec.Vec2) vec.Vec2 { return lerpX(a, b, r.LLx) },
		},
		{ // right
			inside: func(p vec.Vec2) bool { return p.X <= r.URx },
			cut:    func(a, b vec.Vec2) vec.Vec2 { return lerpX(a, b, r.URx) },
		},
		{ // top
			inside: func(p vec.Vec2) bool { return p.Y >= r.LLy },
			cut:    func(a, b vec.Vec2) vec.Vec2 { return lerpY(a, b, r.LLy) },
		},
		{ // bottom
			inside: func(p vec.Vec2) bool { return p.Y <= r.URy },
			cut:    func(a, b vec.Vec2) vec.Vec2 { return lerpY(a, b, r.URy) },
		},
	}

	out := append([]vec.Vec2(nil), poly...)
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]vec.Vec2, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := e.inside(cur), e.inside(prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, e.cut(prev, cur), cur)
			case prevIn:
				out = append(out, e.cut(prev, cur))
			}
			prev = cur
		}
	}
	return dedupeClosed(out)
}

// lerpX returns the point on the line ab with the given x coordinate.
func lerpX(a, b vec.Vec2, x float64) vec.Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return vec.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

// lerpY returns the point on the line ab with the given y coordinate.
func lerpY(a, b vec.Vec2, y float64) vec.Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return vec.Vec2{X: a.X + t*(b.X-a.X), Y: y}
}
