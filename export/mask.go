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

package export

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
)

// Mask renders the inside of an outline into an anti-aliased alpha mask
// at the given resolution. Pixel (0, 0) covers the top-left corner of the
// outline's bounding box; the image is large enough to hold the whole
// outline.
func Mask(o *outline.Outline, pxPerMm float64) *image.Alpha {
	b := o.Bounds()
	w := max(int(math.Ceil((b.URx-b.LLx)*pxPerMm)), 1)
	h := max(int(math.Ceil((b.URy-b.LLy)*pxPerMm)), 1)

	px := func(x, y float64) (float32, float32) {
		return float32((x - b.LLx) * pxPerMm), float32((y - b.LLy) * pxPerMm)
	}

	r := vector.NewRasterizer(w, h)
	for cmd, pts := range o.Path() {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(px(pts[0].X, pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(px(pts[0].X, pts[0].Y))
		case path.CmdCubeTo:
			x1, y1 := px(pts[0].X, pts[0].Y)
			x2, y2 := px(pts[1].X, pts[1].Y)
			x3, y3 := px(pts[2].X, pts[2].Y)
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}

// Coverage returns the area, in square millimetres, covered by a mask
// produced at the given resolution.
func Coverage(m *image.Alpha, pxPerMm float64) float64 {
	var sum float64
	for _, a := range m.Pix {
		sum += float64(a)
	}
	return sum / 255 / (pxPerMm * pxPerMm)
}
