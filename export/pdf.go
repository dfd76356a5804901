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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/outline"
)

// ptPerMm is the number of PDF points per millimetre.
const ptPerMm = 72 / 25.4

// Grey levels used on PDF cut sheets.
const (
	cardGray   = 0.95
	borderGray = 0.3
	markGray   = 0.5
	cutGray    = 0
)

// WritePDF writes a cut sheet as a single page PDF file. The page has the
// physical size of the card plus a margin.
func WritePDF(fname string, s *Sheet) error {
	if s.Outline == nil {
		return errNoOutline
	}
	f := s.frame()
	paper := &pdf.Rectangle{
		URx: (f.URx - f.LLx) * ptPerMm,
		URy: (f.URy - f.LLy) * ptPerMm,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left and units are points; outlines use
	// millimetres with the origin at the top-left.
	page.Transform(matrix.Matrix{
		ptPerMm, 0,
		0, -ptPerMm,
		-f.LLx * ptPerMm, f.URy * ptPerMm,
	})
	drawPath := func(p path.Path) {
		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
	}

	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineCap(graphics.LineCapRound)

	o := s.Outline
	page.SetFillColor(color.DeviceGray(cardGray))
	drawPath(o.Path())
	page.Fill()
	if o.SealSeams {
		page.SetStrokeColor(color.DeviceGray(cardGray))
		page.SetLineWidth(s.cutWidth())
		drawPath(o.Path())
		page.Stroke()
	}

	if b := s.Borders; b != nil {
		page.SetStrokeColor(color.DeviceGray(borderGray))
		if b.Hairline != nil {
			page.SetLineWidth(b.HairlineWidthMm)
			drawPath(b.Hairline.Path())
			page.Stroke()
		}
		if b.Decorative != nil {
			page.SetLineWidth(b.DecorativeWidthMm)
			drawPath(b.Decorative.Path())
			page.Stroke()
		}
	}

	page.SetLineWidth(s.cutWidth())
	if len(o.Marks) > 0 {
		page.SetStrokeColor(color.DeviceGray(markGray))
		for _, m := range o.Marks {
			for i, p := range m {
				if i == 0 {
					page.MoveTo(p.X, p.Y)
				} else {
					page.LineTo(p.X, p.Y)
				}
			}
		}
		page.Stroke()
	}

	page.SetStrokeColor(color.DeviceGray(cutGray))
	drawPath(o.Path())
	for _, h := range s.Holes {
		drawPath(holeOutline(h).Path())
	}
	page.Stroke()

	return page.Close()
}

// holeOutline returns the cut path of a hole.
func holeOutline(h outline.Hole) *outline.Outline {
	spec := outline.ShapeSpec{Archetype: outline.Circle, WidthMm: h.DiameterMm, HeightMm: h.DiameterMm}
	if h.Rect {
		spec = outline.ShapeSpec{Archetype: outline.Rectangle, WidthMm: h.WidthMm, HeightMm: h.HeightMm}
	}
	o, err := outline.Generate(spec)
	if err != nil {
		// zero-sized hole
		return &outline.Outline{Start: h.Center}
	}
	return o.Translate(h.Center.Sub(vec.Vec2{X: spec.WidthMm / 2, Y: spec.HeightMm / 2}))
}
