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
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline"
)

// PathData returns the outline as SVG path data, in millimetres. Arcs
// are written as elliptical arc commands.
func PathData(o *outline.Outline) string {
	return pathData(o, 1)
}

// pathData writes the outline with all coordinates multiplied by scale.
func pathData(o *outline.Outline, scale float64) string {
	b := &strings.Builder{}
	b.WriteByte('M')
	formatPoint(b, o.Start.Mul(scale))
	for _, s := range o.Segments {
		switch s.Kind {
		case outline.SegmentLine:
			b.WriteString(" L")
			formatPoint(b, s.End.Mul(scale))
		case outline.SegmentCubic:
			b.WriteString(" C")
			formatPoint(b, s.C1.Mul(scale))
			b.WriteByte(' ')
			formatPoint(b, s.C2.Mul(scale))
			b.WriteByte(' ')
			formatPoint(b, s.End.Mul(scale))
		case outline.SegmentArc:
			writeArc(b, s, scale)
		}
	}
	b.WriteString(" Z")
	return b.String()
}

// writeArc writes an arc segment as one or more SVG arc commands. SVG
// cannot express a full turn in one command, so the arc is split into
// pieces of at most half a turn.
func writeArc(b *strings.Builder, s outline.Segment, scale float64) {
	n := max(1, int(math.Ceil(math.Abs(s.Sweep)/math.Pi-1e-9)))
	delta := s.Sweep / float64(n)
	sweepFlag := 0
	if s.Sweep > 0 {
		sweepFlag = 1
	}
	for i := 1; i <= n; i++ {
		end := s.End
		if i < n {
			theta := s.Theta0 + float64(i)*delta
			end = vec.Vec2{
				X: s.Center.X + s.RX*math.Cos(theta),
				Y: s.Center.Y + s.RY*math.Sin(theta),
			}
		}
		fmt.Fprintf(b, " A%s,%s 0 0 %d ",
			formatNumber(s.RX*scale), formatNumber(s.RY*scale), sweepFlag)
		formatPoint(b, end.Mul(scale))
	}
}

// polylineData returns SVG path data for an open polyline.
func polylineData(pts []vec.Vec2, scale float64) string {
	b := &strings.Builder{}
	for i, p := range pts {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteString(" L")
		}
		formatPoint(b, p.Mul(scale))
	}
	return b.String()
}

// svgUnit is the number of SVG user units per millimetre.
const svgUnit = 1000

// WriteSVG writes a cut sheet as SVG. The document has its physical size
// set in millimetres; user units are micrometres. Cut lines are red,
// borders use the border colour and engraving marks are blue.
func WriteSVG(w io.Writer, s *Sheet) error {
	if s.Outline == nil {
		return errNoOutline
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	f := s.frame()
	wMm := int(math.Ceil(f.URx - f.LLx))
	hMm := int(math.Ceil(f.URy - f.LLy))
	minX := int(math.Floor(f.LLx * svgUnit))
	minY := int(math.Floor(f.LLy * svgUnit))
	canvas.StartviewUnit(wMm, hMm, "mm", minX, minY, wMm*svgUnit, hMm*svgUnit)
	if s.Title != "" {
		canvas.Title(s.Title)
	}

	um := func(x float64) int { return int(math.Round(x * svgUnit)) }
	cut := fmt.Sprintf("fill:none;stroke:#ff0000;stroke-width:%d", um(s.cutWidth()))

	o := s.Outline
	card := "fill:#f4f4f4;stroke:none"
	if o.SealSeams {
		card = fmt.Sprintf("fill:#f4f4f4;stroke:#f4f4f4;stroke-width:%d", um(s.cutWidth()))
	}
	canvas.Gid("card")
	canvas.Path(pathData(o, svgUnit), card)
	canvas.Gend()

	if s.Borders != nil {
		color := s.Borders.ColorRef
		if color == "" {
			color = "#000000"
		}
		canvas.Gid("border")
		if h := s.Borders.Hairline; h != nil {
			canvas.Path(pathData(h, svgUnit),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", color, um(s.Borders.HairlineWidthMm)))
		}
		if d := s.Borders.Decorative; d != nil {
			canvas.Path(pathData(d, svgUnit),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", color, um(s.Borders.DecorativeWidthMm)))
		}
		canvas.Gend()
	}

	if len(o.Marks) > 0 {
		canvas.Gid("engrave")
		for _, m := range o.Marks {
			canvas.Path(polylineData(m, svgUnit),
				fmt.Sprintf("fill:none;stroke:#0000ff;stroke-width:%d", um(s.cutWidth())))
		}
		canvas.Gend()
	}

	canvas.Gid("cut")
	canvas.Path(pathData(o, svgUnit), cut)
	for _, h := range s.Holes {
		if h.Rect {
			canvas.Rect(um(h.Center.X-h.WidthMm/2), um(h.Center.Y-h.HeightMm/2),
				um(h.WidthMm), um(h.HeightMm), cut)
		} else {
			canvas.Circle(um(h.Center.X), um(h.Center.Y), um(h.DiameterMm/2), cut)
		}
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	_, e.err = e.w.Write(p)
	return len(p), nil
}
