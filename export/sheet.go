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

// Package export writes card outlines in formats used by renderers and
// cutting tools: SVG path data, SVG and PDF cut sheets, and alpha masks.
//
// All input coordinates are in millimetres with the y axis pointing down.
package export

import (
	"errors"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline"
)

// Sheet is one card with everything that is cut, engraved or printed.
type Sheet struct {
	Title   string
	Outline *outline.Outline
	Holes   []outline.Hole

	// Borders is optional.
	Borders *outline.Borders

	// CutWidthMm is the stroke width of cut lines. Zero selects
	// DefaultCutWidthMm.
	CutWidthMm float64
}

// DefaultCutWidthMm is the stroke width used for cut lines.
const DefaultCutWidthMm = 0.1

// marginMm is the space around the card on a cut sheet.
const marginMm = 5.0

var errNoOutline = errors.New("sheet has no outline")

// NewSheet assembles a sheet from a session.
func NewSheet(title string, s *outline.Session) *Sheet {
	b := s.Borders()
	return &Sheet{
		Title:   title,
		Outline: s.Outline(),
		Holes:   s.Holes(),
		Borders: &b,
	}
}

func (s *Sheet) cutWidth() float64 {
	if s.CutWidthMm > 0 {
		return s.CutWidthMm
	}
	return DefaultCutWidthMm
}

// frame returns the area covered by the sheet, including the margin.
func (s *Sheet) frame() rect.Rect {
	b := s.Outline.Bounds()
	return rect.Rect{
		LLx: b.LLx - marginMm,
		LLy: b.LLy - marginMm,
		URx: b.URx + marginMm,
		URy: b.URy + marginMm,
	}
}

// formatNumber formats a coordinate with at most four decimals.
func formatNumber(x float64) string {
	s := strconv.FormatFloat(x, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func formatPoint(b *strings.Builder, p vec.Vec2) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(',')
	b.WriteString(formatNumber(p.Y))
}
