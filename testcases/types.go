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

// Package testcases is a catalogue of sample card designs, used by the
// tests and by the commands which write cut sheets.
package testcases

import (
	"seehuhn.de/go/outline"
)

// TestCase defines a single card design.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Shape  outline.ShapeSpec
	Holes  outline.HoleSpec
	Border outline.BorderSpec
}

// Session creates a design session for the test case.
func (tc TestCase) Session() (*outline.Session, error) {
	s, err := outline.NewSession(tc.Shape, outline.DefaultCalibration())
	if err != nil {
		return nil, err
	}
	s.SetHoles(tc.Holes)
	s.SetBorder(tc.Border)
	return s, nil
}

// shape is a helper to create a ShapeSpec.
func shape(a outline.Archetype, w, h, r float64) outline.ShapeSpec {
	return outline.ShapeSpec{Archetype: a, WidthMm: w, HeightMm: h, CornerRadiusMm: r}
}
