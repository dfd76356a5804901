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

package main

import (
	"image/png"
	"os"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/export"
)

func writeMask(fname string, o *outline.Outline, pxPerMm float64) error {
	m := export.Mask(o, pxPerMm)
	outline.Logger().Debug("mask rendered",
		"size", m.Bounds().Size(), "coverage", export.Coverage(m, pxPerMm), "area", o.Area())

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
