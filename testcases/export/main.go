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

// Command export writes the outlines of all test cases to JSON, for
// comparison against other renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/export"
	"seehuhn.de/go/outline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Archetype string        `json:"archetype"`
	Width     float64       `json:"width_mm"`
	Height    float64       `json:"height_mm"`
	Radius    float64       `json:"radius_mm,omitempty"`
	Kind      string        `json:"kind"`
	Path      []jsonSegment `json:"path"`
	SVG       string        `json:"svg"`
	Holes     []jsonHole    `json:"holes,omitempty"`
	Area      float64       `json:"area_mm2"`
	Perimeter float64       `json:"perimeter_mm"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonHole struct {
	Center   []float64 `json:"center"`
	Diameter float64   `json:"diameter,omitempty"`
	Width    float64   `json:"width,omitempty"`
	Height   float64   `json:"height,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	s, err := tc.Session()
	if err != nil {
		return jsonTestCase{}, err
	}
	o := s.Outline()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Archetype: tc.Shape.Archetype.String(),
		Width:     tc.Shape.WidthMm,
		Height:    tc.Shape.HeightMm,
		Radius:    tc.Shape.CornerRadiusMm,
		Kind:      o.Kind.String(),
		Path:      pathToJSON(o.Path()),
		SVG:       export.PathData(o),
		Area:      o.Area(),
		Perimeter: o.Perimeter(),
	}
	for _, h := range s.Holes() {
		jtc.Holes = append(jtc.Holes, holeToJSON(h))
	}
	return jtc, nil
}

func holeToJSON(h outline.Hole) jsonHole {
	jh := jsonHole{Center: []float64{h.Center.X, h.Center.Y}}
	if h.Rect {
		jh.Width = h.WidthMm
		jh.Height = h.HeightMm
	} else {
		jh.Diameter = h.DiameterMm
	}
	return jh
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
