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

package testcases

import (
	"seehuhn.de/go/outline"
)

var basicCases = []TestCase{
	{Name: "rectangle", Shape: shape(outline.Rectangle, 85, 55, 0)},
	{Name: "square", Shape: shape(outline.Rectangle, 60, 60, 0)},
	{Name: "circle", Shape: shape(outline.Circle, 60, 60, 0)},
	{Name: "ellipse", Shape: shape(outline.Circle, 90, 50, 0)},
	{Name: "hexagon", Shape: shape(outline.Hexagon, 80, 70, 0)},
	{Name: "octagon", Shape: shape(outline.Octagon, 70, 70, 0)},
	{Name: "triangle", Shape: shape(outline.Triangle, 80, 70, 0)},
	{Name: "block_arrow", Shape: shape(outline.BlockArrow, 120, 60, 0)},
	{Name: "pointer_arrow", Shape: shape(outline.PointerArrow, 100, 50, 0)},
	{Name: "flag", Shape: shape(outline.Flag, 100, 60, 0)},
	{Name: "diamond", Shape: shape(outline.Diamond, 70, 90, 0)},
	{Name: "circle_line", Shape: shape(outline.CircleLine, 60, 60, 0)},
	{Name: "circle_cross", Shape: shape(outline.CircleCross, 60, 60, 0)},
}

var roundedCases = []TestCase{
	{Name: "rectangle_r2", Shape: shape(outline.Rectangle, 120, 80, 2)},
	{Name: "rectangle_r10", Shape: shape(outline.Rectangle, 85, 55, 10)},
	{Name: "small_rectangle_clamped", Shape: shape(outline.Rectangle, 10, 6, 5)},
	{Name: "hexagon_r4", Shape: shape(outline.Hexagon, 80, 70, 4)},
	{Name: "octagon_r3", Shape: shape(outline.Octagon, 70, 70, 3)},
	{Name: "triangle_r5", Shape: shape(outline.Triangle, 80, 70, 5)},
	{Name: "block_arrow_r2", Shape: shape(outline.BlockArrow, 120, 60, 2)},
	{Name: "pointer_arrow_r3", Shape: shape(outline.PointerArrow, 100, 50, 3)},
	{Name: "flag_r2", Shape: shape(outline.Flag, 100, 60, 2)},
	{Name: "diamond_r6", Shape: shape(outline.Diamond, 70, 90, 6)},
	{Name: "lock_r2", Shape: shape(outline.Lock, 60, 80, 2)},
	{Name: "huge_radius", Shape: shape(outline.Rectangle, 50, 30, 100)},
}

var adaptiveCases = []TestCase{
	{Name: "equilateral", Shape: shape(outline.AdaptiveTriangle, 80, 80*0.8660254037844386, 0)},
	{Name: "tall", Shape: shape(outline.AdaptiveTriangle, 60, 120, 3)},
	{Name: "wide", Shape: shape(outline.AdaptiveTriangle, 150, 50, 3)},
	{Name: "wide_sharp", Shape: shape(outline.AdaptiveTriangle, 150, 50, 0)},
}

var curvedCases = []TestCase{
	{Name: "half_circle", Shape: shape(outline.HalfCircle, 80, 40, 0)},
	{Name: "half_circle_r3", Shape: shape(outline.HalfCircle, 80, 40, 3)},
	{Name: "half_ellipse_r3", Shape: shape(outline.HalfCircle, 120, 40, 3)},
	{Name: "extended_half_circle", Shape: shape(outline.ExtendedHalfCircle, 60, 80, 0)},
	{Name: "extended_half_circle_r4", Shape: shape(outline.ExtendedHalfCircle, 60, 80, 4)},
	{Name: "lock", Shape: shape(outline.Lock, 60, 80, 0)},
	{Name: "lock_narrow_arch", Shape: outline.ShapeSpec{
		Archetype: outline.Lock,
		WidthMm:   60,
		HeightMm:  80,
		Aux:       outline.Aux{LockArchWidthMm: 30, LockArchHeightMm: 20},
	}},
}

var holeCases = []TestCase{
	{
		Name:  "top_center",
		Shape: shape(outline.Rectangle, 85, 55, 3),
		Holes: outline.HoleSpec{DiameterMm: 4, Pattern: outline.PatternTopCenter},
	},
	{
		Name:  "two_side",
		Shape: shape(outline.Rectangle, 120, 60, 3),
		Holes: outline.HoleSpec{DiameterMm: 3, Pattern: outline.PatternTwoSide},
	},
	{
		Name:  "four_corner",
		Shape: shape(outline.Rectangle, 100, 60, 0),
		Holes: outline.HoleSpec{DiameterMm: 2.5, Pattern: outline.PatternFourCorner},
	},
	{
		Name:  "four_corner_rounded",
		Shape: shape(outline.Rectangle, 100, 60, 12),
		Holes: outline.HoleSpec{DiameterMm: 2.5, Pattern: outline.PatternFourCorner},
	},
	{
		Name:  "four_rect_corner",
		Shape: shape(outline.Rectangle, 100, 60, 2),
		Holes: outline.HoleSpec{Pattern: outline.PatternFourRectCorner},
	},
	{
		Name:  "left_right",
		Shape: shape(outline.Hexagon, 100, 60, 2),
		Holes: outline.HoleSpec{DiameterMm: 4, Pattern: outline.PatternLeftCenter},
	},
	{
		Name:  "circle_four_corner",
		Shape: shape(outline.Circle, 80, 80, 0),
		Holes: outline.HoleSpec{DiameterMm: 3, Pattern: outline.PatternFourCorner},
	},
	{
		Name:  "lock",
		Shape: shape(outline.Lock, 60, 80, 0),
		Holes: outline.HoleSpec{DiameterMm: 5, Pattern: outline.PatternTopCenter},
	},
}

var borderCases = []TestCase{
	{
		Name:   "thin_rectangle",
		Shape:  shape(outline.Rectangle, 85, 55, 4),
		Border: outline.BorderSpec{Mode: outline.BorderThin, ColorRef: "#204080"},
	},
	{
		Name:   "fixed_hexagon",
		Shape:  shape(outline.Hexagon, 80, 70, 3),
		Border: outline.BorderSpec{Mode: outline.BorderFixed, ThicknessMm: 0.5},
	},
	{
		Name:   "fixed_ellipse",
		Shape:  shape(outline.Circle, 90, 60, 0),
		Border: outline.BorderSpec{Mode: outline.BorderFixed},
	},
	{
		Name:   "thin_half_circle",
		Shape:  shape(outline.HalfCircle, 80, 40, 3),
		Border: outline.BorderSpec{Mode: outline.BorderThin},
	},
}
