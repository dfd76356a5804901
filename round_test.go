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
	"math"
	"reflect"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// TestRoundZeroIsIdentity checks that rounding with radius zero returns
// the generator output unchanged, for every archetype.
func TestRoundZeroIsIdentity(t *testing.T) {
	for _, a := range Archetypes() {
		raw, err := Generate(ShapeSpec{Archetype: a, WidthMm: 70, HeightMm: 50})
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range []float64{0, -1, math.NaN()} {
			got := Round(raw, r)
			if !reflect.DeepEqual(got, raw) {
				t.Errorf("%s: Round(o, %g) changed the outline", a, r)
			}
			if got == raw {
				t.Errorf("%s: Round returned its argument", a)
			}
		}
	}
}

func TestRoundRectangle(t *testing.T) {
	cases := []struct {
		name      string
		w, h, r   float64
		want      float64
		wantArcs  int
		wantLines int
	}{
		{"plain", 120, 80, 2, 2, 4, 4},
		{"large radius", 120, 80, 10, 10, 4, 4},
		{"clamped", 10, 6, 5, 3, 4, 2},
		{"pill", 60, 20, 100, 10, 4, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Build(ShapeSpec{Archetype: Rectangle, WidthMm: tc.w, HeightMm: tc.h, CornerRadiusMm: tc.r})
			if err != nil {
				t.Fatal(err)
			}
			if o.Kind != KindRounded {
				t.Errorf("kind %s", o.Kind)
			}
			if len(o.Corners) != 4 {
				t.Fatalf("got %d corners", len(o.Corners))
			}
			for i, c := range o.Corners {
				if !c.Convex {
					t.Errorf("corner %d not convex", i)
				}
				if math.Abs(c.Radius-tc.want) > 1e-9 {
					t.Errorf("corner %d: radius %g, want %g", i, c.Radius, tc.want)
				}
				if c.Vertex != o.Base[i] {
					t.Errorf("corner %d at %v, want %v", i, c.Vertex, o.Base[i])
				}
			}
			if tc.wantArcs > 0 {
				arcs, lines := 0, 0
				for _, s := range o.Segments {
					switch s.Kind {
					case SegmentArc:
						arcs++
					case SegmentLine:
						lines++
					}
				}
				if arcs != tc.wantArcs || lines != tc.wantLines {
					t.Errorf("got %d arcs and %d lines, want %d and %d",
						arcs, lines, tc.wantArcs, tc.wantLines)
				}
			}

			if tc.wantArcs > 0 {
				rho := tc.want
				wantArea := tc.w*tc.h - (4-math.Pi)*rho*rho
				if got := o.Area(); math.Abs(got-wantArea) > 0.1 {
					t.Errorf("area %g, want %g", got, wantArea)
				}
			}
			b := o.Bounds()
			if math.Abs(b.URx-b.LLx-tc.w) > 1e-6 || math.Abs(b.URy-b.LLy-tc.h) > 1e-6 {
				t.Errorf("bounds %v changed", b)
			}
		})
	}
}

// TestRoundPerimeterDecreases checks that larger radii never make the
// outline longer.
func TestRoundPerimeterDecreases(t *testing.T) {
	for _, a := range []Archetype{Rectangle, Hexagon, Octagon, Triangle, BlockArrow, Flag, Diamond} {
		raw, err := Generate(ShapeSpec{Archetype: a, WidthMm: 90, HeightMm: 60})
		if err != nil {
			t.Fatal(err)
		}
		prev := raw.Perimeter()
		for r := 0.5; r <= 40; r += 0.5 {
			o := RoundPolygon(raw.Base, r, FilletArc)
			p := o.Perimeter()
			if p > prev+1e-6 {
				t.Errorf("%s: perimeter grows from %g to %g at r=%g", a, prev, p, r)
			}
			prev = p
		}
	}
}

// TestRoundPerimeterContinuous checks that the perimeter of a built
// outline decreases without jumps as the radius grows in small steps.
func TestRoundPerimeterContinuous(t *testing.T) {
	cases := []struct {
		name       string
		spec       ShapeSpec
		from, to   float64
		step       float64
		maxPerStep float64
	}{
		{"rectangle", ShapeSpec{Archetype: Rectangle, WidthMm: 120, HeightMm: 80}, 1.9, 2.3, 0.005, 0.02},
		{"small rectangle", ShapeSpec{Archetype: Rectangle, WidthMm: 8, HeightMm: 5}, 0, 3, 0.005, 0.02},
		{"rectangle wide range", ShapeSpec{Archetype: Rectangle, WidthMm: 90, HeightMm: 60}, 0, 35, 0.02, 0.1},
		{"hexagon", ShapeSpec{Archetype: Hexagon, WidthMm: 90, HeightMm: 60}, 0, 25, 0.02, 0.1},
		{"octagon", ShapeSpec{Archetype: Octagon, WidthMm: 60, HeightMm: 60}, 0, 15, 0.02, 0.1},
		{"triangle", ShapeSpec{Archetype: Triangle, WidthMm: 90, HeightMm: 60}, 0, 25, 0.02, 0.2},
		{"flag", ShapeSpec{Archetype: Flag, WidthMm: 90, HeightMm: 60}, 0, 25, 0.02, 0.2},
		{"small hexagon", ShapeSpec{Archetype: Hexagon, WidthMm: 7, HeightMm: 6}, 0, 3, 0.005, 0.02},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := math.NaN()
			for r := tc.from; r <= tc.to; r += tc.step {
				spec := tc.spec
				spec.CornerRadiusMm = r
				o, err := Build(spec)
				if err != nil {
					t.Fatal(err)
				}
				p := o.Perimeter()
				if !math.IsNaN(prev) {
					if p > prev+1e-6 {
						t.Errorf("r=%.3f: perimeter grows from %.6f to %.6f", r, prev, p)
					}
					if prev-p > tc.maxPerStep {
						t.Errorf("r=%.3f: perimeter jumps from %.6f to %.6f", r, prev, p)
					}
				}
				prev = p
			}
		})
	}
}

func TestFilletModeBySize(t *testing.T) {
	small := scaleTemplate(rectangleTemplate, 8, 5)
	large := scaleTemplate(rectangleTemplate, 120, 80)
	if m := filletMode(FilletAuto, small); m != FilletQuad {
		t.Errorf("small shape: mode %d", m)
	}
	if m := filletMode(FilletAuto, large); m != FilletArc {
		t.Errorf("large shape: mode %d", m)
	}
	if m := filletMode(FilletQuad, large); m != FilletQuad {
		t.Errorf("explicit mode changed to %d", m)
	}

	// the representation does not depend on the radius
	for _, r := range []float64{0.5, 1, 2, 4, 10} {
		o := RoundPolygon(large, r, FilletAuto)
		for i, s := range o.Segments {
			if s.Kind == SegmentLine && i%2 == 1 {
				t.Errorf("r=%g: segment %d is a line, want an arc", r, i)
			}
		}
	}
}

// TestRoundNotchNextToFillet covers a reflex vertex which lies inside
// the region a full-size fillet at a neighbouring corner would cut off.
func TestRoundNotchNextToFillet(t *testing.T) {
	pts := []vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0.5}, {X: 1, Y: 1},
		{X: 10, Y: 1.5}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	if !IsValid(pts) {
		t.Fatal("test polygon is not valid")
	}
	for _, mode := range []FilletMode{FilletArc, FilletQuad, FilletAuto} {
		o := RoundPolygon(pts, 5, mode)
		if !IsSimple(o.Flatten(simpleTolerance)) {
			t.Errorf("mode %d: rounded outline is not simple", mode)
		}
		r0 := o.Corners[0].Radius
		if r0 <= 0 || r0 >= 5 {
			t.Errorf("mode %d: corner 0 has radius %g", mode, r0)
		}
		if r := o.Corners[6].Radius; r != 5 {
			t.Errorf("mode %d: corner 6 has radius %g, want 5", mode, r)
		}
		if r := o.Corners[5].Radius; math.Abs(r-4.25) > 1e-9 {
			t.Errorf("mode %d: corner 5 has radius %g, want 4.25", mode, r)
		}
	}
}

func TestRoundPolygonDegenerate(t *testing.T) {
	for _, pts := range [][]vec.Vec2{
		nil,
		{{X: 1, Y: 2}},
		{{X: 0, Y: 0}, {X: 5, Y: 0}},
	} {
		o := RoundPolygon(pts, 3, FilletAuto)
		if o.Kind != KindRaw || len(o.Corners) != 0 {
			t.Errorf("%d points: kind %s, %d corners", len(pts), o.Kind, len(o.Corners))
		}
	}

	// missing radii count as zero
	pts := scaleTemplate(rectangleTemplate, 40, 30)
	o := RoundPolygonRadii(pts, []float64{4, 4}, FilletArc)
	want := []float64{4, 4, 0, 0}
	for i, c := range o.Corners {
		if c.Radius != want[i] {
			t.Errorf("corner %d: radius %g, want %g", i, c.Radius, want[i])
		}
	}
}

// TestFilletFitsEdges checks the radius clamp and that rounded outlines
// stay simple.
func TestFilletFitsEdges(t *testing.T) {
	polys := map[string][]vec.Vec2{
		"kite": {{X: 10, Y: 0}, {X: 20, Y: 5}, {X: 10, Y: 40}, {X: 0, Y: 5}},
		"skewed": {
			{X: 0, Y: 0}, {X: 30, Y: 2}, {X: 32, Y: 20}, {X: 18, Y: 8}, {X: 3, Y: 25},
		},
		"thin": {{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 3}, {X: 0, Y: 3}},
	}
	for name, pts := range polys {
		for _, mode := range []FilletMode{FilletArc, FilletQuad, FilletAuto} {
			for _, r := range []float64{0.5, 2, 8, 50} {
				o := RoundPolygon(pts, r, mode)
				n := len(pts)
				for i, c := range o.Corners {
					l1 := pts[i].Sub(pts[(i+n-1)%n]).Length()
					l2 := pts[(i+1)%n].Sub(pts[i]).Length()
					half := min(l1, l2) / 2
					if c.Radius > r+1e-9 || c.Radius > half+1e-9 {
						t.Errorf("%s r=%g: corner %d radius %g exceeds limit", name, r, i, c.Radius)
					}
					if c.Radius > 0 {
						theta := InteriorAngles(pts)[i]
						d := c.Radius / math.Tan(theta/2)
						if d > half+1e-9 {
							t.Errorf("%s r=%g: corner %d tangent distance %g > %g", name, r, i, d, half)
						}
					}
				}
				if !IsSimple(o.Flatten(0.01)) {
					t.Errorf("%s r=%g mode %d: rounded outline is not simple", name, r, mode)
				}
				if o.Orientation() != orientationOf(pts) {
					t.Errorf("%s r=%g: orientation changed", name, r)
				}
			}
		}
	}
}

func TestRoundConcaveCorners(t *testing.T) {
	o, err := Build(ShapeSpec{Archetype: Flag, WidthMm: 100, HeightMm: 60, CornerRadiusMm: 3})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range o.Corners {
		notch := i == 2
		if c.Convex == notch {
			t.Errorf("corner %d: convex = %t", i, c.Convex)
		}
		if notch && c.Radius != 0 {
			t.Errorf("notch rounded with radius %g", c.Radius)
		}
		if !notch && c.Radius != 3 {
			t.Errorf("corner %d: radius %g, want 3", i, c.Radius)
		}
	}
	// the notch vertex is still on the outline
	found := false
	for _, s := range o.Segments {
		if s.End == o.Base[2] {
			found = true
		}
	}
	if !found {
		t.Error("concave vertex was moved")
	}
}

func TestRoundQuadMode(t *testing.T) {
	pts := scaleTemplate(hexagonTemplate, 80, 70)
	o := RoundPolygon(pts, 5, FilletQuad)
	for i, s := range o.Segments {
		if s.Kind != SegmentLine {
			t.Fatalf("segment %d has kind %d", i, s.Kind)
		}
	}
	arc := RoundPolygon(pts, 5, FilletArc)
	if d := math.Abs(o.Area() - arc.Area()); d > 1 {
		t.Errorf("quad and arc fillets differ in area by %g", d)
	}
}

func TestRoundAdaptivePentagon(t *testing.T) {
	o, err := Build(ShapeSpec{Archetype: AdaptiveTriangle, WidthMm: 60, HeightMm: 120, CornerRadiusMm: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Corners) != 5 {
		t.Fatalf("got %d corners", len(o.Corners))
	}
	want := []float64{3, 3 * pentagonSideWeight, 3, 3, 3 * pentagonSideWeight}
	for i, c := range o.Corners {
		if math.Abs(c.Radius-want[i]) > 1e-9 {
			t.Errorf("corner %d at %v: radius %g, want %g", i, c.Vertex, c.Radius, want[i])
		}
	}
	if o.Archetype != AdaptiveTriangle || o.Full {
		t.Errorf("archetype %s, full %t", o.Archetype, o.Full)
	}
}

func TestRoundLock(t *testing.T) {
	raw, err := Generate(ShapeSpec{Archetype: Lock, WidthMm: 60, HeightMm: 80})
	if err != nil {
		t.Fatal(err)
	}
	o := Round(raw, 2)
	if o.Kind != KindRounded || o.Arch == nil {
		t.Fatalf("kind %s, arch %v", o.Kind, o.Arch)
	}
	rounded := 0
	for _, c := range o.Corners {
		if c.Radius > 0 {
			rounded++
		}
	}
	if rounded != 4 {
		t.Errorf("got %d rounded corners, want 4", rounded)
	}
	hasArc := false
	for _, s := range o.Segments {
		if s.Kind == SegmentArc && s.RX == raw.Arch.RX && s.RY == raw.Arch.RY {
			hasArc = true
		}
	}
	if !hasArc {
		t.Error("arch was not kept")
	}
	if !IsSimple(o.Flatten(0.01)) {
		t.Error("rounded lock is not simple")
	}
}

func TestRoundCircleUnchanged(t *testing.T) {
	raw, err := Generate(ShapeSpec{Archetype: CircleCross, WidthMm: 50, HeightMm: 50})
	if err != nil {
		t.Fatal(err)
	}
	o := Round(raw, 5)
	if o.Kind != KindRounded {
		t.Errorf("kind %s", o.Kind)
	}
	if !reflect.DeepEqual(o.Segments, raw.Segments) || !reflect.DeepEqual(o.Marks, raw.Marks) {
		t.Error("circle geometry changed")
	}
}

func TestSealSeams(t *testing.T) {
	cases := []struct {
		a    Archetype
		r    float64
		want bool
	}{
		{Hexagon, 4, true},
		{Hexagon, 1, false},
		{Triangle, 3, true},
		{Rectangle, 10, false},
		{Diamond, 10, false},
	}
	for _, tc := range cases {
		o, err := Build(ShapeSpec{Archetype: tc.a, WidthMm: 80, HeightMm: 70, CornerRadiusMm: tc.r})
		if err != nil {
			t.Fatal(err)
		}
		if o.SealSeams != tc.want {
			t.Errorf("%s r=%g: SealSeams = %t", tc.a, tc.r, o.SealSeams)
		}
	}
}

func TestCuspLeftSharp(t *testing.T) {
	// interior angle of about 0.5°
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 200, Y: 1}, {X: 0, Y: 2}}
	o := RoundPolygon(pts, 3, FilletArc)
	if o.Corners[1].Radius != 0 {
		t.Errorf("cusp rounded with radius %g", o.Corners[1].Radius)
	}
	if !o.Corners[1].Convex {
		t.Error("cusp not reported as convex")
	}
}
