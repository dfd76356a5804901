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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPathCommands(t *testing.T) {
	o, err := Generate(ShapeSpec{Archetype: Circle, WidthMm: 40, HeightMm: 40})
	if err != nil {
		t.Fatal(err)
	}
	var cmds []path.Command
	var last vec.Vec2
	for cmd, pts := range o.Path() {
		cmds = append(cmds, cmd)
		if len(pts) > 0 {
			last = pts[len(pts)-1]
		}
	}
	want := []path.Command{
		path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose,
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}
	if last != o.Start {
		t.Errorf("path ends at %v, want %v", last, o.Start)
	}
}

func TestPathStopsEarly(t *testing.T) {
	o, err := Build(ShapeSpec{Archetype: Octagon, WidthMm: 40, HeightMm: 40, CornerRadiusMm: 5})
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for range o.Path() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("iteration did not stop: %d", count)
	}
}

// TestArcToCubics checks that the cubic approximation of an arc stays
// close to the true circle.
func TestArcToCubics(t *testing.T) {
	const r = 50.0
	center := vec.Vec2{X: 10, Y: 20}
	for _, sweep := range []float64{math.Pi / 3, -math.Pi, 1.5 * math.Pi, 2 * math.Pi} {
		s := Arc(center, r, r, 0.3, sweep)
		p0 := ellipsePoint(center, r, r, 0.3)
		arcToCubics(s, func(c1, c2, p vec.Vec2) bool {
			for i := range 11 {
				q := cubicPoint(p0, c1, c2, p, float64(i)/10)
				if d := math.Abs(q.Sub(center).Length() - r); d > 1e-3*r {
					t.Errorf("sweep %g: point %v is %g off the circle", sweep, q, d)
				}
			}
			p0 = p
			return true
		})
		if p0.Sub(s.End).Length() > 1e-9 {
			t.Errorf("sweep %g: ends at %v, want %v", sweep, p0, s.End)
		}
	}
}

func TestPerimeter(t *testing.T) {
	circle, err := Generate(ShapeSpec{Archetype: Circle, WidthMm: 20, HeightMm: 20})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := circle.Perimeter(), 20*math.Pi; math.Abs(got-want) > 1e-9 {
		t.Errorf("circle: %g, want %g", got, want)
	}

	// Ramanujan's approximation
	ellipse, err := Generate(ShapeSpec{Archetype: Circle, WidthMm: 60, HeightMm: 20})
	if err != nil {
		t.Fatal(err)
	}
	a, b := 30.0, 10.0
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	want := math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	if got := ellipse.Perimeter(); math.Abs(got-want) > 0.01 {
		t.Errorf("ellipse: %g, want %g", got, want)
	}

	rect, err := Generate(ShapeSpec{Archetype: Rectangle, WidthMm: 30, HeightMm: 10})
	if err != nil {
		t.Fatal(err)
	}
	if got := rect.Perimeter(); got != 80 {
		t.Errorf("rectangle: %g, want 80", got)
	}
}

func TestFlattenTolerance(t *testing.T) {
	o, err := Generate(ShapeSpec{Archetype: Circle, WidthMm: 100, HeightMm: 100})
	if err != nil {
		t.Fatal(err)
	}
	for _, tol := range []float64{1, 0.1, 0.01} {
		pts := o.Flatten(tol)
		n := len(pts)
		for i := range n {
			mid := pts[i].Add(pts[(i+1)%n]).Mul(0.5)
			d := 50 - mid.Sub(vec.Vec2{X: 50, Y: 50}).Length()
			if d > tol+1e-9 {
				t.Errorf("tol %g: chord %d deviates by %g", tol, i, d)
			}
		}
		if pts[0] == pts[n-1] {
			t.Errorf("tol %g: first point repeated", tol)
		}
	}
}

func TestTransform(t *testing.T) {
	o, err := Build(ShapeSpec{Archetype: Rectangle, WidthMm: 40, HeightMm: 20, CornerRadiusMm: 5})
	if err != nil {
		t.Fatal(err)
	}

	moved := o.Translate(vec.Vec2{X: 10, Y: -5})
	b := moved.Bounds()
	if math.Abs(b.LLx-10) > 1e-9 || math.Abs(b.LLy+5) > 1e-9 ||
		math.Abs(b.URx-50) > 1e-9 || math.Abs(b.URy-15) > 1e-9 {
		t.Errorf("translated bounds %v", b)
	}
	if o.Start == moved.Start {
		t.Error("original was modified")
	}

	// mirroring keeps arcs and reverses the orientation
	mirror := o.Transform(matrix.Matrix{-1, 0, 0, 1, 40, 0})
	if got := mirror.Orientation(); got != CounterClockwise {
		t.Errorf("mirrored orientation %s", got)
	}
	if math.Abs(mirror.Area()-o.Area()) > 1e-6 {
		t.Errorf("mirrored area %g, want %g", mirror.Area(), o.Area())
	}
	for i, s := range mirror.Segments {
		if s.Kind == SegmentArc {
			start := ellipsePoint(s.Center, s.RX, s.RY, s.Theta0)
			var prev vec.Vec2
			if i == 0 {
				prev = mirror.Start
			} else {
				prev = mirror.Segments[i-1].End
			}
			if start.Sub(prev).Length() > 1e-9 {
				t.Errorf("arc %d starts at %v, want %v", i, start, prev)
			}
		}
	}

	// rotation turns arcs into cubics
	rot := o.Transform(matrix.Matrix{0, 1, -1, 0, 0, 0})
	for _, s := range rot.Segments {
		if s.Kind == SegmentArc {
			t.Fatal("rotated outline still has arcs")
		}
	}
	if math.Abs(rot.Area()-o.Area()) > 0.1 {
		t.Errorf("rotated area %g, want %g", rot.Area(), o.Area())
	}
}

func TestData(t *testing.T) {
	o, err := Generate(ShapeSpec{Archetype: Diamond, WidthMm: 10, HeightMm: 10})
	if err != nil {
		t.Fatal(err)
	}
	d := o.Data()
	if len(d.Cmds) != 6 {
		t.Errorf("got %d commands, want 6", len(d.Cmds))
	}
}

func TestClone(t *testing.T) {
	o, err := Build(ShapeSpec{Archetype: CircleCross, WidthMm: 30, HeightMm: 30})
	if err != nil {
		t.Fatal(err)
	}
	c := o.Clone()
	c.Marks[0][0].X = 99
	c.Ellipse.RX = 99
	c.Segments[0].End.X = 99
	if o.Marks[0][0].X == 99 || o.Ellipse.RX == 99 || o.Segments[0].End.X == 99 {
		t.Error("clone shares memory with the original")
	}
}
