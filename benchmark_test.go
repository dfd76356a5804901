package outline

import (
	"fmt"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkBuild benchmarks generating and rounding every archetype.
func BenchmarkBuild(b *testing.B) {
	for _, a := range Archetypes() {
		b.Run(a.String(), func(b *testing.B) {
			spec := ShapeSpec{Archetype: a, WidthMm: 90, HeightMm: 60, CornerRadiusMm: 3}

			b.ReportAllocs()
			for b.Loop() {
				_, err := Build(spec)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSmooth benchmarks the adaptive smoother at increasing sizes,
// which increases the number of Catmull-Rom segments.
func BenchmarkSmooth(b *testing.B) {
	sizes := []float64{20, 200, 500}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%gx%g", size, size/2), func(b *testing.B) {
			raw, err := Generate(ShapeSpec{Archetype: HalfCircle, WidthMm: size, HeightMm: size / 2})
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				Smooth(raw, 3)
			}
		})
	}
}

// BenchmarkPlaceHoles benchmarks hole placement where the holes must be
// pulled inside a curved outline.
func BenchmarkPlaceHoles(b *testing.B) {
	o, err := Build(ShapeSpec{Archetype: Circle, WidthMm: 80, HeightMm: 80})
	if err != nil {
		b.Fatal(err)
	}
	spec := HoleSpec{DiameterMm: 3, Pattern: PatternFourCorner}
	cal := DefaultCalibration()

	b.ReportAllocs()
	for b.Loop() {
		PlaceHoles(o, spec, cal)
	}
}

// BenchmarkInset benchmarks the polygon offset used for borders.
func BenchmarkInset(b *testing.B) {
	o, err := Build(ShapeSpec{Archetype: BlockArrow, WidthMm: 120, HeightMm: 60, CornerRadiusMm: 4})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		Inset(o, FixedBorderMm/2)
	}
}

// BenchmarkDrag benchmarks a vertex drag including the validity checks.
func BenchmarkDrag(b *testing.B) {
	o, err := Build(ShapeSpec{Archetype: Octagon, WidthMm: 70, HeightMm: 70, CornerRadiusMm: 3})
	if err != nil {
		b.Fatal(err)
	}
	e := NewEditor()
	if err := e.Begin(o, 3); err != nil {
		b.Fatal(err)
	}
	start := e.Vertices()[0]

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		// alternate between two valid positions
		d := vec.Vec2{X: float64(i%2) * 2, Y: float64(i%2) * 1}
		if _, err := e.MoveVertex(0, start.Add(d)); err != nil {
			b.Fatal(err)
		}
		i++
	}
}
