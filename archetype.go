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
	"fmt"
	"math"
)

// Archetype selects the base shape of a card.
type Archetype int

// These are the supported archetypes.
const (
	Rectangle Archetype = iota
	Circle              // ellipse if width and height differ
	Hexagon
	Octagon
	Triangle
	AdaptiveTriangle
	BlockArrow
	PointerArrow
	Flag
	Diamond
	HalfCircle
	ExtendedHalfCircle
	Lock
	CircleLine
	CircleCross

	numArchetypes
)

var archetypeNames = [numArchetypes]string{
	Rectangle:          "rectangle",
	Circle:             "circle",
	Hexagon:            "hexagon",
	Octagon:            "octagon",
	Triangle:           "triangle",
	AdaptiveTriangle:   "adaptive-triangle",
	BlockArrow:         "block-arrow",
	PointerArrow:       "pointer-arrow",
	Flag:               "flag",
	Diamond:            "diamond",
	HalfCircle:         "half-circle",
	ExtendedHalfCircle: "extended-half-circle",
	Lock:               "lock",
	CircleLine:         "circle-line",
	CircleCross:        "circle-cross",
}

func (a Archetype) String() string {
	if a < 0 || a >= numArchetypes {
		return fmt.Sprintf("Archetype(%d)", int(a))
	}
	return archetypeNames[a]
}

// Archetypes returns all supported archetypes in declaration order.
func Archetypes() []Archetype {
	res := make([]Archetype, numArchetypes)
	for i := range res {
		res[i] = Archetype(i)
	}
	return res
}

// ParseArchetype returns the archetype with the given name.
func ParseArchetype(name string) (Archetype, error) {
	for i, n := range archetypeNames {
		if n == name {
			return Archetype(i), nil
		}
	}
	return 0, fmt.Errorf("archetype %q: %w", name, ErrUnsupportedShapeKind)
}

// Curved reports whether the archetype is bounded by an ellipse or an
// elliptical arc instead of polygon corners.
func (a Archetype) Curved() bool {
	switch a {
	case Circle, CircleLine, CircleCross, HalfCircle, ExtendedHalfCircle, Lock:
		return true
	default:
		return false
	}
}

// Editable reports whether outlines of this archetype can be changed
// with the vertex editor.
func (a Archetype) Editable() bool {
	return a >= 0 && a < numArchetypes && !a.Curved()
}

// Limits on card dimensions, in millimetres.
const (
	// MaxSideMm is the largest width or height a card may have.
	MaxSideMm = 500.0

	// SecondarySideMm is the largest length of the edited side while the
	// other side exceeds this value.
	SecondarySideMm = 300.0

	// MinSideMm is the smallest width or height accepted by
	// ShapeSpec.WithWidth and ShapeSpec.WithHeight.
	MinSideMm = 5.0
)

// Aux holds archetype specific parameters. Zero values select the
// defaults.
type Aux struct {
	// LockArchWidthMm is the chord width of the lock's top arch.
	LockArchWidthMm float64

	// LockArchHeightMm is the height of the lock's top arch above the
	// body.
	LockArchHeightMm float64
}

// Default lock arch dimensions, in millimetres.
const (
	DefaultLockArchWidthMm  = 20.0
	DefaultLockArchHeightMm = 10.0
)

// ShapeSpec describes a card shape.
type ShapeSpec struct {
	Archetype      Archetype
	WidthMm        float64
	HeightMm       float64
	CornerRadiusMm float64
	Aux            Aux
}

// Validate checks the preconditions of Generate.
func (s ShapeSpec) Validate() error {
	if s.Archetype < 0 || s.Archetype >= numArchetypes {
		return fmt.Errorf("%s: %w", s.Archetype, ErrUnsupportedShapeKind)
	}
	if !positive(s.WidthMm) || !positive(s.HeightMm) {
		return fmt.Errorf("%s %gx%g: %w",
			s.Archetype, s.WidthMm, s.HeightMm, ErrInvalidDimensions)
	}
	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// WithWidth returns a copy of s with the width set to w. The width is
// clamped to the allowed range, the height is left unchanged.
func (s ShapeSpec) WithWidth(w float64) ShapeSpec {
	s.WidthMm = clampSide(w, s.HeightMm)
	return s
}

// WithHeight returns a copy of s with the height set to h. The height is
// clamped to the allowed range, the width is left unchanged.
func (s ShapeSpec) WithHeight(h float64) ShapeSpec {
	s.HeightMm = clampSide(h, s.WidthMm)
	return s
}

// clampSide clamps the length of the side being edited.
func clampSide(v, other float64) float64 {
	limit := MaxSideMm
	if other > SecondarySideMm {
		limit = SecondarySideMm
	}
	if math.IsNaN(v) {
		v = MinSideMm
	}
	c := min(max(v, MinSideMm), limit)
	if c != v {
		Logger().Debug("side length clamped", "requested", v, "limit", limit, "result", c)
	}
	return c
}

// lockArch returns the arch chord width and height for a lock card of
// the given size.
func (s ShapeSpec) lockArch() (w, h float64) {
	w = s.Aux.LockArchWidthMm
	if w <= 0 {
		w = DefaultLockArchWidthMm
	}
	h = s.Aux.LockArchHeightMm
	if h <= 0 {
		h = DefaultLockArchHeightMm
	}
	w = min(w, s.WidthMm)
	h = min(h, s.HeightMm/2)
	return w, h
}
