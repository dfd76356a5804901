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

package outline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

func TestSessionTestCases(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				s, err := tc.Session()
				require.NoError(t, err)

				o := s.Outline()
				require.NotEmpty(t, o.Segments)
				assert.Greater(t, o.Area(), 0.0)
				b := o.Bounds()
				// smoothed curves may overshoot the box slightly
				const slack = 0.05
				assert.GreaterOrEqual(t, b.LLx, -slack)
				assert.GreaterOrEqual(t, b.LLy, -slack)
				assert.LessOrEqual(t, b.URx, tc.Shape.WidthMm+slack)
				assert.LessOrEqual(t, b.URy, tc.Shape.HeightMm+slack)

				for i, h := range s.Holes() {
					assert.Greater(t, outline.Clearance(o, h), 0.0, "hole %d", i)
				}

				borders := s.Borders()
				require.NotNil(t, borders.Hairline)
				assert.Less(t, borders.Hairline.Area(), o.Area())
				assert.Equal(t, tc.Border.Mode == outline.BorderFixed, borders.Decorative != nil)
			})
		}
	}
}

func hexagonSession(t *testing.T) *outline.Session {
	t.Helper()
	spec := outline.ShapeSpec{Archetype: outline.Hexagon, WidthMm: 60, HeightMm: 50, CornerRadiusMm: 4}
	s, err := outline.NewSession(spec, outline.DefaultCalibration())
	require.NoError(t, err)
	return s
}

func TestSessionEditLocksSetters(t *testing.T) {
	s := hexagonSession(t)
	_, err := s.BeginEdit()
	require.NoError(t, err)
	assert.True(t, s.Editing())

	assert.ErrorIs(t, s.SetShape(outline.ShapeSpec{Archetype: outline.Rectangle, WidthMm: 10, HeightMm: 10}),
		outline.ErrEditorState)
	assert.ErrorIs(t, s.SetRadius(1), outline.ErrEditorState)
	assert.ErrorIs(t, s.SetWidth(80), outline.ErrEditorState)
	assert.ErrorIs(t, s.SetHeight(80), outline.ErrEditorState)
	_, err = s.BeginEdit()
	assert.ErrorIs(t, err, outline.ErrEditorState)

	// the shape is unchanged
	assert.Equal(t, 60.0, s.Shape().WidthMm)
	assert.Equal(t, 4.0, s.Shape().CornerRadiusMm)
}

func TestSessionNotEditing(t *testing.T) {
	s := hexagonSession(t)
	assert.False(t, s.Editing())
	assert.ErrorIs(t, s.CommitEdit(), outline.ErrEditorState)
	assert.ErrorIs(t, s.CancelEdit(), outline.ErrEditorState)
}

func TestSessionCommitEdit(t *testing.T) {
	s := hexagonSession(t)
	e, err := s.BeginEdit()
	require.NoError(t, err)
	_, err = e.Drag(0, vec.Vec2{X: -20, Y: -10})
	require.NoError(t, err)
	require.NoError(t, s.CommitEdit())

	assert.False(t, s.Editing())
	assert.Equal(t, outline.Committed, e.State())
	assert.InDelta(t, 65, s.Shape().WidthMm, 1e-9)
	assert.InDelta(t, 60, s.Shape().HeightMm, 1e-9)

	o := s.Outline()
	assert.Equal(t, outline.KindCustomEdited, o.Kind)
	base := o.Base
	require.Len(t, base, 6)

	// re-rounding keeps the edited vertices
	require.NoError(t, s.SetRadius(0))
	assert.Equal(t, base, s.Outline().Base)
	assert.Nil(t, s.Outline().Corners)
	assert.Len(t, s.Outline().Segments, 6)

	require.NoError(t, s.SetRadius(3))
	assert.Equal(t, base, s.Outline().Base)
	for i, c := range s.Outline().Corners {
		assert.Equal(t, 3.0, c.Radius, "corner %d", i)
	}
	assert.Equal(t, outline.KindCustomEdited, s.Outline().Kind)
}

func TestSessionResizeCustom(t *testing.T) {
	s := hexagonSession(t)
	e, err := s.BeginEdit()
	require.NoError(t, err)
	_, err = e.Drag(0, vec.Vec2{X: -20, Y: -10})
	require.NoError(t, err)
	require.NoError(t, s.CommitEdit())
	before := s.Outline().Base

	require.NoError(t, s.SetWidth(78))
	assert.Equal(t, 78.0, s.Shape().WidthMm)
	o := s.Outline()
	assert.Equal(t, outline.KindCustomEdited, o.Kind)
	require.Len(t, o.Base, len(before))
	for i, p := range o.Base {
		assert.InDelta(t, before[i].X*78/65, p.X, 1e-9)
		assert.InDelta(t, before[i].Y, p.Y, 1e-9)
	}

	// a new shape discards the custom edit
	require.NoError(t, s.SetShape(outline.ShapeSpec{Archetype: outline.Octagon, WidthMm: 50, HeightMm: 50}))
	assert.Equal(t, outline.KindRaw, s.Outline().Kind)
}

func TestSessionCancelEdit(t *testing.T) {
	s := hexagonSession(t)
	before := s.Outline()
	e, err := s.BeginEdit()
	require.NoError(t, err)
	_, err = e.Drag(2, vec.Vec2{X: 5, Y: 3})
	require.NoError(t, err)

	require.NoError(t, s.CancelEdit())
	assert.False(t, s.Editing())
	assert.Equal(t, outline.Cancelled, e.State())
	assert.Equal(t, before, s.Outline())
	assert.Equal(t, 60.0, s.Shape().WidthMm)
}

func TestSessionReleaseDrag(t *testing.T) {
	s := hexagonSession(t)
	assert.ErrorIs(t, s.ReleaseDrag(), outline.ErrEditorState)

	e, err := s.BeginEdit()
	require.NoError(t, err)
	_, err = e.Drag(0, vec.Vec2{X: -20, Y: -10})
	require.NoError(t, err)
	require.NoError(t, s.ReleaseDrag())

	assert.True(t, s.Editing())
	assert.InDelta(t, 65, s.Shape().WidthMm, 1e-9)
	assert.InDelta(t, 60, s.Shape().HeightMm, 1e-9)
	minX, minY := math.Inf(1), math.Inf(1)
	for _, p := range e.Vertices() {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
	}
	assert.InDelta(t, 0, minX, 1e-9)
	assert.InDelta(t, 0, minY, 1e-9)

	// cancelling restores the size from before the edit
	require.NoError(t, s.CancelEdit())
	assert.Equal(t, 60.0, s.Shape().WidthMm)
	assert.Equal(t, 50.0, s.Shape().HeightMm)
	assert.ErrorIs(t, s.ReleaseDrag(), outline.ErrEditorState)
}

func TestSessionInvalidShape(t *testing.T) {
	s := hexagonSession(t)
	before := s.Outline()
	err := s.SetShape(outline.ShapeSpec{Archetype: outline.Rectangle, WidthMm: 0, HeightMm: 10})
	assert.ErrorIs(t, err, outline.ErrInvalidDimensions)
	assert.Same(t, before, s.Outline())
	assert.Equal(t, outline.Hexagon, s.Shape().Archetype)
}

func TestSessionHolesFollowShape(t *testing.T) {
	s, err := outline.NewSession(outline.ShapeSpec{Archetype: outline.Rectangle, WidthMm: 100, HeightMm: 60},
		outline.DefaultCalibration())
	require.NoError(t, err)
	assert.Empty(t, s.Holes())

	s.SetHoles(outline.HoleSpec{DiameterMm: 2.5, Pattern: outline.PatternTwoSide})
	holes := s.Holes()
	require.Len(t, holes, 2)
	assert.InDelta(t, 30, holes[0].Center.Y, 1e-9)

	require.NoError(t, s.SetHeight(80))
	holes = s.Holes()
	require.Len(t, holes, 2)
	assert.InDelta(t, 40, holes[0].Center.Y, 1e-9)
}
