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

	"seehuhn.de/go/geom/vec"
)

// Session holds the design state of one card: the shape, hole and
// border settings and the committed outline. While the vertex editor is
// active, it is the only owner of the geometry and all setters fail with
// ErrEditorState.
//
// A Session is not safe for concurrent use.
type Session struct {
	shape  ShapeSpec
	holes  HoleSpec
	border BorderSpec
	cal    Calibration

	outline *Outline
	editor  *Editor

	// preEdit is the shape before BeginEdit, restored by CancelEdit.
	preEdit ShapeSpec
}

// NewSession creates a session for the given shape.
func NewSession(spec ShapeSpec, cal Calibration) (*Session, error) {
	o, err := Build(spec)
	if err != nil {
		return nil, err
	}
	return &Session{
		shape:   spec,
		cal:     cal,
		outline: o,
	}, nil
}

// Shape returns the current shape.
func (s *Session) Shape() ShapeSpec {
	return s.shape
}

// Outline returns the committed outline.
func (s *Session) Outline() *Outline {
	return s.outline
}

// Editing reports whether the vertex editor is active.
func (s *Session) Editing() bool {
	return s.editor != nil && s.editor.State() == Editing
}

func (s *Session) checkIdle(op string) error {
	if s.Editing() {
		return fmt.Errorf("%s: %w (editing)", op, ErrEditorState)
	}
	return nil
}

// SetShape replaces the shape and regenerates the outline. Custom edits
// are discarded.
func (s *Session) SetShape(spec ShapeSpec) error {
	if err := s.checkIdle("set shape"); err != nil {
		return err
	}
	o, err := Build(spec)
	if err != nil {
		return err
	}
	s.shape = spec
	s.outline = o
	return nil
}

// SetRadius changes the corner radius. Custom-edited outlines are
// re-rounded from their retained base vertices.
func (s *Session) SetRadius(r float64) error {
	if err := s.checkIdle("set radius"); err != nil {
		return err
	}
	s.shape.CornerRadiusMm = r
	if s.outline.Kind == KindCustomEdited {
		s.outline = Round(customOutline(s.outline.Archetype, s.outline.Base), r)
		return nil
	}
	o, err := Build(s.shape)
	if err != nil {
		return err
	}
	s.outline = o
	return nil
}

// SetWidth changes the width, clamped as described for
// ShapeSpec.WithWidth. Custom-edited outlines are stretched
// horizontally.
func (s *Session) SetWidth(w float64) error {
	if err := s.checkIdle("set width"); err != nil {
		return err
	}
	return s.resize(s.shape.WithWidth(w))
}

// SetHeight changes the height, clamped as described for
// ShapeSpec.WithHeight. Custom-edited outlines are stretched
// vertically.
func (s *Session) SetHeight(h float64) error {
	if err := s.checkIdle("set height"); err != nil {
		return err
	}
	return s.resize(s.shape.WithHeight(h))
}

func (s *Session) resize(spec ShapeSpec) error {
	if s.outline.Kind != KindCustomEdited {
		return s.SetShape(spec)
	}
	sx := spec.WidthMm / s.shape.WidthMm
	sy := spec.HeightMm / s.shape.HeightMm
	base := make([]vec.Vec2, len(s.outline.Base))
	for i, p := range s.outline.Base {
		base[i] = vec.Vec2{X: p.X * sx, Y: p.Y * sy}
	}
	if !IsValid(base) {
		return fmt.Errorf("resize to %gx%g: %w", spec.WidthMm, spec.HeightMm, ErrInvalidDimensions)
	}
	s.shape = spec
	s.outline = Round(customOutline(s.outline.Archetype, base), spec.CornerRadiusMm)
	return nil
}

// SetHoles changes the hole settings.
func (s *Session) SetHoles(h HoleSpec) {
	s.holes = h
}

// SetBorder changes the border settings.
func (s *Session) SetBorder(b BorderSpec) {
	s.border = b
}

// Holes returns the holes for the committed outline.
func (s *Session) Holes() []Hole {
	return PlaceHoles(s.outline, s.holes, s.cal)
}

// Borders returns the border rings for the committed outline.
func (s *Session) Borders() Borders {
	return BuildBorders(s.outline, s.border)
}

// BeginEdit starts free-form editing of the committed outline.
func (s *Session) BeginEdit() (*Editor, error) {
	if err := s.checkIdle("begin edit"); err != nil {
		return nil, err
	}
	e := NewEditor()
	if err := e.Begin(s.outline, s.shape.CornerRadiusMm); err != nil {
		return nil, err
	}
	s.editor = e
	s.preEdit = s.shape
	return e, nil
}

// ReleaseDrag ends a drag gesture of the active editor. The working
// polygon is moved back to the origin and the width and height follow
// its new bounding box. Editing continues.
func (s *Session) ReleaseDrag() error {
	if !s.Editing() {
		return fmt.Errorf("release drag: %w (not editing)", ErrEditorState)
	}
	w, h, err := s.editor.Release()
	if err != nil {
		return err
	}
	s.shape.WidthMm = w
	s.shape.HeightMm = h
	return nil
}

// CommitEdit bakes the editor's working polygon into the outline and
// updates the width and height to the new bounding box.
func (s *Session) CommitEdit() error {
	if !s.Editing() {
		return fmt.Errorf("commit edit: %w (not editing)", ErrEditorState)
	}
	if err := s.ReleaseDrag(); err != nil {
		return err
	}
	o, err := s.editor.Commit()
	if err != nil {
		return err
	}
	s.outline = o
	s.editor = nil
	return nil
}

// CancelEdit leaves the editor and restores the previously committed
// outline and its size.
func (s *Session) CancelEdit() error {
	if !s.Editing() {
		return fmt.Errorf("cancel edit: %w (not editing)", ErrEditorState)
	}
	o, err := s.editor.Cancel()
	if err != nil {
		return err
	}
	s.outline = o
	s.shape = s.preEdit
	s.editor = nil
	return nil
}
