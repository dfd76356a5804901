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

// EditorState is the state of an Editor.
type EditorState int

const (
	Idle EditorState = iota
	Editing
	Committed
	Cancelled
)

func (s EditorState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("EditorState(%d)", int(s))
	}
}

// bisectionSteps is the number of halvings used to find the furthest
// valid position along a rejected move.
const bisectionSteps = 24

// Editor moves the base vertices of a polygonal outline under user
// control. Every accepted state of the working polygon is simple, has no
// interior angle below MinInteriorAngle, keeps its orientation and fits
// into MaxSideMm × MaxSideMm.
//
// The zero value is an idle editor. An Editor is not safe for concurrent
// use.
type Editor struct {
	state    EditorState
	original *Outline
	radius   float64
	orient   Orientation
	verts    []vec.Vec2
}

// NewEditor returns an idle editor.
func NewEditor() *Editor {
	return &Editor{}
}

// State returns the current state.
func (e *Editor) State() EditorState {
	return e.state
}

// Begin starts editing the base vertices of o. The outline shown to the
// user may be rounded; editing always works on the unrounded vertices.
// radius is the corner radius applied on Commit.
//
// Begin fails with ErrNotEditable for curved archetypes and with
// ErrEditorState if an edit is already in progress.
func (e *Editor) Begin(o *Outline, radius float64) error {
	if e.state == Editing {
		return fmt.Errorf("begin: %w (%s)", ErrEditorState, e.state)
	}
	if !o.Archetype.Editable() || len(o.Base) < 3 {
		return fmt.Errorf("%s: %w", o.Archetype, ErrNotEditable)
	}
	verts := append([]vec.Vec2(nil), o.Base...)
	orient := orientationOf(verts)
	if orient == Degenerate {
		return fmt.Errorf("%s: degenerate base polygon: %w", o.Archetype, ErrNotEditable)
	}

	e.state = Editing
	e.original = o.Clone()
	e.radius = radius
	e.orient = orient
	e.verts = verts
	return nil
}

// Vertices returns a copy of the working polygon.
func (e *Editor) Vertices() []vec.Vec2 {
	return append([]vec.Vec2(nil), e.verts...)
}

// Radius returns the corner radius which will be applied on Commit.
func (e *Editor) Radius() float64 {
	return e.radius
}

// SetRadius changes the corner radius which will be applied on Commit.
func (e *Editor) SetRadius(r float64) {
	e.radius = max(r, 0)
}

// MoveVertex proposes moving vertex i to the given position. If the
// resulting polygon is invalid, the vertex is moved to the furthest
// valid position on the straight line between its current position and
// the target. The position actually used is returned.
func (e *Editor) MoveVertex(i int, to vec.Vec2) (vec.Vec2, error) {
	if e.state != Editing {
		return vec.Vec2{}, fmt.Errorf("move vertex: %w (%s)", ErrEditorState, e.state)
	}
	if i < 0 || i >= len(e.verts) {
		return vec.Vec2{}, fmt.Errorf("move vertex: index %d out of range [0, %d)", i, len(e.verts))
	}

	from := e.verts[i]
	cand := append([]vec.Vec2(nil), e.verts...)
	try := func(t float64) bool {
		cand[i] = from.Add(to.Sub(from).Mul(t))
		return e.valid(cand)
	}

	if try(1) {
		e.verts[i] = to
		return to, nil
	}

	lo, hi := 0.0, 1.0
	for range bisectionSteps {
		mid := (lo + hi) / 2
		if try(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	pos := from.Add(to.Sub(from).Mul(lo))
	e.verts[i] = pos
	Logger().Debug("vertex move limited",
		"vertex", i, "requested", to, "accepted", pos, "fraction", lo)
	return pos, nil
}

// Drag moves vertex i by delta, like MoveVertex.
func (e *Editor) Drag(i int, delta vec.Vec2) (vec.Vec2, error) {
	if e.state != Editing {
		return vec.Vec2{}, fmt.Errorf("drag: %w (%s)", ErrEditorState, e.state)
	}
	if i < 0 || i >= len(e.verts) {
		return vec.Vec2{}, fmt.Errorf("drag: index %d out of range [0, %d)", i, len(e.verts))
	}
	return e.MoveVertex(i, e.verts[i].Add(delta))
}

// valid checks the invariants of the working polygon.
func (e *Editor) valid(verts []vec.Vec2) bool {
	if !IsValid(verts) || orientationOf(verts) != e.orient {
		return false
	}
	b := bounds(verts)
	return b.URx-b.LLx <= MaxSideMm && b.URy-b.LLy <= MaxSideMm
}

// Release ends a drag gesture. The working polygon is translated so that
// its bounding box starts at the origin, and the new width and height
// are returned.
func (e *Editor) Release() (width, height float64, err error) {
	if e.state != Editing {
		return 0, 0, fmt.Errorf("release: %w (%s)", ErrEditorState, e.state)
	}
	b := bounds(e.verts)
	for i, p := range e.verts {
		e.verts[i] = vec.Vec2{X: p.X - b.LLx, Y: p.Y - b.LLy}
	}
	return b.URx - b.LLx, b.URy - b.LLy, nil
}

// Commit ends the edit. The working polygon is normalised, rounded with
// the editor's radius and returned as a KindCustomEdited outline which
// keeps the unrounded vertices in Base.
func (e *Editor) Commit() (*Outline, error) {
	if e.state != Editing {
		return nil, fmt.Errorf("commit: %w (%s)", ErrEditorState, e.state)
	}
	if _, _, err := e.Release(); err != nil {
		return nil, err
	}

	res := Round(customOutline(e.original.Archetype, e.verts), e.radius)

	e.state = Committed
	e.verts = nil
	e.original = nil
	return res, nil
}

// Cancel ends the edit and returns the outline passed to Begin,
// unchanged.
func (e *Editor) Cancel() (*Outline, error) {
	if e.state != Editing {
		return nil, fmt.Errorf("cancel: %w (%s)", ErrEditorState, e.state)
	}
	res := e.original
	e.state = Cancelled
	e.verts = nil
	e.original = nil
	return res, nil
}

// customOutline returns the unrounded custom-edited outline with the
// given base vertices.
func customOutline(a Archetype, base []vec.Vec2) *Outline {
	o := polygonOutline(a, KindCustomEdited, base)
	o.Base = base
	return o
}
