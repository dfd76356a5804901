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

import "errors"

var (
	// ErrUnsupportedShapeKind is returned for archetypes which have no
	// generator.
	ErrUnsupportedShapeKind = errors.New("unsupported shape kind")

	// ErrInvalidDimensions is returned when a width or height is zero,
	// negative or not finite.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrNotEditable is returned when free-form editing is requested for
	// an outline without polygon corners.
	ErrNotEditable = errors.New("outline is not editable")

	// ErrEditorState is returned when an editor method is called in the
	// wrong state.
	ErrEditorState = errors.New("invalid editor state")
)
