// seehuhn.de/go/mathfont - stretchy glyphs for mathematical typesetting
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

package mathfont

import (
	"errors"
	"fmt"

	"seehuhn.de/go/sfnt/glyph"
)

// ConstructionError indicates that a glyph assembly cannot be made large
// enough using at most MaxRepeats copies of each extender.
type ConstructionError struct {
	ID         glyph.ID
	Direction  Direction
	Size       float64
	MaxRepeats int
}

func (err *ConstructionError) Error() string {
	return fmt.Sprintf("mathfont: cannot construct %s variant of glyph %d with size %g (more than %d repeats needed)",
		err.Direction, err.ID, err.Size, err.MaxRepeats)
}

// MalformedDataError indicates a problem with the variant data of a glyph.
type MalformedDataError struct {
	ID        glyph.ID
	Direction Direction
	Size      float64
	Reason    string
}

func (err *MalformedDataError) Error() string {
	return fmt.Sprintf("mathfont: glyph %d, %s variant of size %g: %s",
		err.ID, err.Direction, err.Size, err.Reason)
}

// InvalidSizeError indicates that a variant was requested for a size
// which is negative, infinite or NaN.
type InvalidSizeError struct {
	ID        glyph.ID
	Direction Direction
	Size      float64
}

func (err *InvalidSizeError) Error() string {
	return fmt.Sprintf("mathfont: glyph %d, invalid %s size %g",
		err.ID, err.Direction, err.Size)
}

// IsUnsatisfiable returns true if the error is a ConstructionError.
func IsUnsatisfiable(err error) bool {
	var e *ConstructionError
	return errors.As(err, &e)
}

// IsMalformed returns true if the error is a MalformedDataError.
func IsMalformed(err error) bool {
	var e *MalformedDataError
	return errors.As(err, &e)
}
