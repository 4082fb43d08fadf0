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

package mathtable

import (
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/parser"
)

// IsMissing returns true if err indicates that a font has no MATH table.
func IsMissing(err error) bool {
	return header.IsMissing(err)
}

// IsUnsupported returns true if err indicates that a MATH table uses
// a feature which is not supported by this package.
func IsUnsupported(err error) bool {
	return parser.IsUnsupported(err)
}
