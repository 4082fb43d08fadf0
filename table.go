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
	"fmt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Direction selects the axis along which a glyph is stretched.
type Direction int

// These are the supported stretch directions.
const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Glyph describes a single glyph, together with its metrics.
// All values are given in font design units.
type Glyph struct {
	ID    glyph.ID
	Width funit.Int16
	BBox  funit.Rect16
}

// Advance returns the extent of the glyph along the given direction.
// For horizontal stretching this is the advance width, for vertical
// stretching this is the height of the bounding box.
func (g Glyph) Advance(dir Direction) float64 {
	if dir == Horizontal {
		return float64(g.Width)
	}
	return float64(g.BBox.URy) - float64(g.BBox.LLy)
}

// Metrics returns the metrics of the glyph with the given ID.
// Implementations must return a value for every glyph ID and
// must not have side effects.
type Metrics func(gid glyph.ID) Glyph

// ReplacementGlyph is one step in the ladder of pre-drawn size variants.
type ReplacementGlyph struct {
	ID glyph.ID

	// Advance is the size of the variant in the stretch direction.
	Advance uint16
}

// GlyphPart is one piece of a glyph assembly.
type GlyphPart struct {
	ID glyph.ID

	// StartConnector and EndConnector give the length of the leading and
	// trailing part of the glyph which can overlap with the neighbouring
	// parts.
	StartConnector uint16
	EndConnector   uint16

	// FullAdvance is the size of the part in the stretch direction,
	// before any overlap is subtracted.
	FullAdvance uint16

	// Required is true for parts which occur exactly once.  Parts with
	// Required == false are extenders, which can be repeated zero or more
	// times.
	Required bool
}

// ConstructableGlyph is a recipe for assembling a glyph from parts.
// Parts are listed from bottom to top, or from left to right.
type ConstructableGlyph struct {
	Parts             []GlyphPart
	ItalicsCorrection funit.Int16
}

// GlyphVariants lists the size variants of a glyph in one direction.
type GlyphVariants struct {
	// Replacements must be sorted by increasing advance.
	Replacements []ReplacementGlyph

	// Constructable is nil if the font has no assembly for the glyph.
	Constructable *ConstructableGlyph
}

// Table holds the variant information of a math font.
//
// After a table has been constructed, it must not be modified any more.
type Table struct {
	// MinConnectorOverlap is the upper limit for the overlap between
	// adjacent parts in a glyph assembly.
	MinConnectorOverlap uint16

	Vertical   map[glyph.ID]*GlyphVariants
	Horizontal map[glyph.ID]*GlyphVariants
}

// Get returns the variants of a glyph for the given direction,
// or nil if no variants are known.
func (t *Table) Get(gid glyph.ID, dir Direction) *GlyphVariants {
	if t == nil {
		return nil
	}
	switch dir {
	case Vertical:
		return t.Vertical[gid]
	case Horizontal:
		return t.Horizontal[gid]
	default:
		return nil
	}
}
