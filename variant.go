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

	"seehuhn.de/go/geom/vec"
)

// VariantGlyph is the result of a variant lookup.
// The only implementations are [*Replacement] and [*Constructable].
type VariantGlyph interface {
	isVariantGlyph()
}

// Replacement is a single glyph which is drawn in place of the base glyph.
type Replacement struct {
	Glyph
}

func (*Replacement) isVariantGlyph() {}

// Constructable is a glyph which is drawn by placing several parts next
// to each other.
type Constructable struct {
	Direction    Direction
	Instructions []GlyphInstruction
}

func (*Constructable) isVariantGlyph() {}

// Advance returns the total size of the assembled glyph along
// the stretch direction.
func (c *Constructable) Advance() float64 {
	var total float64
	for _, inst := range c.Instructions {
		total += inst.Glyph.Advance(c.Direction) - inst.Overlap
	}
	return total
}

// Offsets returns the origin of each part, relative to the start of the
// assembly.  For vertical assemblies the bottom of the first part is at
// y=0 and the parts go upwards.  For horizontal assemblies the first part
// starts at x=0 and the parts go to the right.
func (c *Constructable) Offsets() []vec.Vec2 {
	res := make([]vec.Vec2, len(c.Instructions))
	var pos float64
	for i, inst := range c.Instructions {
		pos -= inst.Overlap
		if c.Direction == Horizontal {
			res[i] = vec.Vec2{X: pos}
		} else {
			res[i] = vec.Vec2{Y: pos - float64(inst.Glyph.BBox.LLy)}
		}
		pos += inst.Glyph.Advance(c.Direction)
	}
	return res
}

// GlyphInstruction is one step in drawing a [Constructable] glyph.
type GlyphInstruction struct {
	Glyph Glyph

	// Overlap is the amount by which this glyph overlaps the
	// previous one.
	Overlap float64
}

func (inst GlyphInstruction) String() string {
	return fmt.Sprintf("GlyphInst{glyph: 0x%X, overlap: %g}", uint16(inst.Glyph.ID), inst.Overlap)
}
