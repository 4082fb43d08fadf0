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

import "math"

// Resolver finds the glyphs needed to draw stretched versions of a glyph.
//
// A Resolver only reads from the underlying [Table] and can be used
// concurrently from multiple goroutines.
type Resolver struct {
	table      *Table
	metrics    Metrics
	overlap    float64
	maxRepeats int
}

// New allocates a new Resolver.
// If opt is nil, default options are used.
func New(table *Table, metrics Metrics, opt *Options) *Resolver {
	opt = MergeOptions(opt, defaultOptions)

	overlap := opt.MinConnectorOverlap
	if overlap <= 0 && table != nil {
		overlap = float64(table.MinConnectorOverlap)
	}

	return &Resolver{
		table:      table,
		metrics:    metrics,
		overlap:    overlap,
		maxRepeats: opt.MaxRepeats,
	}
}

// VertVariant is a shorthand for r.Variant(base, Vertical, size).
func (r *Resolver) VertVariant(base Glyph, size float64) (VariantGlyph, error) {
	return r.Variant(base, Vertical, size)
}

// HorzVariant is a shorthand for r.Variant(base, Horizontal, size).
func (r *Resolver) HorzVariant(base Glyph, size float64) (VariantGlyph, error) {
	return r.Variant(base, Horizontal, size)
}

// Variant returns the smallest variant of base which has at least the given
// size in direction dir.
//
// If the font has no variants for base, base itself is returned.  If none of
// the replacement glyphs is large enough and there is no glyph assembly, the
// largest replacement glyph is returned.  Otherwise, the glyph is assembled
// from parts, using as few extenders as possible, and the overlaps between
// the parts are reduced so that the assembly has exactly the requested size.
//
// The size must be finite and non-negative.  Otherwise an [*InvalidSizeError]
// is returned.
func (r *Resolver) Variant(base Glyph, dir Direction, size float64) (VariantGlyph, error) {
	if !(size >= 0) || math.IsInf(size, 1) {
		return nil, &InvalidSizeError{ID: base.ID, Direction: dir, Size: size}
	}

	variants := r.table.Get(base.ID, dir)
	if variants == nil {
		return &Replacement{Glyph: base}, nil
	}

	// Replacements are sorted by increasing advance.
	for _, repl := range variants.Replacements {
		if float64(repl.Advance) >= size {
			return &Replacement{Glyph: r.metrics(repl.ID)}, nil
		}
	}

	c := variants.Constructable
	if c == nil {
		n := len(variants.Replacements)
		if n == 0 {
			return nil, &MalformedDataError{
				ID:        base.ID,
				Direction: dir,
				Size:      size,
				Reason:    "no replacement glyphs and no glyph assembly",
			}
		}
		return &Replacement{Glyph: r.metrics(variants.Replacements[n-1].ID)}, nil
	}

	repeats := 0
	for r.assembledAdvance(c.Parts, repeats) < size {
		repeats++
		if repeats > r.maxRepeats {
			return nil, &ConstructionError{
				ID:         base.ID,
				Direction:  dir,
				Size:       size,
				MaxRepeats: r.maxRepeats,
			}
		}
	}

	var instructions []GlyphInstruction
	var total float64
	var prevConnector uint16
	for _, part := range c.Parts {
		count := repeatCount(part, repeats)
		if count == 0 {
			continue
		}
		g := r.metrics(part.ID)
		for range count {
			overlap := r.overlapWith(prevConnector)
			total += float64(part.FullAdvance) - overlap
			instructions = append(instructions, GlyphInstruction{
				Glyph:   g,
				Overlap: overlap,
			})
			prevConnector = part.EndConnector
		}
	}

	fitToSize(instructions, total, size)

	return &Constructable{
		Direction:    dir,
		Instructions: instructions,
	}, nil
}

// assembledAdvance returns the size of a glyph assembly where every
// extender is used the given number of times.
func (r *Resolver) assembledAdvance(parts []GlyphPart, repeats int) float64 {
	var advance float64
	var prevConnector uint16
	for _, part := range parts {
		for range repeatCount(part, repeats) {
			advance += float64(part.FullAdvance) - r.overlapWith(prevConnector)
			prevConnector = part.EndConnector
		}
	}
	return advance
}

// fitToSize reduces the overlaps between the parts of an assembly of the
// given total advance, so that the advance becomes equal to size.  The gap
// is spread evenly over all joins.  If the assembly is already too large,
// the instructions are left unchanged.
//
// TODO(voss): check whether the end caps should keep their full overlap
// when there are only a few parts.
func fitToSize(instructions []GlyphInstruction, total, size float64) {
	slack := size - total
	if slack < 0 || len(instructions) < 2 {
		return
	}
	delta := slack / float64(len(instructions)-1)
	for i := 1; i < len(instructions); i++ {
		instructions[i].Overlap -= delta
	}
}

// overlapWith returns the overlap of a part with its predecessor,
// given the end connector length of the predecessor.
func (r *Resolver) overlapWith(prevConnector uint16) float64 {
	return math.Min(float64(prevConnector), r.overlap)
}

func repeatCount(part GlyphPart, repeats int) int {
	if part.Required {
		return 1
	}
	return repeats
}

// Successor returns the next larger size variant of a glyph.  This is used
// to enlarge operators like \int and \sum in display style.
//
// The vertical variants of the glyph are used, independent of the natural
// direction of the symbol.  If the glyph has no successor, base is returned
// unchanged.
func (r *Resolver) Successor(base Glyph) Glyph {
	variants := r.table.Get(base.ID, Vertical)
	if variants == nil || len(variants.Replacements) < 2 {
		return base
	}
	return r.metrics(variants.Replacements[1].ID)
}
