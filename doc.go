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

// Package mathfont selects the glyphs used to draw stretchy mathematical
// symbols, like parentheses, braces, radicals, and large operators.
//
// A math font describes, for every stretchable glyph and for each of the two
// stretch directions, a ladder of pre-drawn replacement glyphs of increasing
// size and optionally a recipe for building arbitrarily large versions of the
// glyph from parts.  The parts consist of end caps, which are used exactly
// once, and extenders, which can be repeated as often as needed.  Adjacent
// parts overlap at their connectors.
//
// # Data Types
//
//   - [Table] holds the variant information of one font.  A table is
//     normally read from the MATH table of an OpenType font, using
//     [seehuhn.de/go/mathfont/mathtable.Read].
//   - [Metrics] gives access to the metrics of individual glyphs.  An
//     implementation backed by [seehuhn.de/go/sfnt.Font] can be found in
//     [seehuhn.de/go/mathfont/sfntmetrics].
//   - [Resolver] combines these two and answers queries of the form "which
//     glyphs are needed to draw this symbol at least this large?"
//
// The result of a query is a [VariantGlyph], which is either a
// [*Replacement] or a [*Constructable].
//
// Tables are never modified after they have been constructed, and a
// Resolver can be used concurrently by multiple goroutines.
package mathfont
