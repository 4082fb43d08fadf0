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

// Package sfntmetrics provides glyph metrics for [mathfont.Resolver],
// taken from an OpenType or TrueType font.
package sfntmetrics

import (
	"fmt"
	"math"

	"seehuhn.de/go/mathfont"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// Provider gives access to the glyph metrics of a font.
// The font must not be modified while the Provider is in use.
type Provider struct {
	font      *sfnt.Font
	numGlyphs int
	boxes     []funit.Rect16
	cmap      interface{ Lookup(r rune) glyph.ID }
}

// New returns a metrics provider for the given font.
func New(f *sfnt.Font) *Provider {
	p := &Provider{
		font:      f,
		numGlyphs: f.NumGlyphs(),
		boxes:     f.GlyphBBoxes(),
	}
	if subtable, err := f.CMapTable.GetBest(); err == nil && subtable != nil {
		p.cmap = subtable
	}
	return p
}

// Glyph returns the metrics of the glyph with the given ID.
// For glyph IDs outside the range of the font, a glyph with
// all metrics set to zero is returned.
//
// The method value p.Glyph can be used as a [mathfont.Metrics].
func (p *Provider) Glyph(gid glyph.ID) mathfont.Glyph {
	g := mathfont.Glyph{ID: gid}
	if int(gid) >= p.numGlyphs {
		return g
	}
	g.Width = funit.Int16(math.Round(float64(p.font.GlyphWidth(gid))))
	if int(gid) < len(p.boxes) {
		g.BBox = p.boxes[gid]
	}
	return g
}

// Rune returns the metrics of the glyph which the font's character
// map assigns to r.
func (p *Provider) Rune(r rune) (mathfont.Glyph, error) {
	if p.cmap == nil {
		return mathfont.Glyph{}, fmt.Errorf("sfntmetrics: font has no usable cmap table")
	}
	gid := p.cmap.Lookup(r)
	if gid == 0 {
		return mathfont.Glyph{}, fmt.Errorf("sfntmetrics: no glyph for %q", r)
	}
	return p.Glyph(gid), nil
}

// UnitsPerEm returns the number of font design units per em.
func (p *Provider) UnitsPerEm() uint16 {
	return p.font.UnitsPerEm
}
