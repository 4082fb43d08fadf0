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

package sfntmetrics

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/mathfont"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

func loadGoRegular(t *testing.T) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRune(t *testing.T) {
	f := loadGoRegular(t)
	p := New(f)

	for _, r := range []rune{'(', ')', '[', '|'} {
		g, err := p.Rune(r)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID == 0 {
			t.Errorf("%q: no glyph", r)
		}
		if g.Width <= 0 {
			t.Errorf("%q: invalid width %d", r, g.Width)
		}
		if g.Advance(mathfont.Vertical) <= 0 {
			t.Errorf("%q: invalid height %g", r, g.Advance(mathfont.Vertical))
		}
		if d := cmp.Diff(g, p.Glyph(g.ID)); d != "" {
			t.Errorf("%q: inconsistent metrics (-rune +gid):\n%s", r, d)
		}
	}

	_, err := p.Rune('\U0001D465') // MATHEMATICAL ITALIC SMALL X
	if err == nil {
		t.Error("missing error for unmapped rune")
	}
}

func TestOutOfRange(t *testing.T) {
	f := loadGoRegular(t)
	p := New(f)

	gid := glyph.ID(f.NumGlyphs())
	if d := cmp.Diff(mathfont.Glyph{ID: gid}, p.Glyph(gid)); d != "" {
		t.Errorf("unexpected metrics (-want +got):\n%s", d)
	}
	if p.UnitsPerEm() != 2048 {
		t.Errorf("wrong unitsPerEm %d", p.UnitsPerEm())
	}
}

// TestResolve checks that the provider can be used as the metrics source
// of a resolver.
func TestResolve(t *testing.T) {
	f := loadGoRegular(t)
	p := New(f)

	paren, err := p.Rune('(')
	if err != nil {
		t.Fatal(err)
	}
	bracket, err := p.Rune('[')
	if err != nil {
		t.Fatal(err)
	}

	table := &mathfont.Table{
		Vertical: map[glyph.ID]*mathfont.GlyphVariants{
			paren.ID: {
				Replacements: []mathfont.ReplacementGlyph{
					{ID: paren.ID, Advance: 100},
					{ID: bracket.ID, Advance: 200},
				},
			},
		},
	}
	r := mathfont.New(table, p.Glyph, nil)

	v, err := r.VertVariant(paren, 150)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&mathfont.Replacement{Glyph: bracket}, v); d != "" {
		t.Errorf("unexpected variant (-want +got):\n%s", d)
	}
	if got := r.Successor(paren); got != bracket {
		t.Errorf("wrong successor %d", got.ID)
	}
}
