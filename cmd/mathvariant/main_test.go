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

package main

import (
	"bytes"
	"testing"

	"seehuhn.de/go/mathfont"
	"seehuhn.de/go/postscript/funit"
)

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"v", "V", "vertical"} {
		dir, err := parseDirection(s)
		if err != nil || dir != mathfont.Vertical {
			t.Errorf("%q: got %s, %v", s, dir, err)
		}
	}
	for _, s := range []string{"h", "horz", "Horizontal"} {
		dir, err := parseDirection(s)
		if err != nil || dir != mathfont.Horizontal {
			t.Errorf("%q: got %s, %v", s, dir, err)
		}
	}
	if _, err := parseDirection("x"); err == nil {
		t.Error("missing error")
	}
}

func TestReport(t *testing.T) {
	g1 := mathfont.Glyph{ID: 1, Width: 100, BBox: funit.Rect16{URy: 100}}
	g2 := mathfont.Glyph{ID: 2, Width: 50, BBox: funit.Rect16{URy: 50}}
	assembly := &mathfont.Constructable{
		Direction: mathfont.Vertical,
		Instructions: []mathfont.GlyphInstruction{
			{Glyph: g1},
			{Glyph: g2, Overlap: 10},
		},
	}

	buf := &bytes.Buffer{}
	r := &reporter{w: buf}
	r.Report('(', mathfont.Vertical, 140, assembly, g1)
	r.Report('(', mathfont.Vertical, 90, &mathfont.Replacement{Glyph: g1}, g2)
	want := "U+0028\tvertical\t140\t1\tassembly\t1/0\t2/10\n" +
		"U+0028\tvertical\t90\t2\treplacement\t1\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	r = &reporter{w: buf, verbose: true}
	r.Report('(', mathfont.Vertical, 140, assembly, g2)
	want = "U+0028 LEFT PARENTHESIS, vertical, size 140:\n" +
		"  assembly of 2 parts, size 140\n" +
		"    GlyphInst{glyph: 0x1, overlap: 0} at (0, 0)\n" +
		"    GlyphInst{glyph: 0x2, overlap: 10} at (0, 90)\n" +
		"  successor: glyph 2\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
