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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/mathfont"
	"seehuhn.de/go/mathfont/internal/buildinfo"
	"seehuhn.de/go/mathfont/internal/profile"
	"seehuhn.de/go/mathfont/mathtable"
	"seehuhn.de/go/mathfont/sfntmetrics"
	"seehuhn.de/go/sfnt"
)

var (
	sizeArg    = flag.Float64("size", 0, "minimum size in font design units (default 2em)")
	dirArg     = flag.String("dir", "v", "stretch direction, \"v\" or \"h\"")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mathvariant \u2014 show the glyphs used for stretched math symbols\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("mathvariant"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  mathvariant [options] <font.otf> <chars>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.otf   an OpenType font with a MATH table\n")
		fmt.Fprintf(os.Stderr, "  chars      the characters to look up\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mathvariant -size 3000 latinmodern-math.otf '(){}'\n")
		fmt.Fprintf(os.Stderr, "  mathvariant -dir h STIXTwoMath-Regular.otf '\u0302'\n")
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	dir, err := parseDirection(*dirArg)
	if err != nil {
		return err
	}

	fname := flag.Arg(0)
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	table, err := mathtable.Read(bytes.NewReader(data))
	if mathtable.IsMissing(err) {
		return fmt.Errorf("%s: not a math font (no MATH table)", fname)
	} else if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	metrics := sfntmetrics.New(font)
	r := mathfont.New(table, metrics.Glyph, nil)

	size := *sizeArg
	if size <= 0 {
		size = 2 * float64(metrics.UnitsPerEm())
	}

	out := &reporter{
		w:       os.Stdout,
		verbose: term.IsTerminal(int(os.Stdout.Fd())),
	}
	for _, arg := range flag.Args()[1:] {
		for _, c := range arg {
			base, err := metrics.Rune(c)
			if err != nil {
				return err
			}
			v, err := r.Variant(base, dir, size)
			if err != nil {
				return err
			}
			out.Report(c, dir, size, v, r.Successor(base))
		}
	}
	return out.err
}

func parseDirection(s string) (mathfont.Direction, error) {
	switch strings.ToLower(s) {
	case "v", "vert", "vertical":
		return mathfont.Vertical, nil
	case "h", "horz", "horizontal":
		return mathfont.Horizontal, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

// reporter prints lookup results.  In verbose mode, the output is meant
// for humans, otherwise one tab-separated line is printed per character:
// code point, direction, size, successor glyph, followed by the variant.
type reporter struct {
	w       io.Writer
	verbose bool
	err     error
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) Report(c rune, dir mathfont.Direction, size float64, v mathfont.VariantGlyph, succ mathfont.Glyph) {
	if !r.verbose {
		r.printf("U+%04X\t%s\t%g\t%d", c, dir, size, succ.ID)
		switch v := v.(type) {
		case *mathfont.Replacement:
			r.printf("\treplacement\t%d", v.ID)
		case *mathfont.Constructable:
			r.printf("\tassembly")
			for _, inst := range v.Instructions {
				r.printf("\t%d/%g", inst.Glyph.ID, inst.Overlap)
			}
		}
		r.printf("\n")
		return
	}

	r.printf("U+%04X %s, %s, size %g:\n", c, runenames.Name(c), dir, size)
	switch v := v.(type) {
	case *mathfont.Replacement:
		r.printf("  replacement glyph %d, size %g\n", v.ID, v.Advance(dir))
	case *mathfont.Constructable:
		r.printf("  assembly of %d parts, size %g\n", len(v.Instructions), v.Advance())
		offsets := v.Offsets()
		for i, inst := range v.Instructions {
			r.printf("    %s at (%g, %g)\n", inst, offsets[i].X, offsets[i].Y)
		}
	}
	r.printf("  successor: glyph %d\n", succ.ID)
}
