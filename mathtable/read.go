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

// Package mathtable reads and writes the glyph variant information of
// OpenType "MATH" tables.
//
// Only the MathVariants sub-table is used.  The MathConstants and
// MathGlyphInfo sub-tables are ignored when reading, and are omitted
// when writing.
//
// https://learn.microsoft.com/en-us/typography/opentype/spec/math
package mathtable

import (
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/mathfont"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/opentype/coverage"
	"seehuhn.de/go/sfnt/parser"
)

// Read reads the glyph variant information from the MATH table
// of an OpenType font file.
// If the font has no MATH table, an error is returned for which
// [IsMissing] is true.
func Read(r io.ReaderAt) (*mathfont.Table, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}
	data, err := info.ReadTableBytes(r, "MATH")
	if err != nil {
		return nil, err
	}
	return ReadTable(data)
}

// ReadTable decodes the binary representation of a MATH table.
//
// Glyphs which refer to the same MathGlyphConstruction share a single
// [mathfont.GlyphVariants] value in the result.
func ReadTable(data []byte) (*mathfont.Table, error) {
	p := parser.New(bytes.NewReader(data))

	buf, err := p.ReadBytes(10)
	if err != nil {
		return nil, err
	}
	majorVersion := uint16(buf[0])<<8 | uint16(buf[1])
	minorVersion := uint16(buf[2])<<8 | uint16(buf[3])
	// buf[4:8] are the offsets of the MathConstants and MathGlyphInfo tables
	variantsOffset := int64(buf[8])<<8 | int64(buf[9])
	if majorVersion != 1 {
		return nil, &parser.NotSupportedError{
			SubSystem: subSystem,
			Feature:   fmt.Sprintf("MATH table version %d.%d", majorVersion, minorVersion),
		}
	}

	if variantsOffset == 0 {
		res := &mathfont.Table{
			Vertical:   map[glyph.ID]*mathfont.GlyphVariants{},
			Horizontal: map[glyph.ID]*mathfont.GlyphVariants{},
		}
		return res, nil
	}

	r := &reader{
		p:             p,
		constructions: make(map[int64]*mathfont.GlyphVariants),
		assemblies:    make(map[int64]*mathfont.ConstructableGlyph),
		budget:        len(data) / recordSize,
	}
	return r.readVariants(variantsOffset)
}

const subSystem = "sfnt/opentype/math"

// recordSize is the size of the smallest repeated record in a
// MathVariants table, the MathGlyphVariantRecord.
const recordSize = 4

// reader decodes the MathVariants sub-table.
//
// Sub-tables are decoded once per offset.  The number of decoded
// replacement and part records is limited by the size of the input,
// so that overlapping sub-tables cannot blow up the result.
type reader struct {
	p *parser.Parser

	constructions map[int64]*mathfont.GlyphVariants
	assemblies    map[int64]*mathfont.ConstructableGlyph

	budget int
}

func (r *reader) readVariants(pos int64) (*mathfont.Table, error) {
	p := r.p
	err := p.SeekPos(pos)
	if err != nil {
		return nil, err
	}
	buf, err := p.ReadBytes(10)
	if err != nil {
		return nil, err
	}
	minConnectorOverlap := uint16(buf[0])<<8 | uint16(buf[1])
	vertCoverageOffset := int64(buf[2])<<8 | int64(buf[3])
	horizCoverageOffset := int64(buf[4])<<8 | int64(buf[5])
	vertGlyphCount := int(buf[6])<<8 | int(buf[7])
	horizGlyphCount := int(buf[8])<<8 | int(buf[9])

	offsets := make([]int64, vertGlyphCount+horizGlyphCount)
	for i := range offsets {
		offs, err := p.ReadUint16()
		if err != nil {
			return nil, err
		}
		offsets[i] = int64(offs)
	}

	vert, err := r.readConstructions(pos, vertCoverageOffset, offsets[:vertGlyphCount])
	if err != nil {
		return nil, err
	}
	horiz, err := r.readConstructions(pos, horizCoverageOffset, offsets[vertGlyphCount:])
	if err != nil {
		return nil, err
	}

	res := &mathfont.Table{
		MinConnectorOverlap: minConnectorOverlap,
		Vertical:            vert,
		Horizontal:          horiz,
	}
	return res, nil
}

func (r *reader) readConstructions(pos, coverageOffset int64, offsets []int64) (map[glyph.ID]*mathfont.GlyphVariants, error) {
	res := make(map[glyph.ID]*mathfont.GlyphVariants)
	if len(offsets) == 0 {
		return res, nil
	}
	if coverageOffset == 0 {
		return nil, &parser.InvalidFontError{
			SubSystem: subSystem,
			Reason:    "missing coverage table",
		}
	}

	cov, err := coverage.Read(r.p, pos+coverageOffset)
	if err != nil {
		return nil, err
	}
	for _, gid := range cov.Glyphs() {
		idx := cov[gid]
		if idx >= len(offsets) {
			return nil, &parser.InvalidFontError{
				SubSystem: subSystem,
				Reason:    "coverage index out of range",
			}
		}
		if offsets[idx] == 0 {
			continue
		}
		variants, err := r.readConstruction(pos + offsets[idx])
		if err != nil {
			return nil, err
		}
		if variants != nil {
			res[gid] = variants
		}
	}
	return res, nil
}

// readConstruction reads a MathGlyphConstruction table.
// If the table lists neither replacements nor a glyph assembly,
// nil is returned.
func (r *reader) readConstruction(pos int64) (*mathfont.GlyphVariants, error) {
	if res, seen := r.constructions[pos]; seen {
		return res, nil
	}

	p := r.p
	err := p.SeekPos(pos)
	if err != nil {
		return nil, err
	}
	buf, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	assemblyOffset := int64(buf[0])<<8 | int64(buf[1])
	variantCount := int(buf[2])<<8 | int(buf[3])
	if err := r.use(variantCount); err != nil {
		return nil, err
	}

	var replacements []mathfont.ReplacementGlyph
	if variantCount > 0 {
		replacements = make([]mathfont.ReplacementGlyph, 0, variantCount)
	}
	for range variantCount {
		buf, err := p.ReadBytes(4)
		if err != nil {
			return nil, err
		}
		replacements = append(replacements, mathfont.ReplacementGlyph{
			ID:      glyph.ID(uint16(buf[0])<<8 | uint16(buf[1])),
			Advance: uint16(buf[2])<<8 | uint16(buf[3]),
		})
	}

	var assembly *mathfont.ConstructableGlyph
	if assemblyOffset != 0 {
		assembly, err = r.readAssembly(pos + assemblyOffset)
		if err != nil {
			return nil, err
		}
	}

	var res *mathfont.GlyphVariants
	if replacements != nil || assembly != nil {
		res = &mathfont.GlyphVariants{
			Replacements:  replacements,
			Constructable: assembly,
		}
	}
	r.constructions[pos] = res
	return res, nil
}

// partFlagExtender marks glyph parts which can be repeated.
const partFlagExtender = 0x0001

func (r *reader) readAssembly(pos int64) (*mathfont.ConstructableGlyph, error) {
	if res, seen := r.assemblies[pos]; seen {
		return res, nil
	}

	p := r.p
	err := p.SeekPos(pos)
	if err != nil {
		return nil, err
	}
	buf, err := p.ReadBytes(6)
	if err != nil {
		return nil, err
	}
	// The italics correction is a MathValueRecord.  Device tables
	// are not supported and the device offset in buf[2:4] is ignored.
	italicsCorrection := funit.Int16(int16(uint16(buf[0])<<8 | uint16(buf[1])))
	partCount := int(buf[4])<<8 | int(buf[5])
	if err := r.use(partCount); err != nil {
		return nil, err
	}

	var parts []mathfont.GlyphPart
	if partCount > 0 {
		parts = make([]mathfont.GlyphPart, 0, partCount)
	}
	for range partCount {
		buf, err := p.ReadBytes(10)
		if err != nil {
			return nil, err
		}
		flags := uint16(buf[8])<<8 | uint16(buf[9])
		parts = append(parts, mathfont.GlyphPart{
			ID:             glyph.ID(uint16(buf[0])<<8 | uint16(buf[1])),
			StartConnector: uint16(buf[2])<<8 | uint16(buf[3]),
			EndConnector:   uint16(buf[4])<<8 | uint16(buf[5]),
			FullAdvance:    uint16(buf[6])<<8 | uint16(buf[7]),
			Required:       flags&partFlagExtender == 0,
		})
	}

	res := &mathfont.ConstructableGlyph{
		Parts:             parts,
		ItalicsCorrection: italicsCorrection,
	}
	r.assemblies[pos] = res
	return res, nil
}

// use accounts for n decoded records.
func (r *reader) use(n int) error {
	if n > r.budget {
		return &parser.InvalidFontError{
			SubSystem: subSystem,
			Reason:    "overlapping sub-tables",
		}
	}
	r.budget -= n
	return nil
}
