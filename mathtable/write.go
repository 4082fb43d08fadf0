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
	"errors"

	"seehuhn.de/go/mathfont"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/coverage"
)

// Encode returns the binary representation of a MATH table which
// contains the glyph variant information from t.
// Glyphs which share a [mathfont.GlyphVariants] value are encoded
// as references to a single MathGlyphConstruction.
func Encode(t *mathfont.Table) ([]byte, error) {
	variants, err := encodeVariants(t)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 10, 10+len(variants))
	buf[1] = 1 // majorVersion
	buf[9] = 10
	return append(buf, variants...), nil
}

func encodeVariants(t *mathfont.Table) ([]byte, error) {
	vertCov := usedGlyphs(t.Vertical).ToTable()
	horizCov := usedGlyphs(t.Horizontal).ToTable()
	vertGlyphs := vertCov.Glyphs()
	horizGlyphs := horizCov.Glyphs()
	numGlyphs := len(vertGlyphs) + len(horizGlyphs)
	if len(vertGlyphs) > 0xFFFF || len(horizGlyphs) > 0xFFFF {
		return nil, errTooLarge
	}

	pos := 10 + 2*numGlyphs
	var body []byte
	addSubtable := func(data []byte) (uint16, error) {
		if pos > 0xFFFF {
			return 0, errTooLarge
		}
		offs := uint16(pos)
		body = append(body, data...)
		pos += len(data)
		return offs, nil
	}

	var vertCoverageOffset, horizCoverageOffset uint16
	var err error
	if len(vertGlyphs) > 0 {
		vertCoverageOffset, err = addSubtable(vertCov.Encode())
		if err != nil {
			return nil, err
		}
	}
	if len(horizGlyphs) > 0 {
		horizCoverageOffset, err = addSubtable(horizCov.Encode())
		if err != nil {
			return nil, err
		}
	}

	offsets := make([]uint16, 0, numGlyphs)
	written := make(map[*mathfont.GlyphVariants]uint16)
	for _, gv := range []struct {
		glyphs []glyph.ID
		m      map[glyph.ID]*mathfont.GlyphVariants
	}{
		{vertGlyphs, t.Vertical},
		{horizGlyphs, t.Horizontal},
	} {
		for _, gid := range gv.glyphs {
			v := gv.m[gid]
			offs, ok := written[v]
			if !ok {
				data, err := encodeConstruction(v)
				if err != nil {
					return nil, err
				}
				offs, err = addSubtable(data)
				if err != nil {
					return nil, err
				}
				written[v] = offs
			}
			offsets = append(offsets, offs)
		}
	}

	res := make([]byte, 10, pos)
	res[0] = byte(t.MinConnectorOverlap >> 8)
	res[1] = byte(t.MinConnectorOverlap)
	res[2] = byte(vertCoverageOffset >> 8)
	res[3] = byte(vertCoverageOffset)
	res[4] = byte(horizCoverageOffset >> 8)
	res[5] = byte(horizCoverageOffset)
	res[6] = byte(len(vertGlyphs) >> 8)
	res[7] = byte(len(vertGlyphs))
	res[8] = byte(len(horizGlyphs) >> 8)
	res[9] = byte(len(horizGlyphs))
	for _, offs := range offsets {
		res = append(res, byte(offs>>8), byte(offs))
	}
	return append(res, body...), nil
}

// encodeConstruction encodes a MathGlyphConstruction table, followed
// by the glyph assembly (if any).
func encodeConstruction(v *mathfont.GlyphVariants) ([]byte, error) {
	n := len(v.Replacements)
	if n > 0xFFFF {
		return nil, errTooLarge
	}
	var assemblyOffset int
	if v.Constructable != nil {
		assemblyOffset = 4 + 4*n
		if assemblyOffset > 0xFFFF || len(v.Constructable.Parts) > 0xFFFF {
			return nil, errTooLarge
		}
	}

	buf := make([]byte, 0, 4+4*n)
	buf = append(buf,
		byte(assemblyOffset>>8), byte(assemblyOffset),
		byte(n>>8), byte(n))
	for _, r := range v.Replacements {
		buf = append(buf,
			byte(r.ID>>8), byte(r.ID),
			byte(r.Advance>>8), byte(r.Advance))
	}

	if c := v.Constructable; c != nil {
		k := len(c.Parts)
		buf = append(buf,
			byte(c.ItalicsCorrection>>8), byte(c.ItalicsCorrection),
			0, 0, // deviceOffset
			byte(k>>8), byte(k))
		for _, part := range c.Parts {
			var flags uint16
			if !part.Required {
				flags |= partFlagExtender
			}
			buf = append(buf,
				byte(part.ID>>8), byte(part.ID),
				byte(part.StartConnector>>8), byte(part.StartConnector),
				byte(part.EndConnector>>8), byte(part.EndConnector),
				byte(part.FullAdvance>>8), byte(part.FullAdvance),
				byte(flags>>8), byte(flags))
		}
	}
	return buf, nil
}

// usedGlyphs returns the glyphs which have variant information in m.
func usedGlyphs(m map[glyph.ID]*mathfont.GlyphVariants) coverage.Set {
	res := make(coverage.Set)
	for gid, v := range m {
		if v != nil && (len(v.Replacements) > 0 || v.Constructable != nil) {
			res[gid] = true
		}
	}
	return res
}

var errTooLarge = errors.New(subSystem + ": too much data for MATH table")
