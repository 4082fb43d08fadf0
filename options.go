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

// DefaultMaxRepeats is the largest number of copies of an extender
// which is used in a glyph assembly.
const DefaultMaxRepeats = 10

// Options allows to customize a [Resolver].
type Options struct {
	// MinConnectorOverlap, if positive, replaces the overlap limit
	// given in the font.
	MinConnectorOverlap float64

	// MaxRepeats, if positive, replaces DefaultMaxRepeats.
	MaxRepeats int
}

var defaultOptions = &Options{
	MaxRepeats: DefaultMaxRepeats,
}

// MergeOptions takes an options struct and a default values struct and returns a new
// options struct with all fields set to the values from the options struct,
// except for the fields which are set to the zero value in the options struct.
// `opt` can be nil in which case the default values are returned.
// `defaultValues` must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	if opt.MinConnectorOverlap > 0 {
		res.MinConnectorOverlap = opt.MinConnectorOverlap
	} else {
		res.MinConnectorOverlap = defaultValues.MinConnectorOverlap
	}
	if opt.MaxRepeats > 0 {
		res.MaxRepeats = opt.MaxRepeats
	} else {
		res.MaxRepeats = defaultValues.MaxRepeats
	}
	return res
}
