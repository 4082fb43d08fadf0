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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeOptions(t *testing.T) {
	defaults := &Options{MinConnectorOverlap: 5, MaxRepeats: 10}

	if got := MergeOptions(nil, defaults); got != defaults {
		t.Error("nil options should give the defaults")
	}

	got := MergeOptions(&Options{MaxRepeats: 3}, defaults)
	want := &Options{MinConnectorOverlap: 5, MaxRepeats: 3}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected options (-want +got):\n%s", d)
	}

	got = MergeOptions(&Options{MinConnectorOverlap: 7, MaxRepeats: -1}, defaults)
	want = &Options{MinConnectorOverlap: 7, MaxRepeats: 10}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected options (-want +got):\n%s", d)
	}
}
