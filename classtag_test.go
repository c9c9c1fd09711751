// seehuhn.de/go/angle - circular angles with unit conversion and formatting
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

package angle

import (
	"testing"

	"seehuhn.de/go/angle/classtag"
)

func TestClassTags(t *testing.T) {
	cases := []struct {
		tag int
		got func() (int, bool)
	}{
		{3, classtag.Of[Formatter]},
		{4, classtag.Of[Angle]},
		{5, classtag.Of[Unit]},
	}
	for _, c := range cases {
		tag, ok := c.got()
		if !ok || tag != c.tag {
			t.Errorf("expected tag %d, got %d (registered: %t)", c.tag, tag, ok)
		}
	}

	if _, ok := classtag.Of[Code](); ok {
		t.Error("Code should not carry a class tag")
	}
}
