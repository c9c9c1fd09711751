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

package main

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"seehuhn.de/go/angle"
)

func TestRun(t *testing.T) {
	angles := []angle.Angle{
		angle.Deg(90),
		angle.NewFromInt(100, angle.Gradians),
		angle.NewFromFloat(0.5, angle.Turns),
	}

	buf := &bytes.Buffer{}
	err := run(buf, &angle.Formatter{}, "", angles, 80)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"90.00°",
		"100.00g",
		"0.50000πrad",
		"0.50tr",
		"equal=true less=false compare=0",
		"equal=false less=true compare=-1",
		"angle.Angle",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRunLocalized(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &angle.Formatter{Language: language.German}
	err := run(buf, f, "d1", []angle.Angle{angle.Deg(12.5)}, 40)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "12,5°") {
		t.Errorf("missing localized value:\n%s", buf.String())
	}
}

func TestRunBadCode(t *testing.T) {
	err := run(&bytes.Buffer{}, &angle.Formatter{}, "x", []angle.Angle{angle.Deg(1)}, 80)
	if err == nil {
		t.Error("expected an error for format code x")
	}
}
