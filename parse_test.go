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
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		unit Unit
		want Angle
	}{
		{"45.00°", Degrees, Deg(45)},
		{"  12.5 ° ", Degrees, Deg(12.5)},
		{"370", Degrees, Deg(10)},
		{"-90°", Degrees, Deg(270)},
		{"50g", Gradians, NewFromInt(50, Gradians)},
		{"1.57080rad", Radians, NewFromFloat(1.5708, Radians)},
		{"0.50000πrad", Radians, Deg(90)},
		{"2πrad", Radians, Deg(0)},
		{"0.25tr", Turns, NewFromFloat(0.25, Turns)},
		{"1.25 tr", Turns, NewFromFloat(0.25, Turns)},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.in, err)
			continue
		}
		if got.Unit() != c.unit {
			t.Errorf("Parse(%q): unit %s, want %s", c.in, got.Unit(), c.unit)
		}
		if !got.Equal(c.want) {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "°", "πrad", "abc", "12x", "1.2.3rad", "rad12"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q): expected ErrInvalidFormat, got %v", in, err)
		}
	}
}

func TestParseLargeExponent(t *testing.T) {
	for _, in := range []string{"1e300000000°", "1e-300000000rad", "-5e401g", "1e300000000πrad"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q): expected ErrInvalidFormat, got %v", in, err)
		}
	}

	a, err := Parse("1e5")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Magnitude().Equal(decimal.NewFromInt(280)) {
		t.Errorf("1e5° normalizes to %s°, want 280°", a.Magnitude())
	}

	text, err := NewFromFloat(5e-324, Radians).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(string(text)); err != nil {
		t.Errorf("Parse(%q): %v", text, err)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	tol := decimal.New(1, -8)
	for _, a := range testAngles() {
		for _, code := range []string{"d9", "g9", "r9", "t9", "p9"} {
			s, err := Format(a, code)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q): %v", s, err)
			}
			if !b.EqualWithin(a, tol) {
				t.Errorf("%s %s -> %q -> %s %s", a.Magnitude(), a.Unit(), s, b.Magnitude(), b.Unit())
			}
		}
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
	}{
		{"degrees", Degrees},
		{"°", Degrees},
		{"d", Degrees},
		{"Gradians", Gradians},
		{"G", Gradians},
		{"rad", Radians},
		{" RADIANS ", Radians},
		{"tr", Turns},
		{"t", Turns},
	}
	for _, c := range cases {
		got, err := ParseUnit(c.in)
		if err != nil {
			t.Errorf("ParseUnit(%q): %v", c.in, err)
		} else if got != c.want {
			t.Errorf("ParseUnit(%q) = %s, want %s", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "furlong", "p", "πrad"} {
		if _, err := ParseUnit(in); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("ParseUnit(%q): expected ErrInvalidUnit, got %v", in, err)
		}
	}
}

func TestTextMarshal(t *testing.T) {
	type record struct {
		Heading Angle
		Tilt    *Angle `json:",omitempty"`
	}

	tilt := New(Pi.Div(decimal.NewFromInt(3)), Radians)
	in := record{Heading: Deg(45), Tilt: &tilt}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out record
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Heading.Unit() != Degrees || !out.Heading.Magnitude().Equal(in.Heading.Magnitude()) {
		t.Errorf("heading %v became %v", in.Heading, out.Heading)
	}
	if out.Tilt == nil || out.Tilt.Unit() != Radians || !out.Tilt.Magnitude().Equal(tilt.Magnitude()) {
		t.Errorf("tilt %v became %v", tilt, out.Tilt)
	}

	text, err := Deg(45).MarshalText()
	if err != nil || string(text) != "45°" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}

	var a Angle
	if err := a.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}
