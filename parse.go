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
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// piSuffix marks numerals which give radians as multiples of π.
var piSuffix = "π" + Radians.Symbol()

// maxExponent bounds the decimal exponent of numerals accepted by Parse.
// This covers the range of float64 values.
const maxExponent = 400

// Parse reads an angle in the form produced by Format, for example "45.00°",
// "1.57080rad" or "0.50000πrad".  Space between the numeral and the symbol
// is allowed.  A numeral without a symbol is read as degrees.
//
// The returned error wraps ErrInvalidFormat if s cannot be interpreted.
func Parse(s string) (Angle, error) {
	text := strings.TrimSpace(s)

	numeral, u, timesPi := text, Degrees, false
	if body, ok := strings.CutSuffix(text, piSuffix); ok {
		numeral, u, timesPi = body, Radians, true
	} else {
		for _, cand := range Units() {
			if body, ok := strings.CutSuffix(text, cand.Symbol()); ok {
				numeral, u = body, cand
				break
			}
		}
	}

	numeral = strings.TrimSpace(numeral)
	if numeral == "" {
		return Angle{}, &FormatError{Input: s, Reason: "missing numeral"}
	}
	v, err := decimal.NewFromString(numeral)
	if err != nil {
		return Angle{}, &FormatError{Input: s, Reason: "malformed numeral " + numeral}
	}
	if e := v.Exponent(); e < -maxExponent || e > maxExponent || v.NumDigits() > 2*maxExponent {
		return Angle{}, &FormatError{Input: s, Reason: "numeral out of range " + numeral}
	}
	if timesPi {
		v = v.Mul(Pi).Round(valuePlaces)
	}
	return New(v, u), nil
}

// ParseUnit returns the unit with the given name, symbol or format letter.
// Case is ignored.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	for _, u := range Units() {
		info := u.info()
		if strings.EqualFold(s, info.name) ||
			strings.EqualFold(s, info.symbol) ||
			strings.EqualFold(s, string(rune(info.letter))) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// MarshalText implements the encoding.TextMarshaler interface.
// The magnitude is written with full precision, followed by the unit symbol.
func (a Angle) MarshalText() ([]byte, error) {
	return []byte(a.mag.String() + a.unit.Symbol()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Any text accepted by Parse is allowed.
func (a *Angle) UnmarshalText(text []byte) error {
	b, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = b
	return nil
}
