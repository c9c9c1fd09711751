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
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/angle/internal/num"
)

// MaxDigits is the largest number of fractional digits a format code can
// request.  Larger requests are reduced to MaxDigits.
const MaxDigits = 9

// piLetter is the format letter for radians, given as multiples of π.
const piLetter = 'p'

// Code is a parsed format code.
//
// The textual form of a format code is either empty, or "C" optionally
// followed by a digit count, or one of the letters d, g, r, t, p optionally
// followed by a digit count.  The letter selects the unit (degrees,
// gradians, radians, turns, or radians as a multiple of π); "C" and the
// empty code select the unit of the angle being formatted.
type Code struct {
	// Letter is one of 'd', 'g', 'r', 't' and 'p'.
	Letter byte

	// Digits is the number of digits after the decimal point,
	// in the range 0 to MaxDigits.
	Digits int
}

// ParseCode interprets a format code for an angle measured in unit u.
// The unit is used to resolve the empty code and "C".
//
// If a digit count is missing or cannot be parsed, the default is used:
// five digits for the radian letters 'r' and 'p', and two digits otherwise.
func ParseCode(code string, u Unit) (Code, error) {
	var letter byte
	if code == "" || code[0] == 'C' || code[0] == 'c' {
		letter = u.letter()
	} else {
		r, _ := utf8.DecodeRuneInString(code)
		r = unicode.ToLower(r)
		if r >= utf8.RuneSelf || !isFormatLetter(byte(r)) {
			return Code{}, &FormatError{
				Input:  code,
				Reason: "unknown format letter " + strconv.QuoteRune(r),
			}
		}
		letter = byte(r)
	}

	digits := defaultDigits(letter)
	if len(code) > 1 {
		if n, err := strconv.Atoi(code[1:]); err == nil {
			digits = num.Clamp(n, 0, MaxDigits)
		}
	}
	return Code{Letter: letter, Digits: digits}, nil
}

// String returns the canonical textual form of the code, for example "r3".
func (c Code) String() string {
	return string(rune(c.Letter)) + strconv.Itoa(c.Digits)
}

func isFormatLetter(l byte) bool {
	if l == piLetter {
		return true
	}
	_, ok := unitForLetter(l)
	return ok
}

func unitForLetter(l byte) (Unit, bool) {
	for i := range units {
		if units[i].letter == l {
			return Unit(i), true
		}
	}
	return 0, false
}

func defaultDigits(letter byte) int {
	if letter == piLetter || letter == Radians.letter() {
		return 5
	}
	return 2
}

// A Formatter renders angles as text.
//
// The zero value formats numbers with a decimal point, without any
// localization.
type Formatter struct {
	// Language, if set, selects the language whose conventions are used
	// for the decimal separator.
	Language language.Tag
}

var defaultFormatter = &Formatter{}

// Format renders the angle a using the given format code.
// The result has the form <numeral><unit symbol>, for example "45.00°".
//
// The returned error wraps ErrInvalidFormat if the code cannot be
// interpreted.
func (f *Formatter) Format(a Angle, code string) (string, error) {
	c, err := ParseCode(code, a.unit)
	if err != nil {
		return "", err
	}
	return f.render(a, c), nil
}

// FormatValue renders an arbitrary value.  Angles, and non-nil pointers to
// angles, are formatted using the format code.  All other values are
// rendered using their own default text representation, and the code is
// ignored.
//
// If v is nil, or a nil pointer, ErrNullInput is returned.
func (f *Formatter) FormatValue(code string, v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", ErrNullInput
	case Angle:
		return f.Format(x, code)
	case *Angle:
		if x == nil {
			return "", ErrNullInput
		}
		return f.Format(*x, code)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", ErrNullInput
	}
	if f.localized() {
		return message.NewPrinter(f.Language).Sprint(v), nil
	}
	return fmt.Sprint(v), nil
}

func (f *Formatter) localized() bool {
	return f != nil && f.Language != language.Und
}

func (f *Formatter) render(a Angle, c Code) string {
	var v decimal.Decimal
	var sym string
	if c.Letter == piLetter {
		v = a.in(Radians).DivRound(Pi, valuePlaces)
		sym = "π" + Radians.Symbol()
	} else {
		u, _ := unitForLetter(c.Letter)
		v = a.in(u)
		sym = u.Symbol()
	}

	var numeral string
	if f.localized() {
		// Rounding is done in decimal arithmetic, the printer only has to
		// reproduce the digits.
		x := v.Round(int32(c.Digits)).InexactFloat64()
		p := message.NewPrinter(f.Language)
		numeral = p.Sprintf("%."+strconv.Itoa(c.Digits)+"f", x)
	} else {
		numeral = v.StringFixed(int32(c.Digits))
	}
	return numeral + sym
}

// Format renders the angle a using the given format code and the default
// Formatter.
func Format(a Angle, code string) (string, error) {
	return defaultFormatter.Format(a, code)
}

// FormatValue renders v using the default Formatter.
// See [Formatter.FormatValue] for details.
func FormatValue(code string, v any) (string, error) {
	return defaultFormatter.FormatValue(code, v)
}

// String renders the angle in its own unit, with the default number of
// digits.
func (a Angle) String() string {
	c, _ := ParseCode("", a.unit)
	return defaultFormatter.render(a, c)
}

// Format implements the fmt.Formatter interface.
//
// The verbs 'd', 'g', 'r' and 't' render the angle as degrees, gradians,
// radians and turns.  Multiples of π are only available through the format
// code "p", since the fmt package handles %p itself.
// The verbs 'v' and 's' use the unit of the angle.  The precision, if
// given, sets the number of fractional digits.  A width pads the result with
// spaces, on the left unless the '-' flag is given.
func (a Angle) Format(s fmt.State, verb rune) {
	var letter byte
	switch verb {
	case 'v', 's':
		letter = a.unit.letter()
	case 'd', 'g', 'r', 't':
		letter = byte(verb)
	default:
		fmt.Fprintf(s, "%%!%c(angle.Angle=%s)", verb, a.String())
		return
	}

	c := Code{Letter: letter, Digits: defaultDigits(letter)}
	if prec, ok := s.Precision(); ok {
		c.Digits = num.Clamp(prec, 0, MaxDigits)
	}
	out := defaultFormatter.render(a, c)

	if width, ok := s.Width(); ok {
		if pad := width - utf8.RuneCountInString(out); pad > 0 {
			if s.Flag('-') {
				out = out + strings.Repeat(" ", pad)
			} else {
				out = strings.Repeat(" ", pad) + out
			}
		}
	}
	fmt.Fprint(s, out)
}
