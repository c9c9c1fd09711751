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
	"errors"
	"strconv"
)

var (
	// ErrInvalidUnit indicates a unit outside the supported set.
	ErrInvalidUnit = errors.New("invalid angle unit")

	// ErrDivisionByZero is returned when an angle is divided by zero.
	ErrDivisionByZero = errors.New("angle division by zero")

	// ErrInvalidFormat indicates a format code or angle text which cannot
	// be interpreted.  Errors of type *FormatError wrap this error.
	ErrInvalidFormat = errors.New("invalid angle format")

	// ErrNullInput is returned when a nil value is passed to the formatter.
	ErrNullInput = errors.New("nil value cannot be formatted")

	// ErrZeroVector is returned when the direction of the zero vector is
	// requested.
	ErrZeroVector = errors.New("zero vector has no direction")
)

// FormatError describes a format code or an angle string which could not be
// interpreted.
type FormatError struct {
	Input  string
	Reason string
}

func (err *FormatError) Error() string {
	tail := ""
	if err.Reason != "" {
		tail = ": " + err.Reason
	}
	return "invalid angle format " + strconv.Quote(err.Input) + tail
}

// Unwrap allows errors.Is(err, ErrInvalidFormat) to succeed.
func (err *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
