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

	"github.com/shopspring/decimal"
)

// Unit is a unit of measure for angles.
//
// The set of units is closed.  Every unit has an entry in the descriptor
// table below and a row and column in the conversion factor table in
// convert.go, so adding a unit means adding one constant and one table entry
// in each place.
type Unit uint8

// These are the supported units.  The zero value is Degrees.
const (
	Degrees Unit = iota
	Gradians
	Radians
	Turns

	numUnits = iota
)

type unitInfo struct {
	name   string
	symbol string
	letter byte
	period decimal.Decimal
}

var units = [numUnits]unitInfo{
	Degrees:  {name: "degrees", symbol: "°", letter: 'd', period: decimal.NewFromInt(360)},
	Gradians: {name: "gradians", symbol: "g", letter: 'g', period: decimal.NewFromInt(400)},
	Radians:  {name: "radians", symbol: "rad", letter: 'r', period: twoPi},
	Turns:    {name: "turns", symbol: "tr", letter: 't', period: decimal.NewFromInt(1)},
}

// Units returns all supported units, in the order of their numeric values.
func Units() []Unit {
	res := make([]Unit, numUnits)
	for i := range res {
		res[i] = Unit(i)
	}
	return res
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u < numUnits
}

// String returns the English name of the unit.
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", u)
	}
	return units[u].name
}

// Symbol returns the symbol appended to formatted values, for example "°".
func (u Unit) Symbol() string {
	return u.info().symbol
}

// Period returns the size of a full circle, measured in unit u.
// Angle values in unit u are kept in the range [0, Period).
func (u Unit) Period() decimal.Decimal {
	return u.info().period
}

// letter returns the format code letter which renders values in unit u.
func (u Unit) letter() byte {
	return u.info().letter
}

func (u Unit) info() *unitInfo {
	u.mustBeValid()
	return &units[u]
}

// mustBeValid panics if u is not one of the supported units.  Invalid units
// can only be produced by converting arbitrary integers to Unit, so this
// indicates a programming error.
func (u Unit) mustBeValid() {
	if !u.Valid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidUnit, uint8(u)))
	}
}
