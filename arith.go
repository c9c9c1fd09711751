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

import "github.com/shopspring/decimal"

// Add returns a+b, measured in the unit of a.
func (a Angle) Add(b Angle) Angle {
	return New(a.mag.Add(b.in(a.unit)), a.unit)
}

// Sub returns a-b, measured in the unit of a.
func (a Angle) Sub(b Angle) Angle {
	return New(a.mag.Sub(b.in(a.unit)), a.unit)
}

// AddScalar adds x to the magnitude of a.  The scalar is interpreted in the
// unit of a.
func (a Angle) AddScalar(x decimal.Decimal) Angle {
	return New(a.mag.Add(x), a.unit)
}

// SubScalar subtracts x from the magnitude of a.  The scalar is interpreted
// in the unit of a.
func (a Angle) SubScalar(x decimal.Decimal) Angle {
	return New(a.mag.Sub(x), a.unit)
}

// Mul multiplies the magnitude of a by x.
func (a Angle) Mul(x decimal.Decimal) Angle {
	return New(a.mag.Mul(x).Round(valuePlaces), a.unit)
}

// Div divides the magnitude of a by x.
// If x is zero, ErrDivisionByZero is returned.
func (a Angle) Div(x decimal.Decimal) (Angle, error) {
	if x.IsZero() {
		return Angle{}, ErrDivisionByZero
	}
	return New(a.mag.DivRound(x, valuePlaces), a.unit), nil
}

// in returns the magnitude of a, converted to unit u.
func (a Angle) in(u Unit) decimal.Decimal {
	if a.unit == u {
		return a.mag
	}
	return Convert(a.mag, a.unit, u)
}
