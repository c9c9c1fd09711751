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
	"github.com/shopspring/decimal"
)

// Angle is a circular angle, measured in one of the supported units.
//
// The magnitude of an Angle is always kept in the range [0, period) of its
// unit; values outside this range are wrapped around when the Angle is
// constructed or modified.  The zero value is an angle of 0°.
//
// Angle values are meant to be passed and copied by value.  All arithmetic
// and conversion methods return new values; only SetMagnitude and SetUnit
// modify the receiver.
type Angle struct {
	mag  decimal.Decimal
	unit Unit
}

// New returns the angle with magnitude v, measured in unit u.
// The magnitude is normalized into the range of u.
//
// New panics if u is not valid.
func New(v decimal.Decimal, u Unit) Angle {
	var a Angle
	// The unit must be in place before the value is normalized against it.
	a.unit = u
	a.SetMagnitude(v)
	return a
}

// NewFromFloat returns the angle with magnitude f, measured in unit u.
func NewFromFloat(f float64, u Unit) Angle {
	return New(decimal.NewFromFloat(f), u)
}

// NewFromInt returns the angle with magnitude n, measured in unit u.
func NewFromInt(n int64, u Unit) Angle {
	return New(decimal.NewFromInt(n), u)
}

// Deg returns the angle of f degrees.
func Deg(f float64) Angle {
	return NewFromFloat(f, Degrees)
}

// Magnitude returns the value of the angle, measured in its own unit.
// The result is in the range [0, a.Unit().Period()).
func (a Angle) Magnitude() decimal.Decimal {
	return a.mag
}

// Unit returns the unit the angle is measured in.
func (a Angle) Unit() Unit {
	return a.unit
}

// Float64 returns the magnitude of the angle in its own unit, as a float64.
// The result may be rounded.
func (a Angle) Float64() float64 {
	return a.mag.InexactFloat64()
}

// SetMagnitude replaces the magnitude of a, keeping the unit.
// The new value is normalized into the range of the current unit.
func (a *Angle) SetMagnitude(v decimal.Decimal) {
	a.mag = Normalize(v, a.unit)
}

// SetUnit changes the unit of a.  The magnitude is converted first, so that
// a describes the same angle before and after the call.
//
// SetUnit panics if u is not valid.
func (a *Angle) SetUnit(u Unit) {
	a.mag = Convert(a.mag, a.unit, u)
	a.unit = u
}

// To returns the same angle, measured in unit u.
// The receiver is not modified.
func (a Angle) To(u Unit) Angle {
	return Angle{mag: Convert(a.mag, a.unit, u), unit: u}
}

// ToDegrees returns the angle measured in degrees.
func (a Angle) ToDegrees() Angle {
	return a.To(Degrees)
}

// ToGradians returns the angle measured in gradians.
func (a Angle) ToGradians() Angle {
	return a.To(Gradians)
}

// ToRadians returns the angle measured in radians.
func (a Angle) ToRadians() Angle {
	return a.To(Radians)
}

// ToTurns returns the angle measured in turns.
func (a Angle) ToTurns() Angle {
	return a.To(Turns)
}
