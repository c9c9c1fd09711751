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

// Pi is π, to 40 decimal places.
//
// All conversions involving radians go through this constant.  The value is
// far more precise than math.Pi, so that repeated conversions between units
// do not accumulate visible round-off.
var Pi = decimal.RequireFromString("3.1415926535897932384626433832795028841972")

var twoPi = Pi.Add(Pi)

const (
	// factorPlaces is the number of decimal places kept for irrational
	// conversion factors.
	factorPlaces = 40

	// valuePlaces is the number of decimal places kept for converted
	// magnitudes.
	valuePlaces = 28
)

// factors[to][from] is the multiplier which converts a value measured in
// unit "from" into unit "to".
var factors = buildFactors()

func buildFactors() [numUnits][numUnits]decimal.Decimal {
	one := decimal.NewFromInt(1)
	n := decimal.NewFromInt
	quo := func(a, b decimal.Decimal) decimal.Decimal {
		return a.DivRound(b, factorPlaces)
	}

	var f [numUnits][numUnits]decimal.Decimal
	for i := range f {
		f[i][i] = one
	}

	f[Degrees][Gradians] = quo(n(9), n(10))
	f[Degrees][Radians] = quo(n(180), Pi)
	f[Degrees][Turns] = n(360)

	f[Gradians][Degrees] = quo(n(10), n(9))
	f[Gradians][Radians] = quo(n(200), Pi)
	f[Gradians][Turns] = n(400)

	f[Radians][Degrees] = quo(Pi, n(180))
	f[Radians][Gradians] = quo(Pi, n(200))
	f[Radians][Turns] = twoPi

	f[Turns][Degrees] = quo(one, n(360))
	f[Turns][Gradians] = quo(one, n(400))
	f[Turns][Radians] = quo(one, twoPi)

	return f
}

// Factor returns the multiplier which converts a value measured in unit
// from into unit to.
//
// Factor panics if either unit is not valid.
func Factor(to, from Unit) decimal.Decimal {
	to.mustBeValid()
	from.mustBeValid()
	return factors[to][from]
}

// Normalize reduces v into the range [0, period) of unit u.
//
// The result is the same as repeatedly adding the period while the value is
// negative, and subtracting it while the value is at least one period, but
// the work does not depend on the size of v.
//
// Normalize panics if u is not valid.
func Normalize(v decimal.Decimal, u Unit) decimal.Decimal {
	period := u.Period()
	if !v.IsNegative() && v.LessThan(period) {
		return v
	}

	r := v.Mod(period) // has the sign of v
	if r.IsNegative() {
		r = r.Add(period)
	}
	return r
}

// Convert converts v from unit from into unit to.  The result is normalized
// into the range of the target unit.
//
// Convert panics if either unit is not valid.
func Convert(v decimal.Decimal, from, to Unit) decimal.Decimal {
	f := Factor(to, from)
	if from != to {
		v = v.Mul(f).Round(valuePlaces)
	}
	return Normalize(v, to)
}
