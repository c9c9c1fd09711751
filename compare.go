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
	"github.com/spaolacci/murmur3"

	"seehuhn.de/go/angle/internal/num"
)

// DefaultTolerance is the tolerance used by Equal and by the ordering
// methods.  Two magnitudes which differ by less than this amount, measured
// in the comparison unit of the pair, are considered equal.
var DefaultTolerance = decimal.New(1, -10)

// hashPlaces is the number of decimal places of the degree value which
// enter into Hash.
const hashPlaces = 6

// compareUnit returns the unit in which angles measured in units u and v
// are compared.  This is u if both units agree, and otherwise the unit with
// the shorter period.  The result does not depend on the order of the
// arguments.
func compareUnit(u, v Unit) Unit {
	if u == v || u.Period().LessThan(v.Period()) {
		return u
	}
	return v
}

// Equal reports whether a and b describe the same angle.  Both magnitudes
// are converted to a common unit, see [Angle.EqualWithin], and then compared
// using DefaultTolerance.
func (a Angle) Equal(b Angle) bool {
	return a.EqualWithin(b, DefaultTolerance)
}

// EqualWithin is like Equal, but uses the given tolerance instead of
// DefaultTolerance.
//
// If a and b use the same unit, tol is measured in this unit.  Otherwise tol
// is measured in whichever of the two units has the shorter period, so that
// a.EqualWithin(b, tol) and b.EqualWithin(a, tol) always agree.
func (a Angle) EqualWithin(b Angle, tol decimal.Decimal) bool {
	u := compareUnit(a.unit, b.unit)
	return num.ApproxEqual(a.in(u), b.in(u), tol)
}

// Less reports whether a is strictly smaller than b.  Angles which are
// Equal are never Less, so that at most one of a.Less(b) and a.Equal(b)
// holds.
func (a Angle) Less(b Angle) bool {
	u := compareUnit(a.unit, b.unit)
	return !a.Equal(b) && a.in(u).LessThan(b.in(u))
}

// Greater reports whether a is strictly larger than b.
func (a Angle) Greater(b Angle) bool {
	return !a.Less(b) && !a.Equal(b)
}

// LessOrEqual reports whether a is smaller than or equal to b.
func (a Angle) LessOrEqual(b Angle) bool {
	return a.Less(b) || a.Equal(b)
}

// GreaterOrEqual reports whether a is larger than or equal to b.
func (a Angle) GreaterOrEqual(b Angle) bool {
	return !a.Less(b)
}

// Compare returns -1 if a is less than b, 0 if a equals b, and +1 if a is
// greater than b.  The result is consistent with Less and Equal, and can be
// used with slices.SortFunc.
func (a Angle) Compare(b Angle) int {
	switch {
	case a.Less(b):
		return -1
	case a.Equal(b):
		return 0
	default:
		return 1
	}
}

// Hash returns a hash value for the angle.  The value is computed from the
// magnitude in degrees, rounded to a fixed number of places, so that the
// same angle has the same hash in every unit.
//
// Since equality uses a tolerance, two equal angles which fall on different
// sides of a rounding boundary can still have different hashes.
func (a Angle) Hash() uint64 {
	deg := a.in(Degrees).Round(hashPlaces)
	if deg.Equal(Degrees.Period()) {
		deg = decimal.Zero
	}
	return murmur3.Sum64([]byte(deg.StringFixed(hashPlaces)))
}

// Equal reports whether two possibly missing angles are equal.
// Two nil angles are equal; a nil angle never equals a non-nil one.
func Equal(a, b *Angle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Less reports whether a is strictly smaller than b, for possibly missing
// angles.  A nil angle is less than every non-nil angle, but not less than
// another nil angle.
func Less(a, b *Angle) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return a.Less(*b)
	}
}
