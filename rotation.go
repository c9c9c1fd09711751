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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Matrix returns the transformation matrix which rotates by a,
// counter-clockwise.
func (a Angle) Matrix() matrix.Matrix {
	return matrix.Rotate(a.in(Radians).InexactFloat64())
}

// Direction returns the unit vector which points in direction a,
// measured counter-clockwise from the positive x-axis.
func (a Angle) Direction() vec.Vec2 {
	phi := a.in(Radians).InexactFloat64()
	return vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}
}

// FromVector returns the direction of v, measured counter-clockwise from
// the positive x-axis.  The result is given in radians.
// If v is the zero vector, ErrZeroVector is returned.
func FromVector(v vec.Vec2) (Angle, error) {
	if v.X == 0 && v.Y == 0 {
		return Angle{}, ErrZeroVector
	}
	return NewFromFloat(math.Atan2(v.Y, v.X), Radians), nil
}
