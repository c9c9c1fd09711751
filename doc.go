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

// Package angle implements circular angles which can be measured in
// degrees, gradians, radians, or turns.
//
// An [Angle] stores its magnitude as a fixed-point decimal, together with
// its unit.  The magnitude is always kept in the range [0, period), where the
// period is 360 for degrees, 400 for gradians, 2π for radians and 1 for
// turns:
//
//	a := angle.NewFromInt(350, angle.Degrees)
//	b := a.Add(angle.Deg(20)) // 10°
//
// Angles in different units can be freely mixed.  Arithmetic results use the
// unit of the left operand.  Comparisons convert both operands into a common
// unit, so that a.Equal(b) and b.Equal(a) always agree.  Equality allows for a small tolerance, since
// conversions to and from radians involve the irrational number π:
//
//	angle.Deg(180).Equal(angle.NewFromFloat(0.5, angle.Turns)) // true
//
// # Formatting
//
// Angles are converted to text using short format codes.  A code consists of
// a letter, which selects the unit, and an optional number of fractional
// digits:
//
//	d  degrees, e.g. "45.00°"
//	g  gradians, e.g. "50.00g"
//	r  radians, e.g. "0.78540rad"
//	t  turns, e.g. "0.13tr"
//	p  radians as a multiple of π, e.g. "0.25000πrad"
//	C  the unit of the angle itself (also used for the empty code)
//
// For example, "r3" shows radians with three digits after the decimal point.
// Without a digit count, radians use five digits and all other units use
// two.  [Format] and [Formatter.Format] interpret these codes; Angle also
// implements [fmt.Formatter], so that the same letters can be used as
// formatting verbs:
//
//	fmt.Printf("%.3r\n", angle.Deg(90)) // 1.571rad
//
// [Parse] reads the text produced by the formatter back into an Angle.
package angle
