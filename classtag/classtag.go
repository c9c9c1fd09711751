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

// Package classtag attaches small integer tags to Go types.
//
// Tags carry no behaviour.  They exist so that tools which list the types of
// a package can show a stable identifier next to each type name.  Packages
// register their types from an init function:
//
//	func init() {
//		classtag.Register[Angle](4)
//	}
//
// After initialization the table is only read, so lookups need no locking.
package classtag

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Entry is one row of the tag table.
type Entry struct {
	Type reflect.Type
	Tag  int
}

// Name returns the package-qualified name of the type, for example
// "angle.Angle".
func (e Entry) Name() string {
	return e.Type.String()
}

var tags = map[reflect.Type]int{}

// Register attaches tag to the type T.
// Registering the same type twice with different tags panics.
// Register must only be called during package initialization.
func Register[T any](tag int) {
	t := reflect.TypeFor[T]()
	if old, ok := tags[t]; ok && old != tag {
		panic(fmt.Sprintf("classtag: %s registered with tags %d and %d", t, old, tag))
	}
	tags[t] = tag
}

// Of returns the tag of the type T.
func Of[T any]() (int, bool) {
	return Lookup(reflect.TypeFor[T]())
}

// Lookup returns the tag of the type t.
func Lookup(t reflect.Type) (int, bool) {
	tag, ok := tags[t]
	return tag, ok
}

// All returns all registered types, ordered by tag and then by name.
func All() []Entry {
	res := make([]Entry, 0, len(tags))
	for t, tag := range tags {
		res = append(res, Entry{Type: t, Tag: tag})
	}
	slices.SortFunc(res, func(a, b Entry) int {
		if c := cmp.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		return strings.Compare(a.Name(), b.Name())
	})
	return res
}
