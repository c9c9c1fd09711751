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

package classtag

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type first struct{}
type second struct{}
type third int

func withEmptyTable(t *testing.T) {
	t.Helper()
	saved := tags
	tags = map[reflect.Type]int{}
	t.Cleanup(func() { tags = saved })
}

func TestRegisterAndLookup(t *testing.T) {
	withEmptyTable(t)

	Register[first](7)
	Register[second](2)

	tag, ok := Of[first]()
	require.True(t, ok)
	require.Equal(t, 7, tag)

	tag, ok = Lookup(reflect.TypeFor[second]())
	require.True(t, ok)
	require.Equal(t, 2, tag)

	_, ok = Of[third]()
	require.False(t, ok)
}

func TestRegisterTwice(t *testing.T) {
	withEmptyTable(t)

	Register[first](1)
	require.NotPanics(t, func() { Register[first](1) })
	require.Panics(t, func() { Register[first](2) })
}

func TestAllOrder(t *testing.T) {
	withEmptyTable(t)

	Register[third](3)
	Register[second](1)
	Register[first](1)

	all := All()
	require.Len(t, all, 3)

	var names []string
	var order []int
	for _, e := range all {
		names = append(names, e.Name())
		order = append(order, e.Tag)
	}
	require.Equal(t, []int{1, 1, 3}, order)
	require.Equal(t, []string{"classtag.first", "classtag.second", "classtag.third"}, names)
}
