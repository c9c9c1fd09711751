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

// Angledemo prints angles in all supported units.
//
// Usage:
//
//	angledemo [-code c] [-lang tag] angle...
//
// Every argument is parsed as an angle literal, for example "45°", "0.5πrad"
// or "100g".  Each angle is shown in all units, followed by the result of
// comparing it to the previous argument.  Finally, the table of class tags is
// printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/angle"
	"seehuhn.de/go/angle/classtag"
)

func main() {
	code := flag.String("code", "", "format code for the input column (default: unit of the input)")
	lang := flag.String("lang", "", "BCP 47 language tag for number formatting")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] angle...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	f := &angle.Formatter{}
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing language tag: %v\n", err)
			os.Exit(1)
		}
		f.Language = tag
	}

	var angles []angle.Angle
	for _, arg := range flag.Args() {
		a, err := angle.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		angles = append(angles, a)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	err := run(os.Stdout, f, *code, angles, width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run writes the report for the given angles to w.  The columns are sized
// to fit into width characters where possible.
func run(w io.Writer, f *angle.Formatter, code string, angles []angle.Angle, width int) error {
	codes := []string{code, "d", "g", "r", "p", "t"}
	col := max(width/len(codes)-1, 12)

	var prev *angle.Angle
	for i := range angles {
		a := &angles[i]

		cells := make([]string, len(codes))
		for j, c := range codes {
			s, err := f.Format(*a, c)
			if err != nil {
				return err
			}
			cells[j] = s
		}
		fmt.Fprintln(w, row(cells, col))

		if prev != nil {
			fmt.Fprintf(w, "  %s vs. %s: equal=%t less=%t compare=%d\n",
				prev, a, angle.Equal(prev, a), angle.Less(prev, a), prev.Compare(*a))
		}
		prev = a
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, row([]string{"tag", "type"}, col))
	fmt.Fprintln(w, strings.Repeat("-", min(width, 2*col+1)))
	for _, e := range classtag.All() {
		fmt.Fprintln(w, row([]string{fmt.Sprint(e.Tag), e.Name()}, col))
	}
	return nil
}

func row(cells []string, col int) string {
	b := &strings.Builder{}
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%-*s", col, c)
	}
	return strings.TrimRight(b.String(), " ")
}
