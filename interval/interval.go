// seehuhn.de/go/chart - geometry for chart rendering
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

// Package interval implements closed real intervals with an "empty" value.
//
// Ranges are used for the data-space extents of chart segments and for the
// visible windows of axes.
package interval

import (
	"fmt"
	"math"
)

// Range is the closed interval [Start, End].
// Unless the range is empty, Start <= End.
type Range struct {
	Start, End float64
}

// Empty is the range which contains no values.
var Empty = Range{Start: math.NaN(), End: math.NaN()}

// New returns the smallest range containing a and b.
// NaN arguments are ignored; if both are NaN, the result is Empty.
func New(a, b float64) Range {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return Empty
	case math.IsNaN(a):
		return Range{Start: b, End: b}
	case math.IsNaN(b):
		return Range{Start: a, End: a}
	case a > b:
		return Range{Start: b, End: a}
	}
	return Range{Start: a, End: b}
}

// Single returns the range [v, v], or Empty if v is NaN.
func Single(v float64) Range {
	if math.IsNaN(v) {
		return Empty
	}
	return Range{Start: v, End: v}
}

// IsEmpty reports whether r contains no values.
func (r Range) IsEmpty() bool {
	return math.IsNaN(r.Start) && math.IsNaN(r.End)
}

// Delta returns the length of the range.  The empty range has length 0.
func (r Range) Delta() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether v lies inside the closed range.
func (r Range) Contains(v float64) bool {
	return r.Start <= v && v <= r.End
}

// Overlaps reports whether the closed ranges r and o have a point in common.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && r.End >= o.Start
}

// Add returns the smallest range containing r and v.
// NaN values are ignored.
func (r Range) Add(v float64) Range {
	if math.IsNaN(v) {
		return r
	}
	if r.IsEmpty() {
		return Range{Start: v, End: v}
	}
	if v < r.Start {
		r.Start = v
	}
	if v > r.End {
		r.End = v
	}
	return r
}

// Union returns the smallest range containing both a and b.
//
// The comparisons are done directly on the endpoints, so a NaN endpoint of a
// which is not the empty range is carried through unchanged.
func Union(a, b Range) Range {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	if b.Start < a.Start {
		a.Start = b.Start
	}
	if b.End > a.End {
		a.End = b.End
	}
	return a
}

func (r Range) String() string {
	if r.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%g, %g]", r.Start, r.End)
}
