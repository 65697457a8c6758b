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

package axis

import "sort"

// Contains reports whether the data value x lies inside the visible window.
// For logarithmic axes the comparison is done on log_Base(x).
func (a Axis) Contains(x float64) bool {
	v := a.Value(x)
	return a.Visible.Start <= v && v <= a.Visible.End
}

// Overlaps reports whether the data interval [left, right] intersects the
// visible window.
func (a Axis) Overlaps(left, right float64) bool {
	l, r := a.Value(left), a.Value(right)
	if l > r {
		l, r = r, l
	}
	return l <= a.Visible.End && r >= a.Visible.Start
}

// Span locates the visible part of an index-ordered sequence of n X values.
// The values must be non-decreasing.
//
// The returned first index is the last point at or before the start of the
// visible window, last is the first point at or after its end.  Drawing the
// points first..last therefore covers the whole window, and the shape can be
// closed at the outermost points instead of being extrapolated.  If the
// sequence does not intersect the window at all, ok is false.
func Span(a Axis, n int, x func(i int) float64) (first, last int, ok bool) {
	if n == 0 {
		return 0, 0, false
	}
	if !a.Overlaps(x(0), x(n-1)) {
		return 0, n - 1, false
	}

	start, end := a.Visible.Start, a.Visible.End
	first = sort.Search(n, func(i int) bool { return a.Value(x(i)) > start }) - 1
	last = sort.Search(n, func(i int) bool { return a.Value(x(i)) >= end })
	first = max(first, 0)
	last = min(last, n-1)
	if first > last {
		first = last
	}
	return first, last, true
}
