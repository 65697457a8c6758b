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

package interval

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		a, b float64
		want Range
	}{
		{1, 2, Range{1, 2}},
		{2, 1, Range{1, 2}},
		{nan, 3, Range{3, 3}},
		{3, nan, Range{3, 3}},
	}
	for _, c := range cases {
		got := New(c.a, c.b)
		if got != c.want {
			t.Errorf("New(%g, %g) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
	if !New(nan, nan).IsEmpty() {
		t.Error("New(NaN, NaN) is not empty")
	}
}

func TestAdd(t *testing.T) {
	r := Empty
	for _, v := range []float64{3, math.NaN(), -1, 7, 2} {
		r = r.Add(v)
	}
	if r != (Range{-1, 7}) {
		t.Errorf("got %v, want [-1, 7]", r)
	}
	if !Empty.Add(math.NaN()).IsEmpty() {
		t.Error("adding NaN to Empty must stay empty")
	}
}

func TestUnion(t *testing.T) {
	a := Range{0, 2}
	b := Range{1, 5}
	if got := Union(a, b); got != (Range{0, 5}) {
		t.Errorf("Union(%v, %v) = %v", a, b, got)
	}
	if got := Union(Empty, b); got != b {
		t.Errorf("Union(Empty, %v) = %v", b, got)
	}
	if got := Union(a, Empty); got != a {
		t.Errorf("Union(%v, Empty) = %v", a, got)
	}
	if !Union(Empty, Empty).IsEmpty() {
		t.Error("Union(Empty, Empty) is not empty")
	}
}

func TestOverlaps(t *testing.T) {
	w := Range{10, 20}
	cases := []struct {
		r    Range
		want bool
	}{
		{Range{0, 5}, false},
		{Range{0, 10}, true},
		{Range{15, 16}, true},
		{Range{20, 30}, true},
		{Range{21, 30}, false},
		{Range{0, 30}, true},
	}
	for _, c := range cases {
		if got := c.r.Overlaps(w); got != c.want {
			t.Errorf("%v.Overlaps(%v) = %t", c.r, w, got)
		}
	}
}

func TestDelta(t *testing.T) {
	if d := Empty.Delta(); d != 0 {
		t.Errorf("Empty.Delta() = %g", d)
	}
	if d := (Range{-2, 3}).Delta(); d != 5 {
		t.Errorf("Delta() = %g, want 5", d)
	}
}
