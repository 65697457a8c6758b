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

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/interval"
)

func near(a, b vec.Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestCartesianCorners(t *testing.T) {
	x := Axis{Visible: interval.Range{Start: 0, End: 10}}
	y := Axis{Visible: interval.Range{Start: -5, End: 5}}
	vp := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 220}

	cases := []struct {
		transposed bool
		x, y       float64
		want       vec.Vec2
	}{
		{false, 0, -5, vec.Vec2{X: 10, Y: 220}},
		{false, 10, 5, vec.Vec2{X: 110, Y: 20}},
		{false, 5, 0, vec.Vec2{X: 60, Y: 120}},
		{true, 0, -5, vec.Vec2{X: 10, Y: 220}},
		{true, 10, -5, vec.Vec2{X: 10, Y: 20}},
		{true, 0, 5, vec.Vec2{X: 110, Y: 220}},
	}
	for _, c := range cases {
		tr := NewCartesian(x, y, vp, c.transposed)
		got := tr.Transform(c.x, c.y)
		if !near(got, c.want) {
			t.Errorf("transposed=%t: Transform(%g, %g) = %v, want %v",
				c.transposed, c.x, c.y, got, c.want)
		}
	}
}

func TestLogarithmicTransform(t *testing.T) {
	x := Axis{Visible: interval.Range{Start: 0, End: 3}, Log: true, Base: 10}
	y := Axis{Visible: interval.Range{Start: 0, End: 1}}
	tr := NewCartesian(x, y, rect.Rect{URx: 300, URy: 100}, false)

	for i, v := range []float64{1, 10, 100, 1000} {
		got := tr.Transform(v, 0).X
		if want := float64(100 * i); math.Abs(got-want) > 1e-9 {
			t.Errorf("x=%g: got %g, want %g", v, got, want)
		}
	}
}

// TestLogClipMonotonic checks that clipping in exponent space agrees with
// comparing raw values against b^start and b^end.
func TestLogClipMonotonic(t *testing.T) {
	for _, base := range []float64{2, math.E, 10} {
		a := Axis{Visible: interval.Range{Start: 0.5, End: 2.25}, Log: true, Base: base}
		lo := math.Pow(base, a.Visible.Start)
		hi := math.Pow(base, a.Visible.End)
		for _, x := range []float64{0.1, 1, lo * 0.999, lo * 1.001, 3, hi * 0.999, hi * 1.001, 1e6} {
			want := lo <= x && x <= hi
			if got := a.Contains(x); got != want {
				t.Errorf("base %g: Contains(%g) = %t, want %t", base, x, got, want)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := Axis{Visible: interval.Range{Start: 10, End: 20}}
	if !a.Overlaps(5, 10) {
		t.Error("touching interval must overlap")
	}
	if !a.Overlaps(25, 15) {
		t.Error("reversed interval must overlap")
	}
	if a.Overlaps(21, 30) {
		t.Error("interval right of window must not overlap")
	}
}

func TestSpan(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	at := func(i int) float64 { return xs[i] }

	cases := []struct {
		start, end  float64
		first, last int
		ok          bool
	}{
		{2.5, 6.5, 2, 7, true},
		{3, 6, 3, 6, true},
		{-1, 20, 0, 9, true},
		{8.5, 20, 8, 9, true},
		{20, 30, 0, 9, false},
	}
	for _, c := range cases {
		a := Axis{Visible: interval.Range{Start: c.start, End: c.end}}
		first, last, ok := Span(a, len(xs), at)
		if ok != c.ok || (ok && (first != c.first || last != c.last)) {
			t.Errorf("window [%g, %g]: got (%d, %d, %t), want (%d, %d, %t)",
				c.start, c.end, first, last, ok, c.first, c.last, c.ok)
		}
	}

	if _, _, ok := Span(Axis{}, 0, at); ok {
		t.Error("empty sequence must not be visible")
	}
}

func TestSpanSearch(t *testing.T) {
	cases := []struct {
		name        string
		a           Axis
		xs          []float64
		first, last int
	}{
		{
			name:  "repeated values",
			a:     Axis{Visible: interval.Range{Start: 1, End: 1.5}},
			xs:    []float64{0, 1, 1, 1, 2},
			first: 3,
			last:  4,
		},
		{
			name:  "log axis",
			a:     Axis{Visible: interval.Range{Start: 1.5, End: 2.5}, Log: true, Base: 10},
			xs:    []float64{1, 10, 100, 1000, 10000},
			first: 1,
			last:  3,
		},
		{
			name:  "window inside one gap",
			a:     Axis{Visible: interval.Range{Start: 100.2, End: 100.7}},
			xs:    []float64{0, 100, 101, 200},
			first: 1,
			last:  2,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			at := func(i int) float64 { return c.xs[i] }
			first, last, ok := Span(c.a, len(c.xs), at)
			if !ok || first != c.first || last != c.last {
				t.Errorf("got (%d, %d, %t), want (%d, %d, true)",
					first, last, ok, c.first, c.last)
			}
		})
	}

	// the search evaluates only a logarithmic number of X values
	calls := 0
	xs := make([]float64, 1<<16)
	for i := range xs {
		xs[i] = float64(i)
	}
	a := Axis{Visible: interval.Range{Start: 1000.5, End: 1010.5}}
	first, last, _ := Span(a, len(xs), func(i int) float64 { calls++; return xs[i] })
	if first != 1000 || last != 1011 {
		t.Errorf("got (%d, %d), want (1000, 1011)", first, last)
	}
	if calls > 64 {
		t.Errorf("%d evaluations of x", calls)
	}
}

func TestBaseline(t *testing.T) {
	vp := rect.Rect{URx: 100, URy: 100}
	minimum := 5.0

	cases := []struct {
		name string
		x, y Axis
		want float64
	}{
		{
			name: "explicit origin",
			x:    Axis{Origin: 3},
			y:    Axis{Visible: interval.Range{Start: 10, End: 20}},
			want: 3,
		},
		{
			name: "zero origin, window above zero",
			y:    Axis{Visible: interval.Range{Start: 10, End: 20}},
			want: 10,
		},
		{
			name: "zero origin, window contains zero",
			y:    Axis{Visible: interval.Range{Start: -10, End: 20}},
			want: 0,
		},
		{
			name: "log axis with minimum",
			x:    Axis{Origin: 3},
			y:    Axis{Visible: interval.Range{Start: 0, End: 2}, Log: true, Minimum: &minimum},
			want: 5,
		},
		{
			name: "log axis without minimum",
			y:    Axis{Visible: interval.Range{Start: 1, End: 2}, Log: true, Base: 10},
			want: 10,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := NewCartesian(c.x, c.y, vp, false)
			if got := Baseline(tr); math.Abs(got-c.want) > 1e-9 {
				t.Errorf("got %g, want %g", got, c.want)
			}
		})
	}
}

func TestUsable(t *testing.T) {
	x := Axis{Visible: interval.Range{Start: 0, End: 1}}
	if Usable(nil) {
		t.Error("nil transformer is usable")
	}
	if Usable(NewCartesian(x, x, rect.Rect{URx: 0, URy: 10}, false)) {
		t.Error("zero width viewport is usable")
	}
	if !Usable(NewCartesian(x, x, rect.Rect{URx: 10, URy: 10}, false)) {
		t.Error("regular viewport is not usable")
	}
	var c *CartesianTransformer
	if Usable(c) {
		t.Error("nil *CartesianTransformer is usable")
	}
}

func TestPolar(t *testing.T) {
	x := Axis{Visible: interval.Range{Start: 0, End: 4}}
	y := Axis{Visible: interval.Range{Start: 0, End: 1}}
	p := NewPolar(x, y, rect.Rect{URx: 200, URy: 100}, 0)

	cases := []struct {
		x, y float64
		want vec.Vec2
	}{
		{0, 0, vec.Vec2{X: 100, Y: 50}},
		{0, 1, vec.Vec2{X: 100, Y: 0}},
		{1, 1, vec.Vec2{X: 150, Y: 50}},
		{2, 1, vec.Vec2{X: 100, Y: 100}},
		{3, 0.5, vec.Vec2{X: 75, Y: 50}},
	}
	for _, c := range cases {
		if got := p.Transform(c.x, c.y); !near(got, c.want) {
			t.Errorf("Transform(%g, %g) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
	if p.Kind() != Polar {
		t.Errorf("Kind() = %v", p.Kind())
	}
}
