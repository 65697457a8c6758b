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

package chart

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/chart/interval"
)

func TestAccumulate(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want interval.Range
	}{
		{"plain", []float64{2, 7, -1, 5}, interval.Range{Start: -1, End: 7}},
		{"gap", []float64{2, nan, -1, 5}, interval.Range{Start: -1, End: 5}},
		{"single", []float64{4}, interval.Range{Start: 4, End: 4}},
		{"empty", nil, interval.Empty},

		// A leading empty point makes the maximum NaN, while the minimum
		// falls back to the smallest present value.
		{"leading gap", []float64{nan, 1, 3}, interval.Range{Start: 1, End: nan}},
		{"all empty", []float64{nan, nan}, interval.Range{Start: 0, End: nan}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := accumulate(len(c.in), func(i int) float64 { return c.in[i] })
			if d := cmp.Diff(c.want, got, approx); d != "" {
				t.Errorf("range mismatch (-want +got):\n%s", d)
			}
		})
	}
}

// TestAccumulateMinimum checks that the minimum of any list with at least
// one present value is the minimum of the present values.
func TestAccumulateMinimum(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		n := 1 + rng.IntN(10)
		ys := make([]float64, n)
		want := math.Inf(1)
		for i := range ys {
			if rng.IntN(3) == 0 {
				ys[i] = nan
				continue
			}
			ys[i] = rng.NormFloat64()
			want = min(want, ys[i])
		}
		got := accumulate(n, func(i int) float64 { return ys[i] })
		if math.IsInf(want, 1) {
			want = 0
		}
		if got.Start != want {
			t.Fatalf("%v: minimum %g, want %g", ys, got.Start, want)
		}
	}
}

func TestRanges(t *testing.T) {
	cfg := DefaultConfig()
	plusOnly := DefaultConfig()
	plusOnly.ErrorBar.Direction = DirectionPlus
	plusOnly.ErrorBar.Mode = ErrorBarVertical

	cases := []struct {
		name string
		kind Kind
		v    Values
		cfg  *SeriesConfig
		x, y interval.Range
	}{
		{
			name: "line",
			kind: Line,
			v:    Points{{X: 1, Y: 4}, {X: 2, Y: nan}, {X: 3, Y: -2}},
			x:    interval.Range{Start: 1, End: 3},
			y:    interval.Range{Start: -2, End: 4},
		},
		{
			name: "column",
			kind: Column,
			v:    Rect{Left: 1, Right: 2, Top: 5, Bottom: 0},
			x:    interval.Range{Start: 1, End: 2},
			y:    interval.Range{Start: 0, End: 5},
		},
		{
			name: "scatter with empty Y",
			kind: Scatter,
			v:    Point{X: 3, Y: nan},
			x:    interval.Range{Start: 3, End: 3},
			y:    interval.Empty,
		},
		{
			name: "hi-lo-open-close aligned",
			kind: HiLoOpenClose,
			v:    OHLC{Left: 0, Right: 1, High: 5, Low: 2, Open: 6, Close: 1},
			x:    interval.Range{Start: 0, End: 1},
			y:    interval.Range{Start: 1, End: 6},
		},
		{
			name: "error bar both",
			kind: ErrorBarKind,
			v:    ErrorBar{X: 5, Y: 5, XLow: 4, XHigh: 7, YLow: 1, YHigh: 8},
			x:    interval.Range{Start: 4, End: 7},
			y:    interval.Range{Start: 1, End: 8},
		},
		{
			name: "error bar vertical plus",
			kind: ErrorBarKind,
			v:    ErrorBar{X: 5, Y: 5, XLow: 4, XHigh: 7, YLow: 1, YHigh: 8},
			cfg:  plusOnly,
			x:    interval.Range{Start: 5, End: 5},
			y:    interval.Range{Start: 5, End: 8},
		},
		{
			name: "box",
			kind: BoxAndWhisker,
			v: BoxWhisker{
				Left: 0, Right: 1,
				Minimum: 1, LowerQuartile: 3, Median: 5, UpperQuartile: 7, Maximum: 9,
				Average: nan, Outliers: []float64{12, -1},
			},
			x: interval.Range{Start: 0, End: 1},
			y: interval.Range{Start: -1, End: 12},
		},
		{
			name: "funnel",
			kind: Funnel,
			v:    FunnelSlice{Top: 0, Bottom: 0.5},
			x:    interval.Empty,
			y:    interval.Empty,
		},
		{
			name: "range area",
			kind: RangeArea,
			v:    Band{X: []float64{0, 1, 2}, High: []float64{3, 4, 5}, Low: []float64{1, -2, 2}},
			x:    interval.Range{Start: 0, End: 2},
			y:    interval.Range{Start: -2, End: 5},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cf := c.cfg
			if cf == nil {
				cf = cfg
			}
			x, y := Ranges(c.kind, c.v, cf)
			if d := cmp.Diff(c.x, x, approx); d != "" {
				t.Errorf("X range mismatch (-want +got):\n%s", d)
			}
			if d := cmp.Diff(c.y, y, approx); d != "" {
				t.Errorf("Y range mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestSplineRange(t *testing.T) {
	v := SplinePoints{
		Points:   []Point{{X: 0, Y: 0}, {X: 3, Y: 0}},
		Controls: []ControlPair{{C1: Point{X: 1, Y: 3}, C2: Point{X: 2, Y: -3}}},
	}
	_, y := Ranges(Spline, v, nil)
	if !(y.Start < 0 && y.End >= 3) {
		t.Errorf("Y range %v does not include the interior extrema", y)
	}
}
