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

package series

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/chart"
)

func TestErrorBars(t *testing.T) {
	se := 1 / math.Sqrt(3)
	cases := []struct {
		name string
		pts  []chart.Point
		spec ErrorBarSpec
		want []chart.ErrorBar
	}{
		{
			name: "fixed",
			pts:  points(1, 2),
			spec: ErrorBarSpec{Type: Fixed, Horizontal: 0.5, Vertical: 1},
			want: []chart.ErrorBar{{X: 1, Y: 2, XLow: 0.5, XHigh: 1.5, YLow: 1, YHigh: 3}},
		},
		{
			name: "percentage",
			pts:  points(10, -20),
			spec: ErrorBarSpec{Type: Percentage, Horizontal: 10, Vertical: 10},
			want: []chart.ErrorBar{{X: 10, Y: -20, XLow: 9, XHigh: 11, YLow: -22, YHigh: -18}},
		},
		{
			name: "standard deviation",
			pts:  points(0, 1, 1, 2, 2, 3),
			spec: ErrorBarSpec{Type: StandardDeviation, Vertical: 2},
			want: []chart.ErrorBar{
				{X: 0, Y: 1, XLow: 0, XHigh: 0, YLow: -1, YHigh: 3},
				{X: 1, Y: 2, XLow: 1, XHigh: 1, YLow: 0, YHigh: 4},
				{X: 2, Y: 3, XLow: 2, XHigh: 2, YLow: 1, YHigh: 5},
			},
		},
		{
			name: "standard error",
			pts:  points(0, 1, 1, 2, 2, 3),
			spec: ErrorBarSpec{Type: StandardError, Vertical: 1},
			want: []chart.ErrorBar{
				{X: 0, Y: 1, XLow: 0, XHigh: 0, YLow: 1 - se, YHigh: 1 + se},
				{X: 1, Y: 2, XLow: 1, XHigh: 1, YLow: 2 - se, YHigh: 2 + se},
				{X: 2, Y: 3, XLow: 2, XHigh: 2, YLow: 3 - se, YHigh: 3 + se},
			},
		},
		{
			name: "custom with empty point",
			pts:  points(0, 1, 1, nan),
			spec: ErrorBarSpec{Type: Custom, YPlus: []float64{2, 2}},
			want: []chart.ErrorBar{
				{X: 0, Y: 1, XLow: 0, XHigh: 0, YLow: 1, YHigh: 3},
				{X: 1, Y: nan, XLow: nan, XHigh: nan, YLow: nan, YHigh: nan},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ErrorBars(c.pts, c.spec)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got, approx); d != "" {
				t.Errorf("error bars mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestErrorBarsErrors(t *testing.T) {
	if _, err := ErrorBars(nil, ErrorBarSpec{}); !errors.Is(err, ErrNoData) {
		t.Errorf("no points: got %v", err)
	}
	spec := ErrorBarSpec{Type: Custom, XMinus: []float64{1}}
	if _, err := ErrorBars(points(0, 1, 1, 2), spec); !errors.Is(err, ErrLength) {
		t.Errorf("short custom values: got %v", err)
	}
	spec = ErrorBarSpec{Type: StandardDeviation}
	if _, err := ErrorBars(points(0, nan), spec); !errors.Is(err, ErrNoData) {
		t.Errorf("only empty points: got %v", err)
	}
}
