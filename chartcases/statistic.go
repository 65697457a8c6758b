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

package chartcases

import (
	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/series"
)

var samples = [][]float64{
	{3, 5, 7, 2, 9, 4, 6},
	{12, 15, 11, 14, 40, 13, 12, 16},
	{8, 1, 6, 3, 7, nan, 5},
}

// boxes computes the box statistics of samples, one box per unit of X.
func boxes(method series.QuartileMethod) []chart.Values {
	res := make([]chart.Values, len(samples))
	for i, data := range samples {
		b := must(series.BoxStats(data, method))
		b.Left = float64(i) + 0.6
		b.Right = float64(i) + 1.4
		res[i] = b
	}
	return res
}

func errorBars(spec series.ErrorBarSpec) []chart.Values {
	bars := must(series.ErrorBars(monthly, spec))
	return items(bars...)
}

var statisticCases = []TestCase{
	{
		Name:   "box_exclusive",
		Kind:   chart.BoxAndWhisker,
		Items:  boxes(series.Exclusive),
		Width:  200,
		Height: 160,
		X:      window(0.5, 3.5),
		Y:      window(0, 45),
	},
	{
		Name:  "box_inclusive_plain",
		Kind:  chart.BoxAndWhisker,
		Items: boxes(series.Inclusive),
		Config: config(func(c *chart.SeriesConfig) {
			c.ShowMean = false
			c.WhiskerWidth = 0.5
			c.SegmentSpacing = 0.2
		}),
		Width:  200,
		Height: 160,
		X:      window(0.5, 3.5),
		Y:      window(0, 45),
	},
	{
		Name:   "box_transposed",
		Kind:   chart.BoxAndWhisker,
		Items:  boxes(series.Normal),
		Config: config(func(c *chart.SeriesConfig) { c.IsTransposed = true }),
		Width:  200,
		Height: 160,
		X:      window(0.5, 3.5),
		Y:      window(0, 45),

		Transposed: true,
	},
	{
		Name:   "error_fixed",
		Kind:   chart.ErrorBarKind,
		Items:  errorBars(series.ErrorBarSpec{Type: series.Fixed, Horizontal: 0.3, Vertical: 2}),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:  "error_percentage_plus",
		Kind:  chart.ErrorBarKind,
		Items: errorBars(series.ErrorBarSpec{Type: series.Percentage, Vertical: 10}),
		Config: config(func(c *chart.SeriesConfig) {
			c.ErrorBar.Mode = chart.ErrorBarVertical
			c.ErrorBar.Direction = chart.DirectionPlus
		}),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:  "error_deviation",
		Kind:  chart.ErrorBarKind,
		Items: errorBars(series.ErrorBarSpec{Type: series.StandardDeviation, Vertical: 1}),
		Config: config(func(c *chart.SeriesConfig) {
			c.ErrorBar.Mode = chart.ErrorBarVertical
			c.ErrorBar.VerticalCap.Length = 6
		}),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(-10, 45),
	},
}
