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

var (
	quarters = []float64{1, 2, 3, 4, 5, 6}
	north    = []float64{4, 6, 5, 8, 7, 9}
	south    = []float64{3, -2, 4, 2, nan, 3}
	west     = []float64{2, 3, 3, 1, 2, 4}

	stacked    = must(series.Stack(quarters, north, south, west))
	stacked100 = must(series.Stack100(quarters, north, south, west))

	temperature = chart.Band{
		X:    []float64{1, 2, 3, 4, 5, 6, 7},
		High: []float64{8, 10, 14, nan, 19, 17, 12},
		Low:  []float64{1, 2, 5, nan, 9, 8, 4},
	}
)

// top returns the upper boundary of a band as points.
func top(b chart.Band) chart.Points {
	res := make(chart.Points, len(b.X))
	for i, x := range b.X {
		res[i] = chart.Point{X: x, Y: b.High[i]}
	}
	return res
}

var areaCases = []TestCase{
	{
		Name:   "area_closed",
		Kind:   chart.Area,
		Items:  items(monthly),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "area_open",
		Kind:   chart.Area,
		Items:  items(monthly),
		Config: config(func(c *chart.SeriesConfig) { c.IsClosed = false }),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "step_area",
		Kind:   chart.StepArea,
		Items:  items(monthly),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "step_area_pre",
		Kind:   chart.StepArea,
		Items:  items(monthly),
		Config: config(func(c *chart.SeriesConfig) { c.Step = chart.StepPre; c.IsClosed = false }),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "spline_area",
		Kind:   chart.SplineArea,
		Items:  items(must(series.Spline(monthly, series.Monotonic))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "stacking_area",
		Kind:   chart.StackingArea,
		Items:  items(stacked...),
		Width:  200,
		Height: 120,
		X:      window(1, 6),
		Y:      window(-3, 25),
	},
	{
		Name:   "stacking_area_100",
		Kind:   chart.StackingArea,
		Items:  items(stacked100...),
		Width:  200,
		Height: 120,
		X:      window(1, 6),
		Y:      window(-50, 100),
	},
	{
		Name:   "stacking_line",
		Kind:   chart.StackingLine,
		Items:  items(top(stacked[0]), top(stacked[1]), top(stacked[2])),
		Width:  200,
		Height: 120,
		X:      window(1, 6),
		Y:      window(-3, 25),
	},
	{
		Name:   "range_area",
		Kind:   chart.RangeArea,
		Items:  items(temperature),
		Width:  200,
		Height: 120,
		X:      window(0, 8),
		Y:      window(0, 20),
	},
	{
		Name:   "spline_range_area",
		Kind:   chart.SplineRangeArea,
		Items:  items(must(series.SplineBand(temperature, series.Natural))),
		Width:  200,
		Height: 120,
		X:      window(0, 8),
		Y:      window(0, 20),
	},
}
