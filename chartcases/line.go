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
	"math"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/series"
)

var nan = math.NaN()

// monthly is a small series with one empty point.
var monthly = pts(
	1, 12, 2, 19, 3, 15, 4, nan,
	5, 22, 6, 30, 7, 26, 8, 28,
)

var lineCases = []TestCase{
	{
		Name:   "line_gap",
		Kind:   chart.Line,
		Items:  items(monthly),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "line_empty_points",
		Kind:   chart.Line,
		Items:  items(monthly),
		Config: config(func(c *chart.SeriesConfig) { c.ShowEmptyPoints = true }),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "line_clipped",
		Kind:   chart.Line,
		Items:  items(monthly),
		Width:  200,
		Height: 120,
		X:      window(2.5, 6.5),
		Y:      window(0, 35),
	},
	{
		Name:   "step_post",
		Kind:   chart.StepLine,
		Items:  items(monthly),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "step_mid",
		Kind:   chart.StepLine,
		Items:  items(monthly),
		Config: config(func(c *chart.SeriesConfig) { c.Step = chart.StepMid }),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "spline_natural",
		Kind:   chart.Spline,
		Items:  items(must(series.Spline(monthly, series.Natural))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "spline_monotonic",
		Kind:   chart.Spline,
		Items:  items(must(series.Spline(monthly, series.Monotonic))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "spline_cardinal",
		Kind:   chart.Spline,
		Items:  items(must(series.Spline(monthly, series.Cardinal))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name: "trend_linear",
		Kind: chart.Trendline,
		Items: items(must(series.Trend{
			Type:     series.LinearTrend,
			Forward:  1,
			Backward: 0.5,
		}.Points(monthly))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name: "trend_polynomial",
		Kind: chart.Trendline,
		Items: items(must(series.Trend{
			Type:  series.PolynomialTrend,
			Order: 3,
		}.Points(monthly))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name: "trend_moving_average",
		Kind: chart.Trendline,
		Items: items(must(series.Trend{
			Type:   series.MovingAverage,
			Period: 3,
		}.Points(monthly))),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:   "line_log",
		Kind:   chart.Line,
		Items:  items(pts(1, 1, 2, 10, 3, 100, 4, 1000, 5, 0.5)),
		Width:  200,
		Height: 120,
		X:      window(0, 6),
		Y:      logWindow(10, -1, 3),
	},
}
