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

var bars = []chart.Rect{
	{Left: 0.5, Right: 1.5, Top: 12, Bottom: 0},
	{Left: 1.5, Right: 2.5, Top: 19, Bottom: 0},
	{Left: 2.5, Right: 3.5, Top: -6, Bottom: 0},
	{Left: 3.5, Right: 4.5, Top: 22, Bottom: 0},
	{Left: 4.5, Right: 5.5, Top: 30, Bottom: 0},
}

var columnCases = []TestCase{
	{
		Name:   "column",
		Kind:   chart.Column,
		Items:  items(bars...),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(-10, 35),
	},
	{
		Name:   "column_spacing",
		Kind:   chart.Column,
		Items:  items(bars...),
		Config: config(func(c *chart.SeriesConfig) { c.SegmentSpacing = 0.3 }),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(-10, 35),
	},
	{
		Name:   "bar_transposed",
		Kind:   chart.Column,
		Items:  items(bars...),
		Config: config(func(c *chart.SeriesConfig) { c.SegmentSpacing = 0.3; c.IsTransposed = true }),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(-10, 35),

		Transposed: true,
	},
	{
		Name:   "column_clipped",
		Kind:   chart.Column,
		Items:  items(bars...),
		Width:  200,
		Height: 120,
		X:      window(1.8, 4.2),
		Y:      window(-10, 35),
	},
	{
		Name: "stacking_column",
		Kind: chart.StackingColumn,
		Items: items(append(append(
			must(series.Columns(stacked[0], 0.6)),
			must(series.Columns(stacked[1], 0.6))...),
			must(series.Columns(stacked[2], 0.6))...)...),
		Width:  200,
		Height: 120,
		X:      window(0.5, 6.5),
		Y:      window(-3, 25),
	},
	{
		Name: "range_column",
		Kind: chart.RangeColumn,
		Items: items(
			chart.Rect{Left: 0.6, Right: 1.4, Top: 8, Bottom: 1},
			chart.Rect{Left: 1.6, Right: 2.4, Top: 10, Bottom: 2},
			chart.Rect{Left: 2.6, Right: 3.4, Top: 14, Bottom: 5},
		),
		Config: config(func(c *chart.SeriesConfig) { c.SegmentSpacing = 0.1 }),
		Width:  200,
		Height: 120,
		X:      window(0.5, 3.5),
		Y:      window(0, 20),
	},
	{
		Name:   "column_log",
		Kind:   chart.Column,
		Items: items(
			chart.Rect{Left: 0.5, Right: 1.5, Top: 100, Bottom: 1},
			chart.Rect{Left: 1.5, Right: 2.5, Top: 8, Bottom: 1},
		),
		Width:  200,
		Height: 120,
		X:      window(0.5, 2.5),
		Y:      logWindow(10, 0, 3),
	},
}
