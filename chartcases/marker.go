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
)

func scatter(p chart.Points) []chart.Values {
	res := make([]chart.Values, len(p))
	for i, v := range p {
		res[i] = v
	}
	return res
}

var markerCases = []TestCase{
	{
		Name:   "scatter",
		Kind:   chart.Scatter,
		Items:  scatter(monthly),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name:  "scatter_wide",
		Kind:  chart.Scatter,
		Items: scatter(monthly),
		Config: config(func(c *chart.SeriesConfig) {
			c.Marker = chart.MarkerConfig{Width: 16, Height: 6}
		}),
		Width:  200,
		Height: 120,
		X:      window(0, 9),
		Y:      window(0, 35),
	},
	{
		Name: "bubble",
		Kind: chart.BubbleKind,
		Items: items(
			chart.Bubble{X: 2, Y: 10, Size: 1},
			chart.Bubble{X: 4, Y: 25, Size: 4},
			chart.Bubble{X: 6, Y: 15, Size: 2.5},
			chart.Bubble{X: 8, Y: nan, Size: 3},
		),
		Config: config(func(c *chart.SeriesConfig) {
			c.Bubble = chart.BubbleConfig{MinRadius: 4, MaxRadius: 20, MaxSize: 4}
		}),
		Width:  200,
		Height: 120,
		X:      window(0, 10),
		Y:      window(0, 35),
	},
}
