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

var pipeline = []float64{1000, 600, 350, 120, 40}

func funnelItems(s []chart.FunnelSlice, explode int) []chart.Values {
	if explode >= 0 {
		s[explode].Exploded = true
	}
	return items(s...)
}

var funnelCases = []TestCase{
	{
		Name:   "funnel_height",
		Kind:   chart.Funnel,
		Items:  funnelItems(must(series.Funnel(pipeline, chart.ValueIsHeight, 0.1)), -1),
		Width:  160,
		Height: 200,
		X:      window(0, 1),
		Y:      window(0, 1),
	},
	{
		Name:   "funnel_width",
		Kind:   chart.Funnel,
		Items:  funnelItems(must(series.Funnel(pipeline, chart.ValueIsWidth, 0)), 1),
		Config: config(func(c *chart.SeriesConfig) { c.Funnel.Mode = chart.ValueIsWidth }),
		Width:  160,
		Height: 200,
		X:      window(0, 1),
		Y:      window(0, 1),
	},
	{
		Name:   "pyramid_linear",
		Kind:   chart.Pyramid,
		Items:  funnelItems(must(series.Pyramid(pipeline, series.Linear, 0.05)), -1),
		Width:  160,
		Height: 200,
		X:      window(0, 1),
		Y:      window(0, 1),
	},
	{
		Name:   "pyramid_surface",
		Kind:   chart.Pyramid,
		Items:  funnelItems(must(series.Pyramid(pipeline, series.Surface, 0)), 0),
		Width:  160,
		Height: 200,
		X:      window(0, 1),
		Y:      window(0, 1),
	},
}
