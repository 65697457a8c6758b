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

var prices = []chart.OHLC{
	{Left: 0.7, Right: 1.3, Open: 102, High: 108, Low: 99, Close: 106},
	{Left: 1.7, Right: 2.3, Open: 106, High: 107, Low: 98, Close: 100},
	{Left: 2.7, Right: 3.3, Open: 100, High: 104, Low: 100, Close: 100},
	{Left: 3.7, Right: 4.3, Open: 101, High: 112, Low: 101, Close: 111},
	{Left: 4.7, Right: 5.3, Open: nan, High: nan, Low: nan, Close: nan},
}

func hiLo(ps []chart.OHLC) []chart.Values {
	res := make([]chart.Values, len(ps))
	for i, p := range ps {
		res[i] = chart.HiLo{X: (p.Left + p.Right) / 2, High: p.High, Low: p.Low}
	}
	return res
}

var financialCases = []TestCase{
	{
		Name:   "hilo",
		Kind:   chart.HiLoKind,
		Items:  hiLo(prices),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(95, 115),
	},
	{
		Name:   "hilo_open_close",
		Kind:   chart.HiLoOpenClose,
		Items:  items(prices...),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(95, 115),
	},
	{
		Name:   "candle",
		Kind:   chart.Candle,
		Items:  items(prices...),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(95, 115),
	},
	{
		Name:   "candle_transposed",
		Kind:   chart.Candle,
		Items:  items(prices...),
		Config: config(func(c *chart.SeriesConfig) { c.IsTransposed = true }),
		Width:  200,
		Height: 120,
		X:      window(0.5, 5.5),
		Y:      window(95, 115),

		Transposed: true,
	},
}
