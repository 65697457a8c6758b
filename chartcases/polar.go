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

var polarCases = []TestCase{
	{
		Name:   "polar_line",
		Kind:   chart.Line,
		Items:  items(monthly),
		Width:  160,
		Height: 160,
		X:      window(0, 8),
		Y:      window(0, 35),
		Polar:  true,
	},
	{
		Name:   "polar_area",
		Kind:   chart.Area,
		Items:  items(monthly),
		Width:  160,
		Height: 160,
		X:      window(0, 8),
		Y:      window(0, 35),
		Polar:  true,
	},
	{
		Name:   "polar_column",
		Kind:   chart.Column,
		Items:  items(bars[:2]...),
		Width:  160,
		Height: 160,
		X:      window(0.5, 5.5),
		Y:      window(0, 35),
		Polar:  true,
	},
}
