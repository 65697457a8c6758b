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
	"fmt"
	"math"

	"seehuhn.de/go/chart"
)

// Stack stacks several series which share the X values x.
//
// The result has one band per series.  Band i runs from the total of the
// series before i (Low) to that total plus ys[i] (High).  Positive and
// negative values are stacked separately, so that negative values grow
// downwards from zero.  An empty (NaN) value leaves the stack unchanged and
// gives NaN for both High and Low.
func Stack(x []float64, ys ...[]float64) ([]chart.Band, error) {
	return stack(x, ys, false)
}

// Stack100 is like [Stack], but scales every X position so that the
// absolute values at that position add up to 100.
func Stack100(x []float64, ys ...[]float64) ([]chart.Band, error) {
	return stack(x, ys, true)
}

func stack(x []float64, ys [][]float64, percent bool) ([]chart.Band, error) {
	if len(ys) == 0 || len(x) == 0 {
		return nil, ErrNoData
	}
	for i, y := range ys {
		if err := checkLength(fmt.Sprintf("series %d", i), len(y), len(x)); err != nil {
			return nil, err
		}
	}

	n := len(x)
	scale := make([]float64, n)
	for j := range n {
		scale[j] = 1
		if !percent {
			continue
		}
		total := 0.0
		for _, y := range ys {
			if !math.IsNaN(y[j]) {
				total += math.Abs(y[j])
			}
		}
		if total > 0 {
			scale[j] = 100 / total
		}
	}

	pos := make([]float64, n)
	neg := make([]float64, n)
	res := make([]chart.Band, len(ys))
	for i, y := range ys {
		high := make([]float64, n)
		low := make([]float64, n)
		for j, v := range y {
			if math.IsNaN(v) {
				high[j], low[j] = math.NaN(), math.NaN()
				continue
			}
			v *= scale[j]
			base := &pos[j]
			if v < 0 {
				base = &neg[j]
			}
			low[j] = *base
			*base += v
			high[j] = *base
		}
		res[i] = chart.Band{X: x, High: high, Low: low}
	}
	return res, nil
}

// Columns converts one band into the rectangles of a stacking column
// series.  Each column is centred on its X value and has the given width.
// Positions where the band is empty are left out.
func Columns(b chart.Band, width float64) ([]chart.Rect, error) {
	n := len(b.X)
	if err := checkLength("High", len(b.High), n); err != nil {
		return nil, err
	}
	if err := checkLength("Low", len(b.Low), n); err != nil {
		return nil, err
	}
	res := make([]chart.Rect, 0, n)
	for i, x := range b.X {
		if math.IsNaN(b.High[i]) || math.IsNaN(b.Low[i]) {
			continue
		}
		res = append(res, chart.Rect{
			Left:   x - width/2,
			Right:  x + width/2,
			Top:    b.High[i],
			Bottom: b.Low[i],
		})
	}
	return res, nil
}
