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

// PyramidMode selects how the values of a pyramid chart determine the size
// of the slices.
type PyramidMode int

const (
	// Linear makes the height of each slice proportional to its value.
	Linear PyramidMode = iota

	// Surface makes the area of each slice proportional to its value.
	Surface
)

func (m PyramidMode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Surface:
		return "surface"
	default:
		return fmt.Sprintf("PyramidMode(%d)", int(m))
	}
}

// Funnel lays out the slices of a funnel chart, from top to bottom.
//
// In [chart.ValueIsHeight] mode the funnel narrows linearly from the full
// width at the top to a point at the bottom, and the height of each slice is
// proportional to its value.  In [chart.ValueIsWidth] mode all slices have
// the same height and the width at the top of each slice is proportional to
// its value.  A fraction gapRatio of the height is left empty between the
// slices.  NaN and negative values count as zero.
func Funnel(values []float64, mode chart.FunnelMode, gapRatio float64) ([]chart.FunnelSlice, error) {
	vs, total, err := sliceValues(values)
	if err != nil {
		return nil, err
	}

	n := len(vs)
	res := make([]chart.FunnelSlice, n)
	switch mode {
	case chart.ValueIsHeight:
		for i, y := range sliceHeights(vs, total, gapRatio) {
			res[i] = chart.FunnelSlice{
				Top:          y[0],
				Bottom:       y[1],
				TopRadius:    y[0] / 2,
				BottomRadius: y[1] / 2,
			}
		}
	case chart.ValueIsWidth:
		largest := 0.0
		for _, v := range vs {
			largest = max(largest, v)
		}
		gap, h := gaps(n, gapRatio)
		radius := func(i int) float64 {
			return 0.5 * (1 - vs[min(i, n-1)]/largest)
		}
		for i := range vs {
			top := float64(i) * (h + gap)
			res[i] = chart.FunnelSlice{
				Top:          top,
				Bottom:       top + h,
				TopRadius:    radius(i),
				BottomRadius: radius(i + 1),
			}
		}
	default:
		return nil, fmt.Errorf("invalid funnel mode %d", int(mode))
	}
	return res, nil
}

// Pyramid lays out the slices of a pyramid chart, from the apex at the top
// to the base at the bottom.  NaN and negative values count as zero.
func Pyramid(values []float64, mode PyramidMode, gapRatio float64) ([]chart.FunnelSlice, error) {
	vs, total, err := sliceValues(values)
	if err != nil {
		return nil, err
	}

	var heights [][2]float64
	switch mode {
	case Linear:
		heights = sliceHeights(vs, total, gapRatio)
	case Surface:
		// The area above height y of a triangle with its apex at y = 0 is
		// proportional to y².
		gap, _ := gaps(len(vs), gapRatio)
		avail := 1 - gap*float64(len(vs)-1)
		cum := 0.0
		offset := 0.0
		for _, v := range vs {
			top := math.Sqrt(cum/total) * avail
			cum += v
			bottom := math.Sqrt(cum/total) * avail
			heights = append(heights, [2]float64{top + offset, bottom + offset})
			offset += gap
		}
	default:
		return nil, fmt.Errorf("invalid pyramid mode %d", int(mode))
	}

	res := make([]chart.FunnelSlice, len(heights))
	for i, y := range heights {
		res[i] = chart.FunnelSlice{
			Top:          y[0],
			Bottom:       y[1],
			TopRadius:    0.5 * (1 - y[0]),
			BottomRadius: 0.5 * (1 - y[1]),
		}
	}
	return res, nil
}

func sliceValues(values []float64) (vs []float64, total float64, err error) {
	vs = make([]float64, len(values))
	for i, v := range values {
		if v > 0 && !math.IsInf(v, 1) {
			vs[i] = v
			total += v
		}
	}
	if total == 0 {
		return nil, 0, ErrNoData
	}
	return vs, total, nil
}

// gaps returns the size of the gap between slices and the height of one
// slice of equal-height layouts.
func gaps(n int, gapRatio float64) (gap, h float64) {
	gapRatio = min(max(gapRatio, 0), 1)
	if n > 1 {
		gap = gapRatio / float64(n-1)
	}
	h = (1 - gapRatio) / float64(n)
	if n == 1 {
		h = 1
	}
	return gap, h
}

// sliceHeights divides the unit height into slices proportional to vs.
func sliceHeights(vs []float64, total, gapRatio float64) [][2]float64 {
	gap, _ := gaps(len(vs), gapRatio)
	avail := 1 - gap*float64(len(vs)-1)
	res := make([][2]float64, len(vs))
	y := 0.0
	for i, v := range vs {
		h := v / total * avail
		res[i] = [2]float64{y, y + h}
		y += h + gap
	}
	return res
}
