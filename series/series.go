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

// Package series prepares whole data series for rendering.
//
// The geometry builders in package chart work on one segment at a time and
// take their values ready-made.  The functions in this package compute those
// values from raw data columns: spline control points, stacked bands,
// error-bar extents, box statistics, funnel and pyramid slices and
// trendlines.  Unlike the geometry builders, which never fail, these
// functions validate their input and return errors wrapping one of the
// sentinel values below.
package series

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/chart"
)

var (
	// ErrNoData is returned if a series has no usable values.
	ErrNoData = errors.New("series: no data")

	// ErrLength is returned if parallel slices have different lengths.
	ErrLength = errors.New("series: length mismatch")

	// ErrOrder is returned if X values are not strictly increasing where
	// this is required.
	ErrOrder = errors.New("series: X values not increasing")
)

func checkLength(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s has %d values, expected %d: %w", name, got, want, ErrLength)
	}
	return nil
}

// present returns the finite values of xs, in order.
func present(xs []float64) []float64 {
	res := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			res = append(res, x)
		}
	}
	return res
}

// pointRuns returns the maximal runs of consecutive non-empty points, as
// half-open index ranges.
func pointRuns(pts []chart.Point) [][2]int {
	var res [][2]int
	start := -1
	for i, p := range pts {
		empty := math.IsNaN(p.Y)
		switch {
		case !empty && start < 0:
			start = i
		case empty && start >= 0:
			res = append(res, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		res = append(res, [2]int{start, len(pts)})
	}
	return res
}
