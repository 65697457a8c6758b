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

	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/chart"
)

// ErrorBarType selects how the size of error bars is determined.
type ErrorBarType int

const (
	// Fixed error bars have the same size for every point.
	Fixed ErrorBarType = iota

	// Percentage error bars are a percentage of the point's value.
	Percentage

	// StandardDeviation error bars are a multiple of the standard deviation
	// of the series.
	StandardDeviation

	// StandardError error bars are a multiple of the standard error of the
	// mean of the series.
	StandardError

	// Custom error bars take their size from per-point slices.
	Custom
)

var errorBarTypeNames = []string{"fixed", "percentage", "standard-deviation", "standard-error", "custom"}

func (t ErrorBarType) String() string {
	if t < 0 || int(t) >= len(errorBarTypeNames) {
		return fmt.Sprintf("ErrorBarType(%d)", int(t))
	}
	return errorBarTypeNames[t]
}

// ErrorBarSpec describes the error bars of a series.
type ErrorBarSpec struct {
	Type ErrorBarType

	// Horizontal and Vertical are the size parameters for the X and Y
	// direction.  Their meaning depends on Type: an absolute size, a
	// percentage, or a multiplier for the deviation.
	Horizontal, Vertical float64

	// For Custom error bars, these give the per-point extents below and
	// above the value.  Nil slices mean zero.
	XMinus, XPlus []float64
	YMinus, YPlus []float64
}

// ErrorBars computes the error bars for the points of a series.
// Empty points give error bars with NaN extents, which the ErrorBar kind
// does not draw.
func ErrorBars(pts []chart.Point, opt ErrorBarSpec) ([]chart.ErrorBar, error) {
	if len(pts) == 0 {
		return nil, ErrNoData
	}

	var dx, dy func(i int) (minus, plus float64)
	switch opt.Type {
	case Fixed:
		dx = constant(opt.Horizontal)
		dy = constant(opt.Vertical)
	case Percentage:
		dx = func(i int) (float64, float64) {
			d := math.Abs(pts[i].X) * opt.Horizontal / 100
			return d, d
		}
		dy = func(i int) (float64, float64) {
			d := math.Abs(pts[i].Y) * opt.Vertical / 100
			return d, d
		}
	case StandardDeviation, StandardError:
		xs := make([]float64, 0, len(pts))
		ys := make([]float64, 0, len(pts))
		for _, p := range pts {
			if !isEmpty(p) {
				xs = append(xs, p.X)
				ys = append(ys, p.Y)
			}
		}
		if len(ys) == 0 {
			return nil, ErrNoData
		}
		sx, sy := deviation(xs), deviation(ys)
		if opt.Type == StandardError {
			sx = stat.StdErr(sx, float64(len(xs)))
			sy = stat.StdErr(sy, float64(len(ys)))
		}
		dx = constant(opt.Horizontal * sx)
		dy = constant(opt.Vertical * sy)
	case Custom:
		var err error
		dx, err = custom("X", len(pts), opt.XMinus, opt.XPlus)
		if err != nil {
			return nil, err
		}
		dy, err = custom("Y", len(pts), opt.YMinus, opt.YPlus)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid error bar type %d", int(opt.Type))
	}

	res := make([]chart.ErrorBar, len(pts))
	for i, p := range pts {
		if isEmpty(p) {
			nan := math.NaN()
			res[i] = chart.ErrorBar{X: p.X, Y: nan, XLow: nan, XHigh: nan, YLow: nan, YHigh: nan}
			continue
		}
		xm, xp := dx(i)
		ym, yp := dy(i)
		res[i] = chart.ErrorBar{
			X: p.X, Y: p.Y,
			XLow: p.X - xm, XHigh: p.X + xp,
			YLow: p.Y - ym, YHigh: p.Y + yp,
		}
	}
	return res, nil
}

func constant(d float64) func(int) (float64, float64) {
	return func(int) (float64, float64) { return d, d }
}

func custom(axis string, n int, minus, plus []float64) (func(int) (float64, float64), error) {
	if minus != nil {
		if err := checkLength(axis+" minus", len(minus), n); err != nil {
			return nil, err
		}
	}
	if plus != nil {
		if err := checkLength(axis+" plus", len(plus), n); err != nil {
			return nil, err
		}
	}
	return func(i int) (m, p float64) {
		if minus != nil {
			m = minus[i]
		}
		if plus != nil {
			p = plus[i]
		}
		return m, p
	}, nil
}

// deviation returns the sample standard deviation of xs, or 0 if xs has
// fewer than two elements.
func deviation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
