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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/chart"
)

// TrendType selects the model of a trendline.
type TrendType int

const (
	// LinearTrend fits y = a + b·x.
	LinearTrend TrendType = iota

	// ExponentialTrend fits y = a·exp(b·x).  Points with y ≤ 0 are ignored.
	ExponentialTrend

	// LogarithmicTrend fits y = a + b·ln(x).  Points with x ≤ 0 are ignored.
	LogarithmicTrend

	// PowerTrend fits y = a·x^b.  Points with x ≤ 0 or y ≤ 0 are ignored.
	PowerTrend

	// PolynomialTrend fits a polynomial of degree Trend.Order by least
	// squares.
	PolynomialTrend

	// MovingAverage averages the last Trend.Period values.
	MovingAverage
)

var trendTypeNames = []string{
	"linear", "exponential", "logarithmic", "power", "polynomial", "moving-average",
}

func (t TrendType) String() string {
	if t < 0 || int(t) >= len(trendTypeNames) {
		return fmt.Sprintf("TrendType(%d)", int(t))
	}
	return trendTypeNames[t]
}

// ParseTrendType converts a trend type name into a TrendType.
func ParseTrendType(s string) (TrendType, error) {
	for i, name := range trendTypeNames {
		if name == s {
			return TrendType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trend type %q", s)
}

// Trend describes a trendline.
type Trend struct {
	Type TrendType

	// Order is the degree of a polynomial trend, between 2 and 6.
	Order int

	// Period is the window size of a moving average, at least 2.
	Period int

	// Forward and Backward extend a fitted trendline beyond the data, in
	// units of the X axis.
	Forward, Backward float64
}

// Samples is the number of points used to draw curved trendlines.
const Samples = 64

// Model is a fitted regression model.
type Model struct {
	Type TrendType

	// Coeffs are the model parameters.  For polynomial trends, Coeffs[k] is
	// the coefficient of x^k; for the other types Coeffs holds a and b as
	// in the documentation of the type.
	Coeffs []float64
}

// Eval evaluates the model at x.
func (m *Model) Eval(x float64) float64 {
	c := m.Coeffs
	switch m.Type {
	case LinearTrend:
		return c[0] + c[1]*x
	case ExponentialTrend:
		return c[0] * math.Exp(c[1]*x)
	case LogarithmicTrend:
		return c[0] + c[1]*math.Log(x)
	case PowerTrend:
		return c[0] * math.Pow(x, c[1])
	case PolynomialTrend:
		y := 0.0
		for k := len(c) - 1; k >= 0; k-- {
			y = y*x + c[k]
		}
		return y
	}
	return math.NaN()
}

// Fit fits the regression model of t to the non-empty points of pts.
// Fit fails for moving averages, which have no model.
func (t Trend) Fit(pts []chart.Point) (*Model, error) {
	var xs, ys []float64
	for _, p := range pts {
		if isEmpty(p) || math.IsNaN(p.X) {
			continue
		}
		x, y := p.X, p.Y
		switch t.Type {
		case ExponentialTrend:
			if y <= 0 {
				continue
			}
			y = math.Log(y)
		case LogarithmicTrend:
			if x <= 0 {
				continue
			}
			x = math.Log(x)
		case PowerTrend:
			if x <= 0 || y <= 0 {
				continue
			}
			x, y = math.Log(x), math.Log(y)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	switch t.Type {
	case LinearTrend, ExponentialTrend, LogarithmicTrend, PowerTrend:
		if len(xs) < 2 {
			return nil, ErrNoData
		}
		a, b := stat.LinearRegression(xs, ys, nil, false)
		if t.Type == ExponentialTrend || t.Type == PowerTrend {
			a = math.Exp(a)
		}
		return &Model{Type: t.Type, Coeffs: []float64{a, b}}, nil
	case PolynomialTrend:
		return polyFit(xs, ys, t.Order)
	case MovingAverage:
		return nil, fmt.Errorf("moving averages have no regression model")
	default:
		return nil, fmt.Errorf("invalid trend type %d", int(t.Type))
	}
}

func polyFit(xs, ys []float64, order int) (*Model, error) {
	if order < 2 || order > 6 {
		return nil, fmt.Errorf("polynomial order %d out of range [2, 6]", order)
	}
	if len(xs) <= order {
		return nil, fmt.Errorf("%d points for a polynomial of order %d: %w",
			len(xs), order, ErrNoData)
	}

	// least squares solution of the Vandermonde system
	a := mat.NewDense(len(xs), order+1, nil)
	for i, x := range xs {
		p := 1.0
		for k := 0; k <= order; k++ {
			a.Set(i, k, p)
			p *= x
		}
	}
	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(len(ys), ys)); err != nil {
		return nil, fmt.Errorf("polynomial fit: %w", err)
	}
	coeffs := make([]float64, order+1)
	for k := range coeffs {
		coeffs[k] = c.AtVec(k)
	}
	return &Model{Type: PolynomialTrend, Coeffs: coeffs}, nil
}

// Points returns the points of the trendline for pts, for use with the
// Trendline kind.
//
// Linear trends are drawn as a single straight line.  Other regression
// trends are sampled at [Samples] evenly spaced X values.  The line spans
// the X range of the data, extended by Backward and Forward.  Moving
// averages have one point per data point from the Period-th point onwards;
// windows without any values give empty points.
func (t Trend) Points(pts []chart.Point) (chart.Points, error) {
	if t.Type == MovingAverage {
		return t.movingAverage(pts)
	}

	m, err := t.Fit(pts)
	if err != nil {
		return nil, err
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if !isEmpty(p) {
			lo, hi = min(lo, p.X), max(hi, p.X)
		}
	}
	lo -= t.Backward
	hi += t.Forward
	if m.Type == LogarithmicTrend || m.Type == PowerTrend {
		lo = max(lo, math.SmallestNonzeroFloat64)
	}

	n := Samples
	if m.Type == LinearTrend {
		n = 2
	}
	res := make(chart.Points, n)
	for i := range res {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		res[i] = chart.Point{X: x, Y: m.Eval(x)}
	}
	return res, nil
}

func (t Trend) movingAverage(pts []chart.Point) (chart.Points, error) {
	if t.Period < 2 {
		return nil, fmt.Errorf("moving average period %d too small", t.Period)
	}
	if len(pts) < t.Period {
		return nil, fmt.Errorf("%d points for period %d: %w", len(pts), t.Period, ErrNoData)
	}

	res := make(chart.Points, 0, len(pts)-t.Period+1)
	for i := t.Period - 1; i < len(pts); i++ {
		var window []float64
		for _, p := range pts[i-t.Period+1 : i+1] {
			if !isEmpty(p) {
				window = append(window, p.Y)
			}
		}
		y := math.NaN()
		if len(window) > 0 {
			y = stat.Mean(window, nil)
		}
		res = append(res, chart.Point{X: pts[i].X, Y: y})
	}
	return res, nil
}
