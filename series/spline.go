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

	"seehuhn.de/go/chart"
)

// SplineType selects how the control points of a spline are chosen.
type SplineType int

const (
	// Natural is a cubic spline with zero curvature at both ends.
	Natural SplineType = iota

	// Monotonic is a piecewise cubic Hermite spline which never overshoots
	// the data (Fritsch-Butland slopes).
	Monotonic

	// Cardinal is a Catmull-Rom spline.  It is computed in the plane and
	// does not require increasing X values.
	Cardinal

	// Clamped is a cubic spline whose end slopes equal the slopes of the
	// first and last interval.
	Clamped
)

var splineTypeNames = []string{"natural", "monotonic", "cardinal", "clamped"}

func (t SplineType) String() string {
	if t < 0 || int(t) >= len(splineTypeNames) {
		return fmt.Sprintf("SplineType(%d)", int(t))
	}
	return splineTypeNames[t]
}

// ParseSplineType converts a spline type name into a SplineType.
func ParseSplineType(s string) (SplineType, error) {
	for i, name := range splineTypeNames {
		if name == s {
			return SplineType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown spline type %q", s)
}

// SplineControls computes the Bezier control points for the pieces between
// consecutive points of pts.  The result has one entry per piece, so
// len(pts)-1 entries in total.
//
// Empty points split the series into independent runs.  Pieces which touch
// an empty point get the control points of a straight line.  All spline
// types except Cardinal require strictly increasing X values within a run.
func SplineControls(pts []chart.Point, typ SplineType) ([]chart.ControlPair, error) {
	if len(pts) == 0 {
		return nil, ErrNoData
	}
	res := make([]chart.ControlPair, len(pts)-1)
	for i := range res {
		res[i] = straight(pts[i], pts[i+1])
	}

	for _, r := range pointRuns(pts) {
		run := pts[r[0]:r[1]]
		if len(run) < 2 {
			continue
		}
		if typ != Cardinal {
			for i := 1; i < len(run); i++ {
				if !(run[i].X > run[i-1].X) {
					return nil, fmt.Errorf("point %d: %w", r[0]+i, ErrOrder)
				}
			}
		}

		var ctrl []chart.ControlPair
		var err error
		switch typ {
		case Natural, Clamped:
			ctrl, err = cubicControls(run, typ == Clamped)
		case Monotonic:
			ctrl = hermiteControls(run, monotoneSlopes(run))
		case Cardinal:
			ctrl = cardinalControls(run, 0.5)
		default:
			return nil, fmt.Errorf("invalid spline type %d", int(typ))
		}
		if err != nil {
			return nil, err
		}
		copy(res[r[0]:], ctrl)
	}
	return res, nil
}

// Spline returns pts together with its control points, ready for the
// Spline and SplineArea kinds.
func Spline(pts []chart.Point, typ SplineType) (chart.SplinePoints, error) {
	ctrl, err := SplineControls(pts, typ)
	if err != nil {
		return chart.SplinePoints{}, err
	}
	return chart.SplinePoints{Points: pts, Controls: ctrl}, nil
}

// SplineBand computes the control points of both boundaries of b, for the
// SplineRangeArea kind.
func SplineBand(b chart.Band, typ SplineType) (chart.SplineBand, error) {
	n := len(b.X)
	if err := checkLength("High", len(b.High), n); err != nil {
		return chart.SplineBand{}, err
	}
	if err := checkLength("Low", len(b.Low), n); err != nil {
		return chart.SplineBand{}, err
	}

	high := make([]chart.Point, n)
	low := make([]chart.Point, n)
	for i, x := range b.X {
		high[i] = chart.Point{X: x, Y: b.High[i]}
		low[i] = chart.Point{X: x, Y: b.Low[i]}
	}
	hc, err := SplineControls(high, typ)
	if err != nil {
		return chart.SplineBand{}, fmt.Errorf("high boundary: %w", err)
	}
	lc, err := SplineControls(low, typ)
	if err != nil {
		return chart.SplineBand{}, fmt.Errorf("low boundary: %w", err)
	}
	return chart.SplineBand{Band: b, HighControls: hc, LowControls: lc}, nil
}

func straight(a, b chart.Point) chart.ControlPair {
	return chart.ControlPair{
		C1: chart.Point{X: a.X + (b.X-a.X)/3, Y: a.Y + (b.Y-a.Y)/3},
		C2: chart.Point{X: b.X - (b.X-a.X)/3, Y: b.Y - (b.Y-a.Y)/3},
	}
}

// hermiteControls converts the slopes d at the points of run into Bezier
// control points.
func hermiteControls(run []chart.Point, d []float64) []chart.ControlPair {
	res := make([]chart.ControlPair, len(run)-1)
	for i := range res {
		a, b := run[i], run[i+1]
		h := (b.X - a.X) / 3
		res[i] = chart.ControlPair{
			C1: chart.Point{X: a.X + h, Y: a.Y + d[i]*h},
			C2: chart.Point{X: b.X - h, Y: b.Y - d[i+1]*h},
		}
	}
	return res
}

// cubicControls computes the control points of an interpolating cubic
// spline.  The second derivatives at the points are found by solving the
// usual tridiagonal system.
func cubicControls(run []chart.Point, clamped bool) ([]chart.ControlPair, error) {
	n := len(run)
	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := range h {
		h[i] = run[i+1].X - run[i].X
		delta[i] = (run[i+1].Y - run[i].Y) / h[i]
	}

	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 1; i < n-1; i++ {
		a.Set(i, i-1, h[i-1])
		a.Set(i, i, 2*(h[i-1]+h[i]))
		a.Set(i, i+1, h[i])
		rhs.SetVec(i, 6*(delta[i]-delta[i-1]))
	}
	if clamped {
		// end slopes equal to the chord slopes give zero right-hand sides
		a.Set(0, 0, 2*h[0])
		a.Set(0, 1, h[0])
		a.Set(n-1, n-2, h[n-2])
		a.Set(n-1, n-1, 2*h[n-2])
	} else {
		a.Set(0, 0, 1)
		a.Set(n-1, n-1, 1)
	}

	var m mat.VecDense
	if err := m.SolveVec(a, rhs); err != nil {
		return nil, fmt.Errorf("spline system: %w", err)
	}

	d := make([]float64, n)
	for i := range h {
		d[i] = delta[i] - h[i]*(2*m.AtVec(i)+m.AtVec(i+1))/6
	}
	d[n-1] = delta[n-2] + h[n-2]*(m.AtVec(n-2)+2*m.AtVec(n-1))/6
	return hermiteControls(run, d), nil
}

// monotoneSlopes returns slopes which keep a Hermite spline monotone
// between any two points.
func monotoneSlopes(run []chart.Point) []float64 {
	n := len(run)
	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := range h {
		h[i] = run[i+1].X - run[i].X
		delta[i] = (run[i+1].Y - run[i].Y) / h[i]
	}

	d := make([]float64, n)
	d[0] = delta[0]
	d[n-1] = delta[n-2]
	for i := 1; i < n-1; i++ {
		d0, d1 := delta[i-1], delta[i]
		if d0*d1 <= 0 {
			continue
		}
		h0, h1 := h[i-1], h[i]
		d[i] = 3 * (h0 + h1) / ((2*h1+h0)/d0 + (h1+2*h0)/d1)
	}
	return d
}

// cardinalControls computes the control points of a cardinal spline with
// the given tension.  The tangent at each point is parallel to the chord
// between its neighbours.
func cardinalControls(run []chart.Point, tension float64) []chart.ControlPair {
	n := len(run)
	tx := make([]float64, n)
	ty := make([]float64, n)
	for i := range run {
		prev, next := run[max(i-1, 0)], run[min(i+1, n-1)]
		scale := tension
		if i == 0 || i == n-1 {
			scale *= 2
		}
		tx[i] = scale * (next.X - prev.X)
		ty[i] = scale * (next.Y - prev.Y)
	}

	res := make([]chart.ControlPair, n-1)
	for i := range res {
		a, b := run[i], run[i+1]
		res[i] = chart.ControlPair{
			C1: chart.Point{X: a.X + tx[i]/3, Y: a.Y + ty[i]/3},
			C2: chart.Point{X: b.X - tx[i+1]/3, Y: b.Y - ty[i+1]/3},
		}
	}
	return res
}

func isEmpty(p chart.Point) bool {
	return math.IsNaN(p.Y)
}
