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

// Package bezier computes extents of cubic Bezier curves.
//
// Spline segments are drawn as cubic Bezier pieces.  A piece may bow above or
// below its end points, so the Y range of a spline cannot be read off the
// data points alone.  The functions here locate the interior extrema from the
// roots of the derivative.
package bezier

import (
	"honnef.co/go/curve"

	"seehuhn.de/go/chart/interval"
)

// Eval returns the value of the one-dimensional cubic Bezier with control
// values p0, p1, p2, p3 at parameter t.
func Eval(p0, p1, p2, p3, t float64) float64 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return omt2*omt*p0 + 3*omt2*t*p1 + 3*omt*t2*p2 + t2*t*p3
}

// Extrema returns the parameters t in [0, 1] at which the derivative of the
// cubic Bezier vanishes.  At most two values are returned, in increasing
// order.
func Extrema(p0, p1, p2, p3 float64) []float64 {
	// B'(t)/3 = a t² + 2b t + c
	a := -p0 + 3*p1 - 3*p2 + p3
	b := p0 - 2*p1 + p2
	c := p1 - p0

	roots, n := curve.SolveQuadratic(c, 2*b, a)
	var res []float64
	for _, t := range roots[:n] {
		if t >= 0 && t <= 1 {
			res = append(res, t)
		}
	}
	if len(res) == 2 && res[0] > res[1] {
		res[0], res[1] = res[1], res[0]
	}
	return res
}

// Range returns the range of a cubic Bezier piece in one coordinate.
//
// The result is the union of the four control values and the curve values
// at all interior extrema.  If the derivative has no real roots in [0, 1],
// the range is just the union of the control values.
func Range(p0, p1, p2, p3 float64) interval.Range {
	r := interval.Empty.Add(p0).Add(p1).Add(p2).Add(p3)
	for _, t := range Extrema(p0, p1, p2, p3) {
		r = r.Add(Eval(p0, p1, p2, p3, t))
	}
	return r
}
