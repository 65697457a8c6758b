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

package chart

import (
	"math"

	"seehuhn.de/go/chart/bezier"
	"seehuhn.de/go/chart/interval"
)

// accumulate returns the range of the n values at(0), ..., at(n-1).
//
// The maximum is the plain running maximum: if the first value is NaN, the
// upper end of the range is NaN.  The minimum skips NaN values and
// defaults to 0 if all values are NaN.
func accumulate(n int, at func(int) float64) interval.Range {
	if n == 0 {
		return interval.Empty
	}

	lo, hi := at(0), at(0)
	for i := 1; i < n; i++ {
		v := at(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if math.IsNaN(lo) {
		lo = 0
		found := false
		for i := range n {
			v := at(i)
			if math.IsNaN(v) {
				continue
			}
			if !found || v < lo {
				lo = v
				found = true
			}
		}
	}

	return interval.Range{Start: lo, End: hi}
}

// Ranges returns the data-space extent of a segment of kind k with values v.
// A nil cfg selects [DefaultConfig].
func Ranges(k Kind, v Values, cfg *SeriesConfig) (x, y interval.Range) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	checkValues(k, v)

	switch v := v.(type) {
	case Points:
		x = accumulate(len(v), func(i int) float64 { return v[i].X })
		y = accumulate(len(v), func(i int) float64 { return v[i].Y })

	case SplinePoints:
		pts := v.Points
		x = accumulate(len(pts), func(i int) float64 { return pts[i].X })
		y = accumulate(len(pts), func(i int) float64 { return pts[i].Y })
		y = interval.Union(y, splineRange(pts, v.Controls))

	case Band:
		x, y = bandRanges(v)

	case SplineBand:
		x, y = bandRanges(v.Band)
		y = interval.Union(y, splineRange(zipPoints(v.X, v.High), v.HighControls))
		y = interval.Union(y, splineRange(zipPoints(v.X, v.Low), v.LowControls))

	case Rect:
		x = interval.New(v.Left, v.Right)
		y = interval.New(v.Top, v.Bottom)

	case Point:
		x, y = interval.Single(v.X), interval.Single(v.Y)

	case Bubble:
		x, y = interval.Single(v.X), interval.Single(v.Y)

	case BoxWhisker:
		x = interval.New(v.Left, v.Right)
		y = interval.Empty.
			Add(v.Minimum).
			Add(v.LowerQuartile).
			Add(v.Median).
			Add(v.UpperQuartile).
			Add(v.Maximum)
		if cfg.ShowMean {
			y = y.Add(v.Average)
		}
		for _, o := range v.Outliers {
			y = y.Add(o)
		}

	case ErrorBar:
		x, y = errorBarRanges(v, &cfg.ErrorBar)

	case FunnelSlice:
		x, y = interval.Empty, interval.Empty

	case HiLo:
		x = interval.Single(v.X)
		y = interval.New(v.High, v.Low)

	case OHLC:
		a := v.aligned()
		x = interval.New(a.Left, a.Right)
		y = interval.New(a.Low, a.High)
	}
	return x, y
}

func bandRanges(b Band) (x, y interval.Range) {
	x = accumulate(len(b.X), func(i int) float64 { return b.X[i] })
	hi := accumulate(len(b.High), func(i int) float64 { return b.High[i] })
	lo := accumulate(len(b.Low), func(i int) float64 { return b.Low[i] })
	return x, interval.Union(hi, lo)
}

// splineRange returns the union of the Bezier ranges of all pieces whose
// end points are both present.
func splineRange(pts []Point, ctrl []ControlPair) interval.Range {
	r := interval.Empty
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if math.IsNaN(a.Y) || math.IsNaN(b.Y) {
			continue
		}
		c := ctrl[i]
		r = interval.Union(r, bezier.Range(a.Y, c.C1.Y, c.C2.Y, b.Y))
	}
	return r
}

func zipPoints(xs, ys []float64) []Point {
	res := make([]Point, len(xs))
	for i := range xs {
		res[i] = Point{X: xs[i], Y: ys[i]}
	}
	return res
}

func errorBarRanges(e ErrorBar, cfg *ErrorBarConfig) (x, y interval.Range) {
	x = interval.Single(e.X)
	y = interval.Single(e.Y)
	if cfg.Mode.horizontal() {
		if cfg.Direction.plus() {
			x = x.Add(e.XHigh)
		}
		if cfg.Direction.minus() {
			x = x.Add(e.XLow)
		}
	}
	if cfg.Mode.vertical() {
		if cfg.Direction.plus() {
			y = y.Add(e.YHigh)
		}
		if cfg.Direction.minus() {
			y = y.Add(e.YLow)
		}
	}
	return x, y
}

// aligned returns a copy of o where High is at least the larger of Open
// and Close, and Low is at most the smaller one.
func (o OHLC) aligned() OHLC {
	for _, v := range []float64{o.Open, o.Close} {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(o.High) || v > o.High {
			o.High = v
		}
		if math.IsNaN(o.Low) || v < o.Low {
			o.Low = v
		}
	}
	return o
}
