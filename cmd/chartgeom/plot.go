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

package main

import (
	"fmt"
	"math"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/axis"
	"seehuhn.de/go/chart/interval"
	"seehuhn.de/go/chart/series"
)

// makeValues converts the columns of t into the segment values of the
// given chart kind.
func makeValues(kind chart.Kind, t *Table, cfg *plotConfig) ([]chart.Values, error) {
	var res []chart.Values
	add := func(v chart.Values) { res = append(res, v) }

	switch kind {
	case chart.Line, chart.StepLine, chart.Area, chart.StepArea:
		for j := range t.Y {
			add(points(t.X, t.Y[j]))
		}

	case chart.Spline, chart.SplineArea:
		for j := range t.Y {
			sp, err := series.Spline(points(t.X, t.Y[j]), cfg.Spline)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", t.Names[j], err)
			}
			add(sp)
		}

	case chart.Trendline:
		tr := series.Trend{
			Type:     cfg.Trend.Type,
			Order:    cfg.Trend.Order,
			Period:   cfg.Trend.Period,
			Forward:  cfg.Trend.Forward,
			Backward: cfg.Trend.Backward,
		}
		for j := range t.Y {
			p, err := tr.Points(points(t.X, t.Y[j]))
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", t.Names[j], err)
			}
			add(p)
		}

	case chart.StackingLine, chart.StackingArea, chart.StackingColumn:
		stack := series.Stack
		if cfg.Percent {
			stack = series.Stack100
		}
		bands, err := stack(t.X, t.Y...)
		if err != nil {
			return nil, err
		}
		for _, b := range bands {
			switch kind {
			case chart.StackingLine:
				add(points(b.X, b.High))
			case chart.StackingArea:
				add(b)
			default:
				rects, err := series.Columns(b, cfg.BarWidth)
				if err != nil {
					return nil, err
				}
				for _, r := range rects {
					add(r)
				}
			}
		}

	case chart.RangeArea, chart.SplineRangeArea, chart.RangeColumn:
		if err := needColumns(kind, t, 2); err != nil {
			return nil, err
		}
		b := chart.Band{X: t.X, High: t.Y[0], Low: t.Y[1]}
		switch kind {
		case chart.RangeArea:
			add(b)
		case chart.SplineRangeArea:
			sb, err := series.SplineBand(b, cfg.Spline)
			if err != nil {
				return nil, err
			}
			add(sb)
		default:
			for i, x := range t.X {
				add(chart.Rect{
					Left:   x - cfg.BarWidth/2,
					Right:  x + cfg.BarWidth/2,
					Top:    b.High[i],
					Bottom: b.Low[i],
				})
			}
		}

	case chart.Column:
		// The columns of all series share the bar width side by side.
		w := cfg.BarWidth / float64(len(t.Y))
		for j := range t.Y {
			for i, x := range t.X {
				left := x - cfg.BarWidth/2 + float64(j)*w
				add(chart.Rect{Left: left, Right: left + w, Top: t.Y[j][i], Bottom: 0})
			}
		}

	case chart.Scatter:
		for j := range t.Y {
			for _, p := range points(t.X, t.Y[j]) {
				add(p)
			}
		}

	case chart.BubbleKind:
		if err := needColumns(kind, t, 2); err != nil {
			return nil, err
		}
		if cfg.Series.Bubble.MaxSize <= 0 {
			cfg.Series.Bubble.MaxSize = maxFinite(t.Y[1])
		}
		for i, x := range t.X {
			add(chart.Bubble{X: x, Y: t.Y[0][i], Size: t.Y[1][i]})
		}

	case chart.BoxAndWhisker:
		// One box per column, at X positions 1, 2, ...
		for j := range t.Y {
			b, err := series.BoxStats(t.Y[j], cfg.Quartiles)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", t.Names[j], err)
			}
			b.Left = float64(j+1) - cfg.BarWidth/2
			b.Right = float64(j+1) + cfg.BarWidth/2
			add(b)
		}

	case chart.ErrorBarKind:
		spec := series.ErrorBarSpec{
			Type:       cfg.ErrorBars.Type,
			Horizontal: cfg.ErrorBars.Horizontal,
			Vertical:   cfg.ErrorBars.Vertical,
		}
		for j := range t.Y {
			bars, err := series.ErrorBars(points(t.X, t.Y[j]), spec)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", t.Names[j], err)
			}
			for _, b := range bars {
				add(b)
			}
		}

	case chart.Funnel, chart.Pyramid:
		var (
			fs  []chart.FunnelSlice
			err error
		)
		if kind == chart.Funnel {
			fs, err = series.Funnel(t.Y[0], cfg.Series.Funnel.Mode, cfg.GapRatio)
		} else {
			fs, err = series.Pyramid(t.Y[0], cfg.Pyramid, cfg.GapRatio)
		}
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", t.Names[0], err)
		}
		for _, s := range fs {
			add(s)
		}

	case chart.HiLoKind:
		if err := needColumns(kind, t, 2); err != nil {
			return nil, err
		}
		for i, x := range t.X {
			add(chart.HiLo{X: x, High: t.Y[0][i], Low: t.Y[1][i]})
		}

	case chart.HiLoOpenClose, chart.Candle:
		if err := needColumns(kind, t, 4); err != nil {
			return nil, err
		}
		for i, x := range t.X {
			add(chart.OHLC{
				Left:  x - cfg.BarWidth/2,
				Right: x + cfg.BarWidth/2,
				Open:  t.Y[0][i],
				High:  t.Y[1][i],
				Low:   t.Y[2][i],
				Close: t.Y[3][i],
			})
		}

	default:
		return nil, fmt.Errorf("unsupported chart kind %s", kind)
	}
	return res, nil
}

func needColumns(kind chart.Kind, t *Table, n int) error {
	if len(t.Y) < n {
		return fmt.Errorf("%s chart needs %d data columns, sheet %q has %d",
			kind, n, t.Sheet, len(t.Y))
	}
	return nil
}

func points(x, y []float64) chart.Points {
	res := make(chart.Points, len(x))
	for i := range x {
		res[i] = chart.Point{X: x[i], Y: y[i]}
	}
	return res
}

func maxFinite(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			m = max(m, x)
		}
	}
	return m
}

// fitAxis returns an axis whose visible window covers r, with a small
// margin.  For logarithmic axes the window is widened to whole powers of
// the base.
func fitAxis(r interval.Range, log bool) (axis.Axis, error) {
	a := axis.Axis{Log: log}
	if r.IsEmpty() {
		r = interval.New(0, 1)
	}

	if log {
		if !(r.End > 0) {
			return a, fmt.Errorf("logarithmic axis needs positive values, got %s", r)
		}
		lo := r.Start
		if !(lo > 0) {
			lo = r.End / 1000
		}
		start := math.Floor(a.Value(lo))
		end := math.Ceil(a.Value(r.End))
		if end == start {
			end++
		}
		a.Visible = interval.New(start, end)
		return a, nil
	}

	pad := 0.05 * r.Delta()
	if pad == 0 {
		pad = 0.5
	}
	start := r.Start - pad
	if r.Start >= 0 && start < 0 {
		start = 0
	}
	a.Visible = interval.New(start, r.End+pad)
	return a, nil
}

// layout computes the geometry of all segments, with axes fitted to the
// data.
func layout(kind chart.Kind, values []chart.Values, cfg *chart.SeriesConfig, opt layoutOptions) ([]chart.Geometry, error) {
	segs := make([]*chart.Segment, len(values))
	xr, yr := interval.Empty, interval.Empty
	for i, v := range values {
		s := chart.NewSegment(kind)
		s.SetData(v, cfg)
		xr = interval.Union(xr, s.XRange())
		yr = interval.Union(yr, s.YRange())
		segs[i] = s
	}
	chart.Logger().Debug("data ranges", "x", xr, "y", yr, "segments", len(segs))

	x, err := fitAxis(xr, opt.LogX)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := fitAxis(yr, opt.LogY)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	tr := axis.NewCartesian(x, y, opt.viewport(), opt.Transposed)

	res := make([]chart.Geometry, len(segs))
	visible := 0
	for i, s := range segs {
		s.Update(tr, cfg)
		res[i] = s.Geometry()
		if res[i].Visible {
			visible++
		}
	}
	chart.Logger().Debug("layout done", "visible", visible, "hidden", len(res)-visible)
	return res, nil
}
