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

// Package chartcases defines named geometry scenarios.
//
// Each scenario fixes a chart kind, the values of its segments, a series
// configuration and the axes and viewport used for layout.  The scenarios
// are used by tests and by the tools in the sub-directories, which write
// them to PDF and JSON files.
package chartcases

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/axis"
	"seehuhn.de/go/chart/interval"
)

// TestCase defines a single geometry scenario.
type TestCase struct {
	Name   string              // lowercase a-z, 0-9 and _ only
	Kind   chart.Kind          // the chart kind of all segments
	Items  []chart.Values      // one segment per item
	Config *chart.SeriesConfig // nil means chart.DefaultConfig()
	Width  int                 // viewport width in pixels
	Height int                 // viewport height in pixels
	X, Y   axis.Axis           // axis state, including the visible windows

	Transposed bool

	// Polar selects a polar transformer.  Transposed is ignored in this
	// case.
	Polar bool
}

// Transformer returns the coordinate transformer for the scenario.  The
// viewport covers the whole canvas, minus a margin of 10 pixels.
func (tc *TestCase) Transformer() axis.Transformer {
	vp := rect.Rect{
		LLx: margin,
		LLy: margin,
		URx: float64(tc.Width) - margin,
		URy: float64(tc.Height) - margin,
	}
	if tc.Polar {
		return axis.NewPolar(tc.X, tc.Y, vp, 0)
	}
	return axis.NewCartesian(tc.X, tc.Y, vp, tc.Transposed)
}

// Build computes the geometry of all segments of the scenario, using the
// same calls a host application would make.
func (tc *TestCase) Build() []chart.Geometry {
	cfg := tc.Config
	if cfg == nil {
		cfg = chart.DefaultConfig()
	}
	tr := tc.Transformer()

	res := make([]chart.Geometry, len(tc.Items))
	for i, v := range tc.Items {
		s := chart.NewSegment(tc.Kind)
		s.SetData(v, cfg)
		s.Update(tr, cfg)
		res[i] = s.Geometry()
		s.Release()
	}
	return res
}

const margin = 10

// window returns an axis showing the data range [a, b].
func window(a, b float64) axis.Axis {
	return axis.Axis{Visible: interval.New(a, b)}
}

// logWindow returns a logarithmic axis showing the exponent range [a, b]
// to the given base.
func logWindow(base, a, b float64) axis.Axis {
	return axis.Axis{Visible: interval.New(a, b), Log: true, Base: base}
}

// config returns a copy of the default configuration, modified by f.
func config(f func(*chart.SeriesConfig)) *chart.SeriesConfig {
	cfg := chart.DefaultConfig()
	f(cfg)
	return cfg
}

// must panics if err is non-nil.  The scenarios are fixed data, so any
// error is a bug in this package.
func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("chartcases: %v", err))
	}
	return v
}

// items converts a slice of values into a slice of [chart.Values].
func items[T chart.Values](vs ...T) []chart.Values {
	res := make([]chart.Values, len(vs))
	for i, v := range vs {
		res[i] = v
	}
	return res
}

func pts(xy ...float64) chart.Points {
	res := make(chart.Points, len(xy)/2)
	for i := range res {
		res[i] = chart.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}
