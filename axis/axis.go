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

// Package axis describes how data coordinates are mapped to the screen.
//
// A [Transformer] is handed to the geometry builders on every update.  It
// combines the state of both axes (visible window, logarithmic scaling,
// origin) with the current viewport.  The builders never compute pixel
// coordinates themselves; all data points go through [Transformer.Transform].
package axis

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/interval"
)

// Kind identifies the coordinate system of a Transformer.
type Kind int

const (
	// Cartesian transformers map X and Y to perpendicular screen axes.
	Cartesian Kind = iota

	// Polar transformers map X to an angle and Y to a radius.
	Polar
)

func (k Kind) String() string {
	switch k {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	default:
		return "unknown"
	}
}

// Transformer maps data coordinates to screen coordinates.
//
// Transformers are borrowed for the duration of a single call and must not
// be retained by the receiver.
type Transformer interface {
	// Kind returns the coordinate system of the transformer.
	Kind() Kind

	// Transform maps the data point (x, y) to screen space.
	Transform(x, y float64) vec.Vec2

	// Viewport returns the screen rectangle the chart is drawn into.
	Viewport() rect.Rect

	// XAxis returns the state of the horizontal (category) axis.
	XAxis() Axis

	// YAxis returns the state of the vertical (value) axis.
	YAxis() Axis
}

// Usable reports whether tr can be used to compute geometry.
// This is false for a nil transformer and for empty or invalid viewports.
func Usable(tr Transformer) bool {
	if tr == nil {
		return false
	}
	vp := tr.Viewport()
	w := vp.URx - vp.LLx
	h := vp.URy - vp.LLy
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

// Axis describes the state of one chart axis.
type Axis struct {
	// Visible is the currently displayed window.  For logarithmic axes the
	// window is given in exponents, i.e. in units of log_Base(value).
	Visible interval.Range

	// Log selects logarithmic scaling.
	Log bool

	// Base is the logarithm base for logarithmic axes.
	// Values <= 0 or equal to 1 select base 10.
	Base float64

	// Origin is the value at which the perpendicular axis crosses this axis.
	// Area and step shapes are closed against the origin of the X axis.
	Origin float64

	// Minimum is the explicitly configured minimum of the axis, if any.
	Minimum *float64
}

// LogBase returns the effective logarithm base of the axis.
func (a Axis) LogBase() float64 {
	if a.Base <= 0 || a.Base == 1 || math.IsNaN(a.Base) {
		return 10
	}
	return a.Base
}

// Value converts a data value to axis units.
// For logarithmic axes this is log_Base(v), otherwise v itself.
func (a Axis) Value(v float64) float64 {
	if !a.Log {
		return v
	}
	return math.Log(v) / math.Log(a.LogBase())
}

// Data converts axis units back to a data value.
func (a Axis) Data(u float64) float64 {
	if !a.Log {
		return u
	}
	return math.Pow(a.LogBase(), u)
}

// unit maps the data value v to [0, 1] across the visible window.
func (a Axis) unit(v float64) float64 {
	d := a.Visible.End - a.Visible.Start
	if d == 0 || math.IsNaN(d) {
		return 0
	}
	return (a.Value(v) - a.Visible.Start) / d
}

// Baseline returns the data value which area and step shapes are closed
// against.
//
// The baseline is the origin of the X axis, with two exceptions.  If the Y
// axis is logarithmic and has an explicit minimum, that minimum is used.
// Otherwise, if the origin is exactly zero, it is moved to the start of the
// visible Y window whenever that start is non-negative, so that shapes end at
// the lower edge of the plot area instead of an invisible zero line.
func Baseline(tr Transformer) float64 {
	x, y := tr.XAxis(), tr.YAxis()
	if y.Log && y.Minimum != nil {
		return *y.Minimum
	}
	origin := x.Origin
	if origin != 0 {
		return origin
	}
	start := y.Data(y.Visible.Start)
	if math.IsNaN(start) || math.IsInf(start, 0) || start < 0 {
		return 0
	}
	return start
}
