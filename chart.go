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

// Package chart converts numeric data series into screen-space path
// descriptions for chart rendering.
//
// Every renderable unit of a series (one bar, one line, one box plot, ...)
// is a [Segment].  The data layer calls [Segment.SetData] whenever the data
// changes; this stores the raw values and computes the data-space ranges
// used for axis scaling.  The layout layer calls [Segment.Update] whenever
// the viewport or the axes change; this recomputes the geometry from scratch
// using the current [axis.Transformer].  The host then paints the resulting
// [Geometry].
//
// The geometry for each chart kind is computed by a pure function, reachable
// through the single entry point [Build].  Calling Build twice with the same
// arguments gives identical results.
package chart

//go:generate go run ./chartcases/export

import (
	"fmt"
)

// Point is a data point.  A NaN Y value marks an empty point.
type Point struct {
	X, Y float64
}

// ControlPair holds the two inner control points of a cubic Bezier piece
// connecting two consecutive data points.
type ControlPair struct {
	C1, C2 Point
}

// Values is the raw, kind-specific data of a segment.
// The set of implementations is closed; see the documentation of [Kind] for
// which variant each kind accepts.
type Values interface {
	isValues()
}

// Points is an ordered sequence of data points.
type Points []Point

// SplinePoints is an ordered sequence of data points together with the
// Bezier control points of the pieces between them.  Controls[i] belongs to
// the piece from Points[i] to Points[i+1].
type SplinePoints struct {
	Points   []Point
	Controls []ControlPair
}

// Band is a sequence of (X, High, Low) triples.  Stacking kinds use High as
// the top of the stack and Low as the top of the stack below.
type Band struct {
	X, High, Low []float64
}

// SplineBand is a Band whose upper and lower boundaries are splines.
type SplineBand struct {
	Band
	HighControls []ControlPair
	LowControls  []ControlPair
}

// Rect is an axis-aligned rectangle in data space, as used by column kinds.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// Bubble is a data point with a size value.
type Bubble struct {
	X, Y float64
	Size float64
}

// BoxWhisker holds the statistics of one box-and-whisker item.
// The box spans Left to Right along the X axis.
type BoxWhisker struct {
	Left, Right   float64
	Minimum       float64
	LowerQuartile float64
	Median        float64
	UpperQuartile float64
	Maximum       float64
	Average       float64
	Outliers      []float64
}

// ErrorBar holds a data point and the data-space extents of its error bars.
// XLow/XHigh bound the horizontal whisker, YLow/YHigh the vertical one.
type ErrorBar struct {
	X, Y        float64
	XLow, XHigh float64
	YLow, YHigh float64
}

// FunnelSlice is one band of a funnel or pyramid chart.
//
// Top and Bottom are fractions of the viewport height, measured from the top
// edge.  The radii are insets from the left and right edge, as fractions of
// the viewport width: 0 means full width, 0.5 means zero width.
type FunnelSlice struct {
	Top, Bottom  float64
	TopRadius    float64
	BottomRadius float64
	Exploded     bool
}

// HiLo is a vertical line from Low to High at X.
type HiLo struct {
	X, High, Low float64
}

// OHLC holds the open, high, low and close values of one period.
// Left and Right give the extent of the open/close ticks or the candle body.
type OHLC struct {
	Left, Right float64
	High, Low   float64
	Open, Close float64
}

func (Points) isValues()       {}
func (SplinePoints) isValues() {}
func (Band) isValues()         {}
func (SplineBand) isValues()   {}
func (Rect) isValues()         {}
func (Point) isValues()        {}
func (Bubble) isValues()       {}
func (BoxWhisker) isValues()   {}
func (ErrorBar) isValues()     {}
func (FunnelSlice) isValues()  {}
func (HiLo) isValues()         {}
func (OHLC) isValues()         {}

// Kind identifies the chart kind of a segment.
type Kind int

// The chart kinds.  The comment after each kind names the [Values] variant
// it accepts.
const (
	Line            Kind = iota // Points
	StepLine                    // Points
	StackingLine                // Points
	Trendline                   // Points
	Spline                      // SplinePoints
	Area                        // Points
	StepArea                    // Points
	StackingArea                // Band
	RangeArea                   // Band
	SplineArea                  // SplinePoints
	SplineRangeArea             // SplineBand
	Column                      // Rect
	StackingColumn              // Rect
	RangeColumn                 // Rect
	Scatter                     // Point
	BubbleKind                  // Bubble
	BoxAndWhisker               // BoxWhisker
	ErrorBarKind                // ErrorBar
	Funnel                      // FunnelSlice
	Pyramid                     // FunnelSlice
	HiLoKind                    // HiLo
	HiLoOpenClose               // OHLC
	Candle                      // OHLC

	numKinds
)

var kindNames = [numKinds]string{
	Line:            "line",
	StepLine:        "step-line",
	StackingLine:    "stacking-line",
	Trendline:       "trendline",
	Spline:          "spline",
	Area:            "area",
	StepArea:        "step-area",
	StackingArea:    "stacking-area",
	RangeArea:       "range-area",
	SplineArea:      "spline-area",
	SplineRangeArea: "spline-range-area",
	Column:          "column",
	StackingColumn:  "stacking-column",
	RangeColumn:     "range-column",
	Scatter:         "scatter",
	BubbleKind:      "bubble",
	BoxAndWhisker:   "box-and-whisker",
	ErrorBarKind:    "error-bar",
	Funnel:          "funnel",
	Pyramid:         "pyramid",
	HiLoKind:        "hi-lo",
	HiLoOpenClose:   "hi-lo-open-close",
	Candle:          "candle",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given name, as returned by
// [Kind.String].
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown chart kind %q", name)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= numKinds {
		return nil, fmt.Errorf("invalid chart kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Kinds returns all chart kinds in order.
func Kinds() []Kind {
	res := make([]Kind, numKinds)
	for i := range res {
		res[i] = Kind(i)
	}
	return res
}

// IsAreaLike reports whether segments of kind k have a fill which is
// closed against a baseline and a separate stroke outline.
func (k Kind) IsAreaLike() bool {
	switch k {
	case Area, StepArea, StackingArea, RangeArea, SplineArea, SplineRangeArea:
		return true
	}
	return false
}

// contractViolation reports a programming error at the call site.
func contractViolation(k Kind, v Values) {
	panic(fmt.Sprintf("chart: %s segment cannot use values of type %T", k, v))
}

// as returns v as the variant T, or panics if kind k cannot use v.
func as[T Values](k Kind, v Values) T {
	t, ok := v.(T)
	if !ok {
		contractViolation(k, v)
	}
	return t
}

// checkValues panics if v is not the variant used by kind k.
func checkValues(k Kind, v Values) {
	switch k {
	case Line, StepLine, StackingLine, Trendline, Area, StepArea:
		as[Points](k, v)
	case Spline, SplineArea:
		as[SplinePoints](k, v)
	case StackingArea, RangeArea:
		as[Band](k, v)
	case SplineRangeArea:
		as[SplineBand](k, v)
	case Column, StackingColumn, RangeColumn:
		as[Rect](k, v)
	case Scatter:
		as[Point](k, v)
	case BubbleKind:
		as[Bubble](k, v)
	case BoxAndWhisker:
		as[BoxWhisker](k, v)
	case ErrorBarKind:
		as[ErrorBar](k, v)
	case Funnel, Pyramid:
		as[FunnelSlice](k, v)
	case HiLoKind:
		as[HiLo](k, v)
	case HiLoOpenClose, Candle:
		as[OHLC](k, v)
	default:
		panic(fmt.Sprintf("chart: invalid kind %d", int(k)))
	}
}
