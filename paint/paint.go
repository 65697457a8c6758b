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

// Package paint draws chart geometry.
//
// The chart core only describes shapes; this package is a small reference
// consumer of those descriptions.  It can rasterise geometry into images,
// write it to PDF files, replay it on a gonum/plot canvas, and encode it as
// JSON.  All functions take screen coordinates as produced by the axis
// transformers, with the origin in the top-left corner of the page and Y
// growing downwards.
package paint

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart"
)

// Style describes how one geometry is painted.
type Style struct {
	// Fill is the colour used for the fill contours.  If Fill is nil, the
	// contours are not filled.
	Fill color.Color

	// Stroke is the colour used for the stroke path.  If Stroke is nil or
	// LineWidth is not positive, nothing is stroked.
	Stroke color.Color

	LineWidth  float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// DefaultStyle returns a style with a translucent grey fill and a black
// stroke of width 1.
func DefaultStyle() Style {
	return Style{
		Fill:       color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80},
		Stroke:     color.Black,
		LineWidth:  1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// StyleFor returns the default style for segments of kind k.  Area-like
// kinds stroke an open outline which restarts at every gap, and use round
// caps and joins so that the outline ends cleanly at the gap edges.
func StyleFor(k chart.Kind) Style {
	st := DefaultStyle()
	if k.IsAreaLike() {
		st.Cap = graphics.LineCapRound
		st.Join = graphics.LineJoinRound
	}
	return st
}

// Layer is one geometry together with its style.
type Layer struct {
	Geometry chart.Geometry
	Style    Style
}

func (l *Layer) fills() bool {
	return l.Geometry.Visible && l.Style.Fill != nil && l.Geometry.Fill != nil
}

func (l *Layer) strokes() bool {
	return l.Geometry.Visible && l.Style.Stroke != nil && l.Style.LineWidth > 0 &&
		l.Geometry.Stroke != nil
}

const (
	// defaultFlatness is the curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit converts joins to bevels when the interior angle is
	// less than approximately 11.5 degrees.
	defaultMiterLimit = 10.0
)
