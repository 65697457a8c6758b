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

package axis

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// CartesianTransformer maps the visible windows of two axes onto a
// rectangular viewport.  Screen Y grows downwards, so the start of the Y
// window is at the bottom edge of the viewport.
//
// If the layout is transposed, the X axis runs vertically (bottom to top) and
// the Y axis horizontally.
type CartesianTransformer struct {
	x, y       Axis
	vp         rect.Rect
	transposed bool

	// m maps unit coordinates (u, v) in [0,1]² to the screen.
	m matrix.Matrix
}

// NewCartesian returns a transformer for the given axes and viewport.
func NewCartesian(x, y Axis, viewport rect.Rect, transposed bool) *CartesianTransformer {
	w := viewport.URx - viewport.LLx
	h := viewport.URy - viewport.LLy

	var m matrix.Matrix
	if transposed {
		// u runs upwards, v to the right
		m = matrix.Matrix{0, -h, w, 0, viewport.LLx, viewport.URy}
	} else {
		// u runs to the right, v upwards
		m = matrix.Matrix{w, 0, 0, -h, viewport.LLx, viewport.URy}
	}

	return &CartesianTransformer{
		x:          x,
		y:          y,
		vp:         viewport,
		transposed: transposed,
		m:          m,
	}
}

// Kind implements the [Transformer] interface.
func (c *CartesianTransformer) Kind() Kind {
	return Cartesian
}

// Transform implements the [Transformer] interface.
func (c *CartesianTransformer) Transform(x, y float64) vec.Vec2 {
	u := c.x.unit(x)
	v := c.y.unit(y)
	return vec.Vec2{
		X: c.m[0]*u + c.m[2]*v + c.m[4],
		Y: c.m[1]*u + c.m[3]*v + c.m[5],
	}
}

// Viewport implements the [Transformer] interface.
func (c *CartesianTransformer) Viewport() rect.Rect {
	if c == nil {
		return rect.Rect{}
	}
	return c.vp
}

// XAxis implements the [Transformer] interface.
func (c *CartesianTransformer) XAxis() Axis {
	return c.x
}

// YAxis implements the [Transformer] interface.
func (c *CartesianTransformer) YAxis() Axis {
	return c.y
}

// Transposed reports whether the X axis runs vertically.
func (c *CartesianTransformer) Transposed() bool {
	return c.transposed
}

// PolarTransformer maps X to an angle and Y to the distance from the
// centre of the viewport.  The full visible X window covers one turn,
// clockwise from StartAngle.
type PolarTransformer struct {
	x, y   Axis
	vp     rect.Rect
	start  float64 // radians, measured clockwise from 12 o'clock
	center vec.Vec2
	radius float64
}

// NewPolar returns a polar transformer.  The start angle is given in degrees,
// measured clockwise from the top of the viewport.
func NewPolar(x, y Axis, viewport rect.Rect, startAngle float64) *PolarTransformer {
	w := viewport.URx - viewport.LLx
	h := viewport.URy - viewport.LLy
	return &PolarTransformer{
		x:      x,
		y:      y,
		vp:     viewport,
		start:  startAngle * math.Pi / 180,
		center: vec.Vec2{X: viewport.LLx + w/2, Y: viewport.LLy + h/2},
		radius: min(w, h) / 2,
	}
}

// Kind implements the [Transformer] interface.
func (p *PolarTransformer) Kind() Kind {
	return Polar
}

// Transform implements the [Transformer] interface.
func (p *PolarTransformer) Transform(x, y float64) vec.Vec2 {
	theta := p.start + 2*math.Pi*p.x.unit(x)
	r := p.radius * p.y.unit(y)
	return vec.Vec2{
		X: p.center.X + r*math.Sin(theta),
		Y: p.center.Y - r*math.Cos(theta),
	}
}

// Viewport implements the [Transformer] interface.
func (p *PolarTransformer) Viewport() rect.Rect {
	if p == nil {
		return rect.Rect{}
	}
	return p.vp
}

// XAxis implements the [Transformer] interface.
func (p *PolarTransformer) XAxis() Axis {
	return p.x
}

// YAxis implements the [Transformer] interface.
func (p *PolarTransformer) YAxis() Axis {
	return p.y
}
