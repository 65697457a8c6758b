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

	"seehuhn.de/go/geom/vec"
)

// hiLo draws a line from the low to the high value.
func (b *builder) hiLo(v HiLo) Geometry {
	if math.IsNaN(v.X) || math.IsNaN(v.High) || math.IsNaN(v.Low) {
		return b.empty()
	}
	if !b.pointVisible(v.X) {
		return hidden
	}
	return lines(segment(nil, b.at(v.X, v.Low), b.at(v.X, v.High)))
}

// hiLoOpenClose draws the high-low line in the middle of the category,
// with the open tick on the left and the close tick on the right.
func (b *builder) hiLoOpenClose(v OHLC) Geometry {
	v = v.aligned()
	if !v.ok() {
		return b.empty()
	}
	if !b.pointVisible((v.Left + v.Right) / 2) {
		return hidden
	}

	c := b.category(v.Left, v.Right, v.Close)
	p := segment(nil, c.at(0.5, v.Low), c.at(0.5, v.High))
	segment(p, c.at(0, v.Open), c.at(0.5, v.Open))
	segment(p, c.at(0.5, v.Close), c.at(1, v.Close))
	return lines(p)
}

// candle draws a candlestick: a body from the open to the close value, and
// wicks from the body to the high and the low value.  The body is filled,
// the stroke covers the body and both wicks.
func (b *builder) candle(v OHLC) Geometry {
	v = v.aligned()
	if !v.ok() {
		return b.empty()
	}
	if !b.pointVisible((v.Left + v.Right) / 2) {
		return hidden
	}

	top, bottom := max(v.Open, v.Close), min(v.Open, v.Close)
	c := b.category(v.Left, v.Right, v.Close)
	body := []vec.Vec2{c.at(0, top), c.at(1, top), c.at(1, bottom), c.at(0, bottom)}

	fill := polygon(nil, body...)
	stroke := polygon(nil, body...)
	segment(stroke, c.at(0.5, v.High), c.at(0.5, top))
	segment(stroke, c.at(0.5, bottom), c.at(0.5, v.Low))
	return Geometry{Visible: true, Fill: fill, Stroke: stroke}
}

func (o OHLC) ok() bool {
	for _, v := range []float64{o.Left, o.Right, o.High, o.Low, o.Open, o.Close} {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}
