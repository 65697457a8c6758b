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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Indices into errorBarLines.
const (
	horizontalWhisker = iota
	verticalWhisker
	leftCap
	rightCap
	bottomCap
	topCap
)

// errorBarLine is one line primitive of an error bar.
type errorBarLine struct {
	A, B    vec.Vec2
	Visible bool
}

// errorBarLines computes the six line primitives of an error bar.
//
// The caps of the horizontal whisker run across the screen Y direction and
// the caps of the vertical whisker across the X direction.  In transposed
// layouts the two directions are swapped.
func (b *builder) errorBarLines(e ErrorBar) [6]errorBarLine {
	cfg := &b.cfg.ErrorBar
	plus, minus := cfg.Direction.plus(), cfg.Direction.minus()

	xLo, xHi := e.X, e.X
	if minus {
		xLo = e.XLow
	}
	if plus {
		xHi = e.XHigh
	}
	yLo, yHi := e.Y, e.Y
	if minus {
		yLo = e.YLow
	}
	if plus {
		yHi = e.YHigh
	}

	var res [6]errorBarLine
	left, right := b.at(xLo, e.Y), b.at(xHi, e.Y)
	bottom, top := b.at(e.X, yLo), b.at(e.X, yHi)

	h := cfg.Mode.horizontal() && !math.IsNaN(xLo) && !math.IsNaN(xHi)
	v := cfg.Mode.vertical() && !math.IsNaN(yLo) && !math.IsNaN(yHi)
	res[horizontalWhisker] = errorBarLine{A: left, B: right, Visible: h}
	res[verticalWhisker] = errorBarLine{A: bottom, B: top, Visible: v}

	o := b.o
	hc, vc := cfg.HorizontalCap, cfg.VerticalCap
	res[leftCap] = b.errorBarCap(left, hc.Length, !o, h && minus && hc.Visible)
	res[rightCap] = b.errorBarCap(right, hc.Length, !o, h && plus && hc.Visible)
	res[bottomCap] = b.errorBarCap(bottom, vc.Length, o, v && minus && vc.Visible)
	res[topCap] = b.errorBarCap(top, vc.Length, o, v && plus && vc.Visible)
	return res
}

// errorBarCap returns a cap of the given pixel length centred at p.  If
// across is false the cap runs along the screen X direction, otherwise
// along the screen Y direction.
func (b *builder) errorBarCap(p vec.Vec2, length float64, across orient, visible bool) errorBarLine {
	d := across.join(length/2, 0)
	return errorBarLine{A: p.Sub(d), B: p.Add(d), Visible: visible}
}

// errorBar draws up to six lines: the horizontal and the vertical whisker,
// and a cap at each end of either whisker.
func (b *builder) errorBar(e ErrorBar) Geometry {
	if math.IsNaN(e.X) || math.IsNaN(e.Y) {
		return b.empty()
	}
	if !b.pointVisible(e.X) {
		return hidden
	}

	var p *path.Data
	for _, l := range b.errorBarLines(e) {
		if l.Visible {
			p = segment(p, l.A, l.B)
		}
	}
	return lines(p)
}
