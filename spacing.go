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

// Inset applies segment spacing to the screen interval from near to far.
// It returns the start and the signed length of the remaining interval,
// which is centred within [near, far].
//
// A spacing of 0 keeps the full interval, a spacing of 1 shrinks it to a
// point.  Spacing values outside (0, 1] leave the interval unchanged.
func Inset(near, far, spacing float64) (start, length float64) {
	d := far - near
	if !(spacing > 0 && spacing <= 1) {
		return near, d
	}
	return near + d*spacing/2, d * (1 - spacing)
}

// category maps positions inside the category interval [left, right] of a
// bar-like item to the screen.
//
// In Cartesian layouts, the category interval is first converted to screen
// space and then reduced by the segment spacing.  In polar layouts,
// positions are interpolated in data space and spacing is not applied.
type category struct {
	b           *builder
	left, right float64

	start, width float64
}

// category returns the mapper for [left, right].  ref is a Y value of the
// item, used to locate the category interval on screen if the centre of the
// Y window is not finite.
func (b *builder) category(left, right, ref float64) category {
	m := category{b: b, left: left, right: right}
	if b.polar {
		return m
	}
	y := b.tr.YAxis()
	if mid := y.Data((y.Visible.Start + y.Visible.End) / 2); !math.IsNaN(mid) && !math.IsInf(mid, 0) {
		ref = mid
	}
	near, _ := b.o.split(b.at(left, ref))
	far, _ := b.o.split(b.at(right, ref))
	m.start, m.width = Inset(near, far, b.cfg.SegmentSpacing)
	return m
}

// at returns the screen position at fraction f across the category and
// at the data value v.
func (m category) at(f, v float64) vec.Vec2 {
	if m.b.polar {
		return m.b.at(m.left+f*(m.right-m.left), v)
	}
	_, sv := m.b.o.split(m.b.at(m.left, v))
	return m.b.o.join(m.start+f*m.width, sv)
}

// size returns the screen width of the category, or 0 in polar layouts.
func (m category) size() float64 {
	if m.width < 0 {
		return -m.width
	}
	return m.width
}
