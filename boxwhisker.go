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

// boxParts holds the screen geometry of a box-and-whisker item.
type boxParts struct {
	box      [4]vec.Vec2    // upper quartile edge first
	whiskers [2][2]vec.Vec2 // lower, upper; from the box to the extreme
	caps     [2][2]vec.Vec2 // at the minimum and the maximum
	median   [2]vec.Vec2
	mean     [][2]vec.Vec2
	outliers []vec.Vec2
}

func (b *builder) boxParts(v BoxWhisker) boxParts {
	c := b.category(v.Left, v.Right, v.Median)
	ww := min(max(b.cfg.WhiskerWidth, 0), 1)
	l, r := 0.5-ww/2, 0.5+ww/2

	p := boxParts{
		box: [4]vec.Vec2{
			c.at(0, v.UpperQuartile),
			c.at(1, v.UpperQuartile),
			c.at(1, v.LowerQuartile),
			c.at(0, v.LowerQuartile),
		},
		whiskers: [2][2]vec.Vec2{
			{c.at(0.5, v.LowerQuartile), c.at(0.5, v.Minimum)},
			{c.at(0.5, v.UpperQuartile), c.at(0.5, v.Maximum)},
		},
		caps: [2][2]vec.Vec2{
			{c.at(l, v.Minimum), c.at(r, v.Minimum)},
			{c.at(l, v.Maximum), c.at(r, v.Maximum)},
		},
		median: [2]vec.Vec2{c.at(0, v.Median), c.at(1, v.Median)},
	}

	if b.cfg.ShowMean && !math.IsNaN(v.Average) {
		m := c.at(0.5, v.Average)
		d := c.at(1, v.Average).Sub(c.at(0, v.Average)).Length() / 8
		p.mean = [][2]vec.Vec2{
			{m.Add(vec.Vec2{X: -d, Y: -d}), m.Add(vec.Vec2{X: d, Y: d})},
			{m.Add(vec.Vec2{X: -d, Y: d}), m.Add(vec.Vec2{X: d, Y: -d})},
		}
	}
	for _, o := range v.Outliers {
		if !math.IsNaN(o) {
			p.outliers = append(p.outliers, c.at(0.5, o))
		}
	}
	return p
}

// boxWhisker draws a box plot item: the box between the quartiles, the
// median line, whiskers with caps out to the minimum and maximum, and
// optionally a cross at the mean and circles at the outliers.
func (b *builder) boxWhisker(v BoxWhisker) Geometry {
	for _, y := range []float64{v.Minimum, v.LowerQuartile, v.Median, v.UpperQuartile, v.Maximum} {
		if math.IsNaN(y) {
			return b.empty()
		}
	}
	if !b.polar && b.culled(b.tr.XAxis().Overlaps(v.Left, v.Right)) {
		return hidden
	}

	p := b.boxParts(v)

	fill := polygon(nil, p.box[:]...)
	stroke := polygon(nil, p.box[:]...)
	for _, w := range p.whiskers {
		segment(stroke, w[0], w[1])
	}
	for _, c := range p.caps {
		segment(stroke, c[0], c[1])
	}
	segment(stroke, p.median[0], p.median[1])
	for _, l := range p.mean {
		segment(stroke, l[0], l[1])
	}
	if r := b.cfg.OutlierRadius; r > 0 {
		for _, o := range p.outliers {
			ellipse(stroke, o, r, r)
		}
	}
	return Geometry{Visible: true, Fill: fill, Stroke: stroke}
}
