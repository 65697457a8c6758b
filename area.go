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
)

// area draws the area kind.
//
// The fill is a single contour which starts on the baseline, follows the
// data, and returns to the baseline.  Empty points are drawn as notches
// down to the baseline.  If the series is not closed, the stroke follows
// only the data and restarts after each gap.
func (b *builder) area(pts Points) Geometry {
	n := len(pts)
	if n == 0 {
		return b.empty()
	}
	first, last, ok := b.span(n, pointX(pts))
	if !ok {
		return hidden
	}

	base := b.baseline()
	var c contour
	var s splitter
	prev := -1
	for lo, hi := range runs(first, last+1, validY(pts)) {
		if prev >= 0 {
			c.lineTo(b.at(pts[prev].X, base))
		}
		c.lineTo(b.at(pts[lo].X, base))
		s.gap()
		for i := lo; i <= hi; i++ {
			p := b.pt(pts[i])
			c.lineTo(p)
			s.lineTo(p)
		}
		prev = hi
	}
	if prev < 0 {
		return b.empty()
	}
	c.lineTo(b.at(pts[prev].X, base))

	return b.areaGeometry(c.close(), s.path())
}

// stepArea draws the step area kind.  Each point owns a horizontal step,
// see [StepMode].  A step is drawn even if the neighbouring point is empty,
// so that an isolated point between two empty points becomes a rectangle
// standing on the baseline.
func (b *builder) stepArea(pts Points) Geometry {
	n := len(pts)
	if n == 0 {
		return b.empty()
	}
	x := pointX(pts)
	first, last, ok := b.span(n, x)
	if !ok {
		return hidden
	}

	base := b.baseline()
	var c contour
	var s splitter
	prev := -1
	prevR := 0.0
	for lo, hi := range runs(first, last+1, validY(pts)) {
		if prev >= 0 {
			c.lineTo(b.at(prevR, base))
		}
		l, _ := stepSpan(b.cfg.Step, n, x, lo)
		c.lineTo(b.at(l, base))
		s.gap()
		for i := lo; i <= hi; i++ {
			l, r := stepSpan(b.cfg.Step, n, x, i)
			p, q := b.at(l, pts[i].Y), b.at(r, pts[i].Y)
			c.lineTo(p)
			c.lineTo(q)
			s.lineTo(p)
			s.lineTo(q)
			prevR = r
		}
		prev = hi
	}
	if prev < 0 {
		return b.empty()
	}
	c.lineTo(b.at(prevR, base))

	return b.areaGeometry(c.close(), s.path())
}

// splineArea draws the spline area kind.  This works like [builder.area],
// with Bezier pieces between the points of each run.
func (b *builder) splineArea(v SplinePoints) Geometry {
	pts := v.Points
	n := len(pts)
	if n == 0 {
		return b.empty()
	}
	checkControls(b.kind, n, v.Controls)
	first, last, ok := b.span(n, pointX(pts))
	if !ok {
		return hidden
	}

	base := b.baseline()
	var c contour
	var s splitter
	prev := -1
	for lo, hi := range runs(first, last+1, validY(pts)) {
		if prev >= 0 {
			c.lineTo(b.at(pts[prev].X, base))
		}
		c.lineTo(b.at(pts[lo].X, base))
		s.gap()
		p := b.pt(pts[lo])
		c.lineTo(p)
		s.lineTo(p)
		for i := lo; i < hi; i++ {
			ctrl := v.Controls[i]
			c1, c2, q := b.pt(ctrl.C1), b.pt(ctrl.C2), b.pt(pts[i+1])
			c.cubeTo(c1, c2, q)
			s.cubeTo(c1, c2, q)
		}
		prev = hi
	}
	if prev < 0 {
		return b.empty()
	}
	c.lineTo(b.at(pts[prev].X, base))

	return b.areaGeometry(c.close(), s.path())
}

// bandArea draws the stacking area and range area kinds.  Every run of
// indices where both High and Low are present becomes one closed polygon.
// Open stacking areas stroke only the top of the band, open range areas
// stroke both boundaries.
func (b *builder) bandArea(v Band) Geometry {
	n := len(v.X)
	if n == 0 {
		return b.empty()
	}
	checkBand(b.kind, v)
	first, last, ok := b.span(n, func(i int) float64 { return v.X[i] })
	if !ok {
		return hidden
	}

	var c contour
	var s splitter
	for lo, hi := range runs(first, last+1, v.valid) {
		for i := lo; i <= hi; i++ {
			c.lineTo(b.at(v.X[i], v.High[i]))
		}
		for i := hi; i >= lo; i-- {
			c.lineTo(b.at(v.X[i], v.Low[i]))
		}
		c.close()

		s.gap()
		for i := lo; i <= hi; i++ {
			s.lineTo(b.at(v.X[i], v.High[i]))
		}
		if b.kind == RangeArea {
			s.gap()
			for i := lo; i <= hi; i++ {
				s.lineTo(b.at(v.X[i], v.Low[i]))
			}
		}
	}
	if c.d == nil {
		return b.empty()
	}
	return b.areaGeometry(c.d, s.path())
}

// splineBand draws the spline range area kind.
func (b *builder) splineBand(v SplineBand) Geometry {
	n := len(v.X)
	if n == 0 {
		return b.empty()
	}
	checkBand(b.kind, v.Band)
	checkControls(b.kind, n, v.HighControls)
	checkControls(b.kind, n, v.LowControls)
	first, last, ok := b.span(n, func(i int) float64 { return v.X[i] })
	if !ok {
		return hidden
	}

	high := func(i int) Point { return Point{X: v.X[i], Y: v.High[i]} }
	low := func(i int) Point { return Point{X: v.X[i], Y: v.Low[i]} }

	var c contour
	var s splitter
	for lo, hi := range runs(first, last+1, v.valid) {
		c.lineTo(b.pt(high(lo)))
		for i := lo; i < hi; i++ {
			ctrl := v.HighControls[i]
			c.cubeTo(b.pt(ctrl.C1), b.pt(ctrl.C2), b.pt(high(i+1)))
		}
		c.lineTo(b.pt(low(hi)))
		for i := hi; i > lo; i-- {
			ctrl := v.LowControls[i-1]
			c.cubeTo(b.pt(ctrl.C2), b.pt(ctrl.C1), b.pt(low(i-1)))
		}
		c.close()

		s.gap()
		s.lineTo(b.pt(high(lo)))
		for i := lo; i < hi; i++ {
			ctrl := v.HighControls[i]
			s.cubeTo(b.pt(ctrl.C1), b.pt(ctrl.C2), b.pt(high(i+1)))
		}
		s.gap()
		s.lineTo(b.pt(low(lo)))
		for i := lo; i < hi; i++ {
			ctrl := v.LowControls[i]
			s.cubeTo(b.pt(ctrl.C1), b.pt(ctrl.C2), b.pt(low(i+1)))
		}
	}
	if c.d == nil {
		return b.empty()
	}
	return b.areaGeometry(c.d, s.path())
}

// areaGeometry combines the fill contour with the stroke outline, as
// selected by the IsClosed setting.
func (b *builder) areaGeometry(fill, open *path.Data) Geometry {
	g := Geometry{Visible: true, Fill: fill, Stroke: open}
	if b.cfg.IsClosed {
		g.Stroke = fill
	}
	return g
}

func (v Band) valid(i int) bool {
	return !math.IsNaN(v.High[i]) && !math.IsNaN(v.Low[i])
}

func checkBand(k Kind, v Band) {
	if len(v.High) < len(v.X) || len(v.Low) < len(v.X) {
		panic("chart: " + k.String() + " segment has mismatched band lengths")
	}
}
