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

// line draws the line, stacking line and trendline kinds.
//
// Empty points break the line.  If the series shows empty points, the gap
// is instead drawn as a notch: down to the baseline after the last point
// before the gap, along the baseline, and back up at the first point after
// the gap.
func (b *builder) line(pts Points) Geometry {
	n := len(pts)
	if n == 0 {
		return b.empty()
	}
	if !b.overlaps(n, pointX(pts)) {
		return hidden
	}

	var s splitter
	prev := -1
	for first, last := range runs(0, n, validY(pts)) {
		b.bridge(&s, prev, pts[max(prev, 0)].X, pts[first].X)
		for i := first; i <= last; i++ {
			s.lineTo(b.pt(pts[i]))
		}
		prev = last
	}
	return lines(s.path())
}

// stepLine draws a line which holds each value over the step belonging to
// its point.
func (b *builder) stepLine(pts Points) Geometry {
	n := len(pts)
	if n == 0 {
		return b.empty()
	}
	x := pointX(pts)
	if !b.overlaps(n, x) {
		return hidden
	}

	var s splitter
	prev := -1
	prevR := 0.0
	for first, last := range runs(0, n, validY(pts)) {
		l, _ := stepSpan(b.cfg.Step, n, x, first)
		b.bridge(&s, prev, prevR, l)
		for i := first; i <= last; i++ {
			l, r := stepSpan(b.cfg.Step, n, x, i)
			s.lineTo(b.at(l, pts[i].Y))
			s.lineTo(b.at(r, pts[i].Y))
			prevR = r
		}
		prev = last
	}
	return lines(s.path())
}

// spline draws runs of Bezier pieces.
func (b *builder) spline(v SplinePoints) Geometry {
	pts := v.Points
	n := len(pts)
	if n == 0 {
		return b.empty()
	}
	checkControls(b.kind, n, v.Controls)
	if !b.overlaps(n, pointX(pts)) {
		return hidden
	}

	var s splitter
	prev := -1
	for first, last := range runs(0, n, validY(pts)) {
		b.bridge(&s, prev, pts[max(prev, 0)].X, pts[first].X)
		s.lineTo(b.pt(pts[first]))
		for i := first; i < last; i++ {
			c := v.Controls[i]
			s.cubeTo(b.pt(c.C1), b.pt(c.C2), b.pt(pts[i+1]))
		}
		prev = last
	}
	return lines(s.path())
}

// bridge handles the gap before a run.  prev is the last index of the
// previous run, or -1 if there is none.  The gap starts at fromX and ends at
// toX.
//
// Line kinds have no fill whose closing edge could hide a baseline notch,
// so the notch is only drawn when ShowEmptyPoints asks for empty points to
// be visible.  Otherwise the line breaks and the stroke restarts after the
// gap.
func (b *builder) bridge(s *splitter, prev int, fromX, toX float64) {
	if prev < 0 {
		return
	}
	if !b.cfg.ShowEmptyPoints {
		s.gap()
		return
	}
	base := b.baseline()
	s.lineTo(b.at(fromX, base))
	s.lineTo(b.at(toX, base))
}
