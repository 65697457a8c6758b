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
	"iter"
	"math"

	"seehuhn.de/go/chart/axis"
)

// runs iterates over the maximal runs of consecutive valid indices in
// [lo, hi).  Each run is reported by its first and last index.
func runs(lo, hi int, valid func(int) bool) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		start := -1
		for i := lo; i < hi; i++ {
			switch {
			case valid(i) && start < 0:
				start = i
			case !valid(i) && start >= 0:
				if !yield(start, i-1) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(start, hi-1)
		}
	}
}

// empty logs and returns the geometry of a segment without values.
func (b *builder) empty() Geometry {
	Logger().Debug("segment without values", "kind", b.kind)
	return hidden
}

// overlaps reports whether a sequence of X values should be drawn.
// Polar segments are never clipped.
func (b *builder) overlaps(n int, x func(int) float64) bool {
	if b.polar {
		return true
	}
	r := accumulate(n, x)
	return !b.culled(b.tr.XAxis().Overlaps(r.Start, r.End))
}

// span returns the index range of a sequence of X values which must be
// drawn to cover the visible window.  If ok is false, the segment is
// culled.
func (b *builder) span(n int, x func(int) float64) (first, last int, ok bool) {
	if b.polar {
		return 0, n - 1, true
	}
	first, last, ok = axis.Span(b.tr.XAxis(), n, x)
	if b.culled(ok) {
		return 0, 0, false
	}
	if !ok {
		return 0, n - 1, true
	}
	return first, last, true
}

// stepSpan returns the horizontal extent of the step which belongs to
// point i of a step kind.
func stepSpan(mode StepMode, n int, x func(int) float64, i int) (l, r float64) {
	xi := x(i)
	prev, next := xi, xi
	if i > 0 {
		prev = x(i - 1)
	}
	if i+1 < n {
		next = x(i + 1)
	}
	switch mode {
	case StepPre:
		return prev, xi
	case StepMid:
		return (prev + xi) / 2, (xi + next) / 2
	default:
		return xi, next
	}
}

func validY(pts []Point) func(int) bool {
	return func(i int) bool { return !math.IsNaN(pts[i].Y) }
}

func pointX(pts []Point) func(int) float64 {
	return func(i int) float64 { return pts[i].X }
}

func checkControls(k Kind, n int, ctrl []ControlPair) {
	if n > 1 && len(ctrl) < n-1 {
		panic("chart: " + k.String() + " segment has too few control points")
	}
}
