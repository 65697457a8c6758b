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

package paint

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polyline is one flattened sub-path.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// flatten converts p into polylines.  Curves are replaced by line segments
// which deviate at most tol from the curve.  Repeated points are dropped, so
// a polyline with a single point marks a degenerate sub-path.
func flatten(p *path.Data, tol float64) []polyline {
	if p == nil {
		return nil
	}

	var res []polyline
	var cur *polyline
	var start vec.Vec2
	add := func(_, to vec.Vec2) {
		if n := len(cur.pts); n > 0 && cur.pts[n-1] == to {
			return
		}
		cur.pts = append(cur.pts, to)
	}
	begin := func(at vec.Vec2) {
		res = append(res, polyline{pts: []vec.Vec2{at}})
		cur = &res[len(res)-1]
		start = at
	}
	resume := func() {
		if cur == nil {
			// drawing after a close continues from the start point
			begin(start)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			begin(p.Coords[k])
			k++
		case path.CmdLineTo:
			resume()
			add(vec.Vec2{}, p.Coords[k])
			k++
		case path.CmdQuadTo:
			resume()
			flattenQuadratic(cur.pts[len(cur.pts)-1], p.Coords[k], p.Coords[k+1], tol, add)
			k += 2
		case path.CmdCubeTo:
			resume()
			flattenCubic(cur.pts[len(cur.pts)-1], p.Coords[k], p.Coords[k+1], p.Coords[k+2], tol, add)
			k += 3
		case path.CmdClose:
			if cur == nil {
				continue
			}
			if n := len(cur.pts); n > 1 && cur.pts[n-1] == start {
				cur.pts = cur.pts[:n-1]
			}
			cur.closed = true
			cur = nil
		}
	}
	return res
}

// flattenQuadratic flattens a quadratic Bezier curve and calls emit for
// each line segment.
func flattenQuadratic(p0, p1, p2 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	// error vector (P0 - 2·P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if d := e.Length(); d > tol {
		n = int(math.Ceil(math.Sqrt(d / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bezier curve and calls emit for each line
// segment.  The number of segments is chosen by Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, tol float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * tol)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}
