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

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/axis"
	"seehuhn.de/go/chart/interval"
)

var nan = math.NaN()

// approx compares floating point values up to rounding errors.
var approx = cmp.Comparer(func(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a), math.Abs(b))
})

// subpath is a simplified view of one sub-path, listing the end points of
// all path elements.
type subpath struct {
	Pts    []vec.Vec2
	Closed bool
}

// split converts p into a list of sub-paths.
func split(p *path.Data) []subpath {
	if p == nil {
		return nil
	}
	var res []subpath
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			res = append(res, subpath{Pts: []vec.Vec2{p.Coords[k]}})
			k++
		case path.CmdLineTo:
			cur := &res[len(res)-1]
			cur.Pts = append(cur.Pts, p.Coords[k])
			k++
		case path.CmdQuadTo:
			cur := &res[len(res)-1]
			cur.Pts = append(cur.Pts, p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			cur := &res[len(res)-1]
			cur.Pts = append(cur.Pts, p.Coords[k+2])
			k += 3
		case path.CmdClose:
			res[len(res)-1].Closed = true
		}
	}
	return res
}

func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// identity returns a transformer which leaves data coordinates unchanged.
func identity() axis.Transformer {
	return axis.Identity{Rect: rect.Rect{URx: 100, URy: 100}}
}

// grid returns a Cartesian transformer which maps [0, 10]² onto a
// 100x100 viewport.
func grid(transposed bool) *axis.CartesianTransformer {
	a := axis.Axis{Visible: interval.Range{Start: 0, End: 10}}
	return axis.NewCartesian(a, a, rect.Rect{URx: 100, URy: 100}, transposed)
}
