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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
)

// JSONGeometry is the JSON representation of a [chart.Geometry].
type JSONGeometry struct {
	Visible bool          `json:"visible"`
	Fill    []JSONSegment `json:"fill,omitempty"`
	Stroke  []JSONSegment `json:"stroke,omitempty"`
}

// JSONSegment is one path construction command.  Cmd is one of "M", "L",
// "Q", "C" and "Z", as in SVG path data.
type JSONSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// ToJSON converts g into a form suitable for encoding/json.
func ToJSON(g chart.Geometry) JSONGeometry {
	return JSONGeometry{
		Visible: g.Visible,
		Fill:    pathToJSON(g.Fill),
		Stroke:  pathToJSON(g.Stroke),
	}
}

func pathToJSON(p *path.Data) []JSONSegment {
	var segs []JSONSegment
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		seg := JSONSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	})
	return segs
}

// walk calls yield for every command of p, together with the command's
// coordinates.
func walk(p *path.Data, yield func(path.Command, []vec.Vec2)) {
	if p == nil {
		return
	}
	k := 0
	for _, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		yield(cmd, p.Coords[k:k+n])
		k += n
	}
}
