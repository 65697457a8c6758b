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
	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Draw paints the layers on a gonum/plot canvas.  One screen unit becomes
// one point on the canvas.  Since vg canvases have their origin in the
// bottom-left corner, the drawing is flipped vertically within a page of
// the given height.
//
// Line caps, joins and miter limits are left to the canvas.
func Draw(c vg.Canvas, height float64, layers ...Layer) {
	c.Push()
	defer c.Pop()
	c.Translate(vg.Point{Y: vg.Length(height)})
	c.Scale(1, -1)

	for i := range layers {
		l := &layers[i]
		if l.fills() {
			c.SetColor(l.Style.Fill)
			c.Fill(vgPath(l.Geometry.Fill))
		}
		if l.strokes() {
			c.SetColor(l.Style.Stroke)
			c.SetLineWidth(vg.Length(l.Style.LineWidth))
			c.SetLineDash(nil, 0)
			c.Stroke(vgPath(l.Geometry.Stroke))
		}
	}
}

func vgPath(p *path.Data) vg.Path {
	pt := func(v vec.Vec2) vg.Point {
		return vg.Point{X: vg.Length(v.X), Y: vg.Length(v.Y)}
	}

	var res vg.Path
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			res.Move(pt(pts[0]))
		case path.CmdLineTo:
			res.Line(pt(pts[0]))
		case path.CmdQuadTo:
			res.QuadTo(pt(pts[0]), pt(pts[1]))
		case path.CmdCubeTo:
			res.CubeTo(pt(pts[0]), pt(pts[1]), pt(pts[2]))
		case path.CmdClose:
			res.Close()
		}
	})
	return res
}
