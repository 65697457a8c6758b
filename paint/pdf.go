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
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the layers to a single-page PDF file.  The page size is
// width×height PDF points, one point per screen unit.  Colours are
// converted to grey levels; transparency is ignored.
func WritePDF(fileName string, width, height float64, layers ...Layer) error {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has its origin in the bottom-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	for i := range layers {
		l := &layers[i]
		if l.fills() {
			page.SetFillColor(gray(l.Style.Fill))
			writePath(page, l.Geometry.Fill)
			page.Fill()
		}
		if l.strokes() {
			page.SetStrokeColor(gray(l.Style.Stroke))
			page.SetLineWidth(l.Style.LineWidth)
			page.SetLineCap(l.Style.Cap)
			page.SetLineJoin(l.Style.Join)
			if l.Style.MiterLimit >= 1 {
				page.SetMiterLimit(l.Style.MiterLimit)
			}
			writePath(page, l.Geometry.Stroke)
			page.Stroke()
		}
	}
	return page.Close()
}

type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// writePath emits the construction operators for p.  PDF has no quadratic
// curves, so these are converted to cubic ones.
func writePath(w pathWriter, p *path.Data) {
	var cur, start vec.Vec2
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			cur, start = pts[0], pts[0]
			w.MoveTo(cur.X, cur.Y)
		case path.CmdLineTo:
			cur = pts[0]
			w.LineTo(cur.X, cur.Y)
		case path.CmdQuadTo:
			c, q := pts[0], pts[1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := q.Add(c.Sub(q).Mul(2.0 / 3))
			w.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			cur = q
		case path.CmdCubeTo:
			w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			cur = pts[2]
		case path.CmdClose:
			w.ClosePath()
			cur = start
		}
	})
}

// gray converts c into a PDF grey level.
func gray(c stdcolor.Color) color.Color {
	g := stdcolor.GrayModel.Convert(c).(stdcolor.Gray)
	return color.DeviceGray(float64(g.Y) / 255)
}
