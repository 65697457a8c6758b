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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
)

// Rasterize paints the layers, in order, onto a new image of the given
// size.  The background is transparent.  Strokes are converted into fill
// outlines using [Outline].
func Rasterize(width, height int, layers ...Layer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := vector.NewRasterizer(width, height)
	for i := range layers {
		l := &layers[i]
		if l.fills() {
			fillPath(r, img, l.Geometry.Fill, l.Style.Fill)
		}
		if l.strokes() {
			fillPath(r, img, Outline(l.Geometry.Stroke, l.Style), l.Style.Stroke)
		}
	}
	return img
}

// WritePNG rasterises the layers and writes the image to w in PNG format.
func WritePNG(w io.Writer, width, height int, layers ...Layer) error {
	return png.Encode(w, Rasterize(width, height, layers...))
}

// fillPath fills p with the colour c.  Every sub-path is closed
// implicitly.
func fillPath(r *vector.Rasterizer, dst *image.RGBA, p *path.Data, c color.Color) {
	if p == nil {
		return
	}
	b := dst.Bounds()
	r.Reset(b.Dx(), b.Dy())
	r.DrawOp = draw.Over

	empty := true
	for _, pl := range flatten(p, defaultFlatness) {
		if len(pl.pts) < 3 {
			continue
		}
		r.MoveTo(float32(pl.pts[0].X), float32(pl.pts[0].Y))
		for _, q := range pl.pts[1:] {
			r.LineTo(float32(q.X), float32(q.Y))
		}
		r.ClosePath()
		empty = false
	}
	if empty {
		return
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}
