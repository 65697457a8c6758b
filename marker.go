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
	"seehuhn.de/go/geom/vec"
)

// kappa is the distance of the control points from the end points of a
// cubic Bezier approximating a quarter circle, relative to the radius.
const kappa = 0.5522847498307936

// ellipse appends an axis-aligned ellipse with centre c and radii rx, ry
// to p, drawn as four Bezier pieces.
func ellipse(p *path.Data, c vec.Vec2, rx, ry float64) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	kx, ky := rx*kappa, ry*kappa
	at := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
	}
	return p.
		MoveTo(at(rx, 0)).
		CubeTo(at(rx, -ky), at(kx, -ry), at(0, -ry)).
		CubeTo(at(-kx, -ry), at(-rx, -ky), at(-rx, 0)).
		CubeTo(at(-rx, ky), at(-kx, ry), at(0, ry)).
		CubeTo(at(kx, ry), at(rx, ky), at(rx, 0)).
		Close()
}

// pointVisible applies the clipping test of point-like kinds.
func (b *builder) pointVisible(x float64) bool {
	if b.polar {
		return true
	}
	return !b.culled(b.tr.XAxis().Contains(x))
}

// scatter draws an elliptic marker.
func (b *builder) scatter(v Point) Geometry {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		return b.empty()
	}
	if !b.pointVisible(v.X) {
		return hidden
	}
	m := b.cfg.Marker
	return shape(ellipse(nil, b.pt(v), m.Width/2, m.Height/2))
}

// bubble draws a circle whose radius grows linearly with the bubble size.
func (b *builder) bubble(v Bubble) Geometry {
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Size) {
		return b.empty()
	}
	if !b.pointVisible(v.X) {
		return hidden
	}
	r := bubbleRadius(&b.cfg.Bubble, v.Size)
	if r <= 0 {
		return hidden
	}
	return shape(ellipse(nil, b.pt(v.point()), r, r))
}

func (v Bubble) point() Point {
	return Point{X: v.X, Y: v.Y}
}

func bubbleRadius(cfg *BubbleConfig, size float64) float64 {
	if !(cfg.MaxSize > 0) {
		return cfg.MinRadius
	}
	f := math.Abs(size) / cfg.MaxSize
	f = min(max(f, 0), 1)
	return cfg.MinRadius + (cfg.MaxRadius-cfg.MinRadius)*f
}
