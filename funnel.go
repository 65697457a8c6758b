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

	"seehuhn.de/go/geom/vec"
)

// funnelPoints returns the outline of a funnel slice in relative viewport
// coordinates (radius, height fraction).
//
// Both radii are limited to the radius minR which corresponds to the
// minimum funnel width.  In ValueIsHeight mode, a slice whose top and bottom
// radii lie on different sides of minR has a kink where the sloped side
// meets the vertical neck; the outline then has six points instead of four.
func funnelPoints(v FunnelSlice, minR float64, mode FunnelMode) []vec.Vec2 {
	rt := min(v.TopRadius, minR)
	rb := min(v.BottomRadius, minR)

	broken := mode == ValueIsHeight &&
		(v.TopRadius >= minR) != (v.BottomRadius > minR)
	if !broken {
		return []vec.Vec2{
			{X: rt, Y: v.Top},
			{X: 1 - rt, Y: v.Top},
			{X: 1 - rb, Y: v.Bottom},
			{X: rb, Y: v.Bottom},
		}
	}

	// height at which the sloped side reaches the neck
	yb := v.Top
	if d := v.BottomRadius - v.TopRadius; d != 0 {
		yb += (v.Bottom - v.Top) * (minR - v.TopRadius) / d
	}
	return []vec.Vec2{
		{X: rt, Y: v.Top},
		{X: 1 - rt, Y: v.Top},
		{X: 1 - minR, Y: yb},
		{X: 1 - rb, Y: v.Bottom},
		{X: rb, Y: v.Bottom},
		{X: minR, Y: yb},
	}
}

// funnelMinRadius converts the minimum funnel width in pixels into a radius
// relative to the viewport width w.
func funnelMinRadius(minWidth, w float64) float64 {
	r := 0.5 * (1 - minWidth/w)
	return min(max(r, 0), 0.5)
}

// funnel draws one slice of a funnel chart.  Funnel geometry is laid out
// relative to the viewport and does not depend on the axes.
func (b *builder) funnel(v FunnelSlice) Geometry {
	vp := b.tr.Viewport()
	cfg := &b.cfg.Funnel
	minR := funnelMinRadius(cfg.MinWidth, vp.URx-vp.LLx)
	return b.funnelShape(v, funnelPoints(v, minR, cfg.Mode))
}

// pyramid draws one slice of a pyramid chart.
func (b *builder) pyramid(v FunnelSlice) Geometry {
	return b.funnelShape(v, []vec.Vec2{
		{X: v.TopRadius, Y: v.Top},
		{X: 1 - v.TopRadius, Y: v.Top},
		{X: 1 - v.BottomRadius, Y: v.Bottom},
		{X: v.BottomRadius, Y: v.Bottom},
	})
}

func (b *builder) funnelShape(v FunnelSlice, rel []vec.Vec2) Geometry {
	for _, q := range []float64{v.Top, v.Bottom, v.TopRadius, v.BottomRadius} {
		if math.IsNaN(q) {
			return b.empty()
		}
	}

	vp := b.tr.Viewport()
	w, h := vp.URx-vp.LLx, vp.URy-vp.LLy
	dx := 0.0
	if v.Exploded {
		dx = b.cfg.Funnel.ExplodeOffset
	}
	pts := make([]vec.Vec2, len(rel))
	for i, q := range rel {
		pts[i] = vec.Vec2{X: vp.LLx + q.X*w + dx, Y: vp.LLy + q.Y*h}
	}
	return shape(polygon(nil, pts...))
}
