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

package axis

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/interval"
)

// Identity is a Cartesian transformer which returns data coordinates
// unchanged.  Both axes are linear, have origin 0 and an unbounded visible
// window.  Rect is returned as the viewport and must have positive size for
// the transformer to be usable.
type Identity struct {
	Rect rect.Rect
}

var unbounded = Axis{Visible: interval.Range{Start: math.Inf(-1), End: math.Inf(1)}}

// Kind implements the [Transformer] interface.
func (Identity) Kind() Kind { return Cartesian }

// Transform implements the [Transformer] interface.
func (Identity) Transform(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

// Viewport implements the [Transformer] interface.
func (id Identity) Viewport() rect.Rect { return id.Rect }

// XAxis implements the [Transformer] interface.
func (Identity) XAxis() Axis { return unbounded }

// YAxis implements the [Transformer] interface.
func (Identity) YAxis() Axis { return unbounded }
