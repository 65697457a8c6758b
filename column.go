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
)

// column draws the column, stacking column and range column kinds.
//
// In Cartesian layouts the result is an axis-aligned rectangle, reduced
// across the category direction by the segment spacing.  In polar layouts
// the four corners are transformed individually.
func (b *builder) column(r Rect) Geometry {
	if math.IsNaN(r.Top) || math.IsNaN(r.Bottom) {
		return b.empty()
	}
	if !b.polar && b.culled(b.tr.XAxis().Overlaps(r.Left, r.Right)) {
		return hidden
	}

	c := b.category(r.Left, r.Right, r.Top)
	return shape(polygon(nil,
		c.at(0, r.Top),
		c.at(1, r.Top),
		c.at(1, r.Bottom),
		c.at(0, r.Bottom),
	))
}
