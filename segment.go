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
	"seehuhn.de/go/chart/axis"
	"seehuhn.de/go/chart/interval"
)

// Segment is one renderable unit of a chart series.
//
// A Segment stores the raw values of its kind, the data-space ranges
// computed from them, and the geometry computed by the last successful
// call to [Segment.Update].  Segments are not safe for concurrent use.
type Segment struct {
	kind   Kind
	values Values

	xRange, yRange interval.Range
	geom           Geometry
}

// NewSegment returns an empty segment of the given kind.
func NewSegment(kind Kind) *Segment {
	if kind < 0 || kind >= numKinds {
		panic("chart: invalid kind " + kind.String())
	}
	return &Segment{
		kind:   kind,
		xRange: interval.Empty,
		yRange: interval.Empty,
	}
}

// Kind returns the chart kind of the segment.
func (s *Segment) Kind() Kind {
	return s.kind
}

// SetData stores new values and recomputes the data-space ranges.
// The geometry is left unchanged until the next call to Update.
// SetData panics if v is not the [Values] variant used by the segment's
// kind.
func (s *Segment) SetData(v Values, cfg *SeriesConfig) {
	s.xRange, s.yRange = Ranges(s.kind, v, cfg)
	s.values = v
}

// Update recomputes the geometry from the stored values.
//
// If tr is not usable, for example because the viewport is empty, the call
// is skipped and the previous geometry is kept.  Otherwise the previous
// geometry is replaced entirely.
func (s *Segment) Update(tr axis.Transformer, cfg *SeriesConfig) {
	if !axis.Usable(tr) {
		Logger().Debug("skipping update", "kind", s.kind, "reason", "unusable transformer")
		return
	}
	if s.values == nil {
		Logger().Debug("skipping update", "kind", s.kind, "reason", "no data")
		s.geom = hidden
		return
	}
	s.geom = Build(s.kind, s.values, tr, cfg)
}

// Geometry returns the result of the last update.
func (s *Segment) Geometry() Geometry {
	return s.geom
}

// XRange returns the data-space extent of the segment along the X axis.
func (s *Segment) XRange() interval.Range {
	return s.xRange
}

// YRange returns the data-space extent of the segment along the Y axis.
func (s *Segment) YRange() interval.Range {
	return s.yRange
}

// Release drops the stored values and the cached geometry.
func (s *Segment) Release() {
	s.values = nil
	s.geom = hidden
	s.xRange, s.yRange = interval.Empty, interval.Empty
}
