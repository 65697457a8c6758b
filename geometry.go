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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/axis"
)

// Geometry is the screen-space description of a segment.
//
// Fill holds closed contours to be filled with the nonzero winding rule,
// Stroke holds the lines to be stroked.  Either may be nil.  The paths are
// owned by the Geometry and must not be modified by the caller.
type Geometry struct {
	Visible bool
	Fill    *path.Data
	Stroke  *path.Data
}

// IsEmpty reports whether g has nothing to draw.
func (g Geometry) IsEmpty() bool {
	return !g.Visible || (isEmptyPath(g.Fill) && isEmptyPath(g.Stroke))
}

func isEmptyPath(p *path.Data) bool {
	return p == nil || len(p.Cmds) == 0
}

// Build computes the geometry of a segment of kind k with values v.
//
// If tr is not usable (see [axis.Usable]), the result is the zero Geometry.
// A nil cfg selects [DefaultConfig].  Build panics if v is not the
// [Values] variant used by k.
func Build(k Kind, v Values, tr axis.Transformer, cfg *SeriesConfig) Geometry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	checkValues(k, v)
	if !axis.Usable(tr) {
		return Geometry{}
	}

	b := &builder{
		kind:  k,
		tr:    tr,
		cfg:   cfg,
		polar: tr.Kind() == axis.Polar,
	}
	if !b.polar {
		b.o = orient(cfg.IsTransposed)
		if t, ok := tr.(interface{ Transposed() bool }); ok && t.Transposed() != cfg.IsTransposed {
			Logger().Warn("series and transformer disagree on transposition",
				"kind", k, "series", cfg.IsTransposed, "transformer", t.Transposed())
		}
	}

	switch k {
	case Line, StackingLine, Trendline:
		return b.line(v.(Points))
	case StepLine:
		return b.stepLine(v.(Points))
	case Spline:
		return b.spline(v.(SplinePoints))
	case Area:
		return b.area(v.(Points))
	case StepArea:
		return b.stepArea(v.(Points))
	case StackingArea, RangeArea:
		return b.bandArea(v.(Band))
	case SplineArea:
		return b.splineArea(v.(SplinePoints))
	case SplineRangeArea:
		return b.splineBand(v.(SplineBand))
	case Column, StackingColumn, RangeColumn:
		return b.column(v.(Rect))
	case Scatter:
		return b.scatter(v.(Point))
	case BubbleKind:
		return b.bubble(v.(Bubble))
	case BoxAndWhisker:
		return b.boxWhisker(v.(BoxWhisker))
	case ErrorBarKind:
		return b.errorBar(v.(ErrorBar))
	case Funnel:
		return b.funnel(v.(FunnelSlice))
	case Pyramid:
		return b.pyramid(v.(FunnelSlice))
	case HiLoKind:
		return b.hiLo(v.(HiLo))
	case HiLoOpenClose:
		return b.hiLoOpenClose(v.(OHLC))
	case Candle:
		return b.candle(v.(OHLC))
	}
	panic(fmt.Sprintf("chart: invalid kind %d", int(k)))
}

// builder holds the state shared by the geometry builders during a single
// call to Build.
type builder struct {
	kind  Kind
	tr    axis.Transformer
	cfg   *SeriesConfig
	polar bool
	o     orient
}

func (b *builder) at(x, y float64) vec.Vec2 {
	return b.tr.Transform(x, y)
}

func (b *builder) pt(p Point) vec.Vec2 {
	return b.tr.Transform(p.X, p.Y)
}

// baseline returns the data value which area shapes are closed against.
func (b *builder) baseline() float64 {
	return axis.Baseline(b.tr)
}

// culled reports whether a segment which failed the visibility test is
// dropped.
func (b *builder) culled(visible bool) bool {
	if visible || b.cfg.ShowEmptyPoints {
		return false
	}
	Logger().Debug("segment outside visible window", "kind", b.kind)
	return true
}

// hidden is the geometry of a segment which is not drawn.
var hidden = Geometry{}

// shape returns a visible geometry which fills and strokes the same path.
func shape(p *path.Data) Geometry {
	if isEmptyPath(p) {
		return hidden
	}
	return Geometry{Visible: true, Fill: p, Stroke: p}
}

// lines returns a visible geometry which only strokes p.
func lines(p *path.Data) Geometry {
	if isEmptyPath(p) {
		return hidden
	}
	return Geometry{Visible: true, Stroke: p}
}

// polygon appends the closed polygon through the given points to p.
func polygon(p *path.Data, pts ...vec.Vec2) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Close()
}

// segment appends a straight line from a to b to p.
func segment(p *path.Data, a, b vec.Vec2) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	return p.MoveTo(a).LineTo(b)
}

// orient converts between screen coordinates and (category, value)
// coordinates.  For transposed layouts the category direction is vertical.
type orient bool

func (o orient) split(p vec.Vec2) (c, v float64) {
	if o {
		return p.Y, p.X
	}
	return p.X, p.Y
}

func (o orient) join(c, v float64) vec.Vec2 {
	if o {
		return vec.Vec2{X: v, Y: c}
	}
	return vec.Vec2{X: c, Y: v}
}
