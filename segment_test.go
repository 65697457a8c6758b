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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart/axis"
	"seehuhn.de/go/chart/interval"
)

func TestSegmentUpdateIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IsClosed = false

	for _, k := range []Kind{Line, StepLine, Area, StepArea} {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSegment(k)
			s.SetData(Points{{X: 0, Y: 1}, {X: 1, Y: nan}, {X: 2, Y: 3}, {X: 3, Y: 2}}, cfg)

			tr := grid(false)
			s.Update(tr, cfg)
			first := s.Geometry()
			s.Update(tr, cfg)
			second := s.Geometry()

			if first.Visible != second.Visible {
				t.Errorf("visibility changed")
			}
			if d := cmp.Diff(split(first.Fill), split(second.Fill)); d != "" {
				t.Errorf("fill changed (-first +second):\n%s", d)
			}
			if d := cmp.Diff(split(first.Stroke), split(second.Stroke)); d != "" {
				t.Errorf("stroke changed (-first +second):\n%s", d)
			}
		})
	}
}

func TestSegmentSkipsUnusableTransformer(t *testing.T) {
	s := NewSegment(Column)
	s.SetData(Rect{Left: 2, Right: 4, Top: 5, Bottom: 0}, nil)
	s.Update(grid(false), nil)
	before := s.Geometry()
	if !before.Visible {
		t.Fatal("column not visible")
	}

	s.Update(nil, nil)
	if s.Geometry() != before {
		t.Error("nil transformer changed the geometry")
	}
	empty := axis.NewCartesian(axis.Axis{}, axis.Axis{}, rect.Rect{URx: 10}, false)
	s.Update(empty, nil)
	if s.Geometry() != before {
		t.Error("empty viewport changed the geometry")
	}
}

func TestSegmentRanges(t *testing.T) {
	s := NewSegment(HiLoKind)
	if !s.XRange().IsEmpty() || !s.YRange().IsEmpty() {
		t.Error("new segment has non-empty ranges")
	}

	s.SetData(HiLo{X: 3, High: 8, Low: 2}, nil)
	if d := cmp.Diff(interval.Range{Start: 2, End: 8}, s.YRange()); d != "" {
		t.Errorf("Y range mismatch (-want +got):\n%s", d)
	}

	s.Update(grid(false), nil)
	s.Release()
	if s.Geometry().Visible || !s.YRange().IsEmpty() {
		t.Error("released segment still has state")
	}

	// updating without data hides the segment
	s.Update(grid(false), nil)
	if s.Geometry().Visible {
		t.Error("segment without data is visible")
	}
}

func TestSegmentSetDataPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("wrong values did not panic")
		}
	}()
	NewSegment(Candle).SetData(HiLo{}, nil)
}

func TestInset(t *testing.T) {
	cases := []struct {
		spacing       float64
		start, length float64
	}{
		{0, 10, 20},
		{0.5, 15, 10},
		{1, 20, 0},
		{1.5, 10, 20},
		{-0.2, 10, 20},
		{nan, 10, 20},
	}
	for _, c := range cases {
		start, length := Inset(10, 30, c.spacing)
		if start != c.start || length != c.length {
			t.Errorf("spacing %g: got (%g, %g), want (%g, %g)",
				c.spacing, start, length, c.start, c.length)
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("%s: round trip gave %v, %v", k, got, err)
		}
	}
	if _, err := ParseKind("pie"); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestConfigTOML(t *testing.T) {
	in := `
closed = false
segment-spacing = 0.25
step = "mid"

[error-bar]
mode = "vertical"
direction = "plus"

[funnel]
mode = "value-is-width"
`
	cfg := DefaultConfig()
	if err := toml.Unmarshal([]byte(in), cfg); err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.IsClosed = false
	want.SegmentSpacing = 0.25
	want.Step = StepMid
	want.ErrorBar.Mode = ErrorBarVertical
	want.ErrorBar.Direction = DirectionPlus
	want.Funnel.Mode = ValueIsWidth
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}

	if err := toml.Unmarshal([]byte(`step = "sideways"`), DefaultConfig()); err == nil {
		t.Error("invalid step mode accepted")
	}
}
