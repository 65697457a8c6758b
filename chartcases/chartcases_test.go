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

package chartcases

import (
	"maps"
	"math"
	"regexp"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/paint"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true
		}
	}
}

func finite(p *path.Data) bool {
	if p == nil {
		return true
	}
	for _, c := range p.Coords {
		if math.IsNaN(c.X) || math.IsInf(c.X, 0) || math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
			return false
		}
	}
	return true
}

func encode(gs []chart.Geometry) []paint.JSONGeometry {
	res := make([]paint.JSONGeometry, len(gs))
	for i, g := range gs {
		res[i] = paint.ToJSON(g)
	}
	return res
}

func TestGeometry(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				first := tc.Build()
				if len(first) != len(tc.Items) {
					t.Fatalf("got %d geometries for %d items", len(first), len(tc.Items))
				}

				visible := 0
				for i, g := range first {
					if !finite(g.Fill) || !finite(g.Stroke) {
						t.Errorf("item %d: non-finite coordinates", i)
					}
					if g.Visible {
						visible++
					}
				}
				if visible == 0 {
					t.Error("nothing visible")
				}

				// geometry is a pure function of its inputs
				second := tc.Build()
				if d := cmp.Diff(encode(first), encode(second)); d != "" {
					t.Errorf("second build differs (-first +second):\n%s", d)
				}
			})
		}
	}
}

func TestSegmentUpdate(t *testing.T) {
	tc := lineCases[0]
	cfg := chart.DefaultConfig()
	tr := tc.Transformer()

	s := chart.NewSegment(tc.Kind)
	s.SetData(tc.Items[0], cfg)
	s.Update(tr, cfg)
	before := s.Geometry()
	s.Update(tr, cfg)
	if d := cmp.Diff(paint.ToJSON(before), paint.ToJSON(s.Geometry())); d != "" {
		t.Errorf("repeated update changed the geometry (-before +after):\n%s", d)
	}
}
