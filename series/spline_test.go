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

package series

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/chart"
)

var nan = math.NaN()

var approx = cmp.Comparer(func(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a), math.Abs(b))
})

func points(xy ...float64) []chart.Point {
	res := make([]chart.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, chart.Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}

func TestSplineCollinear(t *testing.T) {
	pts := points(0, 0, 1, 1, 2, 2, 3, 3)
	for _, typ := range []SplineType{Natural, Monotonic, Cardinal, Clamped} {
		t.Run(typ.String(), func(t *testing.T) {
			ctrl, err := SplineControls(pts, typ)
			if err != nil {
				t.Fatal(err)
			}
			want := []chart.ControlPair{
				{C1: chart.Point{X: 1. / 3, Y: 1. / 3}, C2: chart.Point{X: 2. / 3, Y: 2. / 3}},
				{C1: chart.Point{X: 4. / 3, Y: 4. / 3}, C2: chart.Point{X: 5. / 3, Y: 5. / 3}},
				{C1: chart.Point{X: 7. / 3, Y: 7. / 3}, C2: chart.Point{X: 8. / 3, Y: 8. / 3}},
			}
			if d := cmp.Diff(want, ctrl, approx); d != "" {
				t.Errorf("controls mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestNaturalSpline(t *testing.T) {
	pts := points(0, 0, 1, 2, 3, 1, 4, 4)
	ctrl, err := SplineControls(pts, Natural)
	if err != nil {
		t.Fatal(err)
	}

	slope := func(a, b chart.Point) float64 { return (b.Y - a.Y) / (b.X - a.X) }
	for i := 1; i < len(pts)-1; i++ {
		in := slope(ctrl[i-1].C2, pts[i])
		out := slope(pts[i], ctrl[i].C1)
		if math.Abs(in-out) > 1e-9 {
			t.Errorf("point %d: slope %g on the left, %g on the right", i, in, out)
		}
	}

	// zero curvature at both ends
	first, last := ctrl[0], ctrl[len(ctrl)-1]
	if c := pts[0].Y - 2*first.C1.Y + first.C2.Y; math.Abs(c) > 1e-9 {
		t.Errorf("curvature at start: %g", c)
	}
	if c := pts[3].Y - 2*last.C2.Y + last.C1.Y; math.Abs(c) > 1e-9 {
		t.Errorf("curvature at end: %g", c)
	}
}

func TestMonotonicSpline(t *testing.T) {
	pts := points(0, 0, 1, 1, 2, 1, 3, 5)
	ctrl, err := SplineControls(pts, Monotonic)
	if err != nil {
		t.Fatal(err)
	}
	if ctrl[1].C1.Y != 1 || ctrl[1].C2.Y != 1 {
		t.Errorf("flat piece has controls %v", ctrl[1])
	}
	for i, c := range ctrl {
		for _, y := range []float64{c.C1.Y, c.C2.Y} {
			if y < 0 || y > 5 {
				t.Errorf("piece %d overshoots: %v", i, c)
			}
		}
	}
}

func TestSplineGaps(t *testing.T) {
	pts := points(0, 0, 1, 1, 2, nan, 3, 1, 4, 2)
	ctrl, err := SplineControls(pts, Natural)
	if err != nil {
		t.Fatal(err)
	}
	if len(ctrl) != 4 {
		t.Fatalf("got %d control pairs, want 4", len(ctrl))
	}
	want := chart.ControlPair{
		C1: chart.Point{X: 3 + 1./3, Y: 1 + 1./3},
		C2: chart.Point{X: 4 - 1./3, Y: 2 - 1./3},
	}
	if d := cmp.Diff(want, ctrl[3], approx); d != "" {
		t.Errorf("last piece mismatch (-want +got):\n%s", d)
	}
	if !math.IsNaN(ctrl[1].C1.Y) {
		t.Errorf("piece next to an empty point has controls %v", ctrl[1])
	}
}

func TestSplineErrors(t *testing.T) {
	if _, err := SplineControls(nil, Natural); !errors.Is(err, ErrNoData) {
		t.Errorf("empty input: got %v", err)
	}

	pts := points(0, 0, 0, 1)
	if _, err := SplineControls(pts, Natural); !errors.Is(err, ErrOrder) {
		t.Errorf("repeated X: got %v", err)
	}
	if _, err := SplineControls(pts, Cardinal); err != nil {
		t.Errorf("cardinal spline with repeated X: %v", err)
	}

	b := chart.Band{X: []float64{0, 1}, High: []float64{1}, Low: []float64{0, 0}}
	if _, err := SplineBand(b, Natural); !errors.Is(err, ErrLength) {
		t.Errorf("short band: got %v", err)
	}
}

func TestSplineBand(t *testing.T) {
	b := chart.Band{
		X:    []float64{0, 1, 2},
		High: []float64{2, 3, 2},
		Low:  []float64{0, 1, 0},
	}
	sb, err := SplineBand(b, Monotonic)
	if err != nil {
		t.Fatal(err)
	}
	if len(sb.HighControls) != 2 || len(sb.LowControls) != 2 {
		t.Fatalf("got %d/%d control pairs", len(sb.HighControls), len(sb.LowControls))
	}
	// both boundaries have the same shape, shifted by 2
	for i := range sb.HighControls {
		h, l := sb.HighControls[i], sb.LowControls[i]
		if math.Abs(h.C1.Y-l.C1.Y-2) > 1e-9 || math.Abs(h.C2.Y-l.C2.Y-2) > 1e-9 {
			t.Errorf("piece %d: high %v, low %v", i, h, l)
		}
	}
}
