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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polygons lists the vertices of the closed sub-paths of an outline.
func polygons(p *path.Data) [][]vec.Vec2 {
	var res [][]vec.Vec2
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			res = append(res, []vec.Vec2{pts[0]})
		case path.CmdLineTo:
			res[len(res)-1] = append(res[len(res)-1], pts[0])
		}
	})
	return res
}

func signedArea(poly []vec.Vec2) float64 {
	a := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - p.Y*q.X
	}
	return a / 2
}

func stroke(width float64, c graphics.LineCapStyle, j graphics.LineJoinStyle) Style {
	return Style{LineWidth: width, Cap: c, Join: j, MiterLimit: defaultMiterLimit}
}

func TestOutlineSegment(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 0, Y: 0}).LineTo(vec.Vec2{X: 10, Y: 0})

	cases := []struct {
		cap   graphics.LineCapStyle
		polys int
		area  float64
	}{
		{graphics.LineCapButt, 1, 20},
		{graphics.LineCapSquare, 3, 24},
		{graphics.LineCapRound, 3, 20 + 2*math.Pi},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			polys := polygons(Outline(p, stroke(2, c.cap, graphics.LineJoinMiter)))
			if len(polys) != c.polys {
				t.Fatalf("got %d polygons, want %d", len(polys), c.polys)
			}
			total := 0.0
			for i, poly := range polys {
				a := signedArea(poly)
				if a <= 0 {
					t.Errorf("polygon %d has area %g", i, a)
				}
				total += a
			}
			if math.Abs(total-c.area) > 0.2 {
				t.Errorf("total area %g, want about %g", total, c.area)
			}
		})
	}

	want := []vec.Vec2{{X: 0, Y: -1}, {X: 10, Y: -1}, {X: 10, Y: 1}, {X: 0, Y: 1}}
	got := polygons(Outline(p, stroke(2, graphics.LineCapButt, graphics.LineJoinMiter)))[0]
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("segment outline mismatch (-want +got):\n%s", d)
	}
}

func TestOutlineJoins(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10})

	polys := polygons(Outline(p, stroke(2, graphics.LineCapButt, graphics.LineJoinMiter)))
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 3", len(polys))
	}
	found := false
	for _, q := range polys[2] {
		if math.Abs(q.X-11) < 1e-9 && math.Abs(q.Y+1) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Errorf("miter join %v has no tip at (11, -1)", polys[2])
	}

	// A sharp turn exceeds the miter limit and gives a bevel.
	sharp := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 0.5})
	polys = polygons(Outline(sharp, stroke(2, graphics.LineCapButt, graphics.LineJoinMiter)))
	if n := len(polys[2]); n != 3 {
		t.Errorf("sharp join has %d vertices, want 3", n)
	}
}

func TestOutlineDegenerate(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 5, Y: 5})

	if got := Outline(p, stroke(2, graphics.LineCapButt, graphics.LineJoinMiter)); got != nil {
		t.Errorf("butt cap dot has outline %v", got)
	}
	polys := polygons(Outline(p, stroke(2, graphics.LineCapRound, graphics.LineJoinMiter)))
	if len(polys) != 1 {
		t.Fatalf("round cap dot has %d polygons", len(polys))
	}
	if a := signedArea(polys[0]); math.Abs(a-math.Pi) > 0.1 {
		t.Errorf("round dot has area %g", a)
	}

	if got := Outline(p, stroke(0, graphics.LineCapRound, graphics.LineJoinMiter)); got != nil {
		t.Error("zero width stroke has an outline")
	}
}

func TestOutlineClosed(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		Close()
	polys := polygons(Outline(square, stroke(2, graphics.LineCapRound, graphics.LineJoinBevel)))

	// four sides and four joins, no caps
	if len(polys) != 8 {
		t.Errorf("got %d polygons, want 8", len(polys))
	}
}
