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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Numerical tolerances for stroking.
const (
	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold detects nearly collinear segments, where no
	// join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects paths which double back on themselves.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)

// strokeSegment is a line segment of a flattened path.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

func newStrokeSegment(a, b vec.Vec2) (strokeSegment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return strokeSegment{}, false
	}
	t := d.Mul(1 / l)
	return strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// Outline returns a path whose nonzero fill covers the area painted by
// stroking p with the line width, caps and joins of st.
//
// The outline is made of one polygon per segment, join and cap.  All
// polygons have the same orientation, so that overlaps do not cancel.
func Outline(p *path.Data, st Style) *path.Data {
	o := &outliner{d: st.LineWidth / 2, st: &st, tol: defaultFlatness}
	if !(o.d > 0) {
		return nil
	}
	if o.st.MiterLimit <= 0 {
		o.st.MiterLimit = defaultMiterLimit
	}

	for _, pl := range flatten(p, o.tol) {
		o.polyline(pl)
	}
	if len(o.polys) == 0 {
		return nil
	}

	res := &path.Data{}
	for _, poly := range o.polys {
		res.MoveTo(poly[0])
		for _, q := range poly[1:] {
			res.LineTo(q)
		}
		res.Close()
	}
	return res
}

type outliner struct {
	d   float64 // half the line width
	st  *Style
	tol float64

	polys [][]vec.Vec2
}

// add appends a polygon, reversing it if needed so that all polygons are
// oriented the same way.
func (o *outliner) add(poly ...vec.Vec2) {
	if len(poly) < 3 {
		return
	}
	area := 0.0
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	o.polys = append(o.polys, poly)
}

func (o *outliner) polyline(pl polyline) {
	var segs []strokeSegment
	n := len(pl.pts)
	for i := 1; i < n; i++ {
		if s, ok := newStrokeSegment(pl.pts[i-1], pl.pts[i]); ok {
			segs = append(segs, s)
		}
	}
	if pl.closed && n > 2 {
		if s, ok := newStrokeSegment(pl.pts[n-1], pl.pts[0]); ok {
			segs = append(segs, s)
		}
	}

	if len(segs) == 0 {
		// a degenerate sub-path has no direction; only round caps show
		if o.st.Cap == graphics.LineCapRound {
			o.circle(pl.pts[0])
		}
		return
	}

	d := o.d
	for _, s := range segs {
		o.add(s.A.Add(s.N.Mul(d)), s.B.Add(s.N.Mul(d)), s.B.Sub(s.N.Mul(d)), s.A.Sub(s.N.Mul(d)))
	}
	for i := 1; i < len(segs); i++ {
		o.join(segs[i-1].B, segs[i-1].T, segs[i].T)
	}
	if pl.closed {
		last := segs[len(segs)-1]
		o.join(last.B, last.T, segs[0].T)
	} else {
		o.cap(segs[0].A, segs[0].T.Mul(-1))
		last := segs[len(segs)-1]
		o.cap(last.B, last.T)
	}
}

// join adds the join at P, where the tangent changes from t1 to t2.
func (o *outliner) join(P, t1, t2 vec.Vec2) {
	cos := t1.Dot(t2)
	sin := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}
	if cos < cuspCosineThreshold {
		o.cap(P, t1)
		o.cap(P, t2.Mul(-1))
		return
	}

	// The join is on the outer side of the turn.  A counter-clockwise turn
	// has its outer side at -N.
	side := 1.0
	if sin > 0 {
		side = -1
	}
	d := o.d
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)
	a, b := P.Add(n1.Mul(d)), P.Add(n2.Mul(d))

	switch o.st.Join {
	case graphics.LineJoinRound:
		o.circle(P)
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2), where
		// φ is the angle between the two segments.
		sinHalf := math.Sqrt((1 + cos) / 2)
		bisector := n1.Add(n2)
		if l := bisector.Length(); sinHalf > 0 && l > zeroLengthThreshold &&
			1/sinHalf <= o.st.MiterLimit+1e-10 {
			tip := P.Add(bisector.Mul(d / (sinHalf * l)))
			o.add(P, a, tip, b)
			return
		}
		o.add(P, a, b)
	default:
		o.add(P, a, b)
	}
}

// cap adds the line cap at P.  t is the outward tangent.
func (o *outliner) cap(P, t vec.Vec2) {
	d := o.d
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch o.st.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(t.Mul(d))
		o.add(P.Add(n.Mul(d)), ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)), P.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		o.circle(P)
	}
}

// circle adds a disc of diameter equal to the line width.
func (o *outliner) circle(center vec.Vec2) {
	r := o.d

	// A chord subtending the angle θ deviates r·(1-cos(θ/2)) from the
	// circle.
	step := math.Pi / 4
	if r > o.tol {
		step = min(step, 2*math.Acos(1-o.tol/r))
	}
	n := max(int(math.Ceil(2*math.Pi/step)), 16)

	poly := make([]vec.Vec2, n)
	for i := range poly {
		phi := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = vec.Vec2{X: center.X + r*math.Cos(phi), Y: center.Y + r*math.Sin(phi)}
	}
	o.add(poly...)
}
