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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// splitter accumulates the stroke outline of an area-like segment.
//
// Points are joined by straight lines or cubic Bezier pieces until
// [splitter.gap] is called.  The next point after a gap starts a new,
// unconnected sub-path, so that the outline never bridges an empty point.
type splitter struct {
	d    *path.Data
	open bool
	last vec.Vec2
}

// lineTo extends the current sub-path to p, or starts a new sub-path at p
// after a gap.
func (s *splitter) lineTo(p vec.Vec2) {
	if s.d == nil {
		s.d = &path.Data{}
	}
	switch {
	case !s.open:
		s.d.MoveTo(p)
		s.open = true
	case p != s.last:
		s.d.LineTo(p)
	}
	s.last = p
}

// cubeTo extends the current sub-path by a Bezier piece.  A sub-path must
// have been started with lineTo.
func (s *splitter) cubeTo(c1, c2, p vec.Vec2) {
	s.d.CubeTo(c1, c2, p)
	s.last = p
}

// gap ends the current sub-path.
func (s *splitter) gap() {
	s.open = false
}

// path returns the accumulated outline, or nil if nothing was added.
func (s *splitter) path() *path.Data {
	if s.d == nil || len(s.d.Cmds) == 0 {
		return nil
	}
	return s.d
}

// contour builds a single closed fill contour.  Consecutive duplicate
// vertices are dropped.
type contour struct {
	d       *path.Data
	started bool
	last    vec.Vec2
}

func (c *contour) lineTo(p vec.Vec2) {
	if c.d == nil {
		c.d = &path.Data{}
	}
	switch {
	case !c.started:
		c.d.MoveTo(p)
		c.started = true
	case p != c.last:
		c.d.LineTo(p)
	}
	c.last = p
}

func (c *contour) cubeTo(c1, c2, p vec.Vec2) {
	c.d.CubeTo(c1, c2, p)
	c.last = p
}

// close closes the contour, if one was started, and returns the path.
func (c *contour) close() *path.Data {
	if !c.started {
		return c.d
	}
	c.started = false
	return c.d.Close()
}
