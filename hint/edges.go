// seehuhn.de/go/autohint - automatic hinting for PostScript fonts
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package hint

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/autohint/bez"
)

// flatSlope is the maximal slope for a segment to count as horizontal
// (or vertical).
const flatSlope = 0.02

// segment is one piece of a glyph outline.  Lines have c1 == p0 and
// c2 == p1.
type segment struct {
	elt     int // 1-based element number
	contour int
	curve   bool

	p0, c1, c2, p1 vec.Vec2
}

// segments splits the outline into segments.  The implicit line of a
// closepath is included if it has non-zero length.
func segments(g *bez.Glyph) []segment {
	var res []segment
	var cur, start vec.Vec2
	contour := -1
	for i, cmd := range g.Cmds {
		elt := i + 1
		switch cmd.Op {
		case bez.CmdMoveTo:
			cur = vec.Vec2{X: cmd.Args[0], Y: cmd.Args[1]}
			start = cur
			contour++
		case bez.CmdLineTo:
			p := vec.Vec2{X: cmd.Args[0], Y: cmd.Args[1]}
			res = append(res, segment{elt: elt, contour: contour, p0: cur, c1: cur, c2: p, p1: p})
			cur = p
		case bez.CmdCurveTo:
			a := cmd.Args
			p := vec.Vec2{X: a[4], Y: a[5]}
			res = append(res, segment{
				elt:     elt,
				contour: contour,
				curve:   true,
				p0:      cur,
				c1:      vec.Vec2{X: a[0], Y: a[1]},
				c2:      vec.Vec2{X: a[2], Y: a[3]},
				p1:      p,
			})
			cur = p
		case bez.CmdClosePath:
			if cur != start {
				res = append(res, segment{elt: elt, contour: contour, p0: cur, c1: cur, c2: start, p1: start})
			}
			cur = start
		}
	}
	return res
}

// orientation returns +1 if the outline is predominantly counter-clockwise
// and -1 otherwise.
func orientation(segs []segment) float64 {
	area := 0.0
	for _, s := range segs {
		// control polygon
		pts := []vec.Vec2{s.p0, s.c1, s.c2, s.p1}
		for i := 0; i < 3; i++ {
			area += pts[i].X*pts[i+1].Y - pts[i+1].X*pts[i].Y
		}
	}
	if area < 0 {
		return -1
	}
	return 1
}

// edge is a horizontal or vertical piece of the outline.
//
// For horizontal edges, pos is the y-coordinate and lo, hi give the
// x-range.  For vertical edges the roles of x and y are exchanged.
type edge struct {
	pos    float64
	lo, hi float64

	// fillAbove is true if the glyph is filled on the side of larger
	// coordinates.
	fillAbove bool
	curved    bool

	elt   int
	start bool
}

// findEdges finds horizontal and vertical edges of the outline.
func findEdges(segs []segment) (hEdges, vEdges []edge) {
	s := orientation(segs)

	for _, seg := range segs {
		if !seg.curve {
			d := seg.p1.Sub(seg.p0)
			if d.X != 0 && math.Abs(d.Y) <= flatSlope*math.Abs(d.X) {
				hEdges = append(hEdges, edge{
					pos:       (seg.p0.Y + seg.p1.Y) / 2,
					lo:        min(seg.p0.X, seg.p1.X),
					hi:        max(seg.p0.X, seg.p1.X),
					fillAbove: d.X*s > 0,
					elt:       seg.elt,
				})
			}
			if d.Y != 0 && math.Abs(d.X) <= flatSlope*math.Abs(d.Y) {
				vEdges = append(vEdges, edge{
					pos:       (seg.p0.X + seg.p1.X) / 2,
					lo:        min(seg.p0.Y, seg.p1.Y),
					hi:        max(seg.p0.Y, seg.p1.Y),
					fillAbove: d.Y*s < 0,
					elt:       seg.elt,
				})
			}
			continue
		}

		// tangents at the two ends of the curve
		t0 := seg.c1.Sub(seg.p0)
		if t0.X == 0 && t0.Y == 0 {
			t0 = seg.c2.Sub(seg.p0)
		}
		t1 := seg.p1.Sub(seg.c2)
		if t1.X == 0 && t1.Y == 0 {
			t1 = seg.p1.Sub(seg.c1)
		}
		ends := []struct {
			p     vec.Vec2
			t     vec.Vec2
			other vec.Vec2
			start bool
		}{
			{seg.p0, t0, seg.p0.Add(t0), true},
			{seg.p1, t1, seg.p1.Sub(t1), false},
		}
		for _, end := range ends {
			t := end.t
			if t.X != 0 && math.Abs(t.Y) <= flatSlope*math.Abs(t.X) {
				hEdges = append(hEdges, edge{
					pos:       end.p.Y,
					lo:        min(end.p.X, end.other.X),
					hi:        max(end.p.X, end.other.X),
					fillAbove: t.X*s > 0,
					curved:    true,
					elt:       seg.elt,
					start:     end.start,
				})
			}
			if t.Y != 0 && math.Abs(t.X) <= flatSlope*math.Abs(t.Y) {
				vEdges = append(vEdges, edge{
					pos:       end.p.X,
					lo:        min(end.p.Y, end.other.Y),
					hi:        max(end.p.Y, end.other.Y),
					fillAbove: t.Y*s < 0,
					curved:    true,
					elt:       seg.elt,
					start:     end.start,
				})
			}
		}
	}

	return mergeEdges(hEdges), mergeEdges(vEdges)
}

// mergeEdges joins edges at the same position, with the same fill side,
// whose ranges touch.  This combines the two halves of a smooth extremum
// which is split between two curves.
func mergeEdges(edges []edge) []edge {
	if len(edges) < 2 {
		return edges
	}
	slices.SortStableFunc(edges, func(a, b edge) int {
		switch {
		case a.pos < b.pos:
			return -1
		case a.pos > b.pos:
			return 1
		case a.fillAbove != b.fillAbove:
			if a.fillAbove {
				return 1
			}
			return -1
		case a.lo < b.lo:
			return -1
		case a.lo > b.lo:
			return 1
		}
		return 0
	})

	res := edges[:1]
	for _, e := range edges[1:] {
		last := &res[len(res)-1]
		if e.pos == last.pos && e.fillAbove == last.fillAbove && e.lo <= last.hi {
			last.hi = max(last.hi, e.hi)
			if last.curved && !e.curved {
				last.elt, last.start = e.elt, e.start
			}
			last.curved = last.curved && e.curved
			continue
		}
		res = append(res, e)
	}
	return res
}
