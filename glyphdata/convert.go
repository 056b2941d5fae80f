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

package glyphdata

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/autohint/bez"
)

// FromPath converts a glyph outline to bez form.
// Quadratic segments are converted to cubic ones.
func FromPath(name string, p path.Path) *bez.Glyph {
	g := &bez.Glyph{Name: name}
	if p == nil {
		return g
	}

	var cur vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			g.MoveTo(pts[0].X, pts[0].Y)
			cur = pts[0]
		case path.CmdLineTo:
			g.LineTo(pts[0].X, pts[0].Y)
			cur = pts[0]
		case path.CmdQuadTo:
			q, end := pts[0], pts[1]
			c1x := cur.X + 2*(q.X-cur.X)/3
			c1y := cur.Y + 2*(q.Y-cur.Y)/3
			c2x := end.X + 2*(q.X-end.X)/3
			c2y := end.Y + 2*(q.Y-end.Y)/3
			g.CurveTo(c1x, c1y, c2x, c2y, end.X, end.Y)
			cur = end
		case path.CmdCubeTo:
			g.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			cur = pts[2]
		case path.CmdClose:
			g.ClosePath()
		}
	}
	return g
}

// Pen receives the drawing commands of a glyph outline.
// If a Pen also has a ClosePath method, it is called at the end of every
// closed subpath.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
}

// Draw replays the outline of g on the pen.
func Draw(g *bez.Glyph, pen Pen) {
	closer, canClose := pen.(interface{ ClosePath() })
	for _, cmd := range g.Cmds {
		a := cmd.Args
		switch cmd.Op {
		case bez.CmdMoveTo:
			pen.MoveTo(a[0], a[1])
		case bez.CmdLineTo:
			pen.LineTo(a[0], a[1])
		case bez.CmdCurveTo:
			pen.CurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case bez.CmdClosePath:
			if canClose {
				closer.ClosePath()
			}
		}
	}
}

// Stems flattens the hints of g into the stem lists of a charstring,
// without hint replacement.  The initial hint set takes precedence;
// hints from substitution sets are kept if they do not overlap a hint
// which is already present.  Both lists are sorted by position.
func Stems(g *bez.Glyph) (hStems, vStems [][2]float64) {
	var h, v []bez.Hint
	add := func(hints []bez.Hint) {
	hintLoop:
		for _, hint := range hints {
			list := &h
			if hint.Type.IsVertical() {
				list = &v
			}
			for _, other := range *list {
				if hint.Overlaps(other) {
					continue hintLoop
				}
			}
			*list = append(*list, hint)
		}
	}
	add(g.Hints)
	for _, cmd := range g.Cmds {
		add(cmd.NewHints)
	}

	toPairs := func(hints []bez.Hint) [][2]float64 {
		if len(hints) == 0 {
			return nil
		}
		res := make([][2]float64, len(hints))
		for i, hint := range hints {
			res[i] = [2]float64{min(hint.Low, hint.High), max(hint.Low, hint.High)}
		}
		slices.SortFunc(res, func(a, b [2]float64) int {
			switch {
			case a[0] < b[0]:
				return -1
			case a[0] > b[0]:
				return 1
			}
			return 0
		})
		return res
	}
	return toPairs(h), toPairs(v)
}

// SetHints installs stems read from a charstring as the initial hint set
// of g.
func SetHints(g *bez.Glyph, hStems, vStems [][2]float64) {
	g.Hints = g.Hints[:0]
	for _, s := range hStems {
		g.Hints = append(g.Hints, bez.Hint{Type: bez.HStem, Low: s[0], High: s[1]})
	}
	for _, s := range vStems {
		g.Hints = append(g.Hints, bez.Hint{Type: bez.VStem, Low: s[0], High: s[1]})
	}
	if len(g.Hints) == 0 {
		g.Hints = nil
	}
}

// StemValue is the element type of the stem lists in CFF and Type 1 glyphs.
type StemValue interface {
	~int16 | ~float64
}

// PairsFromStems converts a flat stem list, holding the absolute edge
// coordinates of each stem, into (low, high) pairs.
func PairsFromStems[T StemValue](stems []T) [][2]float64 {
	n := len(stems) / 2
	if n == 0 {
		return nil
	}
	res := make([][2]float64, n)
	for i := range res {
		a, b := float64(stems[2*i]), float64(stems[2*i+1])
		res[i] = [2]float64{min(a, b), max(a, b)}
	}
	return res
}

// StemsFromPairs converts (low, high) pairs into a flat stem list.
// For integer element types, the coordinates are rounded.
func StemsFromPairs[T StemValue](pairs [][2]float64) []T {
	if len(pairs) == 0 {
		return nil
	}
	res := make([]T, 0, 2*len(pairs))
	half := 0.5
	isInt := T(half) == 0
	for _, p := range pairs {
		lo, hi := p[0], p[1]
		if isInt {
			lo, hi = math.Round(lo), math.Round(hi)
		}
		res = append(res, T(lo), T(hi))
	}
	return res
}
