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

// Package bez implements the "bez" glyph format used to exchange glyph
// outlines and stem hints with the hinting engine.
//
// A bez glyph is a sequence of absolute drawing commands (moveto, lineto,
// curveto and closepath), preceded by an initial set of stem hints.  Hint
// substitution is expressed by attaching a new hint set to the drawing
// command from which on it applies.
package bez

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Glyph represents a glyph outline with stem hints.
type Glyph struct {
	Name  string
	Hints []Hint
	Cmds  []Command
}

// MoveTo starts a new subpath at the given point.
func (g *Glyph) MoveTo(x, y float64) {
	g.Cmds = append(g.Cmds, Command{Op: CmdMoveTo, Args: []float64{x, y}})
}

// LineTo appends a straight line segment to the current subpath.
func (g *Glyph) LineTo(x, y float64) {
	g.Cmds = append(g.Cmds, Command{Op: CmdLineTo, Args: []float64{x, y}})
}

// CurveTo appends a cubic Bézier segment to the current subpath.
func (g *Glyph) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	g.Cmds = append(g.Cmds, Command{Op: CmdCurveTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// ClosePath closes the current subpath.
func (g *Glyph) ClosePath() {
	g.Cmds = append(g.Cmds, Command{Op: CmdClosePath})
}

// IsEmpty reports whether the glyph has no outline.
func (g *Glyph) IsEmpty() bool {
	for _, cmd := range g.Cmds {
		if cmd.Op == CmdMoveTo {
			return false
		}
	}
	return true
}

// HasHints reports whether the glyph carries any stem hints.
func (g *Glyph) HasHints() bool {
	if len(g.Hints) > 0 {
		return true
	}
	for _, cmd := range g.Cmds {
		if len(cmd.NewHints) > 0 {
			return true
		}
	}
	return false
}

// AllHints returns the union of the initial hint set and all substituted
// hint sets.  Hints with identical type and edges are reported once.
func (g *Glyph) AllHints() []Hint {
	type key struct {
		tp        HintType
		low, high float64
	}
	seen := make(map[key]bool)
	var res []Hint
	add := func(hh []Hint) {
		for _, h := range hh {
			k := key{h.Type, h.Low, h.High}
			if seen[k] {
				continue
			}
			seen[k] = true
			res = append(res, h)
		}
	}
	add(g.Hints)
	for _, cmd := range g.Cmds {
		add(cmd.NewHints)
	}
	return res
}

// Clone returns a deep copy of the glyph.
func (g *Glyph) Clone() *Glyph {
	res := &Glyph{
		Name:  g.Name,
		Hints: slices.Clone(g.Hints),
		Cmds:  make([]Command, len(g.Cmds)),
	}
	for i, cmd := range g.Cmds {
		res.Cmds[i] = Command{
			Op:       cmd.Op,
			Args:     slices.Clone(cmd.Args),
			NewHints: slices.Clone(cmd.NewHints),
			Flex:     cmd.Flex,
		}
	}
	return res
}

// Extent computes the glyph extent from the on-curve points.
func (g *Glyph) Extent() rect.Rect {
	var left, right, top, bottom float64
	first := true
	for _, cmd := range g.Cmds {
		if cmd.Op == CmdClosePath {
			continue
		}
		x, y := cmd.End()
		if first || x < left {
			left = x
		}
		if first || x > right {
			right = x
		}
		if first || y < bottom {
			bottom = y
		}
		if first || y > top {
			top = y
		}
		first = false
	}
	return rect.Rect{LLx: left, LLy: bottom, URx: right, URy: top}
}

// StartPoint returns the current point before command i is executed.
func (g *Glyph) StartPoint(i int) (float64, float64) {
	var start, cur [2]float64
	for j := 0; j < i && j < len(g.Cmds); j++ {
		cmd := g.Cmds[j]
		switch cmd.Op {
		case CmdMoveTo:
			start[0], start[1] = cmd.End()
			cur = start
		case CmdClosePath:
			cur = start
		default:
			cur[0], cur[1] = cmd.End()
		}
	}
	return cur[0], cur[1]
}

// Round rounds all coordinates and hint edges to integers.
func (g *Glyph) Round() {
	for i := range g.Hints {
		g.Hints[i].round()
	}
	for i := range g.Cmds {
		cmd := &g.Cmds[i]
		for j, a := range cmd.Args {
			cmd.Args[j] = math.Round(a)
		}
		for j := range cmd.NewHints {
			cmd.NewHints[j].round()
		}
	}
}

// Command is a bez drawing command.
type Command struct {
	Op   CommandType
	Args []float64

	// NewHints, if non-empty, replaces the active hint set before the
	// command is drawn.
	NewHints []Hint

	// Flex marks both curves of a flex pair.
	Flex bool
}

// End returns the end point of the command.
// For ClosePath, the zero point is returned.
func (c Command) End() (float64, float64) {
	switch c.Op {
	case CmdMoveTo, CmdLineTo:
		return c.Args[0], c.Args[1]
	case CmdCurveTo:
		return c.Args[4], c.Args[5]
	}
	return 0, 0
}

func (c Command) String() string {
	return fmt.Sprint("cmd", c.Args, c.Op)
}

// CommandType is the type of a bez drawing command.
type CommandType byte

// These are the drawing commands of the bez format.
const (
	CmdMoveTo CommandType = iota + 1
	CmdLineTo
	CmdCurveTo
	CmdClosePath
)

func (op CommandType) String() string {
	switch op {
	case CmdMoveTo:
		return "mt"
	case CmdLineTo:
		return "dt"
	case CmdCurveTo:
		return "ct"
	case CmdClosePath:
		return "cp"
	default:
		return fmt.Sprintf("CommandType(%d)", op)
	}
}

// numArgs gives the number of arguments of each drawing command.
func (op CommandType) numArgs() int {
	switch op {
	case CmdMoveTo, CmdLineTo:
		return 2
	case CmdCurveTo:
		return 6
	default:
		return 0
	}
}

// HintType distinguishes the four kinds of stem hints.
//
// The values are the letters used in the bez operators "rb", "rv", "ry" and
// "rm".
type HintType byte

// These are the stem hint types.
const (
	HStem  HintType = 'b'
	HStem3 HintType = 'v'
	VStem  HintType = 'y'
	VStem3 HintType = 'm'
)

// IsVertical reports whether the hint constrains x-coordinates.
func (tp HintType) IsVertical() bool {
	return tp == VStem || tp == VStem3
}

func (tp HintType) String() string {
	return "r" + string(tp)
}

// Hint is a stem hint between the edges Low and High.
//
// For horizontal stems the edges are y-coordinates, for vertical stems they
// are x-coordinates.  Elt0 and Elt1 give the 1-based numbers of the path
// elements which define the two edges (0 if not known); Start0 and Start1 tell
// whether the edge is located at the start point of that element rather than
// at its end point.
type Hint struct {
	Type      HintType
	Low, High float64

	Elt0, Elt1     int
	Start0, Start1 bool
}

// Width returns the distance between the two edges.
func (h Hint) Width() float64 {
	return h.High - h.Low
}

// Overlaps reports whether two hints of the same orientation conflict.
func (h Hint) Overlaps(other Hint) bool {
	if h.Type.IsVertical() != other.Type.IsVertical() {
		return false
	}
	return h.Low <= other.High && other.Low <= h.High
}

func (h *Hint) round() {
	h.Low = math.Round(h.Low)
	h.High = math.Round(h.High)
}
