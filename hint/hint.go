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

// Package hint computes stem hints for glyph outlines.
//
// The engine finds horizontal and vertical edges of a glyph outline, pairs
// edges which bound a filled region into stems, and selects a set of
// non-overlapping stems as hints.  Straight stems, stems with edges in an
// alignment zone, and stems with a width close to the dominant stem widths
// of the font are preferred.
//
// Optionally, stems which conflict with the initial hint set are used in
// a hint substitution later in the outline, and shallow curve pairs are
// marked as flex.
package hint

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/fontinfo"
)

// Options control the hinting of a glyph.
type Options struct {
	// AllowEdit allows the engine to modify the outline.  Currently this
	// removes line segments of length zero.
	AllowEdit bool

	// AllowHintSub enables hint substitution.
	AllowHintSub bool

	// RoundCoords rounds all coordinates of the result to integers.
	RoundCoords bool
}

// Reporter receives information about the stems found in a glyph.
// The flag curved is set if at least one edge of a stem lies on a curve.
type Reporter interface {
	// GlyphExtremes is called once per glyph with the vertical extent of
	// the outline.
	GlyphExtremes(top, bottom float64)

	// StemExtremes is called for every horizontal stem, with the positions
	// of its two edges.
	StemExtremes(top, bottom float64, curved bool)

	// HStem is called for every horizontal stem.
	HStem(low, high float64, curved bool)

	// VStem is called for every vertical stem.
	VStem(low, high float64, curved bool)
}

var (
	// ErrInvalidOutline indicates a glyph outline which cannot be processed.
	ErrInvalidOutline = errors.New("invalid glyph outline")

	// ErrIncompatible is returned by [Merge] if the outlines of the master
	// glyphs do not have the same structure.
	ErrIncompatible = errors.New("incompatible glyph outlines")
)

// Glyph computes stem hints for a glyph.
//
// Existing hints of g are kept and extended.  The argument g is not
// modified.  If rep is not nil, the stems found in the glyph are reported
// before the hints are selected.
func Glyph(info *fontinfo.FontInfo, g *bez.Glyph, opt *Options, rep Reporter) (*bez.Glyph, error) {
	if opt == nil {
		opt = &Options{}
	}
	err := checkOutline(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}

	res := g.Clone()
	if opt.AllowEdit {
		removeZeroLines(res)
	}
	initial := res.AllHints()
	res.Hints = nil
	for i := range res.Cmds {
		res.Cmds[i].NewHints = nil
	}

	segs := segments(res)
	hEdges, vEdges := findEdges(segs)

	maxWidth := float64(info.OrigEmSqUnits) / 4
	if maxWidth <= 0 {
		maxWidth = 250
	}
	hStems := pairEdges(hEdges, maxWidth, false)
	vStems := pairEdges(vEdges, maxWidth, true)

	if rep != nil {
		if !res.IsEmpty() {
			ext := res.Extent()
			rep.GlyphExtremes(ext.URy, ext.LLy)
		}
		for _, s := range hStems {
			rep.StemExtremes(s.high, s.low, s.curved)
			rep.HStem(s.low, s.high, s.curved)
		}
		for _, s := range vStems {
			rep.VStem(s.low, s.high, s.curved)
		}
	}

	sel := &selector{
		info:    info,
		initial: initial,
	}
	hHints, hRejected := sel.choose(hStems, false)
	vHints, vRejected := sel.choose(vStems, true)

	res.Hints = append(hHints, vHints...)
	if opt.AllowHintSub {
		substitute(res, append(hRejected, vRejected...))
	}

	counterHints(info, res)

	if info.FlexOK {
		markFlex(res)
	}
	if opt.RoundCoords {
		res.Round()
	}
	return res, nil
}

// checkOutline verifies the structure of the drawing commands.
func checkOutline(g *bez.Glyph) error {
	hasMoveTo := false
	for i, cmd := range g.Cmds {
		var n int
		switch cmd.Op {
		case bez.CmdMoveTo, bez.CmdLineTo:
			n = 2
		case bez.CmdCurveTo:
			n = 6
		case bez.CmdClosePath:
			n = 0
		default:
			return fmt.Errorf("element %d: %w: unknown operator %d", i+1, ErrInvalidOutline, cmd.Op)
		}
		if len(cmd.Args) != n {
			return fmt.Errorf("element %d: %w: %s needs %d arguments", i+1, ErrInvalidOutline, cmd.Op, n)
		}
		if cmd.Op == bez.CmdMoveTo {
			hasMoveTo = true
		} else if !hasMoveTo {
			return fmt.Errorf("element %d: %w: %s before moveto", i+1, ErrInvalidOutline, cmd.Op)
		}
	}
	return nil
}

// removeZeroLines removes line segments which do not move the current point.
func removeZeroLines(g *bez.Glyph) {
	var x, y, startX, startY float64
	cmds := g.Cmds[:0]
	for _, cmd := range g.Cmds {
		switch cmd.Op {
		case bez.CmdMoveTo:
			x, y = cmd.End()
			startX, startY = x, y
		case bez.CmdLineTo:
			nx, ny := cmd.End()
			if nx == x && ny == y && len(cmd.NewHints) == 0 {
				continue
			}
			x, y = nx, ny
		case bez.CmdCurveTo:
			x, y = cmd.End()
		case bez.CmdClosePath:
			x, y = startX, startY
		}
		cmds = append(cmds, cmd)
	}
	g.Cmds = slices.Clip(cmds)
}

// counterHints converts three equal-width stems into a stem3 hint for the
// glyphs listed as counter glyphs.
func counterHints(info *fontinfo.FontInfo, g *bez.Glyph) {
	apply := func(names []string, from, to bez.HintType) {
		if !slices.Contains(names, g.Name) {
			return
		}
		var idx []int
		for i, h := range g.Hints {
			if h.Type == from {
				idx = append(idx, i)
			}
		}
		if len(idx) != 3 {
			return
		}
		for _, i := range idx {
			g.Hints[i].Type = to
		}
	}
	apply(info.HCounterChars, bez.HStem, bez.HStem3)
	apply(info.VCounterChars, bez.VStem, bez.VStem3)
}
