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

	"seehuhn.de/go/autohint/bez"
)

// maxFlexDepth is the largest deviation from a straight line which can be
// expressed by a flex curve pair.
const maxFlexDepth = 20

// markFlex marks pairs of curves which form a shallow bump or dent along a
// horizontal or vertical line.
func markFlex(g *bez.Glyph) {
	for i := 0; i+1 < len(g.Cmds); i++ {
		a, b := g.Cmds[i], g.Cmds[i+1]
		if a.Op != bez.CmdCurveTo || b.Op != bez.CmdCurveTo || a.Flex || b.Flex {
			continue
		}
		x0, y0 := g.StartPoint(i)
		if isFlex(x0, y0, a.Args, b.Args) || isFlex(y0, x0, swapXY(a.Args), swapXY(b.Args)) {
			g.Cmds[i].Flex = true
			g.Cmds[i+1].Flex = true
			i++
		}
	}
}

// isFlex checks for a flex pair along a horizontal line.
func isFlex(x0, y0 float64, a, b []float64) bool {
	xm, ym := a[4], a[5]
	x1, y1 := b[4], b[5]

	if y1 != y0 {
		return false
	}
	depth := math.Abs(ym - y0)
	if depth == 0 || depth > maxFlexDepth {
		return false
	}
	if (xm-x0)*(x1-xm) <= 0 {
		return false
	}
	if math.Abs(x1-x0) < 3*depth {
		return false
	}
	// the joint must be an extremum with a horizontal tangent
	return a[3] == ym && b[1] == ym
}

func swapXY(args []float64) []float64 {
	res := make([]float64, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		res[i], res[i+1] = args[i+1], args[i]
	}
	return res
}
