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
	"fmt"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/fontinfo"
)

// Merge transfers the hints of a hinted master glyph to other masters of
// the same glyph.
//
// The hint edges are located using the element numbers recorded in the
// hints of base, so all glyphs must have the same sequence of drawing
// operations.  Hints without element numbers are copied unchanged.  Flex
// marks are copied as well, if info allows flex.
func Merge(info *fontinfo.FontInfo, base *bez.Glyph, others []*bez.Glyph) ([]*bez.Glyph, error) {
	res := make([]*bez.Glyph, len(others))
	for k, other := range others {
		if len(other.Cmds) != len(base.Cmds) {
			return nil, fmt.Errorf("%s: %w: %d vs. %d elements",
				other.Name, ErrIncompatible, len(base.Cmds), len(other.Cmds))
		}
		for i := range base.Cmds {
			if base.Cmds[i].Op != other.Cmds[i].Op {
				return nil, fmt.Errorf("%s: %w: element %d is %s instead of %s",
					other.Name, ErrIncompatible, i+1, other.Cmds[i].Op, base.Cmds[i].Op)
			}
		}

		g := other.Clone()
		g.Hints = transfer(g, base.Hints)
		for i := range g.Cmds {
			g.Cmds[i].NewHints = transfer(g, base.Cmds[i].NewHints)
			g.Cmds[i].Flex = info.FlexOK && base.Cmds[i].Flex
		}
		res[k] = g
	}
	return res, nil
}

func transfer(g *bez.Glyph, hints []bez.Hint) []bez.Hint {
	if len(hints) == 0 {
		return nil
	}
	res := make([]bez.Hint, len(hints))
	for i, h := range hints {
		res[i] = h
		if h.Elt0 < 1 || h.Elt1 < 1 || h.Elt0 > len(g.Cmds) || h.Elt1 > len(g.Cmds) {
			continue
		}
		x0, y0 := edgePoint(g, h.Elt0, h.Start0)
		x1, y1 := edgePoint(g, h.Elt1, h.Start1)
		if h.Type.IsVertical() {
			res[i].Low, res[i].High = x0, x1
		} else {
			res[i].Low, res[i].High = y0, y1
		}
		if res[i].Low > res[i].High {
			res[i].Low, res[i].High = res[i].High, res[i].Low
		}
	}
	return res
}
