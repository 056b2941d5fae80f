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

package bez

import (
	"bytes"
	"io"
	"math"
	"slices"
	"strconv"
)

// WriterOptions control the output of [Write].
type WriterOptions struct {
	// Decimal allows fractional coordinates.  If this is false, all
	// coordinates are rounded to integers.
	Decimal bool
}

// Write writes the glyph in bez format.
func Write(w io.Writer, g *Glyph, opt *WriterOptions) error {
	if opt == nil {
		opt = &WriterOptions{}
	}
	bw := &bezWriter{decimal: opt.Decimal}

	bw.buf.WriteString("% ")
	bw.buf.WriteString(g.Name)
	bw.buf.WriteByte('\n')

	var prev []byte
	if len(g.Hints) > 0 && (len(g.Cmds) == 0 || len(g.Cmds[0].NewHints) == 0) {
		prev = bw.hintBlock(g.Hints)
		bw.buf.Write(prev)
	}

	bw.buf.WriteString("sc\n")
	for i := 0; i < len(g.Cmds); i++ {
		cmd := g.Cmds[i]
		if len(cmd.NewHints) > 0 {
			block := bw.hintBlock(cmd.NewHints)
			if !bytes.Equal(block, prev) {
				bw.buf.WriteString("beginsubr snc\n")
				bw.buf.Write(block)
				bw.buf.WriteString("endsubr enc\nnewcolors\n")
				prev = block
			}
		}

		if cmd.Flex && cmd.Op == CmdCurveTo && i+1 < len(g.Cmds) &&
			g.Cmds[i+1].Flex && g.Cmds[i+1].Op == CmdCurveTo {
			bw.numbers(cmd.Args)
			bw.numbers(g.Cmds[i+1].Args)
			bw.buf.WriteString("flxa\n")
			i++
			continue
		}

		bw.numbers(cmd.Args)
		bw.buf.WriteString(cmd.Op.String())
		bw.buf.WriteByte('\n')
	}
	bw.buf.WriteString("ed\n")

	_, err := w.Write(bw.buf.Bytes())
	return err
}

// String returns the bez representation of the glyph, with fractional
// coordinates preserved.
func (g *Glyph) String() string {
	buf := &bytes.Buffer{}
	_ = Write(buf, g, &WriterOptions{Decimal: true})
	return buf.String()
}

type bezWriter struct {
	buf     bytes.Buffer
	decimal bool
}

func (bw *bezWriter) numbers(args []float64) {
	for _, x := range args {
		bw.buf.WriteString(bw.format(x))
		bw.buf.WriteByte(' ')
	}
}

func (bw *bezWriter) format(x float64) string {
	if !bw.decimal || x == math.Trunc(x) {
		return strconv.Itoa(int(math.Round(x)))
	}
	return strconv.FormatFloat(math.Round(x*100)/100, 'f', 2, 64)
}

// hintBlock formats a hint set.  Hints are ordered by type (ry, rv, rm, rb)
// and then by their lower edge.
func (bw *bezWriter) hintBlock(hints []Hint) []byte {
	hh := slices.Clone(hints)
	slices.SortStableFunc(hh, func(a, b Hint) int {
		if a.Type != b.Type {
			return int(b.Type) - int(a.Type)
		}
		switch {
		case min(a.Low, a.High) < min(b.Low, b.High):
			return -1
		case min(a.Low, a.High) > min(b.Low, b.High):
			return 1
		}
		return 0
	})

	var res []byte
	for _, h := range hh {
		res = append(res, bw.format(h.Low)...)
		res = append(res, ' ')
		res = append(res, bw.format(h.Width())...)
		res = append(res, ' ')
		res = append(res, h.Type.String()...)
		res = append(res, " % "...)
		res = strconv.AppendInt(res, int64(h.Elt0), 10)
		res = append(res, ' ')
		res = strconv.AppendInt(res, int64(h.Elt1), 10)
		res = append(res, '\n')
	}
	return res
}
