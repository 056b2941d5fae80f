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
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Read parses a glyph in bez format.
//
// Besides the absolute drawing commands written by [Write], the relative
// commands "rmt", "rdt" and "rct" and the long form of flex ("preflx1",
// "preflx2a", "flxa" with 17 arguments) are understood.
func Read(r io.Reader) (*Glyph, error) {
	p := &bezParser{
		g: &Glyph{},
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		line := s.Text()

		var comment string
		if idx := strings.IndexByte(line, '%'); idx >= 0 {
			comment = strings.TrimSpace(line[idx+1:])
			line = line[:idx]
		}
		if p.line == 1 && strings.TrimSpace(line) == "" && comment != "" {
			p.g.Name = comment
			continue
		}

		for _, tok := range strings.Fields(line) {
			err := p.token(tok, comment)
			if err != nil {
				return nil, err
			}
		}
		if p.done {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(p.stack) > 0 {
		return nil, p.errorf("%d unused operands at end of glyph", len(p.stack))
	}
	if p.inSubr || p.pending != nil {
		return nil, p.errorf("unterminated hint substitution")
	}
	return p.g, nil
}

type bezParser struct {
	g     *Glyph
	line  int
	stack []float64
	done  bool

	inSubr  bool
	subr    []Hint
	pending []Hint

	inFlex    bool
	startX    float64
	startY    float64
	curX      float64
	curY      float64
	hasMoveTo bool
}

func (p *bezParser) token(tok, comment string) error {
	if x, err := strconv.ParseFloat(tok, 64); err == nil {
		p.stack = append(p.stack, x)
		return nil
	}

	switch tok {
	case "sc", "id", "snc", "enc", "preflx2a":
		// no-ops
	case "ed":
		p.done = true
	case "preflx1":
		p.inFlex = true

	case "rb", "rv", "ry", "rm":
		args, err := p.pop(2, tok)
		if err != nil {
			return err
		}
		h := Hint{
			Type: HintType(tok[1]),
			Low:  args[0],
			High: args[0] + args[1],
		}
		fields := strings.Fields(comment)
		if len(fields) == 2 {
			h.Elt0, _ = strconv.Atoi(fields[0])
			h.Elt1, _ = strconv.Atoi(fields[1])
		}
		if p.inSubr {
			p.subr = append(p.subr, h)
		} else {
			p.g.Hints = append(p.g.Hints, h)
		}

	case "beginsubr":
		if p.inSubr {
			return p.errorf("nested beginsubr")
		}
		p.inSubr = true
		p.subr = []Hint{}
	case "endsubr":
		if !p.inSubr {
			return p.errorf("endsubr without beginsubr")
		}
		p.inSubr = false
	case "newcolors":
		if p.subr == nil {
			return p.errorf("newcolors without hint set")
		}
		p.pending = p.subr
		p.subr = nil

	case "mt", "dt", "ct":
		op := map[string]CommandType{"mt": CmdMoveTo, "dt": CmdLineTo, "ct": CmdCurveTo}[tok]
		args, err := p.pop(op.numArgs(), tok)
		if err != nil {
			return err
		}
		return p.emit(Command{Op: op, Args: args})

	case "rmt", "rdt", "rct":
		op := map[string]CommandType{"rmt": CmdMoveTo, "rdt": CmdLineTo, "rct": CmdCurveTo}[tok]
		args, err := p.pop(op.numArgs(), tok)
		if err != nil {
			return err
		}
		if p.inFlex {
			// the reference points of the flex preamble are not part of
			// the outline
			return nil
		}
		x, y := p.curX, p.curY
		for i := 0; i < len(args); i += 2 {
			x += args[i]
			y += args[i+1]
			args[i], args[i+1] = x, y
		}
		return p.emit(Command{Op: op, Args: args})

	case "cp":
		if len(p.stack) > 0 {
			return p.errorf("unexpected operands for cp")
		}
		return p.emit(Command{Op: CmdClosePath})

	case "flxa":
		n := len(p.stack)
		if n != 12 && n != 17 {
			return p.errorf("flxa needs 12 or 17 operands, got %d", n)
		}
		args := p.stack[:12]
		p.stack = nil
		p.inFlex = false
		err := p.emit(Command{Op: CmdCurveTo, Args: append([]float64(nil), args[:6]...), Flex: true})
		if err != nil {
			return err
		}
		return p.emit(Command{Op: CmdCurveTo, Args: append([]float64(nil), args[6:]...), Flex: true})

	default:
		return p.errorf("unknown operator %q", tok)
	}
	return nil
}

func (p *bezParser) emit(cmd Command) error {
	if cmd.Op != CmdMoveTo && !p.hasMoveTo {
		return p.errorf("%s before first mt", cmd.Op)
	}
	if p.pending != nil {
		cmd.NewHints = p.pending
		p.pending = nil
	}
	switch cmd.Op {
	case CmdMoveTo:
		p.hasMoveTo = true
		p.startX, p.startY = cmd.End()
		p.curX, p.curY = p.startX, p.startY
	case CmdClosePath:
		p.curX, p.curY = p.startX, p.startY
	default:
		p.curX, p.curY = cmd.End()
	}
	p.g.Cmds = append(p.g.Cmds, cmd)
	return nil
}

func (p *bezParser) pop(n int, op string) ([]float64, error) {
	if len(p.stack) != n {
		return nil, p.errorf("%s needs %d operands, got %d", op, n, len(p.stack))
	}
	args := append([]float64(nil), p.stack...)
	p.stack = p.stack[:0]
	return args, nil
}
