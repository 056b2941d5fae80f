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
	"fmt"
	"strconv"
)

// SyntaxError indicates malformed bez data.
type SyntaxError struct {
	Line   int
	Reason string
}

func (err *SyntaxError) Error() string {
	return "bez: line " + strconv.Itoa(err.Line) + ": " + err.Reason
}

func (p *bezParser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Line:   p.line,
		Reason: fmt.Sprintf(format, args...),
	}
}
