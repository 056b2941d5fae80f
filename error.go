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

package autohint

// FontParseError indicates that a font file could not be used.
type FontParseError struct {
	Path string
	Msg  string
	Err  error
}

func (err *FontParseError) Error() string {
	msg := err.Msg
	if err.Path != "" {
		msg = err.Path + ": " + msg
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *FontParseError) Unwrap() error {
	return err.Err
}

// HintError indicates that the outline of a glyph could not be hinted.
type HintError struct {
	Glyph string
	Err   error
}

func (err *HintError) Error() string {
	return err.Glyph + ": failure in processing outline data"
}

func (err *HintError) Unwrap() error {
	return err.Err
}
