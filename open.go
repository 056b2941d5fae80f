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

import (
	"seehuhn.de/go/autohint/glyphdata"
	"seehuhn.de/go/autohint/glyphdata/cffglyphs"
	"seehuhn.de/go/autohint/glyphdata/type1glyphs"
)

// openFont opens a font file of any supported format.
func openFont(fname string) (glyphdata.Font, error) {
	tp, err := glyphdata.Detect(fname)
	if err != nil {
		return nil, &FontParseError{Path: fname, Msg: "cannot read font", Err: err}
	}

	var font glyphdata.Font
	switch tp {
	case glyphdata.OTF, glyphdata.CFF:
		font, err = cffglyphs.Open(fname, tp)
	case glyphdata.PFA, glyphdata.PFB:
		font, err = type1glyphs.Open(fname, tp)
	case glyphdata.Unknown:
		return nil, &FontParseError{Path: fname, Msg: "not a supported font format"}
	default:
		return nil, &FontParseError{
			Path: fname,
			Msg:  tp.String() + " fonts cannot be hinted",
			Err:  glyphdata.ErrNotSupported,
		}
	}
	if err != nil {
		return nil, &FontParseError{Path: fname, Msg: "malformed " + tp.String() + " font", Err: err}
	}
	return font, nil
}
