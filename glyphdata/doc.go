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

// Package glyphdata provides access to the glyph outlines of font files,
// for reading glyphs in bez form and for writing back hinted glyphs.
//
// The font formats are identified by the [Type] enumeration.  Each loadable
// format has its own subpackage which implements the [Font] interface:
// OpenType and bare CFF fonts are handled by the cffglyphs package,
// Type 1 fonts in PFA or PFB format by the type1glyphs package.
package glyphdata
