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

package glyphdata

import (
	"errors"

	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/autohint/bez"
)

// Font gives access to the glyphs of a font file.
//
// Glyphs are identified by name.  For CID-keyed fonts, the names have the
// form "cid01234".
type Font interface {
	// FontName returns the PostScript name of the font.
	FontName() string

	// UnitsPerEm returns the size of the em square in font design units.
	UnitsPerEm() int

	// GlyphList returns the glyph names in font order.
	GlyphList() []string

	// IsCID reports whether the font uses CIDFont operators.
	IsCID() bool

	// NumFontDicts returns the number of private dictionaries.
	NumFontDicts() int

	// FontDictIndex returns the index of the private dictionary used by a
	// glyph.
	FontDictIndex(name string) int

	// Private returns the private dictionary with the given index.
	Private(fd int) *type1.PrivateDict

	// Glyph returns the outline of a glyph.  If readHints is true, existing
	// stem hints of the glyph are included in the result.
	Glyph(name string, readHints bool) (*bez.Glyph, error)

	// HasHints reports whether a glyph already carries stem hints.
	HasHints(name string) bool

	// Update replaces the outline and hints of a glyph.
	Update(name string, g *bez.Glyph) error

	// Save writes the font to a file.
	Save(fname string) error
}

var (
	// ErrNotSupported is returned for font formats which are recognised
	// but cannot be processed.
	ErrNotSupported = errors.New("font format not supported")

	// ErrUnknownGlyph indicates that a glyph name is not present in the font.
	ErrUnknownGlyph = errors.New("unknown glyph")
)
