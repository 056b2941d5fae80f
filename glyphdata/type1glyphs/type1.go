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

// Package type1glyphs implements glyph access for Type 1 fonts.
package type1glyphs

import (
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/glyphdata"
)

// Font gives access to the glyphs of a Type 1 font.
type Font struct {
	font   *type1.Font
	format glyphdata.Type
	names  []string
}

var _ glyphdata.Font = (*Font)(nil)

// Open reads a Type 1 font file of type [glyphdata.PFA] or [glyphdata.PFB].
// The font is written back in the same format.
func Open(fname string, tp glyphdata.Type) (*Font, error) {
	if tp != glyphdata.PFA && tp != glyphdata.PFB {
		return nil, fmt.Errorf("%s: %w", tp, glyphdata.ErrNotSupported)
	}

	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return Read(fd, tp)
}

// Read reads a Type 1 font.
func Read(r io.Reader, tp glyphdata.Type) (*Font, error) {
	psFont, err := type1.Read(r)
	if err != nil {
		return nil, err
	}
	return New(psFont, tp), nil
}

// New wraps a Type 1 font.  The argument tp determines the file format
// used by [Font.Save].
func New(psFont *type1.Font, tp glyphdata.Type) *Font {
	names := make([]string, 0, len(psFont.Glyphs))
	for name := range psFont.Glyphs {
		if name != ".notdef" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if _, ok := psFont.Glyphs[".notdef"]; ok {
		names = append([]string{".notdef"}, names...)
	}

	return &Font{
		font:   psFont,
		format: tp,
		names:  names,
	}
}

// FontName implements the [glyphdata.Font] interface.
func (f *Font) FontName() string {
	return f.font.FontInfo.FontName
}

// UnitsPerEm implements the [glyphdata.Font] interface.
func (f *Font) UnitsPerEm() int {
	if m := f.font.FontInfo.FontMatrix; m[0] != 0 {
		return int(math.Round(1 / m[0]))
	}
	return 1000
}

// GlyphList implements the [glyphdata.Font] interface.
// The glyphs are sorted by name, with ".notdef" first.
func (f *Font) GlyphList() []string {
	return f.names
}

// IsCID implements the [glyphdata.Font] interface.
func (f *Font) IsCID() bool {
	return false
}

// NumFontDicts implements the [glyphdata.Font] interface.
func (f *Font) NumFontDicts() int {
	return 1
}

// FontDictIndex implements the [glyphdata.Font] interface.
func (f *Font) FontDictIndex(string) int {
	return 0
}

// Private implements the [glyphdata.Font] interface.
func (f *Font) Private(fd int) *type1.PrivateDict {
	if fd != 0 {
		return nil
	}
	return f.font.Private
}

// Glyph implements the [glyphdata.Font] interface.
func (f *Font) Glyph(name string, readHints bool) (*bez.Glyph, error) {
	psGlyph, ok := f.font.Glyphs[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, glyphdata.ErrUnknownGlyph)
	}

	g := glyphdata.FromPath(name, psGlyph.Path())
	if readHints {
		glyphdata.SetHints(g,
			glyphdata.PairsFromStems(psGlyph.HStem),
			glyphdata.PairsFromStems(psGlyph.VStem))
	}
	return g, nil
}

// HasHints implements the [glyphdata.Font] interface.
func (f *Font) HasHints(name string) bool {
	psGlyph, ok := f.font.Glyphs[name]
	if !ok {
		return false
	}
	return len(psGlyph.HStem) > 1 || len(psGlyph.VStem) > 1
}

// Update implements the [glyphdata.Font] interface.
func (f *Font) Update(name string, g *bez.Glyph) error {
	old, ok := f.font.Glyphs[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, glyphdata.ErrUnknownGlyph)
	}

	newGlyph := &type1.Glyph{
		WidthX: old.WidthX,
		WidthY: old.WidthY,
	}
	glyphdata.Draw(g, newGlyph)
	h, v := glyphdata.Stems(g)
	newGlyph.HStem = glyphdata.StemsFromPairs[funit.Int16](h)
	newGlyph.VStem = glyphdata.StemsFromPairs[funit.Int16](v)
	f.font.Glyphs[name] = newGlyph
	return nil
}

// Save implements the [glyphdata.Font] interface.
func (f *Font) Save(fname string) error {
	opt := &type1.WriterOptions{Format: type1.FormatPFA}
	if f.format == glyphdata.PFB {
		opt.Format = type1.FormatPFB
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = f.font.Write(fd, opt)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
