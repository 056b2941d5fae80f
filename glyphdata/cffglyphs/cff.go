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

// Package cffglyphs implements glyph access for fonts with CFF outlines,
// either wrapped in an OpenType container or as a bare CFF font program.
package cffglyphs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/glyphdata"
)

// Font gives access to the glyphs of a CFF-based font.
type Font struct {
	otf      *sfnt.Font
	bare     *cff.Font
	outlines *cff.Outlines

	fontName string
	upem     int
	names    []string
	gid      map[string]glyph.ID
}

var _ glyphdata.Font = (*Font)(nil)

// errNoCFF is returned for OpenType fonts with "glyf" outlines.
var errNoCFF = errors.New("font does not contain CFF outlines")

// Open reads a font file of type [glyphdata.OTF] or [glyphdata.CFF].
func Open(fname string, tp glyphdata.Type) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	switch tp {
	case glyphdata.OTF:
		return ReadOTF(fd)
	case glyphdata.CFF:
		return ReadCFF(fd)
	default:
		return nil, fmt.Errorf("%s: %w", tp, glyphdata.ErrNotSupported)
	}
}

// ReadOTF reads an OpenType font with CFF outlines.
func ReadOTF(r io.Reader) (*Font, error) {
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	return New(info)
}

// New wraps an OpenType font with CFF outlines.
func New(info *sfnt.Font) (*Font, error) {
	outlines, ok := info.Outlines.(*cff.Outlines)
	if !ok {
		return nil, errNoCFF
	}
	f := &Font{
		otf:      info,
		outlines: outlines,
		fontName: info.GetFontInfo().FontName,
		upem:     int(info.UnitsPerEm),
	}
	f.makeNames()
	return f, nil
}

// ReadCFF reads a bare CFF font program.
func ReadCFF(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cffFont, err := cff.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	upem := 1000
	if m := cffFont.FontInfo.FontMatrix; m[0] != 0 {
		upem = int(math.Round(1 / m[0]))
	}
	f := &Font{
		bare:     cffFont,
		outlines: cffFont.Outlines,
		fontName: cffFont.FontInfo.FontName,
		upem:     upem,
	}
	f.makeNames()
	return f, nil
}

func (f *Font) makeNames() {
	o := f.outlines
	f.names = make([]string, len(o.Glyphs))
	f.gid = make(map[string]glyph.ID, len(o.Glyphs))
	for i, g := range o.Glyphs {
		var name string
		switch {
		case o.ROS != nil && i < len(o.GIDToCID):
			name = fmt.Sprintf("cid%05d", o.GIDToCID[i])
		case g != nil && g.Name != "":
			name = g.Name
		default:
			name = fmt.Sprintf("gid%05d", i)
		}
		f.names[i] = name
		f.gid[name] = glyph.ID(i)
	}
}

// glyphName returns the name stored in the CFF glyph, if any.
func (f *Font) glyphName(gid glyph.ID) string {
	if g := f.outlines.Glyphs[gid]; g != nil {
		return g.Name
	}
	return ""
}

// FontName implements the [glyphdata.Font] interface.
func (f *Font) FontName() string {
	return f.fontName
}

// UnitsPerEm implements the [glyphdata.Font] interface.
func (f *Font) UnitsPerEm() int {
	return f.upem
}

// GlyphList implements the [glyphdata.Font] interface.
func (f *Font) GlyphList() []string {
	return f.names
}

// IsCID implements the [glyphdata.Font] interface.
func (f *Font) IsCID() bool {
	return f.outlines.ROS != nil
}

// NumFontDicts implements the [glyphdata.Font] interface.
func (f *Font) NumFontDicts() int {
	return len(f.outlines.Private)
}

// FontDictIndex implements the [glyphdata.Font] interface.
func (f *Font) FontDictIndex(name string) int {
	gid, ok := f.gid[name]
	if !ok || f.outlines.FDSelect == nil {
		return 0
	}
	return f.outlines.FDSelect(gid)
}

// Private implements the [glyphdata.Font] interface.
func (f *Font) Private(fd int) *type1.PrivateDict {
	if fd < 0 || fd >= len(f.outlines.Private) {
		return nil
	}
	return f.outlines.Private[fd]
}

// Glyph implements the [glyphdata.Font] interface.
func (f *Font) Glyph(name string, readHints bool) (*bez.Glyph, error) {
	gid, ok := f.gid[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, glyphdata.ErrUnknownGlyph)
	}

	g := glyphdata.FromPath(name, f.outlines.Path(gid))
	if cffGlyph := f.outlines.Glyphs[gid]; readHints && cffGlyph != nil {
		glyphdata.SetHints(g,
			glyphdata.PairsFromStems(cffGlyph.HStem),
			glyphdata.PairsFromStems(cffGlyph.VStem))
	}
	return g, nil
}

// HasHints implements the [glyphdata.Font] interface.
func (f *Font) HasHints(name string) bool {
	gid, ok := f.gid[name]
	if !ok {
		return false
	}
	cffGlyph := f.outlines.Glyphs[gid]
	if cffGlyph == nil {
		return false
	}
	return len(cffGlyph.HStem) > 1 || len(cffGlyph.VStem) > 1
}

// Update implements the [glyphdata.Font] interface.
//
// CFF charstrings written by this package do not use hint replacement,
// see [glyphdata.Stems].
func (f *Font) Update(name string, g *bez.Glyph) error {
	gid, ok := f.gid[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, glyphdata.ErrUnknownGlyph)
	}
	var width float64
	if old := f.outlines.Glyphs[gid]; old != nil {
		width = old.Width
	}

	newGlyph := cff.NewGlyph(f.glyphName(gid), width)
	glyphdata.Draw(g, newGlyph)
	h, v := glyphdata.Stems(g)
	newGlyph.HStem = glyphdata.StemsFromPairs[float64](h)
	newGlyph.VStem = glyphdata.StemsFromPairs[float64](v)
	f.outlines.Glyphs[gid] = newGlyph
	return nil
}

// Save implements the [glyphdata.Font] interface.
func (f *Font) Save(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}

	if f.otf != nil {
		_, err = f.otf.Write(fd)
	} else {
		err = f.bare.Write(fd)
	}
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
