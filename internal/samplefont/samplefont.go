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

// Package samplefont provides fonts for use in tests.
//
// The fonts are derived from the Go font family.  The "glyf" outlines of
// these fonts are converted to CFF or Type 1 outlines, and simple alignment
// zones are derived from the glyph bounding boxes.
//
// Do not use this package in production code.
package samplefont

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// Font identifies one of the sample fonts.
type Font int

// These are the available sample fonts.
const (
	Regular Font = iota
	Bold
	Italic
	Mono
)

var ttf = map[Font][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
	Mono:    gomono.TTF,
}

// TrueType returns the font with its original "glyf" outlines.
func TrueType(f Font) (*sfnt.Font, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("samplefont: unknown font %d", f)
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("samplefont: %w", err)
	}
	info.EnsureGlyphNames()
	return info, nil
}

// OpenType returns the font with CFF outlines, not using CIDFont operators.
func OpenType(f Font) (*sfnt.Font, error) {
	info, err := TrueType(f)
	if err != nil {
		return nil, err
	}

	private, err := makePrivate(info)
	if err != nil {
		return nil, err
	}

	origOutlines := info.Outlines.(*glyf.Outlines)
	encoding := make([]glyph.ID, 256)
	rev := make(map[string]glyph.ID)
	for i := range origOutlines.Glyphs {
		rev[info.GlyphName(glyph.ID(i))] = glyph.ID(i)
	}
	for i, name := range psenc.StandardEncoding {
		encoding[i] = rev[name]
	}

	newOutlines := &cff.Outlines{
		Private:  []*type1.PrivateDict{private},
		Encoding: encoding,
		FDSelect: func(glyph.ID) int { return 0 },
	}
	for i, origGlyph := range origOutlines.Glyphs {
		gid := glyph.ID(i)
		newGlyph := cff.NewGlyph(info.GlyphName(gid), info.GlyphWidth(gid))
		if origGlyph != nil {
			for cmd, pts := range origOutlines.Path(gid).ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					newGlyph.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					newGlyph.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					newGlyph.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				}
			}
		}
		newOutlines.Glyphs = append(newOutlines.Glyphs, newGlyph)
	}
	info.Outlines = newOutlines

	return info, nil
}

// OpenTypeCID returns the font with CFF outlines and CIDFont operators.
// Even and odd glyphs use different private dictionaries.
func OpenTypeCID(f Font) (*sfnt.Font, error) {
	info, err := OpenType(f)
	if err != nil {
		return nil, err
	}

	outlines := info.Outlines.(*cff.Outlines)
	outlines.Encoding = nil
	outlines.ROS = &cid.SystemInfo{
		Registry:   "Seehuhn",
		Ordering:   "Sonderbar",
		Supplement: 0,
	}
	outlines.GIDToCID = make([]cid.CID, len(outlines.Glyphs))
	for i := range outlines.GIDToCID {
		outlines.GIDToCID[i] = cid.CID(i)
	}

	p := outlines.Private[0]
	p2 := *p
	outlines.Private = []*type1.PrivateDict{p, &p2}
	outlines.FDSelect = func(gid glyph.ID) int {
		return int(gid % 2)
	}
	outlines.FontMatrices = []matrix.Matrix{matrix.Identity, matrix.Identity}

	return info, nil
}

// Type1 returns the font as a Type 1 font.
func Type1(f Font) (*type1.Font, error) {
	info, err := TrueType(f)
	if err != nil {
		return nil, err
	}

	private, err := makePrivate(info)
	if err != nil {
		return nil, err
	}

	origOutlines := info.Outlines.(*glyf.Outlines)
	glyphs := make(map[string]*type1.Glyph)
	for i, origGlyph := range origOutlines.Glyphs {
		gid := glyph.ID(i)
		newGlyph := &type1.Glyph{
			WidthX: info.GlyphWidth(gid),
		}
		if origGlyph != nil {
			for cmd, pts := range origOutlines.Path(gid).ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					newGlyph.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					newGlyph.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					newGlyph.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					newGlyph.ClosePath()
				}
			}
		}
		glyphs[info.GlyphName(gid)] = newGlyph
	}

	encoding := make([]string, 256)
	for i, name := range psenc.StandardEncoding {
		if _, ok := glyphs[name]; ok {
			encoding[i] = name
		} else {
			encoding[i] = ".notdef"
		}
	}

	res := &type1.Font{
		FontInfo: info.GetFontInfo(),
		Outlines: &type1.Outlines{
			Glyphs:   glyphs,
			Private:  private,
			Encoding: encoding,
		},
	}
	return res, nil
}

// makePrivate derives alignment zones from the glyph bounding boxes.
func makePrivate(info *sfnt.Font) (*type1.PrivateDict, error) {
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}

	type span struct {
		lo, hi funit.Int16
		valid  bool
	}
	add := func(s *span, v funit.Int16) {
		if !s.valid || v < s.lo {
			s.lo = v
		}
		if !s.valid || v > s.hi {
			s.hi = v
		}
		s.valid = true
	}

	var baseline, capHeight, xHeight, descender span
	for c := 'A'; c <= 'Z'; c++ {
		ext := info.GlyphBBox(cmap.Lookup(c))
		if ext.IsZero() {
			continue
		}
		add(&capHeight, ext.URy)
		if c != 'Q' && c != 'J' {
			add(&baseline, ext.LLy)
		}
	}
	for _, c := range "xvwz" {
		ext := info.GlyphBBox(cmap.Lookup(c))
		if !ext.IsZero() {
			add(&xHeight, ext.URy)
		}
	}
	for _, c := range "pq" {
		ext := info.GlyphBBox(cmap.Lookup(c))
		if !ext.IsZero() {
			add(&descender, ext.LLy)
		}
	}

	if !baseline.valid || !capHeight.valid {
		return nil, fmt.Errorf("samplefont: cannot determine alignment zones")
	}
	blues := []funit.Int16{baseline.lo, baseline.hi}
	if xHeight.valid && xHeight.hi < capHeight.lo {
		blues = append(blues, xHeight.lo, xHeight.hi)
	}
	blues = append(blues, capHeight.lo, capHeight.hi)

	private := &type1.PrivateDict{
		BlueValues: blues,
		BlueScale:  0.039625,
		BlueShift:  7,
		BlueFuzz:   1,
	}
	if descender.valid {
		private.OtherBlues = []funit.Int16{descender.lo, descender.hi}
	}
	return private, nil
}

// Sample describes a font written by [WriteTree].
type Sample struct {
	Family string
	Style  string
	Font   Font
	CID    bool
}

// Samples lists the fonts written by [WriteTree].
var Samples = []Sample{
	{Family: "GoSans", Style: "Regular", Font: Regular},
	{Family: "GoSans", Style: "Bold", Font: Bold},
	{Family: "GoSans", Style: "Italic", Font: Italic},
	{Family: "GoMono", Style: "Regular", Font: Mono},
	{Family: "GoSansCID", Style: "Regular", Font: Regular, CID: true},
}

// WriteTree writes the sample fonts as "<dir>/<family>/<style>/font.otf"
// and returns the file names.
func WriteTree(dir string) ([]string, error) {
	var res []string
	for _, s := range Samples {
		var info *sfnt.Font
		var err error
		if s.CID {
			info, err = OpenTypeCID(s.Font)
		} else {
			info, err = OpenType(s.Font)
		}
		if err != nil {
			return nil, err
		}

		fname := filepath.Join(dir, s.Family, s.Style, "font.otf")
		err = WriteOTF(fname, info)
		if err != nil {
			return nil, err
		}
		res = append(res, fname)
	}
	return res, nil
}

// WriteOTF writes an OpenType font to a file, creating parent directories
// as needed.
func WriteOTF(fname string, info *sfnt.Font) error {
	err := os.MkdirAll(filepath.Dir(fname), 0o755)
	if err != nil {
		return err
	}
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = info.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// WriteType1 writes a Type 1 font in PFB format if pfb is true, and in PFA
// format otherwise.
func WriteType1(fname string, f *type1.Font, pfb bool) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	opt := &type1.WriterOptions{Format: type1.FormatPFA}
	if pfb {
		opt.Format = type1.FormatPFB
	}
	err = f.Write(fd, opt)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
