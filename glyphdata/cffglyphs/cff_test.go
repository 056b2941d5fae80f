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

package cffglyphs

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/glyphdata"
	"seehuhn.de/go/autohint/internal/samplefont"
)

func TestSimple(t *testing.T) {
	info, err := samplefont.OpenType(samplefont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	f, err := New(info)
	if err != nil {
		t.Fatal(err)
	}

	if f.IsCID() {
		t.Error("simple font reported as CID-keyed")
	}
	if f.NumFontDicts() != 1 || f.FontDictIndex("H") != 0 {
		t.Error("wrong font dicts")
	}
	if f.UnitsPerEm() != int(info.UnitsPerEm) {
		t.Errorf("wrong units per em %d", f.UnitsPerEm())
	}
	if len(f.GlyphList()) != info.NumGlyphs() {
		t.Errorf("wrong glyph list length %d", len(f.GlyphList()))
	}
	if len(f.Private(0).BlueValues) == 0 {
		t.Error("missing alignment zones")
	}
	if f.Private(7) != nil {
		t.Error("invalid private dict index accepted")
	}

	g, err := f.Glyph("H", false)
	if err != nil {
		t.Fatal(err)
	}
	if g.IsEmpty() || g.HasHints() {
		t.Errorf("unexpected glyph %v", g)
	}

	_, err = f.Glyph("no-such-glyph", false)
	if !errors.Is(err, glyphdata.ErrUnknownGlyph) {
		t.Errorf("expected ErrUnknownGlyph, got %v", err)
	}
}

func TestCID(t *testing.T) {
	info, err := samplefont.OpenTypeCID(samplefont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	f, err := New(info)
	if err != nil {
		t.Fatal(err)
	}

	if !f.IsCID() {
		t.Error("CID-keyed font not recognised")
	}
	names := f.GlyphList()
	if names[1] != "cid00001" {
		t.Errorf("wrong glyph name %q", names[1])
	}
	if f.NumFontDicts() != 2 || f.FontDictIndex(names[1]) != 1 || f.FontDictIndex(names[2]) != 0 {
		t.Error("wrong font dict selection")
	}
}

func TestUpdateSave(t *testing.T) {
	info, err := samplefont.OpenType(samplefont.Bold)
	if err != nil {
		t.Fatal(err)
	}
	f, err := New(info)
	if err != nil {
		t.Fatal(err)
	}

	g, err := f.Glyph("I", false)
	if err != nil {
		t.Fatal(err)
	}
	ext := g.Extent()
	g.Hints = []bez.Hint{
		{Type: bez.HStem, Low: ext.LLy, High: ext.LLy + 20},
		{Type: bez.VStem, Low: ext.LLx, High: ext.URx},
	}
	err = f.Update("I", g)
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasHints("I") {
		t.Fatal("hints were not stored")
	}

	for _, ext := range []string{".otf", ".cff"} {
		fname := filepath.Join(t.TempDir(), "out"+ext)
		if ext == ".otf" {
			err = f.Save(fname)
		} else {
			bare := &Font{bare: info.AsCFF(), outlines: f.outlines}
			err = bare.Save(fname)
		}
		if err != nil {
			t.Fatal(err)
		}

		tp, err := glyphdata.Detect(fname)
		if err != nil {
			t.Fatal(err)
		}
		f2, err := Open(fname, tp)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(f2.FontName(), "Go") {
			t.Errorf("%s: wrong font name %q", ext, f2.FontName())
		}

		g2, err := f2.Glyph("I", true)
		if err != nil {
			t.Fatal(err)
		}
		h, v := glyphdata.Stems(g2)
		wantH, wantV := glyphdata.Stems(g)
		if d := cmp.Diff(wantH, h); d != "" {
			t.Errorf("%s: wrong hstems (-want +got):\n%s", ext, d)
		}
		if d := cmp.Diff(wantV, v); d != "" {
			t.Errorf("%s: wrong vstems (-want +got):\n%s", ext, d)
		}
	}
}

func TestReadCFF(t *testing.T) {
	info, err := samplefont.OpenType(samplefont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	bare := info.AsCFF()
	buf := &bytes.Buffer{}
	err = bare.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	f, err := ReadCFF(buf)
	if err != nil {
		t.Fatal(err)
	}
	if f.FontName() != bare.FontInfo.FontName {
		t.Errorf("wrong font name %q", f.FontName())
	}
	if len(f.GlyphList()) != len(bare.Outlines.Glyphs) {
		t.Errorf("wrong number of glyphs %d", len(f.GlyphList()))
	}
	for i, name := range f.GlyphList() {
		if want := bare.Outlines.Glyphs[i].Name; name != want {
			t.Errorf("glyph %d: got name %q, want %q", i, name, want)
		}
	}

	g, err := f.Glyph("H", false)
	if err != nil {
		t.Fatal(err)
	}
	if g.IsEmpty() {
		t.Error("empty outline for H")
	}

	_, err = ReadCFF(bytes.NewReader([]byte("not a font")))
	if err == nil {
		t.Error("malformed font accepted")
	}
}
