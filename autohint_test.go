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
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/autohint/glyphdata"
	"seehuhn.de/go/autohint/glyphdata/cffglyphs"
	"seehuhn.de/go/autohint/glyphdata/type1glyphs"
	"seehuhn.de/go/autohint/hint"
	"seehuhn.de/go/autohint/internal/samplefont"
)

func TestParseGlyphList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"A", []string{"A"}},
		{"A, B ,C", []string{"A", "B", "C"}},
		{" a-c,,x ", []string{"a-c", "x"}},
		{"\tcid00001-cid00005\n", []string{"cid00001-cid00005"}},
	}
	for _, c := range cases {
		got := ParseGlyphList(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: wrong result (-want +got):\n%s", c.in, d)
		}
	}
}

func TestSelectGlyphs(t *testing.T) {
	font := []string{".notdef", "A", "B", "C", "D", "E"}
	cases := []struct {
		list    []string
		exclude bool
		want    []string
		warn    bool
	}{
		{nil, false, font, false},
		{[]string{"B"}, false, []string{"B"}, false},
		{[]string{"B-D"}, false, []string{"B", "C", "D"}, false},
		{[]string{"A-B-D"}, false, []string{"A", "B", "C", "D"}, false},
		{[]string{"D-B"}, false, []string{"D"}, false},
		{[]string{"E", "A"}, false, []string{"E", "A"}, false},
		{[]string{"X", "A"}, false, []string{"A"}, true},
		{[]string{"A-X", "C"}, false, []string{"C"}, true},
		{[]string{"A-C"}, true, []string{".notdef", "D", "E"}, false},
		{[]string{"X"}, false, nil, true},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		opt := NewOptions()
		opt.GlyphList = c.list
		opt.ExcludeGlyphList = c.exclude

		got := selectGlyphs(opt, font, "test.otf", logger)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%v: wrong selection (-want +got):\n%s", c.list, d)
		}
		if warned := strings.Contains(buf.String(), "level=WARN"); warned != c.warn {
			t.Errorf("%v: warning=%t, expected %t", c.list, warned, c.warn)
		}
	}
}

func TestHistogramOrder(t *testing.T) {
	h := histogram{}
	for _, item := range []struct {
		v     float64
		glyph string
	}{
		{10, "a"}, {20, "b"}, {20, "c"}, {5, "d"}, {10, "e"}, {20, "c"}, {7, "f"},
	} {
		h.add(item.v, item.glyph)
	}

	if d := cmp.Diff([]float64{20, 10, 5, 7}, h.rows()); d != "" {
		t.Errorf("wrong order (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"b", "c"}, h[20].glyphs); d != "" {
		t.Errorf("wrong glyphs (-want +got):\n%s", d)
	}
	if h[20].count != 3 {
		t.Errorf("wrong count %d", h[20].count)
	}

	fname := filepath.Join(t.TempDir(), "x.txt")
	err := h.writeFile(fname, "count\twidth\tglyphs")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want := "count\twidth\tglyphs\n3\t20\t[b c]\n2\t10\t[a e]\n1\t5\t[d]\n1\t7\t[f]\n"
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("wrong file contents (-want +got):\n%s", d)
	}
}

func TestGlyphReport(t *testing.T) {
	r := &glyphReport{mode: reportZones}
	r.GlyphExtremes(700, -10)
	r.StemExtremes(700, 650, false)
	r.StemExtremes(520, 480, true)
	r.HStem(650, 700, false)
	r.VStem(100, 180, false)
	if d := cmp.Diff([]float64{700, 700}, r.top); d != "" {
		t.Errorf("wrong tops (-want +got):\n%s", d)
	}
	if len(r.hStems) != 0 || len(r.vStems) != 0 {
		t.Error("stems recorded in zone mode")
	}

	r = &glyphReport{mode: reportStems, all: true}
	r.GlyphExtremes(700, -10)
	r.HStem(650, 700, false)
	r.VStem(100, 180, true)
	if len(r.top) != 0 {
		t.Error("extremes recorded in stem mode")
	}
	if d := cmp.Diff([]float64{50}, r.hStems); d != "" {
		t.Errorf("wrong hstems (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{80}, r.vStems); d != "" {
		t.Errorf("wrong vstems (-want +got):\n%s", d)
	}
}

func TestReportPrecedence(t *testing.T) {
	opt := NewOptions()
	opt.ReportAlignmentZones = true
	opt.ReportStemWidths = true
	if opt.reportMode() != reportZones {
		t.Error("zone report does not take precedence")
	}
}

func writeSample(t *testing.T, name string) string {
	t.Helper()
	info, err := samplefont.OpenType(samplefont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	fname := filepath.Join(t.TempDir(), name)
	err = samplefont.WriteOTF(fname, info)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func quietOptions(in, out string) *Options {
	opt := NewOptions()
	opt.InputPaths = []string{in}
	if out != "" {
		opt.OutputPaths = []string{out}
	}
	opt.HintAll = true
	opt.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return opt
}

func TestHintOTF(t *testing.T) {
	in := writeSample(t, "in.otf")
	out := filepath.Join(t.TempDir(), "out.otf")

	opt := quietOptions(in, out)
	opt.GlyphList = []string{"H", "I", "space"}
	res, err := HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	sum := res[0]
	if sum.Output != out || sum.Selected != 3 || sum.Processed != 2 || sum.Skipped() != 1 {
		t.Errorf("wrong summary %+v", sum)
	}

	f, err := cffglyphs.Open(out, glyphdata.OTF)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"H", "I"} {
		if !f.HasHints(name) {
			t.Errorf("glyph %s not hinted", name)
		}
	}
	if f.HasHints("O") {
		t.Error("unselected glyph was hinted")
	}

	// Already hinted glyphs are skipped unless HintAll is set.
	opt = quietOptions(out, filepath.Join(t.TempDir(), "out2.otf"))
	opt.HintAll = false
	opt.GlyphList = []string{"H-I"}
	res, err = HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Processed != 0 || res[0].Output != "" {
		t.Errorf("hinted glyphs were processed again: %+v", res[0])
	}
}

func TestHintType1(t *testing.T) {
	psFont, err := samplefont.Type1(samplefont.Bold)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pfb")
	err = samplefont.WriteType1(in, psFont, true)
	if err != nil {
		t.Fatal(err)
	}

	opt := quietOptions(in, "")
	opt.GlyphList = []string{"T"}
	_, err = HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}

	f, err := type1glyphs.Open(in, glyphdata.PFB)
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasHints("T") {
		t.Error("glyph T not hinted in place")
	}
}

func TestLogOnly(t *testing.T) {
	in := writeSample(t, "in.otf")
	out := filepath.Join(t.TempDir(), "out.otf")

	buf := &bytes.Buffer{}
	opt := quietOptions(in, out)
	opt.LogOnly = true
	opt.GlyphList = []string{"l"}
	opt.Logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	res, err := HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Updated != 0 {
		t.Errorf("glyphs updated in log-only mode")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written in log-only mode")
	}
	if !strings.Contains(buf.String(), "Begin hinting") {
		t.Errorf("missing log message:\n%s", buf.String())
	}
}

func TestReferenceFont(t *testing.T) {
	ref := writeSample(t, "ref.otf")

	info, err := samplefont.OpenType(samplefont.Bold)
	if err != nil {
		t.Fatal(err)
	}
	in := filepath.Join(t.TempDir(), "bold.otf")
	err = samplefont.WriteOTF(in, info)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.otf")

	opt := quietOptions(in, out)
	opt.ReferenceFont = ref
	opt.GlyphList = []string{"I", "l"}
	res, err := HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 || res[0].Path != ref || res[1].Path != in {
		t.Fatalf("wrong summaries %v", res)
	}

	f, err := cffglyphs.Open(out, glyphdata.OTF)
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasHints("I") || !f.HasHints("l") {
		t.Error("glyphs not hinted from reference")
	}
}

func TestPrintModes(t *testing.T) {
	in := writeSample(t, "in.otf")

	buf := &bytes.Buffer{}
	opt := quietOptions(in, "")
	opt.PrintDefaultFDDict = true
	opt.Stdout = buf
	_, err := HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "Showing default FDDict Values:\n") ||
		!strings.Contains(got, "\tBaselineYCoord ") {
		t.Errorf("unexpected output:\n%s", got)
	}

	buf.Reset()
	opt.PrintDefaultFDDict = false
	opt.PrintFDDictList = true
	opt.GlyphList = []string{"A", "B", "C"}
	_, err = HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	got = buf.String()
	if !strings.Contains(got, "FD0\n") || !strings.Contains(got, "3 glyphs:\nA B C\n") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestCIDFont(t *testing.T) {
	info, err := samplefont.OpenTypeCID(samplefont.Regular)
	if err != nil {
		t.Fatal(err)
	}
	in := filepath.Join(t.TempDir(), "cid.otf")
	err = samplefont.WriteOTF(in, info)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.otf")

	opt := quietOptions(in, out)
	opt.GlyphList = []string{"cid00001-cid00040"}
	res, err := HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Updated == 0 {
		t.Error("no glyphs hinted")
	}

	buf := &bytes.Buffer{}
	opt = quietOptions(in, "")
	opt.PrintFDDictList = true
	opt.Stdout = buf
	opt.GlyphList = []string{"cid00001-cid00004"}
	_, err = HintFiles(opt)
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "FD0\n") || !strings.Contains(got, "FD1\n") ||
		!strings.Contains(got, "2 glyphs:\ncid00002 cid00004\n") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	junk := filepath.Join(dir, "junk.otf")
	err := os.WriteFile(junk, []byte("this is not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = HintFiles(quietOptions(junk, ""))
	var parseErr *FontParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected FontParseError, got %v", err)
	}

	pfc := filepath.Join(dir, "font.ps")
	err = os.WriteFile(pfc, []byte("%!PS-Adobe-3.0 Resource-CIDFont\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = HintFiles(quietOptions(pfc, ""))
	if !errors.Is(err, glyphdata.ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}

	in := writeSample(t, "in.otf")
	opt := quietOptions(in, "")
	opt.GlyphList = []string{"no-such-glyph"}
	_, err = HintFiles(opt)
	if !errors.As(err, &parseErr) || !strings.Contains(err.Error(), "selected glyph list is empty") {
		t.Errorf("expected empty glyph list error, got %v", err)
	}

	err = &HintError{Glyph: "A", Err: hint.ErrInvalidOutline}
	if err.Error() != "A: failure in processing outline data" || !errors.Is(err, hint.ErrInvalidOutline) {
		t.Errorf("wrong HintError: %v", err)
	}
}
