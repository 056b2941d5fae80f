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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"seehuhn.de/go/autohint/internal/samplefont"
)

// dataDir holds the sample fonts, laid out as "<family>/<style>/font.otf".
var dataDir string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "autohint-data-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	dataDir = dir

	_, err = samplefont.WriteTree(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.RemoveAll(dataDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dataDir)
	os.Exit(code)
}

var stemHistCases = []struct {
	id                    string
	zones, stems, allStem bool
}{
	{"report_alignment_zones", true, false, false},
	{"report_alignment_zones,all_stems", true, false, true},
	{"report_stem_widths", false, true, false},
	{"report_stem_widths,all_stems", false, true, true},
}

func TestStemHist(t *testing.T) {
	fonts, err := filepath.Glob(filepath.Join(dataDir, "*", "*", "font.otf"))
	if err != nil {
		t.Fatal(err)
	}
	if len(fonts) == 0 {
		t.Fatal("no sample fonts found")
	}

	for _, otf := range fonts {
		rel, _ := filepath.Rel(dataDir, filepath.Dir(otf))
		for _, tc := range stemHistCases {
			t.Run(filepath.ToSlash(rel)+"/"+tc.id, func(t *testing.T) {
				t.Parallel()

				out := filepath.Join(t.TempDir(), filepath.Base(otf)) + ".out"
				opt := NewOptions()
				opt.InputPaths = []string{otf}
				opt.OutputPaths = []string{out}
				opt.HintAll = true
				opt.Verbose = false
				opt.ReportAlignmentZones = tc.zones
				opt.ReportStemWidths = tc.stems
				opt.ReportAllStems = tc.allStem

				if !opt.HintAll || opt.Verbose {
					t.Fatal("wrong base options")
				}

				summaries, err := HintFiles(opt)
				if err != nil {
					t.Fatal(err)
				}
				if len(summaries) != 1 {
					t.Fatalf("expected 1 summary, got %d", len(summaries))
				}

				var suffixes []string
				if tc.zones {
					suffixes = []string{".top.txt", ".bot.txt"}
				} else {
					suffixes = []string{".hstm.txt", ".vstm.txt"}
				}
				for _, suffix := range suffixes {
					checkReport(t, out+suffix)
				}

				// The hinted font is saved next to the reports.
				if summaries[0].Output != out {
					t.Errorf("output is %q, not %q", summaries[0].Output, out)
				}
				hinted, err := openFont(out)
				if err != nil {
					t.Fatal(err)
				}
				numHinted := 0
				for _, name := range hinted.GlyphList() {
					if hinted.HasHints(name) {
						numHinted++
					}
				}
				if numHinted == 0 {
					t.Error("no hinted glyphs in output font")
				}
			})
		}
	}
}

// checkReport verifies the structure of a report file.
func checkReport(t *testing.T, fname string) {
	t.Helper()

	fd, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	scanner.Buffer(nil, 1<<20)
	if !scanner.Scan() || !strings.HasPrefix(scanner.Text(), "count\t") {
		t.Fatalf("%s: missing header", fname)
	}

	rows := 0
	lastCount := -1
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), "\t", 3)
		if len(fields) != 3 {
			t.Fatalf("%s: malformed line %q", fname, scanner.Text())
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil || count <= 0 {
			t.Fatalf("%s: invalid count %q", fname, fields[0])
		}
		if lastCount >= 0 && count > lastCount {
			t.Errorf("%s: rows not sorted by count", fname)
		}
		lastCount = count
		if _, err := strconv.ParseFloat(fields[1], 64); err != nil {
			t.Errorf("%s: invalid value %q", fname, fields[1])
		}
		if !strings.HasPrefix(fields[2], "[") || !strings.HasSuffix(fields[2], "]") {
			t.Errorf("%s: invalid glyph list %q", fname, fields[2])
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	if rows == 0 {
		t.Errorf("%s: empty report", fname)
	}
}
