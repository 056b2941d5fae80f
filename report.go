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
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
)

type reportMode int

const (
	reportNone reportMode = iota
	reportZones
	reportStems
)

// glyphReport collects the stems of a single glyph.
// It implements the [hint.Reporter] interface.
type glyphReport struct {
	mode reportMode
	all  bool

	top, bottom    []float64
	hStems, vStems []float64
}

func (r *glyphReport) GlyphExtremes(top, bottom float64) {
	if r.mode != reportZones {
		return
	}
	r.top = append(r.top, top)
	r.bottom = append(r.bottom, bottom)
}

func (r *glyphReport) StemExtremes(top, bottom float64, curved bool) {
	if r.mode != reportZones || curved && !r.all {
		return
	}
	r.top = append(r.top, top)
	r.bottom = append(r.bottom, bottom)
}

func (r *glyphReport) HStem(low, high float64, curved bool) {
	if r.mode != reportStems || curved && !r.all {
		return
	}
	r.hStems = append(r.hStems, high-low)
}

func (r *glyphReport) VStem(low, high float64, curved bool) {
	if r.mode != reportStems || curved && !r.all {
		return
	}
	r.vStems = append(r.vStems, high-low)
}

// fontReport accumulates the glyph reports of a font.
type fontReport struct {
	mode  reportMode
	round bool

	top, bottom    histogram
	hStems, vStems histogram
}

func newFontReport(mode reportMode, round bool) *fontReport {
	return &fontReport{
		mode:   mode,
		round:  round,
		top:    histogram{},
		bottom: histogram{},
		hStems: histogram{},
		vStems: histogram{},
	}
}

func (fr *fontReport) add(glyph string, r *glyphReport) {
	for _, item := range []struct {
		h    histogram
		vals []float64
	}{
		{fr.top, r.top},
		{fr.bottom, r.bottom},
		{fr.hStems, r.hStems},
		{fr.vStems, r.vStems},
	} {
		for _, v := range item.vals {
			if fr.round {
				v = math.Round(v)
			}
			item.h.add(v, glyph)
		}
	}
}

// write writes the report files and returns their names.
func (fr *fontReport) write(prefix string) ([]string, error) {
	type file struct {
		suffix string
		header string
		h      histogram
	}
	var files []file
	switch fr.mode {
	case reportZones:
		files = []file{
			{".top.txt", "count\ttop\tglyphs", fr.top},
			{".bot.txt", "count\tbottom\tglyphs", fr.bottom},
		}
	case reportStems:
		files = []file{
			{".hstm.txt", "count\twidth\tglyphs", fr.hStems},
			{".vstm.txt", "count\twidth\tglyphs", fr.vStems},
		}
	}

	var res []string
	for _, f := range files {
		fname := prefix + f.suffix
		err := f.h.writeFile(fname, f.header)
		if err != nil {
			return res, err
		}
		res = append(res, fname)
	}
	return res, nil
}

// histogram maps reported values to the glyphs where they occur.
type histogram map[float64]*bin

type bin struct {
	count  int
	glyphs []string
}

func (h histogram) add(v float64, glyph string) {
	b := h[v]
	if b == nil {
		b = &bin{}
		h[v] = b
	}
	b.count++
	if len(b.glyphs) == 0 || b.glyphs[len(b.glyphs)-1] != glyph {
		b.glyphs = append(b.glyphs, glyph)
	}
}

// rows returns the values of the histogram, most frequent first.
// Values with equal counts are sorted in increasing order.
func (h histogram) rows() []float64 {
	vals := make([]float64, 0, len(h))
	for v := range h {
		vals = append(vals, v)
	}
	slices.SortFunc(vals, func(a, b float64) int {
		if ca, cb := h[a].count, h[b].count; ca != cb {
			return cb - ca
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return vals
}

func (h histogram) writeFile(fname, header string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fd)

	fmt.Fprintln(w, header)
	for _, v := range h.rows() {
		b := h[v]
		fmt.Fprintf(w, "%d\t%s\t[%s]\n", b.count, formatValue(v), strings.Join(b.glyphs, " "))
	}

	err = w.Flush()
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
