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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/autohint/bez"
	"seehuhn.de/go/autohint/fontinfo"
	"seehuhn.de/go/autohint/glyphdata"
	"seehuhn.de/go/autohint/hint"
)

// Summary describes the result of processing one font.
type Summary struct {
	// Path is the name of the input file.
	Path string

	// Output is the name of the file the hinted font was written to.
	// This is empty if the font was not written.
	Output string

	FontName string

	// Selected is the number of glyphs selected for processing.
	Selected int

	// Processed is the number of selected glyphs which were hinted or
	// analysed.  Empty glyphs and glyphs which already have hints are
	// skipped.
	Processed int

	// Updated is the number of glyphs which were changed in the font.
	Updated int

	// NoHints is the number of processed glyphs which received no hints.
	NoHints int

	// Reports lists the report files written.
	Reports []string
}

// Skipped returns the number of selected glyphs which were not processed.
func (s *Summary) Skipped() int {
	return s.Selected - s.Processed
}

// HintFiles processes the fonts described by opt.
//
// If opt.ReferenceFont is set, the reference font is hinted (and saved) first.
// For all glyphs which are present in the reference font, the input fonts
// then receive hints compatible with the reference font.
//
// The returned summaries are in processing order, starting with the
// reference font.  Processing stops at the first error.
func HintFiles(opt *Options) ([]*Summary, error) {
	s := &session{
		opt: opt,
		log: opt.logger(),
	}

	var res []*Summary
	if opt.ReferenceFont != "" {
		s.reference = make(map[string]*bez.Glyph)
		sum, err := s.hintFile(opt.ReferenceFont, opt.ReferenceFont, true)
		if err != nil {
			return res, err
		}
		res = append(res, sum)
	}

	for i, fname := range opt.InputPaths {
		out := fname
		if i < len(opt.OutputPaths) && opt.OutputPaths[i] != "" {
			out = opt.OutputPaths[i]
		}
		sum, err := s.hintFile(fname, out, false)
		if err != nil {
			return res, err
		}
		res = append(res, sum)
	}
	return res, nil
}

// session holds the state of one call to HintFiles.
type session struct {
	opt *Options
	log *slog.Logger

	// reference holds the hinted glyphs of the reference font.
	reference map[string]*bez.Glyph
}

var _ hint.Reporter = (*glyphReport)(nil)

// job is a glyph waiting to be hinted.
type job struct {
	name string
	g    *bez.Glyph
	info *fontinfo.FontInfo
}

func (s *session) hintFile(fname, out string, isReference bool) (*Summary, error) {
	opt := s.opt
	baseName := filepath.Base(fname)
	s.log.Info("Hinting font", "path", fname)

	font, err := openFont(fname)
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		Path:     fname,
		FontName: font.FontName(),
	}

	fontGlyphs := font.GlyphList()
	glyphList := selectGlyphs(opt, fontGlyphs, baseName, s.log)
	if len(glyphList) == 0 {
		return nil, &FontParseError{
			Path: fname,
			Msg:  fmt.Sprintf("selected glyph list is empty for font <%s>", baseName),
		}
	}
	sum.Selected = len(glyphList)

	var missing []string
	for _, name := range slices.Concat(opt.HCounterGlyphs, opt.VCounterGlyphs) {
		if !slices.Contains(fontGlyphs, name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		s.log.Error("H/VCounterChars glyph named in fontinfo is not in font",
			"glyphs", missing)
	}

	infos := &infoCache{
		font: font,
		opt: &fontinfo.Options{
			AllowNoBlues:   opt.AllowNoBlues,
			NoFlex:         opt.NoFlex,
			VCounterGlyphs: opt.VCounterGlyphs,
			HCounterGlyphs: opt.HCounterGlyphs,
		},
	}

	switch {
	case opt.PrintDefaultFDDict:
		return sum, s.printDefault(fname, infos)
	case opt.PrintFDDictList:
		return sum, s.printList(fname, infos, glyphList)
	}

	if font.IsCID() {
		infos.opt.NoFlex = true
	}
	multiDict := font.NumFontDicts() > 1

	var jobs []job
	for _, name := range glyphList {
		g, err := font.Glyph(name, opt.ReadHints)
		if err != nil {
			return nil, &FontParseError{Path: fname, Msg: "cannot read glyph " + name, Err: err}
		}
		if g.IsEmpty() {
			continue
		}
		if !opt.HintAll && font.HasHints(name) {
			s.log.Info("Skipping glyph which already has hints", "glyph", opt.alias(name))
			continue
		}

		fd := font.FontDictIndex(name)
		info, err := infos.get(fd)
		if err != nil {
			return nil, &FontParseError{Path: fname, Msg: "invalid private dictionary", Err: err}
		}
		if multiDict {
			s.log.Info("Begin hinting", "glyph", opt.alias(name), "fdDict", info.DictName)
		} else {
			s.log.Info("Begin hinting", "glyph", opt.alias(name))
		}
		jobs = append(jobs, job{name: name, g: g, info: info})
	}
	sum.Processed = len(jobs)

	mode := opt.reportMode()
	results := make([]*bez.Glyph, len(jobs))
	reports := make([]*glyphReport, len(jobs))

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var grp errgroup.Group
	grp.SetLimit(workers)
	for i, j := range jobs {
		grp.Go(func() error {
			var rep *glyphReport
			if mode != reportNone {
				rep = &glyphReport{mode: mode, all: opt.ReportAllStems}
				reports[i] = rep
			}
			res, err := s.hintGlyph(j, rep, isReference)
			if err != nil {
				return &HintError{Glyph: opt.alias(j.name), Err: err}
			}
			results[i] = res
			return nil
		})
	}
	err = grp.Wait()
	if err != nil {
		return nil, err
	}

	if mode != reportNone {
		fr := newFontReport(mode, !opt.AllowDecimalCoords)
		for i, j := range jobs {
			fr.add(j.name, reports[i])
		}
		sum.Reports, err = fr.write(out)
		if err != nil {
			return nil, err
		}
	}

	for i, j := range jobs {
		res := results[i]
		if !res.HasHints() {
			s.log.Info("No hints added!", "glyph", opt.alias(j.name))
			sum.NoHints++
		}
		if isReference {
			s.reference[j.name] = res
		}
		if opt.LogOnly {
			continue
		}
		err := font.Update(j.name, res)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opt.alias(j.name), err)
		}
		sum.Updated++
	}

	if !opt.LogOnly {
		if sum.Updated > 0 {
			s.log.Info("Saving font file with new hints...", "path", out)
			err := font.Save(out)
			if err != nil {
				return nil, err
			}
			sum.Output = out
		} else {
			s.log.Info("No glyphs were hinted.")
		}
	}
	s.logSkipped(sum)
	s.log.Info("Done with font", "path", fname)
	return sum, nil
}

// hintGlyph computes the hints for a single glyph.  If a reference font
// has been hinted, the hints of the reference glyph are transferred.
func (s *session) hintGlyph(j job, rep *glyphReport, isReference bool) (*bez.Glyph, error) {
	opt := s.opt
	hintOpt := &hint.Options{
		AllowEdit:    opt.AllowChanges,
		AllowHintSub: !opt.NoHintSub,
		RoundCoords:  !opt.AllowDecimalCoords,
	}
	var r hint.Reporter
	if rep != nil {
		r = rep
	}

	if isReference || s.reference == nil || rep != nil {
		return hint.Glyph(j.info, j.g, hintOpt, r)
	}

	base, ok := s.reference[j.name]
	if !ok {
		s.log.Warn("glyph not in reference font, hinting independently",
			"glyph", opt.alias(j.name))
		return hint.Glyph(j.info, j.g, hintOpt, nil)
	}
	merged, err := hint.Merge(j.info, base, []*bez.Glyph{j.g})
	if errors.Is(err, hint.ErrIncompatible) {
		s.log.Warn("glyph not compatible with reference font, hinting independently",
			"glyph", opt.alias(j.name), "error", err)
		return hint.Glyph(j.info, j.g, hintOpt, nil)
	} else if err != nil {
		return nil, err
	}
	res := merged[0]
	if hintOpt.RoundCoords {
		res.Round()
	}
	return res, nil
}

func (s *session) logSkipped(sum *Summary) {
	if n := sum.Skipped(); n > 0 {
		s.log.Info(fmt.Sprintf("Skipped %d of %d glyphs.", n, sum.Selected))
	}
}

func (s *session) printDefault(fname string, infos *infoCache) error {
	info, err := infos.get(0)
	if err != nil {
		return &FontParseError{Path: fname, Msg: "invalid private dictionary", Err: err}
	}
	w := s.opt.stdout()
	fmt.Fprintln(w, "Showing default FDDict Values:")
	return info.Print(w)
}

func (s *session) printList(fname string, infos *infoCache, glyphList []string) error {
	font := infos.font
	byDict := make([][]string, font.NumFontDicts())
	for _, name := range glyphList {
		fd := font.FontDictIndex(name)
		if fd >= 0 && fd < len(byDict) {
			byDict[fd] = append(byDict[fd], name)
		}
	}

	w := s.opt.stdout()
	fmt.Fprintln(w, "Showing FontDict Values:")
	fmt.Fprintln(w)
	for fd, names := range byDict {
		info, err := infos.get(fd)
		if err != nil {
			return &FontParseError{Path: fname, Msg: "invalid private dictionary", Err: err}
		}
		fmt.Fprintln(w, info.DictName)
		err = info.Print(w)
		if err != nil {
			return err
		}
		err = printGlyphNames(w, names)
		if err != nil {
			return err
		}
	}
	return nil
}

func printGlyphNames(w io.Writer, names []string) error {
	txt := "None"
	if len(names) > 0 {
		txt = strings.Join(names, " ")
	}
	_, err := fmt.Fprintf(w, "%d glyphs:\n%s\n\n", len(names), txt)
	return err
}

// infoCache holds the hinting parameters for the font dicts of a font.
// It is only used from the goroutine running hintFile.
type infoCache struct {
	font  glyphdata.Font
	opt   *fontinfo.Options
	infos map[int]*fontinfo.FontInfo
}

func (c *infoCache) get(fd int) (*fontinfo.FontInfo, error) {
	if info, ok := c.infos[fd]; ok {
		return info, nil
	}
	info, err := fontinfo.FromPrivate(c.font.FontName(), c.font.UnitsPerEm(), c.font.Private(fd), c.opt)
	if err != nil {
		return nil, err
	}
	info.DictName = fmt.Sprintf("FD%d", fd)
	if c.infos == nil {
		c.infos = make(map[int]*fontinfo.FontInfo)
	}
	c.infos[fd] = info
	return info, nil
}
