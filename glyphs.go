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
	"log/slog"
	"strings"
	"unicode"
)

// ParseGlyphList splits a comma-separated list of glyph names and glyph
// ranges.  White space is ignored.
func ParseGlyphList(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	var res []string
	for _, name := range strings.Split(s, ",") {
		if name != "" {
			res = append(res, name)
		}
	}
	return res
}

// selectGlyphs returns the glyphs of a font which are to be processed.
func selectGlyphs(opt *Options, fontGlyphs []string, fontFile string, logger *slog.Logger) []string {
	if len(opt.GlyphList) == 0 {
		return fontGlyphs
	}

	pos := make(map[string]int, len(fontGlyphs))
	for i, name := range fontGlyphs {
		pos[name] = i
	}

	var sel []string
	for _, tag := range opt.GlyphList {
		sel = append(sel, expandRange(tag, fontGlyphs, pos, fontFile, logger)...)
	}
	if !opt.ExcludeGlyphList {
		return sel
	}

	skip := make(map[string]bool, len(sel))
	for _, name := range sel {
		skip[name] = true
	}
	var res []string
	for _, name := range fontGlyphs {
		if !skip[name] {
			res = append(res, name)
		}
	}
	return res
}

// expandRange expands a glyph name or a range "a-b-c" to a list of glyph
// names.  Nil is returned if a name is missing from the font.
func expandRange(tag string, fontGlyphs []string, pos map[string]int, fontFile string, logger *slog.Logger) []string {
	parts := strings.Split(tag, "-")
	prev, ok := pos[parts[0]]
	if !ok {
		if len(parts) > 1 {
			logger.Warn("glyph from range in glyph selection is not in font",
				"glyph", parts[0], "range", tag, "font", fontFile)
		} else {
			logger.Warn("glyph from glyph selection is not in font",
				"glyph", parts[0], "font", fontFile)
		}
		return nil
	}

	res := []string{fontGlyphs[prev]}
	for _, name := range parts[1:] {
		gid, ok := pos[name]
		if !ok {
			logger.Warn("glyph from range in glyph selection is not in font",
				"glyph", name, "range", tag, "font", fontFile)
			return nil
		}
		if gid > prev {
			res = append(res, fontGlyphs[prev+1:gid+1]...)
		}
		prev = gid
	}
	return res
}
