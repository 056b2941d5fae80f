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

// Package autohint adds stem hints to PostScript fonts.
//
// The main entry point is [HintFiles], which processes a list of font files
// as described by an [Options] record.  Fonts can be OpenType files with CFF
// outlines, bare CFF files, or Type 1 fonts in PFA or PFB format.
//
// Instead of hinting, HintFiles can report statistics about a font: with
// ReportAlignmentZones set, the tops and bottoms of glyphs and horizontal
// stems are collected into histograms which help to choose alignment
// zones.  With ReportStemWidths set, the widths of horizontal and vertical
// stems are collected instead.  Reports are written to text files next to
// the output path.
//
// Example:
//
//	opt := autohint.NewOptions()
//	opt.InputPaths = []string{"font.otf"}
//	opt.OutputPaths = []string{"hinted.otf"}
//	_, err := autohint.HintFiles(opt)
//	if err != nil {
//		log.Fatal(err)
//	}
package autohint
