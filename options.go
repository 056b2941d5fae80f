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
	"io"
	"log/slog"
	"os"
)

// Options describes a hinting run.
//
// The zero value is not useful; use [NewOptions] to obtain the defaults and
// then set the fields as needed.  HintFiles does not modify the Options.
type Options struct {
	// InputPaths lists the fonts to process.
	InputPaths []string

	// OutputPaths gives the output file for each input font.  If there are
	// fewer output paths than input paths, the remaining fonts are
	// overwritten in place.  In report mode, the output path is the prefix
	// of the report file names.
	OutputPaths []string

	// ReferenceFont, if set, is hinted first.  The glyphs of the input fonts
	// then receive hints which are compatible with the reference font.
	ReferenceFont string

	// GlyphList restricts processing to the named glyphs.  Entries can be
	// glyph names or ranges of the form "first-last" in font order.
	GlyphList []string

	// ExcludeGlyphList inverts the meaning of GlyphList.
	ExcludeGlyphList bool

	// NameAliases maps glyph names to the names used in log messages.
	NameAliases map[string]string

	// HintAll causes glyphs which already have hints to be hinted again.
	HintAll bool

	// ReadHints uses the existing hints of a glyph as the initial hint set.
	ReadHints bool

	// AllowChanges allows the outlines to be modified.
	AllowChanges bool

	NoFlex    bool
	NoHintSub bool

	// AllowNoBlues allows fonts without alignment zones.
	AllowNoBlues bool

	// HCounterGlyphs and VCounterGlyphs list glyphs which get counter hints.
	HCounterGlyphs []string
	VCounterGlyphs []string

	// LogOnly hints the glyphs but does not write the font.
	LogOnly bool

	// PrintDefaultFDDict prints the hinting parameters of the font and
	// stops.
	PrintDefaultFDDict bool

	// PrintFDDictList prints the hinting parameters of every font dict,
	// together with the glyphs using it, and stops.
	PrintFDDictList bool

	// AllowDecimalCoords keeps fractional coordinates.  By default, all
	// coordinates are rounded to integers.
	AllowDecimalCoords bool

	// Verbose enables informational log messages.
	Verbose bool

	ReportAlignmentZones bool
	ReportStemWidths     bool

	// ReportAllStems includes curved stems in the reports.
	ReportAllStems bool

	// Workers is the maximum number of glyphs hinted concurrently.
	// If this is zero, GOMAXPROCS is used.
	Workers int

	// Logger receives the log messages.  If this is nil, messages are
	// written to stderr.
	Logger *slog.Logger

	// Stdout receives the output of the print modes.  If this is nil,
	// os.Stdout is used.
	Stdout io.Writer
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		NameAliases: map[string]string{},
	}
}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger != nil {
		return opt.Logger
	}
	level := slog.LevelWarn
	if opt.Verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (opt *Options) stdout() io.Writer {
	if opt.Stdout != nil {
		return opt.Stdout
	}
	return os.Stdout
}

func (opt *Options) alias(name string) string {
	if alias, ok := opt.NameAliases[name]; ok {
		return alias
	}
	return name
}

// reportMode returns the kind of report requested by the options.
// Alignment zone reports take precedence over stem width reports.
func (opt *Options) reportMode() reportMode {
	switch {
	case opt.ReportAlignmentZones:
		return reportZones
	case opt.ReportStemWidths:
		return reportStems
	default:
		return reportNone
	}
}
