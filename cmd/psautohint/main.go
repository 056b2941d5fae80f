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

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/autohint"
	"seehuhn.de/go/autohint/internal/buildinfo"
	"seehuhn.de/go/autohint/internal/plog"
	"seehuhn.de/go/autohint/internal/profile"
)

var (
	outputs    []string
	glyphsArg  = flag.String("g", "", "hint only the glyphs in the comma-separated `list`")
	excludeArg = flag.String("x", "", "do not hint the glyphs in the comma-separated `list`")
	refArg     = flag.String("r", "", "hint compatibly with the reference `font`")
	hintAll    = flag.Bool("a", false, "hint glyphs which already have hints")
	readHints  = flag.Bool("read-hints", false, "use existing hints as the initial hint set")
	allowEdit  = flag.Bool("c", false, "allow changes to the glyph outlines")
	noFlex     = flag.Bool("no-flex", false, "do not add flex hints")
	noHintSub  = flag.Bool("no-hint-sub", false, "do not use hint substitution")
	noBlues    = flag.Bool("no-zones", false, "allow fonts without alignment zones")
	hCounter   = flag.String("hcounter", "", "comma-separated `list` of glyphs for horizontal counter hints")
	vCounter   = flag.String("vcounter", "", "comma-separated `list` of glyphs for vertical counter hints")
	logOnly    = flag.Bool("n", false, "hint, but do not write the font")
	printDict  = flag.Bool("print-dflt-fddict", false, "print the default hinting parameters and exit")
	printList  = flag.Bool("print-list-fddict", false, "print the hinting parameters of all font dicts and exit")
	decimal    = flag.Bool("d", false, "keep fractional coordinates")
	verbose    = flag.Bool("v", false, "print informational messages")
	zonesArg   = flag.Bool("report-zones", false, "write alignment zone reports instead of hinting")
	stemsArg   = flag.Bool("report-stems", false, "write stem width reports instead of hinting")
	allStems   = flag.Bool("all-stems", false, "include curved stems in reports")
	workersArg = flag.Int("j", 0, "number of glyphs hinted in parallel (0 = all CPUs)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Func("o", "write the hinted font to `file` (repeat for several inputs)", func(s string) error {
		outputs = append(outputs, s)
		return nil
	})
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "psautohint \u2014 add stem hints to PostScript fonts\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("psautohint"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  psautohint [options] <font>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font   OpenType/CFF, bare CFF, PFA or PFB font files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  psautohint -o hinted.otf font.otf\n")
		fmt.Fprintf(os.Stderr, "  psautohint -report-stems -all-stems -o stats font.otf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger := plog.New(plog.Config{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Verbose: *verbose,
		JSON:    !term.IsTerminal(int(os.Stderr.Fd())),
	})

	if err := run(logger); err != nil {
		var hintErr *autohint.HintError
		if errors.As(err, &hintErr) {
			logger.Error(err.Error(), "cause", hintErr.Err)
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	stop, err := profile.Start(*cpuprofile, *memprofile, logger)
	if err != nil {
		return err
	}
	defer stop()

	if *glyphsArg != "" && *excludeArg != "" {
		return errors.New("options -g and -x cannot be used together")
	}

	opt := autohint.NewOptions()
	opt.InputPaths = flag.Args()
	opt.OutputPaths = outputs
	opt.ReferenceFont = *refArg
	if *excludeArg != "" {
		opt.GlyphList = autohint.ParseGlyphList(*excludeArg)
		opt.ExcludeGlyphList = true
	} else {
		opt.GlyphList = autohint.ParseGlyphList(*glyphsArg)
	}
	opt.HintAll = *hintAll
	opt.ReadHints = *readHints
	opt.AllowChanges = *allowEdit
	opt.NoFlex = *noFlex
	opt.NoHintSub = *noHintSub
	opt.AllowNoBlues = *noBlues
	opt.HCounterGlyphs = autohint.ParseGlyphList(*hCounter)
	opt.VCounterGlyphs = autohint.ParseGlyphList(*vCounter)
	opt.LogOnly = *logOnly
	opt.PrintDefaultFDDict = *printDict
	opt.PrintFDDictList = *printList
	opt.AllowDecimalCoords = *decimal
	opt.Verbose = *verbose
	opt.ReportAlignmentZones = *zonesArg
	opt.ReportStemWidths = *stemsArg
	opt.ReportAllStems = *allStems
	opt.Workers = *workersArg
	opt.Logger = logger

	summaries, err := autohint.HintFiles(opt)
	if *verbose {
		printSummary(summaries)
	}
	return err
}

func printSummary(summaries []*autohint.Summary) {
	p := message.NewPrinter(language.English)
	for _, s := range summaries {
		p.Printf("%s: %d glyphs selected, %d processed, %d updated, %d without hints\n",
			s.FontName, s.Selected, s.Processed, s.Updated, s.NoHints)
		if s.Output != "" {
			p.Printf("  written to %s\n", s.Output)
		}
		for _, fname := range s.Reports {
			p.Printf("  report %s\n", fname)
		}
	}
}
