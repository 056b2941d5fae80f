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

// Package fontinfo implements the font-wide information used by the hinting
// engine: alignment zones, dominant stem widths and flex/counter settings.
//
// The information is exchanged in a simple keyword format, one "Key value"
// pair per line.
package fontinfo

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
)

// FontInfo holds the font-wide hinting parameters of one font dictionary.
type FontInfo struct {
	// DictName identifies the font dictionary.  It is not part of the
	// keyword format.
	DictName string

	FontName      string
	OrigEmSqUnits int
	LanguageGroup int
	DominantV     []int
	DominantH     []int
	FlexOK        bool
	BlueFuzz      int
	VCounterChars []string
	HCounterChars []string

	// Zones maps zone keywords like "CapHeight" to the zone.
	Zones map[string]Zone
}

// Zone is an alignment zone.  For top zones Overshoot is non-negative,
// for bottom zones it is non-positive.
type Zone struct {
	Position  int
	Overshoot int
}

// Bounds returns the lower and upper limit of the zone.
func (z Zone) Bounds() (float64, float64) {
	a := float64(z.Position)
	b := float64(z.Position + z.Overshoot)
	return min(a, b), max(a, b)
}

// zoneKey describes the pair of keywords for one alignment zone.
type zoneKey struct {
	Position  string
	Overshoot string
	Top       bool
}

var (
	baselineZone = zoneKey{"BaselineYCoord", "BaselineOvershoot", false}

	topZones = []zoneKey{
		{"LcHeight", "LcOvershoot", true},
		{"CapHeight", "CapOvershoot", true},
		{"AscenderHeight", "AscenderOvershoot", true},
		{"FigHeight", "FigOvershoot", true},
		{"Height5", "Height5Overshoot", true},
		{"Height6", "Height6Overshoot", true},
	}

	bottomZones = []zoneKey{
		{"DescenderHeight", "DescenderOvershoot", false},
		{"SuperiorBaseline", "SuperiorOvershoot", false},
		{"OrdinalBaseline", "OrdinalOvershoot", false},
		{"Baseline5", "Baseline5Overshoot", false},
		{"Baseline6", "Baseline6Overshoot", false},
	}
)

// keywordOrder lists all keywords in the order used for output.
var keywordOrder = []string{
	"FontName",
	"OrigEmSqUnits",
	"LanguageGroup",
	"DominantV",
	"DominantH",
	"FlexOK",
	"BlueFuzz",
	"VCounterChars",
	"HCounterChars",
	"BaselineYCoord",
	"BaselineOvershoot",
	"CapHeight",
	"CapOvershoot",
	"LcHeight",
	"LcOvershoot",
	"AscenderHeight",
	"AscenderOvershoot",
	"FigHeight",
	"FigOvershoot",
	"Height5",
	"Height5Overshoot",
	"Height6",
	"Height6Overshoot",
	"DescenderOvershoot",
	"DescenderHeight",
	"SuperiorOvershoot",
	"SuperiorBaseline",
	"OrdinalOvershoot",
	"OrdinalBaseline",
	"Baseline5Overshoot",
	"Baseline5",
	"Baseline6Overshoot",
	"Baseline6",
}

// allZones returns the zone keys in keyword order.
func allZones() []zoneKey {
	res := []zoneKey{baselineZone}
	res = append(res, topZones...)
	res = append(res, bottomZones...)
	return res
}

func zoneByKeyword(kw string) (zoneKey, bool, bool) {
	for _, z := range allZones() {
		switch kw {
		case z.Position:
			return z, true, true
		case z.Overshoot:
			return z, false, true
		}
	}
	return zoneKey{}, false, false
}

// ErrNoBlues is returned by [FromPrivate] if the font has no alignment zones.
var ErrNoBlues = errors.New("font has no alignment zones (BlueValues)")

// Options control the construction of a FontInfo.
type Options struct {
	// AllowNoBlues allows fonts without alignment zones.  A dummy zone far
	// outside the glyph area is used instead.
	AllowNoBlues bool

	// NoFlex disables flex hints.
	NoFlex bool

	VCounterGlyphs []string
	HCounterGlyphs []string
}

// FromPrivate constructs the hinting parameters from a private dictionary.
func FromPrivate(fontName string, unitsPerEm int, private *type1.PrivateDict, opt *Options) (*FontInfo, error) {
	if opt == nil {
		opt = &Options{}
	}
	if private == nil {
		private = &type1.PrivateDict{}
	}
	if unitsPerEm <= 0 {
		unitsPerEm = 1000
	}

	info := &FontInfo{
		FontName:      fontName,
		OrigEmSqUnits: unitsPerEm,
		FlexOK:        !opt.NoFlex,
		BlueFuzz:      int(private.BlueFuzz),
		VCounterChars: slices.Clone(opt.VCounterGlyphs),
		HCounterChars: slices.Clone(opt.HCounterGlyphs),
		Zones:         make(map[string]Zone),
	}
	if w := math.Round(float64(private.StdVW)); w > 0 {
		info.DominantV = []int{int(w)}
	}
	if w := math.Round(float64(private.StdHW)); w > 0 {
		info.DominantH = []int{int(w)}
	}

	blues := sortedInts(private.BlueValues)
	if len(blues) < 2 {
		if !opt.AllowNoBlues {
			return nil, ErrNoBlues
		}
		far := 2 * unitsPerEm
		blues = []int{-far, -far, far, far}
	}

	info.Zones[baselineZone.Position] = Zone{
		Position:  blues[1],
		Overshoot: blues[0] - blues[1],
	}
	for i, key := range topZones {
		k := 2 + 2*i
		if k+1 >= len(blues) {
			break
		}
		info.Zones[key.Position] = Zone{
			Position:  blues[k],
			Overshoot: blues[k+1] - blues[k],
		}
	}

	other := sortedInts(private.OtherBlues)
	for i, key := range bottomZones {
		k := 2 * i
		if k+1 >= len(other) {
			break
		}
		info.Zones[key.Position] = Zone{
			Position:  other[k+1],
			Overshoot: other[k] - other[k+1],
		}
	}

	return info, nil
}

func sortedInts(vals []funit.Int16) []int {
	res := make([]int, len(vals))
	for i, v := range vals {
		res[i] = int(v)
	}
	slices.Sort(res)
	return res
}

// TopZones returns the zones which align the tops of glyph features.
func (info *FontInfo) TopZones() []Zone {
	var res []Zone
	for _, key := range topZones {
		if z, ok := info.Zones[key.Position]; ok {
			res = append(res, z)
		}
	}
	return res
}

// BottomZones returns the zones which align the bottoms of glyph features,
// starting with the baseline zone.
func (info *FontInfo) BottomZones() []Zone {
	var res []Zone
	for _, key := range append([]zoneKey{baselineZone}, bottomZones...) {
		if z, ok := info.Zones[key.Position]; ok {
			res = append(res, z)
		}
	}
	return res
}

// String returns the keyword representation of the font info.
func (info *FontInfo) String() string {
	b := &strings.Builder{}
	for _, kw := range keywordOrder {
		if val, ok := info.value(kw); ok {
			b.WriteString(kw)
			b.WriteByte(' ')
			b.WriteString(val)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Print writes the recognised keywords, one per line and indented by a tab.
func (info *FontInfo) Print(w io.Writer) error {
	for _, kw := range keywordOrder {
		if val, ok := info.value(kw); ok {
			_, err := fmt.Fprintf(w, "\t%s %s\n", kw, val)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (info *FontInfo) value(kw string) (string, bool) {
	switch kw {
	case "FontName":
		return info.FontName, info.FontName != ""
	case "OrigEmSqUnits":
		return strconv.Itoa(info.OrigEmSqUnits), true
	case "LanguageGroup":
		return strconv.Itoa(info.LanguageGroup), true
	case "DominantV":
		return formatArray(info.DominantV), len(info.DominantV) > 0
	case "DominantH":
		return formatArray(info.DominantH), len(info.DominantH) > 0
	case "FlexOK":
		return strconv.FormatBool(info.FlexOK), true
	case "BlueFuzz":
		return strconv.Itoa(info.BlueFuzz), true
	case "VCounterChars":
		return formatCounter(info.VCounterChars), len(info.VCounterChars) > 0
	case "HCounterChars":
		return formatCounter(info.HCounterChars), len(info.HCounterChars) > 0
	}

	key, isPos, ok := zoneByKeyword(kw)
	if !ok {
		return "", false
	}
	z, ok := info.Zones[key.Position]
	if !ok {
		return "", false
	}
	if isPos {
		return strconv.Itoa(z.Position), true
	}
	return strconv.Itoa(z.Overshoot), true
}

func formatArray(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatCounter(names []string) string {
	return "(" + strings.Join(names, " ") + ")"
}
