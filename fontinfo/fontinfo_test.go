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

package fontinfo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
)

func makePrivate() *type1.PrivateDict {
	return &type1.PrivateDict{
		BlueValues: []funit.Int16{-10, 0, 500, 510, 700, 712},
		OtherBlues: []funit.Int16{-210, -200},
		BlueScale:  0.039625,
		BlueShift:  7,
		BlueFuzz:   1,
		StdHW:      50,
		StdVW:      80.4,
	}
}

func TestFromPrivate(t *testing.T) {
	info, err := FromPrivate("Test-Regular", 1000, makePrivate(), &Options{
		VCounterGlyphs: []string{"m"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := &FontInfo{
		FontName:      "Test-Regular",
		OrigEmSqUnits: 1000,
		DominantV:     []int{80},
		DominantH:     []int{50},
		FlexOK:        true,
		BlueFuzz:      1,
		VCounterChars: []string{"m"},
		Zones: map[string]Zone{
			"BaselineYCoord":  {Position: 0, Overshoot: -10},
			"LcHeight":        {Position: 500, Overshoot: 10},
			"CapHeight":       {Position: 700, Overshoot: 12},
			"DescenderHeight": {Position: -200, Overshoot: -10},
		},
	}
	if d := cmp.Diff(want, info); d != "" {
		t.Errorf("wrong font info (-want +got):\n%s", d)
	}

	if n := len(info.TopZones()); n != 2 {
		t.Errorf("expected 2 top zones, got %d", n)
	}
	bot := info.BottomZones()
	if len(bot) != 2 || bot[0].Position != 0 {
		t.Errorf("wrong bottom zones %v", bot)
	}
	lo, hi := bot[0].Bounds()
	if lo != -10 || hi != 0 {
		t.Errorf("wrong baseline bounds %g %g", lo, hi)
	}
}

func TestNoBlues(t *testing.T) {
	_, err := FromPrivate("X", 1000, &type1.PrivateDict{}, nil)
	if !errors.Is(err, ErrNoBlues) {
		t.Errorf("expected ErrNoBlues, got %v", err)
	}

	info, err := FromPrivate("X", 1000, &type1.PrivateDict{}, &Options{AllowNoBlues: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, z := range append(info.TopZones(), info.BottomZones()...) {
		if z.Position > -1000 && z.Position < 1000 {
			t.Errorf("dummy zone %v inside the em square", z)
		}
	}
}

func TestNoFlex(t *testing.T) {
	info, err := FromPrivate("X", 2048, makePrivate(), &Options{NoFlex: true})
	if err != nil {
		t.Fatal(err)
	}
	if info.FlexOK {
		t.Error("FlexOK set despite NoFlex")
	}
	if info.OrigEmSqUnits != 2048 {
		t.Errorf("wrong em size %d", info.OrigEmSqUnits)
	}
}

func TestStringParse(t *testing.T) {
	info, err := FromPrivate("Test-Bold", 1000, makePrivate(), &Options{
		HCounterGlyphs: []string{"element", "equivalence"},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := info.String()
	for _, line := range []string{
		"FontName Test-Bold\n",
		"DominantV [80]\n",
		"HCounterChars (element equivalence)\n",
		"CapHeight 700\n",
		"CapOvershoot 12\n",
		"DescenderOvershoot -10\n",
	} {
		if !strings.Contains(s, line) {
			t.Errorf("missing %q in\n%s", line, s)
		}
	}

	info2, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(info, info2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestParseCompact(t *testing.T) {
	info, err := Parse("DominantH [40 52]\nFlexOK false\nUnknownKey 7\nHeight5 300")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{40, 52}, info.DominantH); d != "" {
		t.Error(d)
	}
	if info.FlexOK {
		t.Error("FlexOK should be false")
	}
	if z := info.Zones["Height5"]; z.Position != 300 {
		t.Errorf("wrong Height5 zone %v", z)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"DominantV [1 2",
		"BlueFuzz x",
		"FlexOK maybe",
		"CapHeight",
	}
	for _, in := range cases {
		_, err := Parse(in)
		var pErr *ParseError
		if !errors.As(err, &pErr) {
			t.Errorf("%q: expected parse error, got %v", in, err)
		}
	}
}

func TestPrint(t *testing.T) {
	info, err := FromPrivate("P", 1000, makePrivate(), nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = info.Print(buf)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "\t") {
			t.Errorf("line %q not indented", line)
		}
	}
	if !strings.HasPrefix(buf.String(), "\tFontName P\n") {
		t.Errorf("unexpected start of output %q", buf.String())
	}
}
