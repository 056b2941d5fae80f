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
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned by [Parse] for malformed input.
type ParseError struct {
	Keyword string
	Reason  string
}

func (err *ParseError) Error() string {
	return "fontinfo: " + err.Keyword + ": " + err.Reason
}

// Parse reads font info in keyword format, as produced by
// [FontInfo.String].  Unknown keywords are ignored.
func Parse(s string) (*FontInfo, error) {
	s = strings.NewReplacer("[", " [ ", "]", " ] ", "(", " ( ", ")", " ) ").Replace(s)
	tokens := strings.Fields(s)

	info := &FontInfo{
		Zones: make(map[string]Zone),
	}
	for len(tokens) > 0 {
		kw := tokens[0]
		tokens = tokens[1:]

		var vals []string
		if len(tokens) > 0 && (tokens[0] == "[" || tokens[0] == "(") {
			closer := "]"
			if tokens[0] == "(" {
				closer = ")"
			}
			end := -1
			for i, tok := range tokens {
				if tok == closer {
					end = i
					break
				}
			}
			if end < 0 {
				return nil, &ParseError{kw, "missing " + closer}
			}
			vals = tokens[1:end]
			tokens = tokens[end+1:]
		} else if len(tokens) > 0 {
			vals = tokens[:1]
			tokens = tokens[1:]
		} else {
			return nil, &ParseError{kw, "missing value"}
		}

		err := info.set(kw, vals)
		if err != nil {
			return nil, err
		}
	}
	return info, nil
}

func (info *FontInfo) set(kw string, vals []string) error {
	one := func() (int, error) {
		if len(vals) != 1 {
			return 0, &ParseError{kw, fmt.Sprintf("expected one value, got %d", len(vals))}
		}
		x, err := strconv.Atoi(vals[0])
		if err != nil {
			return 0, &ParseError{kw, "invalid number " + strconv.Quote(vals[0])}
		}
		return x, nil
	}
	array := func() ([]int, error) {
		res := make([]int, len(vals))
		for i, v := range vals {
			x, err := strconv.Atoi(v)
			if err != nil {
				return nil, &ParseError{kw, "invalid number " + strconv.Quote(v)}
			}
			res[i] = x
		}
		return res, nil
	}

	var err error
	switch kw {
	case "FontName":
		info.FontName = strings.Join(vals, " ")
	case "OrigEmSqUnits":
		info.OrigEmSqUnits, err = one()
	case "LanguageGroup":
		info.LanguageGroup, err = one()
	case "DominantV":
		info.DominantV, err = array()
	case "DominantH":
		info.DominantH, err = array()
	case "FlexOK":
		if len(vals) != 1 {
			return &ParseError{kw, "expected one value"}
		}
		info.FlexOK, err = strconv.ParseBool(vals[0])
		if err != nil {
			return &ParseError{kw, "invalid boolean " + strconv.Quote(vals[0])}
		}
	case "BlueFuzz":
		info.BlueFuzz, err = one()
	case "VCounterChars":
		info.VCounterChars = vals
	case "HCounterChars":
		info.HCounterChars = vals
	default:
		key, isPos, ok := zoneByKeyword(kw)
		if !ok {
			return nil
		}
		x, err := one()
		if err != nil {
			return err
		}
		z := info.Zones[key.Position]
		if isPos {
			z.Position = x
		} else {
			z.Overshoot = x
		}
		info.Zones[key.Position] = z
	}
	return err
}
