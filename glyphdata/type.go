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

package glyphdata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Type identifies a font file format.
type Type int

const (
	// Unknown indicates that the file format could not be recognised.
	Unknown Type = iota

	// OTF indicates an OpenType font with a "CFF " table.
	OTF

	// CFF indicates a bare CFF font program.
	CFF

	// PFA indicates a Type 1 font in ASCII format.
	PFA

	// PFB indicates a Type 1 font in the segmented binary format.
	PFB

	// PFC indicates a CID-keyed Type 1 font (CIDFontType 0).
	// This format is recognised but not supported.
	PFC

	// UFO indicates a Unified Font Object directory.
	// This format is recognised but not supported.
	UFO
)

func (t Type) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case OTF:
		return "OTF"
	case CFF:
		return "CFF"
	case PFA:
		return "PFA"
	case PFB:
		return "PFB"
	case PFC:
		return "PFC"
	case UFO:
		return "UFO"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// Sniff determines the font format from the first bytes of a font file.
func Sniff(head []byte) Type {
	switch {
	case bytes.HasPrefix(head, []byte("OTTO")):
		return OTF
	case bytes.HasPrefix(head, []byte{0x01, 0x00}):
		return CFF
	case bytes.HasPrefix(head, []byte{0x80, 0x01}):
		return PFB
	case bytes.HasPrefix(head, []byte("%!PS-AdobeFont")),
		bytes.HasPrefix(head, []byte("%!FontType1")):
		return PFA
	case bytes.HasPrefix(head, []byte("%!PS-Adobe-3.0 Resource-CIDFont")):
		return PFC
	}
	return Unknown
}

// sniffLen is the number of bytes needed by Sniff.
const sniffLen = 32

// Detect determines the format of the font at the given path.
// Directories are recognised as UFO fonts if their name ends in ".ufo"
// and they contain a "metainfo.plist" file with the required keys.
func Detect(fname string) (Type, error) {
	fi, err := os.Stat(fname)
	if err != nil {
		return Unknown, err
	}

	if fi.IsDir() {
		if !strings.HasSuffix(strings.ToLower(fname), ".ufo") {
			return Unknown, nil
		}
		plist, err := os.ReadFile(filepath.Join(fname, "metainfo.plist"))
		if os.IsNotExist(err) {
			return Unknown, nil
		} else if err != nil {
			return Unknown, err
		}
		if bytes.Contains(plist, []byte("<key>creator</key>")) &&
			bytes.Contains(plist, []byte("<key>formatVersion</key>")) {
			return UFO, nil
		}
		return Unknown, nil
	}

	fd, err := os.Open(fname)
	if err != nil {
		return Unknown, err
	}
	defer fd.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(fd, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, err
	}
	return Sniff(head[:n]), nil
}
