/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package type1 implements the PostScript-subset lexer, PFB segmenter, and
// eexec/charstring stream cipher needed to read a Type 1 font program's
// glyph outlines.
package type1

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core"
)

// PFB record markers. See the Adobe Type 1 Font Format spec, Appendix C.
const (
	pfbMarker      = 0x80
	pfbTypeASCII   = 1
	pfbTypeBinary  = 2
	pfbTypeEOF     = 3
	trailerLiteral = "cleartomark"
	maxTrailerLen  = 600
)

// PfbReader concatenates the ASCII segment and the binary segment of a
// PFB-wrapped Type 1 font program.
//
// A PFB file is a sequence of records: one byte 0x80, one byte record
// type (1 ASCII, 2 binary, 3 EOF), four bytes little-endian length, then
// the record body. All ASCII records are concatenated into segment 1 (the
// final "cleartomark" trailer is dropped when it is short and contains
// that literal); all binary records are concatenated into segment 2.
type PfbReader struct {
	data []byte
}

// NewPfbReader wraps `data`, the raw bytes of a .pfb file.
func NewPfbReader(data []byte) *PfbReader {
	return &PfbReader{data: data}
}

// ReadSegments walks the PFB records in r's data and returns the
// concatenated ASCII segment and the concatenated binary segment.
func (r *PfbReader) ReadSegments() (ascii, binaryData []byte, err error) {
	data := r.data
	var asciiParts [][]byte
	var binaryParts [][]byte

	offset := 0
	for offset < len(data) {
		if data[offset] != pfbMarker {
			return nil, nil, core.NewParseError(core.ErrDamagedFont, int64(offset),
				fmt.Errorf("expected PFB marker 0x80, got 0x%02x", data[offset]))
		}
		if offset+6 > len(data) {
			return nil, nil, core.NewParseError(core.ErrDamagedFont, int64(offset),
				fmt.Errorf("truncated PFB record header"))
		}
		recType := data[offset+1]
		if recType == pfbTypeEOF {
			break
		}
		length := int(binary.LittleEndian.Uint32(data[offset+2 : offset+6]))
		bodyStart := offset + 6
		bodyEnd := bodyStart + length
		if bodyEnd > len(data) {
			return nil, nil, core.NewParseError(core.ErrDamagedFont, int64(offset),
				fmt.Errorf("PFB record claims %d bytes, only %d available", length, len(data)-bodyStart))
		}
		body := data[bodyStart:bodyEnd]

		switch recType {
		case pfbTypeASCII:
			if length < maxTrailerLen && strings.Contains(string(body), trailerLiteral) {
				// Drop the final cleartomark trailer record.
			} else {
				asciiParts = append(asciiParts, body)
			}
		case pfbTypeBinary:
			binaryParts = append(binaryParts, body)
		default:
			common.Log.Debug("type1: unknown PFB record type %d, skipping", recType)
		}

		offset = bodyEnd
	}

	return joinBytes(asciiParts), joinBytes(binaryParts), nil
}

func joinBytes(parts [][]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// IsPFB reports whether `data` begins with a PFB segment marker.
func IsPFB(data []byte) bool {
	return len(data) > 0 && data[0] == pfbMarker
}
