/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package type1

// Font is the parsed, decrypted form of a Type 1 font program: the two
// immutable segments it was read from (kept for diagnostics), the
// standard dictionary fields, and the decrypted glyph programs.
type Font struct {
	// ASCII and Binary are the two original font segments, exactly as
	// read (ASCII cleartext, Binary still eexec-encrypted).
	ASCII  []byte
	Binary []byte

	FontName     string
	FontType     int
	FontMatrix   [6]float64
	FontBBox     [4]float64
	Encoding     map[int]string // code -> glyph name; empty when EncodingName == StandardEncoding
	EncodingName string         // "StandardEncoding" or "" for a custom inline encoding

	// Charstrings maps a glyph name to its decrypted charstring bytes.
	Charstrings map[string][]byte

	// Subrs is indexed by subroutine number; an entry is nil if that
	// index was never defined (sparse Subrs arrays are legal).
	Subrs [][]byte

	// Private dictionary fields.
	LenIV      int
	BlueValues []int
	OtherBlues []int
	StdHW      float64
	StdVW      float64
	StemSnapH  []float64
	StemSnapV  []float64
}

func newFont() *Font {
	return &Font{
		FontMatrix:  [6]float64{0.001, 0, 0, 0.001, 0, 0},
		Encoding:    make(map[int]string),
		Charstrings: make(map[string][]byte),
		LenIV:       defaultLenIV,
	}
}
