/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package type1

import (
	"fmt"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core"
)

const standardEncodingName = "StandardEncoding"

// Parse reads a Type 1 font from its two PFB-segmented (or
// FontFile-stream-segmented) parts: `ascii` is the cleartext PostScript
// prologue, `binary` is the still-eexec-encrypted Private dictionary
// section.
//
// The ASCII prologue must start with "%!"; any other start raises
// ErrDamagedFont, which is never recovered -- Type 1 font programs are
// programmatic inputs to the embedder, not user documents, so malformed
// input is a caller bug rather than something to route around.
func Parse(ascii, binary []byte) (*Font, error) {
	if len(ascii) < 2 || ascii[0] != '%' || ascii[1] != '!' {
		return nil, core.NewParseError(core.ErrDamagedFont, 0,
			fmt.Errorf("Type 1 ASCII segment does not start with %%!"))
	}

	font := newFont()
	font.ASCII = ascii
	font.Binary = binary

	if err := font.parseASCII(ascii); err != nil {
		return nil, err
	}

	if len(binary) == 0 {
		return font, nil
	}

	plain := decryptedPrivateSection(binary)
	if err := font.parsePrivate(plain); err != nil {
		return nil, err
	}
	return font, nil
}

// decryptedPrivateSection turns the (possibly hex-encoded) eexec-encrypted
// binary segment into plaintext PostScript.
func decryptedPrivateSection(data []byte) []byte {
	cipher := data
	if !looksBinary(data) {
		cipher = decodeHex(data)
	}
	return decryptEexec(cipher, defaultLenIV)
}

// parseASCII walks the cleartext dictionary, recognizing the keys the
// specification calls out: FontName, FontType, FontMatrix, FontBBox,
// Encoding, FontInfo, Metrics. Encoding is either the literal
// StandardEncoding or an inline encoding built from a stream of
// `dup <code> /<name> put` entries; any other named encoding raises
// ErrDamagedFont -- a fuller encoding registry is future work (see
// distilled-spec open question in section 9).
func (f *Font) parseASCII(data []byte) error {
	lx := newLexer(data)

	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			break
		}
		if tok.kind != tokLiteralName {
			continue
		}

		// tok is a dictionary key; dispatch on it and consume exactly the
		// value token(s) that belong to it before returning to the
		// top-level scan. Unrecognized keys are left for the next loop
		// iteration to skip over naturally.
		switch tok.text {
		case "FontName":
			n, err := lx.next()
			if err == nil && n.kind == tokLiteralName {
				f.FontName = n.text
			}
		case "FontType":
			n, err := lx.next()
			if err == nil && n.kind == tokInteger {
				f.FontType = int(n.ival)
			}
		case "FontMatrix":
			if err := parseNumberArray(lx, f.FontMatrix[:]); err != nil {
				common.Log.Debug("type1: bad FontMatrix: %v", err)
			}
		case "FontBBox":
			if err := parseNumberArray(lx, f.FontBBox[:]); err != nil {
				common.Log.Debug("type1: bad FontBBox: %v", err)
			}
		case "Encoding":
			n, err := lx.next()
			if err != nil {
				return err
			}
			if err := f.parseEncoding(lx, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseEncoding consumes either the bare name StandardEncoding or an
// inline "N array ... dup <code> /<name> put ... readonly def" block.
func (f *Font) parseEncoding(lx *lexer, first token) error {
	if first.kind == tokExecutableName && first.text == standardEncodingName {
		f.EncodingName = standardEncodingName
		return nil
	}
	if first.kind == tokExecutableName {
		return core.NewParseError(core.ErrDamagedFont, -1,
			fmt.Errorf("type1: unsupported named encoding %q", first.text))
	}
	if first.kind != tokInteger {
		// Not the array-length form we expect; bail out without error --
		// some fonts omit /Encoding entirely in the ASCII prologue.
		return nil
	}

	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			return nil
		}
		if tok.kind == tokExecutableName && tok.text == "readonly" {
			// consume trailing "def"
			lx.next()
			return nil
		}
		if tok.kind == tokExecutableName && tok.text == "def" {
			return nil
		}
		if tok.kind != tokExecutableName || tok.text != "dup" {
			continue
		}
		codeTok, err := lx.next()
		if err != nil || codeTok.kind != tokInteger {
			continue
		}
		nameTok, err := lx.next()
		if err != nil || nameTok.kind != tokLiteralName {
			continue
		}
		putTok, err := lx.next()
		if err != nil || putTok.kind != tokExecutableName || putTok.text != "put" {
			continue
		}
		f.Encoding[int(codeTok.ival)] = nameTok.text
	}
}

// parseNumberArray reads a bracketed array of exactly len(dst) numbers
// into dst, e.g. "[0.001 0 0 0.001 0 0]".
func parseNumberArray(lx *lexer, dst []float64) error {
	tok, err := lx.next()
	if err != nil {
		return err
	}
	if tok.kind != tokArrayStart {
		return fmt.Errorf("expected array start, got %v", tok.kind)
	}
	for i := range dst {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokInteger:
			dst[i] = float64(tok.ival)
		case tokReal:
			dst[i] = tok.fval
		default:
			return fmt.Errorf("expected number, got %v", tok.kind)
		}
	}
	tok, err = lx.next()
	if err != nil || tok.kind != tokArrayEnd {
		return fmt.Errorf("expected array end")
	}
	return nil
}

// parsePrivate walks the decrypted /Private dictionary for blue values,
// stem widths, lenIV, and the Subrs and CharStrings sub-dicts. Each
// charstring entry has the shape `/<name> <length> RD <bytes> ND`; the
// lexer's RD hook already turned the `<bytes>` run into a single
// tokCharstring.
func (f *Font) parsePrivate(data []byte) error {
	lx := newLexer(data)

	var lastLiteral string
	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			break
		}

		switch tok.kind {
		case tokLiteralName:
			lastLiteral = tok.text
			switch tok.text {
			case "Subrs":
				if err := f.parseSubrs(lx); err != nil {
					return err
				}
				lastLiteral = ""
			case "CharStrings":
				if err := f.parseCharStrings(lx); err != nil {
					return err
				}
				lastLiteral = ""
			}
		case tokInteger:
			switch lastLiteral {
			case "lenIV":
				f.LenIV = int(tok.ival)
			case "StdHW":
				f.StdHW = float64(tok.ival)
			case "StdVW":
				f.StdVW = float64(tok.ival)
			}
		case tokReal:
			switch lastLiteral {
			case "StdHW":
				f.StdHW = tok.fval
			case "StdVW":
				f.StdVW = tok.fval
			}
		case tokArrayStart:
			switch lastLiteral {
			case "BlueValues":
				f.BlueValues = readIntArrayBody(lx)
			case "OtherBlues":
				f.OtherBlues = readIntArrayBody(lx)
			case "StemSnapH":
				f.StemSnapH = readFloatArrayBody(lx)
			case "StemSnapV":
				f.StemSnapV = readFloatArrayBody(lx)
			}
		}

		// Each scalar/array key's value has now been consumed; clear the
		// pending key so a stray number elsewhere in the dict can't be
		// mistaken for another occurrence of it.
		switch tok.kind {
		case tokInteger, tokReal, tokArrayStart:
			lastLiteral = ""
		}
	}
	return nil
}

func readIntArrayBody(lx *lexer) []int {
	var out []int
	for {
		tok, err := lx.next()
		if err != nil || tok.kind == tokEOF || tok.kind == tokArrayEnd {
			return out
		}
		if tok.kind == tokInteger {
			out = append(out, int(tok.ival))
		}
	}
}

func readFloatArrayBody(lx *lexer) []float64 {
	var out []float64
	for {
		tok, err := lx.next()
		if err != nil || tok.kind == tokEOF || tok.kind == tokArrayEnd {
			return out
		}
		switch tok.kind {
		case tokInteger:
			out = append(out, float64(tok.ival))
		case tokReal:
			out = append(out, tok.fval)
		}
	}
}

// parseSubrs consumes "N array\n dup I L RD <bytes> NP ..." and populates
// f.Subrs, indexed by subroutine number. Entries are decrypted with the
// charstring key using f.LenIV.
func (f *Font) parseSubrs(lx *lexer) error {
	countTok, err := lx.next()
	if err != nil {
		return err
	}
	if countTok.kind != tokInteger {
		return nil
	}
	count := int(countTok.ival)
	f.Subrs = make([][]byte, count)

	// Consume the "array" executable name.
	lx.next()

	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			return nil
		}
		if tok.kind != tokExecutableName || tok.text != "dup" {
			if tok.kind == tokLiteralName {
				// We've reached the next dict key (e.g. /CharStrings); push
				// it back so parsePrivate's loop can dispatch on it.
				lx.unread(tok)
				return nil
			}
			continue
		}
		idxTok, err := lx.next()
		if err != nil || idxTok.kind != tokInteger {
			continue
		}
		lenTok, err := lx.next()
		if err != nil || lenTok.kind != tokInteger {
			continue
		}
		_ = lenTok // length is implicit in the CHARSTRING token itself
		rdTok, err := lx.next()
		if err != nil || rdTok.kind != tokCharstring {
			continue
		}
		idx := int(idxTok.ival)
		if idx >= 0 && idx < len(f.Subrs) {
			f.Subrs[idx] = decryptCharstring(rdTok.str, f.LenIV)
		}
		lx.next() // consume the trailing NP/|
	}
}

// parseCharStrings consumes "N dict dup begin\n /<name> L RD <bytes> ND ...
// end" and populates f.Charstrings.
func (f *Font) parseCharStrings(lx *lexer) error {
	// Consume "N dict dup begin".
	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			return nil
		}
		if tok.kind == tokExecutableName && tok.text == "begin" {
			break
		}
	}

	for {
		tok, err := lx.next()
		if err != nil {
			return err
		}
		if tok.kind == tokEOF {
			return nil
		}
		if tok.kind == tokExecutableName && tok.text == "end" {
			return nil
		}
		if tok.kind != tokLiteralName {
			continue
		}
		name := tok.text

		lenTok, err := lx.next()
		if err != nil || lenTok.kind != tokInteger {
			continue
		}
		_ = lenTok
		rdTok, err := lx.next()
		if err != nil {
			return err
		}
		if rdTok.kind != tokCharstring {
			continue
		}
		f.Charstrings[name] = decryptCharstring(rdTok.str, f.LenIV)
		lx.next() // consume the trailing ND/|-
	}
}
