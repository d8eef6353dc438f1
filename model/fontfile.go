/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// A font file is a stream containing a Type 1 font program. It appears in
// PDF files as a /FontFile entry in a /FontDescriptor dictionary (PDF
// 32000-1 §9.9). Only the two unencrypted .pfb segments are inspected
// here: the font's name and, where present, its built-in /Encoding array.
// Nothing downstream of this package draws glyphs from the font program
// itself, so the binary (eexec-encrypted) charstring segment is never
// decoded beyond locating its boundary.

package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core"
	"github.com/inkpath/pdfcore/internal/textencoding"
)

// fontFile holds what was recoverable from a /FontFile stream: its
// declared name and, if the font carried a custom /Encoding array, the
// encoder built from it.
type fontFile struct {
	name    string
	subtype string
	encoder textencoding.SimpleEncoder
}

func (fontfile *fontFile) String() string {
	encoding := "[None]"
	if fontfile.encoder != nil {
		encoding = fontfile.encoder.String()
	}
	return fmt.Sprintf("FONTFILE{%#q encoder=%s}", fontfile.name, encoding)
}

// newFontFileFromPdfObject loads a fontFile from the stream object a
// /FontFile entry points to.
func newFontFileFromPdfObject(obj core.PdfObject) (*fontFile, error) {
	common.Log.Trace("newFontFileFromPdfObject: obj=%s", obj)

	streamObj, ok := core.TraceToDirectObject(obj).(*core.PdfObjectStream)
	if !ok {
		common.Log.Debug("ERROR: FontFile must be a stream (%T)", obj)
		return nil, core.ErrTypeError
	}
	dict := streamObj.PdfObjectDictionary

	data, err := core.DecodeStream(streamObj)
	if err != nil {
		return nil, err
	}

	fontfile := &fontFile{}
	if subtype, ok := core.GetNameVal(dict.Get("Subtype")); !ok {
		fontfile.subtype = subtype
		if subtype == "Type1C" {
			common.Log.Debug("Type1C fonts are currently not supported")
			return nil, ErrType1CFontNotSupported
		}
	}

	asciiLen, binaryLen := clampSegmentLengths(len(data),
		intOrZero(dict.Get("Length1")), intOrZero(dict.Get("Length2")))
	if asciiLen == 0 || binaryLen == 0 {
		// Empty segments carry nothing to learn from; leave the name/encoder
		// unset rather than error.
		return fontfile, nil
	}

	if err := fontfile.parseASCIIPart(data[:asciiLen]); err != nil {
		return nil, err
	}
	return fontfile, nil
}

func intOrZero(obj core.PdfObject) int {
	v, _ := core.GetIntVal(obj)
	return v
}

// clampSegmentLengths trims the declared /Length1 and /Length2 values so
// neither segment reads past the end of the decoded stream.
func clampSegmentLengths(total, length1, length2 int) (int, int) {
	if length1 > total {
		length1 = total
	}
	if length1+length2 > total {
		length2 = total - length1
	}
	return length1, length2
}

// parseASCIIPart reads the cleartext .pfb segment: the "N dict begin ...
// def" key/value block, and, if present, the "/Encoding 256 array ...
// readonly def" block.
func (fontfile *fontFile) parseASCIIPart(data []byte) error {
	// A well-formed segment starts with "%!PS-AdobeFont..." or "%!FontType1...".
	if len(data) < 2 || string(data[:2]) != "%!" {
		return errors.New("invalid start of ASCII segment")
	}

	keySection, encodingSection, err := splitASCIISections(data)
	if err != nil {
		return err
	}

	keyValues := parseKeyValueDefs(keySection)
	fontfile.name = keyValues["FontName"]
	if fontfile.name == "" {
		common.Log.Debug(" FontFile has no /FontName")
	}

	if encodingSection == "" {
		return nil
	}

	codeToGlyph, err := parseEncodingDefs(encodingSection)
	if err != nil {
		return err
	}
	encoder, err := textencoding.NewCustomSimpleTextEncoder(codeToGlyph, nil)
	if err != nil {
		common.Log.Debug("ERROR :UNKNOWN GLYPH: err=%v", err)
		return nil
	}
	fontfile.encoder = encoder
	return nil
}

var (
	reDictBegin   = regexp.MustCompile(`\d+ dict\s+(dup\s+)?begin`)
	reKeyVal      = regexp.MustCompile(`^\s*/(\S+?)\s+(.+?)\s+def\s*$`)
	reEncodingDup = regexp.MustCompile(`^\s*dup\s+(\d+)\s*/(\w+?)(?:\.\d+)?\s+put$`)
	reLineBreak   = regexp.MustCompile(`[\n\r]+`)

	encodingArrayStart = "/Encoding 256 array"
	encodingArrayEnd   = "readonly def"
)

// splitASCIISections carves the key/value block and, if present, the
// encoding block out of the ASCII segment.
func splitASCIISections(data []byte) (keySection, encodingSection string, err error) {
	loc := reDictBegin.FindIndex(data)
	if loc == nil {
		common.Log.Debug("ERROR: splitASCIISections. No dict.")
		return "", "", core.ErrTypeError
	}
	body := string(data[loc[1]:])

	start := strings.Index(body, encodingArrayStart)
	if start < 0 {
		return body, "", nil
	}
	keySection = body[:start]

	rest := body[start:]
	end := strings.Index(rest, encodingArrayEnd)
	if end < 0 {
		common.Log.Debug("ERROR: splitASCIISections: no encoding end marker")
		return "", "", core.ErrTypeError
	}
	return keySection, rest[:end], nil
}

// parseKeyValueDefs extracts "/Key value def" lines into a map.
func parseKeyValueDefs(data string) map[string]string {
	keyValues := map[string]string{}
	for _, line := range reLineBreak.Split(data, -1) {
		if m := reKeyVal.FindStringSubmatch(line); m != nil {
			keyValues[m[1]] = m[2]
		}
	}
	return keyValues
}

// parseEncodingDefs extracts "dup <code> /<glyph> put" lines into a
// code-to-glyph-name map.
func parseEncodingDefs(data string) (map[textencoding.CharCode]textencoding.GlyphName, error) {
	codeToGlyph := make(map[textencoding.CharCode]textencoding.GlyphName)
	for _, line := range strings.Split(data, "\n") {
		m := reEncodingDup.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		code, err := strconv.Atoi(m[1])
		if err != nil {
			common.Log.Debug("ERROR: Bad encoding line. %q", line)
			return nil, core.ErrTypeError
		}
		codeToGlyph[textencoding.CharCode(code)] = textencoding.GlyphName(m[2])
	}
	common.Log.Trace("parseEncodingDefs: codeToGlyph=%#v", codeToGlyph)
	return codeToGlyph, nil
}

// decodeEexec reverses the eexec encryption (Adobe Type 1 Font Format
// §7.2) covering a Type 1 font's binary charstring segment.
func decodeEexec(data []byte) []byte {
	const r1, c1, c2 = 55665, 52845, 22719

	seed := r1
	for _, b := range data[:4] {
		seed = ((int(b)+seed)*c1 + c2) & 0xffff
	}
	decoded := make([]byte, len(data)-4)
	for i, b := range data[4:] {
		decoded[i] = byte(int(b) ^ seed>>8)
		seed = ((int(b)+seed)*c1 + c2) & 0xffff
	}
	return decoded
}

// isBinary reports whether data looks like raw eexec-encrypted bytes
// rather than its hex-encoded form.
func isBinary(data []byte) bool {
	if len(data) < 4 {
		return true
	}
	for _, b := range data[:4] {
		r := rune(b)
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
