/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core"

	"github.com/inkpath/pdfcore/internal/textencoding"
	"github.com/inkpath/pdfcore/model/internal/fonts"
)

var _ pdfFont = (*pdfFontSimple)(nil)

// pdfFontSimple is a simple font (PDF 32000-1 §9.6): glyphs are selected by
// a single byte per character code, indexing a 256-entry encoding, and
// every glyph carries one horizontal width.
type pdfFontSimple struct {
	fontCommon
	container *core.PdfIndirectObject

	charWidths map[textencoding.CharCode]float64

	// encoder is built from the font dict's /Encoding entry, if present.
	encoder textencoding.TextEncoder
	// std14Encoder is the builtin encoder for one of the standard 14 fonts,
	// used when the dict carries no /Encoding of its own.
	std14Encoder textencoding.TextEncoder
	// std14Descriptor stands in for a missing /FontDescriptor on a
	// standard 14 font.
	std14Descriptor *PdfFontDescriptor

	FirstChar core.PdfObject
	LastChar  core.PdfObject
	Widths    core.PdfObject
	Encoding  core.PdfObject

	fontMetrics map[rune]fonts.CharMetrics
}

func pdfFontSimpleFromSkeleton(base *fontCommon) *pdfFontSimple {
	return &pdfFontSimple{fontCommon: *base}
}

func (font *pdfFontSimple) baseFields() *fontCommon {
	return &font.fontCommon
}

func (font *pdfFontSimple) getFontDescriptor() *PdfFontDescriptor {
	if d := font.fontDescriptor; d != nil {
		return d
	}
	return font.std14Descriptor
}

// Encoder returns the font's text encoder, falling back from an explicit
// /Encoding to the standard-14 builtin encoder to plain StandardEncoding.
func (font *pdfFontSimple) Encoder() textencoding.TextEncoder {
	if font.encoder != nil {
		return font.encoder
	}
	if font.std14Encoder != nil {
		return font.std14Encoder
	}
	enc, _ := textencoding.NewSimpleTextEncoder("StandardEncoding", nil)
	return enc
}

// SetEncoder sets the encoding for the underlying font.
func (font *pdfFontSimple) SetEncoder(encoder textencoding.TextEncoder) {
	font.encoder = encoder
}

// GetRuneMetrics returns the character metrics for the rune, and whether
// an entry was found for it.
func (font pdfFontSimple) GetRuneMetrics(r rune) (fonts.CharMetrics, bool) {
	if font.fontMetrics != nil {
		if metrics, has := font.fontMetrics[r]; has {
			return metrics, true
		}
	}

	encoder := font.Encoder()
	if encoder == nil {
		common.Log.Debug("No encoder for fonts=%s", font)
		return fonts.CharMetrics{}, false
	}
	code, found := encoder.RuneToCharcode(r)
	if !found {
		if r != ' ' {
			common.Log.Trace("No charcode for rune=%v font=%s", r, font)
		}
		return fonts.CharMetrics{}, false
	}
	return font.GetCharMetrics(code)
}

// GetCharMetrics returns the character metrics for code, checked in order:
// the font's own /Widths array, then a standard-14 fallback of 250 units
// (matching what Acrobat does per PDFBOX-2334), then not-found.
func (font pdfFontSimple) GetCharMetrics(code textencoding.CharCode) (fonts.CharMetrics, bool) {
	if width, ok := font.charWidths[code]; ok {
		return fonts.CharMetrics{Wx: width}, true
	}
	if fonts.IsStdFont(fonts.StdFontName(font.basefont)) {
		return fonts.CharMetrics{Wx: 250}, true
	}
	return fonts.CharMetrics{}, false
}

// newSimpleFontFromPdfObject builds a pdfFontSimple from a font dictionary.
// base carries the fields already parsed by the caller. std14Encoder is
// non-nil only for one of the standard 14 fonts, which skip
// FirstChar/LastChar/Widths parsing in favor of their builtin metrics.
func newSimpleFontFromPdfObject(d *core.PdfObjectDictionary, base *fontCommon,
	std14Encoder textencoding.TextEncoder) (*pdfFontSimple, error) {
	font := pdfFontSimpleFromSkeleton(base)
	font.std14Encoder = std14Encoder

	if std14Encoder == nil {
		if err := font.loadCharWidths(d); err != nil {
			return nil, err
		}
	}

	font.Encoding = core.TraceToDirectObject(d.Get("Encoding"))
	return font, nil
}

// loadCharWidths parses FirstChar/LastChar/Widths into font.charWidths.
func (font *pdfFontSimple) loadCharWidths(d *core.PdfObjectDictionary) error {
	firstObj := d.Get("FirstChar")
	if firstObj == nil {
		// Not defined in every producer's output, e.g. ~/testdata/shamirturing.pdf.
		firstObj = core.MakeInteger(0)
	}
	font.FirstChar = firstObj
	firstInt, ok := core.GetIntVal(firstObj)
	if !ok {
		common.Log.Debug("ERROR: Invalid FirstChar type (%T)", firstObj)
		return core.ErrTypeError
	}
	firstChar := textencoding.CharCode(firstInt)

	lastObj := d.Get("LastChar")
	if lastObj == nil {
		lastObj = core.MakeInteger(255)
	}
	font.LastChar = lastObj
	lastInt, ok := core.GetIntVal(lastObj)
	if !ok {
		common.Log.Debug("ERROR: Invalid LastChar type (%T)", lastObj)
		return core.ErrTypeError
	}
	lastChar := textencoding.CharCode(lastInt)

	font.charWidths = make(map[textencoding.CharCode]float64)
	widthsObj := d.Get("Widths")
	if widthsObj == nil {
		return nil
	}
	font.Widths = widthsObj

	arr, ok := core.GetArray(widthsObj)
	if !ok {
		common.Log.Debug("ERROR: Widths attribute != array (%T)", widthsObj)
		return core.ErrTypeError
	}
	widths, err := arr.ToFloat64Array()
	if err != nil {
		common.Log.Debug("ERROR: converting widths to array")
		return err
	}
	if len(widths) != int(lastChar-firstChar+1) {
		common.Log.Debug("ERROR: Invalid widths length != %d (%d)", lastChar-firstChar+1, len(widths))
		return core.ErrRangeError
	}
	for i, w := range widths {
		font.charWidths[firstChar+textencoding.CharCode(i)] = w
	}
	return nil
}

// addEncoding resolves font.encoder in priority order: an encoder already
// set, then the /Encoding dict/name, then the embedded font program, with
// any Differences array applied last regardless of the source.
func (font *pdfFontSimple) addEncoding() error {
	var (
		baseEncoder string
		differences map[textencoding.CharCode]textencoding.GlyphName
		encoder     textencoding.SimpleEncoder
	)

	if simple, ok := font.Encoder().(textencoding.SimpleEncoder); ok && simple != nil {
		baseEncoder = simple.BaseName()
	}

	if font.Encoding != nil {
		baseEncoderName, diffs, err := font.getFontEncoding()
		if err != nil {
			common.Log.Debug("ERROR: BaseFont=%q Subtype=%q Encoding=%s (%T) err=%v", font.basefont,
				font.subtype, font.Encoding, font.Encoding, err)
			return err
		}
		if baseEncoderName != "" {
			baseEncoder = baseEncoderName
		}
		differences = diffs

		encoder, err = textencoding.NewSimpleTextEncoder(baseEncoder, differences)
		if err != nil {
			return err
		}
	}

	if encoder == nil {
		encoder = font.encoderFromEmbeddedFontProgram()
	}

	if encoder != nil {
		if differences != nil {
			common.Log.Trace("differences=%+v font=%s", differences, font.baseFields())
			encoder = textencoding.ApplyDifferences(encoder, differences)
		}
		font.SetEncoder(encoder)
	}
	return nil
}

// encoderFromEmbeddedFontProgram falls back to an encoder salvaged from the
// font's own FontFile (Type1) or FontFile2 (TrueType) program.
func (font *pdfFontSimple) encoderFromEmbeddedFontProgram() textencoding.SimpleEncoder {
	descriptor := font.fontDescriptor
	if descriptor == nil {
		return nil
	}
	switch font.subtype {
	case "Type1":
		if descriptor.fontFile != nil && descriptor.fontFile.encoder != nil {
			common.Log.Debug("Using fontFile")
			return descriptor.fontFile.encoder
		}
	case "TrueType":
		if descriptor.fontFile2 != nil {
			common.Log.Debug("Using FontFile2")
			if enc, err := descriptor.fontFile2.MakeEncoder(); err == nil {
				return enc
			}
		}
	}
	return nil
}

var builtinEncodings = map[string]string{
	"Symbol":       "SymbolEncoding",
	"ZapfDingbats": "ZapfDingbatsEncoding",
}

// getFontEncoding reads the "Encoding" entry of a simple font dict (PDF
// 32000-1 §9.6.6), which may be absent, a bare name, or a dictionary
// naming a BaseEncoding plus a Differences array.
func (font *pdfFontSimple) getFontEncoding() (baseName string, differences map[textencoding.CharCode]textencoding.GlyphName, err error) {
	baseName = "StandardEncoding"
	if name, ok := builtinEncodings[font.basefont]; ok {
		baseName = name
	} else if font.fontFlags()&fontFlagSymbolic != 0 {
		for base, name := range builtinEncodings {
			if strings.Contains(font.basefont, base) {
				baseName = name
				break
			}
		}
	}

	if font.Encoding == nil {
		// The base encoding is only ever overridden by a FontFile entry, and
		// the only names seen there are StandardEncoding or nothing.
		return baseName, nil, nil
	}

	switch encoding := font.Encoding.(type) {
	case *core.PdfObjectName:
		return string(*encoding), nil, nil
	case *core.PdfObjectDictionary:
		if base, ok := core.GetName(encoding.Get("BaseEncoding")); ok {
			baseName = base.String()
		}
		if diffObj := encoding.Get("Differences"); diffObj != nil {
			diffList, ok := core.GetArray(diffObj)
			if !ok {
				common.Log.Debug("ERROR: Bad font encoding dict=%+v Differences=%T",
					encoding, encoding.Get("Differences"))
				return "", nil, core.ErrTypeError
			}
			differences, err = textencoding.FromFontDifferences(diffList)
		}
		return baseName, differences, err
	default:
		common.Log.Debug("ERROR: Encoding not a name or dict (%T) %s", font.Encoding, font.Encoding)
		return "", nil, core.ErrTypeError
	}
}

// ToPdfObject converts the pdfFontSimple to its PDF representation for outputting.
func (font *pdfFontSimple) ToPdfObject() core.PdfObject {
	if font.container == nil {
		font.container = &core.PdfIndirectObject{}
	}
	d := font.baseFields().asPdfObjectDictionary("")
	font.container.PdfObject = d

	if font.FirstChar != nil {
		d.Set("FirstChar", font.FirstChar)
	}
	if font.LastChar != nil {
		d.Set("LastChar", font.LastChar)
	}
	if font.Widths != nil {
		d.Set("Widths", font.Widths)
	}
	if font.Encoding != nil {
		d.Set("Encoding", font.Encoding)
	} else if font.encoder != nil {
		if encObj := font.encoder.ToPdfObject(); encObj != nil {
			d.Set("Encoding", encObj)
		}
	}

	return font.container
}

// NewPdfFontFromTTFFile loads a TTF font file and returns a PdfFont usable
// in text styling functions. Uses WinAnsiEncoding and loads only character
// codes 32-255; use NewCompositePdfFontFromTTFFile for symbolic scripts.
func NewPdfFontFromTTFFile(filePath string) (*PdfFont, error) {
	f, err := os.Open(filePath)
	if err != nil {
		common.Log.Debug("ERROR: reading TTF font file: %v", err)
		return nil, err
	}
	defer f.Close()

	return NewPdfFontFromTTF(f)
}

// NewPdfFontFromTTF loads a TTF font and returns a PdfFont usable in text
// styling functions. Uses WinAnsiEncoding and loads only character codes
// 32-255; use NewCompositePdfFontFromTTF for symbolic scripts.
func NewPdfFontFromTTF(r io.ReadSeeker) (*PdfFont, error) {
	const minCode = textencoding.CharCode(32)
	const maxCode = textencoding.CharCode(255)

	ttfBytes, err := ioutil.ReadAll(r)
	if err != nil {
		common.Log.Debug("ERROR: Unable to read font contents: %v", err)
		return nil, err
	}
	ttf, err := fonts.TtfParse(bytes.NewReader(ttfBytes))
	if err != nil {
		common.Log.Debug("ERROR: loading TTF font: %v", err)
		return nil, err
	}
	if len(ttf.Widths) == 0 {
		return nil, errors.New("ERROR: Missing required attribute (Widths)")
	}

	truefont := &pdfFontSimple{
		charWidths: make(map[textencoding.CharCode]float64),
		fontCommon: fontCommon{subtype: "TrueType"},
		encoder:    textencoding.NewWinAnsiEncoder(),
	}
	truefont.basefont = ttf.PostScriptName
	truefont.FirstChar = core.MakeInteger(int64(minCode))
	truefont.LastChar = core.MakeInteger(int64(maxCode))
	truefont.Encoding = core.MakeName("WinAnsiEncoding")

	emScale := 1000.0 / float64(ttf.UnitsPerEm)
	vals, err := ttfGlyphWidths(ttf, truefont.Encoder(), minCode, maxCode, emScale)
	if err != nil {
		return nil, err
	}
	truefont.Widths = core.MakeIndirectObject(core.MakeArrayFromFloats(vals))
	for i := minCode; i <= maxCode; i++ {
		truefont.charWidths[i] = vals[i-minCode]
	}

	stream, err := core.MakeStream(ttfBytes, core.NewFlateEncoder())
	if err != nil {
		common.Log.Debug("ERROR: Unable to make stream: %v", err)
		return nil, err
	}
	stream.PdfObjectDictionary.Set("Length1", core.MakeInteger(int64(len(ttfBytes))))

	truefont.fontDescriptor = ttfFontDescriptor(ttf, emScale, stream)

	return &PdfFont{context: truefont}, nil
}

// ttfGlyphWidths maps each char code in [minCode, maxCode] to its glyph
// advance width, in 1000-unit glyph space, falling back to the font's
// .notdef width for codes with no mapped rune or glyph.
func ttfGlyphWidths(ttf fonts.TtfType, enc textencoding.TextEncoder, minCode, maxCode textencoding.CharCode, emScale float64) ([]float64, error) {
	missingWidth := emScale * float64(ttf.Widths[0])

	vals := make([]float64, 0, maxCode-minCode+1)
	for code := minCode; code <= maxCode; code++ {
		r, found := enc.CharcodeToRune(code)
		if !found {
			common.Log.Debug("Rune not found (code: %d)", code)
			vals = append(vals, missingWidth)
			continue
		}
		gid, ok := ttf.Chars[r]
		if !ok {
			common.Log.Debug("Rune not in TTF Chars")
			vals = append(vals, missingWidth)
			continue
		}
		vals = append(vals, emScale*float64(ttf.Widths[gid]))
	}

	if len(vals) < int(maxCode-minCode+1) {
		common.Log.Debug("ERROR: Invalid length of widths, %d < %d", len(vals), maxCode-minCode+1)
		return nil, core.ErrRangeError
	}
	return vals, nil
}

// ttfFontDescriptor builds the FontDescriptor entries derivable from a
// parsed TTF's head/hhea/OS2 tables, plus the embedded font program stream.
func ttfFontDescriptor(ttf fonts.TtfType, emScale float64, fontFile2 *core.PdfObjectStream) *PdfFontDescriptor {
	descriptor := &PdfFontDescriptor{}
	descriptor.FontName = core.MakeName(ttf.PostScriptName)
	descriptor.Ascent = core.MakeFloat(emScale * float64(ttf.TypoAscender))
	descriptor.Descent = core.MakeFloat(emScale * float64(ttf.TypoDescender))
	descriptor.CapHeight = core.MakeFloat(emScale * float64(ttf.CapHeight))
	descriptor.FontBBox = core.MakeArrayFromFloats([]float64{
		emScale * float64(ttf.Xmin), emScale * float64(ttf.Ymin),
		emScale * float64(ttf.Xmax), emScale * float64(ttf.Ymax),
	})
	descriptor.ItalicAngle = core.MakeFloat(float64(ttf.ItalicAngle))
	descriptor.MissingWidth = core.MakeFloat(emScale * float64(ttf.Widths[0]))
	descriptor.FontFile2 = fontFile2

	if ttf.Bold {
		descriptor.StemV = core.MakeInteger(120)
	} else {
		descriptor.StemV = core.MakeInteger(70)
	}

	flags := fontFlagNonsymbolic
	if ttf.IsFixedPitch {
		flags |= fontFlagFixedPitch
	}
	if ttf.ItalicAngle != 0 {
		flags |= fontFlagItalic
	}
	descriptor.Flags = core.MakeInteger(int64(flags))

	return descriptor
}

// updateStandard14Font fills font.charWidths from the standard 14 metrics
// table. Only valid to call on a font that is actually one of the 14.
func (font *pdfFontSimple) updateStandard14Font() {
	se, ok := font.Encoder().(textencoding.SimpleEncoder)
	if !ok {
		common.Log.Error("Wrong encoder type: %T. font=%s.", font.Encoder(), font)
		return
	}

	codes := se.Charcodes()
	font.charWidths = make(map[textencoding.CharCode]float64, len(codes))
	for _, code := range codes {
		// Built from the same mapping, so every code has a rune.
		r, _ := se.CharcodeToRune(code)
		font.charWidths[code] = font.fontMetrics[r].Wx
	}
}

func stdFontToSimpleFont(f fonts.StdFont) pdfFontSimple {
	l := f.Descriptor()
	return pdfFontSimple{
		fontCommon: fontCommon{
			subtype:  "Type1",
			basefont: f.Name(),
		},
		fontMetrics: f.GetMetricsTable(),
		std14Descriptor: &PdfFontDescriptor{
			FontName:    core.MakeName(string(l.Name)),
			FontFamily:  core.MakeName(l.Family),
			FontWeight:  core.MakeFloat(float64(l.Weight)),
			Flags:       core.MakeInteger(int64(l.Flags)),
			FontBBox:    core.MakeArrayFromFloats(l.BBox[:]),
			ItalicAngle: core.MakeFloat(l.ItalicAngle),
			Ascent:      core.MakeFloat(l.Ascent),
			Descent:     core.MakeFloat(l.Descent),
			CapHeight:   core.MakeFloat(l.CapHeight),
			XHeight:     core.MakeFloat(l.XHeight),
			StemV:       core.MakeFloat(l.StemV),
			StemH:       core.MakeFloat(l.StemH),
		},
		std14Encoder: f.Encoder(),
	}
}
