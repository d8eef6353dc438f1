/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core"

	"github.com/inkpath/pdfcore/internal/cmap"
	"github.com/inkpath/pdfcore/internal/textencoding"
	"github.com/inkpath/pdfcore/model/internal/fonts"
)

// pdfFont is the behavior every concrete font representation (simple,
// Type0, CIDFontType0, CIDFontType2) must supply.
type pdfFont interface {
	fonts.Font
	ToPdfObject() core.PdfObject
	getFontDescriptor() *PdfFontDescriptor
	baseFields() *fontCommon
}

// PdfFont wraps one of the concrete font representations (Type0, Type1,
// TrueType, ...) behind a single public type.
type PdfFont struct {
	context pdfFont
}

// SubsetRegistered subsets the font down to the glyphs the encoder has
// registered uses for. Only embedded TrueType CID fonts (Type0) support
// this; every other font type is a no-op. Call this right before writing,
// once every rune that will be shown has been registered.
func (font *PdfFont) SubsetRegistered() error {
	t, ok := font.context.(*pdfFontType0)
	if !ok {
		common.Log.Debug("Font %T does not support subsetting", font.context)
		return nil
	}

	if err := t.subsetRegistered(); err != nil {
		common.Log.Debug("Subset error: %v", err)
		return err
	}
	if t.container != nil {
		if t.encoder != nil {
			t.encoder.ToPdfObject() // Forces the encoder object to refresh.
		}
		t.ToPdfObject() // Forces the font object to refresh.
	}
	return nil
}

// GetFontDescriptor returns the font descriptor for `font`.
func (font PdfFont) GetFontDescriptor() (*PdfFontDescriptor, error) {
	return font.context.getFontDescriptor(), nil
}

func (font *PdfFont) String() string {
	enc := ""
	if font.context.Encoder() != nil {
		enc = font.context.Encoder().String()
	}
	return fmt.Sprintf("FONT{%T %s %s}", font.context, font.baseFields().coreString(), enc)
}

// BaseFont returns the font's "BaseFont" field.
func (font *PdfFont) BaseFont() string {
	return font.baseFields().basefont
}

// Subtype returns the font's "Subtype" field.
func (font *PdfFont) Subtype() string {
	subtype := font.baseFields().subtype
	if t, ok := font.context.(*pdfFontType0); ok {
		subtype = subtype + ":" + t.DescendantFont.Subtype()
	}
	return subtype
}

// IsCID returns true if the underlying font is CID.
func (font *PdfFont) IsCID() bool {
	return font.baseFields().isCIDFont()
}

// FontDescriptor returns font's PdfFontDescriptor: a builtin descriptor for
// standard 14 fonts, an explicit one for everything else.
func (font *PdfFont) FontDescriptor() *PdfFontDescriptor {
	if d := font.baseFields().fontDescriptor; d != nil {
		return d
	}
	if d := font.context.getFontDescriptor(); d != nil {
		return d
	}
	common.Log.Error("All fonts have a Descriptor. font=%s", font)
	return nil
}

// ToUnicode returns the font's "ToUnicode" CMap name, or "" if it has none.
func (font *PdfFont) ToUnicode() string {
	if cm := font.baseFields().toUnicodeCmap; cm != nil {
		return cm.Name()
	}
	return ""
}

// DefaultFont returns the default font, currently the builtin Helvetica.
func DefaultFont() *PdfFont {
	helvetica, ok := fonts.NewStdFontByName(HelveticaName)
	if !ok {
		panic("Helvetica should always be available")
	}
	std := stdFontToSimpleFont(helvetica)
	return &PdfFont{context: &std}
}

func newStandard14Font(basefont StdFontName) (pdfFontSimple, error) {
	fnt, ok := fonts.NewStdFontByName(basefont)
	if !ok {
		return pdfFontSimple{}, ErrFontNotSupported
	}
	return stdFontToSimpleFont(fnt), nil
}

// StdFontName represents name of a standard font.
type StdFontName = fonts.StdFontName

// Names of the standard 14 fonts.
var (
	CourierName              = fonts.CourierName
	CourierBoldName          = fonts.CourierBoldName
	CourierObliqueName       = fonts.CourierObliqueName
	CourierBoldObliqueName   = fonts.CourierBoldObliqueName
	HelveticaName            = fonts.HelveticaName
	HelveticaBoldName        = fonts.HelveticaBoldName
	HelveticaObliqueName     = fonts.HelveticaObliqueName
	HelveticaBoldObliqueName = fonts.HelveticaBoldObliqueName
	SymbolName               = fonts.SymbolName
	ZapfDingbatsName         = fonts.ZapfDingbatsName
	TimesRomanName           = fonts.TimesRomanName
	TimesBoldName            = fonts.TimesBoldName
	TimesItalicName          = fonts.TimesItalicName
	TimesBoldItalicName      = fonts.TimesBoldItalicName
)

// NewStandard14Font returns the standard 14 font named `basefont` as a
// *PdfFont, or an error if `basefont` isn't one of the standard 14 names.
func NewStandard14Font(basefont StdFontName) (*PdfFont, error) {
	std, err := newStandard14Font(basefont)
	if err != nil {
		return nil, err
	}
	if basefont != SymbolName && basefont != ZapfDingbatsName {
		// WinAnsiEncoder spans the widest range of symbols among the choices
		// available for text generation.
		std.encoder = textencoding.NewWinAnsiEncoder()
	}
	return &PdfFont{context: &std}, nil
}

// NewStandard14FontMustCompile returns the standard 14 font named
// `basefont` as a *PdfFont. Guaranteed to succeed for any of the 14
// Standard14Font values declared above.
func NewStandard14FontMustCompile(basefont StdFontName) *PdfFont {
	font, err := NewStandard14Font(basefont)
	if err != nil {
		panic(fmt.Errorf("invalid Standard14Font %#q", basefont))
	}
	return font
}

// NewStandard14FontWithEncoding returns the standard 14 font named
// `basefont` as a *PdfFont together with a TextEncoder that can encode
// every rune in `alphabet`, or an error if that isn't possible.
func NewStandard14FontWithEncoding(basefont StdFontName, alphabet map[rune]int) (*PdfFont,
	textencoding.SimpleEncoder, error) {
	std, err := newStandard14Font(basefont)
	if err != nil {
		return nil, nil, err
	}
	enc, ok := std.Encoder().(textencoding.SimpleEncoder)
	if !ok {
		return nil, nil, fmt.Errorf("only simple encoding is supported, got %T", std.Encoder())
	}

	missing, err := missingGlyphsForAlphabet(alphabet, enc, std.fontMetrics)
	if err != nil {
		return nil, nil, err
	}

	differences, err := assignReplacementCodes(enc, alphabet, missing)
	if err != nil {
		return nil, nil, err
	}

	enc = textencoding.ApplyDifferences(enc, differences)
	std.SetEncoder(enc)
	return &PdfFont{context: &std}, enc, nil
}

// missingGlyphsForAlphabet finds the runes of alphabet that enc cannot
// already encode but that the font's own metrics table and the Unicode
// glyph-name table both know about.
func missingGlyphsForAlphabet(alphabet map[rune]int, enc textencoding.SimpleEncoder,
	fontMetrics map[rune]fonts.CharMetrics) (map[rune]textencoding.GlyphName, error) {
	missing := make(map[rune]textencoding.GlyphName)
	for r := range alphabet {
		if _, ok := enc.RuneToCharcode(r); ok {
			continue
		}
		if _, ok := fontMetrics[r]; !ok {
			common.Log.Trace("rune %#x=%q not in the font", r, r)
			continue
		}
		glyph, ok := textencoding.RuneToGlyph(r)
		if !ok {
			common.Log.Debug("no glyph for rune %#x=%q", r, r)
			continue
		}
		if len(missing) >= 255 {
			return nil, errors.New("too many characters for simple encoding")
		}
		missing[r] = glyph
	}
	return missing, nil
}

// assignReplacementCodes picks a charcode for each rune in missing, taken
// from slots enc.Encoding doesn't use for a rune in alphabet: first the
// gaps in enc's table, then the codes alphabet never visits.
func assignReplacementCodes(enc textencoding.SimpleEncoder, alphabet map[rune]int,
	missing map[rune]textencoding.GlyphName) (map[textencoding.CharCode]textencoding.GlyphName, error) {
	var gaps, unused []textencoding.CharCode
	for code := textencoding.CharCode(1); code <= 0xff; code++ {
		r, ok := enc.CharcodeToRune(code)
		if !ok {
			gaps = append(gaps, code)
			continue
		}
		if _, ok := alphabet[r]; !ok {
			unused = append(unused, code)
		}
	}
	replacable := append(gaps, unused...)

	if len(replacable) < len(missing) {
		return nil, fmt.Errorf("need to encode %d runes, but have only %d slots", len(missing), len(replacable))
	}

	runes := make([]rune, 0, len(missing))
	for r := range missing {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	differences := make(map[textencoding.CharCode]textencoding.GlyphName, len(runes))
	for _, r := range runes {
		differences[replacable[0]] = missing[r]
		replacable = replacable[1:]
	}
	return differences, nil
}

// GetAlphabet returns a map of the runes in `text` and their frequencies.
func GetAlphabet(text string) map[rune]int {
	alphabet := map[rune]int{}
	for _, r := range text {
		alphabet[r]++
	}
	return alphabet
}

// NewPdfFontFromPdfObject loads a PdfFont from the dictionary `fontObj`.
func NewPdfFontFromPdfObject(fontObj core.PdfObject) (*PdfFont, error) {
	return newPdfFontFromPdfObject(fontObj, true)
}

// newPdfFontFromPdfObject loads a PdfFont from the dictionary `fontObj`.
// allowType0 disables loading a Type0 font, used to prevent its descendant
// font from itself recursing into a Type0 load.
func newPdfFontFromPdfObject(fontObj core.PdfObject, allowType0 bool) (*PdfFont, error) {
	d, base, err := newFontBaseFieldsFromPdfObject(fontObj)
	if err != nil {
		if err == ErrType3FontNotSupported || err == ErrType1CFontNotSupported {
			// Return enough information for the caller to inspect font
			// properties even though this subtype isn't fully supported.
			simplefont, err2 := newSimpleFontFromPdfObject(d, base, nil)
			if err2 != nil {
				common.Log.Debug("ERROR: While loading simple font: font=%s err=%v", base, err2)
				return nil, err
			}
			return &PdfFont{context: simplefont}, err
		}
		return nil, err
	}

	font := &PdfFont{}
	switch base.subtype {
	case "Type0":
		if !allowType0 {
			common.Log.Debug("ERROR: Loading type0 not allowed. font=%s", base)
			return nil, errors.New("cyclical type0 loading")
		}
		type0font, err := newPdfFontType0FromPdfObject(d, base)
		if err != nil {
			common.Log.Debug("ERROR: While loading Type0 font. font=%s err=%v", base, err)
			return nil, err
		}
		font.context = type0font
	case "Type1", "Type3", "MMType1", "TrueType":
		simplefont, err := loadSimpleFontDict(d, base)
		if err != nil {
			return nil, err
		}
		font.context = simplefont
	case "CIDFontType0":
		cidfont, err := newPdfCIDFontType0FromPdfObject(d, base)
		if err != nil {
			common.Log.Debug("ERROR: While loading cid font type0 font: %v", err)
			return nil, err
		}
		font.context = cidfont
	case "CIDFontType2":
		cidfont, err := newPdfCIDFontType2FromPdfObject(d, base)
		if err != nil {
			common.Log.Debug("ERROR: While loading cid font type2 font. font=%s err=%v", base, err)
			return nil, err
		}
		font.context = cidfont
	default:
		common.Log.Debug("ERROR: Unsupported font type: font=%s", base)
		return nil, fmt.Errorf("unsupported font type: font=%s", base)
	}

	return font, nil
}

// loadSimpleFontDict builds a pdfFontSimple for Type1/Type3/MMType1/TrueType
// dicts, special-casing BaseFont names that match one of the standard 14 so
// their builtin metrics and encoding are used as a foundation.
func loadSimpleFontDict(d *core.PdfObjectDictionary, base *fontCommon) (*pdfFontSimple, error) {
	var simplefont *pdfFontSimple

	fnt, builtin := fonts.NewStdFontByName(fonts.StdFontName(base.basefont))
	if builtin {
		std := stdFontToSimpleFont(fnt)

		stdObj := core.TraceToDirectObject(std.ToPdfObject())
		d14, stdBase, err := newFontBaseFieldsFromPdfObject(stdObj)
		if err != nil {
			common.Log.Debug("ERROR: Bad Standard14\n\tfont=%s\n\tstd=%+v", base, std)
			return nil, err
		}
		for _, k := range d.Keys() {
			d14.Set(k, d.Get(k))
		}

		simplefont, err = newSimpleFontFromPdfObject(d14, stdBase, std.std14Encoder)
		if err != nil {
			common.Log.Debug("ERROR: Bad Standard14\n\tfont=%s\n\tstd=%+v", base, std)
			return nil, err
		}
		simplefont.charWidths = std.charWidths
		simplefont.fontMetrics = std.fontMetrics
	} else {
		var err error
		simplefont, err = newSimpleFontFromPdfObject(d, base, nil)
		if err != nil {
			common.Log.Debug("ERROR: While loading simple font: font=%s err=%v", base, err)
			return nil, err
		}
	}

	if err := simplefont.addEncoding(); err != nil {
		return nil, err
	}
	if builtin {
		simplefont.updateStandard14Font()
		if simplefont.encoder == nil && simplefont.std14Encoder == nil {
			common.Log.Error("simplefont=%s", simplefont)
			common.Log.Error("fnt=%+v", fnt)
		}
	}
	if len(simplefont.charWidths) == 0 {
		common.Log.Debug("ERROR: No widths. font=%s", simplefont)
	}
	return simplefont, nil
}

// BytesToCharcodes converts the bytes in a PDF string to character codes.
func (font *PdfFont) BytesToCharcodes(data []byte) []textencoding.CharCode {
	common.Log.Trace("BytesToCharcodes: data=[% 02x]=%#q", data, data)
	if type0, ok := font.context.(*pdfFontType0); ok && type0.codeToCID != nil {
		if charcodes, ok := type0.bytesToCharcodes(data); ok {
			return charcodes
		}
	}

	charcodes := make([]textencoding.CharCode, 0, len(data)+len(data)%2)
	if font.baseFields().isCIDFont() {
		if len(data) == 1 {
			data = []byte{0, data[0]}
		}
		if len(data)%2 != 0 {
			common.Log.Debug("ERROR: Padding data=%+v to even length", data)
			data = append(data, 0)
		}
		for i := 0; i < len(data); i += 2 {
			b := uint16(data[i])<<8 | uint16(data[i+1])
			charcodes = append(charcodes, textencoding.CharCode(b))
		}
	} else {
		for _, b := range data {
			charcodes = append(charcodes, textencoding.CharCode(b))
		}
	}
	return charcodes
}

// CharcodesToUnicodeWithStats is CharcodesToUnicode plus hit/miss counts
// from the reverse mapping. The rune count returned may exceed the
// charcode count.
func (font *PdfFont) CharcodesToUnicodeWithStats(charcodes []textencoding.CharCode) (runelist []rune, numHits, numMisses int) {
	texts, numHits, numMisses := font.CharcodesToStrings(charcodes)
	return []rune(strings.Join(texts, "")), numHits, numMisses
}

// CharcodesToStrings returns the unicode strings corresponding to
// `charcodes`, one string per charcode, and the number that could not be
// converted.
func (font *PdfFont) CharcodesToStrings(charcodes []textencoding.CharCode) ([]string, int, int) {
	fontBase := font.baseFields()
	texts := make([]string, 0, len(charcodes))
	numMisses := 0
	for _, code := range charcodes {
		if fontBase.toUnicodeCmap != nil {
			if s, ok := fontBase.toUnicodeCmap.CharcodeToUnicode(cmap.CharCode(code)); ok {
				texts = append(texts, s)
				continue
			}
		}

		encoder := font.Encoder()
		if encoder != nil {
			if r, ok := encoder.CharcodeToRune(code); ok {
				texts = append(texts, string(r))
				continue
			}
		}

		common.Log.Debug("ERROR: No rune. code=0x%04x charcodes=[% 04x] CID=%t\n"+
			"\tfont=%s\n\tencoding=%s",
			code, charcodes, fontBase.isCIDFont(), font, encoder)
		numMisses++
		texts = append(texts, cmap.MissingCodeString)
	}

	if numMisses != 0 {
		common.Log.Debug("ERROR: Couldn't convert to unicode. Using input.\n"+
			"\tnumChars=%d numMisses=%d\n"+
			"\tfont=%s",
			len(charcodes), numMisses, font)
	}

	return texts, len(texts), numMisses
}

// CharcodeBytesToUnicode converts PDF character codes `data` to a Go
// unicode string (PDF 32000-1 §9.10).
func (font *PdfFont) CharcodeBytesToUnicode(data []byte) (string, int, int) {
	runes, _, numMisses := font.CharcodesToUnicodeWithStats(font.BytesToCharcodes(data))
	str := textencoding.ExpandLigatures(runes)
	return str, utf8.RuneCountInString(str), numMisses
}

// CharcodesToUnicode converts charcodes to runes, preferring the
// ToUnicode CMap and falling back to the font's own encoding.
func (font *PdfFont) CharcodesToUnicode(charcodes []textencoding.CharCode) []rune {
	runes, _, _ := font.CharcodesToUnicodeWithStats(charcodes)
	return runes
}

// RunesToCharcodeBytes maps runes to charcode bytes, preferring the
// ToUnicode CMap (inverted) and falling back to the font's encoder. It
// returns the encoded bytes and the count of runes that couldn't be mapped.
func (font *PdfFont) RunesToCharcodeBytes(data []rune) ([]byte, int) {
	var encoders []textencoding.TextEncoder
	if toUnicode := font.baseFields().toUnicodeCmap; toUnicode != nil {
		encoders = append(encoders, textencoding.NewCMapEncoder("", nil, toUnicode))
	}
	if encoder := font.Encoder(); encoder != nil {
		encoders = append(encoders, encoder)
	}

	var buffer bytes.Buffer
	var numMisses int
	for _, r := range data {
		encoded := false
		for _, encoder := range encoders {
			if encBytes := encoder.Encode(string(r)); len(encBytes) > 0 {
				buffer.Write(encBytes)
				encoded = true
				break
			}
		}
		if !encoded {
			common.Log.Debug("ERROR: failed to map rune `%+q` to charcode", r)
			numMisses++
		}
	}

	if numMisses != 0 {
		common.Log.Debug("ERROR: could not convert all runes to charcodes.\n"+
			"\tnumRunes=%d numMisses=%d\n"+
			"\tfont=%s encoders=%+v", len(data), numMisses, font, encoders)
	}

	return buffer.Bytes(), numMisses
}

// StringToCharcodeBytes maps str's runes to charcode bytes, returning the
// encoded bytes and the count that couldn't be mapped.
func (font *PdfFont) StringToCharcodeBytes(str string) ([]byte, int) {
	return font.RunesToCharcodeBytes([]rune(str))
}

// ToPdfObject converts the PdfFont object to its PDF representation.
func (font *PdfFont) ToPdfObject() core.PdfObject {
	if font.context == nil {
		common.Log.Debug("ERROR: font context is nil")
		return core.MakeNull()
	}
	return font.context.ToPdfObject()
}

// Encoder returns the font's text encoder.
func (font *PdfFont) Encoder() textencoding.TextEncoder {
	t := font.actualFont()
	if t == nil {
		common.Log.Debug("ERROR: Encoder not implemented for font type=%#T", font.context)
		return nil
	}
	return t.Encoder()
}

// CharMetrics represents width and height metrics of a glyph.
type CharMetrics = fonts.CharMetrics

// GetRuneMetrics returns the char metrics for a rune, falling back to the
// descriptor's MissingWidth when the underlying font has no entry for it.
func (font *PdfFont) GetRuneMetrics(r rune) (CharMetrics, bool) {
	t := font.actualFont()
	if t == nil {
		common.Log.Debug("ERROR: GetGlyphCharMetrics Not implemented for font type=%#T", font.context)
		return fonts.CharMetrics{}, false
	}
	if m, ok := t.GetRuneMetrics(r); ok {
		return m, true
	}
	if desc, err := font.GetFontDescriptor(); err == nil && desc != nil {
		return fonts.CharMetrics{Wx: desc.missingWidth}, true
	}
	common.Log.Debug("GetGlyphCharMetrics: No metrics for font=%s", font)
	return fonts.CharMetrics{}, false
}

// GetCharMetrics returns the char metrics for character code `code`: the
// underlying font's direct charcode mapping first, then the descriptor's
// MissingWidth, then failure.
func (font *PdfFont) GetCharMetrics(code textencoding.CharCode) (CharMetrics, bool) {
	var nometrics fonts.CharMetrics

	switch t := font.context.(type) {
	case *pdfFontSimple:
		if m, ok := t.GetCharMetrics(code); ok {
			return m, ok
		}
	case *pdfFontType0:
		if m, ok := t.GetCharMetrics(code); ok {
			return m, ok
		}
	case *pdfCIDFontType0:
		if m, ok := t.GetCharMetrics(code); ok {
			return m, ok
		}
	case *pdfCIDFontType2:
		if m, ok := t.GetCharMetrics(code); ok {
			return m, ok
		}
	default:
		common.Log.Debug("ERROR: GetCharMetrics not implemented for font type=%T.", font.context)
		return nometrics, false
	}

	if descriptor, err := font.GetFontDescriptor(); err == nil && descriptor != nil {
		return fonts.CharMetrics{Wx: descriptor.missingWidth}, true
	}
	common.Log.Debug("GetCharMetrics: No metrics for font=%s", font)
	return nometrics, false
}

func (font PdfFont) actualFont() pdfFont {
	if font.context == nil {
		common.Log.Debug("ERROR: actualFont. context is nil. font=%s", font)
	}
	return font.context
}

func (font *PdfFont) baseFields() *fontCommon {
	if font.context == nil {
		common.Log.Debug("ERROR: baseFields. context is nil.")
		return nil
	}
	return font.context.baseFields()
}

// fontCommon holds the fields shared by every font representation.
type fontCommon struct {
	basefont string
	subtype  string
	name     string

	// toUnicode is kept around verbatim so ToPdfObject can round-trip it.
	toUnicode core.PdfObject

	toUnicodeCmap  *cmap.CMap
	fontDescriptor *PdfFontDescriptor

	// objectNumber aids debugging by tying a font back to its source object.
	objectNumber int64
}

// asPdfObjectDictionary renders the fields common to every font subtype.
// subtype is used only when base doesn't already carry one.
func (base fontCommon) asPdfObjectDictionary(subtype string) *core.PdfObjectDictionary {
	if subtype != "" && base.subtype != "" && subtype != base.subtype {
		common.Log.Debug("ERROR: asPdfObjectDictionary. Overriding subtype to %#q %s", subtype, base)
	} else if subtype == "" && base.subtype == "" {
		common.Log.Debug("ERROR: asPdfObjectDictionary no subtype. font=%s", base)
	} else if base.subtype == "" {
		base.subtype = subtype
	}

	d := core.MakeDict()
	d.Set("Type", core.MakeName("Font"))
	d.Set("BaseFont", core.MakeName(base.basefont))
	d.Set("Subtype", core.MakeName(base.subtype))

	if base.fontDescriptor != nil {
		d.Set("FontDescriptor", base.fontDescriptor.ToPdfObject())
	}
	if base.toUnicode != nil {
		d.Set("ToUnicode", base.toUnicode)
	} else if base.toUnicodeCmap != nil {
		if o, err := base.toUnicodeCmap.Stream(); err != nil {
			common.Log.Debug("WARN: could not get CMap stream. err=%v", err)
		} else {
			d.Set("ToUnicode", o)
		}
	}
	return d
}

func (base fontCommon) String() string {
	return fmt.Sprintf("FONT{%s}", base.coreString())
}

// coreString is String without the enclosing "FONT{}".
func (base fontCommon) coreString() string {
	descriptor := ""
	if base.fontDescriptor != nil {
		descriptor = base.fontDescriptor.String()
	}
	return fmt.Sprintf("%#q %#q %q obj=%d ToUnicode=%t flags=0x%0x %s",
		base.subtype, base.basefont, base.name, base.objectNumber, base.toUnicode != nil,
		base.fontFlags(), descriptor)
}

func (base fontCommon) fontFlags() int {
	if base.fontDescriptor == nil {
		return 0
	}
	return base.fontDescriptor.flags
}

// isCIDFont reports whether base is a CID-keyed font.
func (base fontCommon) isCIDFont() bool {
	if base.subtype == "" {
		common.Log.Debug("ERROR: isCIDFont. context is nil. font=%s", base)
	}
	isCID := base.subtype == "Type0" || base.subtype == "CIDFontType0" || base.subtype == "CIDFontType2"
	common.Log.Trace("isCIDFont: isCID=%t font=%s", isCID, base)
	return isCID
}

// newFontBaseFieldsFromPdfObject reads the fields common to every font
// dictionary, returning both the dictionary itself (for subtype-specific
// parsing) and the shared fontCommon.
func newFontBaseFieldsFromPdfObject(fontObj core.PdfObject) (*core.PdfObjectDictionary, *fontCommon, error) {
	font := &fontCommon{}

	if obj, ok := fontObj.(*core.PdfIndirectObject); ok {
		font.objectNumber = obj.ObjectNumber
	}

	d, ok := core.GetDict(fontObj)
	if !ok {
		common.Log.Debug("ERROR: Font not given by a dictionary (%T)", fontObj)
		return nil, nil, ErrFontNotSupported
	}

	objtype, ok := core.GetNameVal(d.Get("Type"))
	if !ok {
		common.Log.Debug("ERROR: Font Incompatibility. Type (Required) missing")
		return nil, nil, ErrRequiredAttributeMissing
	}
	if objtype != "Font" {
		common.Log.Debug("ERROR: Font Incompatibility. Type=%q. Should be %q.", objtype, "Font")
		return nil, nil, core.ErrTypeError
	}

	subtype, ok := core.GetNameVal(d.Get("Subtype"))
	if !ok {
		common.Log.Debug("ERROR: Font Incompatibility. Subtype (Required) missing")
		return nil, nil, ErrRequiredAttributeMissing
	}
	font.subtype = subtype

	if name, ok := core.GetNameVal(d.Get("Name")); ok {
		font.name = name
	}

	if subtype == "Type3" {
		common.Log.Debug("ERROR: Type 3 font not supported. d=%s", d)
		return d, font, ErrType3FontNotSupported
	}

	basefont, ok := core.GetNameVal(d.Get("BaseFont"))
	if !ok {
		common.Log.Debug("ERROR: Font Incompatibility. BaseFont (Required) missing")
		return d, font, ErrRequiredAttributeMissing
	}
	font.basefont = basefont

	if obj := d.Get("FontDescriptor"); obj != nil {
		fontDescriptor, err := newPdfFontDescriptorFromPdfObject(obj)
		if err != nil {
			common.Log.Debug("ERROR: Bad font descriptor. err=%v", err)
			return d, font, err
		}
		font.fontDescriptor = fontDescriptor
	}

	if err := font.loadToUnicode(d, subtype); err != nil {
		return d, font, err
	}

	return d, font, nil
}

// loadToUnicode resolves base.toUnicodeCmap, either from an explicit
// /ToUnicode stream or, for CID fonts, from a predefined "<Registry>-
// <Ordering>-UCS2" CMap derived from the descendant's CIDSystemInfo.
func (font *fontCommon) loadToUnicode(d *core.PdfObjectDictionary, subtype string) error {
	toUnicode := d.Get("ToUnicode")
	if toUnicode != nil {
		font.toUnicode = core.TraceToDirectObject(toUnicode)
		codemap, err := toUnicodeToCmap(font.toUnicode, font)
		if err != nil {
			return err
		}
		font.toUnicodeCmap = codemap
		return nil
	}

	if subtype != "CIDFontType0" && subtype != "CIDFontType2" {
		return nil
	}

	si, err := cmap.NewCIDSystemInfo(d.Get("CIDSystemInfo"))
	if err != nil {
		return err
	}
	cmapName := fmt.Sprintf("%s-%s-UCS2", si.Registry, si.Ordering)
	if !cmap.IsPredefinedCMap(cmapName) {
		return nil
	}
	font.toUnicodeCmap, err = cmap.LoadPredefinedCMap(cmapName)
	if err != nil {
		common.Log.Debug("WARN: could not load predefined CMap %s: %v", cmapName, err)
	}
	return nil
}

// toUnicodeToCmap decodes the stream a /ToUnicode entry points to into a CMap.
func toUnicodeToCmap(toUnicode core.PdfObject, font *fontCommon) (*cmap.CMap, error) {
	toUnicodeStream, ok := core.GetStream(toUnicode)
	if !ok {
		common.Log.Debug("ERROR: toUnicodeToCmap: Not a stream (%T)", toUnicode)
		return nil, core.ErrTypeError
	}
	data, err := core.DecodeStream(toUnicodeStream)
	if err != nil {
		return nil, err
	}

	cm, err := cmap.LoadCmapFromData(data, !font.isCIDFont())
	if err != nil {
		common.Log.Debug("ERROR: ObjectNumber=%d err=%v", toUnicodeStream.ObjectNumber, err)
	}
	return cm, err
}

// Font descriptor flags (PDF 32000-1 §9.8.2).
const (
	fontFlagFixedPitch  = 0x00001
	fontFlagSerif       = 0x00002
	fontFlagSymbolic    = 0x00004
	fontFlagScript      = 0x00008
	fontFlagNonsymbolic = 0x00020
	fontFlagItalic      = 0x00040
	fontFlagAllCap      = 0x10000
	fontFlagSmallCap    = 0x20000
	fontFlagForceBold   = 0x40000
)

// PdfFontDescriptor carries a font's metrics and, for embedded fonts, its
// FontFile program (PDF 32000-1 §9.8).
type PdfFontDescriptor struct {
	FontName     core.PdfObject
	FontFamily   core.PdfObject
	FontStretch  core.PdfObject
	FontWeight   core.PdfObject
	Flags        core.PdfObject
	FontBBox     core.PdfObject
	ItalicAngle  core.PdfObject
	Ascent       core.PdfObject
	Descent      core.PdfObject
	Leading      core.PdfObject
	CapHeight    core.PdfObject
	XHeight      core.PdfObject
	StemV        core.PdfObject
	StemH        core.PdfObject
	AvgWidth     core.PdfObject
	MaxWidth     core.PdfObject
	MissingWidth core.PdfObject
	FontFile     core.PdfObject // PFB (Type 1)
	FontFile2    core.PdfObject // TTF
	FontFile3    core.PdfObject // OTF / CFF
	CharSet      core.PdfObject

	flags        int
	missingWidth float64
	*fontFile
	fontFile2 *fonts.TtfType

	// Additional entries for CIDFonts.
	Style  core.PdfObject
	Lang   core.PdfObject
	FD     core.PdfObject
	CIDSet core.PdfObject

	container *core.PdfIndirectObject
}

// GetDescent returns the Descent of the font `descriptor`.
func (desc *PdfFontDescriptor) GetDescent() (float64, error) {
	return core.GetNumberAsFloat(desc.Descent)
}

// GetAscent returns the Ascent of the font `descriptor`.
func (desc *PdfFontDescriptor) GetAscent() (float64, error) {
	return core.GetNumberAsFloat(desc.Ascent)
}

// GetCapHeight returns the CapHeight of the font `descriptor`.
func (desc *PdfFontDescriptor) GetCapHeight() (float64, error) {
	return core.GetNumberAsFloat(desc.CapHeight)
}

func (desc *PdfFontDescriptor) String() string {
	var parts []string
	if desc.FontName != nil {
		parts = append(parts, desc.FontName.String())
	}
	if desc.FontFamily != nil {
		parts = append(parts, desc.FontFamily.String())
	}
	if desc.fontFile != nil {
		parts = append(parts, desc.fontFile.String())
	}
	if desc.fontFile2 != nil {
		parts = append(parts, desc.fontFile2.String())
	}
	parts = append(parts, fmt.Sprintf("FontFile3=%t", desc.FontFile3 != nil))
	return fmt.Sprintf("FONT_DESCRIPTOR{%s}", strings.Join(parts, ", "))
}

// newPdfFontDescriptorFromPdfObject loads a font descriptor from a
// dictionary or indirect object wrapping one.
func newPdfFontDescriptorFromPdfObject(obj core.PdfObject) (*PdfFontDescriptor, error) {
	descriptor := &PdfFontDescriptor{}

	obj = core.ResolveReference(obj)
	if ind, is := obj.(*core.PdfIndirectObject); is {
		descriptor.container = ind
		obj = ind.PdfObject
	}

	d, ok := core.GetDict(obj)
	if !ok {
		common.Log.Debug("ERROR: FontDescriptor not given by a dictionary (%T)", obj)
		return nil, core.ErrTypeError
	}

	if obj := d.Get("FontName"); obj != nil {
		descriptor.FontName = obj
	} else {
		common.Log.Debug("Incompatibility: FontName (Required) missing")
	}
	fontname, _ := core.GetName(descriptor.FontName)

	if obj := d.Get("Type"); obj != nil {
		if oname, is := obj.(*core.PdfObjectName); !is || string(*oname) != "FontDescriptor" {
			common.Log.Debug("Incompatibility: Font descriptor Type invalid (%T) font=%q %T",
				obj, fontname, descriptor.FontName)
		}
	} else {
		common.Log.Trace("Incompatibility: Type (Required) missing. font=%q %T",
			fontname, descriptor.FontName)
	}

	descriptor.FontFamily = d.Get("FontFamily")
	descriptor.FontStretch = d.Get("FontStretch")
	descriptor.FontWeight = d.Get("FontWeight")
	descriptor.Flags = d.Get("Flags")
	descriptor.FontBBox = d.Get("FontBBox")
	descriptor.ItalicAngle = d.Get("ItalicAngle")
	descriptor.Ascent = d.Get("Ascent")
	descriptor.Descent = d.Get("Descent")
	descriptor.Leading = d.Get("Leading")
	descriptor.CapHeight = d.Get("CapHeight")
	descriptor.XHeight = d.Get("XHeight")
	descriptor.StemV = d.Get("StemV")
	descriptor.StemH = d.Get("StemH")
	descriptor.AvgWidth = d.Get("AvgWidth")
	descriptor.MaxWidth = d.Get("MaxWidth")
	descriptor.MissingWidth = d.Get("MissingWidth")
	descriptor.FontFile = d.Get("FontFile")
	descriptor.FontFile2 = d.Get("FontFile2")
	descriptor.FontFile3 = d.Get("FontFile3")
	descriptor.CharSet = d.Get("CharSet")
	descriptor.Style = d.Get("Style")
	descriptor.Lang = d.Get("Lang")
	descriptor.FD = d.Get("FD")
	descriptor.CIDSet = d.Get("CIDSet")

	if descriptor.Flags != nil {
		if flags, ok := core.GetIntVal(descriptor.Flags); ok {
			descriptor.flags = flags
		}
	}
	if descriptor.MissingWidth != nil {
		if missingWidth, err := core.GetNumberAsFloat(descriptor.MissingWidth); err == nil {
			descriptor.missingWidth = missingWidth
		}
	}

	if descriptor.FontFile != nil {
		fontFile, err := newFontFileFromPdfObject(descriptor.FontFile)
		if err != nil {
			return descriptor, err
		}
		common.Log.Trace("fontFile=%s", fontFile)
		descriptor.fontFile = fontFile
	}
	if descriptor.FontFile2 != nil {
		fontFile2, err := fonts.NewFontFile2FromPdfObject(descriptor.FontFile2)
		if err != nil {
			return descriptor, err
		}
		common.Log.Trace("fontFile2=%s", fontFile2.String())
		descriptor.fontFile2 = &fontFile2
	}
	return descriptor, nil
}

// ToPdfObject returns the PdfFontDescriptor as a PDF dictionary inside an indirect object.
func (desc *PdfFontDescriptor) ToPdfObject() core.PdfObject {
	d := core.MakeDict()
	if desc.container == nil {
		desc.container = &core.PdfIndirectObject{}
	}
	desc.container.PdfObject = d

	d.Set("Type", core.MakeName("FontDescriptor"))
	d.SetIfNotNil("FontName", desc.FontName)
	d.SetIfNotNil("FontFamily", desc.FontFamily)
	d.SetIfNotNil("FontStretch", desc.FontStretch)
	d.SetIfNotNil("FontWeight", desc.FontWeight)
	d.SetIfNotNil("Flags", desc.Flags)
	d.SetIfNotNil("FontBBox", desc.FontBBox)
	d.SetIfNotNil("ItalicAngle", desc.ItalicAngle)
	d.SetIfNotNil("Ascent", desc.Ascent)
	d.SetIfNotNil("Descent", desc.Descent)
	d.SetIfNotNil("Leading", desc.Leading)
	d.SetIfNotNil("CapHeight", desc.CapHeight)
	d.SetIfNotNil("XHeight", desc.XHeight)
	d.SetIfNotNil("StemV", desc.StemV)
	d.SetIfNotNil("StemH", desc.StemH)
	d.SetIfNotNil("AvgWidth", desc.AvgWidth)
	d.SetIfNotNil("MaxWidth", desc.MaxWidth)
	d.SetIfNotNil("MissingWidth", desc.MissingWidth)
	d.SetIfNotNil("FontFile", desc.FontFile)
	d.SetIfNotNil("FontFile2", desc.FontFile2)
	d.SetIfNotNil("FontFile3", desc.FontFile3)
	d.SetIfNotNil("CharSet", desc.CharSet)
	d.SetIfNotNil("Style", desc.Style)
	d.SetIfNotNil("Lang", desc.Lang)
	d.SetIfNotNil("FD", desc.FD)
	d.SetIfNotNil("CIDSet", desc.CIDSet)

	return desc.container
}
