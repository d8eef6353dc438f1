/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core"
	"github.com/inkpath/pdfcore/internal/cmap"
	"github.com/inkpath/pdfcore/internal/textencoding"
	"github.com/inkpath/pdfcore/model/internal/fonts"
	"github.com/unidoc/unitype"
)

// Composite (Type 0) fonts (PDF 32000-1 §9.7) select glyphs through a CMap
// that maps possibly multi-byte character codes to CIDs, rather than a
// single byte per glyph. A Type0 dictionary never carries glyph data
// itself: it names an Encoding CMap and a single descendant CIDFont
// (CIDFontType0 for CFF-based programs, CIDFontType2 for TrueType-based
// ones) that supplies the widths and, optionally, the embedded program.

var _ pdfFont = (*pdfFontType0)(nil)

// pdfFontType0 is the root of a composite font: an Encoding CMap plus one
// descendant CIDFont.
type pdfFontType0 struct {
	fontCommon
	container *core.PdfIndirectObject

	encoder        textencoding.TextEncoder
	Encoding       core.PdfObject
	DescendantFont *PdfFont // CIDFontType0 or CIDFontType2.
	codeToCID      *cmap.CMap
}

func pdfFontType0FromSkeleton(base *fontCommon) *pdfFontType0 {
	return &pdfFontType0{fontCommon: *base}
}

func (font *pdfFontType0) baseFields() *fontCommon {
	return &font.fontCommon
}

func (font *pdfFontType0) getFontDescriptor() *PdfFontDescriptor {
	if font.fontDescriptor == nil && font.DescendantFont != nil {
		return font.DescendantFont.FontDescriptor()
	}
	return font.fontDescriptor
}

// GetRuneMetrics delegates to the descendant CIDFont, which is where glyph
// widths actually live for a composite font.
func (font pdfFontType0) GetRuneMetrics(r rune) (fonts.CharMetrics, bool) {
	if font.DescendantFont == nil {
		common.Log.Debug("ERROR: No descendant. font=%s", font)
		return fonts.CharMetrics{}, false
	}
	return font.DescendantFont.GetRuneMetrics(r)
}

// GetCharMetrics delegates to the descendant CIDFont.
func (font pdfFontType0) GetCharMetrics(code textencoding.CharCode) (fonts.CharMetrics, bool) {
	if font.DescendantFont == nil {
		common.Log.Debug("ERROR: No descendant. font=%s", font)
		return fonts.CharMetrics{}, false
	}
	return font.DescendantFont.GetCharMetrics(code)
}

func (font pdfFontType0) Encoder() textencoding.TextEncoder {
	return font.encoder
}

// bytesToCharcodes decodes data through the font's charcode-to-CID CMap.
func (font *pdfFontType0) bytesToCharcodes(data []byte) ([]textencoding.CharCode, bool) {
	if font.codeToCID == nil {
		return nil, false
	}
	codes, ok := font.codeToCID.BytesToCharcodes(data)
	if !ok {
		return nil, false
	}
	charcodes := make([]textencoding.CharCode, len(codes))
	for i, code := range codes {
		charcodes[i] = textencoding.CharCode(code)
	}
	return charcodes, true
}

// makeSubsetName renders a subset BaseFont name as "TAG+Name", discarding
// any previous tag.
func makeSubsetName(name, tag string) string {
	if parts := strings.Split(name, "+"); len(parts) == 2 {
		name = parts[1]
	}
	return tag + "+" + name
}

const subsetTagAlphabet = "QWERTYUIOPASDFGHJKLZXCVBNM"
const subsetTagLen = 6

// genSubsetTag produces a 6 letter uppercase subset tag.
func genSubsetTag() string {
	var buf bytes.Buffer
	for i := 0; i < subsetTagLen; i++ {
		buf.WriteByte(subsetTagAlphabet[rand.Intn(len(subsetTagAlphabet))])
	}
	return buf.String()
}

// subsetRegistered trims the embedded TrueType program of a CIDFontType2
// descendant down to the glyphs the encoder actually registered uses for.
// A no-op for any other descendant type.
func (font *pdfFontType0) subsetRegistered() error {
	cidfnt, ok := font.DescendantFont.context.(*pdfCIDFontType2)
	if !ok {
		common.Log.Debug("Font not supported for subsetting %T", font.DescendantFont)
		return nil
	}
	if cidfnt == nil || cidfnt.fontDescriptor == nil {
		common.Log.Debug("Missing font descriptor")
		return nil
	}
	if font.encoder == nil {
		common.Log.Debug("No encoder - subsetting ignored")
		return nil
	}

	stream, ok := core.GetStream(cidfnt.fontDescriptor.FontFile2)
	if !ok {
		common.Log.Debug("Embedded font object not found -- ABORT subsetting")
		return errors.New("fontfile2 not found")
	}
	decoded, err := core.DecodeStream(stream)
	if err != nil {
		common.Log.Debug("Decode error: %v", err)
		return err
	}

	fnt, err := unitype.Parse(bytes.NewReader(decoded))
	if err != nil {
		common.Log.Debug("Error parsing %d byte font", len(stream.Stream))
		return err
	}

	runes, subset, err := subsetKeptRunes(fnt, font.encoder)
	if err != nil {
		return err
	}
	if subset == nil {
		// SimpleEncoder branch: nothing to subset by index, only used to
		// recompute the ToUnicode table below.
		return nil
	}

	var buf bytes.Buffer
	if err := subset.Write(&buf); err != nil {
		common.Log.Debug("ERROR: %v", err)
		return err
	}

	if font.toUnicodeCmap != nil {
		codeToUnicode := make(map[cmap.CharCode]rune, len(runes))
		for _, r := range runes {
			if cc, ok := font.encoder.RuneToCharcode(r); ok {
				codeToUnicode[cmap.CharCode(cc)] = r
			}
		}
		font.toUnicodeCmap = cmap.NewToUnicodeCMap(codeToUnicode)
	}

	newStream, err := core.MakeStream(buf.Bytes(), core.NewFlateEncoder())
	if err != nil {
		common.Log.Debug("ERROR: %v", err)
		return err
	}
	newStream.Set("Length1", core.MakeInteger(int64(buf.Len())))
	if curstr, ok := core.GetStream(cidfnt.fontDescriptor.FontFile2); ok {
		*curstr = *newStream
	} else {
		cidfnt.fontDescriptor.FontFile2 = newStream
	}

	font.renameSubset(cidfnt, genSubsetTag())
	return nil
}

// subsetKeptRunes reduces fnt to the glyphs reachable through enc,
// returning the runes that survived. subset is nil when enc only reports
// runes (a SimpleEncoder), since font.go callers then only need the rune
// list to rebuild the ToUnicode table.
func subsetKeptRunes(fnt *unitype.Font, enc textencoding.TextEncoder) (runes []rune, subset *unitype.Font, err error) {
	switch tenc := enc.(type) {
	case *textencoding.TrueTypeFontEncoder:
		runes = tenc.RegisteredRunes()
		subset, err = fnt.SubsetKeepRunes(runes)
		if err != nil {
			common.Log.Debug("ERROR: %v", err)
			return nil, nil, err
		}
		tenc.SubsetRegistered()
		return runes, subset, nil
	case *textencoding.IdentityEncoder:
		// Identity encoders index by glyph id, not Unicode rune, when the
		// font was parsed straight out of a PDF.
		runes = tenc.RegisteredRunes()
		indices := make([]unitype.GlyphIndex, len(runes))
		for i, r := range runes {
			indices[i] = unitype.GlyphIndex(r)
		}
		subset, err = fnt.SubsetKeepIndices(indices)
		if err != nil {
			common.Log.Debug("ERROR: %v", err)
			return nil, nil, err
		}
		return runes, subset, nil
	case textencoding.SimpleEncoder:
		for _, c := range tenc.Charcodes() {
			if r, ok := tenc.CharcodeToRune(c); ok {
				runes = append(runes, r)
			} else {
				common.Log.Debug("ERROR: unable convert charcode to rune: %d", c)
			}
		}
		return runes, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported encoder for subsetting: %T", enc)
	}
}

// renameSubset tags font, its descendant and its descriptor's FontName
// with tag, per PDF 32000-1 §9.6.4's "ABCDEF+FontName" convention.
func (font *pdfFontType0) renameSubset(cidfnt *pdfCIDFontType2, tag string) {
	if len(font.basefont) > 0 {
		font.basefont = makeSubsetName(font.basefont, tag)
	}
	if len(cidfnt.basefont) > 0 {
		cidfnt.basefont = makeSubsetName(cidfnt.basefont, tag)
	}
	if len(font.name) > 0 {
		font.name = makeSubsetName(font.name, tag)
	}
	if cidfnt.fontDescriptor != nil {
		if fname, ok := core.GetName(cidfnt.fontDescriptor.FontName); ok && len(fname.String()) > 0 {
			cidfnt.fontDescriptor.FontName = core.MakeName(makeSubsetName(fname.String(), tag))
		}
	}
}

// ToPdfObject converts the font to a PDF representation.
func (font *pdfFontType0) ToPdfObject() core.PdfObject {
	if font.container == nil {
		font.container = &core.PdfIndirectObject{}
	}

	d := font.baseFields().asPdfObjectDictionary("Type0")
	font.container.PdfObject = d

	if font.Encoding != nil {
		d.Set("Encoding", font.Encoding)
	} else if font.encoder != nil {
		d.Set("Encoding", font.encoder.ToPdfObject())
	}

	if font.DescendantFont != nil {
		// DescendantFonts is always a single-element array (PDF 32000-1 §9.7.6).
		d.Set("DescendantFonts", core.MakeArray(font.DescendantFont.ToPdfObject()))
	}

	return font.container
}

// newPdfFontType0FromPdfObject builds a pdfFontType0 from dict d, resolving
// its sole DescendantFonts entry and its Encoding CMap.
func newPdfFontType0FromPdfObject(d *core.PdfObjectDictionary, base *fontCommon) (*pdfFontType0, error) {
	arr, ok := core.GetArray(d.Get("DescendantFonts"))
	if !ok {
		common.Log.Debug("ERROR: Invalid DescendantFonts - not an array %s", base)
		return nil, core.ErrRangeError
	}
	if arr.Len() != 1 {
		common.Log.Debug("ERROR: Array length != 1 (%d)", arr.Len())
		return nil, core.ErrRangeError
	}
	df, err := newPdfFontFromPdfObject(arr.Get(0), false)
	if err != nil {
		common.Log.Debug("ERROR: Failed loading descendant font: err=%v %s", err, base)
		return nil, err
	}

	font := pdfFontType0FromSkeleton(base)
	font.DescendantFont = df

	encoderName, hasEncoding := core.GetNameVal(d.Get("Encoding"))
	if hasEncoding {
		switch {
		case encoderName == "Identity-H" || encoderName == "Identity-V":
			// Maps 16-bit codes straight to glyph index; no rune table needed.
			font.encoder = textencoding.NewIdentityTextEncoder(encoderName)
		case cmap.IsPredefinedCMap(encoderName):
			font.codeToCID, err = cmap.LoadPredefinedCMap(encoderName)
			if err != nil {
				common.Log.Debug("WARN: could not load predefined CMap %s: %v", encoderName, err)
			}
		default:
			common.Log.Debug("Unhandled cmap %q", encoderName)
		}
	}

	if cidToUnicode := df.baseFields().toUnicodeCmap; cidToUnicode != nil {
		switch cidToUnicode.Name() {
		case "Adobe-CNS1-UCS2", "Adobe-GB1-UCS2", "Adobe-Japan1-UCS2", "Adobe-Korea1-UCS2":
			font.encoder = textencoding.NewCMapEncoder(encoderName, font.codeToCID, cidToUnicode)
		}
	}

	return font, nil
}

var _ pdfFont = (*pdfCIDFontType0)(nil)

// pdfCIDFontType0 is a CIDFont dictionary describing a CFF-based glyph
// program; it is never itself shown, only referenced as a Type0 font's
// descendant.
type pdfCIDFontType0 struct {
	fontCommon
	container *core.PdfIndirectObject

	encoder textencoding.TextEncoder

	// CIDSystemInfo (required) names the CIDFont's character collection.
	CIDSystemInfo *core.PdfObjectDictionary

	DW  core.PdfObject // default glyph width
	W   core.PdfObject // glyph widths array
	DW2 core.PdfObject // default vertical metrics
	W2  core.PdfObject // vertical metrics array

	widths       map[textencoding.CharCode]float64
	defaultWidth float64
}

func pdfCIDFontType0FromSkeleton(base *fontCommon) *pdfCIDFontType0 {
	return &pdfCIDFontType0{fontCommon: *base}
}

func (font *pdfCIDFontType0) baseFields() *fontCommon {
	return &font.fontCommon
}

func (font *pdfCIDFontType0) getFontDescriptor() *PdfFontDescriptor {
	return font.fontDescriptor
}

func (font pdfCIDFontType0) Encoder() textencoding.TextEncoder {
	return font.encoder
}

func (font pdfCIDFontType0) GetRuneMetrics(r rune) (fonts.CharMetrics, bool) {
	return fonts.CharMetrics{Wx: font.defaultWidth}, true
}

func (font pdfCIDFontType0) GetCharMetrics(code textencoding.CharCode) (fonts.CharMetrics, bool) {
	width := font.defaultWidth
	if w, ok := font.widths[code]; ok {
		width = w
	}
	return fonts.CharMetrics{Wx: width}, true
}

// ToPdfObject is unreachable in practice: a CIDFontType0 is only ever
// written out through its parent Type0 font's DescendantFonts entry.
func (font *pdfCIDFontType0) ToPdfObject() core.PdfObject {
	return core.MakeNull()
}

func newPdfCIDFontType0FromPdfObject(d *core.PdfObjectDictionary, base *fontCommon) (*pdfCIDFontType0, error) {
	if base.subtype != "CIDFontType0" {
		common.Log.Debug("ERROR: Font SubType != CIDFontType0. font=%s", base)
		return nil, core.ErrRangeError
	}

	font := pdfCIDFontType0FromSkeleton(base)

	obj, ok := core.GetDict(d.Get("CIDSystemInfo"))
	if !ok {
		common.Log.Debug("ERROR: CIDSystemInfo (Required) missing. font=%s", base)
		return nil, ErrRequiredAttributeMissing
	}
	font.CIDSystemInfo = obj

	font.DW = d.Get("DW")
	font.W = d.Get("W")
	font.DW2 = d.Get("DW2")
	font.W2 = d.Get("W2")

	font.defaultWidth = 1000.0
	if dw, err := core.GetNumberAsFloat(font.DW); err == nil {
		font.defaultWidth = dw
	}

	fontWidths, err := parseCIDFontWidthsArray(font.W)
	if err != nil {
		return nil, err
	}
	if fontWidths == nil {
		fontWidths = map[textencoding.CharCode]float64{}
	}
	font.widths = fontWidths

	return font, nil
}

var _ pdfFont = (*pdfCIDFontType2)(nil)

// pdfCIDFontType2 is a CIDFont dictionary describing a TrueType-based
// glyph program, referenced as a Type0 font's descendant.
type pdfCIDFontType2 struct {
	fontCommon
	container *core.PdfIndirectObject

	encoder textencoding.TextEncoder

	CIDSystemInfo *core.PdfObjectDictionary

	DW  core.PdfObject
	W   core.PdfObject
	DW2 core.PdfObject
	W2  core.PdfObject

	CIDToGIDMap core.PdfObject

	widths       map[textencoding.CharCode]float64
	defaultWidth float64

	runeToWidthMap map[rune]int
}

func pdfCIDFontType2FromSkeleton(base *fontCommon) *pdfCIDFontType2 {
	return &pdfCIDFontType2{fontCommon: *base}
}

func (font *pdfCIDFontType2) baseFields() *fontCommon {
	return &font.fontCommon
}

func (font *pdfCIDFontType2) getFontDescriptor() *PdfFontDescriptor {
	return font.fontDescriptor
}

func (font pdfCIDFontType2) Encoder() textencoding.TextEncoder {
	return font.encoder
}

func (font pdfCIDFontType2) GetRuneMetrics(r rune) (fonts.CharMetrics, bool) {
	w, found := font.runeToWidthMap[r]
	if !found {
		dw, ok := core.GetInt(font.DW)
		if !ok {
			return fonts.CharMetrics{}, false
		}
		w = int(*dw)
	}
	return fonts.CharMetrics{Wx: float64(w)}, true
}

// GetCharMetrics assumes a code-equals-rune identity mapping when no
// explicit width is recorded for code, which holds for the fonts this
// package builds itself but is not guaranteed for arbitrary input files.
func (font pdfCIDFontType2) GetCharMetrics(code textencoding.CharCode) (fonts.CharMetrics, bool) {
	if w, ok := font.widths[code]; ok {
		return fonts.CharMetrics{Wx: float64(w)}, true
	}
	w, ok := font.runeToWidthMap[rune(code)]
	if !ok {
		w = int(font.defaultWidth)
	}
	return fonts.CharMetrics{Wx: float64(w)}, true
}

// ToPdfObject converts the pdfCIDFontType2 to a PDF representation.
func (font *pdfCIDFontType2) ToPdfObject() core.PdfObject {
	if font.container == nil {
		font.container = &core.PdfIndirectObject{}
	}
	d := font.baseFields().asPdfObjectDictionary("CIDFontType2")
	font.container.PdfObject = d

	d.SetIfNotNil("CIDSystemInfo", font.CIDSystemInfo)
	d.SetIfNotNil("DW", font.DW)
	d.SetIfNotNil("DW2", font.DW2)
	d.SetIfNotNil("W", font.W)
	d.SetIfNotNil("W2", font.W2)
	d.SetIfNotNil("CIDToGIDMap", font.CIDToGIDMap)

	return font.container
}

func newPdfCIDFontType2FromPdfObject(d *core.PdfObjectDictionary, base *fontCommon) (*pdfCIDFontType2, error) {
	if base.subtype != "CIDFontType2" {
		common.Log.Debug("ERROR: Font SubType != CIDFontType2. font=%s", base)
		return nil, core.ErrRangeError
	}

	font := pdfCIDFontType2FromSkeleton(base)

	obj, ok := core.GetDict(d.Get("CIDSystemInfo"))
	if !ok {
		common.Log.Debug("ERROR: CIDSystemInfo (Required) missing. font=%s", base)
		return nil, ErrRequiredAttributeMissing
	}
	font.CIDSystemInfo = obj

	font.DW = d.Get("DW")
	font.W = d.Get("W")
	font.DW2 = d.Get("DW2")
	font.W2 = d.Get("W2")
	font.CIDToGIDMap = d.Get("CIDToGIDMap")

	font.defaultWidth = 1000.0
	if dw, err := core.GetNumberAsFloat(font.DW); err == nil {
		font.defaultWidth = dw
	}

	fontWidths, err := parseCIDFontWidthsArray(font.W)
	if err != nil {
		return nil, err
	}
	if fontWidths == nil {
		fontWidths = map[textencoding.CharCode]float64{}
	}
	font.widths = fontWidths

	return font, nil
}

// parseCIDFontWidthsArray parses a CIDFont /W array (PDF 32000-1 §9.7.4.3),
// which mixes two formats: "c [w1 w2 ... wn]" (n consecutive widths
// starting at CID c) and "cFirst cLast w" (one width for a CID range).
func parseCIDFontWidthsArray(w core.PdfObject) (map[textencoding.CharCode]float64, error) {
	if w == nil {
		return nil, nil
	}
	wArr, ok := core.GetArray(w)
	if !ok {
		return nil, nil
	}

	fontWidths := map[textencoding.CharCode]float64{}
	n := wArr.Len()
	for i := 0; i < n-1; i++ {
		start, ok := core.GetIntVal(core.TraceToDirectObject(wArr.Get(i)))
		if !ok {
			return nil, fmt.Errorf("bad font W obj0: i=%d %#v", i, wArr.Get(i))
		}
		i++
		if i > n-1 {
			return nil, fmt.Errorf("bad font W array: arr2=%+v", wArr)
		}

		next := core.TraceToDirectObject(wArr.Get(i))
		switch next.(type) {
		case *core.PdfObjectArray:
			arr, _ := core.GetArray(next)
			widths, err := arr.ToFloat64Array()
			if err != nil {
				return nil, fmt.Errorf("bad font W array obj1: i=%d %#v", i, next)
			}
			for j, width := range widths {
				fontWidths[textencoding.CharCode(start+j)] = width
			}
		case *core.PdfObjectInteger:
			end, ok := core.GetIntVal(next)
			if !ok {
				return nil, fmt.Errorf("bad font W int obj1: i=%d %#v", i, next)
			}
			i++
			if i > n-1 {
				return nil, fmt.Errorf("bad font W array: arr2=%+v", wArr)
			}
			width, err := core.GetNumberAsFloat(wArr.Get(i))
			if err != nil {
				return nil, fmt.Errorf("bad font W int obj2: i=%d %#v", i, wArr.Get(i))
			}
			for cid := start; cid <= end; cid++ {
				fontWidths[textencoding.CharCode(cid)] = width
			}
		default:
			return nil, fmt.Errorf("bad font W obj1 type: i=%d %#v", i, next)
		}
	}

	return fontWidths, nil
}

// NewCompositePdfFontFromTTFFile loads a TTF font file as a composite
// (Type0/CIDFontType2, Identity-H) font, suited to scripts with large
// glyph repertoires (CJK and similar). Use NewPdfFontFromTTFFile for
// simple, single-byte fonts.
func NewCompositePdfFontFromTTFFile(filePath string) (*PdfFont, error) {
	f, err := os.Open(filePath)
	if err != nil {
		common.Log.Debug("ERROR: opening file: %v", err)
		return nil, err
	}
	defer f.Close()
	return NewCompositePdfFontFromTTF(f)
}

// NewCompositePdfFontFromTTF loads a TTF font as a composite
// (Type0/CIDFontType2, Identity-H) font. Use NewPdfFontFromTTF for simple,
// single-byte fonts.
func NewCompositePdfFontFromTTF(r io.ReadSeeker) (*PdfFont, error) {
	ttfBytes, err := ioutil.ReadAll(r)
	if err != nil {
		common.Log.Debug("ERROR: Unable to read font contents: %v", err)
		return nil, err
	}

	ttf, err := fonts.TtfParse(bytes.NewReader(ttfBytes))
	if err != nil {
		common.Log.Debug("ERROR: while loading ttf font: %v", err)
		return nil, err
	}
	if len(ttf.Widths) == 0 {
		return nil, errors.New("ERROR: Missing required attribute (Widths)")
	}

	cidfont, emScale, err := buildCIDFontType2FromTTF(ttf)
	if err != nil {
		return nil, err
	}

	stream, err := core.MakeStream(ttfBytes, core.NewFlateEncoder())
	if err != nil {
		common.Log.Debug("ERROR: Unable to make stream: %v", err)
		return nil, err
	}
	stream.PdfObjectDictionary.Set("Length1", core.MakeInteger(int64(len(ttfBytes))))
	cidfont.fontDescriptor = cidFontDescriptorFromTTF(ttf, emScale, stream)
	cidfont.basefont = ttf.PostScriptName

	type0 := buildType0FromCIDFont(ttf, cidfont)
	return &PdfFont{context: type0}, nil
}

// buildCIDFontType2FromTTF derives the descendant CIDFont's identity
// CID-to-GID map, default/per-rune widths and CIDSystemInfo from a parsed
// TTF, returning the 1000-unit em scale alongside for descriptor use.
func buildCIDFontType2FromTTF(ttf fonts.TtfType) (*pdfCIDFontType2, float64, error) {
	cidfont := &pdfCIDFontType2{
		fontCommon:  fontCommon{subtype: "CIDFontType2"},
		CIDToGIDMap: core.MakeName("Identity"),
	}

	runes := make([]rune, 0, len(ttf.Chars))
	for r := range ttf.Chars {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	emScale := 1000.0 / float64(ttf.UnitsPerEm)
	missingWidth := emScale * float64(ttf.Widths[0])

	runeToWidthMap := make(map[rune]int, len(runes))
	for _, r := range runes {
		gid := ttf.Chars[r]
		runeToWidthMap[r] = int(emScale * float64(ttf.Widths[gid]))
	}
	cidfont.runeToWidthMap = runeToWidthMap
	cidfont.DW = core.MakeInteger(int64(missingWidth))
	cidfont.W = core.MakeIndirectObject(makeCIDWidthArr(runes, runeToWidthMap, ttf.Chars))

	info := core.MakeDict()
	info.Set("Ordering", core.MakeString("Identity"))
	info.Set("Registry", core.MakeString("Adobe"))
	info.Set("Supplement", core.MakeInteger(0))
	cidfont.CIDSystemInfo = info

	return cidfont, emScale, nil
}

// cidFontDescriptorFromTTF builds the FontDescriptor for a TTF-derived
// CIDFontType2, embedding the font program as FontFile2.
func cidFontDescriptorFromTTF(ttf fonts.TtfType, emScale float64, fontFile2 *core.PdfObjectStream) *PdfFontDescriptor {
	descriptor := &PdfFontDescriptor{
		FontName:  core.MakeName(ttf.PostScriptName),
		Ascent:    core.MakeFloat(emScale * float64(ttf.TypoAscender)),
		Descent:   core.MakeFloat(emScale * float64(ttf.TypoDescender)),
		CapHeight: core.MakeFloat(emScale * float64(ttf.CapHeight)),
		FontBBox: core.MakeArrayFromFloats([]float64{
			emScale * float64(ttf.Xmin), emScale * float64(ttf.Ymin),
			emScale * float64(ttf.Xmax), emScale * float64(ttf.Ymax),
		}),
		ItalicAngle:  core.MakeFloat(float64(ttf.ItalicAngle)),
		MissingWidth: core.MakeFloat(emScale * float64(ttf.Widths[0])),
		FontFile2:    fontFile2,
	}

	if ttf.Bold {
		descriptor.StemV = core.MakeInteger(120)
	} else {
		descriptor.StemV = core.MakeInteger(70)
	}

	flags := fontFlagSymbolic
	if ttf.IsFixedPitch {
		flags |= fontFlagFixedPitch
	}
	if ttf.ItalicAngle != 0 {
		flags |= fontFlagItalic
	}
	descriptor.Flags = core.MakeInteger(int64(flags))

	return descriptor
}

// buildType0FromCIDFont wraps cidfont as the descendant of a new
// Identity-H Type0 font, deriving its ToUnicode CMap as the inverse of the
// TTF's rune-to-glyph-id map.
func buildType0FromCIDFont(ttf fonts.TtfType, cidfont *pdfCIDFontType2) *pdfFontType0 {
	type0 := &pdfFontType0{
		fontCommon: fontCommon{
			subtype:  "Type0",
			basefont: ttf.PostScriptName,
		},
		DescendantFont: &PdfFont{context: cidfont},
		Encoding:       core.MakeName("Identity-H"),
		encoder:        ttf.NewEncoder(),
	}

	if len(ttf.Chars) > 0 {
		codeToUnicode := make(map[cmap.CharCode]rune, len(ttf.Chars))
		for r, gid := range ttf.Chars {
			cid := cmap.CharCode(gid)
			if existing, ok := codeToUnicode[cid]; !ok || existing > r {
				codeToUnicode[cid] = r
			}
		}
		type0.toUnicodeCmap = cmap.NewToUnicodeCMap(codeToUnicode)
	}

	return type0
}

// makeCIDWidthArr builds a CIDFont /W array using the "cFirst cLast w"
// format exclusively, run-length-encoding runs of equal width across
// consecutive GIDs.
func makeCIDWidthArr(runes []rune, widths map[rune]int, gids map[rune]fonts.GID) *core.PdfObjectArray {
	arr := core.MakeArray()

	for i := 0; i < len(runes); {
		w := widths[runes[i]]

		last := i
		for j := i + 1; j < len(runes); j++ {
			if widths[runes[j]] != w {
				break
			}
			last = j
		}

		// W maps from CID to width; CID equals GID for this identity mapping.
		arr.Append(core.MakeInteger(int64(gids[runes[i]])))
		arr.Append(core.MakeInteger(int64(gids[runes[last]])))
		arr.Append(core.MakeInteger(int64(w)))

		i = last + 1
	}
	return arr
}
