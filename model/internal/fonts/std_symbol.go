/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"sync"

	"github.com/inkpath/pdfcore/internal/textencoding"
)

func init() {
	RegisterStdFont(SymbolName, newFontSymbol)
	RegisterStdFont(ZapfDingbatsName, newFontZapfDingbats)
}

const (
	// SymbolName is a PDF name of the Symbol font.
	SymbolName = StdFontName("Symbol")
	// ZapfDingbatsName is a PDF name of the ZapfDingbats font.
	ZapfDingbatsName = StdFontName("ZapfDingbats")
)

var symbolZapfOnce sync.Once

var (
	symbolCharMetrics       map[rune]CharMetrics
	zapfDingbatsCharMetrics map[rune]CharMetrics
)

// newFontSymbol returns a new instance of the Symbol font with its built-in
// SymbolEncoding.
func newFontSymbol() StdFont {
	symbolZapfOnce.Do(initSymbolZapf)
	desc := Descriptor{
		Name:        SymbolName,
		Family:      string(SymbolName),
		Weight:      FontWeightMedium,
		Flags:       0x0004,
		BBox:        [4]float64{-180, -293, 1090, 1010},
		ItalicAngle: 0,
		Ascent:      1010,
		Descent:     -293,
		CapHeight:   693,
		XHeight:     467,
		StemV:       85,
		StemH:       92,
	}
	return NewStdFontWithEncoding(desc, symbolCharMetrics, *textencoding.NewSymbolEncoder())
}

// newFontZapfDingbats returns a new instance of the ZapfDingbats font with
// its built-in ZapfDingbatsEncoding.
func newFontZapfDingbats() StdFont {
	symbolZapfOnce.Do(initSymbolZapf)
	desc := Descriptor{
		Name:        ZapfDingbatsName,
		Family:      string(ZapfDingbatsName),
		Weight:      FontWeightMedium,
		Flags:       0x0004,
		BBox:        [4]float64{-1, -143, 981, 820},
		ItalicAngle: 0,
		Ascent:      820,
		Descent:     -143,
		CapHeight:   820,
		XHeight:     0,
		StemV:       90,
		StemH:       28,
	}
	return NewStdFontWithEncoding(desc, zapfDingbatsCharMetrics, textencoding.NewZapfDingbatsEncoder())
}

// initSymbolZapf builds width tables for Symbol and ZapfDingbats from their
// encoders' own code tables, since neither font uses the Latin glyph set
// type1CommonRunes draws metrics for. Widths are a uniform approximation
// rather than the exact per-glyph AFM values.
func initSymbolZapf() {
	const symbolWx = 600
	const dingbatsWx = 788

	symbolEnc := *textencoding.NewSymbolEncoder()
	symbolCharMetrics = make(map[rune]CharMetrics)
	for _, code := range symbolEnc.Charcodes() {
		if r, ok := symbolEnc.CharcodeToRune(code); ok {
			symbolCharMetrics[r] = CharMetrics{Wx: symbolWx}
		}
	}

	zapfDingbatsCharMetrics = make(map[rune]CharMetrics)
	if simpleEnc, ok := textencoding.NewZapfDingbatsEncoder().(textencoding.SimpleEncoder); ok {
		for _, code := range simpleEnc.Charcodes() {
			if r, ok := simpleEnc.CharcodeToRune(code); ok {
				zapfDingbatsCharMetrics[r] = CharMetrics{Wx: dingbatsWx}
			}
		}
	}
}
