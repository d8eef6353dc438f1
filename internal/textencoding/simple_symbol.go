/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "sync"

const baseSymbol = "SymbolEncoding"

func init() {
	RegisterSimpleEncoding(baseSymbol, newSymbolSimpleEncoder)
}

var (
	symbolOnce       sync.Once
	symbolCharToRune map[byte]rune
	symbolRuneToChar map[rune]byte
)

// symbolEncodingGlyphs maps byte codes to glyph names for the Symbol font's
// built-in encoding (Greek letters and mathematical symbols in place of the
// Latin alphabet), per the PDF specification's appendix D.5.
var symbolEncodingGlyphs = map[byte]GlyphName{
	32: "space", 33: "exclam", 34: "universal", 35: "numbersign",
	36: "existential", 37: "percent", 38: "ampersand", 39: "suchthat",
	40: "parenleft", 41: "parenright", 42: "asteriskmath", 43: "plus",
	44: "comma", 45: "minus", 46: "period", 47: "slash",
	48: "zero", 49: "one", 50: "two", 51: "three", 52: "four",
	53: "five", 54: "six", 55: "seven", 56: "eight", 57: "nine",
	58: "colon", 59: "semicolon", 60: "less", 61: "equal", 62: "greater",
	63: "question", 64: "congruent",
	65: "Alpha", 66: "Beta", 67: "Chi", 68: "Delta", 69: "Epsilon",
	70: "Phi", 71: "Gamma", 72: "Eta", 73: "Iota", 74: "theta1",
	75: "Kappa", 76: "Lambda", 77: "Mu", 78: "Nu", 79: "Omicron",
	80: "Pi", 81: "Theta", 82: "Rho", 83: "Sigma", 84: "Tau",
	85: "Upsilon", 86: "sigma1", 87: "Omega", 88: "Xi", 89: "Psi",
	90: "Zeta",
	91: "bracketleft", 92: "therefore", 93: "bracketright",
	94: "perpendicular", 95: "underscore", 96: "radicalex",
	97: "alpha", 98: "beta", 99: "chi", 100: "delta", 101: "epsilon",
	102: "phi", 103: "gamma", 104: "eta", 105: "iota", 106: "phi1",
	107: "kappa", 108: "lambda", 109: "mu", 110: "nu", 111: "omicron",
	112: "pi", 113: "theta", 114: "rho", 115: "sigma", 116: "tau",
	117: "upsilon", 118: "omega1", 119: "omega", 120: "xi", 121: "psi",
	122: "zeta",
	123: "braceleft", 124: "bar", 125: "braceright", 126: "similar",

	176: "degree", 177: "plusminus", 178: "twosuperior", 179: "greaterequal",
	180: "multiply", 181: "proportional", 182: "partialdiff", 183: "bullet",
	184: "divide", 185: "notequal", 186: "equivalence", 187: "approxequal",
	188: "ellipsis", 191: "carriagereturn",
	192: "aleph", 193: "Ifraktur", 194: "Rfraktur", 195: "weierstrass",
	196: "circlemultiply", 197: "circleplus", 198: "emptyset",
	199: "intersection", 200: "union", 201: "propersuperset",
	202: "reflexsuperset", 204: "propersubset", 205: "reflexsubset",
	206: "element", 207: "notelement", 209: "angle", 210: "gradient",
	213: "arrowright", 214: "arrowup", 215: "arrowboth", 216: "arrowleft",
	217: "arrowdown",
	229: "summation",
	242: "integral", 243: "integraltp", 244: "integralex", 245: "integralbt",
}

func newSymbolSimpleEncoder() SimpleEncoder {
	symbolOnce.Do(initSymbol)
	return &simpleEncoding{
		baseName: baseSymbol,
		encode:   symbolRuneToChar,
		decode:   symbolCharToRune,
	}
}

func initSymbol() {
	symbolCharToRune = make(map[byte]rune, len(symbolEncodingGlyphs))
	symbolRuneToChar = make(map[rune]byte, len(symbolEncodingGlyphs))
	for code, glyph := range symbolEncodingGlyphs {
		r, ok := GlyphToRune(glyph)
		if !ok {
			continue
		}
		symbolCharToRune[code] = r
		symbolRuneToChar[r] = code
	}
}
