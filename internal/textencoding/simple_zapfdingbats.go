/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import "sync"

const baseZapfDingbats = "ZapfDingbatsEncoding"

func init() {
	RegisterSimpleEncoding(baseZapfDingbats, newZapfDingbatsSimpleEncoder)
}

var (
	zapfDingbatsOnce       sync.Once
	zapfDingbatsCharToRune map[byte]rune
	zapfDingbatsRuneToChar map[rune]byte
)

// zapfDingbatsEncodingRunes maps byte codes directly to the Unicode Dingbats
// block (U+2700-U+27BF) and related symbols, for the codes ZapfDingbats
// actually assigns glyphs to. ZapfDingbats' own glyph names ("a1".."a191")
// aren't part of the Adobe Glyph List, so this table goes straight to rune
// rather than through GlyphToRune.
var zapfDingbatsEncodingRunes = map[byte]rune{
	32: ' ',
	33: '✁', 34: '✂', 35: '✃', 36: '✄', 37: '☎', 38: '✆', 39: '✇',
	40: '✈', 41: '✉', 42: '☛', 43: '☞', 44: '✌', 45: '✍', 46: '✎',
	47: '✏', 48: '✐', 49: '✑', 50: '✒', 51: '✓', 52: '✔', 53: '✕',
	54: '✖', 55: '✗', 56: '✘', 57: '✙', 58: '✚', 59: '✛', 60: '✜',
	61: '✝', 62: '✞', 63: '✟', 64: '✠', 65: '✡', 66: '✢', 67: '✣',
	68: '✤', 69: '✥', 70: '✦', 71: '✧', 72: '★', 73: '✩', 74: '✪',
	75: '✫', 76: '✬', 77: '✭', 78: '✮', 79: '✯', 80: '✰', 81: '✱',
	82: '✲', 83: '✳', 84: '✴', 85: '✵', 86: '✶', 87: '✷', 88: '✸',
	89: '✹', 90: '✺', 91: '✻', 92: '✼', 93: '✽', 94: '✾', 95: '✿',
	96: '❀', 97: '❁', 98: '❂', 99: '❃', 100: '❄', 101: '❅', 102: '❆',
	103: '❇', 104: '❈', 105: '❉', 106: '❊', 107: '❋', 108: '●',
	109: '❍', 110: '■', 111: '❏', 112: '❐', 113: '❑', 114: '❒',
	115: '▲', 116: '▼', 117: '◆', 118: '❖', 119: '◗', 120: '①',
	121: '②', 122: '③', 123: '④', 124: '⑤', 125: '⑥', 126: '⑦',

	161: '⑧', 162: '⑨', 163: '⑩', 164: '❶', 165: '❷', 166: '❸',
	167: '❹', 168: '❺', 169: '❻', 170: '❼', 171: '❽', 172: '❾',
	173: '❿', 174: '➀', 175: '➁', 176: '➂', 177: '➃', 178: '➄',
	179: '➅', 180: '➆', 181: '➇', 182: '➈', 183: '➉', 184: '➊',
	185: '➋', 186: '➌', 187: '➍', 188: '➎', 189: '➏', 190: '➐',
	191: '➑', 192: '➒', 193: '➓', 194: '➔', 195: '→', 196: '↔',
	197: '↕', 198: '➘', 199: '➙', 200: '➚', 201: '➛', 202: '➜',
	203: '➝', 204: '➞', 205: '➟', 206: '➠', 207: '➡', 208: '➢',
	209: '➣', 210: '➤', 211: '➥', 212: '➦', 213: '➧', 214: '➨',
	215: '➩', 216: '➪', 217: '➫', 218: '➬', 219: '➭', 220: '➮',
	221: '➯', 222: '➱', 223: '➲', 224: '➳', 225: '➴', 226: '➵',
	227: '➶', 228: '➷', 229: '➸', 230: '➹', 231: '➺', 232: '➻',
	233: '➼', 234: '➽', 235: '➾',
}

func newZapfDingbatsSimpleEncoder() SimpleEncoder {
	zapfDingbatsOnce.Do(initZapfDingbats)
	return &simpleEncoding{
		baseName: baseZapfDingbats,
		encode:   zapfDingbatsRuneToChar,
		decode:   zapfDingbatsCharToRune,
	}
}

func initZapfDingbats() {
	zapfDingbatsCharToRune = make(map[byte]rune, len(zapfDingbatsEncodingRunes))
	zapfDingbatsRuneToChar = make(map[rune]byte, len(zapfDingbatsEncodingRunes))
	for code, r := range zapfDingbatsEncodingRunes {
		zapfDingbatsCharToRune[code] = r
		zapfDingbatsRuneToChar[r] = code
	}
}
