/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cmap

// This file extends the flat-map CMap read from predefined CJK resources
// and ToUnicode streams with the length-partitioned bookkeeping an
// application like a font embedder needs: per-code-length Unicode lookup,
// a compressing CID range list, a direct (length, code) -> CID map for
// begincidchar entries, and the readCode probing algorithm used to walk an
// unknown byte string one code at a time.

// cidRange is one entry of an ordered, compressing CID range list. Ranges
// that are contiguous in both code and CID are merged into a single entry
// by addCIDRange so that large Identity-style CMaps don't allocate one
// entry per code.
type cidRange struct {
	codeLength int
	from       CharCode
	to         CharCode
	cidStart   CharCode
}

// engine holds the length-aware bookkeeping layered on top of a CMap's
// flat maps. It is populated incrementally as the parser encounters
// bfchar/bfrange/cidchar/cidrange operators.
type engine struct {
	// minCodeLength/maxCodeLength bound every code length seen so far.
	// They start at the sentinel 0 so the first mapping added establishes
	// both bounds.
	minCodeLength int
	maxCodeLength int

	// unicodeByLen partitions code->Unicode by code length: index 0 holds
	// 1-byte codes, index 1 holds 2-byte codes, index 2 holds codes of 3
	// bytes or more.
	unicodeByLen [3]map[CharCode]string

	// codeBytesForUnicode is the reverse of unicodeByLen: a Unicode string
	// maps back to the exact byte sequence that produced it.
	codeBytesForUnicode map[string][]byte

	// directCID maps code length -> code -> CID for begincidchar entries.
	directCID map[int]map[CharCode]CharCode

	// cidRanges is the ordered, compressing list built by begincidrange.
	cidRanges []cidRange

	// spaceMapping caches the code that maps to U+0020, or -1 if none has
	// been recorded yet.
	spaceMapping int64
}

func newEngine() *engine {
	e := &engine{spaceMapping: -1}
	for i := range e.unicodeByLen {
		e.unicodeByLen[i] = make(map[CharCode]string)
	}
	e.codeBytesForUnicode = make(map[string][]byte)
	e.directCID = make(map[int]map[CharCode]CharCode)
	return e
}

// lenBucket maps a byte length to the 0/1/2 bucket index used by
// unicodeByLen (1 byte, 2 bytes, 3-or-more bytes).
func lenBucket(length int) int {
	switch {
	case length <= 1:
		return 0
	case length == 2:
		return 1
	default:
		return 2
	}
}

func (e *engine) observeLength(length int) {
	if e.minCodeLength == 0 || length < e.minCodeLength {
		e.minCodeLength = length
	}
	if length > e.maxCodeLength {
		e.maxCodeLength = length
	}
}

// addCharMapping records that the `length`-byte code sequence `bytes`
// (whose big-endian integer value is `code`) maps to the Unicode string
// `s`. It is the engine-level counterpart of a single bfchar/bfrange entry.
func (e *engine) addCharMapping(code CharCode, bts []byte, s string) {
	length := len(bts)
	if length == 0 {
		return
	}
	e.observeLength(length)
	e.unicodeByLen[lenBucket(length)][code] = s
	cp := make([]byte, length)
	copy(cp, bts)
	e.codeBytesForUnicode[s] = cp
	if s == " " {
		e.spaceMapping = int64(code)
	}
}

// toUnicodeWithLength dispatches by code length to one of the three
// length-partitioned maps.
func (e *engine) toUnicodeWithLength(code CharCode, length int) (string, bool) {
	s, ok := e.unicodeByLen[lenBucket(length)][code]
	return s, ok
}

// toUnicodeAny probes lengths 1, 2, 3, 4 in order and returns the first
// hit. Ambiguous CMaps with overlapping code lengths may therefore return
// a shorter match even when a longer one also exists; this mirrors the
// documented Adobe Reader behavior and is preserved intentionally.
func (e *engine) toUnicodeAny(code CharCode) (string, bool) {
	for length := 1; length <= 4; length++ {
		if s, ok := e.toUnicodeWithLength(code, length); ok {
			return s, ok
		}
	}
	return "", false
}

// getCodesFromUnicode returns the exact byte sequence that was registered
// for `s` via addCharMapping, if any.
func (e *engine) getCodesFromUnicode(s string) ([]byte, bool) {
	b, ok := e.codeBytesForUnicode[s]
	return b, ok
}

// addCIDRange records that every code in [from, to] (a `codeLength`-byte
// code) maps to cidStart+(code-from). It attempts to extend the last
// stored range in place when the new range is contiguous in both code and
// CID space with the same code length; this is the compression that keeps
// CMap memory bounded for large Identity mappings.
func (e *engine) addCIDRange(from, to CharCode, cidStart CharCode, codeLength int) {
	if to < from {
		return
	}
	e.observeLength(codeLength)
	if n := len(e.cidRanges); n > 0 {
		last := &e.cidRanges[n-1]
		if last.codeLength == codeLength &&
			from == last.to+1 &&
			cidStart == last.cidStart+(last.to-last.from)+1 {
			last.to = to
			return
		}
	}
	e.cidRanges = append(e.cidRanges, cidRange{
		codeLength: codeLength,
		from:       from,
		to:         to,
		cidStart:   cidStart,
	})
}

// addCIDChar records a single direct code->CID mapping from a cidchar
// entry, bypassing the range-compression path (a lone cidchar entry is
// rarely contiguous with its neighbors).
func (e *engine) addCIDChar(code CharCode, cid CharCode, codeLength int) {
	e.observeLength(codeLength)
	m, ok := e.directCID[codeLength]
	if !ok {
		m = make(map[CharCode]CharCode)
		e.directCID[codeLength] = m
	}
	m[code] = cid
}

// toCIDWithLength looks up the direct map first, then scans the range list
// in insertion order; the first matching range wins. It returns 0 (the
// .notdef CID) when no mapping is found -- there is no separate "missing"
// signal.
func (e *engine) toCIDWithLength(code CharCode, codeLength int) CharCode {
	if m, ok := e.directCID[codeLength]; ok {
		if cid, ok := m[code]; ok {
			return cid
		}
	}
	for _, r := range e.cidRanges {
		if r.codeLength == codeLength && r.from <= code && code <= r.to {
			return r.cidStart + (code - r.from)
		}
	}
	return 0
}

// codespaceRanges is implemented by CMap to give readCode access to the
// codespace list without creating an import cycle.
type codespaceRanges interface {
	matchesCodespace(code CharCode, length int) bool
}

// readCode reads the minimum-length prefix of `data` (starting at
// `offset`) whose value falls inside some codespace range, growing one
// byte at a time from minCodeLength up to maxCodeLength. If no length in
// that range matches any codespace, it falls back to consuming exactly
// minCodeLength bytes -- an intentional Adobe-Reader-compatible behavior
// that silently drops bytes on malformed input; this is documented, not
// accidental.
func (e *engine) readCode(data []byte, offset int, spaces codespaceRanges) (code CharCode, consumed int) {
	minLen := e.minCodeLength
	if minLen == 0 {
		minLen = 1
	}
	maxLen := e.maxCodeLength
	if maxLen < minLen {
		maxLen = minLen
	}
	if offset >= len(data) {
		return 0, 0
	}

	for length := minLen; length <= maxLen; length++ {
		if offset+length > len(data) {
			break
		}
		var c CharCode
		for i := 0; i < length; i++ {
			c = c<<8 | CharCode(data[offset+i])
		}
		if spaces.matchesCodespace(c, length) {
			return c, length
		}
	}

	// Fallback: no codespace matched any candidate length. Consume exactly
	// minCodeLength bytes, clamped to the remaining buffer.
	n := minLen
	if offset+n > len(data) {
		n = len(data) - offset
	}
	var c CharCode
	for i := 0; i < n; i++ {
		c = c<<8 | CharCode(data[offset+i])
	}
	return c, n
}

// mergeFrom copies another engine's length-partitioned Unicode maps, CID
// structures and bounds into e, as used by CMap.UseCmap.
func (e *engine) mergeFrom(other *engine) {
	if other == nil {
		return
	}
	for i := range e.unicodeByLen {
		for code, s := range other.unicodeByLen[i] {
			if _, ok := e.unicodeByLen[i][code]; !ok {
				e.unicodeByLen[i][code] = s
			}
		}
	}
	for s, b := range other.codeBytesForUnicode {
		if _, ok := e.codeBytesForUnicode[s]; !ok {
			e.codeBytesForUnicode[s] = b
		}
	}
	for length, m := range other.directCID {
		dst, ok := e.directCID[length]
		if !ok {
			dst = make(map[CharCode]CharCode)
			e.directCID[length] = dst
		}
		for code, cid := range m {
			if _, ok := dst[code]; !ok {
				dst[code] = cid
			}
		}
	}
	e.cidRanges = append(e.cidRanges, other.cidRanges...)
	if other.minCodeLength != 0 && (e.minCodeLength == 0 || other.minCodeLength < e.minCodeLength) {
		e.minCodeLength = other.minCodeLength
	}
	if other.maxCodeLength > e.maxCodeLength {
		e.maxCodeLength = other.maxCodeLength
	}
	if e.spaceMapping < 0 {
		e.spaceMapping = other.spaceMapping
	}
}
