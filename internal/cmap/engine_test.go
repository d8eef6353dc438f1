/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cmap

import "testing"

// TestIdentityCMapEngine exercises the identity codespace+bfrange scenario:
// a full <0000>-<FFFF> codespace with a single identity bfrange expanded
// via the 256x256 chunking special case.
func TestIdentityCMapEngine(t *testing.T) {
	data := `
	/CIDInit /ProcSet findresource begin
	12 dict begin
	begincmap
	/CMapName /Identity-Test def
	/CMapType 2 def
	1 begincodespacerange
	<0000> <FFFF>
	endcodespacerange
	1 beginbfrange
	<0000> <FFFF> <0000>
	endbfrange
	endcmap
	CMapName currentdict /CMap defineresource pop
	end
	end
	`
	cm, err := LoadCmapFromData([]byte(data), false)
	if err != nil {
		t.Fatalf("LoadCmapFromData failed: %v", err)
	}

	check := func(code CharCode, want rune) {
		s, ok := cm.ToUnicodeWithLength(code, 2)
		if !ok {
			t.Fatalf("code 0x%04X not mapped", code)
		}
		if []rune(s)[0] != want {
			t.Errorf("code 0x%04X: got %U want %U", code, []rune(s)[0], want)
		}
	}
	check(0x0041, 'A')
	check(0x3039, 0x3039)
	check(0xFFFF, 0xFFFF)
}

// TestBfcharBfrangeEngine matches testable scenario 2 from the
// specification: a mix of bfchar and array-target bfrange entries.
func TestBfcharBfrangeEngine(t *testing.T) {
	data := `
	/CIDInit /ProcSet findresource begin
	12 dict begin
	begincmap
	/CMapName /Mixed-Test def
	/CMapType 2 def
	1 begincodespacerange
	<0000> <FFFF>
	endcodespacerange
	1 beginbfchar
	<000A> <002A>
	endbfchar
	1 beginbfrange
	<0120> <0122> [<0050> <0052> <0054>]
	endbfrange
	endcmap
	CMapName currentdict /CMap defineresource pop
	end
	end
	`
	cm, err := LoadCmapFromData([]byte(data), false)
	if err != nil {
		t.Fatalf("LoadCmapFromData failed: %v", err)
	}

	cases := []struct {
		code CharCode
		want rune
	}{
		{0x000A, '*'},
		{0x0120, 'P'},
		{0x0121, 'R'},
		{0x0122, 'T'},
	}
	for _, c := range cases {
		s, ok := cm.ToUnicodeWithLength(c.code, 2)
		if !ok {
			t.Fatalf("code 0x%04X not mapped", c.code)
		}
		if []rune(s)[0] != c.want {
			t.Errorf("code 0x%04X: got %U want %U", c.code, []rune(s)[0], c.want)
		}
	}
}

// TestAddCharMappingRoundTrip exercises the invariant from the
// specification's testable properties: for every (code, length) added via
// AddCharMapping, ToUnicodeWithLength and GetCodesFromUnicode round-trip.
func TestAddCharMappingRoundTrip(t *testing.T) {
	cm := newCMap(false)
	cm.AddCharMapping(0x41, 1, "A")
	cm.AddCharMapping(0x3042, 2, "あ")

	if s, ok := cm.ToUnicodeWithLength(0x41, 1); !ok || s != "A" {
		t.Errorf("1-byte round trip failed: %q %v", s, ok)
	}
	if s, ok := cm.ToUnicodeWithLength(0x3042, 2); !ok || s != "あ" {
		t.Errorf("2-byte round trip failed: %q %v", s, ok)
	}

	b, ok := cm.GetCodesFromUnicode("A")
	if !ok || len(b) != 1 || b[0] != 0x41 {
		t.Errorf("GetCodesFromUnicode(A) = %v, %v", b, ok)
	}
	b, ok = cm.GetCodesFromUnicode("あ")
	if !ok || len(b) != 2 || b[0] != 0x30 || b[1] != 0x42 {
		t.Errorf("GetCodesFromUnicode(3042) = %v, %v", b, ok)
	}
}

// TestAddCIDRangeCompression verifies that contiguous ranges merge into a
// single stored entry, and that discontiguous ranges do not.
func TestAddCIDRangeCompression(t *testing.T) {
	cm := newCMap(false)
	cm.AddCIDRange(0x0000, 0x00FF, 1, 2)
	cm.AddCIDRange(0x0100, 0x01FF, 0x101, 2) // contiguous: should merge
	cm.AddCIDRange(0x1000, 0x10FF, 5, 2)     // not contiguous: new entry

	if got := len(cm.eng.cidRanges); got != 2 {
		t.Fatalf("expected 2 stored ranges after merge, got %d", got)
	}

	for code := CharCode(0); code <= 0x1FF; code++ {
		want := code + 1
		if got := cm.ToCIDWithLength(code, 2); got != want {
			t.Fatalf("code 0x%04X: got cid %d want %d", code, got, want)
		}
	}
	if got := cm.ToCIDWithLength(0x1000, 2); got != 5 {
		t.Errorf("code 0x1000: got cid %d want 5", got)
	}
	if got := cm.ToCIDWithLength(0x9999, 2); got != 0 {
		t.Errorf("unmapped code should return 0 (.notdef), got %d", got)
	}
}

// TestAddCIDCharDirect verifies a cidchar entry is looked up ahead of any
// overlapping range, per the direct-map-first lookup order.
func TestAddCIDCharDirect(t *testing.T) {
	cm := newCMap(false)
	cm.AddCIDRange(0x0000, 0x00FF, 100, 2)
	cm.AddCIDChar(0x0010, 9999, 2)

	if got := cm.ToCIDWithLength(0x0010, 2); got != 9999 {
		t.Errorf("direct cidchar should win over range: got %d want 9999", got)
	}
	if got := cm.ToCIDWithLength(0x0011, 2); got != 117 {
		t.Errorf("non-overridden code should use range: got %d want 117", got)
	}
}

// TestReadCode verifies the growing-prefix probe and the minCodeLength
// fallback for bytes that match no codespace.
func TestReadCode(t *testing.T) {
	cm := newCMap(false)
	cm.codespaces = []Codespace{
		{NumBytes: 1, Low: 0x00, High: 0x80},
		{NumBytes: 2, Low: 0x8100, High: 0xFFFF},
	}
	cm.eng.observeLength(1)
	cm.eng.observeLength(2)

	code, n := cm.ReadCode([]byte{0x41}, 0)
	if n != 1 || code != 0x41 {
		t.Errorf("1-byte code: got code=0x%X n=%d", code, n)
	}

	code, n = cm.ReadCode([]byte{0x81, 0x41}, 0)
	if n != 2 || code != 0x8141 {
		t.Errorf("2-byte code: got code=0x%X n=%d", code, n)
	}

	// 0x90 alone matches no 1-byte codespace (High=0x80) and there aren't
	// enough bytes for the 2-byte codespace: falls back to minCodeLength.
	code, n = cm.ReadCode([]byte{0x90}, 0)
	if n != 1 || code != 0x90 {
		t.Errorf("fallback code: got code=0x%X n=%d", code, n)
	}
}

// TestUseCmapMerge verifies the shallow-merge semantics of UseCmap.
func TestUseCmapMerge(t *testing.T) {
	base := newCMap(false)
	base.AddCharMapping(0x41, 1, "A")
	base.AddCIDRange(0x00, 0xFF, 0, 1)
	base.codespaces = []Codespace{{NumBytes: 1, Low: 0, High: 0xFF}}

	derived := newCMap(false)
	derived.AddCharMapping(0x42, 1, "B")
	derived.UseCmap(base)

	if s, ok := derived.ToUnicodeWithLength(0x41, 1); !ok || s != "A" {
		t.Errorf("merged mapping missing: %q %v", s, ok)
	}
	if s, ok := derived.ToUnicodeWithLength(0x42, 1); !ok || s != "B" {
		t.Errorf("own mapping lost after merge: %q %v", s, ok)
	}
	if got := derived.ToCIDWithLength(0x10, 1); got != 0x10 {
		t.Errorf("merged CID range missing: got %d want 16", got)
	}
}
