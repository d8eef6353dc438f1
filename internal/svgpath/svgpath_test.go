/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgpath

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every PathSink call it receives, in order.
type recordingSink struct {
	calls []string
}

func (s *recordingSink) MoveTo(x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("M %.4g %.4g", x, y))
}
func (s *recordingSink) LineTo(x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("L %.4g %.4g", x, y))
}
func (s *recordingSink) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("C %.4g %.4g %.4g %.4g %.4g %.4g", c1x, c1y, c2x, c2y, x, y))
}
func (s *recordingSink) QuadraticCurveTo(cx, cy, x, y float64) {
	s.calls = append(s.calls, fmt.Sprintf("Q %.4g %.4g %.4g %.4g", cx, cy, x, y))
}
func (s *recordingSink) Close() {
	s.calls = append(s.calls, "Z")
}

func TestTokenizerNumbers(t *testing.T) {
	tok := newTokenizer("1 -2.5 .5 3e2 -1.2E-3")
	want := []float64{1, -2.5, 0.5, 300, -0.0012}
	for _, w := range want {
		v, err := tok.nextNumber()
		require.NoError(t, err)
		assert.InDelta(t, w, v, 1e-9)
	}
	assert.True(t, tok.atEOF())
}

func TestTokenizerCompactArcFlags(t *testing.T) {
	// "00.5.5" must tokenize as flag(0), flag(0), number(0.5), number(0.5).
	tok := newTokenizer("00.5.5")
	f1, err := tok.nextFlag()
	require.NoError(t, err)
	assert.False(t, f1)
	f2, err := tok.nextFlag()
	require.NoError(t, err)
	assert.False(t, f2)
	n1, err := tok.nextNumber()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n1, 1e-9)
	n2, err := tok.nextNumber()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n2, 1e-9)
}

func TestExecuteMoveLine(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	err := Execute("M10 20 L30 40", sink, opts)
	require.NoError(t, err)
	require.Len(t, sink.calls, 2)
	assert.Equal(t, "M 10 20", sink.calls[0])
	assert.Equal(t, "L 30 40", sink.calls[1])
}

func TestExecuteImplicitRepetitionMBecomesL(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	// "M0 0 10 10" repeats M as an implicit L for the second pair.
	err := Execute("M0 0 10 10", sink, opts)
	require.NoError(t, err)
	require.Len(t, sink.calls, 2)
	assert.Equal(t, "M 0 0", sink.calls[0])
	assert.Equal(t, "L 10 10", sink.calls[1])
}

func TestExecuteRelativeLine(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	err := Execute("M10 10 l5 5", sink, opts)
	require.NoError(t, err)
	assert.Equal(t, "L 15 15", sink.calls[1])
}

func TestExecuteHV(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	err := Execute("M0 0 H10 V20", sink, opts)
	require.NoError(t, err)
	assert.Equal(t, "L 10 0", sink.calls[1])
	assert.Equal(t, "L 10 20", sink.calls[2])
}

func TestExecuteSmoothCubicReflects(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	// After a C ending with control point (20,0) relative to current
	// point (10,0), a following S must reflect (20,0) across (10,0) to
	// (0,0) as its first control point.
	err := Execute("M0 0 C5 10 20 0 10 0 S10 -10 20 0", sink, opts)
	require.NoError(t, err)
	require.Len(t, sink.calls, 2)
	assert.Equal(t, "C 0 0 10 -10 20 0", sink.calls[1])
}

func TestExecuteSmoothCubicWithoutPriorCurveCollapses(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	// S immediately after M (no preceding C/S) must use the current
	// point as its own reflected control point.
	err := Execute("M10 10 S20 0 30 10", sink, opts)
	require.NoError(t, err)
	assert.Equal(t, "C 10 10 20 0 30 10", sink.calls[1])
}

func TestExecuteClose(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	err := Execute("M0 0 L10 0 L10 10 Z", sink, opts)
	require.NoError(t, err)
	assert.Equal(t, "Z", sink.calls[len(sink.calls)-1])
}

func TestExecuteScaleTranslate(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 2, TranslateX: 1, TranslateY: 1}
	err := Execute("M10 10", sink, opts)
	require.NoError(t, err)
	assert.Equal(t, "M 21 21", sink.calls[0])
}

func TestExecuteFlipYAppliesSignOnly(t *testing.T) {
	sink := &recordingSink{}
	opts := DefaultOptions()
	err := Execute("M10 10", sink, opts)
	require.NoError(t, err)
	assert.Equal(t, "M 10 -10", sink.calls[0])
}

func TestArcToBezierDegenerateSamePoint(t *testing.T) {
	segs := arcToBezier(5, 5, 1, 1, 0, false, true, 5, 5)
	assert.Nil(t, segs)
}

func TestArcToBezierZeroRadiusIsLine(t *testing.T) {
	segs := arcToBezier(0, 0, 0, 1, 0, false, true, 10, 0)
	require.Len(t, segs, 1)
	assert.InDelta(t, 10, segs[0].x, 1e-9)
	assert.InDelta(t, 0, segs[0].y, 1e-9)
}

func TestArcToBezierQuarterCircleEndpoint(t *testing.T) {
	// A quarter circle of radius 1 from (1,0) to (0,1), sweep=1 (positive
	// angle direction), should reach its target endpoint exactly and emit
	// exactly one cubic segment (delta = pi/2).
	segs := arcToBezier(1, 0, 1, 1, 0, false, true, 0, 1)
	require.Len(t, segs, 1)
	assert.InDelta(t, 0, segs[0].x, 1e-9)
	assert.InDelta(t, 1, segs[0].y, 1e-9)
}

func TestArcToBezierLargeArcSplitsIntoMultipleSegments(t *testing.T) {
	// A large-arc sweep covers more than pi/2 of angle and must be split
	// into multiple cubic segments, each no more than pi/2.
	segs := arcToBezier(1, 0, 1, 1, 0, true, true, -1, 0)
	assert.GreaterOrEqual(t, len(segs), 2)
	last := segs[len(segs)-1]
	assert.InDelta(t, -1, last.x, 1e-9)
	assert.InDelta(t, 0, last.y, 1e-9)
}

func TestExecuteArcCompactFlags(t *testing.T) {
	sink := &recordingSink{}
	opts := Options{FlipY: false, Scale: 1}
	// Matches the grammar example directly: rx=1 ry=1 rot=0 large=0
	// sweep=0 x=0.5 y=0.5, starting from the origin.
	err := Execute("M0 0 a1 1 0 00.5.5", sink, opts)
	require.NoError(t, err)
	require.Len(t, sink.calls, 2)
	assert.Equal(t, byte('C'), sink.calls[1][0])
}

func TestAngleBetweenQuadrant(t *testing.T) {
	// 90 degrees counter-clockwise from (1,0) is (0,1).
	a := angleBetween(1, 0, 0, 1)
	assert.InDelta(t, math.Pi/2, a, 1e-9)
}
