/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package svgpath tokenizes and executes the SVG 1.1 path `d` attribute
// grammar, converting it into the five-operation PathSink contract a
// content-stream generator can consume directly. The tokenizer scans the
// path string as an in-memory byte slice with a position index, using the
// same peek-then-consume shape as this module's bufio.Reader-based lexers
// (core/parser.go, internal/cmap, internal/type1) without a bufio.Reader.
package svgpath

// PathSink receives the decomposed drawing operations produced by
// Execute. Quadratic curves are passed through rather than upsampled to
// cubic, because some callers (PDF content streams have no quadratic
// operator) need to do that upsampling themselves with their own
// tolerance.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(c1x, c1y, c2x, c2y, x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	Close()
}
