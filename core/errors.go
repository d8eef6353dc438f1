/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorKind groups parse/recovery failures into the categories callers
// branch on, rather than forcing string matching on error messages.
type ErrorKind int

const (
	// ErrHeaderMissing is raised when no %PDF-M.N header is found and the
	// parser is running in strict mode.
	ErrHeaderMissing ErrorKind = iota
	// ErrMalformedToken marks an unrecognized byte sequence where a token
	// was required. Recoverable with a warning in lenient mode.
	ErrMalformedToken
	// ErrStructuralCorruption marks a broken xref, trailer, or stream
	// length. Triggers brute-force recovery.
	ErrStructuralCorruption
	// ErrUnresolvedReference marks a Ref whose xref entry does not point
	// at a valid "N G obj" marker. Resolved to Null with a warning.
	ErrUnresolvedReference
	// ErrCMapSyntax marks an invalid CMap operator or malformed range.
	// The affected range is skipped.
	ErrCMapSyntax
	// ErrDamagedFont marks a Type 1 font whose ASCII prologue does not
	// start with "%!", or a CHARSTRING claiming more bytes than the
	// buffer holds. Never recovered.
	ErrDamagedFont
	// ErrUnsupportedEncryption marks a detected /Encrypt dictionary with
	// no registered decryptor.
	ErrUnsupportedEncryption
)

func (k ErrorKind) String() string {
	switch k {
	case ErrHeaderMissing:
		return "HeaderMissing"
	case ErrMalformedToken:
		return "MalformedToken"
	case ErrStructuralCorruption:
		return "StructuralCorruption"
	case ErrUnresolvedReference:
		return "UnresolvedReference"
	case ErrCMapSyntax:
		return "CMapSyntaxError"
	case ErrDamagedFont:
		return "DamagedFont"
	case ErrUnsupportedEncryption:
		return "UnsupportedEncryption"
	default:
		return "Unknown"
	}
}

// ParseError carries a category (Kind), the byte offset where it was
// detected (-1 when not applicable), and the underlying cause.
type ParseError struct {
	Kind   ErrorKind
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %v", e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError, wrapping cause with xerrors so that
// %w-style chains survive through errors.Is/errors.As.
func NewParseError(kind ErrorKind, offset int64, cause error) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Err: xerrors.Errorf("%w", cause)}
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == kind
}

// Warning is a non-fatal recovery-mode diagnostic collected by the
// DocumentParser and surfaced to callers instead of aborting the parse.
type Warning struct {
	Offset  int64
	Kind    ErrorKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s @%d: %s", w.Kind, w.Offset, w.Message)
}
