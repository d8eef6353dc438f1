/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "testing"

// buildEncryptDict constructs a minimal standard-security-handler
// Encrypt dictionary, just detailed enough for detection: filter name,
// V, R and Length. It carries no valid O/U/OE/UE hashes, so R>=5
// authentication is expected to fail rather than succeed.
func buildEncryptDict(v, r, length int, stmf string) *PdfObjectDictionary {
	d := MakeDict()
	d.Set("Filter", MakeName("Standard"))
	d.Set("V", MakeInteger(int64(v)))
	d.Set("R", MakeInteger(int64(r)))
	d.Set("Length", MakeInteger(int64(length)))
	if stmf != "" {
		d.Set("StmF", MakeName(stmf))
	}
	d.Set("P", MakeInteger(-4))
	return d
}

func TestPdfCryptNewDecryptDetectsFilter(t *testing.T) {
	trailer := MakeDict()
	ed := buildEncryptDict(4, 4, 128, "AESV2")

	crypt, err := PdfCryptNewDecrypt(nil, ed, trailer)
	if err != nil {
		t.Fatal(err)
	}
	if crypt.GetFilterName() != "AESV2" {
		t.Errorf("filter = %q, want AESV2", crypt.GetFilterName())
	}
	if crypt.Version() != 4 || crypt.Revision() != 4 {
		t.Errorf("V/R = %d/%d, want 4/4", crypt.Version(), crypt.Revision())
	}
	if crypt.KeyLengthBits() != 128 {
		t.Errorf("key length = %d, want 128", crypt.KeyLengthBits())
	}
}

func TestPdfCryptDecryptRefusesStreams(t *testing.T) {
	trailer := MakeDict()
	ed := buildEncryptDict(2, 3, 40, "")

	crypt, err := PdfCryptNewDecrypt(nil, ed, trailer)
	if err != nil {
		t.Fatal(err)
	}

	stream := &PdfObjectStream{PdfObjectDictionary: MakeDict()}
	if err := crypt.Decrypt(stream, 1, 0); err == nil {
		t.Fatal("expected stream decryption to be refused")
	} else if !IsKind(err, ErrUnsupportedEncryption) {
		t.Errorf("got %v, want ErrUnsupportedEncryption", err)
	}

	// A plain indirect dictionary isn't a stream: it is passed through,
	// since its keys and structure were never encrypted to begin with.
	io := &PdfIndirectObject{PdfObject: MakeDict()}
	if err := crypt.Decrypt(io, 2, 0); err != nil {
		t.Errorf("structural object should not be refused: %v", err)
	}
}

func TestPdfCryptAuthenticateLegacyAcceptsAnyPassword(t *testing.T) {
	trailer := MakeDict()
	ed := buildEncryptDict(2, 3, 40, "")

	crypt, err := PdfCryptNewDecrypt(nil, ed, trailer)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := crypt.authenticate([]byte("anything"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("R<5 authentication should accept any password: no MD5 key-derivation handler is wired up")
	}
	if !crypt.authenticated {
		t.Error("authenticated flag should be set after a successful authenticate() call")
	}
}

func TestPdfCryptAuthenticateR6RejectsWrongPassword(t *testing.T) {
	trailer := MakeDict()
	ed := buildEncryptDict(5, 6, 256, "AESV3")

	crypt, err := PdfCryptNewDecrypt(nil, ed, trailer)
	if err != nil {
		t.Fatal(err)
	}

	// encDict carries no real O/U/OE/UE hashes (all nil), so Algorithm
	// 2.A's length checks fail and authentication is refused rather than
	// silently granted - unlike the legacy RC4 path above.
	ok, err := crypt.authenticate([]byte("password"))
	if err == nil && ok {
		t.Error("R=6 authentication with an empty security dictionary should not succeed")
	}
}

func TestIsAuthenticatedNilCrypterDoesNotPanic(t *testing.T) {
	parser := &PdfParser{}
	if parser.IsAuthenticated() {
		t.Error("a nil crypter (no /Encrypt detected) should report unauthenticated, not panic")
	}
}
