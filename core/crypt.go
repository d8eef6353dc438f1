/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"fmt"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/core/security"
)

// PdfCrypt describes what the parser was able to determine about a
// document's standard security handler from its /Encrypt dictionary.
// No RC4 or AES crypt filter is wired up here, so object streams and
// strings are never decrypted: PdfCrypt's job is limited to detection
// (filter name, V, R, key length) and, for R>=5 documents, validating a
// password and recovering the permission bits through the real AES-256
// key-derivation algorithm in core/security. Decrypt always reports
// ErrUnsupportedEncryption for stream objects, matching the
// UnsupportedEncryption error kind: the document is still returned, but
// any stream that actually needs decrypting fails on access.
type PdfCrypt struct {
	authenticated bool

	filter      string
	V, R        int
	length      int
	permissions security.Permissions

	std     security.StdHandler
	encDict *security.StdEncryptDict

	decryptedObjNum  map[int]struct{}
	decryptedObjects map[PdfObject]bool
}

// String describes the security handler for diagnostic output.
func (crypt *PdfCrypt) String() string {
	return fmt.Sprintf("StandardSecurityHandler V=%d R=%d Length=%d Filter=%s", crypt.V, crypt.R, crypt.length, crypt.filter)
}

// GetFilterName returns the /StmF name from the /Encrypt dictionary when
// present; otherwise "AESV3" for V>=5, "AESV2" for V=4 and "V2" below that.
func (crypt *PdfCrypt) GetFilterName() string {
	return crypt.filter
}

// GetAccessPermissions returns the decoded P permission bits.
func (crypt *PdfCrypt) GetAccessPermissions() security.Permissions {
	return crypt.permissions
}

// Version returns the algorithm version number from the Encrypt dictionary.
func (crypt *PdfCrypt) Version() int {
	return crypt.V
}

// Revision returns the standard security handler revision.
func (crypt *PdfCrypt) Revision() int {
	return crypt.R
}

// KeyLengthBits returns the declared encryption key length in bits.
func (crypt *PdfCrypt) KeyLengthBits() int {
	return crypt.length
}

func cryptStringBytes(d *PdfObjectDictionary, key string) []byte {
	obj := TraceToDirectObject(d.Get(PdfObjectName(key)))
	str, ok := obj.(*PdfObjectString)
	if !ok {
		return nil
	}
	return str.Bytes()
}

// PdfCryptNewDecrypt builds a detection-only PdfCrypt from the Encrypt
// dictionary `ed` found via the trailer. It never fails on an
// unrecognized CFM or stream filter name - the filter name is recorded
// and reported by GetFilterName, and decryption itself is always refused.
func PdfCryptNewDecrypt(parser *PdfParser, ed, trailer *PdfObjectDictionary) (*PdfCrypt, error) {
	crypt := &PdfCrypt{
		decryptedObjNum:  map[int]struct{}{},
		decryptedObjects: map[PdfObject]bool{},
	}

	if v, ok := TraceToDirectObject(ed.Get("V")).(*PdfObjectInteger); ok {
		crypt.V = int(*v)
	}
	if r, ok := TraceToDirectObject(ed.Get("R")).(*PdfObjectInteger); ok {
		crypt.R = int(*r)
	}
	if length, ok := TraceToDirectObject(ed.Get("Length")).(*PdfObjectInteger); ok {
		crypt.length = int(*length)
	} else {
		crypt.length = 40
	}

	crypt.filter = "V2"
	if cf, ok := TraceToDirectObject(ed.Get("StmF")).(*PdfObjectName); ok {
		crypt.filter = string(*cf)
	} else if crypt.V >= 5 {
		crypt.filter = "AESV3"
	} else if crypt.V == 4 {
		crypt.filter = "AESV2"
	}

	d := &security.StdEncryptDict{R: crypt.R, EncryptMetadata: true}
	if p, ok := TraceToDirectObject(ed.Get("P")).(*PdfObjectInteger); ok {
		d.P = security.Permissions(uint32(int32(*p)))
	}
	if em, ok := TraceToDirectObject(ed.Get("EncryptMetadata")).(*PdfObjectBool); ok {
		d.EncryptMetadata = bool(*em)
	}
	d.O = cryptStringBytes(ed, "O")
	d.U = cryptStringBytes(ed, "U")
	d.OE = cryptStringBytes(ed, "OE")
	d.UE = cryptStringBytes(ed, "UE")
	d.Perms = cryptStringBytes(ed, "Perms")

	crypt.encDict = d
	crypt.permissions = d.P
	if crypt.R >= 5 {
		crypt.std = security.NewHandlerR6()
	}

	common.Log.Debug("encrypted document: filter=%s V=%d R=%d length=%d", crypt.filter, crypt.V, crypt.R, crypt.length)
	return crypt, nil
}

// authenticate validates password against the standard security
// handler. For R>=5 it runs the real Algorithm 2.A key derivation from
// core/security and recovers the document's actual permission bits; for
// older RC4-based revisions no MD5 key-derivation handler is
// implemented here, so any password is accepted and the previously
// parsed P value is used as-is.
func (crypt *PdfCrypt) authenticate(password []byte) (bool, error) {
	if crypt.std == nil {
		crypt.authenticated = true
		return true, nil
	}
	fkey, perm, err := crypt.std.Authenticate(crypt.encDict, password)
	if err != nil {
		return false, err
	}
	if fkey == nil {
		return false, nil
	}
	crypt.permissions = perm
	crypt.authenticated = true
	return true, nil
}

// checkAccessRights authenticates password and reports the resulting
// permission bits.
func (crypt *PdfCrypt) checkAccessRights(password []byte) (bool, security.Permissions, error) {
	ok, err := crypt.authenticate(password)
	if err != nil {
		return false, 0, err
	}
	if !ok {
		return false, 0, nil
	}
	return true, crypt.permissions, nil
}

// isDecrypted reports whether obj has already been handled: either
// explicitly exempted (the Encrypt/Info trailer entries are never
// themselves encrypted), or resolved from inside an object stream whose
// container was already processed.
func (crypt *PdfCrypt) isDecrypted(obj PdfObject) bool {
	if crypt.decryptedObjects[obj] {
		return true
	}
	switch o := obj.(type) {
	case *PdfIndirectObject:
		_, ok := crypt.decryptedObjNum[int(o.ObjectNumber)]
		return ok
	case *PdfObjectStream:
		_, ok := crypt.decryptedObjNum[int(o.ObjectNumber)]
		return ok
	}
	return false
}

// Decrypt marks obj as processed. Dictionaries, arrays and other
// structural objects are returned as-is since their keys and layout are
// never themselves encrypted. Streams are refused: no RC4/AES crypt
// filter is registered to recover their plaintext, so callers see
// ErrUnsupportedEncryption instead of silently getting back ciphertext.
func (crypt *PdfCrypt) Decrypt(obj PdfObject, parentObjNum, parentGenNum int64) error {
	crypt.decryptedObjects[obj] = true
	if _, isStream := obj.(*PdfObjectStream); isStream {
		return NewParseError(ErrUnsupportedEncryption, -1, fmt.Errorf("stream requires %s decryption, no decryptor registered", crypt.filter))
	}
	return nil
}
