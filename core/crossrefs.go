/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/inkpath/pdfcore/common"
)

// xrefType distinguishes a classic xref-table entry from one that was
// discovered inside a compressed object stream.
type xrefType int

const (
	// XrefTypeTableEntry is a normal "offset generation n" xref table entry.
	XrefTypeTableEntry xrefType = iota

	// XrefTypeObjectStream is an entry recorded by a cross-reference stream
	// pointing into a compressed object stream.
	XrefTypeObjectStream
)

// XrefObject locates one indirect object: either a byte offset into the
// file (table entries) or a position inside an object stream.
type XrefObject struct {
	XType        xrefType
	ObjectNumber int
	Generation   int

	// Offset is valid for XrefTypeTableEntry.
	Offset int64

	// OsObjNumber/OsObjIndex are valid for XrefTypeObjectStream.
	OsObjNumber int
	OsObjIndex  int
}

// XrefTable is the resolved set of object locations for one document
// version, keyed by object number.
type XrefTable struct {
	ObjectMap map[int]XrefObject

	// sortedObjects holds only the table entries that carry a file offset,
	// ordered for brute-force scanning.
	sortedObjects []XrefObject
}

// objectStream caches one decoded compressed object stream: its declared
// member count and each member's offset within the decoded payload.
type objectStream struct {
	N       int
	ds      []byte
	offsets map[int]int64
}

type objectStreams map[int]objectStream

// objectCache memoizes already-parsed indirect objects by object number.
type objectCache map[int]PdfObject

// readObjectStreamHeader decodes an ObjStm dictionary's N/First pair and
// validates its /Type, returning the decoded stream payload.
func readObjectStreamHeader(parser *PdfParser, so *PdfObjectStream) (payload []byte, n int64, first int64, err error) {
	dict := so.PdfObjectDictionary
	common.Log.Trace("so d: %s\n", dict.String())

	name, ok := dict.Get("Type").(*PdfObjectName)
	if !ok {
		return nil, 0, 0, errors.New("object stream missing Type")
	}
	if strings.ToLower(string(*name)) != "objstm" {
		return nil, 0, 0, errors.New("object stream type != ObjStm")
	}

	nObj, ok := dict.Get("N").(*PdfObjectInteger)
	if !ok {
		return nil, 0, 0, errors.New("invalid N in stream dictionary")
	}
	firstObj, ok := dict.Get("First").(*PdfObjectInteger)
	if !ok {
		return nil, 0, 0, errors.New("invalid First in stream dictionary")
	}

	common.Log.Trace("type: %s number of objects: %d", name, *nObj)
	decoded, err := DecodeStream(so)
	if err != nil {
		return nil, 0, 0, err
	}
	common.Log.Trace("Decoded: %s", decoded)

	return decoded, int64(*nObj), int64(*firstObj), nil
}

// readObjectStreamOffsets parses the "num offset" pair table at the head of
// a decoded object stream, returning each member's absolute offset.
func (parser *PdfParser) readObjectStreamOffsets(count int, first int64) (map[int]int64, error) {
	offsets := make(map[int]int64, count)
	for i := 0; i < count; i++ {
		parser.skipSpaces()
		obj, err := parser.parseNumber()
		if err != nil {
			return nil, err
		}
		onum, ok := obj.(*PdfObjectInteger)
		if !ok {
			return nil, errors.New("invalid object stream offset table")
		}

		parser.skipSpaces()
		obj, err = parser.parseNumber()
		if err != nil {
			return nil, err
		}
		relOffset, ok := obj.(*PdfObjectInteger)
		if !ok {
			return nil, errors.New("invalid object stream offset table")
		}

		common.Log.Trace("obj %d offset %d", *onum, *relOffset)
		offsets[int(*onum)] = first + int64(*relOffset)
	}
	return offsets, nil
}

// lookupObjectViaOS extracts member objNum from the compressed object
// stream held by indirect object sobjNumber, decoding and caching the
// stream's contents the first time it is visited.
func (parser *PdfParser) lookupObjectViaOS(sobjNumber int, objNum int) (PdfObject, error) {
	objstm, cached := parser.objstms[sobjNumber]
	if !cached {
		soi, err := parser.LookupByNumber(sobjNumber)
		if err != nil {
			common.Log.Debug("Missing object stream with number %d", sobjNumber)
			return nil, err
		}

		so, ok := soi.(*PdfObjectStream)
		if !ok {
			return nil, errors.New("invalid object stream")
		}
		if parser.crypter != nil && !parser.crypter.isDecrypted(so) {
			return nil, errors.New("need to decrypt the stream")
		}

		decoded, n, first, err := readObjectStreamHeader(parser, so)
		if err != nil {
			return nil, err
		}

		// The offset table lives at the front of the decoded stream, so the
		// reader is pointed at it temporarily and restored afterward.
		restoreOffset := parser.GetFileOffset()
		defer parser.SetFileOffset(restoreOffset)
		parser.reader = bufio.NewReader(bytes.NewReader(decoded))

		common.Log.Trace("Parsing offset map")
		offsets, err := parser.readObjectStreamOffsets(int(n), first)
		if err != nil {
			return nil, err
		}

		objstm = objectStream{N: int(n), ds: decoded, offsets: offsets}
		parser.objstms[sobjNumber] = objstm
	} else {
		restoreOffset := parser.GetFileOffset()
		defer parser.SetFileOffset(restoreOffset)
		parser.reader = bufio.NewReader(bytes.NewReader(objstm.ds))
	}

	offset := objstm.offsets[objNum]
	common.Log.Trace("ACTUAL offset[%d] = %d", objNum, offset)

	memberReader := bytes.NewReader(objstm.ds)
	memberReader.Seek(offset, os.SEEK_SET)
	parser.reader = bufio.NewReader(memberReader)

	if bb, _ := parser.reader.Peek(100); len(bb) > 0 {
		common.Log.Trace("OBJ peek \"%s\"", string(bb))
	}

	val, err := parser.parseObject()
	if err != nil {
		common.Log.Debug("ERROR Fail to read object (%s)", err)
		return nil, err
	}
	if val == nil {
		return nil, errors.New("object cannot be null")
	}

	return &PdfIndirectObject{
		PdfObjectReference: PdfObjectReference{ObjectNumber: int64(objNum)},
		PdfObject:          val,
	}, nil
}

// LookupByNumber resolves an object number to its parsed object, attempting
// an xref repair pass if the stored location turns out to be bad.
func (parser *PdfParser) LookupByNumber(objNumber int) (PdfObject, error) {
	obj, _, err := parser.lookupByNumberWrapper(objNumber, true)
	return obj, err
}

// lookupByNumberWrapper adds decryption on top of lookupByNumber; objects
// read out of a compressed object stream are never individually encrypted.
func (parser *PdfParser) lookupByNumberWrapper(objNumber int, attemptRepairs bool) (PdfObject, bool, error) {
	obj, inObjStream, err := parser.lookupByNumber(objNumber, attemptRepairs)
	if err != nil {
		return nil, inObjStream, err
	}

	if !inObjStream && parser.crypter != nil && !parser.crypter.isDecrypted(obj) {
		if err := parser.crypter.Decrypt(obj, 0, 0); err != nil {
			return nil, inObjStream, err
		}
	}

	return obj, inObjStream, nil
}

// getObjectNumber extracts the object/generation number pair carried by an
// indirect or stream object.
func getObjectNumber(obj PdfObject) (int64, int64, error) {
	switch t := obj.(type) {
	case *PdfIndirectObject:
		return t.ObjectNumber, t.GenerationNumber, nil
	case *PdfObjectStream:
		return t.ObjectNumber, t.GenerationNumber, nil
	}
	return 0, 0, errors.New("not an indirect/stream object")
}

// lookupTableEntry reads a classic xref-table entry by seeking to its file
// offset and parsing the indirect object there, recovering the table if the
// offset turns out to be stale or the object numbers disagree.
func (parser *PdfParser) lookupTableEntry(objNumber int, xref XrefObject, attemptRepairs bool) (PdfObject, bool, error) {
	parser.rs.Seek(xref.Offset, os.SEEK_SET)
	parser.reader = bufio.NewReader(parser.rs)

	obj, err := parser.ParseIndirectObject()
	if err != nil {
		common.Log.Debug("ERROR Failed reading xref (%s)", err)
		if !attemptRepairs {
			return nil, false, err
		}
		common.Log.Debug("Attempting to repair xrefs (top down)")
		xrefTable, rerr := parser.repairRebuildXrefsTopDown()
		if rerr != nil {
			common.Log.Debug("ERROR Failed repair (%s)", rerr)
			return nil, false, rerr
		}
		parser.xrefs = *xrefTable
		return parser.lookupByNumber(objNumber, false)
	}

	if attemptRepairs {
		if realObjNum, _, _ := getObjectNumber(obj); int(realObjNum) != objNumber {
			common.Log.Debug("Invalid xrefs: Rebuilding")
			if err := parser.rebuildXrefTable(); err != nil {
				return nil, false, err
			}
			parser.ObjCache = objectCache{}
			return parser.lookupByNumberWrapper(objNumber, false)
		}
	}

	common.Log.Trace("Returning obj")
	parser.ObjCache[objNumber] = obj
	return obj, false, nil
}

// lookupObjectStreamEntry resolves an xref-stream entry that points into a
// compressed object stream.
func (parser *PdfParser) lookupObjectStreamEntry(objNumber int, xref XrefObject) (PdfObject, bool, error) {
	common.Log.Trace("xref from object stream!")
	common.Log.Trace("Object stream available in object %d/%d", xref.OsObjNumber, xref.OsObjIndex)

	if xref.OsObjNumber == objNumber {
		common.Log.Debug("ERROR Circular reference!?!")
		return nil, true, errors.New("xref circular reference")
	}

	if _, exists := parser.xrefs.ObjectMap[xref.OsObjNumber]; !exists {
		common.Log.Debug("?? Belongs to a non-cross referenced object ...!")
		return nil, true, errors.New("os belongs to a non cross referenced object")
	}

	optr, err := parser.lookupObjectViaOS(xref.OsObjNumber, objNumber)
	if err != nil {
		common.Log.Debug("ERROR Returning ERR (%s)", err)
		return nil, true, err
	}
	common.Log.Trace("<Loaded via OS")
	parser.ObjCache[objNumber] = optr
	if parser.crypter != nil {
		// Member objects of a stream are never individually encrypted; mark
		// as already-decrypted so a later pass doesn't try.
		parser.crypter.decryptedObjects[optr] = true
	}
	return optr, true, nil
}

// lookupByNumber is the uncached, undecrypted core of LookupByNumber.
func (parser *PdfParser) lookupByNumber(objNumber int, attemptRepairs bool) (PdfObject, bool, error) {
	if obj, ok := parser.ObjCache[objNumber]; ok {
		common.Log.Trace("Returning cached object %d", objNumber)
		return obj, false, nil
	}

	xref, ok := parser.xrefs.ObjectMap[objNumber]
	if !ok {
		// A reference to an undefined object number is not an error; it is
		// treated as a reference to the null object (PDF 32000-1 §7.3.10).
		common.Log.Trace("Unable to locate object in xrefs! - Returning null object")
		return &PdfObjectNull{}, false, nil
	}

	common.Log.Trace("Lookup obj number %d", objNumber)
	switch xref.XType {
	case XrefTypeTableEntry:
		return parser.lookupTableEntry(objNumber, xref, attemptRepairs)
	case XrefTypeObjectStream:
		return parser.lookupObjectStreamEntry(objNumber, xref)
	default:
		return nil, false, errors.New("unknown xref type")
	}
}

// LookupByReference resolves a reference to its target object.
func (parser *PdfParser) LookupByReference(ref PdfObjectReference) (PdfObject, error) {
	common.Log.Trace("Looking up reference %s", ref.String())
	return parser.LookupByNumber(int(ref.ObjectNumber))
}

// Resolve follows a single level of reference indirection, unlike
// TraceToDirectObject which also unwraps indirect-object wrappers.
func (parser *PdfParser) Resolve(obj PdfObject) (PdfObject, error) {
	ref, isRef := obj.(*PdfObjectReference)
	if !isRef {
		return obj, nil
	}

	restoreOffset := parser.GetFileOffset()
	defer parser.SetFileOffset(restoreOffset)

	resolved, err := parser.LookupByReference(*ref)
	if err != nil {
		return nil, err
	}

	io, isInd := resolved.(*PdfIndirectObject)
	if !isInd {
		return resolved, nil
	}

	inner := io.PdfObject
	if _, isRef := inner.(*PdfObjectReference); isRef {
		return io, errors.New("multi depth trace pointer to pointer")
	}
	return inner, nil
}

func printXrefTable(xrefTable XrefTable) {
	common.Log.Debug("=X=X=X=")
	common.Log.Debug("Xref table:")
	i := 0
	for _, xref := range xrefTable.ObjectMap {
		common.Log.Debug("i+1: %d (obj num: %d gen: %d) -> %d", i+1, xref.ObjectNumber, xref.Generation, xref.Offset)
		i++
	}
}
