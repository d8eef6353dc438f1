/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Routines related to repairing malformed pdf files.

package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"bufio"
	"io"
	"strconv"

	"github.com/inkpath/pdfcore/common"
)

var repairReXrefTable = regexp.MustCompile(`[\r\n]\s*(xref)\s*[\r\n]`)

// Locates a standard Xref table by looking for the "xref" entry.
// Xref object stream not supported.
func (parser *PdfParser) repairLocateXref() (int64, error) {
	readBuf := int64(1000)
	parser.rs.Seek(-readBuf, os.SEEK_CUR)

	curOffset, err := parser.rs.Seek(0, os.SEEK_CUR)
	if err != nil {
		return 0, err
	}
	b2 := make([]byte, readBuf)
	parser.rs.Read(b2)

	results := repairReXrefTable.FindAllStringIndex(string(b2), -1)
	if len(results) < 1 {
		common.Log.Debug("ERROR: Repair: xref not found!")
		return 0, errors.New("repair: xref not found")
	}

	localOffset := int64(results[len(results)-1][0])
	xrefOffset := curOffset + localOffset
	return xrefOffset, nil
}

// Renumbers the xref table.
// Useful when the cross reference is pointing to an object with the wrong number.
// Update the table.
func (parser *PdfParser) rebuildXrefTable() error {
	newXrefs := XrefTable{}
	newXrefs.ObjectMap = map[int]XrefObject{}
	for objNum, xref := range parser.xrefs.ObjectMap {
		obj, _, err := parser.lookupByNumberWrapper(objNum, false)
		if err != nil {
			common.Log.Debug("ERROR: Unable to look up object (%s)", err)
			common.Log.Debug("ERROR: Xref table completely broken - attempting to repair ")
			xrefTable, err := parser.repairRebuildXrefsTopDown()
			if err != nil {
				common.Log.Debug("ERROR: Failed xref rebuild repair (%s)", err)
				return err
			}
			parser.xrefs = *xrefTable
			common.Log.Debug("Repaired xref table built")
			return nil
		}
		actObjNum, actGenNum, err := getObjectNumber(obj)
		if err != nil {
			return err
		}

		xref.ObjectNumber = int(actObjNum)
		xref.Generation = int(actGenNum)
		newXrefs.ObjectMap[int(actObjNum)] = xref
	}

	parser.xrefs = newXrefs
	common.Log.Debug("New xref table built")
	printXrefTable(parser.xrefs)
	return nil
}

// Parses and returns the object and generation number from a string such as "12 0 obj" -> (12,0,nil).
func parseObjectNumberFromString(str string) (int, int, error) {
	result := reIndirectObject.FindStringSubmatch(str)
	if len(result) < 3 {
		return 0, 0, errors.New("unable to detect indirect object signature")
	}

	on, _ := strconv.Atoi(result[1])
	gn, _ := strconv.Atoi(result[2])

	return on, gn, nil
}

// recoveredObject is a candidate "N G obj" marker found by the top-down
// byte scan, before it has been parsed.
type recoveredObject struct {
	objNum, genNum int
	offset         int64
}

// scanForObjectMarkers walks the file byte-by-byte looking for "<num>
// <generation> obj" patterns, accepting only objNum in [0, 10000000] and
// genNum in [0, 65535] per the documented recovery bounds, and keeping the
// latest-by-offset entry on duplicates.
func (parser *PdfParser) scanForObjectMarkers() ([]recoveredObject, error) {
	parser.rs.Seek(0, os.SEEK_SET)
	parser.reader = bufio.NewReader(parser.rs)

	// Keep a running buffer of last bytes.
	bufLen := 20
	last := make([]byte, bufLen)

	byOffset := make(map[int]recoveredObject)
	order := make([]int, 0)

	for {
		b, err := parser.reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		// Format:
		// object number - whitespace - generation number - obj
		// e.g. "12 0 obj"
		if b == 'j' && last[bufLen-1] == 'b' && last[bufLen-2] == 'o' && IsWhiteSpace(last[bufLen-3]) {
			i := bufLen - 4
			// Go past whitespace
			for IsWhiteSpace(last[i]) && i > 0 {
				i--
			}
			if i == 0 || !IsDecimalDigit(last[i]) {
				last = append(last[1:bufLen], b)
				continue
			}
			// Go past generation number
			for IsDecimalDigit(last[i]) && i > 0 {
				i--
			}
			if i == 0 || !IsWhiteSpace(last[i]) {
				last = append(last[1:bufLen], b)
				continue
			}
			// Go past whitespace
			for IsWhiteSpace(last[i]) && i > 0 {
				i--
			}
			if i == 0 || !IsDecimalDigit(last[i]) {
				last = append(last[1:bufLen], b)
				continue
			}
			// Go past object number.
			for IsDecimalDigit(last[i]) && i > 0 {
				i--
			}
			if i == 0 {
				last = append(last[1:bufLen], b)
				continue // Probably too long to be a valid object...
			}

			objOffset := parser.GetFileOffset() - int64(bufLen-i)

			objstr := append(append([]byte{}, last[i+1:]...), b)
			objNum, genNum, perr := parseObjectNumberFromString(string(objstr))
			if perr != nil {
				common.Log.Debug("Unable to parse object number: %v", perr)
				last = append(last[1:bufLen], b)
				continue
			}

			if objNum < 0 || objNum > 10000000 || genNum < 0 || genNum > 65535 {
				last = append(last[1:bufLen], b)
				continue
			}

			cur, has := byOffset[objNum]
			if !has || cur.offset < objOffset {
				if !has {
					order = append(order, objNum)
				}
				byOffset[objNum] = recoveredObject{objNum: objNum, genNum: genNum, offset: objOffset}
			}
		}

		last = append(last[1:bufLen], b)
	}

	found := make([]recoveredObject, 0, len(order))
	for _, objNum := range order {
		found = append(found, byOffset[objNum])
	}
	return found, nil
}

// repairRebuildXrefsTopDown rebuilds the xref table by brute force: it
// scans the whole file for "N G obj" markers (scanForObjectMarkers), then
// fully parses every candidate object. Object streams discovered along the
// way have their contained objects indexed as compressed (type 2) xref
// entries; the first dictionary tagged /Type /Catalog becomes the
// synthesized trailer's /Root (falling back to /Type /Pages with a
// warning if no Catalog turns up). The resulting trailer has Root and a
// Size of maxObjNum+1.
func (parser *PdfParser) repairRebuildXrefsTopDown() (*XrefTable, error) {
	if parser.repairsAttempted {
		// Avoid multiple repairs (only try once).
		return nil, fmt.Errorf("repair failed")
	}
	parser.repairsAttempted = true

	candidates, err := parser.scanForObjectMarkers()
	if err != nil {
		return nil, err
	}

	xrefTable := XrefTable{}
	xrefTable.ObjectMap = make(map[int]XrefObject)

	stats := &RecoveryStats{}
	var rootObjNum, pagesObjNum int = -1, -1
	maxObjNum := 0

	for _, cand := range candidates {
		stats.ObjectsScanned++
		if cand.objNum > maxObjNum {
			maxObjNum = cand.objNum
		}

		xrefEntry := XrefObject{
			XType:        XrefTypeTableEntry,
			ObjectNumber: cand.objNum,
			Generation:   cand.genNum,
			Offset:       cand.offset,
		}
		if curXref, has := xrefTable.ObjectMap[cand.objNum]; !has || curXref.Generation < cand.genNum {
			xrefTable.ObjectMap[cand.objNum] = xrefEntry
		}

		obj, perr := parser.parseCandidateObject(cand)
		if perr != nil {
			parser.addWarning(ErrStructuralCorruption, cand.offset,
				"brute-force recovery: could not parse object %d %d obj: %v", cand.objNum, cand.genNum, perr)
			continue
		}

		switch v := obj.(type) {
		case *PdfObjectStream:
			if name, ok := GetNameVal(v.PdfObjectDictionary.Get("Type")); ok && name == "ObjStm" {
				n := parser.indexObjectStreamDuringRecovery(v, &xrefTable)
				if n > 0 {
					stats.ObjectStreamsIndexed++
				}
			}
		case *PdfIndirectObject:
			if d, ok := GetDict(v.PdfObject); ok {
				if tname, ok := GetNameVal(d.Get("Type")); ok {
					if tname == "Catalog" && rootObjNum == -1 {
						rootObjNum = cand.objNum
					} else if tname == "Pages" && pagesObjNum == -1 {
						pagesObjNum = cand.objNum
					}
				}
			}
		}
	}

	root := rootObjNum
	if root == -1 {
		root = pagesObjNum
		if root != -1 {
			parser.addWarning(ErrStructuralCorruption, 0,
				"brute-force recovery: no /Type /Catalog found, falling back to /Type /Pages object %d", root)
		}
	}
	stats.RootFound = root != -1

	trailer := MakeDict()
	if root != -1 {
		trailer.Set("Root", &PdfObjectReference{parser: parser, ObjectNumber: int64(root), GenerationNumber: 0})
	} else {
		parser.addWarning(ErrStructuralCorruption, 0, "brute-force recovery: no document root could be located")
	}
	trailer.Set("Size", MakeInteger(int64(maxObjNum+1)))
	parser.trailer = trailer
	parser.LastRecovery = stats

	return &xrefTable, nil
}

// parseCandidateObject fully parses the object at a recovered marker
// offset, isolated from the scanning reader's position.
func (parser *PdfParser) parseCandidateObject(cand recoveredObject) (PdfObject, error) {
	_, err := parser.rs.Seek(cand.offset, os.SEEK_SET)
	if err != nil {
		return nil, err
	}
	parser.reader = bufio.NewReader(parser.rs)
	return parser.ParseIndirectObject()
}

// indexObjectStreamDuringRecovery decodes an ObjStm discovered during
// brute-force recovery and adds XrefTypeObjectStream entries for every
// object it contains, so that top-level recovery also recovers objects
// that were only ever packed into a compressed stream.
func (parser *PdfParser) indexObjectStreamDuringRecovery(stream *PdfObjectStream, xrefTable *XrefTable) int {
	sobjNum := int(stream.ObjectNumber)

	nObj, ok := GetIntVal(stream.PdfObjectDictionary.Get("N"))
	if !ok {
		return 0
	}

	decoded, err := DecodeStream(stream)
	if err != nil {
		parser.addWarning(ErrStructuralCorruption, 0,
			"brute-force recovery: could not decode object stream %d: %v", sobjNum, err)
		return 0
	}

	hdrParser := PdfParser{rs: parser.rs, reader: bufio.NewReader(bytes.NewReader(decoded))}
	indexed := 0
	for i := 0; i < nObj; i++ {
		onum, err := hdrParser.parseNumber()
		if err != nil {
			break
		}
		_, err = hdrParser.parseNumber()
		if err != nil {
			break
		}
		objNum, ok := GetIntVal(onum)
		if !ok {
			continue
		}

		entry := XrefObject{
			XType:        XrefTypeObjectStream,
			ObjectNumber: int(objNum),
			OsObjNumber:  sobjNum,
			OsObjIndex:   i,
		}
		if _, has := xrefTable.ObjectMap[int(objNum)]; !has {
			xrefTable.ObjectMap[int(objNum)] = entry
			indexed++
		}
	}
	return indexed
}

// Look for first sign of xref table from end of file.
func (parser *PdfParser) repairSeekXrefMarker() error {
	// Get the file size.
	fSize, err := parser.rs.Seek(0, os.SEEK_END)
	if err != nil {
		return err
	}

	reXrefTableStart := regexp.MustCompile(`\sxref\s*`)

	// Define the starting point (from the end of the file) to search from.
	var offset int64

	// Define an buffer length in terms of how many bytes to read from the end of the file.
	var buflen int64 = 1000

	for offset < fSize {
		if fSize <= (buflen + offset) {
			buflen = fSize - offset
		}

		// Move back enough (as we need to read forward).
		_, err := parser.rs.Seek(-offset-buflen, os.SEEK_END)
		if err != nil {
			return err
		}

		// Read the data.
		b1 := make([]byte, buflen)
		parser.rs.Read(b1)

		common.Log.Trace("Looking for xref : \"%s\"", string(b1))
		ind := reXrefTableStart.FindAllStringIndex(string(b1), -1)
		if ind != nil {
			// Found it.
			lastInd := ind[len(ind)-1]
			common.Log.Trace("Ind: % d", ind)
			parser.rs.Seek(-offset-buflen+int64(lastInd[0]), os.SEEK_END)
			parser.reader = bufio.NewReader(parser.rs)
			// Go past whitespace, finish at 'x'.
			for {
				bb, err := parser.reader.Peek(1)
				if err != nil {
					return err
				}
				common.Log.Trace("B: %d %c", bb[0], bb[0])
				if !IsWhiteSpace(bb[0]) {
					break
				}
				parser.reader.Discard(1)
			}

			return nil
		}

		common.Log.Debug("Warning: EOF marker not found! - continue seeking")
		offset += buflen
	}

	common.Log.Debug("Error: Xref table marker was not found.")
	return errors.New("xref not found ")
}

// Called when Pdf version not found normally.  Looks for the PDF version by scanning top-down.
// %PDF-1.7
func (parser *PdfParser) seekPdfVersionTopDown() (int, int, error) {
	// Go to beginning, reset reader.
	parser.rs.Seek(0, os.SEEK_SET)
	parser.reader = bufio.NewReader(parser.rs)

	// Keep a running buffer of last bytes.
	bufLen := 20
	last := make([]byte, bufLen)

	for {
		b, err := parser.reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			} else {
				return 0, 0, err
			}
		}

		// Format:
		// object number - whitespace - generation number - obj
		// e.g. "12 0 obj"
		if IsDecimalDigit(b) && last[bufLen-1] == '.' && IsDecimalDigit(last[bufLen-2]) && last[bufLen-3] == '-' &&
			last[bufLen-4] == 'F' && last[bufLen-5] == 'D' && last[bufLen-6] == 'P' {
			major := int(last[bufLen-2] - '0')
			minor := int(b - '0')
			return major, minor, nil
		}

		last = append(last[1:bufLen], b)
	}

	return 0, 0, errors.New("version not found")
}
