/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

// Stream filters. The object model treats filters as pluggable codecs
// keyed by name; only the codecs needed to decode xref streams, object
// streams and the handful of text-safe wrappers that wrap them are
// implemented here. Image-targeted codecs (DCT, CCITT, JBIG2, JPX) are
// outside this package's concerns and are never registered.

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/inkpath/pdfcore/common"
)

// Filter names as they appear in the /Filter entry of a stream dictionary.
const (
	StreamEncodingFilterNameFlate     = "FlateDecode"
	StreamEncodingFilterNameLZW       = "LZWDecode"
	StreamEncodingFilterNameDCT       = "DCTDecode"
	StreamEncodingFilterNameRunLength = "RunLengthDecode"
	StreamEncodingFilterNameASCIIHex  = "ASCIIHexDecode"
	StreamEncodingFilterNameASCII85   = "ASCII85Decode"
	StreamEncodingFilterNameCCITTFax  = "CCITTFaxDecode"
	StreamEncodingFilterNameJBIG2     = "JBIG2Decode"
	StreamEncodingFilterNameJPX       = "JPXDecode"
	StreamEncodingFilterNameRaw       = "Raw"
)

// StreamEncoder is a pluggable stream filter: something that can turn
// encoded stream bytes back into raw bytes (and, for filters the writer
// side produces, the reverse).
type StreamEncoder interface {
	GetFilterName() string
	MakeDecodeParams() PdfObject
	MakeStreamDict() *PdfObjectDictionary
	UpdateParams(params *PdfObjectDictionary)

	EncodeBytes(data []byte) ([]byte, error)
	DecodeBytes(encoded []byte) ([]byte, error)
	DecodeStream(streamObj *PdfObjectStream) ([]byte, error)
}

// predictor tags used by the /Predictor decode parameter.
const (
	predictorNone = 1
	predictorTIFF = 2
	predictorPNGLo = 10
	predictorPNGHi = 15
)

// PNG row filter tags (the byte prefixing each predicted row).
const (
	pfNone  = 0
	pfSub   = 1
	pfUp    = 2
	pfAvg   = 3
	pfPaeth = 4
)

// FlateEncoder implements the FlateDecode filter plus the TIFF/PNG
// predictors commonly layered on top of it for xref and object streams.
type FlateEncoder struct {
	Predictor        int
	BitsPerComponent int
	Columns          int
	Colors           int
}

// NewFlateEncoder returns a FlateEncoder with predictor disabled and 8 bits
// per component, the common case for xref/object streams.
func NewFlateEncoder() *FlateEncoder {
	return &FlateEncoder{
		Predictor:        predictorNone,
		BitsPerComponent: 8,
		Colors:           1,
		Columns:          1,
	}
}

// SetPredictor switches the encoder to the PNG Sub predictor with the given
// row width, in samples.
func (enc *FlateEncoder) SetPredictor(columns int) {
	enc.Predictor = 11
	enc.Columns = columns
}

// GetFilterName implements StreamEncoder.
func (enc *FlateEncoder) GetFilterName() string {
	return StreamEncodingFilterNameFlate
}

// MakeDecodeParams implements StreamEncoder.
func (enc *FlateEncoder) MakeDecodeParams() PdfObject {
	if enc.Predictor <= 1 {
		return nil
	}
	params := MakeDict()
	params.Set("Predictor", MakeInteger(int64(enc.Predictor)))
	if enc.BitsPerComponent != 8 {
		params.Set("BitsPerComponent", MakeInteger(int64(enc.BitsPerComponent)))
	}
	if enc.Columns != 1 {
		params.Set("Columns", MakeInteger(int64(enc.Columns)))
	}
	if enc.Colors != 1 {
		params.Set("Colors", MakeInteger(int64(enc.Colors)))
	}
	return params
}

// MakeStreamDict implements StreamEncoder.
func (enc *FlateEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	if params := enc.MakeDecodeParams(); params != nil {
		dict.Set("DecodeParms", params)
	}
	return dict
}

// UpdateParams implements StreamEncoder.
func (enc *FlateEncoder) UpdateParams(params *PdfObjectDictionary) {
	if v, err := GetNumberAsInt64(params.Get("Predictor")); err == nil {
		enc.Predictor = int(v)
	}
	if v, err := GetNumberAsInt64(params.Get("BitsPerComponent")); err == nil {
		enc.BitsPerComponent = int(v)
	}
	if v, err := GetNumberAsInt64(params.Get("Width")); err == nil {
		enc.Columns = int(v)
	}
	if v, err := GetNumberAsInt64(params.Get("ColorComponents")); err == nil {
		enc.Colors = int(v)
	}
}

// newFlateEncoderFromStream builds a FlateEncoder from a stream's
// dictionary, reading Predictor/BitsPerComponent/Columns/Colors out of
// DecodeParms (passed explicitly when part of a filter chain).
func newFlateEncoderFromStream(streamObj *PdfObjectStream, decodeParams *PdfObjectDictionary) (*FlateEncoder, error) {
	enc := NewFlateEncoder()

	encDict := streamObj.PdfObjectDictionary
	if encDict == nil {
		return enc, nil
	}

	if decodeParams == nil {
		obj := TraceToDirectObject(encDict.Get("DecodeParms"))
		switch t := obj.(type) {
		case *PdfObjectArray:
			if t.Len() != 1 {
				return nil, errors.New("range check error")
			}
			obj = TraceToDirectObject(t.Get(0))
			if dp, ok := obj.(*PdfObjectDictionary); ok {
				decodeParams = dp
			}
		case *PdfObjectDictionary:
			decodeParams = t
		case *PdfObjectNull, nil:
		default:
			return nil, fmt.Errorf("invalid DecodeParms (%T)", obj)
		}
	}
	if decodeParams == nil {
		return enc, nil
	}

	if obj := decodeParams.Get("Predictor"); obj != nil {
		predictor, ok := obj.(*PdfObjectInteger)
		if !ok {
			return nil, fmt.Errorf("invalid Predictor")
		}
		enc.Predictor = int(*predictor)
	}
	if obj := decodeParams.Get("BitsPerComponent"); obj != nil {
		bpc, ok := obj.(*PdfObjectInteger)
		if !ok {
			return nil, fmt.Errorf("invalid BitsPerComponent")
		}
		enc.BitsPerComponent = int(*bpc)
	}
	if enc.Predictor > 1 {
		enc.Columns = 1
		if obj := decodeParams.Get("Columns"); obj != nil {
			columns, ok := obj.(*PdfObjectInteger)
			if !ok {
				return nil, fmt.Errorf("predictor column invalid")
			}
			enc.Columns = int(*columns)
		}
		enc.Colors = 1
		if obj := decodeParams.Get("Colors"); obj != nil {
			colors, ok := obj.(*PdfObjectInteger)
			if !ok {
				return nil, fmt.Errorf("predictor colors not an integer")
			}
			enc.Colors = int(*colors)
		}
	}

	return enc, nil
}

// DecodeBytes inflates a zlib-wrapped Flate payload.
func (enc *FlateEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	if len(encoded) == 0 {
		return []byte{}, nil
	}
	r, err := zlib.NewReader(bytes.NewReader(encoded))
	if err != nil {
		common.Log.Debug("flate decode error: %v", err)
		return nil, err
	}
	defer r.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// postDecodePredict reverses the TIFF or PNG predictor applied on top of the
// inflated data, per the /Predictor, /Columns and /Colors decode params.
func (enc *FlateEncoder) postDecodePredict(data []byte) ([]byte, error) {
	if enc.Predictor <= 1 {
		return data, nil
	}
	if enc.Predictor == predictorTIFF {
		return undoTIFFPredictor(data, enc.Columns, enc.Colors)
	}
	if enc.Predictor >= predictorPNGLo && enc.Predictor <= predictorPNGHi {
		return undoPNGPredictor(data, enc.Columns, enc.Colors)
	}
	return nil, fmt.Errorf("unsupported predictor (%d)", enc.Predictor)
}

func undoTIFFPredictor(data []byte, columns, colors int) ([]byte, error) {
	rowLength := columns * colors
	if rowLength < 1 {
		return []byte{}, nil
	}
	if len(data)%rowLength != 0 {
		return nil, fmt.Errorf("invalid row length (%d/%d)", len(data), rowLength)
	}
	rows := len(data) / rowLength
	var out bytes.Buffer
	for i := 0; i < rows; i++ {
		row := data[rowLength*i : rowLength*(i+1)]
		for j := colors; j < rowLength; j++ {
			row[j] += row[j-colors]
		}
		out.Write(row)
	}
	return out.Bytes(), nil
}

func undoPNGPredictor(data []byte, columns, colors int) ([]byte, error) {
	rowLength := columns*colors + 1 // +1 for the leading filter-tag byte.
	if rowLength > len(data) {
		return nil, errors.New("range check error")
	}
	if len(data)%rowLength != 0 {
		return nil, fmt.Errorf("invalid row length (%d/%d)", len(data), rowLength)
	}
	rows := len(data) / rowLength
	bytesPerPixel := colors

	var out bytes.Buffer
	prevRow := make([]byte, rowLength)
	for i := 0; i < rows; i++ {
		row := data[rowLength*i : rowLength*(i+1)]
		switch tag := row[0]; tag {
		case pfNone:
		case pfSub:
			for j := 1 + bytesPerPixel; j < rowLength; j++ {
				row[j] += row[j-bytesPerPixel]
			}
		case pfUp:
			for j := 1; j < rowLength; j++ {
				row[j] += prevRow[j]
			}
		case pfAvg:
			for j := 1; j < bytesPerPixel+1; j++ {
				row[j] += prevRow[j] / 2
			}
			for j := bytesPerPixel + 1; j < rowLength; j++ {
				row[j] += byte((int(row[j-bytesPerPixel]) + int(prevRow[j])) / 2)
			}
		case pfPaeth:
			for j := 1; j < rowLength; j++ {
				var a, b, c byte
				b = prevRow[j]
				if j >= bytesPerPixel+1 {
					a = row[j-bytesPerPixel]
					c = prevRow[j-bytesPerPixel]
				}
				row[j] += paeth(a, b, c)
			}
		default:
			return nil, fmt.Errorf("invalid filter byte (%d) @row %d", tag, i)
		}
		copy(prevRow, row)
		out.Write(row[1:])
	}
	return out.Bytes(), nil
}

// DecodeStream implements StreamEncoder.
func (enc *FlateEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	if enc.BitsPerComponent != 8 {
		return nil, fmt.Errorf("invalid BitsPerComponent=%d (only 8 supported)", enc.BitsPerComponent)
	}
	data, err := enc.DecodeBytes(streamObj.Stream)
	if err != nil {
		return nil, err
	}
	return enc.postDecodePredict(data)
}

// EncodeBytes implements StreamEncoder. Only predictors 1 (none) and 11
// (PNG Sub) are supported on the write path.
func (enc *FlateEncoder) EncodeBytes(data []byte) ([]byte, error) {
	if enc.Predictor != 1 && enc.Predictor != 11 {
		return nil, ErrUnsupportedEncodingParameters
	}
	if enc.Predictor == 11 {
		rowLength := enc.Columns
		if rowLength == 0 || len(data)%rowLength != 0 {
			return nil, errors.New("invalid row length")
		}
		var buf bytes.Buffer
		rows := len(data) / rowLength
		tmp := make([]byte, rowLength)
		for i := 0; i < rows; i++ {
			row := data[rowLength*i : rowLength*(i+1)]
			tmp[0] = row[0]
			for j := 1; j < rowLength; j++ {
				tmp[j] = byte(int(row[j]-row[j-1]) % 256)
			}
			buf.WriteByte(pfSub)
			buf.Write(tmp)
		}
		data = buf.Bytes()
	}

	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	w.Write(data)
	w.Close()
	return b.Bytes(), nil
}

// RawEncoder is the identity filter: used when a stream has no /Filter
// entry, or as a no-op placeholder for a filter the caller chose not to
// apply.
type RawEncoder struct{}

// NewRawEncoder returns a new RawEncoder.
func NewRawEncoder() *RawEncoder { return &RawEncoder{} }

// GetFilterName implements StreamEncoder.
func (enc *RawEncoder) GetFilterName() string { return StreamEncodingFilterNameRaw }

// MakeDecodeParams implements StreamEncoder.
func (enc *RawEncoder) MakeDecodeParams() PdfObject { return nil }

// MakeStreamDict implements StreamEncoder.
func (enc *RawEncoder) MakeStreamDict() *PdfObjectDictionary { return MakeDict() }

// UpdateParams implements StreamEncoder.
func (enc *RawEncoder) UpdateParams(params *PdfObjectDictionary) {}

// DecodeBytes implements StreamEncoder.
func (enc *RawEncoder) DecodeBytes(encoded []byte) ([]byte, error) { return encoded, nil }

// DecodeStream implements StreamEncoder.
func (enc *RawEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return streamObj.Stream, nil
}

// EncodeBytes implements StreamEncoder.
func (enc *RawEncoder) EncodeBytes(data []byte) ([]byte, error) { return data, nil }

// RunLengthEncoder implements the RunLengthDecode filter (PDF 32000-1
// §7.4.5): runs of 1-128 literal bytes prefixed by a length byte in
// [0,127], or a single repeated byte prefixed by a length byte in
// [129,255]; 128 marks end of data.
type RunLengthEncoder struct{}

// NewRunLengthEncoder returns a new RunLengthEncoder.
func NewRunLengthEncoder() *RunLengthEncoder { return &RunLengthEncoder{} }

// GetFilterName implements StreamEncoder.
func (enc *RunLengthEncoder) GetFilterName() string { return StreamEncodingFilterNameRunLength }

// MakeDecodeParams implements StreamEncoder.
func (enc *RunLengthEncoder) MakeDecodeParams() PdfObject { return nil }

// MakeStreamDict implements StreamEncoder.
func (enc *RunLengthEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// UpdateParams implements StreamEncoder.
func (enc *RunLengthEncoder) UpdateParams(params *PdfObjectDictionary) {}

// DecodeBytes implements StreamEncoder.
func (enc *RunLengthEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	r := bytes.NewReader(encoded)
	var out []byte
	for {
		length, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		switch {
		case length == 128:
			return out, nil
		case length < 128:
			for i := 0; i < int(length)+1; i++ {
				b, err := r.ReadByte()
				if err != nil {
					return nil, err
				}
				out = append(out, b)
			}
		default:
			b, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			for i := 0; i < 257-int(length); i++ {
				out = append(out, b)
			}
		}
	}
}

// DecodeStream implements StreamEncoder.
func (enc *RunLengthEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return enc.DecodeBytes(streamObj.Stream)
}

// EncodeBytes implements StreamEncoder.
func (enc *RunLengthEncoder) EncodeBytes(data []byte) ([]byte, error) {
	r := bytes.NewReader(data)
	var out, literal []byte

	b0, err := r.ReadByte()
	if err == io.EOF {
		out = append(out, 128)
		return out, nil
	} else if err != nil {
		return nil, err
	}
	runLen := 1

	flushLiteral := func() {
		if len(literal) > 0 {
			out = append(out, byte(len(literal)-1))
			out = append(out, literal...)
			literal = nil
		}
	}

	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if b == b0 {
			if len(literal) > 0 {
				literal = literal[:len(literal)-1]
				flushLiteral()
				runLen = 1
			}
			runLen++
			if runLen >= 127 {
				out = append(out, byte(257-runLen), b0)
				runLen = 0
			}
		} else {
			if runLen > 0 {
				if runLen == 1 {
					literal = []byte{b0}
				} else {
					out = append(out, byte(257-runLen), b0)
				}
				runLen = 0
			}
			literal = append(literal, b)
			if len(literal) >= 127 {
				flushLiteral()
			}
		}
		b0 = b
	}

	if len(literal) > 0 {
		flushLiteral()
	} else if runLen > 0 {
		out = append(out, byte(257-runLen), b0)
	}
	out = append(out, 128)
	return out, nil
}

// ASCIIHexEncoder implements the ASCIIHexDecode filter: pairs of hex digits
// terminated by '>'.
type ASCIIHexEncoder struct{}

// NewASCIIHexEncoder returns a new ASCIIHexEncoder.
func NewASCIIHexEncoder() *ASCIIHexEncoder { return &ASCIIHexEncoder{} }

// GetFilterName implements StreamEncoder.
func (enc *ASCIIHexEncoder) GetFilterName() string { return StreamEncodingFilterNameASCIIHex }

// MakeDecodeParams implements StreamEncoder.
func (enc *ASCIIHexEncoder) MakeDecodeParams() PdfObject { return nil }

// MakeStreamDict implements StreamEncoder.
func (enc *ASCIIHexEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// UpdateParams implements StreamEncoder.
func (enc *ASCIIHexEncoder) UpdateParams(params *PdfObjectDictionary) {}

// DecodeBytes implements StreamEncoder.
func (enc *ASCIIHexEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	r := bytes.NewReader(encoded)
	var digits []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == '>' {
			break
		}
		if IsWhiteSpace(b) {
			continue
		}
		if (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || (b >= '0' && b <= '9') {
			digits = append(digits, b)
		} else {
			return nil, fmt.Errorf("invalid ascii hex character (%c)", b)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, hex.DecodedLen(len(digits)))
	if _, err := hex.Decode(out, digits); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeStream implements StreamEncoder.
func (enc *ASCIIHexEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return enc.DecodeBytes(streamObj.Stream)
}

// EncodeBytes implements StreamEncoder.
func (enc *ASCIIHexEncoder) EncodeBytes(data []byte) ([]byte, error) {
	var out bytes.Buffer
	for _, b := range data {
		fmt.Fprintf(&out, "%.2X ", b)
	}
	out.WriteByte('>')
	return out.Bytes(), nil
}

// ASCII85Encoder implements the ASCII85Decode filter: groups of 5 base-85
// digits decode to 4 raw bytes, with 'z' as a shorthand for an all-zero
// group and "~>" marking end of data.
type ASCII85Encoder struct{}

// NewASCII85Encoder returns a new ASCII85Encoder.
func NewASCII85Encoder() *ASCII85Encoder { return &ASCII85Encoder{} }

// GetFilterName implements StreamEncoder.
func (enc *ASCII85Encoder) GetFilterName() string { return StreamEncodingFilterNameASCII85 }

// MakeDecodeParams implements StreamEncoder.
func (enc *ASCII85Encoder) MakeDecodeParams() PdfObject { return nil }

// MakeStreamDict implements StreamEncoder.
func (enc *ASCII85Encoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", MakeName(enc.GetFilterName()))
	return dict
}

// UpdateParams implements StreamEncoder.
func (enc *ASCII85Encoder) UpdateParams(params *PdfObjectDictionary) {}

// DecodeBytes implements StreamEncoder.
func (enc *ASCII85Encoder) DecodeBytes(encoded []byte) ([]byte, error) {
	var decoded []byte
	i := 0
	for i < len(encoded) {
		var codes [5]byte
		spaces := 0
		j := 0
		toWrite := 4
		eod := false
		for j < 5+spaces {
			if i+j == len(encoded) {
				break
			}
			code := encoded[i+j]
			switch {
			case IsWhiteSpace(code):
				spaces++
				j++
				continue
			case code == '~' && i+j+1 < len(encoded) && encoded[i+j+1] == '>':
				toWrite = (j - spaces) - 1
				if toWrite < 0 {
					toWrite = 0
				}
				eod = true
			case code == 'z' && j-spaces == 0:
				toWrite = 4
				j++
			case code >= '!' && code <= 'u':
				codes[j-spaces] = code - '!'
				j++
				continue
			default:
				return nil, errors.New("invalid code encountered")
			}
			break
		}
		i += j
		if eod {
			for m := toWrite + 1; m < 5; m++ {
				codes[m] = 84
			}
		} else {
			for m := j - spaces; m < 5; m++ {
				codes[m] = 84
			}
		}

		value := uint32(codes[0])*85*85*85*85 + uint32(codes[1])*85*85*85 +
			uint32(codes[2])*85*85 + uint32(codes[3])*85 + uint32(codes[4])
		word := []byte{byte(value >> 24), byte(value >> 16), byte(value >> 8), byte(value)}
		decoded = append(decoded, word[:toWrite]...)

		if eod {
			break
		}
	}
	return decoded, nil
}

// DecodeStream implements StreamEncoder.
func (enc *ASCII85Encoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return enc.DecodeBytes(streamObj.Stream)
}

// EncodeBytes implements StreamEncoder.
func (enc *ASCII85Encoder) EncodeBytes(data []byte) ([]byte, error) {
	var out bytes.Buffer
	for i := 0; i < len(data); i += 4 {
		var group [4]byte
		n := 0
		for n < 4 && i+n < len(data) {
			group[n] = data[i+n]
			n++
		}
		base256 := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])
		if base256 == 0 && n == 4 {
			out.WriteByte('z')
			continue
		}
		var codes [5]byte
		remainder := base256
		for k := 0; k < 5; k++ {
			divider := uint32(1)
			for m := 0; m < 4-k; m++ {
				divider *= 85
			}
			codes[k] = byte(remainder / divider)
			remainder %= divider
		}
		for _, c := range codes[:n+1] {
			out.WriteByte(c + '!')
		}
	}
	out.WriteString("~>")
	return out.Bytes(), nil
}

// MultiEncoder chains several StreamEncoders, applying them in forward order
// to decode and reverse order to encode (PDF's /Filter array semantics).
type MultiEncoder struct {
	encoders []StreamEncoder
}

// NewMultiEncoder returns an empty MultiEncoder.
func NewMultiEncoder() *MultiEncoder {
	return &MultiEncoder{}
}

// newMultiEncoderFromStream builds a MultiEncoder from a stream dictionary
// whose /Filter entry is an array. DCT/CCITT/JBIG2/JPX are not valid
// members of a chain here: those codecs are outside this package.
func newMultiEncoderFromStream(streamObj *PdfObjectStream) (*MultiEncoder, error) {
	mencoder := NewMultiEncoder()

	encDict := streamObj.PdfObjectDictionary
	if encDict == nil {
		return mencoder, nil
	}

	var decodeParamsDict *PdfObjectDictionary
	var decodeParamsArray []PdfObject
	if obj := encDict.Get("DecodeParms"); obj != nil {
		if dict, ok := obj.(*PdfObjectDictionary); ok {
			decodeParamsDict = dict
		}
		if arr, ok := obj.(*PdfObjectArray); ok {
			for _, elObj := range arr.Elements() {
				elObj = TraceToDirectObject(elObj)
				if dict, ok := elObj.(*PdfObjectDictionary); ok {
					decodeParamsArray = append(decodeParamsArray, dict)
				} else {
					decodeParamsArray = append(decodeParamsArray, MakeDict())
				}
			}
		}
	}

	obj := encDict.Get("Filter")
	if obj == nil {
		return nil, fmt.Errorf("filter missing")
	}
	array, ok := obj.(*PdfObjectArray)
	if !ok {
		return nil, fmt.Errorf("multi filter can only be made from array")
	}

	for idx, nameObj := range array.Elements() {
		name, ok := nameObj.(*PdfObjectName)
		if !ok {
			return nil, fmt.Errorf("multi filter array element not a name")
		}

		var dp PdfObject
		if decodeParamsDict != nil {
			dp = decodeParamsDict
		} else if len(decodeParamsArray) > 0 {
			if idx >= len(decodeParamsArray) {
				return nil, fmt.Errorf("missing elements in decode params array")
			}
			dp = decodeParamsArray[idx]
		}
		var dParams *PdfObjectDictionary
		if dict, ok := dp.(*PdfObjectDictionary); ok {
			dParams = dict
		}

		switch *name {
		case StreamEncodingFilterNameFlate:
			encoder, err := newFlateEncoderFromStream(streamObj, dParams)
			if err != nil {
				return nil, err
			}
			mencoder.AddEncoder(encoder)
		case StreamEncodingFilterNameASCIIHex:
			mencoder.AddEncoder(NewASCIIHexEncoder())
		case StreamEncodingFilterNameASCII85:
			mencoder.AddEncoder(NewASCII85Encoder())
		case StreamEncodingFilterNameRunLength:
			mencoder.AddEncoder(NewRunLengthEncoder())
		default:
			common.Log.Debug("filter %s not handled by the pluggable core, treating as opaque", *name)
			return nil, fmt.Errorf("unsupported filter in multi filter array: %s", *name)
		}
	}

	return mencoder, nil
}

// GetFilterName implements StreamEncoder.
func (enc *MultiEncoder) GetFilterName() string {
	names := make([]string, len(enc.encoders))
	for i, e := range enc.encoders {
		names[i] = e.GetFilterName()
	}
	name := ""
	for i, n := range names {
		name += n
		if i < len(names)-1 {
			name += " "
		}
	}
	return name
}

// GetFilterArray returns the filter names as a /Filter array value.
func (enc *MultiEncoder) GetFilterArray() *PdfObjectArray {
	names := make([]PdfObject, len(enc.encoders))
	for i, e := range enc.encoders {
		names[i] = MakeName(e.GetFilterName())
	}
	return MakeArray(names...)
}

// MakeDecodeParams implements StreamEncoder.
func (enc *MultiEncoder) MakeDecodeParams() PdfObject {
	if len(enc.encoders) == 0 {
		return nil
	}
	if len(enc.encoders) == 1 {
		return enc.encoders[0].MakeDecodeParams()
	}
	array := MakeArray()
	for _, e := range enc.encoders {
		if params := e.MakeDecodeParams(); params != nil {
			array.Append(params)
		} else {
			array.Append(MakeNull())
		}
	}
	return array
}

// AddEncoder appends an encoder to the chain.
func (enc *MultiEncoder) AddEncoder(encoder StreamEncoder) {
	enc.encoders = append(enc.encoders, encoder)
}

// MakeStreamDict implements StreamEncoder.
func (enc *MultiEncoder) MakeStreamDict() *PdfObjectDictionary {
	dict := MakeDict()
	dict.Set("Filter", enc.GetFilterArray())
	for _, e := range enc.encoders {
		for _, key := range e.MakeStreamDict().Keys() {
			if key != "Filter" && key != "DecodeParms" {
				dict.Set(key, e.MakeStreamDict().Get(key))
			}
		}
	}
	if params := enc.MakeDecodeParams(); params != nil {
		dict.Set("DecodeParms", params)
	}
	return dict
}

// UpdateParams implements StreamEncoder.
func (enc *MultiEncoder) UpdateParams(params *PdfObjectDictionary) {
	for _, e := range enc.encoders {
		e.UpdateParams(params)
	}
}

// DecodeBytes implements StreamEncoder, applying the chain in forward order.
func (enc *MultiEncoder) DecodeBytes(encoded []byte) ([]byte, error) {
	decoded := encoded
	for _, e := range enc.encoders {
		var err error
		decoded, err = e.DecodeBytes(decoded)
		if err != nil {
			return nil, err
		}
	}
	return decoded, nil
}

// DecodeStream implements StreamEncoder.
func (enc *MultiEncoder) DecodeStream(streamObj *PdfObjectStream) ([]byte, error) {
	return enc.DecodeBytes(streamObj.Stream)
}

// EncodeBytes implements StreamEncoder, applying the chain in reverse order.
func (enc *MultiEncoder) EncodeBytes(data []byte) ([]byte, error) {
	encoded := data
	for i := len(enc.encoders) - 1; i >= 0; i-- {
		var err error
		encoded, err = enc.encoders[i].EncodeBytes(encoded)
		if err != nil {
			return nil, err
		}
	}
	return encoded, nil
}
