/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inkpath/pdfcore/common"
	"github.com/inkpath/pdfcore/internal/strutils"
)

// PdfObject is the interface every node of the object graph satisfies:
// booleans, numbers, strings, names, arrays, dictionaries, streams,
// references and indirect objects.
type PdfObject interface {
	// String renders a debug-friendly representation.
	String() string
	// WriteString renders the object the way the file format expects it.
	WriteString() string
}

// PdfObjectBool is a PDF boolean.
type PdfObjectBool bool

// PdfObjectInteger is a PDF integer.
type PdfObjectInteger int64

// PdfObjectFloat is a PDF real number.
type PdfObjectFloat float64

// PdfObjectString is a PDF literal or hex string.
type PdfObjectString struct {
	val   string
	isHex bool
}

// PdfObjectName is a PDF name (the bare word after a leading '/').
type PdfObjectName string

// PdfObjectArray is a PDF array.
type PdfObjectArray struct {
	vec []PdfObject
}

// PdfObjectDictionary is a PDF dictionary. Keys preserve insertion order so
// that round-tripped files keep a stable byte layout.
type PdfObjectDictionary struct {
	dict map[PdfObjectName]PdfObject
	keys []PdfObjectName

	// parser lets entries added during lazy object resolution look up
	// the owning document's cross-reference table.
	parser *PdfParser
}

// PdfObjectNull is the PDF null object.
type PdfObjectNull struct{}

// PdfObjectReference is an unresolved "N G R" reference to an indirect
// object.
type PdfObjectReference struct {
	parser           *PdfParser
	ObjectNumber     int64
	GenerationNumber int64
}

// PdfIndirectObject is a resolved indirect object: its own reference plus
// the direct object it contains.
type PdfIndirectObject struct {
	PdfObjectReference
	PdfObject
}

// PdfObjectStream is an indirect object whose value is a byte stream rather
// than a direct object.
type PdfObjectStream struct {
	PdfObjectReference
	*PdfObjectDictionary
	Stream []byte
}

// PdfObjectStreams is a compressed object stream's decoded member list (PDF
// 32000-1 §7.5.7).
type PdfObjectStreams struct {
	PdfObjectReference
	vec []PdfObject
}

// MakeDict returns an empty PdfObjectDictionary.
func MakeDict() *PdfObjectDictionary {
	return &PdfObjectDictionary{
		dict: map[PdfObjectName]PdfObject{},
		keys: []PdfObjectName{},
	}
}

// MakeName wraps a string as a PdfObjectName.
func MakeName(s string) *PdfObjectName {
	name := PdfObjectName(s)
	return &name
}

// MakeInteger wraps an int64 as a PdfObjectInteger.
func MakeInteger(val int64) *PdfObjectInteger {
	num := PdfObjectInteger(val)
	return &num
}

// MakeBool wraps a bool as a PdfObjectBool.
func MakeBool(val bool) *PdfObjectBool {
	bval := PdfObjectBool(val)
	return &bval
}

// MakeArray builds a PdfObjectArray from its elements.
func MakeArray(objects ...PdfObject) *PdfObjectArray {
	return &PdfObjectArray{vec: append([]PdfObject{}, objects...)}
}

// MakeArrayFromIntegers builds a PdfObjectArray of PdfObjectIntegers.
func MakeArrayFromIntegers(vals []int) *PdfObjectArray {
	array := MakeArray()
	for _, val := range vals {
		array.Append(MakeInteger(int64(val)))
	}
	return array
}

// MakeArrayFromIntegers64 builds a PdfObjectArray of PdfObjectIntegers from int64s.
func MakeArrayFromIntegers64(vals []int64) *PdfObjectArray {
	array := MakeArray()
	for _, val := range vals {
		array.Append(MakeInteger(val))
	}
	return array
}

// MakeArrayFromFloats builds a PdfObjectArray of PdfObjectFloats.
func MakeArrayFromFloats(vals []float64) *PdfObjectArray {
	array := MakeArray()
	for _, val := range vals {
		array.Append(MakeFloat(val))
	}
	return array
}

// MakeFloat wraps a float64 as a PdfObjectFloat.
func MakeFloat(val float64) *PdfObjectFloat {
	num := PdfObjectFloat(val)
	return &num
}

// MakeString wraps a raw (commonly non-UTF-8) string as a literal PdfObjectString.
func MakeString(s string) *PdfObjectString {
	return &PdfObjectString{val: s}
}

// MakeStringFromBytes wraps a byte slice as a literal PdfObjectString.
func MakeStringFromBytes(data []byte) *PdfObjectString {
	return MakeString(string(data))
}

// MakeHexString wraps a string as a hex-formatted PdfObjectString.
func MakeHexString(s string) *PdfObjectString {
	return &PdfObjectString{val: s, isHex: true}
}

// MakeEncodedString builds a PdfObjectString encoded as UTF-16BE (with BOM)
// or PDFDocEncoding, matching how text strings are stored in document info
// and annotation dictionaries.
func MakeEncodedString(s string, utf16BE bool) *PdfObjectString {
	if utf16BE {
		var buf bytes.Buffer
		buf.Write([]byte{0xFE, 0xFF})
		buf.WriteString(strutils.StringToUTF16(s))
		return &PdfObjectString{val: buf.String(), isHex: true}
	}
	return &PdfObjectString{val: string(strutils.StringToPDFDocEncoding(s))}
}

// MakeNull returns a PdfObjectNull.
func MakeNull() *PdfObjectNull {
	return &PdfObjectNull{}
}

// MakeIndirectObject wraps a direct object as a fresh, unnumbered indirect object.
func MakeIndirectObject(obj PdfObject) *PdfIndirectObject {
	return &PdfIndirectObject{PdfObject: obj}
}

// MakeStream encodes contents with encoder (or passes them through raw if
// encoder is nil) and wraps the result as a PdfObjectStream.
func MakeStream(contents []byte, encoder StreamEncoder) (*PdfObjectStream, error) {
	if encoder == nil {
		encoder = NewRawEncoder()
	}

	encoded, err := encoder.EncodeBytes(contents)
	if err != nil {
		return nil, err
	}

	stream := &PdfObjectStream{PdfObjectDictionary: encoder.MakeStreamDict(), Stream: encoded}
	stream.PdfObjectDictionary.Set("Length", MakeInteger(int64(len(encoded))))
	return stream, nil
}

// MakeObjectStreams builds a PdfObjectStreams from its members.
func MakeObjectStreams(objects ...PdfObject) *PdfObjectStreams {
	return &PdfObjectStreams{vec: append([]PdfObject{}, objects...)}
}

// GetParser returns the parser that can resolve this reference, or nil for
// a reference built without document context.
func (ref *PdfObjectReference) GetParser() *PdfParser {
	return ref.parser
}

// Resolve follows the reference through the owning parser's cache and
// cross-reference table. An unresolvable reference yields PdfObjectNull
// rather than nil, so callers can treat misses and explicit nulls alike.
func (ref *PdfObjectReference) Resolve() PdfObject {
	if ref.parser == nil {
		return MakeNull()
	}
	obj, _, err := ref.parser.resolveReference(ref)
	if err != nil {
		common.Log.Debug("error resolving reference: %v - returning null object", err)
		return MakeNull()
	}
	if obj == nil {
		common.Log.Debug("error resolving reference: nil object - returning a null object")
		return MakeNull()
	}
	return obj
}

func (b *PdfObjectBool) String() string {
	if *b {
		return "true"
	}
	return "false"
}

// WriteString implements PdfObject.
func (b *PdfObjectBool) WriteString() string { return b.String() }

func (n *PdfObjectInteger) String() string {
	return strconv.FormatInt(int64(*n), 10)
}

// WriteString implements PdfObject.
func (n *PdfObjectInteger) WriteString() string {
	return strconv.FormatInt(int64(*n), 10)
}

func (f *PdfObjectFloat) String() string {
	return fmt.Sprintf("%f", *f)
}

// WriteString implements PdfObject.
func (f *PdfObjectFloat) WriteString() string {
	return strconv.FormatFloat(float64(*f), 'f', -1, 64)
}

// String returns the raw string content.
func (str *PdfObjectString) String() string {
	return str.val
}

// Str is an alias of String kept distinct so call sites can make clear
// they want the raw bytes, not a debug rendering.
func (str *PdfObjectString) Str() string {
	return str.val
}

// Decoded applies UTF-16BE decoding when the content starts with a BOM,
// and PDFDocEncoding decoding otherwise.
func (str *PdfObjectString) Decoded() string {
	if str == nil {
		return ""
	}
	b := []byte(str.val)
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return strutils.UTF16ToString(b[2:])
	}
	return strutils.PDFDocEncodingToString(b)
}

// Bytes returns the raw content as a byte slice.
func (str *PdfObjectString) Bytes() []byte {
	return []byte(str.val)
}

var stringEscapes = map[byte]string{
	'\n': "\\n",
	'\r': "\\r",
	'\t': "\\t",
	'\b': "\\b",
	'\f': "\\f",
	'(':  "\\(",
	')':  "\\)",
	'\\': "\\\\",
}

// WriteString implements PdfObject.
func (str *PdfObjectString) WriteString() string {
	if str.isHex {
		return "<" + hex.EncodeToString(str.Bytes()) + ">"
	}

	var out bytes.Buffer
	out.WriteByte('(')
	for i := 0; i < len(str.val); i++ {
		c := str.val[i]
		if esc, ok := stringEscapes[c]; ok {
			out.WriteString(esc)
		} else {
			out.WriteByte(c)
		}
	}
	out.WriteByte(')')
	return out.String()
}

func (name *PdfObjectName) String() string {
	return string(*name)
}

// WriteString implements PdfObject, escaping delimiters and non-printable
// bytes as #xx per PDF 32000-1 §7.3.5.
func (name *PdfObjectName) WriteString() string {
	if len(*name) > 127 {
		common.Log.Debug("name too long (%s)", *name)
	}

	var out bytes.Buffer
	out.WriteByte('/')
	for i := 0; i < len(*name); i++ {
		c := (*name)[i]
		if !IsPrintable(c) || c == '#' || IsDelimiter(c) {
			fmt.Fprintf(&out, "#%.2x", c)
		} else {
			out.WriteByte(c)
		}
	}
	return out.String()
}

// Elements returns the array's members; nil for a nil array.
func (array *PdfObjectArray) Elements() []PdfObject {
	if array == nil {
		return nil
	}
	return array.vec
}

// Len returns the number of members; 0 for a nil array.
func (array *PdfObjectArray) Len() int {
	if array == nil {
		return 0
	}
	return len(array.vec)
}

// Get returns the i-th member, or nil if i is out of range.
func (array *PdfObjectArray) Get(i int) PdfObject {
	if array == nil || i < 0 || i >= len(array.vec) {
		return nil
	}
	return array.vec[i]
}

// Set replaces the i-th member.
func (array *PdfObjectArray) Set(i int, obj PdfObject) error {
	if i < 0 || i >= len(array.vec) {
		return ErrRangeError
	}
	array.vec[i] = obj
	return nil
}

// Append adds members to the end of the array.
func (array *PdfObjectArray) Append(objects ...PdfObject) {
	if array == nil {
		common.Log.Debug("attempt to append to a nil array")
		return
	}
	array.vec = append(array.vec, objects...)
}

// Clear empties the array in place.
func (array *PdfObjectArray) Clear() {
	array.vec = []PdfObject{}
}

// ToFloat64Array converts a numeric array to []float64, failing on any
// non-numeric member.
func (array *PdfObjectArray) ToFloat64Array() ([]float64, error) {
	vals := make([]float64, 0, array.Len())
	for _, obj := range array.Elements() {
		switch t := obj.(type) {
		case *PdfObjectInteger:
			vals = append(vals, float64(*t))
		case *PdfObjectFloat:
			vals = append(vals, float64(*t))
		default:
			return nil, ErrTypeError
		}
	}
	return vals, nil
}

// ToIntegerArray converts an all-integer array to []int.
func (array *PdfObjectArray) ToIntegerArray() ([]int, error) {
	vals := make([]int, 0, array.Len())
	for _, obj := range array.Elements() {
		number, ok := obj.(*PdfObjectInteger)
		if !ok {
			return nil, ErrTypeError
		}
		vals = append(vals, int(*number))
	}
	return vals, nil
}

// ToInt64Slice converts an all-integer array to []int64.
func (array *PdfObjectArray) ToInt64Slice() ([]int64, error) {
	vals := make([]int64, 0, array.Len())
	for _, obj := range array.Elements() {
		number, ok := obj.(*PdfObjectInteger)
		if !ok {
			return nil, ErrTypeError
		}
		vals = append(vals, int64(*number))
	}
	return vals, nil
}

func (array *PdfObjectArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, o := range array.Elements() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(o.String())
	}
	b.WriteByte(']')
	return b.String()
}

// WriteString implements PdfObject.
func (array *PdfObjectArray) WriteString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, o := range array.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(o.WriteString())
	}
	b.WriteByte(']')
	return b.String()
}

// GetNumberAsFloat coerces an integer or float object to float64.
func GetNumberAsFloat(obj PdfObject) (float64, error) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		return float64(*t), nil
	case *PdfObjectInteger:
		return float64(*t), nil
	}
	return 0, ErrNotANumber
}

// IsNullObject reports whether obj, once traced to its direct value, is null.
func IsNullObject(obj PdfObject) bool {
	_, isNull := TraceToDirectObject(obj).(*PdfObjectNull)
	return isNull
}

// GetNumbersAsFloat coerces a slice of integer/float objects to []float64.
func GetNumbersAsFloat(objects []PdfObject) ([]float64, error) {
	floats := make([]float64, 0, len(objects))
	for _, obj := range objects {
		val, err := GetNumberAsFloat(obj)
		if err != nil {
			return nil, err
		}
		floats = append(floats, val)
	}
	return floats, nil
}

// GetNumberAsInt64 coerces an integer or float object to int64; used where
// a value is specified as integer but some producers emit a float.
func GetNumberAsInt64(obj PdfObject) (int64, error) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		common.Log.Debug("number expected as integer was stored as float")
		return int64(*t), nil
	case *PdfObjectInteger:
		return int64(*t), nil
	}
	return 0, ErrNotANumber
}

// getNumberAsFloatOrNull coerces obj to *float64, returning nil for a null
// object and an error for anything else non-numeric.
func getNumberAsFloatOrNull(obj PdfObject) (*float64, error) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		val := float64(*t)
		return &val, nil
	case *PdfObjectInteger:
		val := float64(*t)
		return &val, nil
	case *PdfObjectNull:
		return nil, nil
	}
	return nil, ErrNotANumber
}

// GetAsFloat64Slice converts an all-numeric array to []float64, tracing
// through references first.
func (array *PdfObjectArray) GetAsFloat64Slice() ([]float64, error) {
	slice := make([]float64, 0, array.Len())
	for _, obj := range array.Elements() {
		number, err := GetNumberAsFloat(TraceToDirectObject(obj))
		if err != nil {
			return nil, fmt.Errorf("array element not a number")
		}
		slice = append(slice, number)
	}
	return slice, nil
}

// Merge copies another's entries into d, overwriting on key collision, and
// returns d for chaining.
func (d *PdfObjectDictionary) Merge(another *PdfObjectDictionary) *PdfObjectDictionary {
	if another != nil {
		for _, key := range another.Keys() {
			d.Set(key, another.Get(key))
		}
	}
	return d
}

func (d *PdfObjectDictionary) String() string {
	var b strings.Builder
	b.WriteString("Dict(")
	for _, k := range d.keys {
		fmt.Fprintf(&b, "%q: %s, ", k.String(), d.dict[k].String())
	}
	b.WriteByte(')')
	return b.String()
}

// WriteString implements PdfObject.
func (d *PdfObjectDictionary) WriteString() string {
	var b strings.Builder
	b.WriteString("<<")
	for _, k := range d.keys {
		b.WriteString(k.WriteString())
		b.WriteByte(' ')
		b.WriteString(d.dict[k].WriteString())
	}
	b.WriteString(">>")
	return b.String()
}

// Set assigns key to val, appending key to the insertion order on first use.
func (d *PdfObjectDictionary) Set(key PdfObjectName, val PdfObject) {
	if _, found := d.dict[key]; !found {
		d.keys = append(d.keys, key)
	}
	d.dict[key] = val
}

// Get returns the value at key, or nil if unset.
func (d *PdfObjectDictionary) Get(key PdfObjectName) PdfObject {
	return d.dict[key]
}

// GetString returns key's value as a string, failing if it is missing or
// not a PdfObjectString.
func (d *PdfObjectDictionary) GetString(key PdfObjectName) (string, bool) {
	val, ok := d.dict[key].(*PdfObjectString)
	if !ok {
		return "", false
	}
	return val.Str(), true
}

// Keys returns the keys in insertion order; nil for a nil dictionary.
func (d *PdfObjectDictionary) Keys() []PdfObjectName {
	if d == nil {
		return nil
	}
	return d.keys
}

// Clear empties the dictionary in place.
func (d *PdfObjectDictionary) Clear() {
	d.keys = []PdfObjectName{}
	d.dict = map[PdfObjectName]PdfObject{}
}

// Remove deletes key, if present.
func (d *PdfObjectDictionary) Remove(key PdfObjectName) {
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			delete(d.dict, key)
			return
		}
	}
}

// SetIfNotNil sets key to val unless val is a nil PdfObject or a typed nil
// pointer masquerading as a non-nil interface value - the latter is the
// usual source of surprise here, since (*PdfObjectArray)(nil) != nil as an
// interface even though it prints as nothing useful.
func (d *PdfObjectDictionary) SetIfNotNil(key PdfObjectName, val PdfObject) {
	if val == nil || isTypedNilPdfObject(val) {
		return
	}
	d.Set(key, val)
}

func isTypedNilPdfObject(val PdfObject) bool {
	switch t := val.(type) {
	case *PdfObjectName:
		return t == nil
	case *PdfObjectDictionary:
		return t == nil
	case *PdfObjectStream:
		return t == nil
	case *PdfObjectString:
		return t == nil
	case *PdfObjectNull:
		return t == nil
	case *PdfObjectInteger:
		return t == nil
	case *PdfObjectArray:
		return t == nil
	case *PdfObjectBool:
		return t == nil
	case *PdfObjectFloat:
		return t == nil
	case *PdfObjectReference:
		return t == nil
	case *PdfIndirectObject:
		return t == nil
	default:
		common.Log.Error("unknown PdfObject concrete type: %T", val)
		return false
	}
}

func (ref *PdfObjectReference) String() string {
	return fmt.Sprintf("Ref(%d %d)", ref.ObjectNumber, ref.GenerationNumber)
}

// WriteString implements PdfObject.
func (ref *PdfObjectReference) WriteString() string {
	return fmt.Sprintf("%d %d R", ref.ObjectNumber, ref.GenerationNumber)
}

// String avoids recursing into the referenced object, which may cycle back
// to itself through the object graph.
func (ind *PdfIndirectObject) String() string {
	return fmt.Sprintf("IObject:%d", ind.ObjectNumber)
}

// WriteString implements PdfObject.
func (ind *PdfIndirectObject) WriteString() string {
	return fmt.Sprintf("%d 0 R", ind.ObjectNumber)
}

func (stream *PdfObjectStream) String() string {
	return fmt.Sprintf("Object stream %d: %s", stream.ObjectNumber, stream.PdfObjectDictionary)
}

// WriteString implements PdfObject.
func (stream *PdfObjectStream) WriteString() string {
	return fmt.Sprintf("%d 0 R", stream.ObjectNumber)
}

func (null *PdfObjectNull) String() string { return "null" }

// WriteString implements PdfObject.
func (null *PdfObjectNull) WriteString() string { return "null" }

// traceMaxDepth guards against reference cycles while chasing indirection.
const traceMaxDepth = 10

// TraceToDirectObject follows references and indirect-object wrappers down
// to the first direct value, bailing out after traceMaxDepth hops.
func TraceToDirectObject(obj PdfObject) PdfObject {
	if ref, isRef := obj.(*PdfObjectReference); isRef {
		obj = ref.Resolve()
	}

	iobj, isIndirect := obj.(*PdfIndirectObject)
	for depth := 0; isIndirect; depth++ {
		if depth > traceMaxDepth {
			common.Log.Error("trace depth exceeded %d - reference cycle?", traceMaxDepth)
			return nil
		}
		obj = iobj.PdfObject
		iobj, isIndirect = GetIndirect(obj)
	}
	return obj
}

// GetBool traces obj and type-asserts it to *PdfObjectBool.
func GetBool(obj PdfObject) (*PdfObjectBool, bool) {
	bo, found := TraceToDirectObject(obj).(*PdfObjectBool)
	return bo, found
}

// GetBoolVal traces obj and unwraps it to a plain bool.
func GetBoolVal(obj PdfObject) (bool, bool) {
	if bo, found := GetBool(obj); found {
		return bool(*bo), true
	}
	return false, false
}

// GetInt traces obj and type-asserts it to *PdfObjectInteger.
func GetInt(obj PdfObject) (*PdfObjectInteger, bool) {
	into, found := TraceToDirectObject(obj).(*PdfObjectInteger)
	return into, found
}

// GetIntVal traces obj and unwraps it to a plain int.
func GetIntVal(obj PdfObject) (int, bool) {
	if into, found := GetInt(obj); found && into != nil {
		return int(*into), true
	}
	return 0, false
}

// GetFloat traces obj and type-asserts it to *PdfObjectFloat.
func GetFloat(obj PdfObject) (*PdfObjectFloat, bool) {
	fo, found := TraceToDirectObject(obj).(*PdfObjectFloat)
	return fo, found
}

// GetFloatVal traces obj and unwraps it to a plain float64.
func GetFloatVal(obj PdfObject) (float64, bool) {
	if fo, found := GetFloat(obj); found {
		return float64(*fo), true
	}
	return 0, false
}

// GetString traces obj and type-asserts it to *PdfObjectString.
func GetString(obj PdfObject) (*PdfObjectString, bool) {
	so, found := TraceToDirectObject(obj).(*PdfObjectString)
	return so, found
}

// GetStringVal traces obj and unwraps it to a plain string.
func GetStringVal(obj PdfObject) (string, bool) {
	if so, found := GetString(obj); found {
		return so.Str(), true
	}
	return "", false
}

// GetStringBytes is GetStringVal with a []byte result.
func GetStringBytes(obj PdfObject) ([]byte, bool) {
	if so, found := GetString(obj); found {
		return so.Bytes(), true
	}
	return nil, false
}

// GetName traces obj and type-asserts it to *PdfObjectName.
func GetName(obj PdfObject) (*PdfObjectName, bool) {
	name, found := TraceToDirectObject(obj).(*PdfObjectName)
	return name, found
}

// GetNameVal traces obj and unwraps it to a plain string.
func GetNameVal(obj PdfObject) (string, bool) {
	if name, found := GetName(obj); found {
		return string(*name), true
	}
	return "", false
}

// GetArray traces obj and type-asserts it to *PdfObjectArray.
func GetArray(obj PdfObject) (*PdfObjectArray, bool) {
	arr, found := TraceToDirectObject(obj).(*PdfObjectArray)
	return arr, found
}

// GetDict traces obj and type-asserts it to *PdfObjectDictionary.
func GetDict(obj PdfObject) (*PdfObjectDictionary, bool) {
	dict, found := TraceToDirectObject(obj).(*PdfObjectDictionary)
	return dict, found
}

// GetIndirect resolves obj (if it is a reference) and type-asserts the
// result to *PdfIndirectObject, without tracing all the way to a direct value.
func GetIndirect(obj PdfObject) (*PdfIndirectObject, bool) {
	ind, found := ResolveReference(obj).(*PdfIndirectObject)
	return ind, found
}

// GetStream resolves obj and type-asserts the result to *PdfObjectStream.
func GetStream(obj PdfObject) (*PdfObjectStream, bool) {
	stream, found := ResolveReference(obj).(*PdfObjectStream)
	return stream, found
}

// GetObjectStreams type-asserts obj to *PdfObjectStreams.
func GetObjectStreams(obj PdfObject) (*PdfObjectStreams, bool) {
	objStream, found := obj.(*PdfObjectStreams)
	return objStream, found
}

// Append adds members to the stream's decoded object list.
func (streams *PdfObjectStreams) Append(objects ...PdfObject) {
	if streams == nil {
		common.Log.Debug("attempt to append to a nil streams object")
		return
	}
	streams.vec = append(streams.vec, objects...)
}

// Set replaces the i-th member.
func (streams *PdfObjectStreams) Set(i int, obj PdfObject) error {
	if i < 0 || i >= len(streams.vec) {
		return errors.New("outside bounds")
	}
	streams.vec[i] = obj
	return nil
}

// Elements returns the decoded members; nil for a nil streams object.
func (streams *PdfObjectStreams) Elements() []PdfObject {
	if streams == nil {
		return nil
	}
	return streams.vec
}

func (streams *PdfObjectStreams) String() string {
	return fmt.Sprintf("Object stream %d", streams.ObjectNumber)
}

// Len returns the number of decoded members.
func (streams *PdfObjectStreams) Len() int {
	if streams == nil {
		return 0
	}
	return len(streams.vec)
}

// WriteString implements PdfObject.
func (streams *PdfObjectStreams) WriteString() string {
	return fmt.Sprintf("%d 0 R", streams.ObjectNumber)
}
