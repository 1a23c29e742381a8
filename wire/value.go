// Package wire implements the AMQP 0-9-1 field-value model: the tagged
// union of primitive and compound values that can appear inside a field
// table, plus the ordered field table and array container types.
//
// Value is a fixed-shape struct rather than an interface so that encoding
// never needs a type switch over arbitrary implementations — the codec
// package picks a wire tag straight off Kind() and reads the matching
// struct field, the same direct-table-over-reflection approach the
// teacher's section package uses for its packed flag fields.
package wire

import "fmt"

// Kind identifies which AMQP field-value variant a Value holds.
type Kind uint8

// Field-value kinds, matching the wire tags in the AMQP 0-9-1 field-table format.
const (
	KindBool Kind = iota
	KindShortShortInt
	KindShortShortUint
	KindShortInt
	KindShortUint
	KindLongInt
	KindLongUint
	KindLongLongInt
	KindLongLongUint
	KindFloat
	KindDouble
	KindDecimal
	KindShortString
	KindLongString
	KindArray
	KindTimestamp
	KindTable
	KindVoid
)

// Tag is the one-byte discriminator used for a Value inside a field table.
type Tag byte

// Wire tags, keyed by Kind; the table form a direct two-way mapping with tagToKind below.
const (
	TagBool            Tag = 't'
	TagShortShortInt   Tag = 'b'
	TagShortShortUint  Tag = 'B'
	TagShortInt        Tag = 'U'
	TagShortUint       Tag = 'u'
	TagLongInt         Tag = 'I'
	TagLongUint        Tag = 'i'
	TagLongLongInt     Tag = 'L'
	TagLongLongUint    Tag = 'l'
	TagFloat           Tag = 'f'
	TagDouble          Tag = 'd'
	TagDecimal         Tag = 'D'
	TagShortString     Tag = 's'
	TagLongString      Tag = 'S'
	TagArray           Tag = 'A'
	TagTimestamp       Tag = 'T'
	TagTable           Tag = 'F'
	TagVoid            Tag = 'V'
)

var kindToTag = [...]Tag{
	KindBool:           TagBool,
	KindShortShortInt:  TagShortShortInt,
	KindShortShortUint: TagShortShortUint,
	KindShortInt:       TagShortInt,
	KindShortUint:      TagShortUint,
	KindLongInt:        TagLongInt,
	KindLongUint:       TagLongUint,
	KindLongLongInt:    TagLongLongInt,
	KindLongLongUint:   TagLongLongUint,
	KindFloat:          TagFloat,
	KindDouble:         TagDouble,
	KindDecimal:        TagDecimal,
	KindShortString:    TagShortString,
	KindLongString:     TagLongString,
	KindArray:          TagArray,
	KindTimestamp:      TagTimestamp,
	KindTable:          TagTable,
	KindVoid:           TagVoid,
}

var tagToKind = map[Tag]Kind{
	TagBool:           KindBool,
	TagShortShortInt:  KindShortShortInt,
	TagShortShortUint: KindShortShortUint,
	TagShortInt:       KindShortInt,
	TagShortUint:      KindShortUint,
	TagLongInt:        KindLongInt,
	TagLongUint:       KindLongUint,
	TagLongLongInt:    KindLongLongInt,
	TagLongLongUint:   KindLongLongUint,
	TagFloat:          KindFloat,
	TagDouble:         KindDouble,
	TagDecimal:        KindDecimal,
	TagShortString:    KindShortString,
	TagLongString:     KindLongString,
	TagArray:          KindArray,
	TagTimestamp:      KindTimestamp,
	TagTable:          KindTable,
	TagVoid:           KindVoid,
}

// TagFor returns the wire tag byte for k.
func (k Kind) TagFor() Tag { return kindToTag[k] }

// KindForTag returns the Kind associated with a wire tag, and false if tag is unrecognized.
func KindForTag(tag Tag) (Kind, bool) {
	k, ok := tagToKind[tag]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindShortShortInt:
		return "ShortShortInt"
	case KindShortShortUint:
		return "ShortShortUint"
	case KindShortInt:
		return "ShortInt"
	case KindShortUint:
		return "ShortUint"
	case KindLongInt:
		return "LongInt"
	case KindLongUint:
		return "LongUint"
	case KindLongLongInt:
		return "LongLongInt"
	case KindLongLongUint:
		return "LongLongUint"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindDecimal:
		return "DecimalValue"
	case KindShortString:
		return "ShortString"
	case KindLongString:
		return "LongString"
	case KindArray:
		return "FieldArray"
	case KindTimestamp:
		return "Timestamp"
	case KindTable:
		return "FieldTable"
	case KindVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// Decimal is a scaled fixed-point value: Value * 10^-Scale.
type Decimal struct {
	Scale uint8
	Value uint32
}

// Value is a single AMQP field-table value. The zero Value is a Bool
// holding false (KindBool is Kind 0); use NewVoid for Void.
//
// Value is a value object: once constructed it is never mutated, only
// inspected via Kind() and the typed accessors (Bool, Int64, Uint64, ...)
// or reconstructed via the New* constructors.
type Value struct {
	kind Kind
	u64  uint64 // backs Bool, all signed/unsigned int kinds (sign-extended/zero-extended), Timestamp
	f32  float32
	f64  float64
	dec  Decimal
	str  string // ShortString payload
	long []byte // LongString payload
	arr  Array
	tbl  Table
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// NewBool constructs a Bool value.
func NewBool(b bool) Value {
	var u uint64
	if b {
		u = 1
	}

	return Value{kind: KindBool, u64: u}
}

// NewShortShortInt constructs a signed 8-bit value.
func NewShortShortInt(i int8) Value {
	return Value{kind: KindShortShortInt, u64: uint64(int64(i))}
}

// NewShortShortUint constructs an unsigned 8-bit value.
func NewShortShortUint(u uint8) Value {
	return Value{kind: KindShortShortUint, u64: uint64(u)}
}

// NewShortInt constructs a signed 16-bit value.
func NewShortInt(i int16) Value {
	return Value{kind: KindShortInt, u64: uint64(int64(i))}
}

// NewShortUint constructs an unsigned 16-bit value.
func NewShortUint(u uint16) Value {
	return Value{kind: KindShortUint, u64: uint64(u)}
}

// NewLongInt constructs a signed 32-bit value.
func NewLongInt(i int32) Value {
	return Value{kind: KindLongInt, u64: uint64(int64(i))}
}

// NewLongUint constructs an unsigned 32-bit value.
func NewLongUint(u uint32) Value {
	return Value{kind: KindLongUint, u64: uint64(u)}
}

// NewLongLongInt constructs a signed 64-bit value.
func NewLongLongInt(i int64) Value {
	return Value{kind: KindLongLongInt, u64: uint64(i)}
}

// NewLongLongUint constructs an unsigned 64-bit value.
func NewLongLongUint(u uint64) Value {
	return Value{kind: KindLongLongUint, u64: u}
}

// NewFloat constructs an IEEE-754 32-bit value.
func NewFloat(f float32) Value {
	return Value{kind: KindFloat, f32: f}
}

// NewDouble constructs an IEEE-754 64-bit value.
func NewDouble(f float64) Value {
	return Value{kind: KindDouble, f64: f}
}

// NewDecimal constructs a scaled decimal value.
func NewDecimal(scale uint8, val uint32) Value {
	return Value{kind: KindDecimal, dec: Decimal{Scale: scale, Value: val}}
}

// NewShortString constructs a short string value. It does not itself
// enforce the 255-byte limit; the encoder does, with the same check it
// applies to Shortstr method fields.
func NewShortString(s string) Value {
	return Value{kind: KindShortString, str: s}
}

// NewLongString constructs a long string (raw byte sequence) value.
func NewLongString(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)

	return Value{kind: KindLongString, long: cp}
}

// NewTimestamp constructs a Timestamp value (unsigned 64-bit seconds-since-epoch, per AMQP convention).
func NewTimestamp(t uint64) Value {
	return Value{kind: KindTimestamp, u64: t}
}

// NewArray constructs a FieldArray value.
func NewArray(a Array) Value {
	return Value{kind: KindArray, arr: a}
}

// NewTable constructs a FieldTable value.
func NewTable(t Table) Value {
	return Value{kind: KindTable, tbl: t}
}

// NewVoid constructs the Void value.
func NewVoid() Value {
	return Value{kind: KindVoid}
}

// Bool returns the boolean payload and whether v holds a Bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.u64 != 0, true
}

// Int64 returns a signed integer payload (ShortShortInt, ShortInt,
// LongInt, LongLongInt) widened to int64, along with whether v held one of
// those kinds. Unsigned kinds and Timestamp report false; use Uint64.
// Callers that need the exact declared width should use Kind() to dispatch.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindShortShortInt, KindShortInt, KindLongInt, KindLongLongInt:
		return int64(v.u64), true
	default:
		return 0, false
	}
}

// Uint64 returns an unsigned integer or timestamp payload.
func (v Value) Uint64() (uint64, bool) {
	switch v.kind {
	case KindShortShortUint, KindShortUint, KindLongUint, KindLongLongUint, KindTimestamp:
		return v.u64, true
	default:
		return 0, false
	}
}

// Float32 returns the Float payload.
func (v Value) Float32() (float32, bool) {
	if v.kind != KindFloat {
		return 0, false
	}

	return v.f32, true
}

// Float64 returns the Double payload.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindDouble {
		return 0, false
	}

	return v.f64, true
}

// DecimalValue returns the Decimal payload.
func (v Value) DecimalValue() (Decimal, bool) {
	if v.kind != KindDecimal {
		return Decimal{}, false
	}

	return v.dec, true
}

// ShortString returns the ShortString payload.
func (v Value) ShortString() (string, bool) {
	if v.kind != KindShortString {
		return "", false
	}

	return v.str, true
}

// LongString returns the LongString payload. The returned slice shares no
// memory with v; callers may mutate it freely.
func (v Value) LongString() ([]byte, bool) {
	if v.kind != KindLongString {
		return nil, false
	}

	cp := make([]byte, len(v.long))
	copy(cp, v.long)

	return cp, true
}

// Array returns the FieldArray payload.
func (v Value) Array() (Array, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	return v.arr, true
}

// Table returns the FieldTable payload.
func (v Value) Table() (Table, bool) {
	if v.kind != KindTable {
		return Table{}, false
	}

	return v.tbl, true
}

// Equal reports whether v and other hold the same kind and payload,
// recursing into nested arrays and tables.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindFloat:
		return v.f32 == other.f32
	case KindDouble:
		return v.f64 == other.f64
	case KindDecimal:
		return v.dec == other.dec
	case KindShortString:
		return v.str == other.str
	case KindLongString:
		return string(v.long) == string(other.long)
	case KindArray:
		return v.arr.Equal(other.arr)
	case KindTable:
		return v.tbl.Equal(other.tbl)
	case KindVoid:
		return true
	default:
		return v.u64 == other.u64
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindShortString:
		return fmt.Sprintf("ShortString(%q)", v.str)
	case KindLongString:
		return fmt.Sprintf("LongString(%d bytes)", len(v.long))
	case KindTable:
		return fmt.Sprintf("FieldTable(%d entries)", v.tbl.Len())
	case KindArray:
		return fmt.Sprintf("FieldArray(%d elements)", len(v.arr))
	default:
		return fmt.Sprintf("%s(%v)", v.kind, v.u64)
	}
}
