// Package method defines the shape of a method record: the
// (class-id, method-id) pair plus an ordered field list that the codec
// package walks to encode or decode a payload.
package method

// FieldType is the semantic type of a single method field.
type FieldType uint8

// Field types, as enumerated in the AMQP 0-9-1 method grammar.
const (
	Bit FieldType = iota
	Octet
	Short
	Long
	Longlong
	Shortstr
	Longstr
	Table
)

func (t FieldType) String() string {
	switch t {
	case Bit:
		return "bit"
	case Octet:
		return "octet"
	case Short:
		return "short"
	case Long:
		return "long"
	case Longlong:
		return "longlong"
	case Shortstr:
		return "shortstr"
	case Longstr:
		return "longstr"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// StrKind is the string-length-prefix flavor a Shortstr/Longstr field uses
// on the wire.
type StrKind uint8

// String kinds. NotStr is returned for non-string field types.
const (
	NotStr StrKind = iota
	ShortFlavor
	LongFlavor
)

// StrKind reports which string flavor a field uses. It is derived directly
// from FieldType rather than from a separate lookup table: the protocol's
// own XML definition already commits each field to short or long at
// declaration time, so FieldSpec.Type alone carries the hint the codec
// needs (see SPEC_FULL.md §5).
func (f FieldSpec) StrKind() StrKind {
	switch f.Type {
	case Shortstr:
		return ShortFlavor
	case Longstr:
		return LongFlavor
	default:
		return NotStr
	}
}

// FieldSpec describes one field of a method record: its name, position
// (implicit in slice order), declared type, and bound accessors.
//
// Get/Set close over the field's storage in the owning record instance, so
// the codec can walk Fields() in order without reflection or a generated
// per-type switch statement — each record builds its own closures once,
// in Fields().
type FieldSpec struct {
	Name string
	Type FieldType
	Get  func() any
	Set  func(any) error
}

// Record is implemented by every method struct in the catalog.
type Record interface {
	ClassID() uint16
	MethodID() uint16
	Fields() []FieldSpec
}

// Descriptor pairs a method's identity with a zero-value factory, letting
// the catalog hand back a fresh Record for decoding without reflection.
type Descriptor struct {
	ClassID, MethodID uint16
	Name              string
	New               func() Record
}
