package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/amqp911/errs"
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/wire"
)

// PeekHeader reads the class-id/method-id pair a payload opens with,
// without interpreting the remaining fields. Callers (the frame and
// connection packages) use this to look up the right Descriptor in the
// catalog before calling Decode with a freshly constructed record of that
// type.
func PeekHeader(payload []byte) (classID, methodID uint16, err error) {
	if len(payload) < 4 {
		return 0, 0, errs.NewProtocolViolation(0, "payload shorter than the 4-byte class/method header")
	}

	return binary.BigEndian.Uint16(payload[0:2]), binary.BigEndian.Uint16(payload[2:4]), nil
}

// Decode parses payload's fields (after the class/method header) into rec,
// in rec's declared field order. The class-id/method-id header is read and
// discarded — matching it against rec's own identity is the caller's
// choice, since the caller already selected rec's concrete type to decode
// into.
func Decode(payload []byte, rec method.Record) error {
	if rec == nil {
		return errs.ErrNilRecord
	}

	d := &decState{buf: payload}
	if _, err := d.readU16(); err != nil {
		return fmt.Errorf("class-id: %w", err)
	}

	if _, err := d.readU16(); err != nil {
		return fmt.Errorf("method-id: %w", err)
	}

	var run bitReadRun
	for _, f := range rec.Fields() {
		if f.Type != method.Bit {
			run.invalidate()
		}

		switch f.Type {
		case method.Bit:
			b, err := d.readBit(&run)
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(b); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Octet:
			b, err := d.readU8()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(b); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Short:
			u, err := d.readU16()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(u); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Long:
			u, err := d.readU32()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(u); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Longlong:
			u, err := d.readU64()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(u); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Shortstr:
			s, err := d.readShortStr()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(s); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Longstr:
			b, err := d.readLongStr()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(b); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Table:
			t, err := d.readTable()
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}

			if err := f.Set(t); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		default:
			return fmt.Errorf("field %q: unknown field type %v", f.Name, f.Type)
		}
	}

	return nil
}

// bitReadRun mirrors bitRun on the decode side: a cursor into the
// currently-buffered octet, invalidated (forcing a fresh byte read) the
// moment a non-Bit field is reached.
type bitReadRun struct {
	valid  bool
	octet  byte
	cursor uint8
}

func (r *bitReadRun) invalidate() { r.valid = false }

// decState is a forward-only cursor over a byte slice, used for both a
// full method payload and any table/array body carved out of it.
type decState struct {
	buf []byte
	pos int
}

func (d *decState) remaining() int { return len(d.buf) - d.pos }

func (d *decState) need(n int) error {
	if d.remaining() < n {
		return errs.NewProtocolViolation(d.pos, fmt.Sprintf("need %d bytes, have %d", n, d.remaining()))
	}

	return nil
}

func (d *decState) readBit(run *bitReadRun) (bool, error) {
	if !run.valid {
		o, err := d.readU8()
		if err != nil {
			return false, err
		}

		run.octet = o
		run.cursor = 0
		run.valid = true
	}

	b := (run.octet>>run.cursor)&1 != 0
	run.cursor++

	if run.cursor == 8 {
		run.invalidate()
	}

	return b, nil
}

func (d *decState) readU8() (uint8, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}

	v := d.buf[d.pos]
	d.pos++

	return v, nil
}

func (d *decState) readU16() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}

	v := binary.BigEndian.Uint16(d.buf[d.pos:])
	d.pos += 2

	return v, nil
}

func (d *decState) readU32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}

	v := binary.BigEndian.Uint32(d.buf[d.pos:])
	d.pos += 4

	return v, nil
}

func (d *decState) readU64() (uint64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}

	v := binary.BigEndian.Uint64(d.buf[d.pos:])
	d.pos += 8

	return v, nil
}

func (d *decState) readShortStr() (string, error) {
	n, err := d.readU8()
	if err != nil {
		return "", err
	}

	if err := d.need(int(n)); err != nil {
		return "", err
	}

	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)

	if !utf8.Valid(b) {
		return "", &errs.Utf8{Field: "shortstr", Cause: fmt.Errorf("invalid utf-8 at offset %d", d.pos-int(n))}
	}

	return string(b), nil
}

// readFieldName is readShortStr's table-entry-name counterpart: same
// length budget and the same checks. A name running past the table body
// is a ProtocolViolation; invalid UTF-8 is a Utf8 error labelled
// "field-name" instead of "shortstr".
func (d *decState) readFieldName() (string, error) {
	n, err := d.readU8()
	if err != nil {
		return "", err
	}

	if err := d.need(int(n)); err != nil {
		return "", err
	}

	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)

	if !utf8.Valid(b) {
		return "", &errs.Utf8{Field: "field-name", Cause: fmt.Errorf("invalid utf-8 at offset %d", d.pos-int(n))}
	}

	return string(b), nil
}

func (d *decState) readLongStr() ([]byte, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}

	if err := d.need(int(n)); err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil
	}

	b := make([]byte, n)
	copy(b, d.buf[d.pos:d.pos+int(n)])
	d.pos += int(n)

	return b, nil
}

// readTable reads a 4-byte BE byte-length followed by exactly that many
// bytes of entries, parsed with their own bounded cursor so an inner
// table's length prefix — not the outer buffer's remainder — governs how
// much of it gets consumed.
func (d *decState) readTable() (wire.Table, error) {
	n, err := d.readU32()
	if err != nil {
		return wire.Table{}, err
	}

	if err := d.need(int(n)); err != nil {
		return wire.Table{}, err
	}

	body := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)

	inner := &decState{buf: body}
	var t wire.Table

	for inner.remaining() > 0 {
		name, err := inner.readFieldName()
		if err != nil {
			return wire.Table{}, err
		}

		v, err := inner.readValue()
		if err != nil {
			return wire.Table{}, fmt.Errorf("entry %q: %w", name, err)
		}

		t.Set(name, v)
	}

	return t, nil
}

// readArray mirrors readTable but without per-element names.
func (d *decState) readArray() (wire.Array, error) {
	n, err := d.readU32()
	if err != nil {
		return nil, err
	}

	if err := d.need(int(n)); err != nil {
		return nil, err
	}

	body := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)

	inner := &decState{buf: body}

	var arr wire.Array
	for inner.remaining() > 0 {
		v, err := inner.readValue()
		if err != nil {
			return nil, err
		}

		arr = append(arr, v)
	}

	return arr, nil
}

// readValue reads one tag-prefixed field-table/array value.
func (d *decState) readValue() (wire.Value, error) {
	tagByte, err := d.readU8()
	if err != nil {
		return wire.Value{}, err
	}

	kind, ok := wire.KindForTag(wire.Tag(tagByte))
	if !ok {
		return wire.Value{}, errs.NewProtocolViolation(d.pos-1, fmt.Sprintf("unknown field-table tag 0x%02x", tagByte))
	}

	switch kind {
	case wire.KindBool:
		b, err := d.readU8()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewBool(b != 0), nil
	case wire.KindShortShortInt:
		b, err := d.readU8()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewShortShortInt(int8(b)), nil
	case wire.KindShortShortUint:
		b, err := d.readU8()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewShortShortUint(b), nil
	case wire.KindShortInt:
		u, err := d.readU16()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewShortInt(int16(u)), nil
	case wire.KindShortUint:
		u, err := d.readU16()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewShortUint(u), nil
	case wire.KindLongInt:
		u, err := d.readU32()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewLongInt(int32(u)), nil
	case wire.KindLongUint:
		u, err := d.readU32()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewLongUint(u), nil
	case wire.KindLongLongInt:
		u, err := d.readU64()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewLongLongInt(int64(u)), nil
	case wire.KindLongLongUint:
		u, err := d.readU64()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewLongLongUint(u), nil
	case wire.KindTimestamp:
		u, err := d.readU64()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewTimestamp(u), nil
	case wire.KindFloat:
		u, err := d.readU32()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewFloat(math.Float32frombits(u)), nil
	case wire.KindDouble:
		u, err := d.readU64()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewDouble(math.Float64frombits(u)), nil
	case wire.KindDecimal:
		scale, err := d.readU8()
		if err != nil {
			return wire.Value{}, err
		}

		val, err := d.readU32()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewDecimal(scale, val), nil
	case wire.KindShortString:
		s, err := d.readShortStr()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewShortString(s), nil
	case wire.KindLongString:
		b, err := d.readLongStr()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewLongString(b), nil
	case wire.KindArray:
		a, err := d.readArray()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewArray(a), nil
	case wire.KindTable:
		t, err := d.readTable()
		if err != nil {
			return wire.Value{}, err
		}

		return wire.NewTable(t), nil
	case wire.KindVoid:
		return wire.NewVoid(), nil
	default:
		return wire.Value{}, errs.NewProtocolViolation(d.pos, fmt.Sprintf("unhandled kind %v", kind))
	}
}
