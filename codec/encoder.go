// Package codec implements the byte-exact AMQP 0-9-1 method-payload and
// field-table encoder/decoder: class/method headers, bit-run packing,
// context-sensitive short/long string framing, and recursive field tables
// and arrays.
package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/amqp911/errs"
	"github.com/arloliu/amqp911/internal/pool"
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/wire"
)

// Encode serializes rec's class-id, method-id, and fields (in declared
// order) into a payload body, ready to be wrapped in a frame.
func Encode(rec method.Record) ([]byte, error) {
	if rec == nil {
		return nil, errs.ErrNilRecord
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], rec.ClassID())
	binary.BigEndian.PutUint16(hdr[2:4], rec.MethodID())
	buf.MustWrite(hdr[:])

	var run bitRun
	for _, f := range rec.Fields() {
		if f.Type != method.Bit && run.pending() {
			buf.MustWrite([]byte{run.take()})
		}

		val := f.Get()

		switch f.Type {
		case method.Bit:
			b, ok := val.(bool)
			if !ok {
				return nil, fmt.Errorf("field %q: Bit value is not a bool (%T)", f.Name, val)
			}

			run.put(b)
			if run.cursor == 8 {
				buf.MustWrite([]byte{run.take()})
			}
		case method.Octet:
			b, ok := val.(uint8)
			if !ok {
				return nil, fmt.Errorf("field %q: Octet value is not a uint8 (%T)", f.Name, val)
			}

			buf.MustWrite([]byte{b})
		case method.Short:
			u, ok := val.(uint16)
			if !ok {
				return nil, fmt.Errorf("field %q: Short value is not a uint16 (%T)", f.Name, val)
			}

			var b [2]byte
			binary.BigEndian.PutUint16(b[:], u)
			buf.MustWrite(b[:])
		case method.Long:
			u, ok := val.(uint32)
			if !ok {
				return nil, fmt.Errorf("field %q: Long value is not a uint32 (%T)", f.Name, val)
			}

			var b [4]byte
			binary.BigEndian.PutUint32(b[:], u)
			buf.MustWrite(b[:])
		case method.Longlong:
			u, ok := val.(uint64)
			if !ok {
				return nil, fmt.Errorf("field %q: Longlong value is not a uint64 (%T)", f.Name, val)
			}

			var b [8]byte
			binary.BigEndian.PutUint64(b[:], u)
			buf.MustWrite(b[:])
		case method.Shortstr:
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("field %q: Shortstr value is not a string (%T)", f.Name, val)
			}

			if err := writeShortStr(buf, s); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
		case method.Longstr:
			b, ok := val.([]byte)
			if !ok {
				return nil, fmt.Errorf("field %q: Longstr value is not a []byte (%T)", f.Name, val)
			}

			writeLongStr(buf, b)
		case method.Table:
			t, ok := val.(wire.Table)
			if !ok {
				return nil, fmt.Errorf("field %q: Table value is not a wire.Table (%T)", f.Name, val)
			}

			if err := encodeTable(buf, t); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
		default:
			return nil, fmt.Errorf("field %q: unknown field type %v", f.Name, f.Type)
		}
	}

	if run.pending() {
		buf.MustWrite([]byte{run.take()})
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func writeShortStr(buf *pool.ByteBuffer, s string) error {
	if len(s) > 255 {
		return &errs.ShortStrTooLong{N: len(s)}
	}

	buf.Grow(1 + len(s))
	buf.MustWrite([]byte{byte(len(s))})
	buf.MustWrite([]byte(s))

	return nil
}

func writeLongStr(buf *pool.ByteBuffer, b []byte) {
	buf.Grow(4 + len(b))

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	buf.MustWrite(lenBuf[:])
	buf.MustWrite(b)
}

// encodeTable writes t as a 4-byte BE byte-length followed by its entries.
// Entries are encoded into a freshly pooled scratch buffer first so the
// length prefix can be written before the body without a second pass over
// the data; nested tables/arrays recurse into their own scratch buffer,
// forming a stack of pooled buffers that unwinds as the recursion returns.
func encodeTable(dst *pool.ByteBuffer, t wire.Table) error {
	scratch := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(scratch)

	var rangeErr error
	t.Range(func(name string, v wire.Value) bool {
		if len(name) > 255 {
			rangeErr = &errs.ShortStrTooLong{N: len(name)}
			return false
		}

		scratch.Grow(1 + len(name))
		scratch.MustWrite([]byte{byte(len(name))})
		scratch.MustWrite([]byte(name))

		if err := encodeValue(scratch, v); err != nil {
			rangeErr = fmt.Errorf("entry %q: %w", name, err)
			return false
		}

		return true
	})
	if rangeErr != nil {
		return rangeErr
	}

	dst.Grow(4 + scratch.Len())

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(scratch.Len()))
	dst.MustWrite(lenBuf[:])
	dst.MustWrite(scratch.Bytes())

	return nil
}

// encodeArray writes a as a 4-byte BE byte-length followed by concatenated
// tag+value pairs (no per-element names).
func encodeArray(dst *pool.ByteBuffer, a wire.Array) error {
	scratch := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(scratch)

	for i, v := range a {
		if err := encodeValue(scratch, v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	dst.Grow(4 + scratch.Len())

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(scratch.Len()))
	dst.MustWrite(lenBuf[:])
	dst.MustWrite(scratch.Bytes())

	return nil
}

// encodeValue writes v's wire tag followed by its payload. This is the
// direct tag lookup the design notes call for (Kind.TagFor()) rather than
// reflection or string matching.
func encodeValue(buf *pool.ByteBuffer, v wire.Value) error {
	buf.MustWrite([]byte{byte(v.Kind().TagFor())})

	switch v.Kind() {
	case wire.KindBool:
		b, _ := v.Bool()
		var o byte
		if b {
			o = 1
		}

		buf.MustWrite([]byte{o})
	case wire.KindShortShortInt, wire.KindShortShortUint:
		i, _ := v.Int64()
		if v.Kind() == wire.KindShortShortUint {
			u, _ := v.Uint64()
			buf.MustWrite([]byte{byte(u)})

			return nil
		}

		buf.MustWrite([]byte{byte(i)})
	case wire.KindShortInt:
		i, _ := v.Int64()

		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(i))
		buf.MustWrite(b[:])
	case wire.KindShortUint:
		u, _ := v.Uint64()

		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(u))
		buf.MustWrite(b[:])
	case wire.KindLongInt:
		i, _ := v.Int64()

		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(i))
		buf.MustWrite(b[:])
	case wire.KindLongUint:
		u, _ := v.Uint64()

		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(u))
		buf.MustWrite(b[:])
	case wire.KindLongLongInt:
		i, _ := v.Int64()

		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(i))
		buf.MustWrite(b[:])
	case wire.KindLongLongUint, wire.KindTimestamp:
		u, _ := v.Uint64()

		var b [8]byte
		binary.BigEndian.PutUint64(b[:], u)
		buf.MustWrite(b[:])
	case wire.KindFloat:
		f, _ := v.Float32()

		var b [4]byte
		binary.BigEndian.PutUint32(b[:], math.Float32bits(f))
		buf.MustWrite(b[:])
	case wire.KindDouble:
		f, _ := v.Float64()

		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
		buf.MustWrite(b[:])
	case wire.KindDecimal:
		d, _ := v.DecimalValue()
		buf.MustWrite([]byte{d.Scale})

		var b [4]byte
		binary.BigEndian.PutUint32(b[:], d.Value)
		buf.MustWrite(b[:])
	case wire.KindShortString:
		s, _ := v.ShortString()

		return writeShortStr(buf, s)
	case wire.KindLongString:
		b, _ := v.LongString()
		writeLongStr(buf, b)
	case wire.KindArray:
		arr, _ := v.Array()

		return encodeArray(buf, arr)
	case wire.KindTable:
		t, _ := v.Table()

		return encodeTable(buf, t)
	case wire.KindVoid:
		// no payload
	default:
		return fmt.Errorf("unknown value kind %v", v.Kind())
	}

	return nil
}
