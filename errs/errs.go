// Package errs defines the error taxonomy shared by the wire codec, the
// frame transport and the connection state machine.
//
// Fixed-message failures are exposed as package-level sentinels so callers
// can compare with errors.Is. Failures that carry data (an offending
// length, a received byte, an unexpected method) are small typed values so
// callers can recover the data with errors.As.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors with no associated data.
var (
	// ErrEmptyFieldName describes a field-table entry with a zero-length name.
	// The codec does not return it: empty names are encoded and decoded like
	// any other name.
	ErrEmptyFieldName = errors.New("field name must not be empty")
	// ErrUnknownRecord describes an unregistered (class-id, method-id) pair.
	// catalog.Lookup does not return it; it reports a miss with false.
	ErrUnknownRecord = errors.New("no method registered for class/method pair")
	// ErrNilRecord is returned when encode/decode is called with a nil method.Record.
	ErrNilRecord = errors.New("method record is nil")
)

// ShortStrTooLong is raised by the encoder when a short-string (or a field
// name, which carries the same length budget) exceeds 255 bytes.
type ShortStrTooLong struct {
	N int
}

func (e *ShortStrTooLong) Error() string {
	return fmt.Sprintf("short string length %d exceeds maximum 255", e.N)
}

// FrameEnd is raised by the transport when a frame's trailing sentinel
// octet is not 0xCE.
type FrameEnd struct {
	Got byte
}

func (e *FrameEnd) Error() string {
	return fmt.Sprintf("frame end byte 0x%02x != 0xce", e.Got)
}

// Io wraps an underlying read/write failure from the transport's byte stream.
type Io struct {
	Cause error
}

func (e *Io) Error() string { return fmt.Sprintf("io: %v", e.Cause) }
func (e *Io) Unwrap() error { return e.Cause }

// Utf8 wraps an invalid-UTF-8 failure decoding a short-string field.
type Utf8 struct {
	Field string
	Cause error
}

func (e *Utf8) Error() string {
	return fmt.Sprintf("field %q: invalid utf-8: %v", e.Field, e.Cause)
}
func (e *Utf8) Unwrap() error { return e.Cause }

// UnexpectedMethod is raised by the connection state machine when a
// received method's (class-id, method-id) does not match what the current
// state expects.
type UnexpectedMethod struct {
	ClassID, MethodID uint16
}

func (e *UnexpectedMethod) Error() string {
	return fmt.Sprintf("unexpected method (class=%d, method=%d)", e.ClassID, e.MethodID)
}

// ProtocolViolation covers length-prefix mismatches, unknown field-table
// tags, and other structural inconsistencies the codec detects while
// decoding.
type ProtocolViolation struct {
	Reason string
	Offset int // byte offset into the payload where the violation was detected, -1 if not applicable
}

func (e *ProtocolViolation) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("protocol violation at offset %d: %s", e.Offset, e.Reason)
	}

	return fmt.Sprintf("protocol violation: %s", e.Reason)
}

// NewProtocolViolation builds a ProtocolViolation with a known byte offset.
func NewProtocolViolation(offset int, reason string) error {
	return &ProtocolViolation{Reason: reason, Offset: offset}
}
