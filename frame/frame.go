// Package frame implements the outermost AMQP 0-9-1 frame envelope:
// type, channel, payload, and the 0xCE end-of-frame octet, wrapping and
// unwrapping the method payloads the codec package produces.
package frame

import (
	"encoding/binary"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/codec"
	"github.com/arloliu/amqp911/errs"
	"github.com/arloliu/amqp911/method"
)

// Frame is one transmission unit on the wire: a type octet, a 2-byte BE
// channel number, a length-prefixed payload, and a trailing frame-end
// octet (the trailing octet is implicit here; Marshal appends it and
// Unmarshal validates it rather than storing it on the struct).
type Frame struct {
	Type    uint8
	Channel uint16
	Payload []byte
}

// Wrap encodes rec into a method frame addressed to channel.
func Wrap(channel uint16, rec method.Record) (*Frame, error) {
	payload, err := codec.Encode(rec)
	if err != nil {
		return nil, err
	}

	return &Frame{Type: catalog.FrameMethod, Channel: channel, Payload: payload}, nil
}

// Unwrap decodes f's payload into rec, verifying f carries the class and
// method rec expects.
func Unwrap(f *Frame, rec method.Record) error {
	classID, methodID, err := codec.PeekHeader(f.Payload)
	if err != nil {
		return err
	}

	if classID != rec.ClassID() || methodID != rec.MethodID() {
		return &errs.UnexpectedMethod{ClassID: classID, MethodID: methodID}
	}

	return codec.Decode(f.Payload, rec)
}

// Marshal serializes f as a complete wire frame: type, channel, 4-byte BE
// payload length, payload, and the frame-end octet.
func (f *Frame) Marshal() []byte {
	out := make([]byte, 7+len(f.Payload)+1)
	out[0] = f.Type
	binary.BigEndian.PutUint16(out[1:3], f.Channel)
	binary.BigEndian.PutUint32(out[3:7], uint32(len(f.Payload)))
	copy(out[7:], f.Payload)
	out[len(out)-1] = catalog.FrameEnd

	return out
}

// Unmarshal parses a complete wire frame (as produced by Marshal) into a
// Frame, validating the trailing frame-end octet.
func Unmarshal(b []byte) (*Frame, error) {
	if len(b) < 8 {
		return nil, errs.NewProtocolViolation(len(b), "frame shorter than minimum header+end size")
	}

	payloadLen := binary.BigEndian.Uint32(b[3:7])
	want := 7 + int(payloadLen) + 1
	if len(b) != want {
		return nil, errs.NewProtocolViolation(len(b), "frame length does not match declared payload size")
	}

	if b[len(b)-1] != catalog.FrameEnd {
		return nil, &errs.FrameEnd{Got: b[len(b)-1]}
	}

	f := &Frame{
		Type:    b[0],
		Channel: binary.BigEndian.Uint16(b[1:3]),
		Payload: append([]byte(nil), b[7:7+payloadLen]...),
	}

	return f, nil
}
