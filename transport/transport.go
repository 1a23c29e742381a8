// Package transport serializes frame reads and writes over an underlying
// byte stream (typically a net.Conn) and handles the one-time protocol
// header exchange at connection start.
package transport

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/errs"
	"github.com/arloliu/amqp911/frame"
	"github.com/arloliu/amqp911/internal/trace"
)

// Transport wraps an io.ReadWriteCloser with frame-level read/write
// serialization. Writes are mutex-guarded so concurrent channels sharing
// one connection can't interleave partial frames; reads are expected to
// be driven from a single dispatch loop and are not separately locked.
type Transport struct {
	rw  io.ReadWriteCloser
	mu  sync.Mutex
	rec *trace.Recorder
}

// Option configures a Transport built by New.
type Option func(*Transport)

// WithRecorder attaches a frame recorder: every frame sent or received is
// captured for later inspection via rec.Dump. A nil rec disables capture.
func WithRecorder(rec *trace.Recorder) Option {
	return func(t *Transport) {
		t.rec = rec
	}
}

// New wraps rw in a Transport.
func New(rw io.ReadWriteCloser, opts ...Option) *Transport {
	t := &Transport{rw: rw}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SendProtocolHeader writes the 8-byte AMQP identification sequence. It
// must be the first thing written on a fresh connection.
func (t *Transport) SendProtocolHeader() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.rw.Write(catalog.ProtocolHeader[:]); err != nil {
		return &errs.Io{Cause: err}
	}

	return nil
}

// Send writes f as a complete wire frame.
func (t *Transport) Send(f *frame.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	marshaled := f.Marshal()
	if _, err := t.rw.Write(marshaled); err != nil {
		return &errs.Io{Cause: err}
	}

	if err := t.rec.Record(trace.Sent, marshaled); err != nil {
		return err
	}

	return nil
}

// Recv reads the next complete frame from the stream: a 7-byte header
// (type, channel, length), the payload, and the trailing frame-end octet.
func (t *Transport) Recv() (*frame.Frame, error) {
	var hdr [7]byte
	if _, err := io.ReadFull(t.rw, hdr[:]); err != nil {
		return nil, &errs.Io{Cause: err}
	}

	payloadLen := binary.BigEndian.Uint32(hdr[3:7])
	body := make([]byte, payloadLen+1)
	if _, err := io.ReadFull(t.rw, body); err != nil {
		return nil, &errs.Io{Cause: err}
	}

	end := body[len(body)-1]
	if end != catalog.FrameEnd {
		return nil, &errs.FrameEnd{Got: end}
	}

	if err := t.rec.Record(trace.Received, append(append([]byte{}, hdr[:]...), body...)); err != nil {
		return nil, err
	}

	return &frame.Frame{
		Type:    hdr[0],
		Channel: binary.BigEndian.Uint16(hdr[1:3]),
		Payload: body[:len(body)-1],
	}, nil
}

// Close closes the underlying stream.
func (t *Transport) Close() error {
	return t.rw.Close()
}
