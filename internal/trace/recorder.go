package trace

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Direction marks which side of the wire a captured frame crossed.
type Direction uint8

const (
	Sent Direction = iota
	Received
)

func (d Direction) String() string {
	if d == Sent {
		return "sent"
	}

	return "recv"
}

// entry is one captured frame, stored compressed per the Recorder's Codec.
type entry struct {
	dir  Direction
	at   time.Time
	raw  []byte // compressed
	size int    // original, uncompressed length
}

// Recorder captures raw frame bytes crossing a Connection for offline
// inspection, compressing each entry with the configured Codec. It plays no
// part in the handshake itself; a nil *Recorder is safe to call methods on
// and every method becomes a no-op, so callers can wire it in unconditionally.
type Recorder struct {
	mu      sync.Mutex
	codec   Codec
	kind    Kind
	entries []entry
}

// Option configures a Recorder built by NewRecorder.
type Option func(*Recorder)

// WithCompression selects the Codec used to compress captured frame bytes.
func WithCompression(kind Kind) Option {
	return func(r *Recorder) {
		r.kind = kind
	}
}

// NewRecorder builds a Recorder. With no options it captures frames
// uncompressed.
func NewRecorder(opts ...Option) (*Recorder, error) {
	r := &Recorder{kind: None}
	for _, opt := range opts {
		opt(r)
	}

	codec, err := NewCodec(r.kind)
	if err != nil {
		return nil, err
	}
	r.codec = codec

	return r, nil
}

// Record compresses and stores frameBytes under the given direction.
func (r *Recorder) Record(dir Direction, frameBytes []byte) error {
	if r == nil {
		return nil
	}

	compressed, err := r.codec.Compress(frameBytes)
	if err != nil {
		return fmt.Errorf("trace: record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry{
		dir:  dir,
		at:   time.Now(),
		raw:  compressed,
		size: len(frameBytes),
	})

	return nil
}

// Len reports how many frames have been captured.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Dump writes a plain-text summary of every captured frame to w, one line
// per entry, decompressing each with the Recorder's Codec. It leaves actual
// structured logging to the embedding application.
func (r *Recorder) Dump(w io.Writer) error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()

	for i, e := range entries {
		raw, err := r.codec.Decompress(e.raw)
		if err != nil {
			return fmt.Errorf("trace: dump entry %d: %w", i, err)
		}

		if _, err := fmt.Fprintf(w, "%s [%s] %d bytes (%s, %d compressed)\n",
			e.at.Format(time.RFC3339Nano), e.dir, e.size, r.kind, len(e.raw)); err != nil {
			return err
		}

		if len(raw) != e.size {
			return fmt.Errorf("trace: dump entry %d: decompressed %d bytes, want %d", i, len(raw), e.size)
		}
	}

	return nil
}
