package trace

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// flateCodec compresses captures with klauspost/compress's flate, pooling
// writers since a Recorder may capture many small frames in a session.
type flateCodec struct {
	writers sync.Pool
}

var _ Codec = (*flateCodec)(nil)

func newFlateCodec() *flateCodec {
	return &flateCodec{
		writers: sync.Pool{
			New: func() any {
				w, err := flate.NewWriter(io.Discard, flate.DefaultCompression)
				if err != nil {
					panic(fmt.Sprintf("trace: failed to create flate writer: %v", err))
				}

				return w
			},
		},
	}
}

func (c *flateCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer

	w, _ := c.writers.Get().(*flate.Writer)
	defer c.writers.Put(w)

	w.Reset(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("trace: flate compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("trace: flate compress: %w", err)
	}

	return buf.Bytes(), nil
}

func (c *flateCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("trace: flate decompress: %w", err)
	}

	return out, nil
}
