package trace

import "github.com/valyala/gozstd"

// zstdCodec compresses captures with valyala/gozstd's cgo zstd bindings,
// trading compression speed for the higher ratio worth paying for when
// capturing a long-running handshake trace.
type zstdCodec struct{}

var _ Codec = zstdCodec{}

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

func (zstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
