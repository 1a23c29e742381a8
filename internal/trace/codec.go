// Package trace provides an optional, compressed frame recorder used while
// developing and debugging the connection handshake. It has no part in the
// wire protocol itself: the core codec never compresses method payloads.
package trace

import "fmt"

// Codec compresses and decompresses captured frame bytes for a Recorder.
//
// Compress and Decompress are independent so a Recorder can be built with
// write-only capture (discarding the codec after Dump) without ever
// exercising the decompression path.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Kind selects which Codec implementation a Recorder uses.
type Kind uint8

const (
	// None captures frame bytes verbatim.
	None Kind = iota
	// Flate compresses captures with klauspost/compress's flate implementation.
	Flate
	// LZ4 compresses captures with pierrec/lz4, favoring fast decompression.
	LZ4
	// Zstd compresses captures with valyala/gozstd's cgo zstd bindings,
	// favoring ratio over speed for long-running traces.
	Zstd
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Flate:
		return "Flate"
	case LZ4:
		return "LZ4"
	case Zstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// NewCodec builds the Codec for the given Kind.
func NewCodec(kind Kind) (Codec, error) {
	switch kind {
	case None:
		return noopCodec{}, nil
	case Flate:
		return newFlateCodec(), nil
	case LZ4:
		return lz4Codec{}, nil
	case Zstd:
		return zstdCodec{}, nil
	default:
		return nil, fmt.Errorf("trace: unsupported codec kind %d", kind)
	}
}
