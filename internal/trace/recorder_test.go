package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRecorderDumpRoundTripsEachCodec verifies every codec kind compresses
// and decompresses captured frame bytes without loss.
func TestRecorderDumpRoundTripsEachCodec(t *testing.T) {
	for _, kind := range []Kind{None, Flate, LZ4, Zstd} {
		t.Run(kind.String(), func(t *testing.T) {
			rec, err := NewRecorder(WithCompression(kind))
			require.NoError(t, err)

			frame1 := []byte("connection.start method frame payload bytes")
			frame2 := bytes.Repeat([]byte{0xAB}, 4096)

			require.NoError(t, rec.Record(Sent, frame1))
			require.NoError(t, rec.Record(Received, frame2))
			require.Equal(t, 2, rec.Len())

			var buf bytes.Buffer
			require.NoError(t, rec.Dump(&buf))

			out := buf.String()
			require.Equal(t, 2, strings.Count(out, "\n"))
			require.Contains(t, out, "sent")
			require.Contains(t, out, "recv")
		})
	}
}

// TestNilRecorderIsNoOp verifies a nil *Recorder (the default when tracing
// is disabled) tolerates every method without panicking.
func TestNilRecorderIsNoOp(t *testing.T) {
	var rec *Recorder

	require.NoError(t, rec.Record(Sent, []byte("x")))
	require.Equal(t, 0, rec.Len())
	require.NoError(t, rec.Dump(&bytes.Buffer{}))
}

// TestNewCodecRejectsUnknownKind verifies an out-of-range Kind is reported
// rather than silently falling back to None.
func TestNewCodecRejectsUnknownKind(t *testing.T) {
	_, err := NewCodec(Kind(99))
	require.Error(t, err)
}
