package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/amqp911/catalog"
)

// TestCatalogRoundTrips verifies spec.md §8's round-trip property for
// every method record in the catalog: decode(encode(m)) == m, starting
// from each record's zero value.
func TestCatalogRoundTrips(t *testing.T) {
	for _, d := range catalog.All() {
		d := d
		t.Run(d.Name, func(t *testing.T) {
			rec := d.New()

			payload, err := Encode(rec)
			require.NoError(t, err)

			classID, methodID, err := PeekHeader(payload)
			require.NoError(t, err)
			require.Equal(t, d.ClassID, classID)
			require.Equal(t, d.MethodID, methodID)

			got := d.New()
			require.NoError(t, Decode(payload, got))
			require.Equal(t, rec, got)
		})
	}
}

// TestTuneOkEncodesThreeShortLongShort verifies connection.tune-ok's
// fixed 8-byte body (channel-max, frame-max, heartbeat) beyond the
// 4-byte class/method header.
func TestTuneOkEncodesThreeShortLongShort(t *testing.T) {
	rec := &catalog.TuneOk{ChannelMax: 2047, FrameMax: 131072, Heartbeat: 60}

	payload, err := Encode(rec)
	require.NoError(t, err)
	require.Len(t, payload, 4+2+4+2)

	got := &catalog.TuneOk{}
	require.NoError(t, Decode(payload, got))
	require.Equal(t, rec, got)
}

// TestStartOkEncodesResponseBody verifies the PLAIN SASL response body
// shape: \0user\0password as a long-string byte vector.
func TestStartOkEncodesResponseBody(t *testing.T) {
	rec := &catalog.StartOk{
		Mechanism: "PLAIN",
		Response:  []byte("\x00guest\x00guest"),
		Locale:    "en_US",
	}

	payload, err := Encode(rec)
	require.NoError(t, err)

	got := &catalog.StartOk{}
	require.NoError(t, Decode(payload, got))
	require.Equal(t, rec.Response, got.Response)
	require.Equal(t, rec.Mechanism, got.Mechanism)
}
