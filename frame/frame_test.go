package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/errs"
)

// TestWrapUnwrapRoundTrip verifies Wrap/Unwrap preserve a method record
// through the frame envelope.
func TestWrapUnwrapRoundTrip(t *testing.T) {
	rec := &catalog.TuneOk{ChannelMax: 100, FrameMax: 4096, Heartbeat: 30}

	f, err := Wrap(0, rec)
	require.NoError(t, err)
	require.Equal(t, catalog.FrameMethod, int(f.Type))
	require.Equal(t, uint16(0), f.Channel)

	got := &catalog.TuneOk{}
	require.NoError(t, Unwrap(f, got))
	require.Equal(t, rec, got)
}

// TestUnwrapRejectsMismatchedMethod verifies a frame carrying one method
// cannot be unwrapped into a record of a different method.
func TestUnwrapRejectsMismatchedMethod(t *testing.T) {
	f, err := Wrap(0, &catalog.Start{})
	require.NoError(t, err)

	err = Unwrap(f, &catalog.CloseOk{})
	require.Error(t, err)
}

// TestMarshalUnmarshalRoundTrip verifies the complete wire encoding
// (type, channel, length, payload, frame-end) survives a round trip.
func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	f, err := Wrap(5, &catalog.OpenOk{})
	require.NoError(t, err)

	b := f.Marshal()
	require.Equal(t, byte(0xCE), b[len(b)-1])

	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, f.Type, got.Type)
	require.Equal(t, f.Channel, got.Channel)
	require.Equal(t, f.Payload, got.Payload)
}

// TestUnmarshalRejectsBadFrameEnd verifies a corrupted trailing octet is
// reported as errs.FrameEnd.
func TestUnmarshalRejectsBadFrameEnd(t *testing.T) {
	f, err := Wrap(0, &catalog.CloseOk{})
	require.NoError(t, err)

	b := f.Marshal()
	b[len(b)-1] = 0xCD

	_, err = Unmarshal(b)
	require.Error(t, err)

	var endErr *errs.FrameEnd
	require.ErrorAs(t, err, &endErr)
	require.Equal(t, byte(0xCD), endErr.Got)
}
