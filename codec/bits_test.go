package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/amqp911/catalog"
)

// TestBitRunPacksFiveBitsIntoOneOctet verifies exchange.declare's five
// trailing Bit fields (passive, durable, auto-delete, internal, nowait)
// pack into exactly one octet immediately before the arguments table,
// the ceil(n/8) property from spec.md §8.
func TestBitRunPacksFiveBitsIntoOneOctet(t *testing.T) {
	rec := &catalog.Declare{
		Exchange:   "logs",
		Type:       "topic",
		Durable:    true,
		AutoDelete: false,
		Internal:   true,
		NoWait:     false,
		Passive:    false,
	}

	payload, err := Encode(rec)
	require.NoError(t, err)

	// header(4) + reserved-1(2) + exchange(1+4) + type(1+5) = 17 bytes
	// before the bit octet.
	bitOffset := 4 + 2 + (1 + len("logs")) + (1 + len("topic"))
	require.Greater(t, len(payload), bitOffset)

	got := payload[bitOffset]
	// bit 0 = passive(false), bit 1 = durable(true), bit 2 = auto-delete(false),
	// bit 3 = internal(true), bit 4 = nowait(false)
	require.Equal(t, byte(0b00001010), got)

	// arguments table length prefix (4 zero bytes for an empty table)
	// follows immediately after the single bit octet.
	require.Equal(t, []byte{0, 0, 0, 0}, payload[bitOffset+1:bitOffset+5])
}

// TestBitRunFlushesAtRecordEnd verifies a bit run that never meets a
// non-Bit field still gets flushed once, at the end of the record.
func TestBitRunFlushesAtRecordEnd(t *testing.T) {
	rec := &catalog.Flow{Active: true}

	payload, err := Encode(rec)
	require.NoError(t, err)

	require.Len(t, payload, 4+1)
	require.Equal(t, byte(1), payload[4])
}

// TestBitRunDecodeMirrorsEncode verifies decoding the packed octet back
// into the struct recovers each individual bit.
func TestBitRunDecodeMirrorsEncode(t *testing.T) {
	want := &catalog.Declare{
		Exchange: "amq.topic",
		Type:     "topic",
		Durable:  true,
		NoWait:   true,
	}

	payload, err := Encode(want)
	require.NoError(t, err)

	got := &catalog.Declare{}
	require.NoError(t, Decode(payload, got))
	require.Equal(t, want, got)
}
