package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/errs"
)

// TestShortStringOverLimitRejected verifies the encoder enforces the
// 255-byte short-string budget.
func TestShortStringOverLimitRejected(t *testing.T) {
	rec := &catalog.Open{VirtualHost: strings.Repeat("a", 256)}

	_, err := Encode(rec)
	require.Error(t, err)

	var tooLong *errs.ShortStrTooLong
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, 256, tooLong.N)
}

// TestShortStringExactLimitAccepted verifies a 255-byte short string is
// the boundary, not an off-by-one failure.
func TestShortStringExactLimitAccepted(t *testing.T) {
	rec := &catalog.Open{VirtualHost: strings.Repeat("b", 255)}

	payload, err := Encode(rec)
	require.NoError(t, err)

	got := &catalog.Open{}
	require.NoError(t, Decode(payload, got))
	require.Equal(t, rec.VirtualHost, got.VirtualHost)
}

// TestLongStringNotReversed verifies long-string bytes are stored and
// recovered in their natural (non-reversed) order, resolving spec.md
// §9's open question.
func TestLongStringNotReversed(t *testing.T) {
	want := []byte("forward-not-reversed")
	rec := &catalog.Secure{Challenge: want}

	payload, err := Encode(rec)
	require.NoError(t, err)

	got := &catalog.Secure{}
	require.NoError(t, Decode(payload, got))
	require.Equal(t, want, got.Challenge)
}

// TestInvalidUTF8ShortStringRejected verifies a malformed UTF-8 short
// string surfaces as errs.Utf8 during decode.
func TestInvalidUTF8ShortStringRejected(t *testing.T) {
	// Hand-build a payload: class/method header + 1-byte length + invalid bytes.
	payload := []byte{0, 10, 0, 40, 2, 0xff, 0xfe}

	got := &catalog.Open{}
	err := Decode(payload, got)
	require.Error(t, err)

	var utf8Err *errs.Utf8
	require.ErrorAs(t, err, &utf8Err)
}
