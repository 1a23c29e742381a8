package transport

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/frame"
)

// TestSendRecvRoundTrip verifies a frame written by one end of a pipe is
// read back intact on the other end.
func TestSendRecvRoundTrip(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	clientTx := New(client)
	serverTx := New(server)

	rec := &catalog.TuneOk{ChannelMax: 10, FrameMax: 8192, Heartbeat: 15}
	f, err := frame.Wrap(0, rec)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- clientTx.Send(f) }()

	got, err := serverTx.Recv()
	require.NoError(t, err)
	require.NoError(t, <-done)

	require.Equal(t, f.Type, got.Type)
	require.Equal(t, f.Channel, got.Channel)
	require.Equal(t, f.Payload, got.Payload)
}

// TestProtocolHeaderIsSentFirst verifies SendProtocolHeader writes
// exactly the 8-byte AMQP identification sequence.
func TestProtocolHeaderIsSentFirst(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	clientTx := New(client)

	done := make(chan error, 1)
	go func() { done <- clientTx.SendProtocolHeader() }()

	buf := make([]byte, 8)
	_, err := server.Read(buf)
	require.NoError(t, err)
	require.NoError(t, <-done)

	require.Equal(t, catalog.ProtocolHeader[:], buf)
}
