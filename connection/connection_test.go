package connection

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/config"
	"github.com/arloliu/amqp911/frame"
	"github.com/arloliu/amqp911/transport"
)

// serverHandshake plays the broker side of the happy-path handshake over
// a net.Pipe, far enough to drive Connection.Open/Close through every
// state transition in spec.md §4.6.
func serverHandshake(t *testing.T, conn net.Conn) {
	t.Helper()

	tx := transport.New(conn)

	hdr := make([]byte, 8)
	_, err := conn.Read(hdr)
	require.NoError(t, err)

	startF, err := frame.Wrap(0, &catalog.Start{VersionMajor: 0, VersionMinor: 9})
	require.NoError(t, err)
	require.NoError(t, tx.Send(startF))

	startOkF, err := tx.Recv()
	require.NoError(t, err)
	require.NoError(t, frame.Unwrap(startOkF, &catalog.StartOk{}))

	tuneF, err := frame.Wrap(0, &catalog.Tune{ChannelMax: 0, FrameMax: 131072, Heartbeat: 60})
	require.NoError(t, err)
	require.NoError(t, tx.Send(tuneF))

	tuneOkF, err := tx.Recv()
	require.NoError(t, err)
	require.NoError(t, frame.Unwrap(tuneOkF, &catalog.TuneOk{}))

	openF, err := tx.Recv()
	require.NoError(t, err)
	gotOpen := &catalog.Open{}
	require.NoError(t, frame.Unwrap(openF, gotOpen))
	require.Equal(t, "/", gotOpen.VirtualHost)

	openOkF, err := frame.Wrap(0, &catalog.OpenOk{})
	require.NoError(t, err)
	require.NoError(t, tx.Send(openOkF))

	closeF, err := tx.Recv()
	require.NoError(t, err)
	require.NoError(t, frame.Unwrap(closeF, &catalog.Close{}))

	closeOkF, err := frame.Wrap(0, &catalog.CloseOk{})
	require.NoError(t, err)
	require.NoError(t, tx.Send(closeOkF))
}

// TestOpenThenCloseHappyPath verifies Open walks every state from INIT
// to READY and Close walks READY to CLOSED, over a simulated broker.
func TestOpenThenCloseHappyPath(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		serverHandshake(t, server)
	}()

	cfg, err := config.New(config.WithCredentials("guest", "guest"), config.WithVhost("/"))
	require.NoError(t, err)

	conn, err := New(client, cfg)
	require.NoError(t, err)
	require.NoError(t, conn.Open(context.Background()))
	require.Equal(t, Ready, conn.State())

	require.NoError(t, conn.Close(context.Background()))
	require.Equal(t, Closed, conn.State())

	<-serverDone
}

// TestOpenRejectsUnexpectedMethod verifies an out-of-sequence method
// (here, a second Start received where Tune is expected) surfaces as an
// error rather than silently advancing the state machine.
func TestOpenRejectsUnexpectedMethod(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		tx := transport.New(server)

		hdr := make([]byte, 8)
		_, _ = server.Read(hdr)

		startF, _ := frame.Wrap(0, &catalog.Start{})
		_ = tx.Send(startF)

		_, _ = tx.Recv() // StartOk

		// Send another Start instead of Tune: violates the expected sequence.
		wrongF, _ := frame.Wrap(0, &catalog.Start{})
		_ = tx.Send(wrongF)
	}()

	cfg, err := config.New()
	require.NoError(t, err)

	conn, err := New(client, cfg)
	require.NoError(t, err)
	err = conn.Open(context.Background())
	require.Error(t, err)
}
