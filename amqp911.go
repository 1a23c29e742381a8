// Package amqp911 provides a minimal AMQP 0-9-1 client core: a byte-exact
// wire codec for method frames and field tables, and the client-side
// connection handshake state machine.
//
// # Core Features
//
//   - Byte-exact field-table value model (18 tagged variants) with
//     recursive tables and arrays
//   - Bit-packed boolean runs, matching the protocol's per-octet packing
//   - Context-sensitive short/long string framing
//   - A read-only method catalog covering connection, channel, exchange,
//     queue, basic, and tx classes
//   - A synchronous connection handshake driver with context-based
//     deadline propagation
//
// # Basic Usage
//
// Dialing a broker and completing the handshake:
//
//	import "github.com/arloliu/amqp911"
//
//	conn, err := amqp911.Dial(context.Background(), "localhost:5672",
//	    amqp911.WithCredentials("guest", "guest"),
//	    amqp911.WithVhost("/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close(context.Background())
//
// # Package Structure
//
// This package is a thin convenience wrapper around connection, config,
// transport, frame, codec, and catalog. For fine-grained control — a
// custom byte stream, a non-default method catalog, or direct codec
// access — use those packages directly.
package amqp911

import (
	"context"
	"fmt"
	"net"

	"github.com/arloliu/amqp911/config"
	"github.com/arloliu/amqp911/connection"
	"github.com/arloliu/amqp911/internal/trace"
)

// TraceCodec selects the compression an attached debug frame recorder uses.
type TraceCodec = trace.Kind

// Debug frame recorder codecs, passed to WithTrace.
const (
	TraceNone  = trace.None
	TraceFlate = trace.Flate
	TraceLZ4   = trace.LZ4
	TraceZstd  = trace.Zstd
)

// Option configures a Dial call. It is an alias so callers never need to
// import the config package just to call With* functions.
type Option = config.Option

// WithCredentials sets the SASL PLAIN username and password for Dial.
var WithCredentials = config.WithCredentials

// WithVhost sets the virtual host Dial opens.
var WithVhost = config.WithVhost

// WithHeartbeat sets Config.Heartbeat. The handshake does not send it; its
// TuneOk echoes the server's Tune.
var WithHeartbeat = config.WithHeartbeat

// WithChannelMax sets Config.ChannelMax. The handshake does not send it;
// its TuneOk echoes the server's Tune.
var WithChannelMax = config.WithChannelMax

// WithFrameMax sets Config.FrameMax. The handshake does not send it; its
// TuneOk echoes the server's Tune.
var WithFrameMax = config.WithFrameMax

// WithDialTimeout bounds how long Dial waits for the TCP connection and
// handshake to complete.
var WithDialTimeout = config.WithDialTimeout

// WithTrace attaches a debug frame recorder to the Connection, compressed
// with the given trace.Kind codec. The resulting Connection's Trace field
// can be dumped for offline inspection once the handshake completes.
var WithTrace = config.WithTrace

// Dial connects to addr (host:port), runs the full connection handshake
// (protocol header through connection.OpenOk), and returns a ready
// Connection. ctx governs the handshake only; it is not retained. addr
// is the actual TCP target; config.WithHostPort only matters to callers
// building a Config directly for connection.New over their own stream.
func Dial(ctx context.Context, addr string, opts ...Option) (*connection.Connection, error) {
	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	dialCtx := ctx
	var cancel context.CancelFunc
	if _, ok := dialCtx.Deadline(); !ok && cfg.DialTimeout > 0 {
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	var d net.Dialer

	netConn, err := d.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("amqp911: dial %s: %w", addr, err)
	}

	conn, err := connection.New(netConn, cfg)
	if err != nil {
		_ = netConn.Close()

		return nil, fmt.Errorf("amqp911: %w", err)
	}

	if err := conn.Open(dialCtx); err != nil {
		_ = netConn.Close()

		return nil, fmt.Errorf("amqp911: handshake: %w", err)
	}

	return conn, nil
}
