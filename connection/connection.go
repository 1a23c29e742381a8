// Package connection drives the client half of the AMQP 0-9-1 connection
// open and close dialogue: protocol header, Start/StartOk, Tune/TuneOk,
// Open/OpenOk, and the graceful Close/CloseOk exchange.
package connection

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/arloliu/amqp911/catalog"
	"github.com/arloliu/amqp911/config"
	"github.com/arloliu/amqp911/frame"
	"github.com/arloliu/amqp911/internal/trace"
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/transport"
	"github.com/arloliu/amqp911/wire"
)

// State is a step in the handshake, in the order §4.6 defines them.
type State uint8

const (
	Init State = iota
	HdrSent
	StartRecvd
	StartOkSent
	TuneRecvd
	TuneOkSent
	OpenSent
	OpenOkRecvd
	Ready
	CloseSent
	CloseOkRecvd
	Closed
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case HdrSent:
		return "HDR_SENT"
	case StartRecvd:
		return "START_RECVD"
	case StartOkSent:
		return "START_OK_SENT"
	case TuneRecvd:
		return "TUNE_RECVD"
	case TuneOkSent:
		return "TUNE_OK_SENT"
	case OpenSent:
		return "OPEN_SENT"
	case OpenOkRecvd:
		return "OPEN_OK_RECVD"
	case Ready:
		return "READY"
	case CloseSent:
		return "CLOSE_SENT"
	case CloseOkRecvd:
		return "CLOSE_OK_RECVD"
	case Closed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// TuneParams is the negotiated channel-max/frame-max/heartbeat triple,
// cached off connection.Tune and echoed back verbatim in TuneOk.
type TuneParams struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

// channelZero is the reserved control channel every handshake method
// travels on.
const channelZero = 0

// Connection drives one handshake over a single duplex stream. It is not
// safe for concurrent use: spec.md's concurrency model assigns it a
// single driving goroutine.
type Connection struct {
	cfg   *config.Config
	tx    *transport.Transport
	conn  net.Conn // non-nil whenever the stream implements net.Conn (net.Pipe ends included); nil otherwise, and then deadlines are not applied
	state State

	ServerProperties wire.Table
	Mechanisms       string
	Locales          string
	Tuned            TuneParams

	// Trace is the debug frame recorder, non-nil only when cfg.Trace was
	// set; its Dump method replays every frame the handshake exchanged.
	Trace *trace.Recorder
}

// New wraps rw (already connected) in a Connection ready for Open. If rw
// also implements net.Conn, ctx deadlines passed to Open/Close are
// propagated via SetDeadline; otherwise they are ignored and the caller
// is responsible for cancellation. Returns an error only if cfg requests
// an unsupported trace codec.
func New(rw io.ReadWriteCloser, cfg *config.Config) (*Connection, error) {
	c := &Connection{
		cfg:   cfg,
		state: Init,
	}

	var txOpts []transport.Option
	if cfg.Trace {
		rec, err := trace.NewRecorder(trace.WithCompression(cfg.TraceCodec))
		if err != nil {
			return nil, fmt.Errorf("connection: %w", err)
		}

		c.Trace = rec
		txOpts = append(txOpts, transport.WithRecorder(rec))
	}

	c.tx = transport.New(rw, txOpts...)
	if nc, ok := rw.(net.Conn); ok {
		c.conn = nc
	}

	return c, nil
}

func (c *Connection) applyDeadline(ctx context.Context) {
	if c.conn == nil {
		return
	}

	if dl, ok := ctx.Deadline(); ok {
		_ = c.conn.SetDeadline(dl)
	} else {
		_ = c.conn.SetDeadline(time.Time{})
	}
}

func (c *Connection) send(ctx context.Context, rec method.Record) error {
	c.applyDeadline(ctx)

	f, err := frame.Wrap(channelZero, rec)
	if err != nil {
		return err
	}

	return c.tx.Send(f)
}

func (c *Connection) recv(ctx context.Context, rec method.Record) error {
	c.applyDeadline(ctx)

	f, err := c.tx.Recv()
	if err != nil {
		return err
	}

	return frame.Unwrap(f, rec)
}

// Open runs transitions 1-7 of spec.md §4.6 in order: protocol header,
// Start/StartOk, Tune/TuneOk, Open/OpenOk. It returns as soon as the
// connection reaches READY, or the first error encountered, leaving the
// connection in whatever state it failed at (spec.md §4.6: "a failed
// handshake produces an unusable connection").
func (c *Connection) Open(ctx context.Context) error {
	if c.state != Init {
		return fmt.Errorf("connection: Open called in state %s, want %s", c.state, Init)
	}

	c.applyDeadline(ctx)
	if err := c.tx.SendProtocolHeader(); err != nil {
		return err
	}

	c.state = HdrSent

	start := &catalog.Start{}
	if err := c.recv(ctx, start); err != nil {
		return err
	}

	c.ServerProperties = start.ServerProperties
	c.Mechanisms = string(start.Mechanisms)
	c.Locales = string(start.Locales)
	c.state = StartRecvd

	startOk := &catalog.StartOk{
		ClientProperties: clientProperties(),
		Mechanism:        "PLAIN",
		Response:         plainResponse(c.cfg.User, c.cfg.Password),
		Locale:           c.cfg.LocaleWanted,
	}
	if err := c.send(ctx, startOk); err != nil {
		return err
	}

	c.state = StartOkSent

	tune := &catalog.Tune{}
	if err := c.recv(ctx, tune); err != nil {
		return err
	}

	c.Tuned = TuneParams{ChannelMax: tune.ChannelMax, FrameMax: tune.FrameMax, Heartbeat: tune.Heartbeat}
	c.state = TuneRecvd

	tuneOk := &catalog.TuneOk{
		ChannelMax: tune.ChannelMax,
		FrameMax:   tune.FrameMax,
		Heartbeat:  tune.Heartbeat,
	}
	if err := c.send(ctx, tuneOk); err != nil {
		return err
	}

	c.state = TuneOkSent

	open := &catalog.Open{VirtualHost: c.cfg.Vhost}
	if err := c.send(ctx, open); err != nil {
		return err
	}

	c.state = OpenSent

	openOk := &catalog.OpenOk{}
	if err := c.recv(ctx, openOk); err != nil {
		return err
	}

	c.state = OpenOkRecvd
	c.state = Ready

	return nil
}

// Close runs the graceful close dialogue from READY: send
// connection.Close{200,"OK"}, receive connection.CloseOk, then shut the
// transport down in both directions.
func (c *Connection) Close(ctx context.Context) error {
	if c.state != Ready {
		return fmt.Errorf("connection: Close called in state %s, want %s", c.state, Ready)
	}

	closeMethod := &catalog.Close{ReplyCode: catalog.ReplySuccess, ReplyText: "OK"}
	if err := c.send(ctx, closeMethod); err != nil {
		return err
	}

	c.state = CloseSent

	closeOk := &catalog.CloseOk{}
	if err := c.recv(ctx, closeOk); err != nil {
		return err
	}

	c.state = CloseOkRecvd
	c.state = Closed

	return c.tx.Close()
}

// State reports the connection's current handshake state.
func (c *Connection) State() State { return c.state }

func plainResponse(user, password string) []byte {
	b := make([]byte, 0, len(user)+len(password)+2)
	b = append(b, 0)
	b = append(b, user...)
	b = append(b, 0)
	b = append(b, password...)

	return b
}

// clientProperties builds the client-properties table StartOk advertises,
// including the capabilities sub-table spec.md §4.6 step 3 requires.
func clientProperties() wire.Table {
	var caps wire.Table
	caps.Set("publisher_confirms", wire.NewBool(true))
	caps.Set("consumer_cancel_notify", wire.NewBool(true))
	caps.Set("exchange_exchange_bindings", wire.NewBool(true))
	caps.Set("basic.nack", wire.NewBool(true))
	caps.Set("connection.blocked", wire.NewBool(true))
	caps.Set("authentication_failure_close", wire.NewBool(true))

	var props wire.Table
	props.Set("product", wire.NewLongString([]byte("amqp911")))
	props.Set("platform", wire.NewLongString([]byte("Go")))
	props.Set("version", wire.NewLongString([]byte("0.1.0")))
	props.Set("information", wire.NewLongString([]byte("github.com/arloliu/amqp911")))
	props.Set("capabilities", wire.NewTable(caps))

	return props
}
