// Package config builds connection parameters through the same
// functional-options pattern used across this module, rather than a
// struct literal with public fields.
package config

import (
	"fmt"
	"time"

	"github.com/arloliu/amqp911/internal/options"
	"github.com/arloliu/amqp911/internal/trace"
)

// Config holds what a connection needs to dial and open a session: the
// address, SASL credentials, and the vhost. It also carries Heartbeat,
// ChannelMax and FrameMax; Connection.Open does not send them, since its
// TuneOk echoes the values from the server's Tune.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Vhost    string

	Heartbeat    time.Duration
	ChannelMax   uint16
	FrameMax     uint32
	DialTimeout  time.Duration
	LocaleWanted string

	// Trace attaches a debug frame recorder to the connection when true,
	// compressed with TraceCodec.
	Trace      bool
	TraceCodec trace.Kind
}

// Option configures a Config.
type Option = options.Option[*Config]

// Default returns the baseline configuration: localhost:5672, vhost "/",
// guest/guest, a 10s dial timeout, no channel-max limit, a 128KiB
// frame-max, and a 60s heartbeat — the same defaults the protocol's
// reference clients propose before negotiation.
func Default() *Config {
	return &Config{
		Host:         "localhost",
		Port:         5672,
		User:         "guest",
		Password:     "guest",
		Vhost:        "/",
		Heartbeat:    60 * time.Second,
		ChannelMax:   0,
		FrameMax:     131072,
		DialTimeout:  10 * time.Second,
		LocaleWanted: "en_US",
		TraceCodec:   trace.None,
	}
}

// New builds a Config from Default() plus opts, applied in order.
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// WithHostPort sets the broker address.
func WithHostPort(host string, port int) Option {
	return options.NoError[*Config](func(c *Config) {
		c.Host = host
		c.Port = port
	})
}

// WithCredentials sets the SASL PLAIN username and password.
func WithCredentials(user, password string) Option {
	return options.NoError[*Config](func(c *Config) {
		c.User = user
		c.Password = password
	})
}

// WithVhost sets the virtual host to open.
func WithVhost(vhost string) Option {
	return options.New[*Config](func(c *Config) error {
		if vhost == "" {
			return fmt.Errorf("vhost must not be empty")
		}

		c.Vhost = vhost

		return nil
	})
}

// WithHeartbeat sets Config.Heartbeat. Connection.Open does not send it:
// TuneOk echoes the heartbeat from the server's Tune.
func WithHeartbeat(d time.Duration) Option {
	return options.NoError[*Config](func(c *Config) { c.Heartbeat = d })
}

// WithChannelMax sets Config.ChannelMax. Connection.Open does not send it:
// TuneOk echoes the channel-max from the server's Tune.
func WithChannelMax(n uint16) Option {
	return options.NoError[*Config](func(c *Config) { c.ChannelMax = n })
}

// WithFrameMax sets Config.FrameMax in bytes, rejecting non-zero values
// below 4096. Connection.Open does not send it: TuneOk echoes the
// frame-max from the server's Tune.
func WithFrameMax(n uint32) Option {
	return options.New[*Config](func(c *Config) error {
		if n != 0 && n < catalogFrameMinSize {
			return fmt.Errorf("frame-max %d is below the protocol minimum %d", n, catalogFrameMinSize)
		}

		c.FrameMax = n

		return nil
	})
}

// WithDialTimeout bounds how long Dial waits for the TCP connection and
// the full handshake, when the caller's context has no deadline.
func WithDialTimeout(d time.Duration) Option {
	return options.NoError[*Config](func(c *Config) { c.DialTimeout = d })
}

// WithTrace attaches a debug frame recorder to the connection, compressing
// captured frames with the given codec. Pass trace.None for uncompressed
// capture.
func WithTrace(kind trace.Kind) Option {
	return options.NoError[*Config](func(c *Config) {
		c.Trace = true
		c.TraceCodec = kind
	})
}

// catalogFrameMinSize mirrors catalog.FrameMinSize without importing the
// catalog package, which itself has no reason to depend on config.
const catalogFrameMinSize = 4096
