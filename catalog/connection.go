package catalog

import (
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/wire"
)

// Start is connection.start (10,10), sent by the server to open a session
// and announce the protocol version and available SASL mechanisms.
type Start struct {
	VersionMajor     uint8
	VersionMinor     uint8
	ServerProperties wire.Table
	Mechanisms       []byte
	Locales          []byte
}

func (m *Start) ClassID() uint16  { return ClassConnection }
func (m *Start) MethodID() uint16 { return 10 }

func (m *Start) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "version-major", Type: method.Octet,
			Get: func() any { return m.VersionMajor },
			Set: func(v any) error { return setUint8(&m.VersionMajor, v) }},
		{Name: "version-minor", Type: method.Octet,
			Get: func() any { return m.VersionMinor },
			Set: func(v any) error { return setUint8(&m.VersionMinor, v) }},
		{Name: "server-properties", Type: method.Table,
			Get: func() any { return m.ServerProperties },
			Set: func(v any) error { return setTable(&m.ServerProperties, v) }},
		{Name: "mechanisms", Type: method.Longstr,
			Get: func() any { return m.Mechanisms },
			Set: func(v any) error { return setBytes(&m.Mechanisms, v) }},
		{Name: "locales", Type: method.Longstr,
			Get: func() any { return m.Locales },
			Set: func(v any) error { return setBytes(&m.Locales, v) }},
	}
}

// StartOk is connection.start-ok (10,11), the client's reply choosing a
// SASL mechanism and supplying its authentication response.
type StartOk struct {
	ClientProperties wire.Table
	Mechanism        string
	Response         []byte
	Locale           string
}

func (m *StartOk) ClassID() uint16  { return ClassConnection }
func (m *StartOk) MethodID() uint16 { return 11 }

func (m *StartOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "client-properties", Type: method.Table,
			Get: func() any { return m.ClientProperties },
			Set: func(v any) error { return setTable(&m.ClientProperties, v) }},
		{Name: "mechanism", Type: method.Shortstr,
			Get: func() any { return m.Mechanism },
			Set: func(v any) error { return setString(&m.Mechanism, v) }},
		{Name: "response", Type: method.Longstr,
			Get: func() any { return m.Response },
			Set: func(v any) error { return setBytes(&m.Response, v) }},
		{Name: "locale", Type: method.Shortstr,
			Get: func() any { return m.Locale },
			Set: func(v any) error { return setString(&m.Locale, v) }},
	}
}

// Secure is connection.secure (10,20), an additional SASL challenge from
// the server.
type Secure struct {
	Challenge []byte
}

func (m *Secure) ClassID() uint16  { return ClassConnection }
func (m *Secure) MethodID() uint16 { return 20 }

func (m *Secure) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "challenge", Type: method.Longstr,
			Get: func() any { return m.Challenge },
			Set: func(v any) error { return setBytes(&m.Challenge, v) }},
	}
}

// SecureOk is connection.secure-ok (10,21), the client's response to a
// Secure challenge.
type SecureOk struct {
	Response []byte
}

func (m *SecureOk) ClassID() uint16  { return ClassConnection }
func (m *SecureOk) MethodID() uint16 { return 21 }

func (m *SecureOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "response", Type: method.Longstr,
			Get: func() any { return m.Response },
			Set: func(v any) error { return setBytes(&m.Response, v) }},
	}
}

// Tune is connection.tune (10,30), the server's proposal for channel-max,
// frame-max, and heartbeat.
type Tune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (m *Tune) ClassID() uint16  { return ClassConnection }
func (m *Tune) MethodID() uint16 { return 30 }

func (m *Tune) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "channel-max", Type: method.Short,
			Get: func() any { return m.ChannelMax },
			Set: func(v any) error { return setUint16(&m.ChannelMax, v) }},
		{Name: "frame-max", Type: method.Long,
			Get: func() any { return m.FrameMax },
			Set: func(v any) error { return setUint32(&m.FrameMax, v) }},
		{Name: "heartbeat", Type: method.Short,
			Get: func() any { return m.Heartbeat },
			Set: func(v any) error { return setUint16(&m.Heartbeat, v) }},
	}
}

// TuneOk is connection.tune-ok (10,31), the client's accepted negotiation
// of channel-max, frame-max, and heartbeat.
type TuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (m *TuneOk) ClassID() uint16  { return ClassConnection }
func (m *TuneOk) MethodID() uint16 { return 31 }

func (m *TuneOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "channel-max", Type: method.Short,
			Get: func() any { return m.ChannelMax },
			Set: func(v any) error { return setUint16(&m.ChannelMax, v) }},
		{Name: "frame-max", Type: method.Long,
			Get: func() any { return m.FrameMax },
			Set: func(v any) error { return setUint32(&m.FrameMax, v) }},
		{Name: "heartbeat", Type: method.Short,
			Get: func() any { return m.Heartbeat },
			Set: func(v any) error { return setUint16(&m.Heartbeat, v) }},
	}
}

// Open is connection.open (10,40). Capabilities and Insist are reserved
// fields kept only so the wire shape round-trips; the client always sends
// them zero-valued.
type Open struct {
	VirtualHost  string
	Capabilities string
	Insist       bool
}

func (m *Open) ClassID() uint16  { return ClassConnection }
func (m *Open) MethodID() uint16 { return 40 }

func (m *Open) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "virtual-host", Type: method.Shortstr,
			Get: func() any { return m.VirtualHost },
			Set: func(v any) error { return setString(&m.VirtualHost, v) }},
		{Name: "capabilities", Type: method.Shortstr,
			Get: func() any { return m.Capabilities },
			Set: func(v any) error { return setString(&m.Capabilities, v) }},
		{Name: "insist", Type: method.Bit,
			Get: func() any { return m.Insist },
			Set: func(v any) error { return setBool(&m.Insist, v) }},
	}
}

// OpenOk is connection.open-ok (10,41). KnownHosts is reserved.
type OpenOk struct {
	KnownHosts string
}

func (m *OpenOk) ClassID() uint16  { return ClassConnection }
func (m *OpenOk) MethodID() uint16 { return 41 }

func (m *OpenOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "known-hosts", Type: method.Shortstr,
			Get: func() any { return m.KnownHosts },
			Set: func(v any) error { return setString(&m.KnownHosts, v) }},
	}
}

// Close is connection.close (10,50), a request to close the connection
// cleanly or to report a fatal protocol error.
type Close struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (m *Close) ClassID() uint16  { return ClassConnection }
func (m *Close) MethodID() uint16 { return 50 }

func (m *Close) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reply-code", Type: method.Short,
			Get: func() any { return m.ReplyCode },
			Set: func(v any) error { return setUint16(&m.ReplyCode, v) }},
		{Name: "reply-text", Type: method.Shortstr,
			Get: func() any { return m.ReplyText },
			Set: func(v any) error { return setString(&m.ReplyText, v) }},
		{Name: "class-id", Type: method.Short,
			Get: func() any { return m.ClassID_ },
			Set: func(v any) error { return setUint16(&m.ClassID_, v) }},
		{Name: "method-id", Type: method.Short,
			Get: func() any { return m.MethodID_ },
			Set: func(v any) error { return setUint16(&m.MethodID_, v) }},
	}
}

// CloseOk is connection.close-ok (10,51), the acknowledgement that ends
// the close handshake. It carries no fields.
type CloseOk struct{}

func (m *CloseOk) ClassID() uint16           { return ClassConnection }
func (m *CloseOk) MethodID() uint16          { return 51 }
func (m *CloseOk) Fields() []method.FieldSpec { return nil }

// Blocked is connection.blocked (10,60), a server notification that
// publishing should pause (typically due to a resource alarm).
type Blocked struct {
	Reason string
}

func (m *Blocked) ClassID() uint16  { return ClassConnection }
func (m *Blocked) MethodID() uint16 { return 60 }

func (m *Blocked) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reason", Type: method.Shortstr,
			Get: func() any { return m.Reason },
			Set: func(v any) error { return setString(&m.Reason, v) }},
	}
}

// Unblocked is connection.unblocked (10,61), the matching all-clear for
// Blocked. It carries no fields.
type Unblocked struct{}

func (m *Unblocked) ClassID() uint16            { return ClassConnection }
func (m *Unblocked) MethodID() uint16           { return 61 }
func (m *Unblocked) Fields() []method.FieldSpec { return nil }
