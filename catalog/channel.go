package catalog

import "github.com/arloliu/amqp911/method"

// Open20 is channel.open (20,10). Reserved1 is the legacy out-of-band
// parameter, always sent empty.
type Open20 struct {
	Reserved1 string
}

func (m *Open20) ClassID() uint16  { return ClassChannel }
func (m *Open20) MethodID() uint16 { return 10 }

func (m *Open20) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Shortstr,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setString(&m.Reserved1, v) }},
	}
}

// OpenOk20 is channel.open-ok (20,11). Reserved1 is the legacy channel-id,
// always sent empty.
type OpenOk20 struct {
	Reserved1 []byte
}

func (m *OpenOk20) ClassID() uint16  { return ClassChannel }
func (m *OpenOk20) MethodID() uint16 { return 11 }

func (m *OpenOk20) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Longstr,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setBytes(&m.Reserved1, v) }},
	}
}

// Flow is channel.flow (20,20), asking the peer to start or stop sending
// content.
type Flow struct {
	Active bool
}

func (m *Flow) ClassID() uint16  { return ClassChannel }
func (m *Flow) MethodID() uint16 { return 20 }

func (m *Flow) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "active", Type: method.Bit,
			Get: func() any { return m.Active },
			Set: func(v any) error { return setBool(&m.Active, v) }},
	}
}

// FlowOk is channel.flow-ok (20,21), confirming the requested flow state.
type FlowOk struct {
	Active bool
}

func (m *FlowOk) ClassID() uint16  { return ClassChannel }
func (m *FlowOk) MethodID() uint16 { return 21 }

func (m *FlowOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "active", Type: method.Bit,
			Get: func() any { return m.Active },
			Set: func(v any) error { return setBool(&m.Active, v) }},
	}
}

// Close20 is channel.close (20,40).
type Close20 struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (m *Close20) ClassID() uint16  { return ClassChannel }
func (m *Close20) MethodID() uint16 { return 40 }

func (m *Close20) Fields() []method.FieldSpec {
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

// CloseOk20 is channel.close-ok (20,41). It carries no fields.
type CloseOk20 struct{}

func (m *CloseOk20) ClassID() uint16            { return ClassChannel }
func (m *CloseOk20) MethodID() uint16           { return 41 }
func (m *CloseOk20) Fields() []method.FieldSpec { return nil }
