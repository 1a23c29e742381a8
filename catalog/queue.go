package catalog

import (
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/wire"
)

// Declare50 is queue.declare (50,10).
type Declare50 struct {
	Reserved1  uint16
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  wire.Table
}

func (m *Declare50) ClassID() uint16  { return ClassQueue }
func (m *Declare50) MethodID() uint16 { return 10 }

func (m *Declare50) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "passive", Type: method.Bit,
			Get: func() any { return m.Passive },
			Set: func(v any) error { return setBool(&m.Passive, v) }},
		{Name: "durable", Type: method.Bit,
			Get: func() any { return m.Durable },
			Set: func(v any) error { return setBool(&m.Durable, v) }},
		{Name: "exclusive", Type: method.Bit,
			Get: func() any { return m.Exclusive },
			Set: func(v any) error { return setBool(&m.Exclusive, v) }},
		{Name: "auto-delete", Type: method.Bit,
			Get: func() any { return m.AutoDelete },
			Set: func(v any) error { return setBool(&m.AutoDelete, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
		{Name: "arguments", Type: method.Table,
			Get: func() any { return m.Arguments },
			Set: func(v any) error { return setTable(&m.Arguments, v) }},
	}
}

// DeclareOk50 is queue.declare-ok (50,11).
type DeclareOk50 struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (m *DeclareOk50) ClassID() uint16  { return ClassQueue }
func (m *DeclareOk50) MethodID() uint16 { return 11 }

func (m *DeclareOk50) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "message-count", Type: method.Long,
			Get: func() any { return m.MessageCount },
			Set: func(v any) error { return setUint32(&m.MessageCount, v) }},
		{Name: "consumer-count", Type: method.Long,
			Get: func() any { return m.ConsumerCount },
			Set: func(v any) error { return setUint32(&m.ConsumerCount, v) }},
	}
}

// Bind is queue.bind (50,20).
type Bind struct {
	Reserved1  uint16
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Arguments  wire.Table
}

func (m *Bind) ClassID() uint16  { return ClassQueue }
func (m *Bind) MethodID() uint16 { return 20 }

func (m *Bind) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "routing-key", Type: method.Shortstr,
			Get: func() any { return m.RoutingKey },
			Set: func(v any) error { return setString(&m.RoutingKey, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
		{Name: "arguments", Type: method.Table,
			Get: func() any { return m.Arguments },
			Set: func(v any) error { return setTable(&m.Arguments, v) }},
	}
}

// BindOk is queue.bind-ok (50,21). It carries no fields.
type BindOk struct{}

func (m *BindOk) ClassID() uint16            { return ClassQueue }
func (m *BindOk) MethodID() uint16           { return 21 }
func (m *BindOk) Fields() []method.FieldSpec { return nil }

// Purge is queue.purge (50,30).
type Purge struct {
	Reserved1 uint16
	Queue     string
	NoWait    bool
}

func (m *Purge) ClassID() uint16  { return ClassQueue }
func (m *Purge) MethodID() uint16 { return 30 }

func (m *Purge) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
	}
}

// PurgeOk is queue.purge-ok (50,31).
type PurgeOk struct {
	MessageCount uint32
}

func (m *PurgeOk) ClassID() uint16  { return ClassQueue }
func (m *PurgeOk) MethodID() uint16 { return 31 }

func (m *PurgeOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "message-count", Type: method.Long,
			Get: func() any { return m.MessageCount },
			Set: func(v any) error { return setUint32(&m.MessageCount, v) }},
	}
}

// Delete50 is queue.delete (50,40).
type Delete50 struct {
	Reserved1 uint16
	Queue     string
	IfUnused  bool
	IfEmpty   bool
	NoWait    bool
}

func (m *Delete50) ClassID() uint16  { return ClassQueue }
func (m *Delete50) MethodID() uint16 { return 40 }

func (m *Delete50) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "if-unused", Type: method.Bit,
			Get: func() any { return m.IfUnused },
			Set: func(v any) error { return setBool(&m.IfUnused, v) }},
		{Name: "if-empty", Type: method.Bit,
			Get: func() any { return m.IfEmpty },
			Set: func(v any) error { return setBool(&m.IfEmpty, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
	}
}

// DeleteOk50 is queue.delete-ok (50,41).
type DeleteOk50 struct {
	MessageCount uint32
}

func (m *DeleteOk50) ClassID() uint16  { return ClassQueue }
func (m *DeleteOk50) MethodID() uint16 { return 41 }

func (m *DeleteOk50) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "message-count", Type: method.Long,
			Get: func() any { return m.MessageCount },
			Set: func(v any) error { return setUint32(&m.MessageCount, v) }},
	}
}

// Unbind is queue.unbind (50,50).
type Unbind struct {
	Reserved1  uint16
	Queue      string
	Exchange   string
	RoutingKey string
	Arguments  wire.Table
}

func (m *Unbind) ClassID() uint16  { return ClassQueue }
func (m *Unbind) MethodID() uint16 { return 50 }

func (m *Unbind) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "routing-key", Type: method.Shortstr,
			Get: func() any { return m.RoutingKey },
			Set: func(v any) error { return setString(&m.RoutingKey, v) }},
		{Name: "arguments", Type: method.Table,
			Get: func() any { return m.Arguments },
			Set: func(v any) error { return setTable(&m.Arguments, v) }},
	}
}

// UnbindOk is queue.unbind-ok (50,51). It carries no fields.
type UnbindOk struct{}

func (m *UnbindOk) ClassID() uint16            { return ClassQueue }
func (m *UnbindOk) MethodID() uint16           { return 51 }
func (m *UnbindOk) Fields() []method.FieldSpec { return nil }
