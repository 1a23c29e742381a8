package catalog

import (
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/wire"
)

// Declare is exchange.declare (40,10). Its five trailing Bit fields
// (Passive, Durable, AutoDelete, Internal, NoWait) pack into a single
// octet and serve as the codec's reference fixture for a multi-bit run
// that doesn't fill a whole byte on its own.
type Declare struct {
	Reserved1  uint16
	Exchange   string
	Type       string
	Passive    bool
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Arguments  wire.Table
}

func (m *Declare) ClassID() uint16  { return ClassExchange }
func (m *Declare) MethodID() uint16 { return 10 }

func (m *Declare) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "type", Type: method.Shortstr,
			Get: func() any { return m.Type },
			Set: func(v any) error { return setString(&m.Type, v) }},
		{Name: "passive", Type: method.Bit,
			Get: func() any { return m.Passive },
			Set: func(v any) error { return setBool(&m.Passive, v) }},
		{Name: "durable", Type: method.Bit,
			Get: func() any { return m.Durable },
			Set: func(v any) error { return setBool(&m.Durable, v) }},
		{Name: "auto-delete", Type: method.Bit,
			Get: func() any { return m.AutoDelete },
			Set: func(v any) error { return setBool(&m.AutoDelete, v) }},
		{Name: "internal", Type: method.Bit,
			Get: func() any { return m.Internal },
			Set: func(v any) error { return setBool(&m.Internal, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
		{Name: "arguments", Type: method.Table,
			Get: func() any { return m.Arguments },
			Set: func(v any) error { return setTable(&m.Arguments, v) }},
	}
}

// DeclareOk is exchange.declare-ok (40,11). It carries no fields.
type DeclareOk struct{}

func (m *DeclareOk) ClassID() uint16            { return ClassExchange }
func (m *DeclareOk) MethodID() uint16           { return 11 }
func (m *DeclareOk) Fields() []method.FieldSpec { return nil }

// Delete is exchange.delete (40,20).
type Delete struct {
	Reserved1 uint16
	Exchange  string
	IfUnused  bool
	NoWait    bool
}

func (m *Delete) ClassID() uint16  { return ClassExchange }
func (m *Delete) MethodID() uint16 { return 20 }

func (m *Delete) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "if-unused", Type: method.Bit,
			Get: func() any { return m.IfUnused },
			Set: func(v any) error { return setBool(&m.IfUnused, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
	}
}

// DeleteOk is exchange.delete-ok (40,21). It carries no fields.
type DeleteOk struct{}

func (m *DeleteOk) ClassID() uint16            { return ClassExchange }
func (m *DeleteOk) MethodID() uint16           { return 21 }
func (m *DeleteOk) Fields() []method.FieldSpec { return nil }
