package catalog

import (
	"github.com/arloliu/amqp911/method"
	"github.com/arloliu/amqp911/wire"
)

// Qos is basic.qos (60,10).
type Qos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (m *Qos) ClassID() uint16  { return ClassBasic }
func (m *Qos) MethodID() uint16 { return 10 }

func (m *Qos) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "prefetch-size", Type: method.Long,
			Get: func() any { return m.PrefetchSize },
			Set: func(v any) error { return setUint32(&m.PrefetchSize, v) }},
		{Name: "prefetch-count", Type: method.Short,
			Get: func() any { return m.PrefetchCount },
			Set: func(v any) error { return setUint16(&m.PrefetchCount, v) }},
		{Name: "global", Type: method.Bit,
			Get: func() any { return m.Global },
			Set: func(v any) error { return setBool(&m.Global, v) }},
	}
}

// QosOk is basic.qos-ok (60,11). It carries no fields.
type QosOk struct{}

func (m *QosOk) ClassID() uint16            { return ClassBasic }
func (m *QosOk) MethodID() uint16           { return 11 }
func (m *QosOk) Fields() []method.FieldSpec { return nil }

// Consume is basic.consume (60,20).
type Consume struct {
	Reserved1   uint16
	Queue       string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   wire.Table
}

func (m *Consume) ClassID() uint16  { return ClassBasic }
func (m *Consume) MethodID() uint16 { return 20 }

func (m *Consume) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "consumer-tag", Type: method.Shortstr,
			Get: func() any { return m.ConsumerTag },
			Set: func(v any) error { return setString(&m.ConsumerTag, v) }},
		{Name: "no-local", Type: method.Bit,
			Get: func() any { return m.NoLocal },
			Set: func(v any) error { return setBool(&m.NoLocal, v) }},
		{Name: "no-ack", Type: method.Bit,
			Get: func() any { return m.NoAck },
			Set: func(v any) error { return setBool(&m.NoAck, v) }},
		{Name: "exclusive", Type: method.Bit,
			Get: func() any { return m.Exclusive },
			Set: func(v any) error { return setBool(&m.Exclusive, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
		{Name: "arguments", Type: method.Table,
			Get: func() any { return m.Arguments },
			Set: func(v any) error { return setTable(&m.Arguments, v) }},
	}
}

// ConsumeOk is basic.consume-ok (60,21).
type ConsumeOk struct {
	ConsumerTag string
}

func (m *ConsumeOk) ClassID() uint16  { return ClassBasic }
func (m *ConsumeOk) MethodID() uint16 { return 21 }

func (m *ConsumeOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "consumer-tag", Type: method.Shortstr,
			Get: func() any { return m.ConsumerTag },
			Set: func(v any) error { return setString(&m.ConsumerTag, v) }},
	}
}

// Cancel is basic.cancel (60,30).
type Cancel struct {
	ConsumerTag string
	NoWait      bool
}

func (m *Cancel) ClassID() uint16  { return ClassBasic }
func (m *Cancel) MethodID() uint16 { return 30 }

func (m *Cancel) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "consumer-tag", Type: method.Shortstr,
			Get: func() any { return m.ConsumerTag },
			Set: func(v any) error { return setString(&m.ConsumerTag, v) }},
		{Name: "nowait", Type: method.Bit,
			Get: func() any { return m.NoWait },
			Set: func(v any) error { return setBool(&m.NoWait, v) }},
	}
}

// CancelOk is basic.cancel-ok (60,31).
type CancelOk struct {
	ConsumerTag string
}

func (m *CancelOk) ClassID() uint16  { return ClassBasic }
func (m *CancelOk) MethodID() uint16 { return 31 }

func (m *CancelOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "consumer-tag", Type: method.Shortstr,
			Get: func() any { return m.ConsumerTag },
			Set: func(v any) error { return setString(&m.ConsumerTag, v) }},
	}
}

// Publish is basic.publish (60,40). The content header/body that follow
// a Publish method frame are carried separately; this record is only the
// method frame itself.
type Publish struct {
	Reserved1  uint16
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
}

func (m *Publish) ClassID() uint16  { return ClassBasic }
func (m *Publish) MethodID() uint16 { return 40 }

func (m *Publish) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "routing-key", Type: method.Shortstr,
			Get: func() any { return m.RoutingKey },
			Set: func(v any) error { return setString(&m.RoutingKey, v) }},
		{Name: "mandatory", Type: method.Bit,
			Get: func() any { return m.Mandatory },
			Set: func(v any) error { return setBool(&m.Mandatory, v) }},
		{Name: "immediate", Type: method.Bit,
			Get: func() any { return m.Immediate },
			Set: func(v any) error { return setBool(&m.Immediate, v) }},
	}
}

// Return is basic.return (60,50), the server returning an undeliverable
// published message.
type Return struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
}

func (m *Return) ClassID() uint16  { return ClassBasic }
func (m *Return) MethodID() uint16 { return 50 }

func (m *Return) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reply-code", Type: method.Short,
			Get: func() any { return m.ReplyCode },
			Set: func(v any) error { return setUint16(&m.ReplyCode, v) }},
		{Name: "reply-text", Type: method.Shortstr,
			Get: func() any { return m.ReplyText },
			Set: func(v any) error { return setString(&m.ReplyText, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "routing-key", Type: method.Shortstr,
			Get: func() any { return m.RoutingKey },
			Set: func(v any) error { return setString(&m.RoutingKey, v) }},
	}
}

// Deliver is basic.deliver (60,60), a message pushed to a consumer.
type Deliver struct {
	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string
}

func (m *Deliver) ClassID() uint16  { return ClassBasic }
func (m *Deliver) MethodID() uint16 { return 60 }

func (m *Deliver) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "consumer-tag", Type: method.Shortstr,
			Get: func() any { return m.ConsumerTag },
			Set: func(v any) error { return setString(&m.ConsumerTag, v) }},
		{Name: "delivery-tag", Type: method.Longlong,
			Get: func() any { return m.DeliveryTag },
			Set: func(v any) error { return setUint64(&m.DeliveryTag, v) }},
		{Name: "redelivered", Type: method.Bit,
			Get: func() any { return m.Redelivered },
			Set: func(v any) error { return setBool(&m.Redelivered, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "routing-key", Type: method.Shortstr,
			Get: func() any { return m.RoutingKey },
			Set: func(v any) error { return setString(&m.RoutingKey, v) }},
	}
}

// Get is basic.get (60,70).
type Get struct {
	Reserved1 uint16
	Queue     string
	NoAck     bool
}

func (m *Get) ClassID() uint16  { return ClassBasic }
func (m *Get) MethodID() uint16 { return 70 }

func (m *Get) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Short,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setUint16(&m.Reserved1, v) }},
		{Name: "queue", Type: method.Shortstr,
			Get: func() any { return m.Queue },
			Set: func(v any) error { return setString(&m.Queue, v) }},
		{Name: "no-ack", Type: method.Bit,
			Get: func() any { return m.NoAck },
			Set: func(v any) error { return setBool(&m.NoAck, v) }},
	}
}

// GetOk is basic.get-ok (60,71).
type GetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	Exchange     string
	RoutingKey   string
	MessageCount uint32
}

func (m *GetOk) ClassID() uint16  { return ClassBasic }
func (m *GetOk) MethodID() uint16 { return 71 }

func (m *GetOk) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "delivery-tag", Type: method.Longlong,
			Get: func() any { return m.DeliveryTag },
			Set: func(v any) error { return setUint64(&m.DeliveryTag, v) }},
		{Name: "redelivered", Type: method.Bit,
			Get: func() any { return m.Redelivered },
			Set: func(v any) error { return setBool(&m.Redelivered, v) }},
		{Name: "exchange", Type: method.Shortstr,
			Get: func() any { return m.Exchange },
			Set: func(v any) error { return setString(&m.Exchange, v) }},
		{Name: "routing-key", Type: method.Shortstr,
			Get: func() any { return m.RoutingKey },
			Set: func(v any) error { return setString(&m.RoutingKey, v) }},
		{Name: "message-count", Type: method.Long,
			Get: func() any { return m.MessageCount },
			Set: func(v any) error { return setUint32(&m.MessageCount, v) }},
	}
}

// GetEmpty is basic.get-empty (60,72). Reserved1 is the legacy cluster-id.
type GetEmpty struct {
	Reserved1 string
}

func (m *GetEmpty) ClassID() uint16  { return ClassBasic }
func (m *GetEmpty) MethodID() uint16 { return 72 }

func (m *GetEmpty) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "reserved-1", Type: method.Shortstr,
			Get: func() any { return m.Reserved1 },
			Set: func(v any) error { return setString(&m.Reserved1, v) }},
	}
}

// Ack is basic.ack (60,80).
type Ack struct {
	DeliveryTag uint64
	Multiple    bool
}

func (m *Ack) ClassID() uint16  { return ClassBasic }
func (m *Ack) MethodID() uint16 { return 80 }

func (m *Ack) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "delivery-tag", Type: method.Longlong,
			Get: func() any { return m.DeliveryTag },
			Set: func(v any) error { return setUint64(&m.DeliveryTag, v) }},
		{Name: "multiple", Type: method.Bit,
			Get: func() any { return m.Multiple },
			Set: func(v any) error { return setBool(&m.Multiple, v) }},
	}
}

// Reject is basic.reject (60,90).
type Reject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (m *Reject) ClassID() uint16  { return ClassBasic }
func (m *Reject) MethodID() uint16 { return 90 }

func (m *Reject) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "delivery-tag", Type: method.Longlong,
			Get: func() any { return m.DeliveryTag },
			Set: func(v any) error { return setUint64(&m.DeliveryTag, v) }},
		{Name: "requeue", Type: method.Bit,
			Get: func() any { return m.Requeue },
			Set: func(v any) error { return setBool(&m.Requeue, v) }},
	}
}

// RecoverAsync is basic.recover-async (60,100), deprecated in favor of
// Recover but kept for wire compatibility with older peers.
type RecoverAsync struct {
	Requeue bool
}

func (m *RecoverAsync) ClassID() uint16  { return ClassBasic }
func (m *RecoverAsync) MethodID() uint16 { return 100 }

func (m *RecoverAsync) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "requeue", Type: method.Bit,
			Get: func() any { return m.Requeue },
			Set: func(v any) error { return setBool(&m.Requeue, v) }},
	}
}

// Recover is basic.recover (60,110).
type Recover struct {
	Requeue bool
}

func (m *Recover) ClassID() uint16  { return ClassBasic }
func (m *Recover) MethodID() uint16 { return 110 }

func (m *Recover) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "requeue", Type: method.Bit,
			Get: func() any { return m.Requeue },
			Set: func(v any) error { return setBool(&m.Requeue, v) }},
	}
}

// RecoverOk is basic.recover-ok (60,111). It carries no fields.
type RecoverOk struct{}

func (m *RecoverOk) ClassID() uint16            { return ClassBasic }
func (m *RecoverOk) MethodID() uint16           { return 111 }
func (m *RecoverOk) Fields() []method.FieldSpec { return nil }

// Nack is basic.nack (60,120), the negative acknowledgement extension.
type Nack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (m *Nack) ClassID() uint16  { return ClassBasic }
func (m *Nack) MethodID() uint16 { return 120 }

func (m *Nack) Fields() []method.FieldSpec {
	return []method.FieldSpec{
		{Name: "delivery-tag", Type: method.Longlong,
			Get: func() any { return m.DeliveryTag },
			Set: func(v any) error { return setUint64(&m.DeliveryTag, v) }},
		{Name: "multiple", Type: method.Bit,
			Get: func() any { return m.Multiple },
			Set: func(v any) error { return setBool(&m.Multiple, v) }},
		{Name: "requeue", Type: method.Bit,
			Get: func() any { return m.Requeue },
			Set: func(v any) error { return setBool(&m.Requeue, v) }},
	}
}
