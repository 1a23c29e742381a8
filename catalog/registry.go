package catalog

import (
	"fmt"
	"strconv"

	"github.com/arloliu/amqp911/internal/hash"
	"github.com/arloliu/amqp911/method"
)

// registry maps an xxhash64 dispatch key, derived from a (class-id,
// method-id) pair, straight to a Descriptor. Hashing the pair into a
// single map key avoids a nested map-of-maps or a two-level switch for
// what is, in practice, a flat lookup table.
var registry = make(map[uint64]method.Descriptor, 48)

func key(classID, methodID uint16) uint64 {
	return hash.ID(strconv.Itoa(int(classID)) + ":" + strconv.Itoa(int(methodID)))
}

func register(classID, methodID uint16, name string, factory func() method.Record) {
	k := key(classID, methodID)
	if _, exists := registry[k]; exists {
		panic(fmt.Sprintf("catalog: duplicate registration for class=%d method=%d", classID, methodID))
	}

	registry[k] = method.Descriptor{
		ClassID:  classID,
		MethodID: methodID,
		Name:     name,
		New:      factory,
	}
}

// Lookup returns the Descriptor registered for (classID, methodID), and
// false if no method in the catalog matches.
func Lookup(classID, methodID uint16) (method.Descriptor, bool) {
	d, ok := registry[key(classID, methodID)]

	return d, ok
}

// All returns every registered Descriptor, in no particular order. It
// exists mainly so tests can exercise the catalog's full breadth without
// hand-maintaining a parallel list of every (class-id, method-id) pair.
func All() []method.Descriptor {
	out := make([]method.Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}

	return out
}

func init() {
	register(ClassConnection, 10, "connection.start", func() method.Record { return &Start{} })
	register(ClassConnection, 11, "connection.start-ok", func() method.Record { return &StartOk{} })
	register(ClassConnection, 20, "connection.secure", func() method.Record { return &Secure{} })
	register(ClassConnection, 21, "connection.secure-ok", func() method.Record { return &SecureOk{} })
	register(ClassConnection, 30, "connection.tune", func() method.Record { return &Tune{} })
	register(ClassConnection, 31, "connection.tune-ok", func() method.Record { return &TuneOk{} })
	register(ClassConnection, 40, "connection.open", func() method.Record { return &Open{} })
	register(ClassConnection, 41, "connection.open-ok", func() method.Record { return &OpenOk{} })
	register(ClassConnection, 50, "connection.close", func() method.Record { return &Close{} })
	register(ClassConnection, 51, "connection.close-ok", func() method.Record { return &CloseOk{} })
	register(ClassConnection, 60, "connection.blocked", func() method.Record { return &Blocked{} })
	register(ClassConnection, 61, "connection.unblocked", func() method.Record { return &Unblocked{} })

	register(ClassChannel, 10, "channel.open", func() method.Record { return &Open20{} })
	register(ClassChannel, 11, "channel.open-ok", func() method.Record { return &OpenOk20{} })
	register(ClassChannel, 20, "channel.flow", func() method.Record { return &Flow{} })
	register(ClassChannel, 21, "channel.flow-ok", func() method.Record { return &FlowOk{} })
	register(ClassChannel, 40, "channel.close", func() method.Record { return &Close20{} })
	register(ClassChannel, 41, "channel.close-ok", func() method.Record { return &CloseOk20{} })

	register(ClassExchange, 10, "exchange.declare", func() method.Record { return &Declare{} })
	register(ClassExchange, 11, "exchange.declare-ok", func() method.Record { return &DeclareOk{} })
	register(ClassExchange, 20, "exchange.delete", func() method.Record { return &Delete{} })
	register(ClassExchange, 21, "exchange.delete-ok", func() method.Record { return &DeleteOk{} })

	register(ClassQueue, 10, "queue.declare", func() method.Record { return &Declare50{} })
	register(ClassQueue, 11, "queue.declare-ok", func() method.Record { return &DeclareOk50{} })
	register(ClassQueue, 20, "queue.bind", func() method.Record { return &Bind{} })
	register(ClassQueue, 21, "queue.bind-ok", func() method.Record { return &BindOk{} })
	register(ClassQueue, 30, "queue.purge", func() method.Record { return &Purge{} })
	register(ClassQueue, 31, "queue.purge-ok", func() method.Record { return &PurgeOk{} })
	register(ClassQueue, 40, "queue.delete", func() method.Record { return &Delete50{} })
	register(ClassQueue, 41, "queue.delete-ok", func() method.Record { return &DeleteOk50{} })
	register(ClassQueue, 50, "queue.unbind", func() method.Record { return &Unbind{} })
	register(ClassQueue, 51, "queue.unbind-ok", func() method.Record { return &UnbindOk{} })

	register(ClassBasic, 10, "basic.qos", func() method.Record { return &Qos{} })
	register(ClassBasic, 11, "basic.qos-ok", func() method.Record { return &QosOk{} })
	register(ClassBasic, 20, "basic.consume", func() method.Record { return &Consume{} })
	register(ClassBasic, 21, "basic.consume-ok", func() method.Record { return &ConsumeOk{} })
	register(ClassBasic, 30, "basic.cancel", func() method.Record { return &Cancel{} })
	register(ClassBasic, 31, "basic.cancel-ok", func() method.Record { return &CancelOk{} })
	register(ClassBasic, 40, "basic.publish", func() method.Record { return &Publish{} })
	register(ClassBasic, 50, "basic.return", func() method.Record { return &Return{} })
	register(ClassBasic, 60, "basic.deliver", func() method.Record { return &Deliver{} })
	register(ClassBasic, 70, "basic.get", func() method.Record { return &Get{} })
	register(ClassBasic, 71, "basic.get-ok", func() method.Record { return &GetOk{} })
	register(ClassBasic, 72, "basic.get-empty", func() method.Record { return &GetEmpty{} })
	register(ClassBasic, 80, "basic.ack", func() method.Record { return &Ack{} })
	register(ClassBasic, 90, "basic.reject", func() method.Record { return &Reject{} })
	register(ClassBasic, 100, "basic.recover-async", func() method.Record { return &RecoverAsync{} })
	register(ClassBasic, 110, "basic.recover", func() method.Record { return &Recover{} })
	register(ClassBasic, 111, "basic.recover-ok", func() method.Record { return &RecoverOk{} })
	register(ClassBasic, 120, "basic.nack", func() method.Record { return &Nack{} })

	register(ClassTx, 10, "tx.select", func() method.Record { return &Select{} })
	register(ClassTx, 11, "tx.select-ok", func() method.Record { return &SelectOk{} })
	register(ClassTx, 20, "tx.commit", func() method.Record { return &Commit{} })
	register(ClassTx, 21, "tx.commit-ok", func() method.Record { return &CommitOk{} })
	register(ClassTx, 30, "tx.rollback", func() method.Record { return &Rollback{} })
	register(ClassTx, 31, "tx.rollback-ok", func() method.Record { return &RollbackOk{} })
}
