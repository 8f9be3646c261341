package oracle_test

import (
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func stateNotification(h util.Uint160, name string, args ...[]byte) state.NotificationEvent {
	items := make([]stackitem.Item, len(args))
	for i := range args {
		items[i] = stackitem.NewByteArray(args[i])
	}

	return state.NotificationEvent{
		ScriptHash: h,
		Name:       name,
		Item:       stackitem.NewArray(items),
	}
}
