package token_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	corestate "github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func state(h util.Uint160, name string, items ...stackitem.Item) corestate.NotificationEvent {
	return corestate.NotificationEvent{
		ScriptHash: h,
		Name:       name,
		Item:       stackitem.NewArray(items),
	}
}

func poolUpdated(h, pool util.Uint160, enabled bool) corestate.NotificationEvent {
	return state(h, "PoolUpdated", stackitem.NewByteArray(pool.BytesBE()), stackitem.NewBool(enabled))
}

func pools(t *testing.T, c *neotest.ContractInvoker) []util.Uint160 {
	s, err := c.TestInvoke(t, "pools")
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)

	var res []util.Uint160
	for iter.Next() {
		b, err := iter.Value().TryBytes()
		require.NoError(t, err)

		h, err := util.Uint160DecodeBytesBE(b)
		require.NoError(t, err)

		res = append(res, h)
	}

	return res
}
