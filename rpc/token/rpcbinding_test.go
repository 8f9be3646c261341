package token

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}

func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.IsPool(util.Uint160{})
	require.Error(t, err)
	_, err = r.PoolsExpanded(10)
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(true)}}
	ok, err := r.IsPool(util.Uint160{})
	require.NoError(t, err)
	require.True(t, ok)

	pools := []util.Uint160{{1}, {2}}
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{
		stackitem.Make([]stackitem.Item{
			stackitem.Make(pools[0].BytesBE()),
			stackitem.Make(pools[1].BytesBE()),
		}),
	}}
	res, err := r.PoolsExpanded(10)
	require.NoError(t, err)
	require.Equal(t, pools, res)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(8)}}
	dec, err := r.Decimals()
	require.NoError(t, err)
	require.Equal(t, 8, dec)
}

func TestPoolUpdatedEvents(t *testing.T) {
	pool := util.Uint160{7}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Transfer", Item: stackitem.NewArray(nil)},
				{Name: "PoolUpdated", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(pool.BytesBE()), stackitem.Make(true),
				})},
			},
		}},
	}

	evs, err := PoolUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*PoolUpdatedEvent{{Pool: pool, Enabled: true}}, evs)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{
		stackitem.Make([]byte{1}), stackitem.Make(true),
	})
	_, err = PoolUpdatedEventsFromApplicationLog(log)
	require.Error(t, err)
}
