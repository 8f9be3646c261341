package vault

import (
	"errors"
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	user := util.Uint160{9}

	ti.err = errors.New("bad")
	_, err := r.UserInfo(user)
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(1_0000_0000)}}
	v, err := r.UserInfo(user)
	require.NoError(t, err)
	require.EqualValues(t, 1_0000_0000, v.Int64())
	require.Equal(t, "userInfo", ti.method)
	require.Equal(t, []any{user}, ti.params)

	_, err = r.PreviewWithdraw(big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, "previewWithdraw", ti.method)

	ti.res = &result.Invoke{State: "HALT", Stack: []stackitem.Item{stackitem.Make(user.BytesBE())}}
	h, err := r.Token()
	require.NoError(t, err)
	require.Equal(t, user, h)
}

func TestPositionEvents(t *testing.T) {
	user := util.Uint160{1, 2}
	item := func(vals ...int64) *stackitem.Array {
		items := []stackitem.Item{stackitem.Make(user.BytesBE())}
		for _, v := range vals {
			items = append(items, stackitem.Make(v))
		}
		return stackitem.NewArray(items)
	}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Deposit", Item: item(1_0000_0000, 2000_0000_0000, 2000_0000_0000)},
				{Name: "Withdraw", Item: item(2000_0000_0000, 1_0000_0000, 2000_0000_0000)},
			},
		}},
	}

	deps, err := DepositEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	require.Equal(t, user, deps[0].User)
	require.EqualValues(t, 2000_0000_0000, deps[0].Minted.Int64())

	ws, err := WithdrawEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	require.EqualValues(t, 1_0000_0000, ws[0].Released.Int64())

	log.Executions[0].Events[1].Item = item(1)
	_, err = WithdrawEventsFromApplicationLog(log)
	require.Error(t, err)

	_, err = DepositEventsFromApplicationLog(nil)
	require.Error(t, err)
}
