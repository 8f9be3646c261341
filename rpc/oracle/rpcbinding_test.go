package oracle

import (
	"errors"
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
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetLatestPrice()
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{State: "FAULT", FaultException: "oracle unavailable: feed is not set"}
	_, err = r.GetLatestPrice()
	require.ErrorContains(t, err, "oracle unavailable")

	ti.res = halt(stackitem.Make(2000_0000_0000))
	price, err := r.GetLatestPrice()
	require.NoError(t, err)
	require.EqualValues(t, 2000_0000_0000, price.Int64())

	ti.res = halt(stackitem.Null{})
	feed, err := r.Feed()
	require.NoError(t, err)
	require.True(t, feed.Equals(util.Uint160{}))

	h := util.Uint160{4, 5, 6}
	ti.res = halt(stackitem.Make(h.BytesBE()))
	feed, err = r.Feed()
	require.NoError(t, err)
	require.Equal(t, h, feed)

	ti.res = halt(stackitem.Make([]byte{1, 2}))
	_, err = r.Feed()
	require.Error(t, err)
}

func TestEvents(t *testing.T) {
	_, err := FeedUpdatedEventsFromApplicationLog(nil)
	require.Error(t, err)

	prev, next := util.Uint160{1}, util.Uint160{2}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "FeedUpdated", Item: stackitem.NewArray([]stackitem.Item{stackitem.Make(next.BytesBE())})},
				{Name: "OwnershipTransferred", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(prev.BytesBE()), stackitem.Make(next.BytesBE()),
				})},
			},
		}},
	}

	feeds, err := FeedUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	require.Equal(t, next, feeds[0].Feed)

	owners, err := OwnershipTransferredEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*OwnershipTransferredEvent{{PreviousOwner: prev, NewOwner: next}}, owners)

	log.Executions[0].Events[0].Item = stackitem.NewArray(nil)
	_, err = FeedUpdatedEventsFromApplicationLog(log)
	require.Error(t, err)
}
