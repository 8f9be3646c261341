package oracle

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/synthetic-contract/common"
)

const (
	feedKey = "feed"

	latestAnswerMethod = "latestAnswer"
	decimalsMethod     = "decimals"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		panic("update is not supported")
	}

	args := data.(struct {
		owner interop.Hash160
	})

	ctx := storage.GetContext()
	common.SetOwner(ctx, args.owner)

	runtime.Log("oracle contract initialized")
}

// SetFeed sets the price feed contract the oracle reads from. It can be
// invoked only by the contract owner.
//
// It produces FeedUpdated notification.
func SetFeed(feed interop.Hash160) {
	if len(feed) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	common.CheckOwner(ctx)

	storage.Put(ctx, feedKey, feed)
	runtime.Notify("FeedUpdated", feed)
}

// Feed returns the price feed contract hash. It returns nil if the feed has
// not been set yet.
func Feed() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getFeed(ctx)
}

// GetLatestPrice returns the latest price reported by the feed scaled by
// 10^Decimals(). The price is read from the feed on every call, so the
// result is always as fresh as the feed itself.
//
// It fails if the feed is not set, the feed contract is missing, the feed
// call fails or the reported price is not positive.
func GetLatestPrice() int {
	price := callFeed(liveFeed(), latestAnswerMethod)
	if price <= 0 {
		panic(common.ErrOracleUnavailable + ": non-positive price")
	}

	return price
}

// Decimals returns the number of decimals of the prices returned by
// GetLatestPrice.
func Decimals() int {
	decimals := callFeed(liveFeed(), decimalsMethod)
	if decimals < 0 {
		panic(common.ErrOracleUnavailable + ": negative decimals")
	}

	return decimals
}

// Owner returns the contract owner.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return common.Owner(ctx)
}

// TransferOwnership changes the contract owner. It can be invoked only by
// the current owner.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwner(ctx)

	prev := common.Owner(ctx)
	common.SetOwner(ctx, newOwner)
	runtime.Notify("OwnershipTransferred", prev, newOwner)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getFeed(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, feedKey)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

func liveFeed() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	feed := getFeed(ctx)
	if feed == nil {
		panic(common.ErrOracleUnavailable + ": feed is not set")
	}

	if management.GetContract(feed) == nil {
		panic(common.ErrOracleUnavailable + ": feed contract is missing")
	}

	return feed
}

// callFeed calls parameterless feed method and reports any exception thrown
// by the feed as oracle unavailability.
func callFeed(feed interop.Hash160, method string) (res int) {
	if !management.HasMethod(feed, method, 0) {
		panic(common.ErrOracleUnavailable + ": feed has no " + method + " method")
	}

	defer func() {
		if r := recover(); r != nil {
			panic(common.ErrOracleUnavailable + ": " + string(r.([]byte)))
		}
	}()

	return contract.Call(feed, method, contract.ReadOnly).(int)
}
