package feed

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	priceKey    = "price"
	decimalsKey = "decimals"
	brokenKey   = "broken"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.(struct {
		price    int
		decimals int
	})

	ctx := storage.GetContext()
	storage.Put(ctx, priceKey, args.price)
	storage.Put(ctx, decimalsKey, args.decimals)
}

func SetPrice(price int) {
	storage.Put(storage.GetContext(), priceKey, price)
}

// SetBroken makes LatestAnswer throw.
func SetBroken(broken bool) {
	storage.Put(storage.GetContext(), brokenKey, broken)
}

func LatestAnswer() int {
	ctx := storage.GetReadOnlyContext()
	if b := storage.Get(ctx, brokenKey); b != nil && b.(bool) {
		panic("feed is down")
	}

	return storage.Get(ctx, priceKey).(int)
}

func Decimals() int {
	return storage.Get(storage.GetReadOnlyContext(), decimalsKey).(int)
}
