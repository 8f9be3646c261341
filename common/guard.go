package common

import "github.com/nspcc-dev/neo-go/pkg/interop/storage"

const guardKey = "entered"

// Enter marks the beginning of a guarded invocation. It panics with
// ErrReentrantCall if another guarded invocation of the same contract has
// not finished yet. Every Enter must be paired with Leave.
func Enter(ctx storage.Context) {
	if storage.Get(ctx, guardKey) != nil {
		panic(ErrReentrantCall)
	}

	storage.Put(ctx, guardKey, true)
}

// Leave marks the end of a guarded invocation.
func Leave(ctx storage.Context) {
	storage.Delete(ctx, guardKey)
}
