package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const ownerKey = "owner"

// SetOwner stores the owner of the calling contract. It panics if owner is
// not a valid script hash.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}

	storage.Put(ctx, ownerKey, owner)
}

// Owner returns the owner of the calling contract.
func Owner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

// CheckOwner panics with ErrNotOwner if the transaction is not witnessed by
// the contract owner.
func CheckOwner(ctx storage.Context) {
	if !runtime.CheckWitness(Owner(ctx)) {
		panic(ErrNotOwner)
	}
}
