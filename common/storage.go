package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetInt returns integer value stored by the key or zero if there is none.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}

// PutInt stores non-zero value by the key and removes the key otherwise.
func PutInt(ctx storage.Context, key any, value int) {
	if value == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, value)
}
