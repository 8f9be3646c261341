package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	vaultKey  = "vault"
	bounceKey = "bounce"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	args := data.(struct {
		vault interop.Hash160
	})

	storage.Put(storage.GetContext(), vaultKey, args.vault)
}

// OnNEP17Payment re-enters the vault. By default received synthetic tokens
// are withdrawn right back. With bounce enabled tokens are kept and GAS
// paid out by the vault is deposited right back.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()
	vault := storage.Get(ctx, vaultKey).(interop.Hash160)
	bounce := storage.Get(ctx, bounceKey) != nil

	if runtime.GetCallingScriptHash().Equals(gas.Hash) {
		if bounce && from.Equals(vault) {
			gas.Transfer(runtime.GetExecutingScriptHash(), vault, amount, nil)
		}
		return
	}

	if !bounce {
		contract.Call(vault, "withdraw", contract.All, runtime.GetExecutingScriptHash(), amount)
	}
}

// SetBounce switches between withdrawing received tokens and depositing
// received GAS back.
func SetBounce(enabled bool) {
	ctx := storage.GetContext()
	if enabled {
		storage.Put(ctx, bounceKey, true)
	} else {
		storage.Delete(ctx, bounceKey)
	}
}

// Attack deposits GAS of the contract into the vault.
func Attack(amount int) {
	vault := storage.Get(storage.GetReadOnlyContext(), vaultKey).(interop.Hash160)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), vault, amount, nil) {
		panic("deposit failed")
	}
}

// Withdraw redeems amount of synthetic tokens held by the contract.
func Withdraw(amount int) {
	vault := storage.Get(storage.GetReadOnlyContext(), vaultKey).(interop.Hash160)
	contract.Call(vault, "withdraw", contract.All, runtime.GetExecutingScriptHash(), amount)
}
