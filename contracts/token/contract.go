package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/synthetic-contract/common"
)

const (
	decimals = 8

	symbolKey = "symbol"
	supplyKey = "supply"

	balancePrefix = 'b'
	poolPrefix    = 'p'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		panic("update is not supported")
	}

	args := data.(struct {
		owner  interop.Hash160
		symbol string
	})

	if len(args.symbol) == 0 {
		panic("empty symbol")
	}

	ctx := storage.GetContext()
	common.SetOwner(ctx, args.owner)
	storage.Put(ctx, symbolKey, args.symbol)

	runtime.Log("token contract initialized")
}

// Symbol is a NEP-17 standard method that returns the token ticker.
func Symbol() string {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, symbolKey).(string)
}

// Decimals is a NEP-17 standard method that returns token precision.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of tokens
// in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns token balance of the
// account.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	ctx := storage.GetReadOnlyContext()
	return balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers tokens from one account
// to another. It can be invoked only by the sender. It returns false if the
// sender does not have enough tokens.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	if amount < 0 {
		panic("negative amount")
	}

	if !common.IsUsableAddress(from) {
		return false
	}

	ctx := storage.GetContext()

	fromBalance := balanceOf(ctx, from)
	if fromBalance < amount {
		return false
	}

	if amount != 0 && !from.Equals(to) {
		common.PutInt(ctx, balanceKey(from), fromBalance-amount)
		common.PutInt(ctx, balanceKey(to), balanceOf(ctx, to)+amount)
	}

	postTransfer(from, to, amount, data)

	return true
}

// SetPool grants or revokes the right to mint and burn tokens. It can be
// invoked only by the contract owner.
//
// It produces PoolUpdated notification.
func SetPool(pool interop.Hash160, enabled bool) {
	if len(pool) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	common.CheckOwner(ctx)

	key := append([]byte{poolPrefix}, pool...)
	if enabled {
		storage.Put(ctx, key, true)
	} else {
		storage.Delete(ctx, key)
	}

	runtime.Notify("PoolUpdated", pool, enabled)
}

// IsPool checks whether the account is allowed to mint and burn tokens.
func IsPool(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isPool(ctx, addr)
}

// Pools returns an iterator over script hashes of all pools.
func Pools() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{poolPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Mint creates new tokens on the account. It can be invoked only by a pool
// contract.
//
// It produces Transfer notification with empty sender.
func Mint(to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	checkPool(ctx)

	common.PutInt(ctx, balanceKey(to), balanceOf(ctx, to)+amount)
	common.PutInt(ctx, supplyKey, common.GetInt(ctx, supplyKey)+amount)

	var from interop.Hash160
	postTransfer(from, to, amount, nil)
}

// Burn destroys tokens of the account. It can be invoked only by a pool
// contract. It fails if the account does not have enough tokens.
//
// It produces Transfer notification with empty receiver.
func Burn(from interop.Hash160, amount int) {
	if len(from) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	checkPool(ctx)

	balance := balanceOf(ctx, from)
	if balance < amount {
		panic(common.ErrBurnExceedsBalance)
	}

	common.PutInt(ctx, balanceKey(from), balance-amount)
	common.PutInt(ctx, supplyKey, common.GetInt(ctx, supplyKey)-amount)

	var to interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
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

func checkPool(ctx storage.Context) {
	if !isPool(ctx, runtime.GetCallingScriptHash()) {
		panic(common.ErrNotAllowed)
	}
}

func isPool(ctx storage.Context, addr interop.Hash160) bool {
	return storage.Get(ctx, append([]byte{poolPrefix}, addr...)) != nil
}

func balanceKey(addr interop.Hash160) []byte {
	return append([]byte{balancePrefix}, addr...)
}

func balanceOf(ctx storage.Context, addr interop.Hash160) int {
	return common.GetInt(ctx, balanceKey(addr))
}

func postTransfer(from, to interop.Hash160, amount int, data any) {
	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}
