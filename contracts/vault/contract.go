package vault

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/synthetic-contract/common"
)

const (
	tokenKey  = "token"
	oracleKey = "oracle"
	ratioKey  = "ratio"

	userPrefix = 'u'

	// basisPoints is the ratio value of 100%.
	basisPoints = 10_000
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		panic("update is not supported")
	}

	args := data.(struct {
		token  interop.Hash160
		oracle interop.Hash160
		ratio  int
	})

	if len(args.token) != interop.Hash160Len || len(args.oracle) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	if args.ratio <= 0 {
		panic("non-positive ratio")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, tokenKey, args.token)
	storage.Put(ctx, oracleKey, args.oracle)
	storage.Put(ctx, ratioKey, args.ratio)

	runtime.Log("vault contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Received GAS is a deposit: the vault records it as collateral of the
// beneficiary and mints synthetic tokens to the beneficiary at the current
// oracle price. The beneficiary is the sender unless data carries another
// script hash.
//
// It produces Deposit notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if !runtime.GetCallingScriptHash().Equals(gas.Hash) {
		panic("only GAS can be accepted for deposit")
	}

	if amount <= 0 {
		panic(common.ErrZeroDeposit)
	}

	user := from
	if data != nil {
		user = data.(interop.Hash160)
	}

	if len(user) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	common.Enter(ctx)

	cfg := readConfig(ctx)
	price, d := currentPrice(cfg.oracle)

	minted := amount * price * basisPoints / (cfg.ratio * d)
	if minted <= 0 {
		panic("deposit is too small")
	}

	key := userKey(user)
	common.PutInt(ctx, key, common.GetInt(ctx, key)+amount)

	contract.Call(cfg.token, "mint", contract.All, user, minted)

	runtime.Notify("Deposit", user, amount, minted, price)

	common.Leave(ctx)
}

// Withdraw burns synthetic tokens of the user and releases the corresponding
// amount of GAS at the current oracle price. It can be invoked only by the
// user.
//
// It produces Withdraw notification.
func Withdraw(user interop.Hash160, amount int) {
	if len(user) != interop.Hash160Len {
		panic(common.ErrInvalidAddress)
	}

	common.CheckOwnerWitness(user)

	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	common.Enter(ctx)

	cfg := readConfig(ctx)
	price, d := currentPrice(cfg.oracle)

	contract.Call(cfg.token, "burn", contract.All, user, amount)

	released := amount * cfg.ratio * d / (price * basisPoints)
	if released <= 0 {
		panic("withdrawal is too small")
	}

	key := userKey(user)
	info := common.GetInt(ctx, key) - released
	if info < 0 || contract.Call(cfg.token, "balanceOf", contract.ReadOnly, user).(int) == 0 {
		info = 0
	}
	common.PutInt(ctx, key, info)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), user, released, nil) {
		panic("insufficient collateral")
	}

	runtime.Notify("Withdraw", user, amount, released, price)

	common.Leave(ctx)
}

// UserInfo returns the amount of GAS deposited by the user and not yet
// withdrawn.
func UserInfo(user interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, userKey(user))
}

// PreviewDeposit returns the amount of tokens a deposit of value GAS would
// mint at the current price.
func PreviewDeposit(value int) int {
	ctx := storage.GetReadOnlyContext()
	cfg := readConfig(ctx)
	price, d := currentPrice(cfg.oracle)

	return value * price * basisPoints / (cfg.ratio * d)
}

// PreviewWithdraw returns the amount of GAS burning amount tokens would
// release at the current price.
func PreviewWithdraw(amount int) int {
	ctx := storage.GetReadOnlyContext()
	cfg := readConfig(ctx)
	price, d := currentPrice(cfg.oracle)

	return amount * cfg.ratio * d / (price * basisPoints)
}

// Token returns the synthetic token contract hash.
func Token() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, tokenKey).(interop.Hash160)
}

// Oracle returns the price oracle contract hash.
func Oracle() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, oracleKey).(interop.Hash160)
}

// Ratio returns the collateral ratio in basis points.
func Ratio() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, ratioKey).(int)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

type config struct {
	token  interop.Hash160
	oracle interop.Hash160
	ratio  int
}

func readConfig(ctx storage.Context) config {
	return config{
		token:  storage.Get(ctx, tokenKey).(interop.Hash160),
		oracle: storage.Get(ctx, oracleKey).(interop.Hash160),
		ratio:  storage.Get(ctx, ratioKey).(int),
	}
}

// currentPrice returns oracle price and its scale.
func currentPrice(oracle interop.Hash160) (int, int) {
	price := contract.Call(oracle, "getLatestPrice", contract.ReadOnly).(int)
	decimals := contract.Call(oracle, "decimals", contract.ReadOnly).(int)

	return price, math.Pow(10, decimals)
}

func userKey(user interop.Hash160) []byte {
	return append([]byte{userPrefix}, user...)
}
