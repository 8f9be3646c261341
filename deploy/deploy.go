package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/synthetic-contract/rpc/oracle"
	"github.com/nspcc-dev/synthetic-contract/rpc/token"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns error with 'Unknown contract' substring if
	// requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the owner of the oracle and the token.
	LocalAccount *wallet.Account

	Oracle CommonDeployPrm
	Token  CommonDeployPrm
	Vault  CommonDeployPrm

	// Price feed the oracle is pointed to. Zero value leaves the oracle
	// feed untouched.
	Feed util.Uint160

	// Ticker of the synthetic token.
	Symbol string

	// Collateral ratio of the vault in basis points.
	Ratio int64
}

// Result holds on-chain addresses of the deployed contracts.
type Result struct {
	Oracle util.Uint160
	Token  util.Uint160
	Vault  util.Uint160
}

// ErrInvalidPrm is returned by Deploy on incomplete or wrong parameters.
var ErrInvalidPrm = errors.New("invalid deployment parameters")

func (p Prm) validate() error {
	switch {
	case p.Logger == nil:
		return fmt.Errorf("%w: missing logger", ErrInvalidPrm)
	case p.Blockchain == nil:
		return fmt.Errorf("%w: missing blockchain", ErrInvalidPrm)
	case p.LocalAccount == nil:
		return fmt.Errorf("%w: missing local account", ErrInvalidPrm)
	case p.Symbol == "":
		return fmt.Errorf("%w: empty token symbol", ErrInvalidPrm)
	case p.Ratio <= 0:
		return fmt.Errorf("%w: non-positive ratio %d", ErrInvalidPrm, p.Ratio)
	}

	for name, c := range map[string]CommonDeployPrm{
		"oracle": p.Oracle,
		"token":  p.Token,
		"vault":  p.Vault,
	} {
		if len(c.NEF.Script) == 0 || c.Manifest.Name == "" {
			return fmt.Errorf("%w: missing %s contract", ErrInvalidPrm, name)
		}
	}

	return nil
}

// Deploy deploys oracle, token and vault contracts from the local account and
// wires them together: the oracle is pointed to the feed and the vault
// becomes a token pool.
//
// Deploy is idempotent: contracts already deployed by the same account are
// reused and settings already in place are not touched, so an interrupted
// deployment can be resumed by calling Deploy again.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	err := prm.validate()
	if err != nil {
		return res, err
	}

	// wrap the parent context into the context of the current function so that
	// transaction wait routines do not leak
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	syncPrm := syncContractPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		sender:     prm.LocalAccount.ScriptHash(),
	}

	// contracts dependent on others come after
	syncPrm.common = prm.Oracle
	syncPrm.args = []any{syncPrm.sender}

	res.Oracle, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync oracle contract with the chain: %w", err)
	}

	syncPrm.common = prm.Token
	syncPrm.args = []any{syncPrm.sender, prm.Symbol}

	res.Token, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync token contract with the chain: %w", err)
	}

	syncPrm.common = prm.Vault
	syncPrm.args = []any{res.Token, res.Oracle, prm.Ratio}

	res.Vault, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync vault contract with the chain: %w", err)
	}

	if !prm.Feed.Equals(util.Uint160{}) {
		err = setFeed(ctx, prm.Logger, act, res.Oracle, prm.Feed)
		if err != nil {
			return res, fmt.Errorf("set oracle feed: %w", err)
		}
	}

	err = enablePool(ctx, prm.Logger, act, res.Token, res.Vault)
	if err != nil {
		return res, fmt.Errorf("register vault as token pool: %w", err)
	}

	prm.Logger.Info("synthetic contracts are ready",
		zap.Stringer("oracle", res.Oracle),
		zap.Stringer("token", res.Token),
		zap.Stringer("vault", res.Vault))

	return res, nil
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	sender     util.Uint160

	common CommonDeployPrm
	args   []any
}

// syncContract deploys the contract unless the sender has already done it
// and returns its address.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	name := prm.common.Manifest.Name
	addr := state.CreateContractHash(prm.sender, prm.common.NEF.Checksum, name)
	l := prm.logger.With(zap.String("contract", name), zap.Stringer("address", addr))

	_, err := prm.blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already deployed, skip")
		return addr, nil
	}

	if !isErrContractNotFound(err) {
		return addr, fmt.Errorf("get state of the contract %s: %w", addr, err)
	}

	l.Info("contract is missing on the chain, deploying...")

	_, err = Await(ctx, prm.actor)(management.New(prm.actor).Deploy(&prm.common.NEF, &prm.common.Manifest, prm.args))
	if err != nil {
		return addr, fmt.Errorf("deploy contract: %w", err)
	}

	l.Info("contract successfully deployed")

	return addr, nil
}

func setFeed(ctx context.Context, l *zap.Logger, act *actor.Actor, oracleAddr, feed util.Uint160) error {
	c := oracle.New(act, oracleAddr)

	current, err := c.Feed()
	if err != nil {
		return fmt.Errorf("get current feed: %w", err)
	}

	if current.Equals(feed) {
		l.Info("oracle feed is already set, skip", zap.Stringer("feed", feed))
		return nil
	}

	_, err = Await(ctx, act)(c.SetFeed(feed))
	if err != nil {
		return err
	}

	l.Info("oracle feed successfully set", zap.Stringer("feed", feed))

	return nil
}

func enablePool(ctx context.Context, l *zap.Logger, act *actor.Actor, tokenAddr, pool util.Uint160) error {
	c := token.New(act, tokenAddr)

	ok, err := c.IsPool(pool)
	if err != nil {
		return fmt.Errorf("check pool: %w", err)
	}

	if ok {
		l.Info("vault is already a token pool, skip")
		return nil
	}

	_, err = Await(ctx, act)(c.SetPool(pool, true))
	if err != nil {
		return err
	}

	l.Info("vault successfully registered as token pool")

	return nil
}

// Waiter is a part of actor.Actor awaiting transaction acceptance.
type Waiter interface {
	WaitAny(ctx context.Context, vub uint32, hashes ...util.Uint256) (*state.AppExecResult, error)
}

// Await returns function waiting for the sent transaction to be accepted
// and checking its execution has halted. The wait is aborted on context
// cancellation.
func Await(ctx context.Context, w Waiter) func(util.Uint256, uint32, error) (*state.AppExecResult, error) {
	return func(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error) {
		if err != nil {
			return nil, fmt.Errorf("send transaction: %w", err)
		}

		res, err := w.WaitAny(ctx, vub, h)
		if err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			return nil, fmt.Errorf("wait for transaction %s: %w", h.StringLE(), err)
		}

		if res.VMState != vmstate.Halt {
			return res, fmt.Errorf("transaction %s failed: %s", h.StringLE(), res.FaultException)
		}

		return res, nil
	}
}

func isErrContractNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unknown contract")
}
