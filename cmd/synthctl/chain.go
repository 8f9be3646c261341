package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/synthetic-contract/deploy"
	"github.com/nspcc-dev/synthetic-contract/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is a per-command set of loaded dependencies.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	client *rpcclient.Client
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.RPCEndpoint == "" {
		return nil, errors.New("rpc endpoint is required")
	}

	client, err := rpcclient.New(cmd.Context(), cfg.RPCEndpoint, rpcclient.Options{})
	if err != nil {
		return nil, fmt.Errorf("create RPC client: %w", err)
	}

	err = client.Init()
	if err != nil {
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return &env{cfg: cfg, log: logger, client: client}, nil
}

func (e *env) close() {
	e.client.Close()
	_ = e.log.Sync()
}

// account opens the wallet and returns the unlocked account.
func (e *env) account() (*wallet.Account, error) {
	if e.cfg.Wallet == "" {
		return nil, errors.New("wallet is required")
	}

	wlt, err := wallet.NewWalletFromFile(e.cfg.Wallet)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	var acc *wallet.Account
	if e.cfg.Account != "" {
		h, err := address.StringToUint160(e.cfg.Account)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}

		acc = wlt.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", e.cfg.Account)
		}
	} else {
		if len(wlt.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = wlt.Accounts[0]
	}

	err = acc.Decrypt(e.cfg.Password, wlt.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func (e *env) actor() (*actor.Actor, *wallet.Account, error) {
	acc, err := e.account()
	if err != nil {
		return nil, nil, err
	}

	act, err := actor.NewSimple(e.client, acc)
	if err != nil {
		return nil, nil, fmt.Errorf("init transaction sender: %w", err)
	}

	return act, acc, nil
}

// await returns function waiting for the sent transaction to be accepted
// within configured timeout. It returns the application log of the
// transaction.
func (e *env) await(ctx context.Context, act *actor.Actor) func(util.Uint256, uint32, error) (*result.ApplicationLog, error) {
	return func(h util.Uint256, vub uint32, err error) (*result.ApplicationLog, error) {
		if err == nil {
			e.log.Info("transaction sent, waiting for acceptance", zap.Stringer("tx", h))
		}

		ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()

		res, err := deploy.Await(ctx, act)(h, vub, err)
		if err != nil {
			return nil, err
		}

		return &result.ApplicationLog{
			Container:  h,
			Executions: []state.Execution{res.Execution},
		}, nil
	}
}

func parseHash(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	return util.Uint160DecodeStringLE(trimHexPrefix(s))
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
