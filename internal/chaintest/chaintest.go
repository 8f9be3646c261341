// Package chaintest deploys the synthetic contracts on a single node
// in-memory chain for tests.
package chaintest

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Default feed and vault parameters: GAS priced at 2000.00000000 and a 100%
// collateral ratio.
const (
	Price    = 2000_0000_0000
	Decimals = 8
	Ratio    = 10_000
	Symbol   = "STN"
)

var root = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}()

// Contract source directories.
var (
	OraclePath    = filepath.Join(root, "contracts", "oracle")
	TokenPath     = filepath.Join(root, "contracts", "token")
	VaultPath     = filepath.Join(root, "contracts", "vault")
	FeedPath      = filepath.Join(root, "internal", "testcontracts", "feed")
	ReentrantPath = filepath.Join(root, "internal", "testcontracts", "reentrant")
)

// NewExecutor returns executor over a new single node chain.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles contract from the directory with its config.yml.
func Compile(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	return neotest.CompileFile(t, e.CommitteeHash, dir, filepath.Join(dir, "config.yml"))
}

func deploy(t testing.TB, e *neotest.Executor, dir string, args ...any) util.Uint160 {
	c := Compile(t, e, dir)
	e.DeployContract(t, c, args)
	return c.Hash
}

// DeployFeed deploys test price feed.
func DeployFeed(t testing.TB, e *neotest.Executor, price, decimals int64) util.Uint160 {
	return deploy(t, e, FeedPath, price, decimals)
}

// DeployOracle deploys oracle owned by the committee.
func DeployOracle(t testing.TB, e *neotest.Executor) util.Uint160 {
	return deploy(t, e, OraclePath, e.CommitteeHash)
}

// DeployToken deploys token owned by the committee.
func DeployToken(t testing.TB, e *neotest.Executor, symbol string) util.Uint160 {
	return deploy(t, e, TokenPath, e.CommitteeHash, symbol)
}

// DeployVault deploys vault over the given token and oracle.
func DeployVault(t testing.TB, e *neotest.Executor, token, oracle util.Uint160, ratio int64) util.Uint160 {
	return deploy(t, e, VaultPath, token, oracle, ratio)
}

// DeployReentrant deploys a contract which tries to re-enter the vault from
// the NEP-17 callbacks of a deposit or a withdrawal.
func DeployReentrant(t testing.TB, e *neotest.Executor, vault util.Uint160) util.Uint160 {
	return deploy(t, e, ReentrantPath, vault)
}

// System is a fully wired set of contracts.
type System struct {
	*neotest.Executor

	Feed   util.Uint160
	Oracle util.Uint160
	Token  util.Uint160
	Vault  util.Uint160
}

// NewSystem deploys feed, oracle, token and vault, points the oracle to the
// feed and makes the vault a token pool.
func NewSystem(t testing.TB, price, ratio int64) *System {
	e := NewExecutor(t)

	s := &System{
		Executor: e,
		Feed:     DeployFeed(t, e, price, Decimals),
		Oracle:   DeployOracle(t, e),
		Token:    DeployToken(t, e, Symbol),
	}
	s.Vault = DeployVault(t, e, s.Token, s.Oracle, ratio)

	e.CommitteeInvoker(s.Oracle).Invoke(t, nil, "setFeed", s.Feed)
	e.CommitteeInvoker(s.Token).Invoke(t, nil, "setPool", s.Vault, true)

	return s
}

// GAS returns GAS invoker signed by the signer.
func (s *System) GAS(t testing.TB, signer neotest.Signer) *neotest.ContractInvoker {
	return s.NewInvoker(s.NativeHash(t, nativenames.Gas), signer)
}

// Deposit transfers amount of GAS from the signer to the vault.
func (s *System) Deposit(t testing.TB, signer neotest.Signer, amount int64) {
	s.GAS(t, signer).Invoke(t, true, "transfer", signer.ScriptHash(), s.Vault, amount, nil)
}
