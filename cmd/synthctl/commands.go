package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fatih/color"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/synthetic-contract/contracts"
	"github.com/nspcc-dev/synthetic-contract/deploy"
	"github.com/nspcc-dev/synthetic-contract/rpc/oracle"
	"github.com/nspcc-dev/synthetic-contract/rpc/token"
	"github.com/nspcc-dev/synthetic-contract/rpc/vault"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GAS and synthetic token share precision.
const precision = 8

func runDeploy(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	acc, err := e.account()
	if err != nil {
		return err
	}

	var feed util.Uint160
	if e.cfg.Feed != "" {
		feed, err = parseHash(e.cfg.Feed)
		if err != nil {
			return fmt.Errorf("invalid feed: %w", err)
		}
	} else {
		e.log.Warn("price feed is not specified, oracle feed is left untouched")
	}

	e.log.Info("compiling contracts", zap.String("dir", e.cfg.ContractsDir))

	cs, err := contracts.CompileAll(e.cfg.ContractsDir)
	if err != nil {
		return fmt.Errorf("compile contracts: %w", err)
	}

	common := func(c contracts.Contract) deploy.CommonDeployPrm {
		return deploy.CommonDeployPrm{NEF: c.NEF, Manifest: c.Manifest}
	}

	res, err := deploy.Deploy(cmd.Context(), deploy.Prm{
		Logger:       e.log,
		Blockchain:   e.client,
		LocalAccount: acc,
		Oracle:       common(cs[0]),
		Token:        common(cs[1]),
		Vault:        common(cs[2]),
		Feed:         feed,
		Symbol:       e.cfg.Symbol,
		Ratio:        e.cfg.Ratio,
	})
	if err != nil {
		return err
	}

	err = deploy.WriteRecord(e.cfg.DeploymentFile, res)
	if err != nil {
		return err
	}

	fmt.Println(color.HiGreenString("oracle: %s", res.Oracle.StringLE()))
	fmt.Println(color.HiGreenString("token:  %s", res.Token.StringLE()))
	fmt.Println(color.HiGreenString("vault:  %s", res.Vault.StringLE()))
	fmt.Println(color.HiBlueString("deployment saved to %s", e.cfg.DeploymentFile))

	return nil
}

func runPrice(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	rec, err := deploy.ReadRecord(e.cfg.DeploymentFile)
	if err != nil {
		return err
	}

	r := oracle.NewReader(invoker.New(e.client, nil), rec.Oracle)

	price, err := r.GetLatestPrice()
	if err != nil {
		return fmt.Errorf("get price: %w", err)
	}

	decimals, err := r.Decimals()
	if err != nil {
		return fmt.Errorf("get decimals: %w", err)
	}

	fmt.Println(color.HiBlueString("price: %s", fixedn.ToString(price, int(decimals.Int64()))))

	return nil
}

func runDeposit(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	amount, err := parseAmount(cmd)
	if err != nil {
		return err
	}

	rec, err := deploy.ReadRecord(e.cfg.DeploymentFile)
	if err != nil {
		return err
	}

	act, acc, err := e.actor()
	if err != nil {
		return err
	}

	var data any
	if s, _ := cmd.Flags().GetString("beneficiary"); s != "" {
		beneficiary, err := address.StringToUint160(s)
		if err != nil {
			return fmt.Errorf("invalid beneficiary: %w", err)
		}
		data = beneficiary
	}

	log, err := e.await(cmd.Context(), act)(gas.New(act).Transfer(acc.ScriptHash(), rec.Vault, amount, data))
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}

	evs, err := vault.DepositEventsFromApplicationLog(log)
	if err != nil {
		return err
	}

	for _, ev := range evs {
		fmt.Println(color.HiGreenString("deposited %s GAS for %s, minted %s",
			fixedn.ToString(ev.Amount, precision), address.Uint160ToString(ev.User),
			fixedn.ToString(ev.Minted, precision)))
	}

	return nil
}

func runWithdraw(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	amount, err := parseAmount(cmd)
	if err != nil {
		return err
	}

	rec, err := deploy.ReadRecord(e.cfg.DeploymentFile)
	if err != nil {
		return err
	}

	act, acc, err := e.actor()
	if err != nil {
		return err
	}

	log, err := e.await(cmd.Context(), act)(vault.New(act, rec.Vault).Withdraw(acc.ScriptHash(), amount))
	if err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}

	evs, err := vault.WithdrawEventsFromApplicationLog(log)
	if err != nil {
		return err
	}

	for _, ev := range evs {
		fmt.Println(color.HiGreenString("burnt %s, released %s GAS to %s",
			fixedn.ToString(ev.Amount, precision), fixedn.ToString(ev.Released, precision),
			address.Uint160ToString(ev.User)))
	}

	return nil
}

func runPosition(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	rec, err := deploy.ReadRecord(e.cfg.DeploymentFile)
	if err != nil {
		return err
	}

	var user util.Uint160
	if s, _ := cmd.Flags().GetString("address"); s != "" {
		user, err = address.StringToUint160(s)
		if err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}
	} else {
		acc, err := e.account()
		if err != nil {
			return err
		}
		user = acc.ScriptHash()
	}

	inv := invoker.New(e.client, nil)

	deposited, err := vault.NewReader(inv, rec.Vault).UserInfo(user)
	if err != nil {
		return fmt.Errorf("get position: %w", err)
	}

	tr := token.NewReader(inv, rec.Token)

	balance, err := tr.BalanceOf(user)
	if err != nil {
		return fmt.Errorf("get token balance: %w", err)
	}

	symbol, err := tr.Symbol()
	if err != nil {
		return fmt.Errorf("get token symbol: %w", err)
	}

	fmt.Println(color.HiBlueString("account:   %s", address.Uint160ToString(user)))
	fmt.Println(color.HiBlueString("deposited: %s GAS", fixedn.ToString(deposited, precision)))
	fmt.Println(color.HiBlueString("balance:   %s %s", fixedn.ToString(balance, precision), symbol))

	return nil
}

func parseAmount(cmd *cobra.Command) (*big.Int, error) {
	s, _ := cmd.Flags().GetString("amount")
	if s == "" {
		return nil, errors.New("amount is required")
	}

	amount, err := fixedn.FromString(s, precision)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	if amount.Sign() <= 0 {
		return nil, errors.New("amount must be positive")
	}

	return amount, nil
}
