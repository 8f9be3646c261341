package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "synthctl",
		Short:        "Synthetic asset contracts operator tool",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("network", "", "network profile from the config file")
	root.PersistentFlags().String("rpc", "http://localhost:30333", "Neo RPC endpoint")
	root.PersistentFlags().String("deployment", "./data/deployment.yml", "deployment record path")
	root.PersistentFlags().Duration("timeout", time.Minute, "transaction acceptance timeout")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	walletFlags := func(cmd *cobra.Command) {
		cmd.Flags().String("wallet", "", "NEP-6 wallet path")
		cmd.Flags().String("account", "", "wallet account address, the first one by default")
	}

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy and wire oracle, token and vault contracts",
		RunE:  runDeploy,
	}
	walletFlags(deployCmd)
	deployCmd.Flags().String("contracts", "./contracts", "contract sources directory")
	deployCmd.Flags().String("feed", "", "price feed contract hash")
	deployCmd.Flags().String("symbol", "STN", "synthetic token symbol")
	deployCmd.Flags().Int64("ratio", 10_000, "collateral ratio in basis points")
	root.AddCommand(deployCmd)

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Show current oracle price",
		RunE:  runPrice,
	}
	root.AddCommand(priceCmd)

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit GAS into the vault and mint synthetic tokens",
		RunE:  runDeposit,
	}
	walletFlags(depositCmd)
	depositCmd.Flags().String("amount", "", "amount of GAS to deposit (e.g. 1.5)")
	depositCmd.Flags().String("beneficiary", "", "address credited with the deposit, the sender by default")
	root.AddCommand(depositCmd)

	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Burn synthetic tokens and withdraw GAS from the vault",
		RunE:  runWithdraw,
	}
	walletFlags(withdrawCmd)
	withdrawCmd.Flags().String("amount", "", "amount of synthetic tokens to burn (e.g. 2000)")
	root.AddCommand(withdrawCmd)

	positionCmd := &cobra.Command{
		Use:   "position",
		Short: "Show deposited GAS and synthetic token balance of an account",
		RunE:  runPosition,
	}
	walletFlags(positionCmd)
	positionCmd.Flags().String("address", "", "account address, the wallet account by default")
	root.AddCommand(positionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
