package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrUnknownNetwork is returned when the selected network has no profile in
// the config file.
var ErrUnknownNetwork = errors.New("unknown network")

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Network        string
	RPCEndpoint    string
	Wallet         string
	Account        string
	Password       string
	ContractsDir   string
	DeploymentFile string
	Feed           string
	Symbol         string
	Ratio          int64
	Timeout        time.Duration
	LogLevel       string
}

// Load merges config file, environment variables, and flags into Config.
// Variables from the .env file in the working directory, if any, are
// exported before reading the environment.
//
// If network is set, values from the networks.<network> section of the
// config file are used for keys not given explicitly. The section must
// exist and define rpc.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SYNTH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("rpc", "http://localhost:30333")
	v.SetDefault("contracts", "./contracts")
	v.SetDefault("deployment", "./data/deployment.yml")
	v.SetDefault("symbol", "STN")
	v.SetDefault("ratio", int64(10_000))
	v.SetDefault("timeout", time.Minute)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("synth")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	network := v.GetString("network")
	if network != "" {
		profile := v.Sub("networks." + network)
		if profile == nil {
			return Config{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
		}

		if profile.GetString("rpc") == "" {
			return Config{}, fmt.Errorf("network %s: rpc is required", network)
		}

		for _, key := range profile.AllKeys() {
			v.SetDefault(key, profile.Get(key))
		}
	}

	cfg := Config{
		Network:        network,
		RPCEndpoint:    v.GetString("rpc"),
		Wallet:         v.GetString("wallet"),
		Account:        v.GetString("account"),
		Password:       v.GetString("wallet-password"),
		ContractsDir:   v.GetString("contracts"),
		DeploymentFile: v.GetString("deployment"),
		Feed:           v.GetString("feed"),
		Symbol:         v.GetString("symbol"),
		Ratio:          v.GetInt64("ratio"),
		Timeout:        v.GetDuration("timeout"),
		LogLevel:       v.GetString("log-level"),
	}

	return cfg, nil
}
