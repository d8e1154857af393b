// SPDX-License-Identifier: Apache-2.0

// Package setup bootstraps the demo binary: it reads the environment,
// resolves the network preset and opens the key store.
package setup

import (
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/utils"
	"github.com/KatasonovYP/concordium-walletconnect/wallet"
)

// Config is read from the environment with the CCD prefix, e.g.
// CCD_NETWORK=mainnet.
type Config struct {
	Network    string `default:"testnet"`
	JSONRPCURL string `envconfig:"JSONRPC_URL"`
	WalletPath string `envconfig:"WALLET_PATH"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads the demo configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ccd", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "reading environment")
	}
	return cfg, nil
}

// ResolveNetwork maps the configured network name to its preset,
// overriding the JSON-RPC endpoint if one is configured.
func ResolveNetwork(cfg Config) (network.Network, error) {
	var net network.Network
	switch cfg.Network {
	case "testnet":
		net = network.Testnet
	case "mainnet":
		net = network.Mainnet
	default:
		return network.Network{}, errors.Errorf("unknown network %q", cfg.Network)
	}
	if cfg.JSONRPCURL != "" {
		return network.New(net.Name, net.GenesisHash, net.GRPC, cfg.JSONRPCURL, net.CCDScanBaseURL)
	}
	return net, nil
}

// OpenWallet opens the key store at the configured path, creating it if
// missing. A leading "~" is expanded; an empty path yields an unpersisted
// wallet.
func OpenWallet(cfg Config, gen io.Reader) (*wallet.Wallet, error) {
	if cfg.WalletPath == "" {
		return wallet.NewRAMWallet(gen)
	}
	return wallet.CreateOrLoadWallet(utils.ExpandHome(cfg.WalletPath), gen)
}

// LogLevel parses the configured log level, falling back to info.
func LogLevel(cfg Config) logrus.Level {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
