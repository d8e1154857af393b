// SPDX-License-Identifier: Apache-2.0

package setup_test

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	ptest "polycry.pt/poly-go/test"

	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/setup"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := setup.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "testnet", cfg.Network)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CCD_NETWORK", "mainnet")
	t.Setenv("CCD_LOG_LEVEL", "debug")

	cfg, err := setup.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mainnet", cfg.Network)
	require.Equal(t, logrus.DebugLevel, setup.LogLevel(cfg))
}

func TestResolveNetwork(t *testing.T) {
	net, err := setup.ResolveNetwork(setup.Config{Network: "testnet"})
	require.NoError(t, err)
	require.Equal(t, network.Testnet, net)

	net, err = setup.ResolveNetwork(setup.Config{Network: "mainnet"})
	require.NoError(t, err)
	require.Equal(t, network.Mainnet, net)

	_, err = setup.ResolveNetwork(setup.Config{Network: "devnet"})
	require.Error(t, err)
}

func TestResolveNetworkRPCOverride(t *testing.T) {
	net, err := setup.ResolveNetwork(setup.Config{
		Network:    "mainnet",
		JSONRPCURL: "http://localhost:9095",
	})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9095", net.JSONRPCURL)
	require.Equal(t, network.Mainnet.GenesisHash, net.GenesisHash)
	require.True(t, net.HasJSONRPC())
}

func TestOpenWallet(t *testing.T) {
	rng := ptest.Prng(t)

	w, err := setup.OpenWallet(setup.Config{}, rng)
	require.NoError(t, err)
	require.Empty(t, w.Addresses())

	path := filepath.Join(t.TempDir(), "wallet.dat")
	w, err = setup.OpenWallet(setup.Config{WalletPath: path}, rng)
	require.NoError(t, err)
	addr := w.NewAccount().Address()
	require.NoError(t, w.IncrementUsage(addr))

	reloaded, err := setup.OpenWallet(setup.Config{WalletPath: path}, rng)
	require.NoError(t, err)
	require.Contains(t, reloaded.Addresses(), addr)
}

func TestLogLevelFallback(t *testing.T) {
	require.Equal(t, logrus.InfoLevel, setup.LogLevel(setup.Config{LogLevel: "nonsense"}))
}
