// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	ed "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/stretchr/testify/require"
	ptest "polycry.pt/poly-go/test"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
)

func TestAccountAddressRoundTrip(t *testing.T) {
	w, err := NewRAMWallet(ptest.Prng(t))
	require.NoError(t, err, "creating wallet")

	acc := w.NewAccount()
	addr := acc.Address()

	pk, err := DecodeAddress(addr)
	require.NoError(t, err, "decoding address")
	require.Equal(t, acc.PublicKey(), pk, "address must encode the public key")

	_, err = DecodeAddress("not-an-address")
	require.Error(t, err)
}

func TestSignDigestVerifies(t *testing.T) {
	w, err := NewRAMWallet(ptest.Prng(t))
	require.NoError(t, err, "creating wallet")

	acc := w.NewAccount()
	digest := []byte("digest of some request")

	sig, err := acc.SignDigest(digest)
	require.NoError(t, err, "signing")
	require.Len(t, sig, ed.SignatureSize)

	ok, err := VerifyDigest(acc.Address(), digest, hex.EncodeToString(sig))
	require.NoError(t, err)
	require.True(t, ok, "signature must verify")

	ok, err = VerifyDigest(acc.Address(), []byte("other digest"), hex.EncodeToString(sig))
	require.NoError(t, err)
	require.False(t, ok, "signature must not verify for other digests")
}

func TestDerivationIsDeterministic(t *testing.T) {
	w, err := NewRAMWallet(ptest.Prng(t))
	require.NoError(t, err, "creating wallet")

	acc := w.NewAccount()
	w.LockAll()

	unlocked, err := w.Unlock(acc.Address())
	require.NoError(t, err, "unlocking account")
	require.Equal(t, acc.Address(), unlocked.Address(), "re-derived key must match")
}

func TestWalletPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo_wallet")

	w, err := CreateOrLoadWallet(path, ptest.Prng(t))
	require.NoError(t, err, "creating wallet")

	acc := w.NewAccount()

	// Unused accounts are not persisted.
	load, err := CreateOrLoadWallet(path, nil)
	require.NoError(t, err, "loading wallet")
	_, err = load.Unlock(acc.Address())
	require.Error(t, err, "expected unlocking to fail")

	require.NoError(t, w.IncrementUsage(acc.Address()))
	load, err = CreateOrLoadWallet(path, nil)
	require.NoError(t, err, "loading wallet")

	acc2, err := load.Unlock(acc.Address())
	require.NoError(t, err, "unlocking account")
	require.Equal(t, acc, acc2, "loaded account must be the generated account")
}

func TestUsageCountingCollectsAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo_wallet")

	w, err := CreateOrLoadWallet(path, ptest.Prng(t))
	require.NoError(t, err, "creating wallet")

	acc := w.NewAccount()
	addr := acc.Address()

	require.NoError(t, w.IncrementUsage(addr))
	require.NoError(t, w.IncrementUsage(addr))
	require.NoError(t, w.DecrementUsage(addr))
	_, err = w.Unlock(addr)
	require.NoError(t, err, "account must survive while still in use")

	require.NoError(t, w.DecrementUsage(addr))
	_, err = w.Unlock(addr)
	require.Error(t, err, "account must be collected once unused")

	require.Error(t, w.DecrementUsage(addr), "decrementing a collected account")
}

func TestAddresses(t *testing.T) {
	w, err := NewRAMWallet(ptest.Prng(t))
	require.NoError(t, err, "creating wallet")
	require.Empty(t, w.Addresses())

	a := w.NewAccount().Address()
	b := w.NewAccount().Address()
	require.ElementsMatch(t, []connect.AccountAddress{a, b}, w.Addresses())
}
