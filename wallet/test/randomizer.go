// SPDX-License-Identifier: Apache-2.0

// Package test creates throwaway wallets and accounts for tests.
package test

import (
	cr "crypto/rand"
	"io"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/wallet"
)

// NewWallet creates an unpersisted wallet seeded from crypto/rand.
func NewWallet() *wallet.Wallet {
	w, err := wallet.NewRAMWallet(cr.Reader)
	if err != nil {
		panic("NewWallet: failed to create wallet: " + err.Error())
	}
	return w
}

// NewSeededWallet creates an unpersisted wallet seeded from rng, for
// deterministic tests.
func NewSeededWallet(rng io.Reader) *wallet.Wallet {
	w, err := wallet.NewRAMWallet(rng)
	if err != nil {
		panic("NewSeededWallet: failed to create wallet: " + err.Error())
	}
	return w
}

// NewAddress derives a fresh account in w and returns its address.
func NewAddress(w *wallet.Wallet) connect.AccountAddress {
	return w.NewAccount().Address()
}
