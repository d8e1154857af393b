// SPDX-License-Identifier: Apache-2.0

// Package wallet contains the in-process key store backing the local
// wallet connector. It derives ed25519 account keys from a random seed,
// renders account addresses in base58check, and garbage-collects keys
// that no connection uses anymore. It stands in for an external wallet
// application in demos and tests; real wallet protocols never see it.
package wallet // import "github.com/KatasonovYP/concordium-walletconnect/wallet"
