// SPDX-License-Identifier: Apache-2.0

// Package connect defines the protocol-agnostic wallet-connection
// contracts of a Concordium dApp: the operations available on an
// established connection, the connector that creates and owns connections
// for one wallet protocol, and the delegate surface over which wallets
// push asynchronous account and chain events.
//
// Wallet round-trips are modeled as promises awaited with a context;
// failures reject the promise rather than being reported through sentinel
// values. The only absent-value case is a user-cancelled connect, which
// resolves to an explicit None.
package connect
