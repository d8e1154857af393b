// SPDX-License-Identifier: Apache-2.0

// Package local implements the wallet-connection contracts against an
// in-process key store instead of an external wallet application. It backs
// the demo binary and is a convenient reference backend for tests: the
// approval step of a real wallet is modeled by a pluggable Approver, and
// everything else behaves like a concrete connector, including delegate
// notifications and connection ownership.
//
// Serialization policy: wallet round-trips on one connection are
// serialized with a per-connection mutex; concurrent requests queue in
// arrival order.
package local
