// SPDX-License-Identifier: Apache-2.0

// Package schema contains the typed wrappers around raw smart contract
// schemas and signable messages that wallet connections consume. All
// constructors are pure functions over their input strings; constructors
// taking base64 or hex input enforce an exact re-encoding round-trip and
// fail with a decoding error otherwise.
package schema
