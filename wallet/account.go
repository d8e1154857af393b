// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"crypto"

	ed "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
)

// Account is an ed25519 signing key held by the key store. It signs
// transaction and message digests on behalf of one account address.
type Account ed.PrivateKey

// Address returns the base58check account address derived from the
// account's public key.
func (a Account) Address() connect.AccountAddress {
	return AddressFromPublicKey(a.PublicKey())
}

// PublicKey returns the account's verification key.
func (a Account) PublicKey() ed.PublicKey {
	return ed.PrivateKey(a).Public().(ed.PublicKey)
}

// SignDigest signs a request digest with the account key.
func (a Account) SignDigest(digest []byte) ([]byte, error) {
	return ed.PrivateKey(a).Sign(nil, digest, crypto.Hash(0))
}

func (a Account) clear() {
	for i := range a[:] {
		a[i] = 0
	}
}
