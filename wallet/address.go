// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"
	ed "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/pkg/errors"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
)

// addressVersion is the base58check version byte of account addresses.
const addressVersion = 1

// AddressFromPublicKey renders an account address for a verification key.
func AddressFromPublicKey(pk ed.PublicKey) connect.AccountAddress {
	return connect.AccountAddress(base58.CheckEncode(pk, addressVersion))
}

// DecodeAddress recovers the verification key behind an account address.
func DecodeAddress(addr connect.AccountAddress) (ed.PublicKey, error) {
	decoded, version, err := base58.CheckDecode(string(addr))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding account address %q", addr)
	}
	if version != addressVersion {
		return nil, errors.Errorf("account address %q: version %d, want %d", addr, version, addressVersion)
	}
	if len(decoded) != ed.PublicKeySize {
		return nil, errors.Errorf("account address %q: key length %d, want %d", addr, len(decoded), ed.PublicKeySize)
	}
	return ed.PublicKey(decoded), nil
}

// VerifyDigest checks a hex signature produced by the account behind addr
// over the given digest.
func VerifyDigest(addr connect.AccountAddress, digest []byte, signatureHex string) (bool, error) {
	pk, err := DecodeAddress(addr)
	if err != nil {
		return false, err
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false, errors.Wrap(err, "decoding signature hex")
	}
	return ed.Verify(pk, digest, sig), nil
}
