// SPDX-License-Identifier: Apache-2.0

package connect

// AccountAddress is the base58check rendering of a Concordium account
// address. The exact format is defined by the concrete wallet protocol;
// this layer treats it as opaque.
type AccountAddress string

// TransactionHash identifies a submitted transaction as 64 lowercase hex
// characters.
type TransactionHash string

// AccountSignatureSet is a signature collection keyed per credential: the
// outer key is the credential index, the inner key the key index within
// that credential, and the value the hex encoded signature.
type AccountSignatureSet map[uint8]map[uint8]string

// SingleSignature builds a signature set holding one signature.
func SingleSignature(credIndex, keyIndex uint8, signatureHex string) AccountSignatureSet {
	return AccountSignatureSet{credIndex: {keyIndex: signatureHex}}
}
