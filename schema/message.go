// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/hex"

	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

// MessageKind discriminates the SignableMessage variants.
type MessageKind string

const (
	// KindStringMessage is the discriminant of a plain text message.
	KindStringMessage MessageKind = "StringMessage"
	// KindBinaryMessage is the discriminant of a raw binary message.
	KindBinaryMessage MessageKind = "BinaryMessage"
)

// SignableMessage is a message that a wallet can be asked to sign on behalf
// of an account: either plain text or raw bytes accompanied by the type
// schema describing how the wallet should render them for approval.
type SignableMessage interface {
	// MessageKind returns the variant discriminant.
	MessageKind() MessageKind
	// Bytes returns the payload that is actually signed.
	Bytes() []byte
}

// StringMessage carries a plain text payload.
type StringMessage struct {
	Value string
}

var _ SignableMessage = StringMessage{}

func (StringMessage) MessageKind() MessageKind { return KindStringMessage }

func (m StringMessage) Bytes() []byte { return []byte(m.Value) }

// BinaryMessage carries raw payload bytes together with the mandatory type
// schema that tells the wallet how to interpret them.
type BinaryMessage struct {
	Value  []byte
	Schema TypeSchema
}

var _ SignableMessage = BinaryMessage{}

func (BinaryMessage) MessageKind() MessageKind { return KindBinaryMessage }

func (m BinaryMessage) Bytes() []byte { return m.Value }

// Hex returns the canonical hex rendering of the payload bytes.
func (m BinaryMessage) Hex() string { return hex.EncodeToString(m.Value) }

// NewStringMessage wraps a plain text message. No validation is performed.
func NewStringMessage(msg string) StringMessage {
	return StringMessage{Value: msg}
}

// BinaryMessageFromHex decodes a binary message payload from its canonical
// hex representation. Fails with utils.ErrDecoding if the input is
// malformed or does not round-trip exactly.
func BinaryMessageFromHex(msgHex string, typeSchema TypeSchema) (BinaryMessage, error) {
	value, err := utils.DecodeHexExact(msgHex)
	if err != nil {
		return BinaryMessage{}, err
	}
	return BinaryMessage{Value: value, Schema: typeSchema}, nil
}
