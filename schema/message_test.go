// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/KatasonovYP/concordium-walletconnect/schema"
	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

func TestStringMessage(t *testing.T) {
	m := schema.NewStringMessage("hello wallet")
	require.Equal(t, schema.KindStringMessage, m.MessageKind())
	require.Equal(t, []byte("hello wallet"), m.Bytes())
}

func TestBinaryMessageFromHex(t *testing.T) {
	ts := schema.NewTypeSchema([]byte{0x14, 0x00})

	m, err := schema.BinaryMessageFromHex("deadbeef", ts)
	require.NoError(t, err)
	require.Equal(t, schema.KindBinaryMessage, m.MessageKind())
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, m.Bytes())
	require.Equal(t, "deadbeef", m.Hex())
	require.Equal(t, ts, m.Schema)
}

func TestBinaryMessageFromHexInvalid(t *testing.T) {
	ts := schema.NewTypeSchema([]byte{0x14, 0x00})
	for _, in := range []string{"deadbee", "DEADBEEF", "nothex"} {
		_, err := schema.BinaryMessageFromHex(in, ts)
		require.Error(t, err, "input %q", in)
		require.True(t, errors.Is(err, utils.ErrDecoding), "input %q", in)
	}
}

func TestTypedParametersEmpty(t *testing.T) {
	ts := schema.NewTypeSchema([]byte{0x14, 0x00})

	empty := []any{
		nil,
		"",
		[]byte{},
		json.RawMessage(nil),
		json.RawMessage("null"),
		map[string]any{},
		[]any{},
	}
	for _, v := range empty {
		require.True(t, schema.NewTypedParameters(v, ts).Empty(), "value %#v", v)
	}

	nonEmpty := []any{
		"tokenA",
		uint64(42),
		map[string]any{"amount": 1},
		[]any{"a"},
		json.RawMessage(`{"amount":1}`),
		struct{ A int }{1},
	}
	for _, v := range nonEmpty {
		require.False(t, schema.NewTypedParameters(v, ts).Empty(), "value %#v", v)
	}
}
