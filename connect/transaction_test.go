// SPDX-License-Identifier: Apache-2.0

package connect_test

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

func typedParams(t *testing.T, value any) *schema.TypedParameters {
	t.Helper()
	s, err := schema.ModuleSchemaFromBase64("AAE=", optional.None[uint8]())
	require.NoError(t, err)
	p := schema.NewTypedParameters(value, s)
	return &p
}

func TestValidateTransactionRequestAcceptsWellFormed(t *testing.T) {
	require.NoError(t, connect.ValidateTransactionRequest(
		connect.Transfer,
		connect.TransferPayload{Amount: 1_000_000, Receiver: "3kBx2h5Y"},
		nil,
	))

	require.NoError(t, connect.ValidateTransactionRequest(
		connect.UpdateContract,
		connect.UpdateContractPayload{
			Address:                    connect.ContractAddress{Index: 81},
			ReceiveName:                "auction.bid",
			MaxContractExecutionEnergy: 30000,
		},
		typedParams(t, map[string]any{"amount": 50}),
	))

	// Parameterless init needs no typed parameters.
	require.NoError(t, connect.ValidateTransactionRequest(
		connect.InitContract,
		connect.InitContractPayload{ModuleRef: "9d48", InitName: "init_auction"},
		nil,
	))
}

func TestValidateTransactionRequestRejectsTypedParamsForPlainTypes(t *testing.T) {
	err := connect.ValidateTransactionRequest(
		connect.Transfer,
		connect.TransferPayload{Amount: 1, Receiver: "3kBx2h5Y"},
		typedParams(t, map[string]any{"amount": 50}),
	)
	require.True(t, errors.Is(err, connect.ErrInvalidTypedParams))
}

func TestValidateTransactionRequestRejectsEmptyTypedParams(t *testing.T) {
	err := connect.ValidateTransactionRequest(
		connect.UpdateContract,
		connect.UpdateContractPayload{ReceiveName: "auction.bid"},
		typedParams(t, nil),
	)
	require.True(t, errors.Is(err, connect.ErrInvalidTypedParams))
}

func TestValidateTransactionRequestRejectsMissingSchema(t *testing.T) {
	p := schema.TypedParameters{Parameters: map[string]any{"amount": 1}}
	err := connect.ValidateTransactionRequest(
		connect.UpdateContract,
		connect.UpdateContractPayload{ReceiveName: "auction.bid"},
		&p,
	)
	require.True(t, errors.Is(err, connect.ErrInvalidTypedParams))
}

func TestValidateTransactionRequestRejectsRawParameters(t *testing.T) {
	// Update with non-empty parameters but no typed parameters.
	err := connect.ValidateTransactionRequest(
		connect.UpdateContract,
		connect.UpdateContractPayload{
			ReceiveName: "auction.bid",
			Parameters:  []byte{0x01, 0x02},
		},
		nil,
	)
	require.True(t, errors.Is(err, connect.ErrInvalidTypedParams))

	// Raw parameters are rejected even alongside typed parameters.
	err = connect.ValidateTransactionRequest(
		connect.InitContract,
		connect.InitContractPayload{InitName: "init_auction", Parameters: []byte{0x01}},
		typedParams(t, map[string]any{"amount": 1}),
	)
	require.True(t, errors.Is(err, connect.ErrInvalidTypedParams))
}

func TestTransactionTypeString(t *testing.T) {
	require.Equal(t, "transfer", connect.Transfer.String())
	require.Equal(t, "update", connect.UpdateContract.String())
	require.Equal(t, "initContract", connect.InitContract.String())
	require.Equal(t, "transactionType(99)", connect.TransactionType(99).String())
}

func TestContractAddressString(t *testing.T) {
	require.Equal(t, "<81,0>", connect.ContractAddress{Index: 81}.String())
}

func TestSingleSignature(t *testing.T) {
	set := connect.SingleSignature(0, 0, "aabb")
	require.Equal(t, "aabb", set[0][0])
}
