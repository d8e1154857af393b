// SPDX-License-Identifier: Apache-2.0

package connect

import (
	"context"

	"github.com/chebyrash/promise"

	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

// WalletConnection is one live session between the dApp and a wallet, with
// one active account at a time. It is created and owned by exactly one
// WalletConnector; holders of a connection use it but do not own its
// lifecycle.
//
// The contract defines no concurrency control: ordering of concurrent
// signing requests on one connection is up to the concrete wallet backend,
// which must document its own serialization policy.
type WalletConnection interface {
	// Connector returns the connector that owns this connection.
	Connector() WalletConnector

	// Ping checks that the connection is still usable. An error means it
	// is not; whether and when to retry is the caller's decision.
	Ping(ctx context.Context) error

	// JSONRPCClient returns the JSON-RPC client for the connection's
	// network. It fails with network.ErrRPCDisabled when the network has
	// no proxy URL configured, and with ErrUnsupportedOperation when the
	// connected wallet does not support the required API generation.
	//
	// Deprecated: kept for compatibility with the previous API
	// generation. New code should obtain a client from a
	// network.Registry, keyed only by the network descriptor.
	JSONRPCClient() (*network.RPCClient, error)

	// SignAndSendTransaction submits a transaction of the given type from
	// sender for wallet approval and resolves to the transaction hash
	// once submitted. The promise rejects with ErrUserRejected when
	// approval is denied, ErrInvalidTypedParams on typed parameter
	// misuse, and ErrTransport on submission failure. There is no
	// cancellation once the request is issued; abandoning the await does
	// not withdraw it from the wallet.
	SignAndSendTransaction(
		ctx context.Context,
		sender AccountAddress,
		txType TransactionType,
		payload TransactionPayload,
		typedParams *schema.TypedParameters,
	) *promise.Promise[TransactionHash]

	// SignMessage asks the wallet to sign msg on behalf of signer and
	// resolves to the per-credential signature set. The promise rejects
	// with ErrUserRejected when approval is denied.
	SignMessage(ctx context.Context, signer AccountAddress, msg schema.SignableMessage) *promise.Promise[AccountSignatureSet]

	// Disconnect initiates teardown of the connection. Returning without
	// error only guarantees that the local side stops using the session,
	// not that the wallet has dropped it too.
	Disconnect(ctx context.Context) error
}

// WithJSONRPCClient resolves the RPC client of conn and invokes f with it.
// Both a client resolution failure and a failure of f are propagated
// unchanged; f is not invoked when resolution fails.
func WithJSONRPCClient[T any](ctx context.Context, conn WalletConnection, f func(context.Context, *network.RPCClient) (T, error)) (T, error) {
	client, err := conn.JSONRPCClient()
	if err != nil {
		var zero T
		return zero, err
	}
	return f(ctx, client)
}
