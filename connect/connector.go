// SPDX-License-Identifier: Apache-2.0

package connect

import (
	"context"

	"github.com/moznion/go-optional"
)

// WalletConnector establishes and owns the connections of one wallet
// protocol. A connector is constructed by the application bootstrap with a
// network descriptor and a delegate, and may own any number of live
// connections at a time.
type WalletConnector interface {
	// Connect initiates the protocol-specific connection handshake and
	// blocks until the wallet approves, rejects, or the context is
	// cancelled. A user-cancelled connect resolves to None with a nil
	// error; wallet rejection fails with ErrUserRejected. Cancellation
	// support is optional per protocol: some protocols cannot tell a
	// cancelled handshake from a pending one.
	Connect(ctx context.Context) (optional.Option[WalletConnection], error)

	// Connections returns a snapshot of the live connections owned by
	// this connector.
	Connections() []WalletConnection

	// Disconnect disconnects every connection owned by this connector and
	// releases protocol-level resources such as the underlying session or
	// transport. Concrete guarantees are protocol-specific.
	Disconnect(ctx context.Context) error
}
