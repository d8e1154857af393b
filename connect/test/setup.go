// SPDX-License-Identifier: Apache-2.0

// Package test provides scriptable fakes for the wallet-connection
// contracts, used by this repo's tests and usable by downstream consumers
// testing delegate handling.
package test

import (
	"context"
	"sync"

	"github.com/chebyrash/promise"
	"github.com/moznion/go-optional"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

// MockConnection implements connect.WalletConnection by delegating to its
// function fields. Nil fields fall back to succeeding no-ops.
type MockConnection struct {
	ConnectorFn     func() connect.WalletConnector
	PingFn          func(ctx context.Context) error
	JSONRPCClientFn func() (*network.RPCClient, error)
	SignAndSendFn   func(ctx context.Context, sender connect.AccountAddress, txType connect.TransactionType, payload connect.TransactionPayload, typed *schema.TypedParameters) (connect.TransactionHash, error)
	SignMessageFn   func(ctx context.Context, signer connect.AccountAddress, msg schema.SignableMessage) (connect.AccountSignatureSet, error)
	DisconnectFn    func(ctx context.Context) error
}

var _ connect.WalletConnection = (*MockConnection)(nil)

func (c *MockConnection) Connector() connect.WalletConnector {
	if c.ConnectorFn == nil {
		return nil
	}
	return c.ConnectorFn()
}

func (c *MockConnection) Ping(ctx context.Context) error {
	if c.PingFn == nil {
		return nil
	}
	return c.PingFn(ctx)
}

func (c *MockConnection) JSONRPCClient() (*network.RPCClient, error) {
	if c.JSONRPCClientFn == nil {
		return nil, connect.ErrUnsupportedOperation
	}
	return c.JSONRPCClientFn()
}

func (c *MockConnection) SignAndSendTransaction(
	ctx context.Context,
	sender connect.AccountAddress,
	txType connect.TransactionType,
	payload connect.TransactionPayload,
	typed *schema.TypedParameters,
) *promise.Promise[connect.TransactionHash] {
	return promise.New(func(resolve func(connect.TransactionHash), reject func(error)) {
		if err := connect.ValidateTransactionRequest(txType, payload, typed); err != nil {
			reject(err)
			return
		}
		if c.SignAndSendFn == nil {
			resolve(connect.TransactionHash(""))
			return
		}
		hash, err := c.SignAndSendFn(ctx, sender, txType, payload, typed)
		if err != nil {
			reject(err)
			return
		}
		resolve(hash)
	})
}

func (c *MockConnection) SignMessage(ctx context.Context, signer connect.AccountAddress, msg schema.SignableMessage) *promise.Promise[connect.AccountSignatureSet] {
	return promise.New(func(resolve func(connect.AccountSignatureSet), reject func(error)) {
		if c.SignMessageFn == nil {
			resolve(connect.AccountSignatureSet{})
			return
		}
		sigs, err := c.SignMessageFn(ctx, signer, msg)
		if err != nil {
			reject(err)
			return
		}
		resolve(sigs)
	})
}

func (c *MockConnection) Disconnect(ctx context.Context) error {
	if c.DisconnectFn == nil {
		return nil
	}
	return c.DisconnectFn(ctx)
}

// MockConnector implements connect.WalletConnector over a fixed list of
// connections.
type MockConnector struct {
	ConnectFn func(ctx context.Context) (optional.Option[connect.WalletConnection], error)
	Conns     []connect.WalletConnection
}

var _ connect.WalletConnector = (*MockConnector)(nil)

func (c *MockConnector) Connect(ctx context.Context) (optional.Option[connect.WalletConnection], error) {
	if c.ConnectFn == nil {
		return optional.None[connect.WalletConnection](), nil
	}
	return c.ConnectFn(ctx)
}

func (c *MockConnector) Connections() []connect.WalletConnection {
	out := make([]connect.WalletConnection, len(c.Conns))
	copy(out, c.Conns)
	return out
}

func (c *MockConnector) Disconnect(ctx context.Context) error {
	for _, conn := range c.Conns {
		if err := conn.Disconnect(ctx); err != nil {
			return err
		}
	}
	c.Conns = nil
	return nil
}

// DelegateEvent is one recorded delegate callback.
type DelegateEvent struct {
	Kind    string // "connected", "chain", "account", "disconnected"
	Conn    connect.WalletConnection
	Chain   string
	Account connect.AccountAddress
	// HasAccount distinguishes a connect with no selected account.
	HasAccount bool
}

// RecordingDelegate records every delegate callback it receives, in order.
// Safe for concurrent use.
type RecordingDelegate struct {
	mu     sync.Mutex
	events []DelegateEvent
}

var _ connect.WalletConnectionDelegate = (*RecordingDelegate)(nil)

func (d *RecordingDelegate) OnConnected(conn connect.WalletConnection, address optional.Option[connect.AccountAddress]) {
	d.record(DelegateEvent{
		Kind:       "connected",
		Conn:       conn,
		Account:    address.TakeOr(""),
		HasAccount: address.IsSome(),
	})
}

func (d *RecordingDelegate) OnChainChanged(conn connect.WalletConnection, genesisHash string) {
	d.record(DelegateEvent{Kind: "chain", Conn: conn, Chain: genesisHash})
}

func (d *RecordingDelegate) OnAccountChanged(conn connect.WalletConnection, address connect.AccountAddress) {
	d.record(DelegateEvent{Kind: "account", Conn: conn, Account: address, HasAccount: true})
}

func (d *RecordingDelegate) OnDisconnected(conn connect.WalletConnection) {
	d.record(DelegateEvent{Kind: "disconnected", Conn: conn})
}

func (d *RecordingDelegate) record(ev DelegateEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
}

// Events returns a copy of everything recorded so far.
func (d *RecordingDelegate) Events() []DelegateEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DelegateEvent, len(d.events))
	copy(out, d.events)
	return out
}

// Count returns how many events of the given kind were recorded.
func (d *RecordingDelegate) Count(kind string) int {
	n := 0
	for _, ev := range d.Events() {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
