// SPDX-License-Identifier: Apache-2.0

// Package client is the dApp-side convenience layer. A Client owns one
// WalletConnector, tracks the session state reported through the delegate
// callbacks and exposes the common wallet round-trips as plain blocking
// calls.
package client

import (
	"context"
	"sync"

	"github.com/moznion/go-optional"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

// ErrNotConnected is returned by operations that need an active session.
var ErrNotConnected = errors.New("no active wallet connection")

// ConnectorFactory builds the connector a Client drives. The factory
// receives the delegate the connector must report events to; the Client
// passes its own state tracker, already wrapped in the deduplication
// filter.
type ConnectorFactory func(delegate connect.WalletConnectionDelegate) connect.WalletConnector

// Client drives a wallet connector on behalf of a dApp.
type Client struct {
	log       *logrus.Entry
	network   network.Network
	connector connect.WalletConnector

	mutex   sync.Mutex
	conn    connect.WalletConnection
	account optional.Option[connect.AccountAddress]
	chain   string
}

// New creates a client for the given network. The factory is called once
// with the client's delegate and must return the connector to drive.
func New(net network.Network, factory ConnectorFactory) *Client {
	c := &Client{
		log:     logrus.WithField("client", net.Name),
		network: net,
	}
	c.connector = factory(connect.NewDedupDelegate((*stateTracker)(c)))
	return c
}

// stateTracker is the Client's view of the delegate callbacks. It is a
// separate type so that the delegate methods do not clutter the Client
// API.
type stateTracker Client

var _ connect.WalletConnectionDelegate = (*stateTracker)(nil)

func (s *stateTracker) OnConnected(conn connect.WalletConnection, address optional.Option[connect.AccountAddress]) {
	s.mutex.Lock()
	s.conn = conn
	s.account = address
	s.mutex.Unlock()
	s.log.WithField("account", address.TakeOr("<none>")).Info("Wallet connected.")
}

func (s *stateTracker) OnChainChanged(conn connect.WalletConnection, genesisHash string) {
	s.mutex.Lock()
	if conn != s.conn {
		s.mutex.Unlock()
		return
	}
	s.chain = genesisHash
	s.mutex.Unlock()
	if genesisHash != s.network.GenesisHash {
		s.log.WithField("genesis", genesisHash).Warn("Wallet is on a different chain.")
	}
}

func (s *stateTracker) OnAccountChanged(conn connect.WalletConnection, address connect.AccountAddress) {
	s.mutex.Lock()
	if s.conn == conn {
		s.account = optional.Some(address)
	}
	s.mutex.Unlock()
	s.log.WithField("account", address).Info("Selected account changed.")
}

func (s *stateTracker) OnDisconnected(conn connect.WalletConnection) {
	s.mutex.Lock()
	if s.conn == conn {
		s.conn = nil
		s.account = optional.None[connect.AccountAddress]()
	}
	s.mutex.Unlock()
	s.log.Info("Wallet disconnected.")
}

// Connect opens a session. It returns false without error when the user
// abandoned the request, and true once a session is active. Calling it
// with an active session is a no-op.
func (c *Client) Connect(ctx context.Context) (bool, error) {
	if c.Connected() {
		return true, nil
	}
	opt, err := c.connector.Connect(ctx)
	if err != nil {
		return false, errors.WithMessage(err, "connecting wallet")
	}
	if !opt.IsSome() {
		c.log.Info("Connect abandoned.")
		return false, nil
	}
	// State is captured by the delegate; nothing to store here.
	return true, nil
}

// Connected reports whether a session is active.
func (c *Client) Connected() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.conn != nil
}

// Account returns the currently selected account.
func (c *Client) Account() (connect.AccountAddress, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn == nil {
		return "", ErrNotConnected
	}
	addr, err := c.account.Take()
	if err != nil {
		return "", errors.New("no account selected")
	}
	return addr, nil
}

// Chain returns the genesis hash last reported by the wallet, or empty if
// none was reported yet.
func (c *Client) Chain() string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.chain
}

func (c *Client) connection() (connect.WalletConnection, connect.AccountAddress, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.conn == nil {
		return nil, "", ErrNotConnected
	}
	addr, err := c.account.Take()
	if err != nil {
		return nil, "", errors.New("no account selected")
	}
	return c.conn, addr, nil
}

// SendTransaction signs and submits a transaction with the selected
// account and waits for the transaction hash.
func (c *Client) SendTransaction(
	ctx context.Context,
	txType connect.TransactionType,
	payload connect.TransactionPayload,
	typedParams *schema.TypedParameters,
) (connect.TransactionHash, error) {
	conn, sender, err := c.connection()
	if err != nil {
		return "", err
	}
	hash, err := conn.SignAndSendTransaction(ctx, sender, txType, payload, typedParams).Await(ctx)
	if err != nil {
		return "", errors.WithMessagef(err, "sending %s transaction", txType)
	}
	return *hash, nil
}

// SendTransfer sends a plain CCD transfer to the given receiver.
func (c *Client) SendTransfer(ctx context.Context, receiver connect.AccountAddress, amount connect.MicroCCD) (connect.TransactionHash, error) {
	return c.SendTransaction(ctx, connect.Transfer, connect.TransferPayload{
		Amount:   amount,
		Receiver: receiver,
	}, nil)
}

// SignString asks the wallet to sign a UTF-8 string with the selected
// account and waits for the signatures.
func (c *Client) SignString(ctx context.Context, value string) (connect.AccountSignatureSet, error) {
	conn, signer, err := c.connection()
	if err != nil {
		return nil, err
	}
	sigs, err := conn.SignMessage(ctx, signer, schema.NewStringMessage(value)).Await(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "signing message")
	}
	return *sigs, nil
}

// ConsensusStatus queries the node behind the wallet's JSON-RPC endpoint.
func (c *Client) ConsensusStatus(ctx context.Context) (network.ConsensusStatus, error) {
	c.mutex.Lock()
	conn := c.conn
	c.mutex.Unlock()
	if conn == nil {
		return network.ConsensusStatus{}, ErrNotConnected
	}
	return connect.WithJSONRPCClient(ctx, conn,
		func(ctx context.Context, rpc *network.RPCClient) (network.ConsensusStatus, error) {
			return rpc.GetConsensusStatus(ctx)
		})
}

// ExplorerURL renders the CCDScan link for a transaction hash.
func (c *Client) ExplorerURL(hash connect.TransactionHash) string {
	return c.network.TransactionURL(string(hash))
}

// AccountExplorerURL renders the CCDScan link for the selected account.
func (c *Client) AccountExplorerURL() (string, error) {
	addr, err := c.Account()
	if err != nil {
		return "", err
	}
	return c.network.AccountURL(string(addr)), nil
}

// Connector exposes the underlying connector.
func (c *Client) Connector() connect.WalletConnector {
	return c.connector
}

// Shutdown disconnects the connector and with it any active session.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.connector.Disconnect(ctx)
}
