// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	pkgsync "polycry.pt/poly-go/sync"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/wallet"
)

// requiredAPIVersion is the minimum wallet API generation that exposes a
// JSON-RPC client to the dApp.
const requiredAPIVersion = 1

// Connector hands out in-process wallet connections. One Connector
// corresponds to one wallet application on one network.
type Connector struct {
	network    network.Network
	wallet     *wallet.Wallet
	delegate   connect.WalletConnectionDelegate
	approver   Approver
	log        *logrus.Entry
	apiVersion int

	mutex  sync.Mutex // protects conns
	conns  []*Connection
	closer *pkgsync.Closer
}

var _ connect.WalletConnector = (*Connector)(nil)

// Option configures a Connector at construction time.
type Option func(*Connector)

// WithApprover replaces the default AutoApprover.
func WithApprover(a Approver) Option {
	return func(c *Connector) { c.approver = a }
}

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Connector) { c.log = l }
}

// WithAPIVersion overrides the advertised wallet API generation. Versions
// below requiredAPIVersion make JSONRPCClient unsupported, which mimics
// older wallets.
func WithAPIVersion(v int) Option {
	return func(c *Connector) { c.apiVersion = v }
}

// NewConnector creates a connector serving connections on the given
// network, signing with the given wallet and reporting events to the given
// delegate.
func NewConnector(net network.Network, w *wallet.Wallet, delegate connect.WalletConnectionDelegate, opts ...Option) *Connector {
	c := &Connector{
		network:    net,
		wallet:     w,
		delegate:   delegate,
		approver:   AutoApprover{},
		log:        logrus.WithField("connector", net.Name),
		apiVersion: requiredAPIVersion,
		closer:     new(pkgsync.Closer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Network returns the network this connector serves.
func (c *Connector) Network() network.Network {
	return c.network
}

// Connect opens a new session. The returned option is None exactly when
// the user abandoned the request, which is signalled here by cancellation
// of ctx during approval. A decline by the approver is an
// ErrUserRejected.
func (c *Connector) Connect(ctx context.Context) (optional.Option[connect.WalletConnection], error) {
	if c.closer.IsClosed() {
		return optional.None[connect.WalletConnection](), errors.Wrap(connect.ErrTransport, "connector closed")
	}

	account := c.defaultAccount()
	approved, err := c.approver.ApproveConnect(ctx, ConnectRequest{Network: c.network, Account: account})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			c.log.Info("Connect abandoned by user.")
			return optional.None[connect.WalletConnection](), nil
		}
		return optional.None[connect.WalletConnection](), errors.Wrap(connect.ErrTransport, err.Error())
	}
	if !approved {
		return optional.None[connect.WalletConnection](), errors.Wrap(connect.ErrUserRejected, "connect declined")
	}

	conn := &Connection{
		id:        uuid.NewString(),
		connector: c,
		account:   account,
	}
	conn.log = c.log.WithField("session", conn.id)
	if account != "" {
		if err := c.wallet.IncrementUsage(account); err != nil {
			return optional.None[connect.WalletConnection](), errors.WithMessage(err, "registering account usage")
		}
	}

	c.mutex.Lock()
	c.conns = append(c.conns, conn)
	c.mutex.Unlock()

	conn.log.WithField("account", account).Info("Session established.")
	c.delegate.OnConnected(conn, optionalAccount(account))
	c.delegate.OnChainChanged(conn, c.network.GenesisHash)
	return optional.Some[connect.WalletConnection](conn), nil
}

// Connections returns a snapshot of the currently open connections.
func (c *Connector) Connections() []connect.WalletConnection {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	conns := make([]connect.WalletConnection, len(c.conns))
	for i, conn := range c.conns {
		conns[i] = conn
	}
	return conns
}

// Disconnect closes all open connections and then the connector itself.
// Connections established after this call fail with ErrTransport.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mutex.Lock()
	conns := append([]*Connection(nil), c.conns...)
	c.mutex.Unlock()

	var firstErr error
	for _, conn := range conns {
		if err := conn.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := c.closer.Close(); err != nil && !pkgsync.IsAlreadyClosedError(err) && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// defaultAccount proposes the wallet's lexicographically first address, or
// empty if the wallet holds none yet.
func (c *Connector) defaultAccount() connect.AccountAddress {
	addrs := c.wallet.Addresses()
	if len(addrs) == 0 {
		return ""
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs[0]
}

func (c *Connector) remove(conn *Connection) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for i, cand := range c.conns {
		if cand == conn {
			c.conns = append(c.conns[:i], c.conns[i+1:]...)
			return
		}
	}
}

func optionalAccount(addr connect.AccountAddress) optional.Option[connect.AccountAddress] {
	if addr == "" {
		return optional.None[connect.AccountAddress]()
	}
	return optional.Some(addr)
}
