// SPDX-License-Identifier: Apache-2.0

package connect

import (
	"sync"

	"github.com/moznion/go-optional"
)

// WalletConnectionDelegate is the callback surface over which connectors
// and connections report wallet-driven events. Callbacks are synchronous
// and may be invoked redundantly with unchanged values: the interface
// gives no deduplication guarantee, so implementers must diff against
// their last known state before reacting. NewDedupDelegate does that
// diffing once, generically.
type WalletConnectionDelegate interface {
	// OnChainChanged reports the genesis hash of the chain the wallet is
	// now on.
	OnChainChanged(conn WalletConnection, genesisHash string)
	// OnAccountChanged reports the account now active in the wallet.
	OnAccountChanged(conn WalletConnection, address AccountAddress)
	// OnConnected reports an established connection and its initial
	// account, which is None when the wallet has no account selected.
	OnConnected(conn WalletConnection, address optional.Option[AccountAddress])
	// OnDisconnected reports that the wallet ended the session.
	OnDisconnected(conn WalletConnection)
}

type delegateState struct {
	connected bool
	chain     string
	account   AccountAddress
}

// DedupDelegate forwards delegate callbacks to an inner delegate,
// suppressing redundant chain and account notifications per connection.
type DedupDelegate struct {
	inner WalletConnectionDelegate

	mu    sync.Mutex
	state map[WalletConnection]*delegateState
}

var _ WalletConnectionDelegate = (*DedupDelegate)(nil)

// NewDedupDelegate wraps inner with per-connection state diffing.
func NewDedupDelegate(inner WalletConnectionDelegate) *DedupDelegate {
	return &DedupDelegate{
		inner: inner,
		state: make(map[WalletConnection]*delegateState),
	}
}

func (d *DedupDelegate) OnConnected(conn WalletConnection, address optional.Option[AccountAddress]) {
	d.mu.Lock()
	st := d.stateFor(conn)
	if st.connected {
		d.mu.Unlock()
		return
	}
	st.connected = true
	st.account = address.TakeOr("")
	d.mu.Unlock()

	d.inner.OnConnected(conn, address)
}

func (d *DedupDelegate) OnChainChanged(conn WalletConnection, genesisHash string) {
	d.mu.Lock()
	st := d.stateFor(conn)
	if st.chain == genesisHash {
		d.mu.Unlock()
		return
	}
	st.chain = genesisHash
	d.mu.Unlock()

	d.inner.OnChainChanged(conn, genesisHash)
}

func (d *DedupDelegate) OnAccountChanged(conn WalletConnection, address AccountAddress) {
	d.mu.Lock()
	st := d.stateFor(conn)
	if st.account == address {
		d.mu.Unlock()
		return
	}
	st.account = address
	d.mu.Unlock()

	d.inner.OnAccountChanged(conn, address)
}

func (d *DedupDelegate) OnDisconnected(conn WalletConnection) {
	d.mu.Lock()
	st, known := d.state[conn]
	connected := known && st.connected
	delete(d.state, conn)
	d.mu.Unlock()

	if connected {
		d.inner.OnDisconnected(conn)
	}
}

// stateFor must be called with d.mu held.
func (d *DedupDelegate) stateFor(conn WalletConnection) *delegateState {
	st, ok := d.state[conn]
	if !ok {
		st = &delegateState{}
		d.state[conn] = st
	}
	return st
}
