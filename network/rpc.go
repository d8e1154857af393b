// SPDX-License-Identifier: Apache-2.0

package network

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// ErrRPCDisabled is returned when a JSON-RPC client is requested for a
// network whose descriptor has no proxy URL configured.
var ErrRPCDisabled = errors.New("no JSON-RPC proxy configured for network")

// RPCClient is a client for a network's JSON-RPC proxy. Obtain one from a
// Registry, keyed only by the network descriptor; clients are independent
// of any wallet connection.
type RPCClient struct {
	inner   *gethrpc.Client
	network Network
}

// DialRPC connects to the network's JSON-RPC proxy.
func DialRPC(ctx context.Context, n Network) (*RPCClient, error) {
	if !n.HasJSONRPC() {
		return nil, errors.Wrapf(ErrRPCDisabled, "network %q", n.Name)
	}
	inner, err := gethrpc.DialContext(ctx, n.JSONRPCURL)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing JSON-RPC proxy %q", n.JSONRPCURL)
	}
	return &RPCClient{inner: inner, network: n}, nil
}

// Network returns the descriptor the client was dialed for.
func (c *RPCClient) Network() Network { return c.network }

// Call performs a raw JSON-RPC call, decoding the response into result.
func (c *RPCClient) Call(ctx context.Context, result any, method string, args ...any) error {
	return errors.Wrapf(c.inner.CallContext(ctx, result, method, args...), "JSON-RPC %s", method)
}

// ConsensusStatus is the subset of the proxy's consensus status consumed
// by dApps.
type ConsensusStatus struct {
	BestBlock          string `json:"bestBlock"`
	BestBlockHeight    uint64 `json:"bestBlockHeight"`
	GenesisBlock       string `json:"genesisBlock"`
	LastFinalizedBlock string `json:"lastFinalizedBlock"`
}

// GetConsensusStatus queries the chain's consensus status.
func (c *RPCClient) GetConsensusStatus(ctx context.Context) (ConsensusStatus, error) {
	var status ConsensusStatus
	err := c.Call(ctx, &status, "getConsensusStatus")
	return status, err
}

// GetAccountInfo queries the state of an account in the given block. The
// account layout is proxy-defined, so it is returned undecoded.
func (c *RPCClient) GetAccountInfo(ctx context.Context, address, blockHash string) (json.RawMessage, error) {
	var info json.RawMessage
	err := c.Call(ctx, &info, "getAccountInfo", address, blockHash)
	return info, err
}

// GetTransactionStatus queries the status of a submitted transaction.
func (c *RPCClient) GetTransactionStatus(ctx context.Context, txHash string) (json.RawMessage, error) {
	var status json.RawMessage
	err := c.Call(ctx, &status, "getTransactionStatus", txHash)
	return status, err
}

// SendAccountTransaction submits a serialized account transaction through
// the proxy and reports whether the node accepted it.
func (c *RPCClient) SendAccountTransaction(ctx context.Context, tx []byte) (bool, error) {
	var accepted bool
	err := c.Call(ctx, &accepted, "sendAccountTransaction", base64.StdEncoding.EncodeToString(tx))
	return accepted, err
}

// Close tears down the underlying transport.
func (c *RPCClient) Close() {
	c.inner.Close()
}

// Registry caches one JSON-RPC client per network, keyed by network name.
// The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*RPCClient
}

// DefaultRegistry is the registry used by connection-bound client lookups.
var DefaultRegistry = &Registry{}

// Client returns the cached client for n, dialing it on first use. Fails
// with ErrRPCDisabled if the network has no proxy URL.
func (r *Registry) Client(ctx context.Context, n Network) (*RPCClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[n.Name]; ok {
		return c, nil
	}
	c, err := DialRPC(ctx, n)
	if err != nil {
		return nil, err
	}
	if r.clients == nil {
		r.clients = make(map[string]*RPCClient)
	}
	r.clients[n.Name] = c
	return c, nil
}

// Close closes and forgets all cached clients.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, c := range r.clients {
		c.Close()
		delete(r.clients, name)
	}
}
