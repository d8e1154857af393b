// SPDX-License-Identifier: Apache-2.0

// Package network holds the immutable descriptors identifying Concordium
// chains and the clients derived from them. A Network is constructed once
// at application configuration time and never mutated.
package network

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

// genesisHashLen is the byte length of a chain's genesis block hash.
const genesisHashLen = 32

var validate = validator.New()

// Network identifies a Concordium chain and the endpoints a dApp uses to
// talk to it.
type Network struct {
	// Name is the human readable network name, e.g. "testnet".
	Name string `validate:"required"`
	// GenesisHash is the lowercase hex hash of the chain's genesis block.
	// It disambiguates chains: wallets report it on connect and on chain
	// change notifications.
	GenesisHash string `validate:"required"`
	// GRPC optionally configures the chain's gRPC API endpoint.
	GRPC *GRPCOptions `validate:"omitempty"`
	// JSONRPCURL is the base URL of the JSON-RPC proxy. An empty string
	// disables proxy-based RPC for this network.
	JSONRPCURL string `validate:"omitempty,url"`
	// CCDScanBaseURL is the base URL of the CCDScan block explorer.
	CCDScanBaseURL string `validate:"required,url"`
}

// New validates and returns a network descriptor. The genesis hash must be
// the canonical lowercase hex encoding of a 32-byte hash.
func New(name, genesisHash string, grpcOpts *GRPCOptions, jsonRPCURL, ccdScanBaseURL string) (Network, error) {
	n := Network{
		Name:           name,
		GenesisHash:    genesisHash,
		GRPC:           grpcOpts,
		JSONRPCURL:     jsonRPCURL,
		CCDScanBaseURL: ccdScanBaseURL,
	}
	if err := validate.Struct(n); err != nil {
		return Network{}, errors.WithMessage(err, "invalid network descriptor")
	}
	hash, err := utils.DecodeHexExact(genesisHash)
	if err != nil {
		return Network{}, errors.WithMessagef(err, "genesis hash of network %q", name)
	}
	if len(hash) != genesisHashLen {
		return Network{}, errors.Errorf("genesis hash of network %q: got %d bytes, want %d", name, len(hash), genesisHashLen)
	}
	return n, nil
}

// HasJSONRPC reports whether proxy-based RPC is configured.
func (n Network) HasJSONRPC() bool { return n.JSONRPCURL != "" }

// TransactionURL returns the CCDScan page of a submitted transaction.
func (n Network) TransactionURL(txHash string) string {
	return fmt.Sprintf("%s/?dcount=1&dentity=transaction&dhash=%s", n.CCDScanBaseURL, txHash)
}

// AccountURL returns the CCDScan page of an account.
func (n Network) AccountURL(address string) string {
	return fmt.Sprintf("%s/?dcount=1&dentity=account&daddress=%s", n.CCDScanBaseURL, address)
}

// Testnet is the Concordium test network.
var Testnet = Network{
	Name:        "testnet",
	GenesisHash: "4221332d34e1694168c2a0c0b3fd0f273809612cb13d000d5c2e00e85f50f796",
	GRPC: &GRPCOptions{
		Target:      "grpc.testnet.concordium.com:20000",
		DialOptions: defaultDialOptions(true),
	},
	JSONRPCURL:     "https://json-rpc.testnet.concordium.com",
	CCDScanBaseURL: "https://testnet.ccdscan.io",
}

// Mainnet is the Concordium main network. No JSON-RPC proxy is configured
// by default; the deprecated proxy-bound client is unavailable on it.
var Mainnet = Network{
	Name:        "mainnet",
	GenesisHash: "9dd9ca4d19e9393877d2c44b70f89acbfc0883c2243e5eeaecc0d1cd0503f478",
	GRPC: &GRPCOptions{
		Target:      "grpc.mainnet.concordium.software:20000",
		DialOptions: defaultDialOptions(true),
	},
	CCDScanBaseURL: "https://ccdscan.io",
}
