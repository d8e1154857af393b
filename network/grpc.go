// SPDX-License-Identifier: Apache-2.0

package network

import (
	"context"
	"crypto/tls"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrGRPCDisabled is returned when dialing a network that has no gRPC
// endpoint configured.
var ErrGRPCDisabled = errors.New("no gRPC endpoint configured for network")

// GRPCOptions is the transport configuration of a chain's gRPC API
// endpoint.
type GRPCOptions struct {
	// Target is the host:port of the gRPC endpoint.
	Target string `validate:"required,hostname_port"`
	// DialOptions are passed verbatim to grpc.DialContext.
	DialOptions []grpc.DialOption
}

// NewGRPCOptions builds endpoint options for target, with TLS transport
// credentials when secure is set and plaintext otherwise.
func NewGRPCOptions(target string, secure bool) *GRPCOptions {
	return &GRPCOptions{
		Target:      target,
		DialOptions: defaultDialOptions(secure),
	}
}

func defaultDialOptions(secure bool) []grpc.DialOption {
	creds := insecure.NewCredentials()
	if secure {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	return []grpc.DialOption{grpc.WithTransportCredentials(creds)}
}

// DialGRPC opens a client connection to the network's gRPC endpoint. The
// caller owns the returned connection and must close it.
func (n Network) DialGRPC(ctx context.Context) (*grpc.ClientConn, error) {
	if n.GRPC == nil {
		return nil, errors.Wrapf(ErrGRPCDisabled, "network %q", n.Name)
	}
	conn, err := grpc.DialContext(ctx, n.GRPC.Target, n.GRPC.DialOptions...)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing gRPC endpoint %q", n.GRPC.Target)
	}
	return conn, nil
}
