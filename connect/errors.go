// SPDX-License-Identifier: Apache-2.0

package connect

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedOperation is returned when the connected wallet does
	// not support the requested API generation.
	ErrUnsupportedOperation = errors.New("operation not supported by the connected wallet")
	// ErrUserRejected is the rejection of a connect, sign or send request
	// in the wallet. Requests failing with it are never retried
	// automatically.
	ErrUserRejected = errors.New("request rejected in wallet")
	// ErrTransport is an underlying protocol or session failure, including
	// operations issued on a connection that is already torn down.
	ErrTransport = errors.New("wallet transport failure")
	// ErrInvalidTypedParams is a caller error: typed parameters were
	// supplied inconsistently with the transaction type.
	ErrInvalidTypedParams = errors.New("invalid typed parameter usage")
)
