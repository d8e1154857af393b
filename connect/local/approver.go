// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

// ConnectRequest is what an Approver sees when a dApp asks for a session.
type ConnectRequest struct {
	Network network.Network
	Account connect.AccountAddress // proposed initial account, may be empty
}

// TransactionRequest is what an Approver sees before a transaction is
// signed and submitted.
type TransactionRequest struct {
	Sender      connect.AccountAddress
	Type        connect.TransactionType
	Payload     connect.TransactionPayload
	TypedParams *schema.TypedParameters
}

// MessageRequest is what an Approver sees before a message is signed.
type MessageRequest struct {
	Signer  connect.AccountAddress
	Message schema.SignableMessage
}

// Approver models the wallet-side approval dialog. Returning false means
// the user declined; an error means the dialog itself failed. Every method
// must respect cancellation of the given context, which corresponds to the
// dApp abandoning the request.
type Approver interface {
	ApproveConnect(ctx context.Context, req ConnectRequest) (bool, error)
	ApproveTransaction(ctx context.Context, req TransactionRequest) (bool, error)
	ApproveMessage(ctx context.Context, req MessageRequest) (bool, error)
}

// AutoApprover approves every request. It is the default of NewConnector
// and what the demo runs with.
type AutoApprover struct{}

func (AutoApprover) ApproveConnect(context.Context, ConnectRequest) (bool, error) {
	return true, nil
}

func (AutoApprover) ApproveTransaction(context.Context, TransactionRequest) (bool, error) {
	return true, nil
}

func (AutoApprover) ApproveMessage(context.Context, MessageRequest) (bool, error) {
	return true, nil
}

// RejectApprover declines every request. Useful in tests exercising the
// user-rejected paths.
type RejectApprover struct{}

func (RejectApprover) ApproveConnect(context.Context, ConnectRequest) (bool, error) {
	return false, nil
}

func (RejectApprover) ApproveTransaction(context.Context, TransactionRequest) (bool, error) {
	return false, nil
}

func (RejectApprover) ApproveMessage(context.Context, MessageRequest) (bool, error) {
	return false, nil
}

// FuncApprover adapts three closures into an Approver. Nil closures
// approve.
type FuncApprover struct {
	ConnectFn     func(ctx context.Context, req ConnectRequest) (bool, error)
	TransactionFn func(ctx context.Context, req TransactionRequest) (bool, error)
	MessageFn     func(ctx context.Context, req MessageRequest) (bool, error)
}

func (a FuncApprover) ApproveConnect(ctx context.Context, req ConnectRequest) (bool, error) {
	if a.ConnectFn == nil {
		return true, nil
	}
	return a.ConnectFn(ctx, req)
}

func (a FuncApprover) ApproveTransaction(ctx context.Context, req TransactionRequest) (bool, error) {
	if a.TransactionFn == nil {
		return true, nil
	}
	return a.TransactionFn(ctx, req)
}

func (a FuncApprover) ApproveMessage(ctx context.Context, req MessageRequest) (bool, error) {
	if a.MessageFn == nil {
		return true, nil
	}
	return a.MessageFn(ctx, req)
}
