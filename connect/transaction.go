// SPDX-License-Identifier: Apache-2.0

package connect

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

// MicroCCD is an amount of CCD in millionths.
type MicroCCD uint64

// ContractAddress locates a smart contract instance on chain.
type ContractAddress struct {
	Index    uint64 `json:"index"`
	Subindex uint64 `json:"subindex"`
}

func (a ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", a.Index, a.Subindex)
}

// TransactionType is the account transaction type tag as defined by the
// Concordium protocol.
type TransactionType uint8

const (
	DeployModule     TransactionType = 0
	InitContract     TransactionType = 1
	UpdateContract   TransactionType = 2
	Transfer         TransactionType = 3
	RegisterData     TransactionType = 21
	TransferWithMemo TransactionType = 22
)

func (t TransactionType) String() string {
	switch t {
	case DeployModule:
		return "deployModule"
	case InitContract:
		return "initContract"
	case UpdateContract:
		return "update"
	case Transfer:
		return "transfer"
	case RegisterData:
		return "registerData"
	case TransferWithMemo:
		return "transferWithMemo"
	default:
		return fmt.Sprintf("transactionType(%d)", uint8(t))
	}
}

// TransactionPayload is the type-specific part of an account transaction,
// excluding smart contract parameters: those travel separately as typed
// parameters together with their schema.
type TransactionPayload interface {
	isTransactionPayload()
}

// TransferPayload moves CCD between accounts.
type TransferPayload struct {
	Amount   MicroCCD       `json:"amount"`
	Receiver AccountAddress `json:"toAddress"`
}

// InitContractPayload creates a smart contract instance from a deployed
// module. Parameters must stay empty; pass the init parameter as typed
// parameters instead.
type InitContractPayload struct {
	Amount                     MicroCCD `json:"amount"`
	ModuleRef                  string   `json:"moduleRef"`
	InitName                   string   `json:"initName"`
	MaxContractExecutionEnergy uint64   `json:"maxContractExecutionEnergy"`
	Parameters                 []byte   `json:"-"`
}

// UpdateContractPayload invokes a receive function of a contract instance.
// Parameters must stay empty; pass the update parameter as typed
// parameters instead.
type UpdateContractPayload struct {
	Amount                     MicroCCD        `json:"amount"`
	Address                    ContractAddress `json:"address"`
	ReceiveName                string          `json:"receiveName"`
	MaxContractExecutionEnergy uint64          `json:"maxContractExecutionEnergy"`
	Parameters                 []byte          `json:"-"`
}

// RegisterDataPayload registers raw data on chain.
type RegisterDataPayload struct {
	Data []byte `json:"data"`
}

func (TransferPayload) isTransactionPayload()       {}
func (InitContractPayload) isTransactionPayload()   {}
func (UpdateContractPayload) isTransactionPayload() {}
func (RegisterDataPayload) isTransactionPayload()   {}

// ValidateTransactionRequest enforces the typed parameter pairing rules
// before a transaction is handed to the wallet. Violations are programmer
// errors and fail fast with ErrInvalidTypedParams:
//
//   - typed parameters are only valid for contract init and update types;
//   - typed parameters must carry a non-empty parameter value;
//   - init and update payloads must not carry raw parameter bytes of
//     their own.
func ValidateTransactionRequest(txType TransactionType, payload TransactionPayload, typed *schema.TypedParameters) error {
	if typed != nil {
		if txType != InitContract && txType != UpdateContract {
			return errors.Wrapf(ErrInvalidTypedParams,
				"typed parameters are not allowed for transaction type %s", txType)
		}
		if typed.Empty() {
			return errors.Wrap(ErrInvalidTypedParams,
				"typed parameters must be omitted when the parameter value is empty")
		}
		if typed.Schema == nil {
			return errors.Wrap(ErrInvalidTypedParams,
				"typed parameters must carry the schema describing their serialization")
		}
	}
	if raw := rawParameters(payload); len(raw) > 0 {
		return errors.Wrapf(ErrInvalidTypedParams,
			"%s payload carries %d raw parameter bytes; supply parameters together with their schema as typed parameters", txType, len(raw))
	}
	return nil
}

func rawParameters(payload TransactionPayload) []byte {
	switch p := payload.(type) {
	case InitContractPayload:
		return p.Parameters
	case UpdateContractPayload:
		return p.Parameters
	default:
		return nil
	}
}
