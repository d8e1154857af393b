// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/chebyrash/promise"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/network"
	"github.com/KatasonovYP/concordium-walletconnect/schema"
)

// Connection is a single session handed out by a Connector.
type Connection struct {
	id        string
	connector *Connector
	log       *logrus.Entry

	reqMutex sync.Mutex // serializes wallet round-trips
	mutex    sync.Mutex // protects account and closed
	account  connect.AccountAddress
	closed   bool
}

var _ connect.WalletConnection = (*Connection)(nil)

// SessionID returns the unique id of this session.
func (c *Connection) SessionID() string {
	return c.id
}

// Account returns the currently selected account, or empty if none is
// selected.
func (c *Connection) Account() connect.AccountAddress {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.account
}

// SwitchAccount selects a different account on this session and notifies
// the delegate. The notification is sent unconditionally; consumers that
// care about redundancy wrap their delegate in connect.NewDedupDelegate.
func (c *Connection) SwitchAccount(addr connect.AccountAddress) {
	c.mutex.Lock()
	prev := c.account
	c.account = addr
	c.mutex.Unlock()

	if addr != prev {
		if addr != "" {
			if err := c.connector.wallet.IncrementUsage(addr); err != nil {
				c.log.WithError(err).Warn("Registering account usage failed.")
			}
		}
		if prev != "" {
			if err := c.connector.wallet.DecrementUsage(prev); err != nil {
				c.log.WithError(err).Warn("Releasing account usage failed.")
			}
		}
	}
	c.connector.delegate.OnAccountChanged(c, addr)
}

// Connector returns the connector that created this connection.
func (c *Connection) Connector() connect.WalletConnector {
	return c.connector
}

// Ping checks that the session is still alive.
func (c *Connection) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(connect.ErrTransport, err.Error())
	}
	if c.isClosed() {
		return errors.Wrap(connect.ErrTransport, "connection closed")
	}
	return nil
}

// JSONRPCClient returns a JSON-RPC client for the connection's network.
//
// Deprecated: prefer connect.WithJSONRPCClient, which resolves the client
// per call.
func (c *Connection) JSONRPCClient() (*network.RPCClient, error) {
	if c.connector.apiVersion < requiredAPIVersion {
		return nil, errors.Wrapf(connect.ErrUnsupportedOperation,
			"wallet API version %d does not expose JSON-RPC", c.connector.apiVersion)
	}
	if c.isClosed() {
		return nil, errors.Wrap(connect.ErrTransport, "connection closed")
	}
	return network.DefaultRegistry.Client(context.Background(), c.connector.network)
}

// SignAndSendTransaction asks the wallet to sign the given transaction
// with the sender's key and submit it. The returned promise resolves to
// the transaction hash, or rejects with an error from the taxonomy in
// package connect.
func (c *Connection) SignAndSendTransaction(
	ctx context.Context,
	sender connect.AccountAddress,
	txType connect.TransactionType,
	payload connect.TransactionPayload,
	typedParams *schema.TypedParameters,
) *promise.Promise[connect.TransactionHash] {
	return promise.New(func(resolve func(connect.TransactionHash), reject func(error)) {
		c.reqMutex.Lock()
		defer c.reqMutex.Unlock()

		if c.isClosed() {
			reject(errors.Wrap(connect.ErrTransport, "connection closed"))
			return
		}
		if err := connect.ValidateTransactionRequest(txType, payload, typedParams); err != nil {
			reject(err)
			return
		}
		acc, err := c.connector.wallet.Unlock(sender)
		if err != nil {
			reject(errors.Wrapf(connect.ErrUserRejected, "account %s not held by wallet", sender))
			return
		}

		approved, err := c.connector.approver.ApproveTransaction(ctx, TransactionRequest{
			Sender:      sender,
			Type:        txType,
			Payload:     payload,
			TypedParams: typedParams,
		})
		if err != nil {
			reject(errors.Wrap(connect.ErrTransport, err.Error()))
			return
		}
		if !approved {
			reject(errors.Wrapf(connect.ErrUserRejected, "%v transaction from %s declined", txType, sender))
			return
		}

		digest, err := c.transactionDigest(sender, txType, payload, typedParams)
		if err != nil {
			reject(err)
			return
		}
		sig, err := acc.SignDigest(digest)
		if err != nil {
			reject(errors.Wrap(connect.ErrTransport, err.Error()))
			return
		}
		hash := sha256.Sum256(append(digest, sig...))
		txHash := connect.TransactionHash(hex.EncodeToString(hash[:]))
		c.log.WithFields(logrus.Fields{
			"type":   txType.String(),
			"sender": sender,
			"hash":   txHash,
		}).Info("Transaction signed and submitted.")
		resolve(txHash)
	})
}

// SignMessage asks the wallet to sign the given message with the signer's
// key. The returned promise resolves to the signatures keyed by credential
// and key index.
func (c *Connection) SignMessage(
	ctx context.Context,
	signer connect.AccountAddress,
	msg schema.SignableMessage,
) *promise.Promise[connect.AccountSignatureSet] {
	return promise.New(func(resolve func(connect.AccountSignatureSet), reject func(error)) {
		c.reqMutex.Lock()
		defer c.reqMutex.Unlock()

		if c.isClosed() {
			reject(errors.Wrap(connect.ErrTransport, "connection closed"))
			return
		}
		acc, err := c.connector.wallet.Unlock(signer)
		if err != nil {
			reject(errors.Wrapf(connect.ErrUserRejected, "account %s not held by wallet", signer))
			return
		}

		approved, err := c.connector.approver.ApproveMessage(ctx, MessageRequest{Signer: signer, Message: msg})
		if err != nil {
			reject(errors.Wrap(connect.ErrTransport, err.Error()))
			return
		}
		if !approved {
			reject(errors.Wrapf(connect.ErrUserRejected, "message signing for %s declined", signer))
			return
		}

		sig, err := acc.SignDigest(MessageDigest(signer, msg))
		if err != nil {
			reject(errors.Wrap(connect.ErrTransport, err.Error()))
			return
		}
		c.log.WithField("signer", signer).Info("Message signed.")
		resolve(connect.SingleSignature(0, 0, hex.EncodeToString(sig)))
	})
}

// Disconnect closes the session. It is idempotent.
func (c *Connection) Disconnect(context.Context) error {
	c.mutex.Lock()
	if c.closed {
		c.mutex.Unlock()
		return nil
	}
	c.closed = true
	account := c.account
	c.mutex.Unlock()

	c.connector.remove(c)
	if account != "" {
		if err := c.connector.wallet.DecrementUsage(account); err != nil {
			c.log.WithError(err).Warn("Releasing account usage failed.")
		}
	}
	c.log.Info("Session closed.")
	c.connector.delegate.OnDisconnected(c)
	return nil
}

func (c *Connection) isClosed() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.closed || c.connector.closer.IsClosed()
}

// transactionDigest derives the bytes the wallet signs for a transaction
// request. The session id ties the signature to this connection.
func (c *Connection) transactionDigest(
	sender connect.AccountAddress,
	txType connect.TransactionType,
	payload connect.TransactionPayload,
	typedParams *schema.TypedParameters,
) ([]byte, error) {
	env := struct {
		Session string                     `json:"session"`
		Sender  connect.AccountAddress     `json:"sender"`
		Type    connect.TransactionType    `json:"type"`
		Payload connect.TransactionPayload `json:"payload"`
		Params  json.RawMessage            `json:"params,omitempty"`
		Schema  string                     `json:"schema,omitempty"`
	}{
		Session: c.id,
		Sender:  sender,
		Type:    txType,
		Payload: payload,
	}
	if typedParams != nil {
		raw, err := json.Marshal(typedParams.Parameters)
		if err != nil {
			return nil, errors.Wrap(err, "encoding typed parameters")
		}
		env.Params = raw
		env.Schema = base64.StdEncoding.EncodeToString(typedParams.Schema.SchemaBytes())
	}
	enc, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Wrap(err, "encoding transaction request")
	}
	digest := sha256.Sum256(enc)
	return digest[:], nil
}

// MessageDigest derives the bytes the wallet signs for a message request.
// The signer address and an all-zero nonce block are prepended so that a
// message signature can never double as a transaction signature.
func MessageDigest(signer connect.AccountAddress, msg schema.SignableMessage) []byte {
	var nonce [8]byte
	body := msg.Bytes()
	buf := make([]byte, 0, len(signer)+len(nonce)+len(body))
	buf = append(buf, []byte(signer)...)
	buf = append(buf, nonce[:]...)
	buf = append(buf, body...)
	digest := sha256.Sum256(buf)
	return digest[:]
}
