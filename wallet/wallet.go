// SPDX-License-Identifier: Apache-2.0

package wallet

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sync"

	ed "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/pkg/errors"

	"github.com/KatasonovYP/concordium-walletconnect/connect"
)

// Wallet is a usage-counted ed25519 key store. Account keys are derived
// deterministically from the wallet seed, so only the seed, the account
// nonces and the usage counters are persisted. An account is kept on
// permanent storage while its usage counter is positive - connections
// increment it on connect and decrement it on disconnect - and is deleted
// once the counter drops back to zero.
type Wallet struct {
	mutex sync.Mutex
	file  string

	seed        [24]byte // the wallet's random seed.
	nextAccount uint64   // the next account's derivation nonce.
	open        map[connect.AccountAddress]*openAccount
}

type openAccount struct {
	nonce    uint64
	useCount uint32
	acc      Account // nil while locked
}

var bo = binary.LittleEndian

// NewRAMWallet creates an unpersisted wallet seeded from gen.
func NewRAMWallet(gen io.Reader) (*Wallet, error) {
	w := Wallet{
		open: make(map[connect.AccountAddress]*openAccount),
	}
	if _, err := io.ReadFull(gen, w.seed[:]); err != nil {
		return nil, errors.Wrap(err, "reading random seed")
	}
	return &w, nil
}

// CreateOrLoadWallet loads the wallet stored at path, or creates a fresh
// one seeded from gen and saves it there.
func CreateOrLoadWallet(path string, gen io.Reader) (*Wallet, error) {
	w := Wallet{
		file: path,
		open: make(map[connect.AccountAddress]*openAccount),
	}

	if file, err := os.ReadFile(path); err == nil {
		if err := w.load(bytes.NewReader(file)); err != nil {
			return nil, err
		}
	} else {
		if _, err := io.ReadFull(gen, w.seed[:]); err != nil {
			return nil, errors.Wrap(err, "reading random seed")
		}
		if err := w.save(); err != nil {
			return nil, err
		}
	}
	return &w, nil
}

func (w *Wallet) load(r io.Reader) error {
	if _, err := io.ReadFull(r, w.seed[:]); err != nil {
		return errors.Wrap(err, "reading seed")
	}
	if err := binary.Read(r, bo, &w.nextAccount); err != nil {
		return errors.Wrap(err, "reading account counter")
	}
	var open uint32
	if err := binary.Read(r, bo, &open); err != nil {
		return errors.Wrap(err, "reading account count")
	}
	w.open = make(map[connect.AccountAddress]*openAccount, open)
	for i := uint32(0); i < open; i++ {
		pk := make(ed.PublicKey, ed.PublicKeySize)
		if _, err := io.ReadFull(r, pk); err != nil {
			return errors.Wrap(err, "reading account key")
		}

		acc := &openAccount{}
		if err := binary.Read(r, bo, &acc.nonce); err != nil {
			return errors.Wrap(err, "reading account nonce")
		}
		if err := binary.Read(r, bo, &acc.useCount); err != nil {
			return errors.Wrap(err, "reading account use count")
		}

		w.open[AddressFromPublicKey(pk)] = acc
	}
	return nil
}

func (w *Wallet) save() error {
	if w.file == "" {
		return nil
	}

	file := new(bytes.Buffer)
	file.Write(w.seed[:])

	if err := binary.Write(file, bo, w.nextAccount); err != nil {
		return errors.Wrap(err, "writing account counter")
	}
	if err := binary.Write(file, bo, uint32(len(w.open))); err != nil {
		return errors.Wrap(err, "writing account count")
	}

	for addr, acc := range w.open {
		pk, err := DecodeAddress(addr)
		if err != nil {
			return err
		}
		file.Write(pk)

		if err := binary.Write(file, bo, acc.nonce); err != nil {
			return errors.Wrapf(err, "writing nonce of account %s", addr)
		}
		if err := binary.Write(file, bo, acc.useCount); err != nil {
			return errors.Wrapf(err, "writing use count of account %s", addr)
		}
	}

	return errors.Wrap(os.WriteFile(w.file, file.Bytes(), 0600), "writing wallet file")
}

// genAcc derives the account with the given nonce from the wallet seed.
// The seed and nonce together are exactly the entropy the key generator
// consumes, so derivation is deterministic.
func (w *Wallet) genAcc(nonce uint64) Account {
	seed := new(bytes.Buffer)
	seed.Write(w.seed[:])

	if err := binary.Write(seed, bo, nonce); err != nil {
		panic(errors.Wrap(err, "writing nonce to seed buffer"))
	}

	_, sk, err := ed.GenerateKey(seed)
	if err != nil {
		panic("logic error: deterministic key generation failed")
	}

	return Account(sk)
}

// NewAccount creates a fresh unlocked account. It is not persisted until
// IncrementUsage is called on its address.
func (w *Wallet) NewAccount() Account {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	acc := w.genAcc(w.nextAccount)
	w.open[acc.Address()] = &openAccount{
		nonce:    w.nextAccount,
		useCount: 0,
		acc:      acc,
	}

	w.nextAccount++
	return acc
}

// Addresses returns the addresses of all open accounts.
func (w *Wallet) Addresses() []connect.AccountAddress {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	addrs := make([]connect.AccountAddress, 0, len(w.open))
	for addr := range w.open {
		addrs = append(addrs, addr)
	}
	return addrs
}

// Unlock retrieves the account behind the requested address, re-deriving
// its key if it was locked.
func (w *Wallet) Unlock(addr connect.AccountAddress) (Account, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	acc, ok := w.open[addr]
	if !ok {
		return nil, errors.Errorf("no account for address %s", addr)
	}

	if acc.acc == nil {
		acc.acc = w.genAcc(acc.nonce)
	}
	return acc.acc, nil
}

// LockAll wipes the key material of all currently unlocked accounts.
func (w *Wallet) LockAll() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for _, acc := range w.open {
		if acc.acc != nil {
			acc.acc.clear()
			acc.acc = nil
		}
	}
}

// IncrementUsage marks the account as in use by one more holder and
// persists it.
func (w *Wallet) IncrementUsage(addr connect.AccountAddress) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	acc, ok := w.open[addr]
	if !ok {
		return errors.Errorf("no account for address %s", addr)
	}
	acc.useCount++

	return w.save()
}

// DecrementUsage complements IncrementUsage. Once the counter reaches
// zero the account's key material is wiped and the account is deleted.
func (w *Wallet) DecrementUsage(addr connect.AccountAddress) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	acc, ok := w.open[addr]
	if !ok {
		return errors.Errorf("no account for address %s", addr)
	}
	if acc.useCount == 0 {
		return errors.Errorf("account %s is not in use", addr)
	}
	acc.useCount--
	if acc.useCount == 0 {
		if acc.acc != nil {
			acc.acc.clear()
		}
		delete(w.open, addr)
	}

	return w.save()
}
