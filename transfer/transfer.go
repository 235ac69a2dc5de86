// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transfer maintains per-address credit balances.
package transfer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidBalance      = errors.New("invalid balance")
)

// Book tracks credit balances keyed by credit type and address.
type Book struct{}

func New() *Book { return &Book{} }

// balance/[creditType]/[address]
func balanceKey(creditType string, addr common.Address) []byte {
	k := make([]byte, 0, 8+len(creditType)+1+common.AddressLength)
	k = append(k, []byte("balance/")...)
	k = append(k, []byte(creditType)...)
	k = append(k, '/')
	k = append(k, addr.Bytes()...)
	return k
}

func (b *Book) Balance(db database.Database, creditType string, addr common.Address) (uint64, error) {
	v, err := db.Get(balanceKey(creditType, addr))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != 8 {
		return 0, ErrInvalidBalance
	}
	return binary.BigEndian.Uint64(v), nil
}

func (b *Book) setBalance(db database.Database, creditType string, addr common.Address, bal uint64) error {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, bal)
	return db.Put(balanceKey(creditType, addr), v)
}

// Mint credits the address without a corresponding debit. It is used for
// genesis allocations only.
func (b *Book) Mint(db database.Database, creditType string, to common.Address, amount uint64) error {
	bal, err := b.Balance(db, creditType, to)
	if err != nil {
		return err
	}
	nbal, err := smath.Add64(bal, amount)
	if err != nil {
		return err
	}
	return b.setBalance(db, creditType, to, nbal)
}

// Move debits [from] and credits [to] atomically within the provided
// database view.
func (b *Book) Move(db database.Database, creditType string, from common.Address, to common.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	fbal, err := b.Balance(db, creditType, from)
	if err != nil {
		return err
	}
	if fbal < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientBalance, from.Hex(), fbal, amount)
	}
	if from == to {
		return nil
	}
	tbal, err := b.Balance(db, creditType, to)
	if err != nil {
		return err
	}
	ntbal, err := smath.Add64(tbal, amount)
	if err != nil {
		return err
	}
	if err := b.setBalance(db, creditType, from, fbal-amount); err != nil {
		return err
	}
	return b.setBalance(db, creditType, to, ntbal)
}
