// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidGenesisMagic = errors.New("genesis magic must be non-zero")
)

// CustomAllocation funds an account at genesis.
type CustomAllocation struct {
	Address    common.Address `serialize:"true" json:"address"`
	CreditType string         `serialize:"true" json:"creditType"`
	Balance    uint64         `serialize:"true" json:"balance"`
}

// Genesis is loaded exactly once when the engine first starts on an empty
// database. Receipts seeds legacy claim receipts created by the retired
// dedup-by-receipt distribution path.
type Genesis struct {
	Magic uint64 `serialize:"true" json:"magic"`

	Allocations []*CustomAllocation `serialize:"true" json:"allocations"`
	Receipts    []*Receipt          `serialize:"true" json:"receipts"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic: 1,
	}
}

func (g *Genesis) Verify() error {
	if g.Magic == 0 {
		return ErrInvalidGenesisMagic
	}
	return nil
}

// Load applies the genesis to an empty database.
func (g *Genesis) Load(db database.Database, xfer TransferService) error {
	for _, alloc := range g.Allocations {
		if err := xfer.Mint(db, alloc.CreditType, alloc.Address, alloc.Balance); err != nil {
			return err
		}
	}
	for _, r := range g.Receipts {
		if err := PutReceipt(db, r); err != nil {
			return err
		}
		// The deposit pool must be able to pay the receipt back out.
		if r.Deposit > 0 {
			if err := xfer.Mint(db, r.CreditType, DepositPoolAddress, r.Deposit); err != nil {
				return err
			}
		}
	}
	return nil
}
