// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// TransferService moves fungible credit between accounts. Calls operate on
// the database view of the invoking operation, so a transfer commits or
// aborts together with the rest of the operation's effects. A call either
// fully succeeds or fully fails; the ledger never observes a partial
// transfer.
type TransferService interface {
	Balance(db database.Database, creditType string, addr common.Address) (uint64, error)
	Move(db database.Database, creditType string, from common.Address, to common.Address, amount uint64) error

	// Mint credits an account out of thin air. Used only for genesis
	// allocations.
	Mint(db database.Database, creditType string, to common.Address, amount uint64) error
}
