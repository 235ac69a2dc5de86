// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/transfer"
)

func testContext(db database.Database, xfer TransferService, tm int64, sender common.Address) *OpContext {
	return &OpContext{
		Genesis:  DefaultGenesis(),
		Database: db,
		Transfer: xfer,
		Time:     tm,
		OpID:     ids.Empty,
		Sender:   sender,
	}
}

func mustInitialize(t *testing.T, db database.Database, xfer TransferService, admin common.Address, creditTypes ...string) {
	t.Helper()
	op := &InitializeOp{
		BaseOp:      &BaseOp{Magic: 1},
		CreditTypes: creditTypes,
	}
	if err := op.Execute(testContext(db, xfer, 1, admin)); err != nil {
		t.Fatalf("initialize errored %v", err)
	}
}

func mustFund(t *testing.T, db database.Database, xfer TransferService, creditType string, addr common.Address, amount uint64) {
	t.Helper()
	if err := xfer.Mint(db, creditType, addr, amount); err != nil {
		t.Fatalf("mint errored %v", err)
	}
}

func mustBalance(t *testing.T, db database.Database, xfer TransferService, creditType string, addr common.Address) uint64 {
	t.Helper()
	bal, err := xfer.Balance(db, creditType, addr)
	if err != nil {
		t.Fatalf("balance errored %v", err)
	}
	return bal
}

func mustQuest(t *testing.T, db database.Database, questID string) *Quest {
	t.Helper()
	q, has, err := GetQuest(db, questID)
	if err != nil {
		t.Fatalf("get quest errored %v", err)
	}
	if !has {
		t.Fatalf("quest %s missing", questID)
	}
	return q
}

func newBook() TransferService { return transfer.New() }
