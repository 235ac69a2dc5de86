// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestCloseReceiptOp(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	admin := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	winner := crypto.PubkeyToAddress(priv2.PublicKey)

	priv3, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	other := crypto.PubkeyToAddress(priv3.PublicKey)

	db := memdb.New()
	defer db.Close()
	xfer := newBook()

	// Seed two legacy receipts the way genesis does.
	g := DefaultGenesis()
	g.Receipts = []*Receipt{
		{QuestID: "legacy", Winner: winner, CreditType: "gold", RewardAmount: 100, Deposit: 7, Claimed: true},
		{QuestID: "legacy", Winner: other, CreditType: "gold", RewardAmount: 50, Deposit: 0, Claimed: false},
	}
	if err := g.Load(db, xfer); err != nil {
		t.Fatal(err)
	}
	mustInitialize(t, db, xfer, admin, "gold")

	if bal := mustBalance(t, db, xfer, "gold", DepositPoolAddress); bal != 7 {
		t.Fatalf("deposit pool expected 7, got %d", bal)
	}

	close1 := &CloseReceiptOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "legacy",
		Winner: winner, Recipient: winner,
	}

	// Neither a stranger nor the refund recipient may close another
	// winner's receipt.
	if err := close1.Execute(testContext(db, xfer, 1, other)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}

	if err := close1.Execute(testContext(db, xfer, 1, winner)); err != nil {
		t.Fatalf("close errored %v", err)
	}
	if _, has, _ := GetReceipt(db, "legacy", winner); has {
		t.Fatal("receipt survived close")
	}
	if bal := mustBalance(t, db, xfer, "gold", winner); bal != 7 {
		t.Fatalf("deposit refund expected 7, got %d", bal)
	}
	if bal := mustBalance(t, db, xfer, "gold", DepositPoolAddress); bal != 0 {
		t.Fatalf("deposit pool not drained, got %d", bal)
	}

	// Already closed.
	if err := close1.Execute(testContext(db, xfer, 1, winner)); !errors.Is(err, ErrReceiptMissing) {
		t.Fatalf("err expected %v, got %v", ErrReceiptMissing, err)
	}

	// Admin may close on behalf of the winner, refund redirected.
	close2 := &CloseReceiptOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "legacy",
		Winner: other, Recipient: admin,
	}
	if err := close2.Execute(testContext(db, xfer, 1, admin)); err != nil {
		t.Fatalf("close errored %v", err)
	}
	// Zero deposit, nothing moves.
	if bal := mustBalance(t, db, xfer, "gold", admin); bal != 0 {
		t.Fatalf("admin balance expected 0, got %d", bal)
	}
}

func TestGenesisLoad(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()
	xfer := newBook()

	addr := testAddr(0x42)
	g := DefaultGenesis()
	g.Allocations = []*CustomAllocation{
		{Address: addr, CreditType: "gold", Balance: 300},
		{Address: addr, CreditType: "gems", Balance: 5},
	}
	if err := g.Verify(); err != nil {
		t.Fatal(err)
	}
	if err := g.Load(db, xfer); err != nil {
		t.Fatal(err)
	}

	if bal := mustBalance(t, db, xfer, "gold", addr); bal != 300 {
		t.Fatalf("gold balance expected 300, got %d", bal)
	}
	if bal := mustBalance(t, db, xfer, "gems", addr); bal != 5 {
		t.Fatalf("gems balance expected 5, got %d", bal)
	}

	bad := &Genesis{Magic: 0}
	if err := bad.Verify(); !errors.Is(err, ErrInvalidGenesisMagic) {
		t.Fatalf("err expected %v, got %v", ErrInvalidGenesisMagic, err)
	}
}
