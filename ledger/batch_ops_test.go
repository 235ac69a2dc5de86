// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestPlanBatchOp(t *testing.T) {
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
	creator := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()
	xfer := newBook()
	mustInitialize(t, db, xfer, admin, "gold")
	mustFund(t, db, xfer, "gold", creator, 1000)

	cq := &CreateQuestOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", CreditType: "gold",
		Amount: 1000, Deadline: 100, MaxWinners: 10,
	}
	if err := cq.Execute(testContext(db, xfer, 1, creator)); err != nil {
		t.Fatal(err)
	}

	zero := &PlanBatchOp{BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", Amount: 0, BatchID: 1}
	if err := zero.ExecuteBase(DefaultGenesis()); !errors.Is(err, ErrZeroAmount) {
		t.Fatalf("err expected %v, got %v", ErrZeroAmount, err)
	}

	plan := &PlanBatchOp{BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", Amount: 400, BatchID: 1}

	if err := plan.Execute(testContext(db, xfer, 2, creator)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}
	if err := plan.Execute(testContext(db, xfer, 101, admin)); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("err expected %v, got %v", ErrDeadlinePassed, err)
	}
	if err := plan.Execute(testContext(db, xfer, 2, admin)); err != nil {
		t.Fatalf("plan errored %v", err)
	}

	// Funds are parked with the distributor, counters untouched.
	q := mustQuest(t, db, "summer")
	if q.TotalDistributed != 0 || q.TotalWinners != 0 {
		t.Fatalf("counters moved by planning: %+v", q)
	}
	if bal := mustBalance(t, db, xfer, "gold", q.Custody); bal != 600 {
		t.Fatalf("custody balance expected 600, got %d", bal)
	}
	if bal := mustBalance(t, db, xfer, "gold", DistributorAddress); bal != 400 {
		t.Fatalf("distributor balance expected 400, got %d", bal)
	}

	// Planning more than custody holds fails on the transfer.
	big := &PlanBatchOp{BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", Amount: 601, BatchID: 2}
	if err := big.Execute(testContext(db, xfer, 2, admin)); err == nil {
		t.Fatal("expected transfer failure")
	}

	batches, err := GetQuestBatches(db, "summer")
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 {
		t.Fatalf("batches expected 1, got %d", len(batches))
	}
	if batches[0].BatchID != 1 || batches[0].Amount != 400 || batches[0].Planned != 2 {
		t.Fatalf("unexpected batch record %+v", batches[0])
	}
}

func TestSettleBatchOp(t *testing.T) {
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
	creator := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()
	xfer := newBook()
	mustInitialize(t, db, xfer, admin, "gold")
	mustFund(t, db, xfer, "gold", creator, 1000)

	deadline := int64(100)
	cq := &CreateQuestOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", CreditType: "gold",
		Amount: 1000, Deadline: deadline, MaxWinners: 2,
	}
	if err := cq.Execute(testContext(db, xfer, 1, creator)); err != nil {
		t.Fatal(err)
	}
	plan := &PlanBatchOp{BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", Amount: 400, BatchID: 7}
	if err := plan.Execute(testContext(db, xfer, 2, admin)); err != nil {
		t.Fatal(err)
	}

	settle := &SettleBatchOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "summer",
		Amount: 380, WinnersCount: 19, BatchID: 7,
	}
	if err := settle.Execute(testContext(db, xfer, 3, creator)); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}

	// Settlement is accepted after the deadline and for an inactive quest.
	off := &UpdateQuestStatusOp{BaseOp: &BaseOp{Magic: 1}, QuestID: "summer", Active: false}
	if err := off.Execute(testContext(db, xfer, 3, admin)); err != nil {
		t.Fatal(err)
	}
	if err := settle.Execute(testContext(db, xfer, deadline+10, admin)); err != nil {
		t.Fatalf("settle errored %v", err)
	}

	// Winners count is booked as reported, even beyond max winners.
	q := mustQuest(t, db, "summer")
	if q.TotalDistributed != 380 {
		t.Fatalf("distributed expected 380, got %d", q.TotalDistributed)
	}
	if q.TotalWinners != 19 {
		t.Fatalf("winners expected 19, got %d", q.TotalWinners)
	}

	// The budget cap still binds.
	over := &SettleBatchOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "summer",
		Amount: 621, WinnersCount: 1, BatchID: 8,
	}
	if err := over.Execute(testContext(db, xfer, deadline+10, admin)); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("err expected %v, got %v", ErrBudgetExceeded, err)
	}

	// No linkage to the planned batch: a never-planned id settles fine.
	free := &SettleBatchOp{
		BaseOp: &BaseOp{Magic: 1}, QuestID: "summer",
		Amount: 20, WinnersCount: 1, BatchID: 99,
	}
	if err := free.Execute(testContext(db, xfer, deadline+10, admin)); err != nil {
		t.Fatalf("settle errored %v", err)
	}
}
