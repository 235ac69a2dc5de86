// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
)

func TestGetAllQuestsSorted(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	for _, id := range []string{"zeta", "alpha", "mid"} {
		if err := PutQuest(db, &Quest{ID: id, Custody: CustodyAddress(id)}); err != nil {
			t.Fatal(err)
		}
	}
	quests, err := GetAllQuests(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(quests) != 3 {
		t.Fatalf("quests expected 3, got %d", len(quests))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if quests[i].ID != want {
			t.Fatalf("#%d: expected %s, got %s", i, want, quests[i].ID)
		}
	}
}

func TestQuestBatchPrefixIsolation(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	// "ab" is a proper prefix of "abc"; their batch buckets must not bleed
	// into each other.
	if err := PutBatch(db, &Batch{QuestID: "ab", BatchID: 1, Amount: 10}); err != nil {
		t.Fatal(err)
	}
	if err := PutBatch(db, &Batch{QuestID: "abc", BatchID: 1, Amount: 20}); err != nil {
		t.Fatal(err)
	}
	if err := PutBatch(db, &Batch{QuestID: "ab", BatchID: 2, Amount: 30}); err != nil {
		t.Fatal(err)
	}

	batches, err := GetQuestBatches(db, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 2 {
		t.Fatalf("batches expected 2, got %d", len(batches))
	}
	// Batch ids are big-endian encoded, so iteration order is numeric.
	if batches[0].BatchID != 1 || batches[1].BatchID != 2 {
		t.Fatalf("unexpected order %d, %d", batches[0].BatchID, batches[1].BatchID)
	}

	batches, err = GetQuestBatches(db, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 || batches[0].Amount != 20 {
		t.Fatalf("unexpected abc batches %+v", batches)
	}
}

func TestCustodyAddressStable(t *testing.T) {
	t.Parallel()

	a := CustodyAddress("summer")
	b := CustodyAddress("summer")
	if a != b {
		t.Fatal("custody derivation not deterministic")
	}
	if a == CustodyAddress("winter") {
		t.Fatal("distinct quests share a custody address")
	}
	if a == DistributorAddress || a == DepositPoolAddress {
		t.Fatal("custody collides with a holding account")
	}
}
