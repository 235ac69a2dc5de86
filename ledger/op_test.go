// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/questprotocol/questvm/tdata"
)

func TestOperationLifecycle(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	sender := crypto.PubkeyToAddress(priv.PublicKey)

	db := memdb.New()
	defer db.Close()
	xfer := newBook()
	g := DefaultGenesis()

	uop := &InitializeOp{
		BaseOp:      &BaseOp{Magic: 1, Nonce: 42},
		CreditTypes: []string{"gold"},
	}
	dh, err := tdata.DigestHash(uop.TypedData())
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}

	op := NewOperation(uop, sig)
	if err := op.Init(); err != nil {
		t.Fatal(err)
	}
	if op.Sender() != sender {
		t.Fatalf("sender expected %s, got %s", sender.Hex(), op.Sender().Hex())
	}
	if !bytes.Equal(op.Digest(), dh) {
		t.Fatal("digest mismatch")
	}

	if err := op.Execute(g, db, xfer, 1); err != nil {
		t.Fatalf("execute errored %v", err)
	}
	r, has, err := GetRegistry(db)
	if err != nil || !has {
		t.Fatalf("registry missing (%v)", err)
	}
	if r.Admin != sender {
		t.Fatal("recovered sender did not become admin")
	}

	// Exact replay is rejected by op id.
	replay := NewOperation(uop.Copy(), sig)
	if err := replay.Init(); err != nil {
		t.Fatal(err)
	}
	if err := replay.Execute(g, db, xfer, 2); !errors.Is(err, ErrDuplicateOp) {
		t.Fatalf("err expected %v, got %v", ErrDuplicateOp, err)
	}

	// A fresh nonce yields a different id, so the replay guard does not
	// block an intentional resubmission.
	uop2 := &InitializeOp{
		BaseOp:      &BaseOp{Magic: 1, Nonce: 43},
		CreditTypes: []string{"gold"},
	}
	dh2, err := tdata.DigestHash(uop2.TypedData())
	if err != nil {
		t.Fatal(err)
	}
	sig2, err := Sign(dh2, priv)
	if err != nil {
		t.Fatal(err)
	}
	op2 := NewOperation(uop2, sig2)
	if err := op2.Init(); err != nil {
		t.Fatal(err)
	}
	if op2.ID() == op.ID() {
		t.Fatal("distinct nonces produced the same op id")
	}
	if err := op2.Execute(g, db, xfer, 2); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("err expected %v, got %v", ErrAlreadyInitialized, err)
	}
}

func TestOperationSenderRecovery(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}

	uop := &PauseOp{BaseOp: &BaseOp{Magic: 1, Nonce: 7}}
	dh, err := tdata.DigestHash(uop.TypedData())
	if err != nil {
		t.Fatal(err)
	}
	sig, err := Sign(dh, priv2)
	if err != nil {
		t.Fatal(err)
	}

	// A different key signs: recovery succeeds but yields that key's
	// address, not the impersonated one.
	op := NewOperation(uop, sig)
	if err := op.Init(); err != nil {
		t.Fatal(err)
	}
	if op.Sender() == crypto.PubkeyToAddress(priv.PublicKey) {
		t.Fatal("signature attributed to the wrong key")
	}
	if op.Sender() != crypto.PubkeyToAddress(priv2.PublicKey) {
		t.Fatal("signer not recovered")
	}

	// Truncated signature.
	bad := NewOperation(uop, sig[:10])
	if err := bad.Init(); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("err expected %v, got %v", ErrInvalidSignature, err)
	}
}

func TestParseTypedDataRoundTrip(t *testing.T) {
	t.Parallel()

	winner := testAddr(0x10)
	ops := []UnsignedOperation{
		&InitializeOp{BaseOp: &BaseOp{Magic: 1, Nonce: 1}, CreditTypes: []string{"gold", "gems"}},
		&AddCreditTypeOp{BaseOp: &BaseOp{Magic: 1, Nonce: 2}, CreditType: "silver"},
		&RemoveCreditTypeOp{BaseOp: &BaseOp{Magic: 1, Nonce: 3}, CreditType: "silver"},
		&PauseOp{BaseOp: &BaseOp{Magic: 1, Nonce: 4}},
		&UnpauseOp{BaseOp: &BaseOp{Magic: 1, Nonce: 5}},
		&CreateQuestOp{
			BaseOp: &BaseOp{Magic: 1, Nonce: 6}, QuestID: "summer", CreditType: "gold",
			Amount: 500, Deadline: 1700000000, MaxWinners: 10,
		},
		&CancelQuestOp{BaseOp: &BaseOp{Magic: 1, Nonce: 7}, QuestID: "summer"},
		&UpdateQuestStatusOp{BaseOp: &BaseOp{Magic: 1, Nonce: 8}, QuestID: "summer", Active: true},
		&ClaimRemainingOp{BaseOp: &BaseOp{Magic: 1, Nonce: 9}, QuestID: "summer"},
		&DistributeOp{
			BaseOp: &BaseOp{Magic: 1, Nonce: 10}, QuestID: "summer",
			Winner: winner, WinnerAmount: 100,
			Referrers:       []common.Address{testAddr(0x11)},
			ReferrerAmounts: []uint64{10},
		},
		&PlanBatchOp{BaseOp: &BaseOp{Magic: 1, Nonce: 11}, QuestID: "summer", Amount: 50, BatchID: 3},
		&SettleBatchOp{
			BaseOp: &BaseOp{Magic: 1, Nonce: 12}, QuestID: "summer",
			Amount: 45, WinnersCount: 4, BatchID: 3,
		},
		&CloseReceiptOp{
			BaseOp: &BaseOp{Magic: 1, Nonce: 13}, QuestID: "summer",
			Winner: winner, Recipient: testAddr(0x12),
		},
	}
	for i, uop := range ops {
		td := uop.TypedData()
		dh, err := tdata.DigestHash(td)
		if err != nil {
			t.Fatalf("#%d (%s): digest errored %v", i, td.PrimaryType, err)
		}

		parsed, err := ParseTypedData(td)
		if err != nil {
			t.Fatalf("#%d (%s): parse errored %v", i, td.PrimaryType, err)
		}
		if parsed.GetMagic() != uop.GetMagic() || parsed.GetNonce() != uop.GetNonce() {
			t.Fatalf("#%d (%s): base fields lost", i, td.PrimaryType)
		}
		dh2, err := tdata.DigestHash(parsed.TypedData())
		if err != nil {
			t.Fatalf("#%d (%s): reparse digest errored %v", i, td.PrimaryType, err)
		}
		if !bytes.Equal(dh, dh2) {
			t.Fatalf("#%d (%s): digest changed across parse", i, td.PrimaryType)
		}
	}
}

func TestParseTypedDataMissingChainID(t *testing.T) {
	t.Parallel()

	td := (&PauseOp{BaseOp: &BaseOp{Magic: 1, Nonce: 1}}).TypedData()
	td.Domain.ChainId = nil
	if _, err := ParseTypedData(td); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected %v, got %v", ErrInvalidMagic, err)
	}
}

func TestInputDecode(t *testing.T) {
	t.Parallel()

	in := &Input{
		Typ:        CreateQuest,
		QuestID:    "summer",
		CreditType: "gold",
		Amount:     100,
		Deadline:   1700000000,
		MaxWinners: 3,
	}
	uop, err := in.Decode()
	if err != nil {
		t.Fatal(err)
	}
	cq, ok := uop.(*CreateQuestOp)
	if !ok {
		t.Fatalf("decoded %T, expected *CreateQuestOp", uop)
	}
	if cq.QuestID != "summer" || cq.Amount != 100 || cq.MaxWinners != 3 {
		t.Fatalf("unexpected decode %+v", cq)
	}

	unknown := &Input{Typ: "mintBlock"}
	if _, err := unknown.Decode(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("err expected %v, got %v", ErrInvalidType, err)
	}
}
