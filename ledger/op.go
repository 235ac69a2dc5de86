// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"

	"github.com/questprotocol/questvm/tdata"
)

// Operation is a signed instance of an UnsignedOperation.
type Operation struct {
	UnsignedOperation `serialize:"true" json:"unsignedOperation"`
	Signature         []byte `serialize:"true" json:"signature"`

	digest []byte         // populated by Init
	id     ids.ID         // populated by Init
	sender common.Address // populated by Init
}

func NewOperation(uop UnsignedOperation, sig []byte) *Operation {
	return &Operation{
		UnsignedOperation: uop,
		Signature:         sig,
	}
}

func (o *Operation) Copy() *Operation {
	sig := make([]byte, len(o.Signature))
	copy(sig, o.Signature)
	return &Operation{
		UnsignedOperation: o.UnsignedOperation.Copy(),
		Signature:         sig,
	}
}

// Init computes the digest, recovers the sender, and assigns the operation
// id. It must be called before Execute.
func (o *Operation) Init() error {
	dh, err := tdata.DigestHash(o.UnsignedOperation.TypedData())
	if err != nil {
		return err
	}
	o.digest = dh

	sender, err := RecoverSender(o.digest, o.Signature)
	if err != nil {
		return err
	}
	o.sender = sender

	h := sha3.Sum256(append(o.digest, o.Signature...))
	id, err := ids.ToID(h[:])
	if err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Operation) Digest() []byte { return o.digest }

func (o *Operation) ID() ids.ID { return o.id }

func (o *Operation) Sender() common.Address { return o.sender }

// Execute verifies the operation against the ledger and applies it. The
// provided database is expected to be a scratch view that the caller commits
// only when execution succeeds.
func (o *Operation) Execute(g *Genesis, db database.Database, xfer TransferService, t int64) error {
	if err := o.ExecuteBase(g); err != nil {
		return err
	}
	dup, err := HasOp(db, o.id)
	if err != nil {
		return err
	}
	if dup {
		return ErrDuplicateOp
	}

	opCtx := &OpContext{
		Genesis:  g,
		Database: db,
		Transfer: xfer,
		Time:     t,
		OpID:     o.id,
		Sender:   o.sender,
	}
	if err := o.UnsignedOperation.Execute(opCtx); err != nil {
		return err
	}
	return SetOp(db, o.id)
}

// Activity stamps the recovered sender onto the unsigned operation's
// activity record.
func (o *Operation) Activity() *Activity {
	activity := o.UnsignedOperation.Activity()
	activity.Sender = o.sender.Hex()
	return activity
}
