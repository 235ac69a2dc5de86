// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/tdata"
)

// OpContext carries everything an operation needs to execute. Database is a
// private view of the store; the host commits it only if Execute returns
// nil, so an operation never leaves a partial effect behind.
type OpContext struct {
	Genesis  *Genesis
	Database database.Database
	Transfer TransferService

	Time   int64
	OpID   ids.ID
	Sender common.Address
}

// UnsignedOperation is one variant of the ledger's operation union. All
// mutation of ledger state flows through Execute.
type UnsignedOperation interface {
	Copy() UnsignedOperation

	SetMagic(uint64)
	GetMagic() uint64
	SetNonce(uint64)
	GetNonce() uint64

	// ExecuteBase performs stateless well-formedness checks.
	ExecuteBase(*Genesis) error
	// Execute performs stateful checks and applies the operation.
	Execute(*OpContext) error

	TypedData() *tdata.TypedData
	Activity() *Activity
}
