// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &InitializeOp{}

// InitializeOp creates the registry singleton. The first caller becomes the
// administrator; any later call fails.
type InitializeOp struct {
	*BaseOp     `serialize:"true" json:"baseOp"`
	CreditTypes []string `serialize:"true" json:"creditTypes"`
}

func (i *InitializeOp) ExecuteBase(g *Genesis) error {
	if err := i.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	if len(i.CreditTypes) == 0 {
		return ErrEmptyCreditTypes
	}
	if len(i.CreditTypes) > MaxCreditTypes {
		return ErrTooManyCreditTypes
	}
	for _, t := range i.CreditTypes {
		if err := parser.CheckContents(t); err != nil {
			return err
		}
	}
	return nil
}

func (i *InitializeOp) Execute(c *OpContext) error {
	_, has, err := GetRegistry(c.Database)
	if err != nil {
		return err
	}
	if has {
		return ErrAlreadyInitialized
	}
	return PutRegistry(c.Database, &Registry{
		Admin:       c.Sender,
		CreditTypes: i.CreditTypes,
	})
}

func (i *InitializeOp) Copy() UnsignedOperation {
	creditTypes := make([]string, len(i.CreditTypes))
	copy(creditTypes, i.CreditTypes)
	return &InitializeOp{
		BaseOp:      i.BaseOp.Copy(),
		CreditTypes: creditTypes,
	}
}

func (i *InitializeOp) TypedData() *tdata.TypedData {
	creditTypes := make([]interface{}, len(i.CreditTypes))
	for j, t := range i.CreditTypes {
		creditTypes[j] = t
	}
	return tdata.CreateTypedData(
		i.Magic, Initialize,
		[]tdata.Type{
			{Name: tdCreditTypes, Type: tdStringArray},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdCreditTypes: creditTypes,
			tdNonce:       strconv.FormatUint(i.Nonce, 10),
		},
	)
}

func (i *InitializeOp) Activity() *Activity {
	return &Activity{
		Typ: Initialize,
	}
}
