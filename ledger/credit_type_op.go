// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var (
	_ UnsignedOperation = &AddCreditTypeOp{}
	_ UnsignedOperation = &RemoveCreditTypeOp{}
)

// AddCreditTypeOp extends the registry's accepted credit type set.
type AddCreditTypeOp struct {
	*BaseOp    `serialize:"true" json:"baseOp"`
	CreditType string `serialize:"true" json:"creditType"`
}

func (a *AddCreditTypeOp) ExecuteBase(g *Genesis) error {
	if err := a.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(a.CreditType)
}

func (a *AddCreditTypeOp) Execute(c *OpContext) error {
	r, err := adminOnly(c)
	if err != nil {
		return err
	}
	if r.HasCreditType(a.CreditType) {
		return ErrCreditTypeExists
	}
	if len(r.CreditTypes) >= MaxCreditTypes {
		return ErrTooManyCreditTypes
	}
	r.CreditTypes = append(r.CreditTypes, a.CreditType)
	return PutRegistry(c.Database, r)
}

func (a *AddCreditTypeOp) Copy() UnsignedOperation {
	return &AddCreditTypeOp{
		BaseOp:     a.BaseOp.Copy(),
		CreditType: a.CreditType,
	}
}

func (a *AddCreditTypeOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		a.Magic, AddCreditType,
		[]tdata.Type{
			{Name: tdCreditType, Type: tdString},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdCreditType: a.CreditType,
			tdNonce:      strconv.FormatUint(a.Nonce, 10),
		},
	)
}

func (a *AddCreditTypeOp) Activity() *Activity {
	return &Activity{
		Typ:        AddCreditType,
		CreditType: a.CreditType,
	}
}

// RemoveCreditTypeOp shrinks the registry's accepted credit type set.
// Quests already created with the removed type are unaffected.
type RemoveCreditTypeOp struct {
	*BaseOp    `serialize:"true" json:"baseOp"`
	CreditType string `serialize:"true" json:"creditType"`
}

func (r *RemoveCreditTypeOp) ExecuteBase(g *Genesis) error {
	if err := r.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(r.CreditType)
}

func (r *RemoveCreditTypeOp) Execute(c *OpContext) error {
	reg, err := adminOnly(c)
	if err != nil {
		return err
	}
	for i, t := range reg.CreditTypes {
		if t == r.CreditType {
			reg.CreditTypes = append(reg.CreditTypes[:i], reg.CreditTypes[i+1:]...)
			return PutRegistry(c.Database, reg)
		}
	}
	return ErrCreditTypeMissing
}

func (r *RemoveCreditTypeOp) Copy() UnsignedOperation {
	return &RemoveCreditTypeOp{
		BaseOp:     r.BaseOp.Copy(),
		CreditType: r.CreditType,
	}
}

func (r *RemoveCreditTypeOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		r.Magic, RemoveCreditType,
		[]tdata.Type{
			{Name: tdCreditType, Type: tdString},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdCreditType: r.CreditType,
			tdNonce:      strconv.FormatUint(r.Nonce, 10),
		},
	)
}

func (r *RemoveCreditTypeOp) Activity() *Activity {
	return &Activity{
		Typ:        RemoveCreditType,
		CreditType: r.CreditType,
	}
}
