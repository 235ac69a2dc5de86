// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/tdata"
)

var (
	_ UnsignedOperation = &PauseOp{}
	_ UnsignedOperation = &UnpauseOp{}
)

// PauseOp is the administrator's emergency stop. While paused, quest
// creation, distribution and external settlement are rejected; cancellation
// and reclaim stay live so funds can always flow back to creators.
type PauseOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`
}

func (p *PauseOp) ExecuteBase(g *Genesis) error {
	return p.BaseOp.ExecuteBase(g)
}

func (p *PauseOp) Execute(c *OpContext) error {
	r, err := adminOnly(c)
	if err != nil {
		return err
	}
	if r.Paused {
		return ErrAlreadyPaused
	}
	r.Paused = true
	return PutRegistry(c.Database, r)
}

func (p *PauseOp) Copy() UnsignedOperation {
	return &PauseOp{
		BaseOp: p.BaseOp.Copy(),
	}
}

func (p *PauseOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		p.Magic, Pause,
		[]tdata.Type{
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdNonce: strconv.FormatUint(p.Nonce, 10),
		},
	)
}

func (p *PauseOp) Activity() *Activity {
	return &Activity{
		Typ: Pause,
	}
}

type UnpauseOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`
}

func (u *UnpauseOp) ExecuteBase(g *Genesis) error {
	return u.BaseOp.ExecuteBase(g)
}

func (u *UnpauseOp) Execute(c *OpContext) error {
	r, err := adminOnly(c)
	if err != nil {
		return err
	}
	if !r.Paused {
		return ErrAlreadyUnpaused
	}
	r.Paused = false
	return PutRegistry(c.Database, r)
}

func (u *UnpauseOp) Copy() UnsignedOperation {
	return &UnpauseOp{
		BaseOp: u.BaseOp.Copy(),
	}
}

func (u *UnpauseOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		u.Magic, Unpause,
		[]tdata.Type{
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdNonce: strconv.FormatUint(u.Nonce, 10),
		},
	)
}

func (u *UnpauseOp) Activity() *Activity {
	return &Activity{
		Typ: Unpause,
	}
}
