// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &UpdateQuestStatusOp{}

// UpdateQuestStatusOp force-sets the active flag. This is a blunt
// administrative override with no precondition on the current value.
// Reactivating a quest whose remainder was already reclaimed is permitted;
// its budget equals its distributed total so no further payout is possible.
type UpdateQuestStatusOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`
	QuestID string `serialize:"true" json:"questId"`
	Active  bool   `serialize:"true" json:"active"`
}

func (u *UpdateQuestStatusOp) ExecuteBase(g *Genesis) error {
	if err := u.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(u.QuestID)
}

func (u *UpdateQuestStatusOp) Execute(c *OpContext) error {
	if _, err := adminOnly(c); err != nil {
		return err
	}
	q, err := loadQuest(c, u.QuestID)
	if err != nil {
		return err
	}
	q.Active = u.Active
	return PutQuest(c.Database, q)
}

func (u *UpdateQuestStatusOp) Copy() UnsignedOperation {
	return &UpdateQuestStatusOp{
		BaseOp:  u.BaseOp.Copy(),
		QuestID: u.QuestID,
		Active:  u.Active,
	}
}

func (u *UpdateQuestStatusOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		u.Magic, UpdateQuestStatus,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdActive, Type: tdBool},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID: u.QuestID,
			tdActive:  u.Active,
			tdNonce:   strconv.FormatUint(u.Nonce, 10),
		},
	)
}

func (u *UpdateQuestStatusOp) Activity() *Activity {
	return &Activity{
		Typ:   UpdateQuestStatus,
		Quest: u.QuestID,
	}
}
