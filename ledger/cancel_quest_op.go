// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &CancelQuestOp{}

// CancelQuestOp refunds the full custody balance to the creator and
// deactivates the quest. Deliberately not gated by the pause flag:
// return-of-funds paths stay live during an emergency stop.
type CancelQuestOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`
	QuestID string `serialize:"true" json:"questId"`
}

func (cq *CancelQuestOp) ExecuteBase(g *Genesis) error {
	if err := cq.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(cq.QuestID)
}

func (cq *CancelQuestOp) Execute(c *OpContext) error {
	q, err := loadQuest(c, cq.QuestID)
	if err != nil {
		return err
	}
	if q.Creator != c.Sender {
		return ErrUnauthorized
	}
	if !q.Active {
		return ErrQuestNotActive
	}

	remaining, err := c.Transfer.Balance(c.Database, q.CreditType, q.Custody)
	if err != nil {
		return err
	}
	if remaining > 0 {
		if err := c.Transfer.Move(c.Database, q.CreditType, q.Custody, q.Creator, remaining); err != nil {
			return err
		}
	}
	q.Active = false
	// Close further payout: the quest's claimable remainder is now zero.
	q.Budget = q.TotalDistributed
	return PutQuest(c.Database, q)
}

func (cq *CancelQuestOp) Copy() UnsignedOperation {
	return &CancelQuestOp{
		BaseOp:  cq.BaseOp.Copy(),
		QuestID: cq.QuestID,
	}
}

func (cq *CancelQuestOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		cq.Magic, CancelQuest,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID: cq.QuestID,
			tdNonce:   strconv.FormatUint(cq.Nonce, 10),
		},
	)
}

func (cq *CancelQuestOp) Activity() *Activity {
	return &Activity{
		Typ:   CancelQuest,
		Quest: cq.QuestID,
	}
}
