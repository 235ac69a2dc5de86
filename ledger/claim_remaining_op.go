// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &ClaimRemainingOp{}

// ClaimRemainingOp returns the unspent remainder of an inactive quest to
// its creator once the post-deadline cooldown has elapsed. Setting the
// budget to the distributed total closes the quest for further payout even
// if the active flag is later flipped back. Like cancellation, this path is
// not gated by the pause flag.
type ClaimRemainingOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`
	QuestID string `serialize:"true" json:"questId"`
}

func (cr *ClaimRemainingOp) ExecuteBase(g *Genesis) error {
	if err := cr.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(cr.QuestID)
}

func (cr *ClaimRemainingOp) Execute(c *OpContext) error {
	r, err := loadRegistry(c)
	if err != nil {
		return err
	}
	q, err := loadQuest(c, cr.QuestID)
	if err != nil {
		return err
	}
	if q.Creator != c.Sender && !r.IsAdmin(c.Sender) {
		return ErrUnauthorized
	}
	if q.Active {
		return ErrQuestActive
	}
	if c.Time < q.Deadline+int64(ReclaimCooldown.Seconds()) {
		return ErrCooldownNotElapsed
	}

	remaining, err := c.Transfer.Balance(c.Database, q.CreditType, q.Custody)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return ErrNothingToClaim
	}
	if err := c.Transfer.Move(c.Database, q.CreditType, q.Custody, q.Creator, remaining); err != nil {
		return err
	}
	q.Budget = q.TotalDistributed
	return PutQuest(c.Database, q)
}

func (cr *ClaimRemainingOp) Copy() UnsignedOperation {
	return &ClaimRemainingOp{
		BaseOp:  cr.BaseOp.Copy(),
		QuestID: cr.QuestID,
	}
}

func (cr *ClaimRemainingOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		cr.Magic, ClaimRemainingReward,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID: cr.QuestID,
			tdNonce:   strconv.FormatUint(cr.Nonce, 10),
		},
	)
}

func (cr *ClaimRemainingOp) Activity() *Activity {
	return &Activity{
		Typ:   ClaimRemainingReward,
		Quest: cr.QuestID,
	}
}
