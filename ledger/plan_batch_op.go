// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &PlanBatchOp{}

// PlanBatchOp is phase one of an external settlement: it debits the quest's
// custody account into the distributor pool so an external mechanism can
// pay winners out-of-band. The quest's counters are deliberately untouched;
// until the batch is settled, TotalDistributed understates the true
// outstanding commitment.
type PlanBatchOp struct {
	*BaseOp `serialize:"true" json:"baseOp"`
	QuestID string `serialize:"true" json:"questId"`
	Amount  uint64 `serialize:"true" json:"amount"`
	BatchID uint64 `serialize:"true" json:"batchId"`
}

func (p *PlanBatchOp) ExecuteBase(g *Genesis) error {
	if err := p.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	if err := parser.CheckContents(p.QuestID); err != nil {
		return err
	}
	if p.Amount == 0 {
		return ErrZeroAmount
	}
	return nil
}

func (p *PlanBatchOp) Execute(c *OpContext) error {
	r, err := adminOnly(c)
	if err != nil {
		return err
	}
	if err := notPaused(r); err != nil {
		return err
	}
	q, err := loadQuest(c, p.QuestID)
	if err != nil {
		return err
	}
	if !q.Active {
		return ErrQuestNotActive
	}
	if c.Time > q.Deadline {
		return ErrDeadlinePassed
	}
	if err := c.Transfer.Move(c.Database, q.CreditType, q.Custody, DistributorAddress, p.Amount); err != nil {
		return err
	}
	// Observability only; settlement does not read this record back.
	return PutBatch(c.Database, &Batch{
		QuestID: p.QuestID,
		BatchID: p.BatchID,
		Amount:  p.Amount,
		Planned: c.Time,
	})
}

func (p *PlanBatchOp) Copy() UnsignedOperation {
	return &PlanBatchOp{
		BaseOp:  p.BaseOp.Copy(),
		QuestID: p.QuestID,
		Amount:  p.Amount,
		BatchID: p.BatchID,
	}
}

func (p *PlanBatchOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		p.Magic, PlanExternalBatch,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdAmount, Type: tdUint64},
			{Name: tdBatchID, Type: tdUint64},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID: p.QuestID,
			tdAmount:  strconv.FormatUint(p.Amount, 10),
			tdBatchID: strconv.FormatUint(p.BatchID, 10),
			tdNonce:   strconv.FormatUint(p.Nonce, 10),
		},
	)
}

func (p *PlanBatchOp) Activity() *Activity {
	return &Activity{
		Typ:     PlanExternalBatch,
		Quest:   p.QuestID,
		Amount:  p.Amount,
		BatchID: p.BatchID,
	}
}
