// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &SettleBatchOp{}

// SettleBatchOp is phase two of an external settlement: it reconciles the
// outcome reported by the external distributor into the quest's counters.
// There is no enforced linkage between the batch id planned in phase one
// and the one supplied here, and no settled-batch registry; the
// administrator is trusted to settle each batch exactly once.
type SettleBatchOp struct {
	*BaseOp      `serialize:"true" json:"baseOp"`
	QuestID      string `serialize:"true" json:"questId"`
	Amount       uint64 `serialize:"true" json:"amount"`
	WinnersCount uint64 `serialize:"true" json:"winnersCount"`
	BatchID      uint64 `serialize:"true" json:"batchId"`
}

func (s *SettleBatchOp) ExecuteBase(g *Genesis) error {
	if err := s.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	if err := parser.CheckContents(s.QuestID); err != nil {
		return err
	}
	if s.Amount == 0 {
		return ErrZeroAmount
	}
	return nil
}

func (s *SettleBatchOp) Execute(c *OpContext) error {
	r, err := adminOnly(c)
	if err != nil {
		return err
	}
	if err := notPaused(r); err != nil {
		return err
	}
	q, err := loadQuest(c, s.QuestID)
	if err != nil {
		return err
	}
	distributed, err := smath.Add64(q.TotalDistributed, s.Amount)
	if err != nil {
		return err
	}
	if distributed > q.Budget {
		return ErrBudgetExceeded
	}
	winners, err := smath.Add64(q.TotalWinners, s.WinnersCount)
	if err != nil {
		return err
	}
	q.TotalDistributed = distributed
	q.TotalWinners = winners
	return PutQuest(c.Database, q)
}

func (s *SettleBatchOp) Copy() UnsignedOperation {
	return &SettleBatchOp{
		BaseOp:       s.BaseOp.Copy(),
		QuestID:      s.QuestID,
		Amount:       s.Amount,
		WinnersCount: s.WinnersCount,
		BatchID:      s.BatchID,
	}
}

func (s *SettleBatchOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		s.Magic, SettleExternalBatch,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdAmount, Type: tdUint64},
			{Name: tdWinnersCount, Type: tdUint64},
			{Name: tdBatchID, Type: tdUint64},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID:      s.QuestID,
			tdAmount:       strconv.FormatUint(s.Amount, 10),
			tdWinnersCount: strconv.FormatUint(s.WinnersCount, 10),
			tdBatchID:      strconv.FormatUint(s.BatchID, 10),
			tdNonce:        strconv.FormatUint(s.Nonce, 10),
		},
	)
}

func (s *SettleBatchOp) Activity() *Activity {
	return &Activity{
		Typ:     SettleExternalBatch,
		Quest:   s.QuestID,
		Amount:  s.Amount,
		Winners: s.WinnersCount,
		BatchID: s.BatchID,
	}
}
