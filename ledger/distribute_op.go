// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &DistributeOp{}

// DistributeOp pays a winner and optional referrers out of a quest's
// custody account in one atomic multi-way transfer. A referrer-only call
// (zero winner amount) does not count against the winner cap. The ledger
// performs no per-winner dedup; preventing double payment for the same
// off-ledger achievement is the administrator's responsibility.
type DistributeOp struct {
	*BaseOp         `serialize:"true" json:"baseOp"`
	QuestID         string           `serialize:"true" json:"questId"`
	Winner          common.Address   `serialize:"true" json:"winner"`
	WinnerAmount    uint64           `serialize:"true" json:"winnerAmount"`
	Referrers       []common.Address `serialize:"true" json:"referrers"`
	ReferrerAmounts []uint64         `serialize:"true" json:"referrerAmounts"`
}

func (d *DistributeOp) ExecuteBase(g *Genesis) error {
	if err := d.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(d.QuestID)
}

// total sums the winner and referrer amounts with overflow checks.
func (d *DistributeOp) total() (uint64, error) {
	total := d.WinnerAmount
	for _, amount := range d.ReferrerAmounts {
		var err error
		total, err = smath.Add64(total, amount)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (d *DistributeOp) Execute(c *OpContext) error {
	r, err := adminOnly(c)
	if err != nil {
		return err
	}
	if err := notPaused(r); err != nil {
		return err
	}
	q, err := loadQuest(c, d.QuestID)
	if err != nil {
		return err
	}
	if !q.Active {
		return ErrQuestNotActive
	}
	if c.Time > q.Deadline {
		return ErrDeadlinePassed
	}
	if len(d.Referrers) != len(d.ReferrerAmounts) {
		return ErrLengthMismatch
	}
	if len(d.Referrers) > MaxReferrers {
		return ErrTooManyReferrers
	}
	total, err := d.total()
	if err != nil {
		return err
	}
	if total == 0 {
		return ErrZeroAmount
	}
	distributed, err := smath.Add64(q.TotalDistributed, total)
	if err != nil {
		return err
	}
	if distributed > q.Budget {
		return ErrBudgetExceeded
	}
	if d.WinnerAmount > 0 && q.TotalWinners >= q.MaxWinners {
		return ErrMaxWinnersReached
	}

	// All validation passed; no transfer is attempted before this point.
	if d.WinnerAmount > 0 {
		if err := c.Transfer.Move(c.Database, q.CreditType, q.Custody, d.Winner, d.WinnerAmount); err != nil {
			return err
		}
	}
	for i, referrer := range d.Referrers {
		if d.ReferrerAmounts[i] == 0 {
			continue
		}
		if err := c.Transfer.Move(c.Database, q.CreditType, q.Custody, referrer, d.ReferrerAmounts[i]); err != nil {
			return err
		}
	}

	q.TotalDistributed = distributed
	if d.WinnerAmount > 0 {
		winners, err := smath.Add64(q.TotalWinners, 1)
		if err != nil {
			return err
		}
		q.TotalWinners = winners
	}
	return PutQuest(c.Database, q)
}

func (d *DistributeOp) Copy() UnsignedOperation {
	referrers := make([]common.Address, len(d.Referrers))
	copy(referrers, d.Referrers)
	amounts := make([]uint64, len(d.ReferrerAmounts))
	copy(amounts, d.ReferrerAmounts)
	return &DistributeOp{
		BaseOp:          d.BaseOp.Copy(),
		QuestID:         d.QuestID,
		Winner:          d.Winner,
		WinnerAmount:    d.WinnerAmount,
		Referrers:       referrers,
		ReferrerAmounts: amounts,
	}
}

func (d *DistributeOp) TypedData() *tdata.TypedData {
	referrers := make([]interface{}, len(d.Referrers))
	for i, r := range d.Referrers {
		referrers[i] = r.Hex()
	}
	amounts := make([]interface{}, len(d.ReferrerAmounts))
	for i, a := range d.ReferrerAmounts {
		amounts[i] = strconv.FormatUint(a, 10)
	}
	return tdata.CreateTypedData(
		d.Magic, Distribute,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdWinner, Type: tdAddress},
			{Name: tdWinnerAmount, Type: tdUint64},
			{Name: tdReferrers, Type: tdAddressArray},
			{Name: tdReferrerAmounts, Type: tdUint64Array},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID:         d.QuestID,
			tdWinner:          d.Winner.Hex(),
			tdWinnerAmount:    strconv.FormatUint(d.WinnerAmount, 10),
			tdReferrers:       referrers,
			tdReferrerAmounts: amounts,
			tdNonce:           strconv.FormatUint(d.Nonce, 10),
		},
	)
}

func (d *DistributeOp) Activity() *Activity {
	total, err := d.total()
	if err != nil {
		total = 0
	}
	a := &Activity{
		Typ:    Distribute,
		Quest:  d.QuestID,
		To:     d.Winner.Hex(),
		Amount: total,
	}
	if d.WinnerAmount > 0 {
		a.Winners = 1
	}
	return a
}
