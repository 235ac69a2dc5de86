// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &CreateQuestOp{}

// CreateQuestOp locks the caller's credit into a new quest's custody
// account. The caller becomes the quest creator.
type CreateQuestOp struct {
	*BaseOp    `serialize:"true" json:"baseOp"`
	QuestID    string `serialize:"true" json:"questId"`
	CreditType string `serialize:"true" json:"creditType"`
	Amount     uint64 `serialize:"true" json:"amount"`
	Deadline   int64  `serialize:"true" json:"deadline"`
	MaxWinners uint64 `serialize:"true" json:"maxWinners"`
}

func (cq *CreateQuestOp) ExecuteBase(g *Genesis) error {
	if err := cq.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	if err := parser.CheckContents(cq.QuestID); err != nil {
		return err
	}
	if err := parser.CheckContents(cq.CreditType); err != nil {
		return err
	}
	if cq.Amount == 0 {
		return ErrZeroAmount
	}
	if cq.MaxWinners == 0 {
		return ErrInvalidMaxWinners
	}
	return nil
}

func (cq *CreateQuestOp) Execute(c *OpContext) error {
	r, err := loadRegistry(c)
	if err != nil {
		return err
	}
	if err := notPaused(r); err != nil {
		return err
	}
	if !r.HasCreditType(cq.CreditType) {
		return ErrUnsupportedCreditType
	}
	has, err := HasQuest(c.Database, cq.QuestID)
	if err != nil {
		return err
	}
	if has {
		return ErrDuplicateQuest
	}
	if cq.Deadline <= c.Time {
		return ErrInvalidDeadline
	}

	custody := CustodyAddress(cq.QuestID)
	if err := c.Transfer.Move(c.Database, cq.CreditType, c.Sender, custody, cq.Amount); err != nil {
		return err
	}
	return PutQuest(c.Database, &Quest{
		ID:         cq.QuestID,
		Creator:    c.Sender,
		CreditType: cq.CreditType,
		Custody:    custody,
		Budget:     cq.Amount,
		Deadline:   cq.Deadline,
		Active:     true,
		MaxWinners: cq.MaxWinners,
		Created:    c.Time,
	})
}

func (cq *CreateQuestOp) Copy() UnsignedOperation {
	return &CreateQuestOp{
		BaseOp:     cq.BaseOp.Copy(),
		QuestID:    cq.QuestID,
		CreditType: cq.CreditType,
		Amount:     cq.Amount,
		Deadline:   cq.Deadline,
		MaxWinners: cq.MaxWinners,
	}
}

func (cq *CreateQuestOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		cq.Magic, CreateQuest,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdCreditType, Type: tdString},
			{Name: tdAmount, Type: tdUint64},
			{Name: tdDeadline, Type: tdUint64},
			{Name: tdMaxWinners, Type: tdUint64},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID:    cq.QuestID,
			tdCreditType: cq.CreditType,
			tdAmount:     strconv.FormatUint(cq.Amount, 10),
			tdDeadline:   strconv.FormatInt(cq.Deadline, 10),
			tdMaxWinners: strconv.FormatUint(cq.MaxWinners, 10),
			tdNonce:      strconv.FormatUint(cq.Nonce, 10),
		},
	)
}

func (cq *CreateQuestOp) Activity() *Activity {
	return &Activity{
		Typ:        CreateQuest,
		Quest:      cq.QuestID,
		CreditType: cq.CreditType,
		Amount:     cq.Amount,
	}
}
