// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

var _ UnsignedOperation = &CloseReceiptOp{}

// CloseReceiptOp destroys a legacy claim receipt and refunds its storage
// deposit to the recipient. Pure cleanup; ledger balances and quest
// counters are unaffected.
type CloseReceiptOp struct {
	*BaseOp   `serialize:"true" json:"baseOp"`
	QuestID   string         `serialize:"true" json:"questId"`
	Winner    common.Address `serialize:"true" json:"winner"`
	Recipient common.Address `serialize:"true" json:"recipient"`
}

func (cr *CloseReceiptOp) ExecuteBase(g *Genesis) error {
	if err := cr.BaseOp.ExecuteBase(g); err != nil {
		return err
	}
	return parser.CheckContents(cr.QuestID)
}

func (cr *CloseReceiptOp) Execute(c *OpContext) error {
	r, err := loadRegistry(c)
	if err != nil {
		return err
	}
	if c.Sender != cr.Winner && !r.IsAdmin(c.Sender) {
		return ErrUnauthorized
	}
	receipt, has, err := GetReceipt(c.Database, cr.QuestID, cr.Winner)
	if err != nil {
		return err
	}
	if !has {
		return ErrReceiptMissing
	}
	if err := DeleteReceipt(c.Database, cr.QuestID, cr.Winner); err != nil {
		return err
	}
	if receipt.Deposit > 0 {
		return c.Transfer.Move(c.Database, receipt.CreditType, DepositPoolAddress, cr.Recipient, receipt.Deposit)
	}
	return nil
}

func (cr *CloseReceiptOp) Copy() UnsignedOperation {
	return &CloseReceiptOp{
		BaseOp:    cr.BaseOp.Copy(),
		QuestID:   cr.QuestID,
		Winner:    cr.Winner,
		Recipient: cr.Recipient,
	}
}

func (cr *CloseReceiptOp) TypedData() *tdata.TypedData {
	return tdata.CreateTypedData(
		cr.Magic, CloseReceipt,
		[]tdata.Type{
			{Name: tdQuestID, Type: tdString},
			{Name: tdWinner, Type: tdAddress},
			{Name: tdRecipient, Type: tdAddress},
			{Name: tdNonce, Type: tdUint64},
		},
		tdata.TypedDataMessage{
			tdQuestID:   cr.QuestID,
			tdWinner:    cr.Winner.Hex(),
			tdRecipient: cr.Recipient.Hex(),
			tdNonce:     strconv.FormatUint(cr.Nonce, 10),
		},
	)
}

func (cr *CloseReceiptOp) Activity() *Activity {
	return &Activity{
		Typ:   CloseReceipt,
		Quest: cr.QuestID,
		To:    cr.Recipient.Hex(),
	}
}
