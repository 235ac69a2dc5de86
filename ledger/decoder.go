// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/tdata"
)

const (
	Initialize           = "initialize"
	AddCreditType        = "addCreditType"
	RemoveCreditType     = "removeCreditType"
	Pause                = "pause"
	Unpause              = "unpause"
	CreateQuest          = "createQuest"
	CancelQuest          = "cancelQuest"
	UpdateQuestStatus    = "updateQuestStatus"
	ClaimRemainingReward = "claimRemainingReward"
	Distribute           = "distribute"
	PlanExternalBatch    = "planExternalBatch"
	SettleExternalBatch  = "settleExternalBatch"
	CloseReceipt         = "closeReceipt"
)

// Input is the human-readable request for a single operation. Decode turns
// it into the corresponding variant of the operation union.
type Input struct {
	Typ string `json:"type"`

	QuestID     string   `json:"questId,omitempty"`
	CreditType  string   `json:"creditType,omitempty"`
	CreditTypes []string `json:"creditTypes,omitempty"`

	Amount     uint64 `json:"amount,omitempty"`
	Deadline   int64  `json:"deadline,omitempty"`
	MaxWinners uint64 `json:"maxWinners,omitempty"`
	Active     bool   `json:"active,omitempty"`

	Winner          common.Address   `json:"winner,omitempty"`
	WinnerAmount    uint64           `json:"winnerAmount,omitempty"`
	Referrers       []common.Address `json:"referrers,omitempty"`
	ReferrerAmounts []uint64         `json:"referrerAmounts,omitempty"`

	WinnersCount uint64 `json:"winnersCount,omitempty"`
	BatchID      uint64 `json:"batchId,omitempty"`

	Recipient common.Address `json:"recipient,omitempty"`
}

func (i *Input) Decode() (UnsignedOperation, error) {
	switch i.Typ {
	case Initialize:
		return &InitializeOp{
			BaseOp:      &BaseOp{},
			CreditTypes: i.CreditTypes,
		}, nil
	case AddCreditType:
		return &AddCreditTypeOp{
			BaseOp:     &BaseOp{},
			CreditType: i.CreditType,
		}, nil
	case RemoveCreditType:
		return &RemoveCreditTypeOp{
			BaseOp:     &BaseOp{},
			CreditType: i.CreditType,
		}, nil
	case Pause:
		return &PauseOp{
			BaseOp: &BaseOp{},
		}, nil
	case Unpause:
		return &UnpauseOp{
			BaseOp: &BaseOp{},
		}, nil
	case CreateQuest:
		return &CreateQuestOp{
			BaseOp:     &BaseOp{},
			QuestID:    i.QuestID,
			CreditType: i.CreditType,
			Amount:     i.Amount,
			Deadline:   i.Deadline,
			MaxWinners: i.MaxWinners,
		}, nil
	case CancelQuest:
		return &CancelQuestOp{
			BaseOp:  &BaseOp{},
			QuestID: i.QuestID,
		}, nil
	case UpdateQuestStatus:
		return &UpdateQuestStatusOp{
			BaseOp:  &BaseOp{},
			QuestID: i.QuestID,
			Active:  i.Active,
		}, nil
	case ClaimRemainingReward:
		return &ClaimRemainingOp{
			BaseOp:  &BaseOp{},
			QuestID: i.QuestID,
		}, nil
	case Distribute:
		return &DistributeOp{
			BaseOp:          &BaseOp{},
			QuestID:         i.QuestID,
			Winner:          i.Winner,
			WinnerAmount:    i.WinnerAmount,
			Referrers:       i.Referrers,
			ReferrerAmounts: i.ReferrerAmounts,
		}, nil
	case PlanExternalBatch:
		return &PlanBatchOp{
			BaseOp:  &BaseOp{},
			QuestID: i.QuestID,
			Amount:  i.Amount,
			BatchID: i.BatchID,
		}, nil
	case SettleExternalBatch:
		return &SettleBatchOp{
			BaseOp:       &BaseOp{},
			QuestID:      i.QuestID,
			Amount:       i.Amount,
			WinnersCount: i.WinnersCount,
			BatchID:      i.BatchID,
		}, nil
	case CloseReceipt:
		return &CloseReceiptOp{
			BaseOp:    &BaseOp{},
			QuestID:   i.QuestID,
			Winner:    i.Winner,
			Recipient: i.Recipient,
		}, nil
	default:
		return nil, ErrInvalidType
	}
}

const (
	tdString       = "string"
	tdUint64       = "uint64"
	tdBool         = "bool"
	tdAddress      = "address"
	tdStringArray  = "string[]"
	tdUint64Array  = "uint64[]"
	tdAddressArray = "address[]"

	tdNonce           = "nonce"
	tdQuestID         = "questId"
	tdCreditType      = "creditType"
	tdCreditTypes     = "creditTypes"
	tdAmount          = "amount"
	tdDeadline        = "deadline"
	tdMaxWinners      = "maxWinners"
	tdActive          = "active"
	tdWinner          = "winner"
	tdWinnerAmount    = "winnerAmount"
	tdReferrers       = "referrers"
	tdReferrerAmounts = "referrerAmounts"
	tdWinnersCount    = "winnersCount"
	tdBatchID         = "batchId"
	tdRecipient       = "recipient"
)

func parseString(td *tdata.TypedData, k string) (string, error) {
	v, ok := td.Message[k].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return v, nil
}

func parseBool(td *tdata.TypedData, k string) (bool, error) {
	v, ok := td.Message[k].(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return v, nil
}

func parseUint64(td *tdata.TypedData, k string) (uint64, error) {
	v, err := parseString(td, k)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(v, 10, 64)
}

func parseInt64(td *tdata.TypedData, k string) (int64, error) {
	v, err := parseString(td, k)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func parseAddress(td *tdata.TypedData, k string) (common.Address, error) {
	v, err := parseString(td, k)
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(v), nil
}

func parseArray(td *tdata.TypedData, k string) ([]interface{}, error) {
	v, ok := td.Message[k].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return v, nil
}

func parseStringArray(td *tdata.TypedData, k string) ([]string, error) {
	raw, err := parseArray(td, k)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d]", ErrTypedDataKeyMissing, k, i)
		}
		out[i] = s
	}
	return out, nil
}

func parseAddressArray(td *tdata.TypedData, k string) ([]common.Address, error) {
	raw, err := parseStringArray(td, k)
	if err != nil {
		return nil, err
	}
	out := make([]common.Address, len(raw))
	for i, s := range raw {
		out[i] = common.HexToAddress(s)
	}
	return out, nil
}

func parseUint64Array(td *tdata.TypedData, k string) ([]uint64, error) {
	raw, err := parseStringArray(td, k)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseBaseOp(td *tdata.TypedData) (*BaseOp, error) {
	if td.Domain.ChainId == nil {
		return nil, ErrInvalidMagic
	}
	magic := (*big.Int)(td.Domain.ChainId).Uint64()
	nonce, err := parseUint64(td, tdNonce)
	if err != nil {
		return nil, err
	}
	return &BaseOp{Magic: magic, Nonce: nonce}, nil
}

// ParseTypedData reconstructs the operation that produced the typed data.
func ParseTypedData(td *tdata.TypedData) (UnsignedOperation, error) {
	bOp, err := parseBaseOp(td)
	if err != nil {
		return nil, err
	}

	switch td.PrimaryType {
	case Initialize:
		creditTypes, err := parseStringArray(td, tdCreditTypes)
		if err != nil {
			return nil, err
		}
		return &InitializeOp{BaseOp: bOp, CreditTypes: creditTypes}, nil
	case AddCreditType:
		creditType, err := parseString(td, tdCreditType)
		if err != nil {
			return nil, err
		}
		return &AddCreditTypeOp{BaseOp: bOp, CreditType: creditType}, nil
	case RemoveCreditType:
		creditType, err := parseString(td, tdCreditType)
		if err != nil {
			return nil, err
		}
		return &RemoveCreditTypeOp{BaseOp: bOp, CreditType: creditType}, nil
	case Pause:
		return &PauseOp{BaseOp: bOp}, nil
	case Unpause:
		return &UnpauseOp{BaseOp: bOp}, nil
	case CreateQuest:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		creditType, err := parseString(td, tdCreditType)
		if err != nil {
			return nil, err
		}
		amount, err := parseUint64(td, tdAmount)
		if err != nil {
			return nil, err
		}
		deadline, err := parseInt64(td, tdDeadline)
		if err != nil {
			return nil, err
		}
		maxWinners, err := parseUint64(td, tdMaxWinners)
		if err != nil {
			return nil, err
		}
		return &CreateQuestOp{
			BaseOp:     bOp,
			QuestID:    questID,
			CreditType: creditType,
			Amount:     amount,
			Deadline:   deadline,
			MaxWinners: maxWinners,
		}, nil
	case CancelQuest:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		return &CancelQuestOp{BaseOp: bOp, QuestID: questID}, nil
	case UpdateQuestStatus:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		active, err := parseBool(td, tdActive)
		if err != nil {
			return nil, err
		}
		return &UpdateQuestStatusOp{BaseOp: bOp, QuestID: questID, Active: active}, nil
	case ClaimRemainingReward:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		return &ClaimRemainingOp{BaseOp: bOp, QuestID: questID}, nil
	case Distribute:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		winner, err := parseAddress(td, tdWinner)
		if err != nil {
			return nil, err
		}
		winnerAmount, err := parseUint64(td, tdWinnerAmount)
		if err != nil {
			return nil, err
		}
		referrers, err := parseAddressArray(td, tdReferrers)
		if err != nil {
			return nil, err
		}
		referrerAmounts, err := parseUint64Array(td, tdReferrerAmounts)
		if err != nil {
			return nil, err
		}
		return &DistributeOp{
			BaseOp:          bOp,
			QuestID:         questID,
			Winner:          winner,
			WinnerAmount:    winnerAmount,
			Referrers:       referrers,
			ReferrerAmounts: referrerAmounts,
		}, nil
	case PlanExternalBatch:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		amount, err := parseUint64(td, tdAmount)
		if err != nil {
			return nil, err
		}
		batchID, err := parseUint64(td, tdBatchID)
		if err != nil {
			return nil, err
		}
		return &PlanBatchOp{BaseOp: bOp, QuestID: questID, Amount: amount, BatchID: batchID}, nil
	case SettleExternalBatch:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		amount, err := parseUint64(td, tdAmount)
		if err != nil {
			return nil, err
		}
		winnersCount, err := parseUint64(td, tdWinnersCount)
		if err != nil {
			return nil, err
		}
		batchID, err := parseUint64(td, tdBatchID)
		if err != nil {
			return nil, err
		}
		return &SettleBatchOp{
			BaseOp:       bOp,
			QuestID:      questID,
			Amount:       amount,
			WinnersCount: winnersCount,
			BatchID:      batchID,
		}, nil
	case CloseReceipt:
		questID, err := parseString(td, tdQuestID)
		if err != nil {
			return nil, err
		}
		winner, err := parseAddress(td, tdWinner)
		if err != nil {
			return nil, err
		}
		recipient, err := parseAddress(td, tdRecipient)
		if err != nil {
			return nil, err
		}
		return &CloseReceiptOp{
			BaseOp:    bOp,
			QuestID:   questID,
			Winner:    winner,
			Recipient: recipient,
		}, nil
	default:
		return nil, ErrInvalidType
	}
}
