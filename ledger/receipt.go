// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"
)

// Receipt is a legacy per-(quest, winner) marker that the retired
// distribution path created to prevent duplicate payouts. Current
// operations never create receipts; they are seeded from genesis for data
// that predates the off-ledger dedup policy and exist only so that their
// storage deposits can still be reclaimed.
type Receipt struct {
	QuestID      string         `serialize:"true" json:"questId"`
	Winner       common.Address `serialize:"true" json:"winner"`
	CreditType   string         `serialize:"true" json:"creditType"`
	RewardAmount uint64         `serialize:"true" json:"rewardAmount"`
	Deposit      uint64         `serialize:"true" json:"deposit"`
	Claimed      bool           `serialize:"true" json:"claimed"`
}
