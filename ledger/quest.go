// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// MaxReferrers bounds the referrer list of a single distribute call.
	MaxReferrers = 50

	// ReclaimCooldown is how long after the deadline the remainder of an
	// inactive quest stays locked before the creator can reclaim it.
	ReclaimCooldown = 7 * 24 * time.Hour
)

// Quest is the ledger entry for one campaign. The custody account holds
// Budget-TotalDistributed of CreditType until the quest is cancelled or
// its remainder reclaimed.
type Quest struct {
	ID         string         `serialize:"true" json:"id"`
	Creator    common.Address `serialize:"true" json:"creator"`
	CreditType string         `serialize:"true" json:"creditType"`
	Custody    common.Address `serialize:"true" json:"custody"`

	Budget     uint64 `serialize:"true" json:"budget"`
	Deadline   int64  `serialize:"true" json:"deadline"`
	Active     bool   `serialize:"true" json:"active"`
	MaxWinners uint64 `serialize:"true" json:"maxWinners"`

	TotalWinners     uint64 `serialize:"true" json:"totalWinners"`
	TotalDistributed uint64 `serialize:"true" json:"totalDistributed"`

	Created int64 `serialize:"true" json:"created"`
}

// Remaining is the claimable remainder of the quest budget. By the
// conservation invariant it equals the custody account balance until the
// quest is cancelled or reclaimed.
func (q *Quest) Remaining() uint64 {
	return q.Budget - q.TotalDistributed
}
