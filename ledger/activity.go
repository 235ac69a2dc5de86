// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

type Activity struct {
	Tmstmp int64  `serialize:"true" json:"timestamp"`
	Sender string `serialize:"true" json:"sender"`
	Typ    string `serialize:"true" json:"type"`

	Quest      string `serialize:"true" json:"quest,omitempty"`
	CreditType string `serialize:"true" json:"creditType,omitempty"`
	To         string `serialize:"true" json:"to,omitempty"`
	Amount     uint64 `serialize:"true" json:"amount,omitempty"`
	Winners    uint64 `serialize:"true" json:"winners,omitempty"`
	BatchID    uint64 `serialize:"true" json:"batchId,omitempty"`
}
