// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

// Batch records the first phase of an external settlement: funds already
// debited from a quest's custody account and handed to the distributor
// pool. The record is kept for observability only; settlement does not
// enforce any linkage against it.
type Batch struct {
	QuestID string `serialize:"true" json:"questId"`
	BatchID uint64 `serialize:"true" json:"batchId"`
	Amount  uint64 `serialize:"true" json:"amount"`
	Planned int64  `serialize:"true" json:"planned"`
}
