// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"encoding/binary"
	"sort"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/codec"
)

// 0x0/ (registry singleton)
// 0x1/ (quest records)
//   -> [quest id]
// 0x2/ (executed operation ids)
//   -> [op id]
// 0x3/ (legacy claim receipts)
//   -> [quest id]/[winner]
// 0x4/ (planned external batches)
//   -> [quest id]/[batch id]
const (
	registryPrefix = 0x0
	questPrefix    = 0x1
	opPrefix       = 0x2
	receiptPrefix  = 0x3
	batchPrefix    = 0x4

	delimiter = '/'
)

var registryKey = []byte{registryPrefix, delimiter}

func QuestKey(questID string) []byte {
	return append([]byte{questPrefix, delimiter}, questID...)
}

func OpKey(opID ids.ID) []byte {
	return append([]byte{opPrefix, delimiter}, opID[:]...)
}

func ReceiptKey(questID string, winner common.Address) []byte {
	b := append([]byte{receiptPrefix, delimiter}, questID...)
	b = append(b, delimiter)
	return append(b, winner[:]...)
}

func BatchKey(questID string, batchID uint64) []byte {
	b := append([]byte{batchPrefix, delimiter}, questID...)
	b = append(b, delimiter)
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, batchID)
	return append(b, id...)
}

func GetRegistry(db database.Database) (*Registry, bool, error) {
	has, err := db.Has(registryKey)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(registryKey)
	if err != nil {
		return nil, false, err
	}
	r := new(Registry)
	if _, err := codec.Unmarshal(v, r); err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func PutRegistry(db database.Database, r *Registry) error {
	b, err := codec.Marshal(r)
	if err != nil {
		return err
	}
	return db.Put(registryKey, b)
}

func GetQuest(db database.Database, questID string) (*Quest, bool, error) {
	k := QuestKey(questID)
	has, err := db.Has(k)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return nil, false, err
	}
	q := new(Quest)
	if _, err := codec.Unmarshal(v, q); err != nil {
		return nil, false, err
	}
	return q, true, nil
}

func PutQuest(db database.Database, q *Quest) error {
	b, err := codec.Marshal(q)
	if err != nil {
		return err
	}
	return db.Put(QuestKey(q.ID), b)
}

func HasQuest(db database.Database, questID string) (bool, error) {
	return db.Has(QuestKey(questID))
}

// GetAllQuests scans the quest bucket. The registry deliberately does not
// track quest ids; this side index is the only enumeration path.
func GetAllQuests(db database.Database) ([]*Quest, error) {
	quests := []*Quest{}
	cursor := db.NewIteratorWithPrefix([]byte{questPrefix, delimiter})
	defer cursor.Release()
	for cursor.Next() {
		q := new(Quest)
		if _, err := codec.Unmarshal(cursor.Value(), q); err != nil {
			return nil, err
		}
		quests = append(quests, q)
	}
	if err := cursor.Error(); err != nil {
		return nil, err
	}
	sort.Slice(quests, func(i, j int) bool { return quests[i].ID < quests[j].ID })
	return quests, nil
}

func HasOp(db database.Database, opID ids.ID) (bool, error) {
	return db.Has(OpKey(opID))
}

func SetOp(db database.Database, opID ids.ID) error {
	return db.Put(OpKey(opID), nil)
}

func GetReceipt(db database.Database, questID string, winner common.Address) (*Receipt, bool, error) {
	k := ReceiptKey(questID, winner)
	has, err := db.Has(k)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return nil, false, err
	}
	r := new(Receipt)
	if _, err := codec.Unmarshal(v, r); err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func PutReceipt(db database.Database, r *Receipt) error {
	b, err := codec.Marshal(r)
	if err != nil {
		return err
	}
	return db.Put(ReceiptKey(r.QuestID, r.Winner), b)
}

func DeleteReceipt(db database.Database, questID string, winner common.Address) error {
	return db.Delete(ReceiptKey(questID, winner))
}

func PutBatch(db database.Database, b *Batch) error {
	v, err := codec.Marshal(b)
	if err != nil {
		return err
	}
	return db.Put(BatchKey(b.QuestID, b.BatchID), v)
}

// GetQuestBatches lists the planned external batches of one quest.
func GetQuestBatches(db database.Database, questID string) ([]*Batch, error) {
	prefix := append([]byte{batchPrefix, delimiter}, questID...)
	prefix = append(prefix, delimiter)

	batches := []*Batch{}
	cursor := db.NewIteratorWithPrefix(prefix)
	defer cursor.Release()
	for cursor.Next() {
		b := new(Batch)
		if _, err := codec.Unmarshal(cursor.Value(), b); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	if err := cursor.Error(); err != nil {
		return nil, err
	}
	return batches, nil
}
