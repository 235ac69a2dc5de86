// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// Package engine applies signed operations to the quest ledger.
package engine

import (
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/questprotocol/questvm/ledger"
)

var genesisKey = []byte("genesis-loaded")

// Engine serializes operation execution over a single versioned view of the
// underlying store. Each operation commits atomically or not at all.
type Engine struct {
	mu sync.RWMutex

	genesis *ledger.Genesis
	db      *versiondb.Database
	xfer    ledger.TransferService

	clock mockable.Clock

	activity      []*ledger.Activity
	activityCap   int
	activityIndex uint64
}

// New wraps [base] and loads the genesis if it has not been applied yet.
func New(base database.Database, g *ledger.Genesis, xfer ledger.TransferService, cfg *Config) (*Engine, error) {
	if err := g.Verify(); err != nil {
		return nil, err
	}

	e := &Engine{
		genesis:     g,
		db:          versiondb.New(base),
		xfer:        xfer,
		activityCap: cfg.ActivityCacheSize,
	}

	loaded, err := e.db.Has(genesisKey)
	if err != nil {
		return nil, err
	}
	if !loaded {
		log.Info("loading genesis", "magic", g.Magic, "allocations", len(g.Allocations), "receipts", len(g.Receipts))
		if err := g.Load(e.db, xfer); err != nil {
			e.db.Abort()
			return nil, err
		}
		if err := e.db.Put(genesisKey, nil); err != nil {
			e.db.Abort()
			return nil, err
		}
		if err := e.db.Commit(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) Genesis() *ledger.Genesis { return e.genesis }

// Submit executes a single signed operation. The operation must already be
// initialized.
func (e *Engine) Submit(op *ledger.Operation) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.clock.Time().Unix()
	if err := op.Execute(e.genesis, e.db, e.xfer, t); err != nil {
		e.db.Abort()
		log.Debug("operation rejected", "opId", op.ID(), "err", err)
		return err
	}
	if err := e.db.Commit(); err != nil {
		e.db.Abort()
		return err
	}

	activity := op.Activity()
	activity.Tmstmp = t
	e.recordActivity(activity)

	log.Debug("operation accepted", "opId", op.ID(), "type", activity.Typ, "sender", activity.Sender)
	return nil
}

func (e *Engine) recordActivity(a *ledger.Activity) {
	if e.activityCap == 0 {
		return
	}
	if len(e.activity) < e.activityCap {
		e.activity = append(e.activity, a)
		return
	}
	e.activity[e.activityIndex%uint64(e.activityCap)] = a
	e.activityIndex++
}

// Activity returns the cached recent operations, oldest first.
func (e *Engine) Activity() []*ledger.Activity {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*ledger.Activity, 0, len(e.activity))
	if e.activityCap == 0 || len(e.activity) < e.activityCap {
		return append(out, e.activity...)
	}
	start := e.activityIndex % uint64(e.activityCap)
	for i := 0; i < e.activityCap; i++ {
		out = append(out, e.activity[(start+uint64(i))%uint64(e.activityCap)])
	}
	return out
}

func (e *Engine) Registry() (*ledger.Registry, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.GetRegistry(e.db)
}

func (e *Engine) Quest(questID string) (*ledger.Quest, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.GetQuest(e.db, questID)
}

func (e *Engine) Quests() ([]*ledger.Quest, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.GetAllQuests(e.db)
}

func (e *Engine) Balance(creditType string, addr common.Address) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.xfer.Balance(e.db, creditType, addr)
}

func (e *Engine) Receipt(questID string, winner common.Address) (*ledger.Receipt, bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.GetReceipt(e.db, questID, winner)
}

func (e *Engine) Batches(questID string) ([]*ledger.Batch, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.GetQuestBatches(e.db, questID)
}

func (e *Engine) HasOp(opID ids.ID) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return ledger.HasOp(e.db, opID)
}
