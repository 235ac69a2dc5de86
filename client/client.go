// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the questvm client SDK.
package client

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"

	"github.com/questprotocol/questvm/engine"
	"github.com/questprotocol/questvm/ledger"
	"github.com/questprotocol/questvm/tdata"
)

// Client defines questvm client operations.
type Client interface {
	// Pings the service.
	Ping() (bool, error)
	// Returns the service genesis.
	Genesis() (*ledger.Genesis, error)

	// Returns the registry, if initialized.
	Registry() (*ledger.Registry, bool, error)
	// Returns the quest ledger entry and its settlement batches.
	QuestInfo(questID string) (*ledger.Quest, []*ledger.Batch, bool, error)
	// Returns every quest ledger entry.
	Quests() ([]*ledger.Quest, error)
	// Balance returns the credit balance of an account.
	Balance(creditType string, addr common.Address) (uint64, error)
	// Returns the legacy claim receipt for a quest winner, if present.
	Receipt(questID string, winner common.Address) (*ledger.Receipt, bool, error)
	// Returns recently executed operations.
	RecentActivity() ([]*ledger.Activity, error)

	// Issues a signed operation and returns its ID.
	IssueOp(td *tdata.TypedData, sig []byte) (ids.ID, error)
	// Checks whether an operation has been executed.
	HasOp(opID ids.ID) (bool, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		engine.PublicEndpoint,
		engine.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(engine.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*ledger.Genesis, error) {
	resp := new(engine.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Registry() (*ledger.Registry, bool, error) {
	resp := new(engine.RegistryReply)
	if err := cli.req.SendRequest(
		"registry",
		nil,
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Registry, resp.Exists, nil
}

func (cli *client) QuestInfo(questID string) (*ledger.Quest, []*ledger.Batch, bool, error) {
	resp := new(engine.QuestInfoReply)
	if err := cli.req.SendRequest(
		"questInfo",
		&engine.QuestInfoArgs{QuestID: questID},
		resp,
	); err != nil {
		return nil, nil, false, err
	}
	return resp.Quest, resp.Batches, resp.Exists, nil
}

func (cli *client) Quests() ([]*ledger.Quest, error) {
	resp := new(engine.QuestsReply)
	if err := cli.req.SendRequest(
		"quests",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Quests, nil
}

func (cli *client) Balance(creditType string, addr common.Address) (uint64, error) {
	resp := new(engine.BalanceReply)
	if err := cli.req.SendRequest(
		"balance",
		&engine.BalanceArgs{
			CreditType: creditType,
			Address:    addr.Hex(),
		},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) Receipt(questID string, winner common.Address) (*ledger.Receipt, bool, error) {
	resp := new(engine.ReceiptReply)
	if err := cli.req.SendRequest(
		"receipt",
		&engine.ReceiptArgs{
			QuestID: questID,
			Winner:  winner.Hex(),
		},
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Receipt, resp.Exists, nil
}

func (cli *client) RecentActivity() ([]*ledger.Activity, error) {
	resp := new(engine.ActivityReply)
	if err := cli.req.SendRequest(
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

func (cli *client) IssueOp(td *tdata.TypedData, sig []byte) (ids.ID, error) {
	resp := new(engine.IssueOpReply)
	if err := cli.req.SendRequest(
		"issueOp",
		&engine.IssueOpArgs{TypedData: td, Signature: sig},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.OpID, nil
}

func (cli *client) HasOp(opID ids.ID) (bool, error) {
	resp := new(engine.CheckOpReply)
	if err := cli.req.SendRequest(
		"checkOp",
		&engine.CheckOpArgs{OpID: opID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Confirmed, nil
}
