// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/questprotocol/questvm/ledger"
	"github.com/questprotocol/questvm/parser"
	"github.com/questprotocol/questvm/tdata"
)

const (
	// Name is the service namespace exposed over JSON-RPC.
	Name = "questvm"
	// PublicEndpoint is the HTTP path the public service is mounted on.
	PublicEndpoint = "/rpc"
)

// NewHandler returns the JSON-RPC handler for the public service.
func NewHandler(e *Engine) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{e: e}, Name); err != nil {
		return nil, err
	}
	return server, nil
}

type PublicService struct {
	e *Engine
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *ledger.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.e.Genesis()
	return nil
}

type IssueOpArgs struct {
	TypedData *tdata.TypedData `serialize:"true" json:"typedData"`
	Signature hexutil.Bytes    `serialize:"true" json:"signature"`
}

type IssueOpReply struct {
	OpID    ids.ID `serialize:"true" json:"opId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueOp(_ *http.Request, args *IssueOpArgs, reply *IssueOpReply) error {
	uop, err := ledger.ParseTypedData(args.TypedData)
	if err != nil {
		return err
	}

	op := ledger.NewOperation(uop, args.Signature)
	if err := op.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.OpID = op.ID()

	err = svc.e.Submit(op)
	reply.Success = err == nil
	return err
}

type CheckOpArgs struct {
	OpID ids.ID `serialize:"true" json:"opId"`
}

type CheckOpReply struct {
	Confirmed bool `serialize:"true" json:"confirmed"`
}

func (svc *PublicService) CheckOp(_ *http.Request, args *CheckOpArgs, reply *CheckOpReply) error {
	has, err := svc.e.HasOp(args.OpID)
	if err != nil {
		return err
	}
	reply.Confirmed = has
	return nil
}

type RegistryReply struct {
	Registry *ledger.Registry `serialize:"true" json:"registry"`
	Exists   bool             `serialize:"true" json:"exists"`
}

func (svc *PublicService) Registry(_ *http.Request, _ *struct{}, reply *RegistryReply) error {
	reg, exists, err := svc.e.Registry()
	if err != nil {
		return err
	}
	reply.Registry = reg
	reply.Exists = exists
	return nil
}

type QuestInfoArgs struct {
	QuestID string `serialize:"true" json:"questId"`
}

type QuestInfoReply struct {
	Quest   *ledger.Quest   `serialize:"true" json:"quest"`
	Exists  bool            `serialize:"true" json:"exists"`
	Batches []*ledger.Batch `serialize:"true" json:"batches"`
}

func (svc *PublicService) QuestInfo(_ *http.Request, args *QuestInfoArgs, reply *QuestInfoReply) error {
	if err := parser.CheckContents(args.QuestID); err != nil {
		return err
	}
	q, exists, err := svc.e.Quest(args.QuestID)
	if err != nil {
		return err
	}
	reply.Quest = q
	reply.Exists = exists
	if !exists {
		return nil
	}
	batches, err := svc.e.Batches(args.QuestID)
	if err != nil {
		return err
	}
	reply.Batches = batches
	return nil
}

type QuestsReply struct {
	Quests []*ledger.Quest `serialize:"true" json:"quests"`
}

func (svc *PublicService) Quests(_ *http.Request, _ *struct{}, reply *QuestsReply) error {
	quests, err := svc.e.Quests()
	if err != nil {
		return err
	}
	reply.Quests = quests
	return nil
}

type BalanceArgs struct {
	CreditType string `serialize:"true" json:"creditType"`
	Address    string `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	if err := parser.CheckContents(args.CreditType); err != nil {
		return err
	}
	bal, err := svc.e.Balance(args.CreditType, common.HexToAddress(args.Address))
	if err != nil {
		return err
	}
	reply.Balance = bal
	return nil
}

type ReceiptArgs struct {
	QuestID string `serialize:"true" json:"questId"`
	Winner  string `serialize:"true" json:"winner"`
}

type ReceiptReply struct {
	Receipt *ledger.Receipt `serialize:"true" json:"receipt"`
	Exists  bool            `serialize:"true" json:"exists"`
}

func (svc *PublicService) Receipt(_ *http.Request, args *ReceiptArgs, reply *ReceiptReply) error {
	if err := parser.CheckContents(args.QuestID); err != nil {
		return err
	}
	r, exists, err := svc.e.Receipt(args.QuestID, common.HexToAddress(args.Winner))
	if err != nil {
		return err
	}
	reply.Receipt = r
	reply.Exists = exists
	return nil
}

type ActivityReply struct {
	Activity []*ledger.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *ActivityReply) error {
	reply.Activity = svc.e.Activity()
	return nil
}
