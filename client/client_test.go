// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/questprotocol/questvm/engine"
	"github.com/questprotocol/questvm/ledger"
	"github.com/questprotocol/questvm/transfer"
)

func newTestService(t *testing.T, g *ledger.Genesis) Client {
	t.Helper()

	cfg := &engine.Config{}
	cfg.SetDefaults()
	e, err := engine.New(memdb.New(), g, transfer.New(), cfg)
	require.NoError(t, err)

	h, err := engine.NewHandler(e)
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.Handle(engine.PublicEndpoint, h)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(srv.URL, time.Minute)
}

func TestClientRoundTrip(t *testing.T) {
	adminKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	admin := crypto.PubkeyToAddress(adminKey.PublicKey)

	creatorKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	creator := crypto.PubkeyToAddress(creatorKey.PublicKey)

	g := ledger.DefaultGenesis()
	g.Allocations = []*ledger.CustomAllocation{
		{Address: creator, CreditType: "gold", Balance: 1000},
	}
	cli := newTestService(t, g)

	ok, err := cli.Ping()
	require.NoError(t, err)
	require.True(t, ok)

	got, err := cli.Genesis()
	require.NoError(t, err)
	require.Equal(t, g.Magic, got.Magic)

	opID, err := SignIssueOp(cli, &ledger.InitializeOp{
		BaseOp:      &ledger.BaseOp{},
		CreditTypes: []string{"gold"},
	}, adminKey)
	require.NoError(t, err)

	executed, err := cli.HasOp(opID)
	require.NoError(t, err)
	require.True(t, executed)

	reg, exists, err := cli.Registry()
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, admin, reg.Admin)

	deadline := time.Now().Add(time.Hour).Unix()
	_, err = SignIssueOp(cli, &ledger.CreateQuestOp{
		BaseOp:     &ledger.BaseOp{},
		QuestID:    "summer",
		CreditType: "gold",
		Amount:     600,
		Deadline:   deadline,
		MaxWinners: 5,
	}, creatorKey)
	require.NoError(t, err)

	q, batches, exists, err := cli.QuestInfo("summer")
	require.NoError(t, err)
	require.True(t, exists)
	require.True(t, q.Active)
	require.Equal(t, uint64(600), q.Budget)
	require.Empty(t, batches)

	bal, err := cli.Balance("gold", creator)
	require.NoError(t, err)
	require.Equal(t, uint64(400), bal)

	quests, err := cli.Quests()
	require.NoError(t, err)
	require.Len(t, quests, 1)

	activity, err := cli.RecentActivity()
	require.NoError(t, err)
	require.Len(t, activity, 2)
	require.Equal(t, ledger.Initialize, activity[0].Typ)
	require.Equal(t, ledger.CreateQuest, activity[1].Typ)

	_, exists, err = cli.Receipt("summer", common.BytesToAddress([]byte{0x99}))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestClientRejectedOp(t *testing.T) {
	strangerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	adminKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	cli := newTestService(t, ledger.DefaultGenesis())

	_, err = SignIssueOp(cli, &ledger.InitializeOp{
		BaseOp:      &ledger.BaseOp{},
		CreditTypes: []string{"gold"},
	}, adminKey)
	require.NoError(t, err)

	// Not the admin; the service must surface the rejection.
	_, err = SignIssueOp(cli, &ledger.PauseOp{
		BaseOp: &ledger.BaseOp{},
	}, strangerKey)
	require.Error(t, err)
}
