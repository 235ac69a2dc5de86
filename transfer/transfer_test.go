// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package transfer

import (
	"errors"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = common.HexToAddress("0x0000000000000000000000000000000000000001")
	addr2 = common.HexToAddress("0x0000000000000000000000000000000000000002")
)

func TestMintAndBalance(t *testing.T) {
	db := memdb.New()
	defer db.Close()
	b := New()

	bal, err := b.Balance(db, "gold", addr1)
	require.NoError(t, err)
	require.Zero(t, bal)

	require.NoError(t, b.Mint(db, "gold", addr1, 100))
	require.NoError(t, b.Mint(db, "gold", addr1, 50))

	bal, err = b.Balance(db, "gold", addr1)
	require.NoError(t, err)
	require.Equal(t, uint64(150), bal)

	// Other credit types are independent.
	bal, err = b.Balance(db, "silver", addr1)
	require.NoError(t, err)
	require.Zero(t, bal)
}

func TestMintOverflow(t *testing.T) {
	db := memdb.New()
	defer db.Close()
	b := New()

	require.NoError(t, b.Mint(db, "gold", addr1, math.MaxUint64))
	require.Error(t, b.Mint(db, "gold", addr1, 1))
}

func TestMove(t *testing.T) {
	db := memdb.New()
	defer db.Close()
	b := New()

	require.NoError(t, b.Mint(db, "gold", addr1, 100))
	require.NoError(t, b.Move(db, "gold", addr1, addr2, 40))

	bal, err := b.Balance(db, "gold", addr1)
	require.NoError(t, err)
	require.Equal(t, uint64(60), bal)
	bal, err = b.Balance(db, "gold", addr2)
	require.NoError(t, err)
	require.Equal(t, uint64(40), bal)
}

func TestMoveInsufficient(t *testing.T) {
	db := memdb.New()
	defer db.Close()
	b := New()

	require.NoError(t, b.Mint(db, "gold", addr1, 10))
	err := b.Move(db, "gold", addr1, addr2, 11)
	require.True(t, errors.Is(err, ErrInsufficientBalance))

	// Balances untouched on failure.
	bal, err := b.Balance(db, "gold", addr1)
	require.NoError(t, err)
	require.Equal(t, uint64(10), bal)
}

func TestMoveZero(t *testing.T) {
	db := memdb.New()
	defer db.Close()
	b := New()

	// Zero moves succeed even with no balance.
	require.NoError(t, b.Move(db, "gold", addr1, addr2, 0))
}

func TestMoveSelf(t *testing.T) {
	db := memdb.New()
	defer db.Close()
	b := New()

	require.NoError(t, b.Mint(db, "gold", addr1, 100))
	require.NoError(t, b.Move(db, "gold", addr1, addr1, 30))

	bal, err := b.Balance(db, "gold", addr1)
	require.NoError(t, err)
	require.Equal(t, uint64(100), bal)
}
