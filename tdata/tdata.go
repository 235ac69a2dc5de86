// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tdata builds EIP-712 typed data for ledger operations.
package tdata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

type (
	Type             = apitypes.Type
	Types            = apitypes.Types
	TypedData        = apitypes.TypedData
	TypedDataMessage = apitypes.TypedDataMessage
)

const domainName = "QuestVM"

var EIP712Domain = []Type{
	{Name: "name", Type: "string"},
	{Name: "chainId", Type: "uint256"},
}

func questDomain(magic uint64) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:    domainName,
		ChainId: (*math.HexOrDecimal256)(new(big.Int).SetUint64(magic)),
	}
}

// CreateTypedData assembles the typed data for a single operation type. The
// magic is the ledger's domain separator and must match the genesis.
func CreateTypedData(magic uint64, opType string, opFields []Type, msg TypedDataMessage) *TypedData {
	return &TypedData{
		Types: Types{
			opType:         opFields,
			"EIP712Domain": EIP712Domain,
		},
		PrimaryType: opType,
		Domain:      questDomain(magic),
		Message:     msg,
	}
}

// DigestHash computes the signing digest of the typed data.
func DigestHash(td *TypedData) ([]byte, error) {
	sighash, _, err := apitypes.TypedDataAndHash(*td)
	if err != nil {
		return nil, err
	}
	return sighash, nil
}
