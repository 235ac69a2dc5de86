// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signatures carry the recovery id in the last byte, shifted by the
// pre-EIP-155 offset so they match what wallet tooling produces.
const (
	recoveryIDIndex = 64
	legacySigAdj    = 27
)

// Sign produces a wallet-compatible signature over the operation digest.
func Sign(dh []byte, priv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(dh, priv)
	if err != nil {
		return nil, err
	}
	sig[recoveryIDIndex] += legacySigAdj
	return sig, nil
}

// RecoverSender returns the address whose key produced the signature over
// the operation digest. Signatures with an unshifted recovery id, as some
// hardware signers emit, are accepted too.
func RecoverSender(dh []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	norm := make([]byte, crypto.SignatureLength)
	copy(norm, sig)
	if norm[recoveryIDIndex] >= legacySigAdj {
		norm[recoveryIDIndex] -= legacySigAdj
	}
	pk, err := crypto.SigToPub(dh, norm)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pk), nil
}

// deriveAddress computes a stable, collision-resistant holding address from
// a seed string. The result is a pure lookup key; no private key exists for
// it and only ledger operations can move funds out.
func deriveAddress(seed string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte(seed))[12:])
}

// CustodyAddress derives the custody account address for a quest id.
func CustodyAddress(questID string) common.Address {
	return deriveAddress("custody/" + questID)
}

var (
	// DistributorAddress is the holding account funds are parked in between
	// the two phases of an external settlement.
	DistributorAddress = deriveAddress("distributor")

	// DepositPoolAddress holds the storage deposits of legacy claim
	// receipts until they are closed.
	DepositPoolAddress = deriveAddress("receipt-deposits")
)
