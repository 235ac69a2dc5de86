// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"crypto/ecdsa"
	"math/rand"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/questprotocol/questvm/ledger"
	"github.com/questprotocol/questvm/tdata"
)

// SignIssueOp stamps the unsigned operation with the service magic and a
// fresh nonce, signs it, and issues it.
func SignIssueOp(
	cli Client,
	uop ledger.UnsignedOperation,
	priv *ecdsa.PrivateKey,
) (opID ids.ID, err error) {
	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, err
	}

	uop.SetMagic(g.Magic)
	uop.SetNonce(rand.Uint64())

	td := uop.TypedData()
	dh, err := tdata.DigestHash(td)
	if err != nil {
		return ids.Empty, err
	}

	sig, err := ledger.Sign(dh, priv)
	if err != nil {
		return ids.Empty, err
	}

	opID, err = cli.IssueOp(td, sig)
	if err != nil {
		return ids.Empty, err
	}
	color.Green("issued operation %s", opID)
	return opID, nil
}
