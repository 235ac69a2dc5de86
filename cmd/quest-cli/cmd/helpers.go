// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/questprotocol/questvm/client"
	"github.com/questprotocol/questvm/ledger"
)

func loadKey() (*ecdsa.PrivateKey, error) {
	return crypto.LoadECDSA(privateKeyFile)
}

func signIssue(uop ledger.UnsignedOperation) error {
	priv, err := loadKey()
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)
	_, err = client.SignIssueOp(cli, uop, priv)
	return err
}
