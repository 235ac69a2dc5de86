// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [options]",
	Short: "Creates a new signing key in the default location",
	RunE:  createFunc,
}

func createFunc(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(privateKeyFile); err == nil {
		return errors.New("private key file already exists")
	}

	priv, err := crypto.GenerateKey()
	if err != nil {
		return err
	}
	if err := crypto.SaveECDSA(privateKeyFile, priv); err != nil {
		return err
	}
	color.Green("created address %s and saved to %s", crypto.PubkeyToAddress(priv.PublicKey), privateKeyFile)
	return nil
}
