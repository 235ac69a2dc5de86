// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/client"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] creditType address",
	Short: "Reads the credit balance of an address",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	bal, err := cli.Balance(args[0], common.HexToAddress(args[1]))
	if err != nil {
		return err
	}
	color.Blue("%s balance of %s: %d", args[0], args[1], bal)
	return nil
}
