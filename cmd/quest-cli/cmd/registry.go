// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/client"
	"github.com/questprotocol/questvm/ledger"
)

var initializeCmd = &cobra.Command{
	Use:   "initialize [options] creditType...",
	Short: "Initializes the registry with the given credit types",
	Long: `
Creates the registry singleton with the issuer as admin.

$ quest-cli initialize gold gems
`,
	RunE: initializeFunc,
}

func initializeFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least 1 credit type, got 0")
	}
	return signIssue(&ledger.InitializeOp{
		BaseOp:      &ledger.BaseOp{},
		CreditTypes: args,
	})
}

var addCreditTypeCmd = &cobra.Command{
	Use:   "add-credit-type [options] creditType",
	Short: "Registers a new credit type",
	RunE:  addCreditTypeFunc,
}

func addCreditTypeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return signIssue(&ledger.AddCreditTypeOp{
		BaseOp:     &ledger.BaseOp{},
		CreditType: args[0],
	})
}

var removeCreditTypeCmd = &cobra.Command{
	Use:   "remove-credit-type [options] creditType",
	Short: "Removes a registered credit type",
	RunE:  removeCreditTypeFunc,
}

func removeCreditTypeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return signIssue(&ledger.RemoveCreditTypeOp{
		BaseOp:     &ledger.BaseOp{},
		CreditType: args[0],
	})
}

var pauseCmd = &cobra.Command{
	Use:   "pause [options]",
	Short: "Pauses quest creation and distribution",
	RunE:  pauseFunc,
}

func pauseFunc(cmd *cobra.Command, args []string) error {
	return signIssue(&ledger.PauseOp{BaseOp: &ledger.BaseOp{}})
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause [options]",
	Short: "Resumes quest creation and distribution",
	RunE:  unpauseFunc,
}

func unpauseFunc(cmd *cobra.Command, args []string) error {
	return signIssue(&ledger.UnpauseOp{BaseOp: &ledger.BaseOp{}})
}

var registryCmd = &cobra.Command{
	Use:   "registry [options]",
	Short: "Reads the registry",
	RunE:  registryFunc,
}

func registryFunc(cmd *cobra.Command, args []string) error {
	cli := client.New(uri, requestTimeout)
	reg, exists, err := cli.Registry()
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("registry not initialized")
		return nil
	}
	color.Blue(
		"admin=%s paused=%v creditTypes=[%s]",
		reg.Admin.Hex(), reg.Paused, strings.Join(reg.CreditTypes, ","),
	)
	return nil
}
