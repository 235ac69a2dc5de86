// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// "quest-cli" implements questvm client operation interface.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	requestTimeout = 30 * time.Second
	fsModeWrite    = 0o600
)

var (
	privateKeyFile string
	uri            string
	verbose        bool
	workDir        string

	rootCmd = &cobra.Command{
		Use:        "quest-cli",
		Short:      "QuestVM CLI",
		SuggestFor: []string{"quest-cli", "questcli", "questctl"},
	}
)

func init() {
	p, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = p

	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		initializeCmd,
		addCreditTypeCmd,
		removeCreditTypeCmd,
		pauseCmd,
		unpauseCmd,
		createQuestCmd,
		cancelQuestCmd,
		setStatusCmd,
		claimRemainingCmd,
		distributeCmd,
		planBatchCmd,
		settleBatchCmd,
		closeReceiptCmd,
		registryCmd,
		infoCmd,
		questsCmd,
		balanceCmd,
		receiptCmd,
		activityCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".quest-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://localhost:9652",
		"RPC endpoint for the quest service",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
