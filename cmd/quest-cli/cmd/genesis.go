// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/ledger"
)

var (
	genesisFile     string
	magic           int64
	allocationsFile string
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&magic,
		"magic",
		-1,
		"domain separator for operation signatures",
	)
	genesisCmd.PersistentFlags().StringVar(
		&allocationsFile,
		"custom-allocations-file",
		"",
		"JSON array of genesis credit allocations",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [options]",
	Short: "Creates a new genesis in the default location",
	RunE:  genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := ledger.DefaultGenesis()
	if magic >= 0 {
		genesis.Magic = uint64(magic)
	}
	if len(allocationsFile) > 0 {
		b, err := os.ReadFile(allocationsFile)
		if err != nil {
			return err
		}
		allocs := []*ledger.CustomAllocation{}
		if err := json.Unmarshal(b, &allocs); err != nil {
			return err
		}
		genesis.Allocations = allocs
	}
	if err := genesis.Verify(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
