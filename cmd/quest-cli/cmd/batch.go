// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/ledger"
)

var winnersCount uint64

func init() {
	settleBatchCmd.PersistentFlags().Uint64Var(
		&winnersCount,
		"winners-count",
		0,
		"number of winners paid by the settled batch",
	)
}

var planBatchCmd = &cobra.Command{
	Use:   "plan-batch [options] questId amount batchId",
	Short: "Stages custody funds for an external settlement batch",
	Long: `
Moves [amount] from the quest custody account to the distributor
account so an off-ledger process can pay winners directly.

$ quest-cli plan-batch summer2024 10000 1
`,
	RunE: planBatchFunc,
}

func planBatchFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return err
	}
	batchID, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return err
	}
	return signIssue(&ledger.PlanBatchOp{
		BaseOp:  &ledger.BaseOp{},
		QuestID: args[0],
		Amount:  amount,
		BatchID: batchID,
	})
}

var settleBatchCmd = &cobra.Command{
	Use:   "settle-batch [options] questId amount batchId",
	Short: "Records the results of an external settlement batch",
	Long: `
Books [amount] and --winners-count into the quest counters after an
off-ledger process has finished paying out.

$ quest-cli settle-batch summer2024 9500 1 --winners-count 42
`,
	RunE: settleBatchFunc,
}

func settleBatchFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return err
	}
	batchID, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return err
	}
	return signIssue(&ledger.SettleBatchOp{
		BaseOp:       &ledger.BaseOp{},
		QuestID:      args[0],
		Amount:       amount,
		WinnersCount: winnersCount,
		BatchID:      batchID,
	})
}
