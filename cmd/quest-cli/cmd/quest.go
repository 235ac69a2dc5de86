// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/client"
	"github.com/questprotocol/questvm/ledger"
)

var (
	questDuration time.Duration
	maxWinners    uint64
	questActive   bool
)

func init() {
	createQuestCmd.PersistentFlags().DurationVar(
		&questDuration,
		"duration",
		24*time.Hour,
		"time until the quest deadline",
	)
	createQuestCmd.PersistentFlags().Uint64Var(
		&maxWinners,
		"max-winners",
		1,
		"maximum number of direct winners",
	)
	setStatusCmd.PersistentFlags().BoolVar(
		&questActive,
		"active",
		false,
		"target active flag",
	)
}

var createQuestCmd = &cobra.Command{
	Use:   "create-quest [options] questId creditType amount",
	Short: "Creates a quest and escrows its reward budget",
	Long: `
Moves [amount] of [creditType] from the issuer into the quest
custody account and opens the quest for distribution.

$ quest-cli create-quest summer2024 gold 50000 --duration 168h --max-winners 100
`,
	RunE: createQuestFunc,
}

func createQuestFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	amount, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return err
	}
	return signIssue(&ledger.CreateQuestOp{
		BaseOp:     &ledger.BaseOp{},
		QuestID:    args[0],
		CreditType: args[1],
		Amount:     amount,
		Deadline:   time.Now().Add(questDuration).Unix(),
		MaxWinners: maxWinners,
	})
}

var cancelQuestCmd = &cobra.Command{
	Use:   "cancel-quest [options] questId",
	Short: "Cancels a quest and refunds the remaining budget to its creator",
	RunE:  cancelQuestFunc,
}

func cancelQuestFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return signIssue(&ledger.CancelQuestOp{
		BaseOp:  &ledger.BaseOp{},
		QuestID: args[0],
	})
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status [options] questId",
	Short: "Force-sets the active flag of a quest",
	RunE:  setStatusFunc,
}

func setStatusFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return signIssue(&ledger.UpdateQuestStatusOp{
		BaseOp:  &ledger.BaseOp{},
		QuestID: args[0],
		Active:  questActive,
	})
}

var claimRemainingCmd = &cobra.Command{
	Use:   "claim-remaining [options] questId",
	Short: "Claims the leftover budget of a finished quest",
	Long: `
Pays the remaining custody balance back to the quest creator. The
quest must be inactive and past its post-deadline cooldown.
`,
	RunE: claimRemainingFunc,
}

func claimRemainingFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return signIssue(&ledger.ClaimRemainingOp{
		BaseOp:  &ledger.BaseOp{},
		QuestID: args[0],
	})
}

var infoCmd = &cobra.Command{
	Use:   "info [options] questId",
	Short: "Reads quest info and its settlement batches",
	RunE:  infoFunc,
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	q, batches, exists, err := cli.QuestInfo(args[0])
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("quest %s not found", args[0])
		return nil
	}
	printQuest(q)
	for _, b := range batches {
		color.Yellow(
			"batch %d: amount=%d planned=%v",
			b.BatchID, b.Amount, time.Unix(b.Planned, 0),
		)
	}
	return nil
}

var questsCmd = &cobra.Command{
	Use:   "quests [options]",
	Short: "Lists every quest",
	RunE:  questsFunc,
}

func questsFunc(cmd *cobra.Command, args []string) error {
	cli := client.New(uri, requestTimeout)
	quests, err := cli.Quests()
	if err != nil {
		return err
	}
	for _, q := range quests {
		printQuest(q)
	}
	return nil
}

func printQuest(q *ledger.Quest) {
	color.Blue(
		"quest %s: creditType=%s budget=%d distributed=%d winners=%d/%d active=%v deadline=%v custody=%s",
		q.ID, q.CreditType, q.Budget, q.TotalDistributed, q.TotalWinners, q.MaxWinners,
		q.Active, time.Unix(q.Deadline, 0), q.Custody.Hex(),
	)
}
