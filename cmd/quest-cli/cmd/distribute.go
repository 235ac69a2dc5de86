// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/ledger"
)

var (
	referrers       []string
	referrerAmounts []string
)

func init() {
	distributeCmd.PersistentFlags().StringSliceVar(
		&referrers,
		"referrers",
		nil,
		"referrer addresses rewarded alongside the winner",
	)
	distributeCmd.PersistentFlags().StringSliceVar(
		&referrerAmounts,
		"referrer-amounts",
		nil,
		"amounts paid to each referrer, matching --referrers",
	)
}

var distributeCmd = &cobra.Command{
	Use:   "distribute [options] questId winner winnerAmount",
	Short: "Pays a winner and optional referrers from the quest custody",
	Long: `
Moves rewards out of the quest custody account. The winner payment and
every referrer payment are applied atomically.

$ quest-cli distribute summer2024 0xAb..12 500 \
    --referrers 0xCd..34,0xEf..56 --referrer-amounts 50,25
`,
	RunE: distributeFunc,
}

func distributeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	winnerAmount, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return err
	}

	refs := make([]common.Address, len(referrers))
	for i, r := range referrers {
		refs[i] = common.HexToAddress(strings.TrimSpace(r))
	}
	amounts := make([]uint64, len(referrerAmounts))
	for i, a := range referrerAmounts {
		amount, err := strconv.ParseUint(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return err
		}
		amounts[i] = amount
	}

	return signIssue(&ledger.DistributeOp{
		BaseOp:          &ledger.BaseOp{},
		QuestID:         args[0],
		Winner:          common.HexToAddress(args[1]),
		WinnerAmount:    winnerAmount,
		Referrers:       refs,
		ReferrerAmounts: amounts,
	})
}
