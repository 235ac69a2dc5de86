// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/client"
	"github.com/questprotocol/questvm/ledger"
)

var recipient string

func init() {
	closeReceiptCmd.PersistentFlags().StringVar(
		&recipient,
		"recipient",
		"",
		"address receiving the deposit refund (defaults to the winner)",
	)
}

var closeReceiptCmd = &cobra.Command{
	Use:   "close-receipt [options] questId winner",
	Short: "Closes a legacy claim receipt and refunds its deposit",
	RunE:  closeReceiptFunc,
}

func closeReceiptFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	winner := common.HexToAddress(args[1])
	to := winner
	if len(recipient) > 0 {
		to = common.HexToAddress(recipient)
	}
	return signIssue(&ledger.CloseReceiptOp{
		BaseOp:    &ledger.BaseOp{},
		QuestID:   args[0],
		Winner:    winner,
		Recipient: to,
	})
}

var receiptCmd = &cobra.Command{
	Use:   "receipt [options] questId winner",
	Short: "Reads a legacy claim receipt",
	RunE:  receiptFunc,
}

func receiptFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	r, exists, err := cli.Receipt(args[0], common.HexToAddress(args[1]))
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("no receipt for %s on quest %s", args[1], args[0])
		return nil
	}
	color.Blue(
		"receipt: quest=%s winner=%s creditType=%s reward=%d deposit=%d claimed=%v",
		r.QuestID, r.Winner.Hex(), r.CreditType, r.RewardAmount, r.Deposit, r.Claimed,
	)
	return nil
}
