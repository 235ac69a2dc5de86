// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questprotocol/questvm/client"
)

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "View recently executed operations",
	RunE:  activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	activity, err := cli.RecentActivity()
	if err != nil {
		return err
	}
	return client.PPActivity(activity)
}
