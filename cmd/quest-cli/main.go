// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// "quest-cli" implements questvm client operation interface.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/questprotocol/questvm/cmd/quest-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("quest-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
