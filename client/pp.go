// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"encoding/json"

	"github.com/fatih/color"

	"github.com/questprotocol/questvm/ledger"
)

// PPActivity pretty-prints recent operations, oldest first.
func PPActivity(a []*ledger.Activity) error {
	for _, item := range a {
		b, err := json.Marshal(item)
		if err != nil {
			return err
		}
		color.Yellow(string(b))
	}
	return nil
}
