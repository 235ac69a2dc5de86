// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	// MaxCreditTypes bounds the cardinality of the accepted credit type set.
	MaxCreditTypes = 10
)

// Registry is the process-wide singleton holding the administrator identity,
// the pause flag and the set of accepted credit types. It is created once by
// the initialize operation and mutated only by the administrator.
type Registry struct {
	Admin       common.Address `serialize:"true" json:"admin"`
	Paused      bool           `serialize:"true" json:"paused"`
	CreditTypes []string       `serialize:"true" json:"creditTypes"`
}

func (r *Registry) HasCreditType(creditType string) bool {
	for _, t := range r.CreditTypes {
		if t == creditType {
			return true
		}
	}
	return false
}

func (r *Registry) IsAdmin(addr common.Address) bool {
	return r.Admin == addr
}
