// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines ledger identifier parsing operations.
package parser

import (
	"errors"
	"regexp"
)

const (
	MaxIdentifierSize = 64
)

var (
	ErrInvalidContents = errors.New("quest ids and credit types must be ^[a-z0-9]{1,64}$")

	reg *regexp.Regexp
)

func init() {
	reg = regexp.MustCompile("^[a-z0-9]{1,64}$")
}

// CheckContents returns an error if the identifier (quest id or credit
// type) format is invalid.
func CheckContents(identifier string) error {
	if !reg.MatchString(identifier) {
		return ErrInvalidContents
	}
	return nil
}
