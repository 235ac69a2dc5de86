// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec serializes ledger records for persistence. All records are
// written with the current version; Unmarshal reports the version a stored
// value was written with so future migrations can branch on it.
package codec

import (
	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
)

const version = 0

var manager codec.Manager

func init() {
	manager = codec.NewDefaultManager()
	if err := manager.RegisterCodec(version, linearcodec.NewDefault()); err != nil {
		panic(err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return manager.Marshal(version, source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return manager.Unmarshal(source, destination)
}
