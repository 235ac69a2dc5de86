// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
)

var (
	// Operation correctness
	ErrInvalidMagic        = errors.New("invalid magic")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrDuplicateOp         = errors.New("duplicate operation")
	ErrInvalidType         = errors.New("invalid operation type")
	ErrTypedDataKeyMissing = errors.New("typed data key missing")

	// Authorization
	ErrUnauthorized = errors.New("sender is not authorized")

	// Registry
	ErrNotInitialized     = errors.New("registry not initialized")
	ErrAlreadyInitialized = errors.New("registry already initialized")
	ErrEmptyCreditTypes   = errors.New("credit type set cannot be empty")
	ErrTooManyCreditTypes = errors.New("too many credit types")
	ErrCreditTypeExists   = errors.New("credit type already supported")
	ErrCreditTypeMissing  = errors.New("credit type not found")
	ErrAlreadyPaused      = errors.New("already paused")
	ErrAlreadyUnpaused    = errors.New("already unpaused")
	ErrPaused             = errors.New("ledger is paused")

	// Quest lifecycle
	ErrQuestMissing          = errors.New("quest missing")
	ErrDuplicateQuest        = errors.New("quest id already in use")
	ErrUnsupportedCreditType = errors.New("unsupported credit type")
	ErrQuestNotActive        = errors.New("quest is not active")
	ErrQuestActive           = errors.New("quest is active")
	ErrInvalidDeadline       = errors.New("invalid deadline")
	ErrDeadlinePassed        = errors.New("quest deadline has passed")
	ErrInvalidMaxWinners     = errors.New("invalid max winners")
	ErrCooldownNotElapsed    = errors.New("reclaim cooldown not elapsed")
	ErrNothingToClaim        = errors.New("nothing to claim")

	// Distribution
	ErrZeroAmount        = errors.New("amount must be greater than zero")
	ErrLengthMismatch    = errors.New("referrer and amount lengths mismatch")
	ErrTooManyReferrers  = errors.New("too many referrers")
	ErrBudgetExceeded    = errors.New("quest budget exceeded")
	ErrMaxWinnersReached = errors.New("max winners limit reached")

	// Receipts
	ErrReceiptMissing = errors.New("claim receipt missing")
)
