package payout

import "errors"

var (
	ErrNoEligibleBalance      = errors.New("no pending commission balance to pay out")
	ErrPayoutAlreadyRequested = errors.New("a payout request is already open")
	ErrPayoutNotFound         = errors.New("payout request not found")
	ErrPayoutAlreadyClosed    = errors.New("payout request already closed")
)
