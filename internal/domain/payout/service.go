package payout

import "context"

// PayoutService defines the interface for payout business logic
type PayoutService interface {
	// Request opens a payout request for the realtor's pending balance.
	// Fails with ErrNoEligibleBalance when that balance is zero and with
	// ErrPayoutAlreadyRequested when an open request exists.
	Request(ctx context.Context, realtorID string) (Request, error)

	// ListByRealtor returns a realtor's payout requests
	ListByRealtor(ctx context.Context, realtorID string) ([]Request, error)

	// Settle closes an open request as settled (admin)
	Settle(ctx context.Context, id string) (Request, error)

	// Cancel closes an open request as cancelled (admin)
	Cancel(ctx context.Context, id string) (Request, error)
}
