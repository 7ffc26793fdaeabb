package payout

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayoutRepository defines the interface for payout request data access
type PayoutRepository interface {
	// Create inserts an open payout request. A partial unique index keeps at
	// most one open request per realtor; a second insert surfaces
	// ErrPayoutAlreadyRequested.
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a payout request
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByRealtorID returns a realtor's payout requests, newest first
	ListByRealtorID(ctx context.Context, realtorID string) ([]Request, error)

	// Close moves an open request to settled or cancelled with
	// compare-and-set semantics on the open status.
	Close(ctx context.Context, id string, to Status) (Request, error)

	// LockPendingBalance locks the realtor's pending commission rows inside
	// the current transaction and returns their sum. Must be called with a
	// transaction on the context.
	LockPendingBalance(ctx context.Context, realtorID string) (decimal.Decimal, error)
}
