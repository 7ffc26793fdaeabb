package commission

import "context"

// CommissionRepository defines the interface for ledger data access
type CommissionRepository interface {
	// Create creates a new commission record (initial status pending)
	Create(ctx context.Context, c Commission) (Commission, error)

	// GetByID retrieves a commission
	GetByID(ctx context.Context, id string) (Commission, error)

	// ListByRealtorID returns a realtor's commissions, newest first
	ListByRealtorID(ctx context.Context, realtorID string) ([]Commission, error)

	// UpdateStatus flips from -> to with compare-and-set semantics: the
	// update only applies while the row still holds the expected current
	// status, so concurrent transitions on one commission cannot both win.
	// Returns ErrInvalidTransition when the row exists but was not in from.
	UpdateStatus(ctx context.Context, id string, from, to Status) (Commission, error)

	// SummaryByRealtorID aggregates amounts grouped by status
	SummaryByRealtorID(ctx context.Context, realtorID string) (Summary, error)
}
