package commission

import "context"

// CommissionService defines the interface for ledger business logic
type CommissionService interface {
	// Create records a commission for a lead (admin; initial status pending)
	Create(ctx context.Context, req CreateRequest) (Commission, error)

	// UpdateStatus applies one transition of the approval/payout pipeline (admin)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (Commission, error)

	// ListByRealtor returns a realtor's commissions
	ListByRealtor(ctx context.Context, realtorID string) ([]Commission, error)

	// Summary returns aggregate amounts by status for a realtor
	Summary(ctx context.Context, realtorID string) (Summary, error)
}
