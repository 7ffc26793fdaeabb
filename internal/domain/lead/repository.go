package lead

import "context"

// LeadRepository defines the interface for lead data access
type LeadRepository interface {
	// Create creates a new lead record
	Create(ctx context.Context, l Lead) (Lead, error)

	// GetByID retrieves a lead
	GetByID(ctx context.Context, id string) (Lead, error)

	// List returns all leads, newest first (admin)
	List(ctx context.Context) ([]Lead, error)

	// ListByRealtorID returns a realtor's attributed leads, newest first
	ListByRealtorID(ctx context.Context, realtorID string) ([]Lead, error)
}
