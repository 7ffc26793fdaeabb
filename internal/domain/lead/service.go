package lead

import "context"

// LeadService defines the interface for lead intake business logic
type LeadService interface {
	// Create records an inquiry, attributing it by referral code first, then
	// by the property's owning realtor, else as a direct inquiry.
	Create(ctx context.Context, req CreateRequest) (CreateResponse, error)

	// List returns all leads (admin)
	List(ctx context.Context) ([]Lead, error)

	// ListByRealtor returns a realtor's attributed leads
	ListByRealtor(ctx context.Context, realtorID string) ([]Lead, error)
}
