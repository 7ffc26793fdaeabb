package property

import "context"

// PropertyService defines the interface for listing business logic
type PropertyService interface {
	// Create creates a new listing (admin)
	Create(ctx context.Context, req CreateRequest) (Property, error)

	// GetByID retrieves a listing
	GetByID(ctx context.Context, id string) (Property, error)

	// List returns all listings
	List(ctx context.Context) ([]Property, error)
}
