package property

import "context"

// PropertyRepository defines the interface for listing data access
type PropertyRepository interface {
	// Create creates a new listing (admin)
	Create(ctx context.Context, p Property) (Property, error)

	// GetByID retrieves a listing
	GetByID(ctx context.Context, id string) (Property, error)

	// List returns all listings
	List(ctx context.Context) ([]Property, error)
}
