package realtor

import "context"

// RealtorService defines the interface for realtor profile business logic
type RealtorService interface {
	// GetByID retrieves a realtor profile
	GetByID(ctx context.Context, id string) (Realtor, error)

	// GetBySlug retrieves the public profile behind a referral slug
	GetBySlug(ctx context.Context, slug string) (Realtor, error)

	// UpdateProfile updates mutable profile fields. The slug never changes.
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (Realtor, error)

	// Delete removes the realtor and its user identity (admin)
	Delete(ctx context.Context, id string) error

	// List returns all realtors (admin)
	List(ctx context.Context) ([]Realtor, error)
}
