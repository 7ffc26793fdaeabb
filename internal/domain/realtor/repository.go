package realtor

import "context"

// RealtorRepository defines the interface for realtor data access
type RealtorRepository interface {
	// Create creates a new realtor record
	Create(ctx context.Context, rl Realtor) (Realtor, error)

	// GetByID retrieves a realtor with joined user identity
	GetByID(ctx context.Context, id string) (Realtor, error)

	// GetBySlug resolves a referral code to its owning realtor
	GetBySlug(ctx context.Context, slug string) (Realtor, error)

	// GetByUserID retrieves the realtor linked to a user identity
	GetByUserID(ctx context.Context, userID string) (Realtor, error)

	// ExistsBySlug checks slug uniqueness
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// UpdateProfile updates the mutable profile fields (phone, address, bank
	// details). The slug is immutable and not touched here.
	UpdateProfile(ctx context.Context, rl Realtor) (Realtor, error)

	// Delete hard-deletes a realtor (admin action; the invitation row stays
	// behind for audit)
	Delete(ctx context.Context, id string) error

	// List returns all realtors (admin)
	List(ctx context.Context) ([]Realtor, error)
}
