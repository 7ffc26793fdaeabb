package user

import "context"

// UserRepository defines the interface for user identity data access
type UserRepository interface {
	// Create creates a new user record
	Create(ctx context.Context, newUser User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// ExistsByEmail checks email uniqueness across all roles
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
