package invitation

import (
	"context"
	"time"
)

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create creates a new invitation record
	Create(ctx context.Context, inv Invitation) (Invitation, error)

	// GetByToken retrieves an invitation by its single-use token
	GetByToken(ctx context.Context, token string) (Invitation, error)

	// GetByID retrieves an invitation by id
	GetByID(ctx context.Context, id string) (Invitation, error)

	// ExistsActiveByEmail checks if email has a pending non-expired invitation
	ExistsActiveByEmail(ctx context.Context, email string) (bool, error)

	// ClaimPending atomically flips a pending, unexpired invitation to
	// accepted. Returns the claimed invitation, or ErrInvitationInvalid
	// when the row was already accepted, revoked or expired - only one of
	// two concurrent accept calls can win this update.
	ClaimPending(ctx context.Context, token string) (Invitation, error)

	// MarkRevoked marks a pending invitation as revoked
	MarkRevoked(ctx context.Context, id string) error

	// UpdateToken updates the token and expiry date (for resend)
	UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error
}
