package invitation

import "context"

// InvitationService defines the interface for invitation business logic
type InvitationService interface {
	// CreateAndSend creates an invitation and emails the onboarding link (admin)
	CreateAndSend(ctx context.Context, req CreateRequest) (Invitation, error)

	// GetByToken retrieves invitation details by token with computed status (public endpoint)
	GetByToken(ctx context.Context, token string) (InvitationDetailResponse, error)

	// Accept claims the token and provisions the realtor account in one transaction
	Accept(ctx context.Context, req AcceptRequest) (AcceptResponse, error)

	// Resend rotates the token and expiry and emails the link again (admin)
	Resend(ctx context.Context, id string) error

	// Revoke revokes a pending invitation (admin)
	Revoke(ctx context.Context, id string) error
}
