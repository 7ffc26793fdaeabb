package response

import (
	"errors"
	"net/http"

	"github.com/havenbrook/realty-backend-go/internal/domain/auth"
	"github.com/havenbrook/realty-backend-go/internal/domain/commission"
	"github.com/havenbrook/realty-backend-go/internal/domain/invitation"
	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/havenbrook/realty-backend-go/internal/domain/property"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/domain/user"
	"github.com/havenbrook/realty-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound), errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationInvalid):
		Conflict(w, "Invitation is no longer valid")
	case errors.Is(err, invitation.ErrEmailAlreadyInvited):
		Conflict(w, "Email already has a pending invitation")
	case errors.Is(err, invitation.ErrEmailAlreadyAccount):
		Conflict(w, "Email already has an account")
	case errors.Is(err, invitation.ErrCannotRevokeAccepted):
		Conflict(w, "Invitation has already been accepted or revoked")

	// Realtor domain errors
	case errors.Is(err, realtor.ErrRealtorNotFound):
		NotFound(w, "Realtor not found")
	case errors.Is(err, realtor.ErrSlugTaken):
		Conflict(w, "Referral slug already taken")

	// Property and lead domain errors
	case errors.Is(err, property.ErrPropertyNotFound):
		NotFound(w, "Property not found")
	case errors.Is(err, lead.ErrLeadNotFound):
		NotFound(w, "Lead not found")

	// Commission domain errors
	case errors.Is(err, commission.ErrCommissionNotFound):
		NotFound(w, "Commission not found")
	case errors.Is(err, commission.ErrInvalidTransition):
		Conflict(w, "Commission status transition not allowed")

	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout request not found")
	case errors.Is(err, payout.ErrNoEligibleBalance):
		BadRequest(w, "No eligible commission balance to pay out", nil)
	case errors.Is(err, payout.ErrPayoutAlreadyRequested):
		Conflict(w, "An open payout request already exists")
	case errors.Is(err, payout.ErrPayoutAlreadyClosed):
		Conflict(w, "Payout request already closed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
