package invitation

import "errors"

var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationInvalid    = errors.New("invitation is no longer valid")
	ErrEmailAlreadyInvited  = errors.New("email already has a pending invitation")
	ErrEmailAlreadyAccount  = errors.New("email already belongs to an account")
	ErrCannotRevokeAccepted = errors.New("cannot revoke an accepted invitation")
)
