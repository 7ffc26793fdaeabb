package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/havenbrook/realty-backend-go/internal/domain/invitation"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const invitationColumns = `id, email, first_name, last_name, token, status,
		expires_at, accepted_at, revoked_at, created_at, updated_at`

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.FirstName, &inv.LastName, &inv.Token, &inv.Status,
		&inv.ExpiresAt, &inv.AcceptedAt, &inv.RevokedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO realtor_invitations (email, first_name, last_name, token, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + invitationColumns

	created, err := scanInvitation(q.QueryRow(ctx, query,
		inv.Email, inv.FirstName, inv.LastName, inv.Token, inv.Status, inv.ExpiresAt,
	))
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// GetByToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM realtor_invitations WHERE token = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + ` FROM realtor_invitations WHERE id = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by id: %w", err)
	}

	return inv, nil
}

// ExistsActiveByEmail implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM realtor_invitations
			WHERE email = $1 AND status = 'pending' AND expires_at > NOW()
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}

	return exists, nil
}

// ClaimPending implements invitation.InvitationRepository. The WHERE clause
// is the concurrency guard: only one of two simultaneous accepts can match
// the pending row, the other sees zero rows and gets ErrInvitationInvalid.
func (r *invitationRepositoryImpl) ClaimPending(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE realtor_invitations
		SET status = 'accepted', accepted_at = NOW(), updated_at = NOW()
		WHERE token = $1 AND status = 'pending' AND expires_at > NOW()
		RETURNING ` + invitationColumns

	inv, err := scanInvitation(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish unknown tokens from consumed/expired ones
			if _, lookupErr := r.GetByToken(ctx, token); lookupErr != nil {
				return invitation.Invitation{}, lookupErr
			}
			return invitation.Invitation{}, invitation.ErrInvitationInvalid
		}
		return invitation.Invitation{}, fmt.Errorf("failed to claim invitation: %w", err)
	}

	return inv, nil
}

// MarkRevoked implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) MarkRevoked(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE realtor_invitations
		SET status = 'revoked', revoked_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, lookupErr := r.GetByID(ctx, id); lookupErr != nil {
				return lookupErr
			}
			return invitation.ErrCannotRevokeAccepted
		}
		return fmt.Errorf("failed to mark invitation as revoked: %w", err)
	}

	return nil
}

// UpdateToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) UpdateToken(ctx context.Context, id, newToken string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE realtor_invitations
		SET token = $1, expires_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, newToken, expiresAt, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to update invitation token: %w", err)
	}

	return nil
}
