package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/havenbrook/realty-backend-go/internal/domain/auth"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// JWTRepository persists refresh tokens so they can be revoked server-side
type JWTRepository interface {
	CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error
	RevokeRefreshToken(ctx context.Context, token string) error
	IsRefreshTokenRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
}

type jwtRepositoryImpl struct {
	db *database.DB
}

func NewJWTRepository(db *database.DB) JWTRepository {
	return &jwtRepositoryImpl{db: db}
}

// CreateRefreshToken implements JWTRepository.
func (r *jwtRepositoryImpl) CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, userID, token, time.Unix(expiresAt, 0), sessionReq.IPAddress, sessionReq.UserAgent)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// RevokeRefreshToken implements JWTRepository.
func (r *jwtRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	if _, err := q.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// IsRefreshTokenRevoked implements JWTRepository.
func (r *jwtRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, revoked_at IS NOT NULL OR expires_at <= NOW()
		FROM refresh_tokens
		WHERE token = $1
	`

	var userID string
	var revoked bool
	err := q.QueryRow(ctx, query, token).Scan(&userID, &revoked)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", true, nil
		}
		return "", false, fmt.Errorf("failed to check refresh token: %w", err)
	}

	return userID, revoked, nil
}
