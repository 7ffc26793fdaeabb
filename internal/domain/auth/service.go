package auth

import "context"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Login verifies credentials and issues access + refresh tokens
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken exchanges a live refresh token for a new access token
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes a refresh token
	Logout(ctx context.Context, token string) error
}
