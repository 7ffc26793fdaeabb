package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrUserNotFound        = errors.New("user not found")

	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
)
