package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/havenbrook/realty-backend-go/internal/domain/auth"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/domain/user"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/pkg/jwt"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	realtor.RealtorRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	realtorRepository realtor.RealtorRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                db,
		UserRepository:    userRepository,
		RealtorRepository: realtorRepository,
		Service:           jwtService,
		JWTRepository:     jwtRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	realtorID, err := a.lookupRealtorID(ctx, userData)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var tokenResponse auth.TokenResponse

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, realtorID, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})

	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userID, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	realtorID, err := a.lookupRealtorID(ctx, userData)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	var accessTokenResponse auth.AccessTokenResponse
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email, realtorID, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, token)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, token); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

// lookupRealtorID resolves the realtor_id claim for realtor accounts. Other
// roles carry a nil claim.
func (a *AuthServiceImpl) lookupRealtorID(ctx context.Context, userData user.User) (*string, error) {
	if !userData.IsRealtor() {
		return nil, nil
	}

	realtorData, err := a.RealtorRepository.GetByUserID(ctx, userData.ID)
	if err != nil {
		if errors.Is(err, realtor.ErrRealtorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get realtor for user: %w", err)
	}

	return &realtorData.ID, nil
}
