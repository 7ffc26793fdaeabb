package invitation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/havenbrook/realty-backend-go/internal/domain/invitation"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/domain/user"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/pkg/email"
	"github.com/havenbrook/realty-backend-go/internal/pkg/slug"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type InvitationServiceImpl struct {
	db *database.DB
	invitation.InvitationRepository
	user.UserRepository
	realtor.RealtorRepository
	email.EmailService

	invitationTTL time.Duration
	frontendURL   string
}

func NewInvitationService(
	db *database.DB,
	invitationRepository invitation.InvitationRepository,
	userRepository user.UserRepository,
	realtorRepository realtor.RealtorRepository,
	emailService email.EmailService,
	invitationTTL time.Duration,
	frontendURL string,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:                   db,
		InvitationRepository: invitationRepository,
		UserRepository:       userRepository,
		RealtorRepository:    realtorRepository,
		EmailService:         emailService,
		invitationTTL:        invitationTTL,
		frontendURL:          frontendURL,
	}
}

// CreateAndSend implements invitation.InvitationService.
func (s *InvitationServiceImpl) CreateAndSend(ctx context.Context, req invitation.CreateRequest) (invitation.Invitation, error) {
	if err := req.Validate(); err != nil {
		return invitation.Invitation{}, err
	}

	hasAccount, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to check existing account: %w", err)
	}
	if hasAccount {
		return invitation.Invitation{}, invitation.ErrEmailAlreadyAccount
	}

	hasInvitation, err := s.InvitationRepository.ExistsActiveByEmail(ctx, req.Email)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to check pending invitation: %w", err)
	}
	if hasInvitation {
		return invitation.Invitation{}, invitation.ErrEmailAlreadyInvited
	}

	inv := invitation.Invitation{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Token:     uuid.NewString(),
		Status:    invitation.StatusPending,
		ExpiresAt: time.Now().Add(s.invitationTTL),
	}

	created, err := s.InvitationRepository.Create(ctx, inv)
	if err != nil {
		return invitation.Invitation{}, err
	}

	s.sendInvitationEmail(created)

	return created, nil
}

// GetByToken implements invitation.InvitationService.
func (s *InvitationServiceImpl) GetByToken(ctx context.Context, token string) (invitation.InvitationDetailResponse, error) {
	inv, err := s.InvitationRepository.GetByToken(ctx, token)
	if err != nil {
		return invitation.InvitationDetailResponse{}, err
	}

	now := time.Now()
	return invitation.InvitationDetailResponse{
		Token:     inv.Token,
		Email:     inv.Email,
		FirstName: inv.FirstName,
		LastName:  inv.LastName,
		Status:    string(inv.EffectiveStatusAt(now)),
		ExpiresAt: inv.ExpiresAt.Format(time.RFC3339),
		IsExpired: inv.IsExpiredAt(now),
	}, nil
}

// Accept implements invitation.InvitationService. Claiming the token and
// provisioning the user and realtor rows happen in a single transaction so a
// failure at any step leaves the invitation acceptable again.
func (s *InvitationServiceImpl) Accept(ctx context.Context, req invitation.AcceptRequest) (invitation.AcceptResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.AcceptResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return invitation.AcceptResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	var response invitation.AcceptResponse

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inv, err := s.InvitationRepository.ClaimPending(txCtx, req.Token)
		if err != nil {
			return err
		}

		newUser, err := s.UserRepository.Create(txCtx, user.User{
			Email:        inv.Email,
			FirstName:    inv.FirstName,
			LastName:     inv.LastName,
			PasswordHash: &passwordHash,
			Role:         user.RoleRealtor,
		})
		if err != nil {
			return err
		}

		realtorSlug, err := s.assignSlug(txCtx, inv.FirstName, inv.LastName)
		if err != nil {
			return err
		}

		address := realtor.Address{
			Street:     req.Street,
			LGA:        req.LGA,
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		}

		newRealtor, err := s.RealtorRepository.Create(txCtx, realtor.Realtor{
			UserID:        newUser.ID,
			InvitationID:  inv.ID,
			Slug:          realtorSlug,
			PhoneNumber:   req.PhoneNumber,
			Address:       address,
			FullAddress:   address.FullAddress(),
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			AccountName:   req.AccountName,
		})
		if err != nil {
			return err
		}

		response = invitation.AcceptResponse{
			Message:   "invitation accepted",
			RealtorID: newRealtor.ID,
			Slug:      newRealtor.Slug,
			Email:     inv.Email,
		}
		return nil
	})

	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	return response, nil
}

// Resend implements invitation.InvitationService.
func (s *InvitationServiceImpl) Resend(ctx context.Context, id string) error {
	inv, err := s.InvitationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Accepted and revoked invitations are terminal. A pending one past its
	// expiry gets a fresh token and window.
	if inv.Status != invitation.StatusPending {
		return invitation.ErrInvitationInvalid
	}

	inv.Token = uuid.NewString()
	inv.ExpiresAt = time.Now().Add(s.invitationTTL)

	if err := s.InvitationRepository.UpdateToken(ctx, id, inv.Token, inv.ExpiresAt); err != nil {
		return err
	}

	s.sendInvitationEmail(inv)

	return nil
}

// Revoke implements invitation.InvitationService.
func (s *InvitationServiceImpl) Revoke(ctx context.Context, id string) error {
	return s.InvitationRepository.MarkRevoked(ctx, id)
}

// assignSlug derives a unique referral slug from the invitee's name,
// appending a numeric suffix on collision.
func (s *InvitationServiceImpl) assignSlug(ctx context.Context, firstName, lastName string) (string, error) {
	base := slug.Make(firstName, lastName)

	for n := 1; ; n++ {
		candidate := slug.WithSuffix(base, n)
		taken, err := s.RealtorRepository.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

func (s *InvitationServiceImpl) sendInvitationEmail(inv invitation.Invitation) {
	link := fmt.Sprintf("%s/onboarding/%s", s.frontendURL, inv.Token)
	name := inv.FirstName + " " + inv.LastName

	// Delivery failures are logged, not surfaced: the admin can always resend.
	if err := s.EmailService.SendInvitation(inv.Email, name, link, inv.ExpiresAt.Format(time.RFC1123)); err != nil {
		slog.Error("Failed to send invitation email", "invitation_id", inv.ID, "error", err)
	}
}
