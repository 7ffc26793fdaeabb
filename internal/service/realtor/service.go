package realtor

import (
	"context"

	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RealtorServiceImpl struct {
	db *database.DB
	realtor.RealtorRepository
}

func NewRealtorService(db *database.DB, realtorRepository realtor.RealtorRepository) realtor.RealtorService {
	return &RealtorServiceImpl{
		db:                db,
		RealtorRepository: realtorRepository,
	}
}

// GetByID implements realtor.RealtorService.
func (s *RealtorServiceImpl) GetByID(ctx context.Context, id string) (realtor.Realtor, error) {
	return s.RealtorRepository.GetByID(ctx, id)
}

// GetBySlug implements realtor.RealtorService.
func (s *RealtorServiceImpl) GetBySlug(ctx context.Context, slug string) (realtor.Realtor, error) {
	return s.RealtorRepository.GetBySlug(ctx, slug)
}

// UpdateProfile implements realtor.RealtorService.
func (s *RealtorServiceImpl) UpdateProfile(ctx context.Context, id string, req realtor.UpdateProfileRequest) (realtor.Realtor, error) {
	if err := req.Validate(); err != nil {
		return realtor.Realtor{}, err
	}

	current, err := s.RealtorRepository.GetByID(ctx, id)
	if err != nil {
		return realtor.Realtor{}, err
	}

	current.PhoneNumber = req.PhoneNumber
	current.Address = realtor.Address{
		Street:     req.Street,
		LGA:        req.LGA,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	current.FullAddress = current.Address.FullAddress()
	current.BankName = req.BankName
	current.AccountNumber = req.AccountNumber
	current.AccountName = req.AccountName
	if req.ProfileImage != nil {
		current.ProfileImageURL = req.ProfileImage
	}

	return s.RealtorRepository.UpdateProfile(ctx, current)
}

// Delete implements realtor.RealtorService. The realtor row and its user
// identity go together or not at all.
func (s *RealtorServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.RealtorRepository.Delete(txCtx, id)
	})
}

// List implements realtor.RealtorService.
func (s *RealtorServiceImpl) List(ctx context.Context) ([]realtor.Realtor, error) {
	return s.RealtorRepository.List(ctx)
}
