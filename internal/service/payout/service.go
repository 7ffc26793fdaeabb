package payout

import (
	"context"

	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayoutServiceImpl struct {
	db *database.DB
	payout.PayoutRepository
	realtor.RealtorRepository
}

func NewPayoutService(
	db *database.DB,
	payoutRepository payout.PayoutRepository,
	realtorRepository realtor.RealtorRepository,
) payout.PayoutService {
	return &PayoutServiceImpl{
		db:                db,
		PayoutRepository:  payoutRepository,
		RealtorRepository: realtorRepository,
	}
}

// Request implements payout.PayoutService. The pending commissions are row
// locked inside the transaction, so the snapshot amount cannot be changed by
// a concurrent status transition, and the partial unique index on open
// requests rejects a double submission.
func (s *PayoutServiceImpl) Request(ctx context.Context, realtorID string) (payout.Request, error) {
	if _, err := s.RealtorRepository.GetByID(ctx, realtorID); err != nil {
		return payout.Request{}, err
	}

	var request payout.Request

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		balance, err := s.PayoutRepository.LockPendingBalance(txCtx, realtorID)
		if err != nil {
			return err
		}
		if !balance.IsPositive() {
			return payout.ErrNoEligibleBalance
		}

		request, err = s.PayoutRepository.Create(txCtx, payout.Request{
			RealtorID: realtorID,
			Amount:    balance,
			Status:    payout.StatusOpen,
		})
		return err
	})

	if err != nil {
		return payout.Request{}, err
	}

	return request, nil
}

// ListByRealtor implements payout.PayoutService.
func (s *PayoutServiceImpl) ListByRealtor(ctx context.Context, realtorID string) ([]payout.Request, error) {
	return s.PayoutRepository.ListByRealtorID(ctx, realtorID)
}

// Settle implements payout.PayoutService.
func (s *PayoutServiceImpl) Settle(ctx context.Context, id string) (payout.Request, error) {
	return s.PayoutRepository.Close(ctx, id, payout.StatusSettled)
}

// Cancel implements payout.PayoutService.
func (s *PayoutServiceImpl) Cancel(ctx context.Context, id string) (payout.Request, error) {
	return s.PayoutRepository.Close(ctx, id, payout.StatusCancelled)
}
