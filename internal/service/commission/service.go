package commission

import (
	"context"
	"time"

	"github.com/havenbrook/realty-backend-go/internal/domain/commission"
	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
)

type CommissionServiceImpl struct {
	commission.CommissionRepository
	realtor.RealtorRepository
	lead.LeadRepository
}

func NewCommissionService(
	commissionRepository commission.CommissionRepository,
	realtorRepository realtor.RealtorRepository,
	leadRepository lead.LeadRepository,
) commission.CommissionService {
	return &CommissionServiceImpl{
		CommissionRepository: commissionRepository,
		RealtorRepository:    realtorRepository,
		LeadRepository:       leadRepository,
	}
}

// Create implements commission.CommissionService.
func (s *CommissionServiceImpl) Create(ctx context.Context, req commission.CreateRequest) (commission.Commission, error) {
	if err := req.Validate(); err != nil {
		return commission.Commission{}, err
	}

	if _, err := s.RealtorRepository.GetByID(ctx, req.RealtorID); err != nil {
		return commission.Commission{}, err
	}
	if _, err := s.LeadRepository.GetByID(ctx, req.LeadID); err != nil {
		return commission.Commission{}, err
	}

	return s.CommissionRepository.Create(ctx, commission.Commission{
		RealtorID:       req.RealtorID,
		LeadID:          req.LeadID,
		Amount:          req.Amount,
		Status:          commission.StatusPending,
		Notes:           req.Notes,
		TransactionDate: time.Now(),
	})
}

// UpdateStatus implements commission.CommissionService. The repository
// update is keyed on the status read here, so a concurrent transition
// invalidates this one instead of silently stacking on top of it.
func (s *CommissionServiceImpl) UpdateStatus(ctx context.Context, id string, req commission.UpdateStatusRequest) (commission.Commission, error) {
	if err := req.Validate(); err != nil {
		return commission.Commission{}, err
	}

	current, err := s.CommissionRepository.GetByID(ctx, id)
	if err != nil {
		return commission.Commission{}, err
	}

	target := commission.Status(req.Status)
	if !current.Status.CanTransitionTo(target) {
		return commission.Commission{}, commission.ErrInvalidTransition
	}

	return s.CommissionRepository.UpdateStatus(ctx, id, current.Status, target)
}

// ListByRealtor implements commission.CommissionService.
func (s *CommissionServiceImpl) ListByRealtor(ctx context.Context, realtorID string) ([]commission.Commission, error) {
	if _, err := s.RealtorRepository.GetByID(ctx, realtorID); err != nil {
		return nil, err
	}
	return s.CommissionRepository.ListByRealtorID(ctx, realtorID)
}

// Summary implements commission.CommissionService.
func (s *CommissionServiceImpl) Summary(ctx context.Context, realtorID string) (commission.Summary, error) {
	if _, err := s.RealtorRepository.GetByID(ctx, realtorID); err != nil {
		return commission.Summary{}, err
	}
	return s.CommissionRepository.SummaryByRealtorID(ctx, realtorID)
}
