package lead

import (
	"context"
	"errors"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/domain/property"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
)

type LeadServiceImpl struct {
	lead.LeadRepository
	property.PropertyRepository
	realtor.RealtorRepository
}

func NewLeadService(
	leadRepository lead.LeadRepository,
	propertyRepository property.PropertyRepository,
	realtorRepository realtor.RealtorRepository,
) lead.LeadService {
	return &LeadServiceImpl{
		LeadRepository:     leadRepository,
		PropertyRepository: propertyRepository,
		RealtorRepository:  realtorRepository,
	}
}

// Create implements lead.LeadService. Attribution resolves in order: a
// referral code naming a live realtor wins, then the property's owning
// realtor, otherwise the lead lands unattributed as a direct inquiry. An
// unresolvable code falls through rather than failing the submission.
func (s *LeadServiceImpl) Create(ctx context.Context, req lead.CreateRequest) (lead.CreateResponse, error) {
	if err := req.Validate(); err != nil {
		return lead.CreateResponse{}, err
	}

	prop, err := s.PropertyRepository.GetByID(ctx, req.PropertyID)
	if err != nil {
		return lead.CreateResponse{}, err
	}

	newLead := lead.Lead{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		PropertyID:  prop.ID,
		Source:      lead.SourceDirectInquiry,
	}

	referralUsed := false
	if req.ReferralCode != "" {
		rl, err := s.RealtorRepository.GetBySlug(ctx, req.ReferralCode)
		switch {
		case err == nil:
			newLead.RealtorID = &rl.ID
			newLead.Source = lead.SourceReferralLink
			referralUsed = true
		case errors.Is(err, realtor.ErrRealtorNotFound):
			// Stale or mistyped code, fall through to listing attribution
		default:
			return lead.CreateResponse{}, fmt.Errorf("failed to resolve referral code: %w", err)
		}
	}

	if newLead.RealtorID == nil && prop.RealtorID != nil {
		newLead.RealtorID = prop.RealtorID
		newLead.Source = lead.SourcePropertyListing
	}

	created, err := s.LeadRepository.Create(ctx, newLead)
	if err != nil {
		return lead.CreateResponse{}, err
	}

	return lead.CreateResponse{Lead: created, ReferralUsed: referralUsed}, nil
}

// List implements lead.LeadService.
func (s *LeadServiceImpl) List(ctx context.Context) ([]lead.Lead, error) {
	return s.LeadRepository.List(ctx)
}

// ListByRealtor implements lead.LeadService.
func (s *LeadServiceImpl) ListByRealtor(ctx context.Context, realtorID string) ([]lead.Lead, error) {
	return s.LeadRepository.ListByRealtorID(ctx, realtorID)
}
