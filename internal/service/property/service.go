package property

import (
	"context"

	"github.com/havenbrook/realty-backend-go/internal/domain/property"
	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
)

type PropertyServiceImpl struct {
	property.PropertyRepository
	realtor.RealtorRepository
}

func NewPropertyService(
	propertyRepository property.PropertyRepository,
	realtorRepository realtor.RealtorRepository,
) property.PropertyService {
	return &PropertyServiceImpl{
		PropertyRepository: propertyRepository,
		RealtorRepository:  realtorRepository,
	}
}

// Create implements property.PropertyService.
func (s *PropertyServiceImpl) Create(ctx context.Context, req property.CreateRequest) (property.Property, error) {
	if err := req.Validate(); err != nil {
		return property.Property{}, err
	}

	if req.RealtorID != nil {
		if _, err := s.RealtorRepository.GetByID(ctx, *req.RealtorID); err != nil {
			return property.Property{}, err
		}
	}

	return s.PropertyRepository.Create(ctx, property.Property{
		Title:     req.Title,
		Location:  req.Location,
		Price:     req.Price,
		RealtorID: req.RealtorID,
	})
}

// GetByID implements property.PropertyService.
func (s *PropertyServiceImpl) GetByID(ctx context.Context, id string) (property.Property, error) {
	return s.PropertyRepository.GetByID(ctx, id)
}

// List implements property.PropertyService.
func (s *PropertyServiceImpl) List(ctx context.Context) ([]property.Property, error) {
	return s.PropertyRepository.List(ctx)
}
