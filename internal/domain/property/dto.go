package property

import (
	"github.com/havenbrook/realty-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateRequest - POST /properties (admin)
type CreateRequest struct {
	Title     string          `json:"title"`
	Location  string          `json:"location"`
	Price     decimal.Decimal `json:"price"`
	RealtorID *string         `json:"realtor_id,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	if !r.Price.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be greater than zero",
		})
	}

	if r.RealtorID != nil && !validator.IsValidUUID(*r.RealtorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "realtor_id",
			Message: "realtor_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PropertyResponse is the JSON shape for listings.
type PropertyResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Location  string  `json:"location"`
	Price     string  `json:"price"`
	RealtorID *string `json:"realtor_id"`
	CreatedAt string  `json:"created_at"`
}

func ToPropertyResponse(p Property) PropertyResponse {
	return PropertyResponse{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Price:     p.Price.StringFixed(2),
		RealtorID: p.RealtorID,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
