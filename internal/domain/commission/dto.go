package commission

import (
	"github.com/havenbrook/realty-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateRequest - POST /commissions (admin). The triggering business event
// (sale closing, lease signing) lives outside this service; it lands here as
// an explicit admin action tied to one lead.
type CreateRequest struct {
	RealtorID string          `json:"realtor_id"`
	LeadID    string          `json:"lead_id"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     *string         `json:"notes,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RealtorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "realtor_id",
			Message: "realtor_id is required",
		})
	} else if !validator.IsValidUUID(r.RealtorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "realtor_id",
			Message: "realtor_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.LeadID) {
		errs = append(errs, validator.ValidationError{
			Field:   "lead_id",
			Message: "lead_id is required",
		})
	} else if !validator.IsValidUUID(r.LeadID) {
		errs = append(errs, validator.ValidationError{
			Field:   "lead_id",
			Message: "lead_id must be a valid UUID",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStatusRequest - PUT /commissions/{id}/status (admin)
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, paid, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CommissionResponse is the JSON shape for ledger rows.
type CommissionResponse struct {
	ID              string  `json:"id"`
	RealtorID       string  `json:"realtor_id"`
	LeadID          string  `json:"lead_id"`
	Amount          string  `json:"amount"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	TransactionDate string  `json:"transaction_date"`
	CreatedAt       string  `json:"created_at"`
}

func ToCommissionResponse(c Commission) CommissionResponse {
	return CommissionResponse{
		ID:              c.ID,
		RealtorID:       c.RealtorID,
		LeadID:          c.LeadID,
		Amount:          c.Amount.StringFixed(2),
		Status:          string(c.Status),
		Notes:           c.Notes,
		TransactionDate: c.TransactionDate.Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:       c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// SummaryResponse - GET /realtors/{id}/commissions/summary
type SummaryResponse struct {
	Total    string `json:"total"`
	Pending  string `json:"pending"`
	Approved string `json:"approved"`
	Paid     string `json:"paid"`
	Rejected string `json:"rejected"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		Total:    s.Total.StringFixed(2),
		Pending:  s.Pending.StringFixed(2),
		Approved: s.Approved.StringFixed(2),
		Paid:     s.Paid.StringFixed(2),
		Rejected: s.Rejected.StringFixed(2),
	}
}
