package lead

import "github.com/havenbrook/realty-backend-go/internal/pkg/validator"

// CreateRequest - POST /leads. ReferralCode is optional; when absent the
// handler falls back to the visitor's attribution cookie.
type CreateRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Message      string `json:"message"`
	PropertyID   string `json:"property_id"`
	ReferralCode string `json:"referral_code,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is required",
		})
	} else if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number format is invalid",
		})
	}

	if validator.IsEmpty(r.PropertyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "property_id",
			Message: "property_id is required",
		})
	} else if !validator.IsValidUUID(r.PropertyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "property_id",
			Message: "property_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateResponse - created lead plus whether a referral code was consumed,
// so the handler knows to clear the attribution store.
type CreateResponse struct {
	Lead         Lead
	ReferralUsed bool
}

// LeadResponse is the JSON shape for lead listings.
type LeadResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Message     string  `json:"message"`
	PropertyID  string  `json:"property_id"`
	RealtorID   *string `json:"realtor_id"`
	Source      string  `json:"source"`
	CreatedAt   string  `json:"created_at"`
}

func ToLeadResponse(l Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		FullName:    l.FullName,
		Email:       l.Email,
		PhoneNumber: l.PhoneNumber,
		Message:     l.Message,
		PropertyID:  l.PropertyID,
		RealtorID:   l.RealtorID,
		Source:      string(l.Source),
		CreatedAt:   l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
