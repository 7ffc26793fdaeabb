package invitation

import "github.com/havenbrook/realty-backend-go/internal/pkg/validator"

// CreateRequest - POST /invitations (admin)
type CreateRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AcceptRequest carries the onboarding form submitted with the token
type AcceptRequest struct {
	Token           string `json:"-"` // From Chi URL param
	PhoneNumber     string `json:"phone_number"`
	Street          string `json:"street"`
	LGA             string `json:"lga"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`
	Country         string `json:"country"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	BankName        string `json:"bank_name"`
	AccountNumber   string `json:"account_number"`
	AccountName     string `json:"account_name"`
	AgreedToTerms   bool   `json:"agreed_to_terms"`
}

func (r *AcceptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	} else if !validator.IsValidUUID(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token must be a valid UUID",
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

	for field, value := range map[string]string{
		"street":      r.Street,
		"lga":         r.LGA,
		"city":        r.City,
		"state":       r.State,
		"postal_code": r.PostalCode,
		"country":     r.Country,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if !validator.IsValidPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	} else if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if validator.IsEmpty(r.BankName) {
		errs = append(errs, validator.ValidationError{
			Field:   "bank_name",
			Message: "bank_name is required",
		})
	}

	if validator.IsEmpty(r.AccountNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "account_number",
			Message: "account_number is required",
		})
	} else if !validator.IsValidAccountNumber(r.AccountNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "account_number",
			Message: "account_number must be 10 digits",
		})
	}

	if validator.IsEmpty(r.AccountName) {
		errs = append(errs, validator.ValidationError{
			Field:   "account_name",
			Message: "account_name is required",
		})
	}

	if !r.AgreedToTerms {
		errs = append(errs, validator.ValidationError{
			Field:   "agreed_to_terms",
			Message: "terms must be accepted",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// InvitationDetailResponse - GET /invitations/{token}
type InvitationDetailResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	IsExpired bool   `json:"is_expired"`
}

// AcceptResponse for invitation acceptance result. Credentials never appear here.
type AcceptResponse struct {
	Message   string `json:"message"`
	RealtorID string `json:"realtor_id"`
	Slug      string `json:"slug"`
	Email     string `json:"email"`
}
