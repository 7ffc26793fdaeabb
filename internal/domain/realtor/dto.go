package realtor

import "github.com/havenbrook/realty-backend-go/internal/pkg/validator"

// UpdateProfileRequest - PUT /realtors/{id}
type UpdateProfileRequest struct {
	PhoneNumber   string  `json:"phone_number"`
	Street        string  `json:"street"`
	LGA           string  `json:"lga"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	PostalCode    string  `json:"postal_code"`
	Country       string  `json:"country"`
	BankName      string  `json:"bank_name"`
	AccountNumber string  `json:"account_number"`
	AccountName   string  `json:"account_name"`
	ProfileImage  *string `json:"profile_image,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if validator.IsEmpty(r.Street) {
		errs = append(errs, validator.ValidationError{
			Field:   "street",
			Message: "street is required",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProfileResponse is the public realtor shape. Bank details appear only on
// the realtor's own profile and admin views; credentials never do.
type ProfileResponse struct {
	ID            string  `json:"id"`
	Slug          string  `json:"slug"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PhoneNumber   string  `json:"phone_number"`
	FullAddress   string  `json:"full_address"`
	BankName      string  `json:"bank_name,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	AccountName   string  `json:"account_name,omitempty"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func ToProfileResponse(rl Realtor, includeBank bool) ProfileResponse {
	resp := ProfileResponse{
		ID:           rl.ID,
		Slug:         rl.Slug,
		Email:        rl.Email,
		FirstName:    rl.FirstName,
		LastName:     rl.LastName,
		PhoneNumber:  rl.PhoneNumber,
		FullAddress:  rl.FullAddress,
		ProfileImage: rl.ProfileImageURL,
		CreatedAt:    rl.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if includeBank {
		resp.BankName = rl.BankName
		resp.AccountNumber = rl.AccountNumber
		resp.AccountName = rl.AccountName
	}
	return resp
}
