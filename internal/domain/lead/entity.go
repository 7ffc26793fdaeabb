package lead

import "time"

// Source is how a lead was attributed to a realtor.
type Source string

const (
	SourceReferralLink    Source = "referral_link"
	SourcePropertyListing Source = "property_listing"
	SourceDirectInquiry   Source = "direct_inquiry"
)

// Lead is a prospective-client inquiry. RealtorID is nil exactly when the
// source is a direct inquiry.
type Lead struct {
	ID          string
	FullName    string
	Email       string
	PhoneNumber string
	Message     string
	PropertyID  string
	RealtorID   *string
	Source      Source
	CreatedAt   time.Time
}
