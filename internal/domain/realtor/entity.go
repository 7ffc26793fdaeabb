package realtor

import (
	"strings"
	"time"
)

// Address is a realtor's structured residential address.
type Address struct {
	Street     string
	LGA        string
	City       string
	State      string
	PostalCode string
	Country    string
}

// FullAddress denormalizes the structured address into a single string,
// which is what listing pages and exports consume.
func (a Address) FullAddress() string {
	parts := []string{a.Street, a.LGA, a.City, a.State, a.PostalCode, a.Country}
	var nonEmpty []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(p))
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// Realtor represents a provisioned realtor identity. The slug doubles as the
// public referral code and never changes once assigned.
type Realtor struct {
	ID              string
	UserID          string
	InvitationID    string
	Slug            string
	PhoneNumber     string
	Address         Address
	FullAddress     string
	BankName        string
	AccountNumber   string
	AccountName     string
	ProfileImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	Email     string
	FirstName string
	LastName  string
}
