package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Marketplace staff - manages invitations and the ledger
	RoleRealtor  Role = "realtor"  // Provisioned via invitation, earns commissions
	RoleInvestor Role = "investor" // Regular marketplace account
)

type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is marketplace staff
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsRealtor checks if user holds a realtor account
func (u *User) IsRealtor() bool {
	return u.Role == RoleRealtor
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
