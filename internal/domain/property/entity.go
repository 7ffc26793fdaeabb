package property

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is a marketplace listing. Only the fields lead attribution and
// inquiry pages need live here; full listing management is a separate system.
type Property struct {
	ID        string
	Title     string
	Location  string
	Price     decimal.Decimal
	RealtorID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
