package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a payout request. Requests never move commission statuses
// themselves; those stay admin-driven on the ledger.
type Status string

const (
	StatusOpen      Status = "open"
	StatusSettled   Status = "settled"
	StatusCancelled Status = "cancelled"
)

// Request records that a realtor asked to realize their pending commission
// balance. Amount is the balance snapshot at request time.
type Request struct {
	ID          string
	RealtorID   string
	Amount      decimal.Decimal
	Status      Status
	RequestedAt time.Time
	ClosedAt    *time.Time
}
