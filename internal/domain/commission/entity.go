package commission

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is a commission's position in the approval/payout pipeline.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

// transitions is the full one-directional graph: pending fans out to
// approved or rejected, approved reaches paid, and paid/rejected are
// terminal. Nothing skips approved on the way to paid.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPaid},
	StatusPaid:     {},
	StatusRejected: {},
}

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the graph permits moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Commission is a monetary record owed to a realtor for a qualifying lead.
// Amount is immutable once created.
type Commission struct {
	ID              string
	RealtorID       string
	LeadID          string
	Amount          decimal.Decimal
	Status          Status
	Notes           *string
	TransactionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Summary is the read-side projection over a realtor's ledger, computed
// directly from commission rows so it can never drift from them.
type Summary struct {
	Total    decimal.Decimal
	Pending  decimal.Decimal
	Approved decimal.Decimal
	Paid     decimal.Decimal
	Rejected decimal.Decimal
}
