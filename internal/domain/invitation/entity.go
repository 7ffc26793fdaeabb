package invitation

import "time"

// Status represents the status of a realtor invitation
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusExpired  Status = "expired"
	StatusRevoked  Status = "revoked"
)

// Invitation represents a single-use realtor invitation entity
type Invitation struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	Token      string
	Status     Status
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsExpiredAt checks if the invitation has expired at the given instant.
func (i *Invitation) IsExpiredAt(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsExpired checks if the invitation has expired (query-time check)
func (i *Invitation) IsExpired() bool {
	return i.IsExpiredAt(time.Now())
}

// EffectiveStatusAt derives the status visible to callers. A stored
// "pending" row past its expiry reads as expired; the stored value is
// never trusted on its own.
func (i *Invitation) EffectiveStatusAt(now time.Time) Status {
	if i.Status == StatusPending && i.IsExpiredAt(now) {
		return StatusExpired
	}
	return i.Status
}

// EffectiveStatus derives the status as of now.
func (i *Invitation) EffectiveStatus() Status {
	return i.EffectiveStatusAt(time.Now())
}

// CanBeAcceptedAt checks if the invitation can be accepted at the given instant
func (i *Invitation) CanBeAcceptedAt(now time.Time) bool {
	return i.Status == StatusPending && !i.IsExpiredAt(now)
}

// CanBeAccepted checks if the invitation can be accepted
func (i *Invitation) CanBeAccepted() bool {
	return i.CanBeAcceptedAt(time.Now())
}
