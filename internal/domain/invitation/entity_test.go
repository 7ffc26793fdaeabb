package invitation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pendingInvitation(expiresAt time.Time) Invitation {
	return Invitation{
		ID:        "inv-1",
		Email:     "jane@example.com",
		Status:    StatusPending,
		ExpiresAt: expiresAt,
	}
}

func TestInvitation_EffectiveStatusAt(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := issued.Add(48 * time.Hour)
	inv := pendingInvitation(expiry)

	// Stored status holds while the window is open
	assert.Equal(t, StatusPending, inv.EffectiveStatusAt(issued))
	assert.Equal(t, StatusPending, inv.EffectiveStatusAt(issued.Add(47*time.Hour)))
	assert.Equal(t, StatusPending, inv.EffectiveStatusAt(expiry))

	// Past expiry the stored pending reads as expired without any write
	assert.Equal(t, StatusExpired, inv.EffectiveStatusAt(issued.Add(49*time.Hour)))
	assert.Equal(t, StatusExpired, inv.EffectiveStatusAt(expiry.Add(time.Second)))
}

func TestInvitation_EffectiveStatusAt_TerminalStates(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pastExpiry := issued.Add(72 * time.Hour)

	accepted := pendingInvitation(issued.Add(48 * time.Hour))
	accepted.Status = StatusAccepted
	assert.Equal(t, StatusAccepted, accepted.EffectiveStatusAt(pastExpiry))

	revoked := pendingInvitation(issued.Add(48 * time.Hour))
	revoked.Status = StatusRevoked
	assert.Equal(t, StatusRevoked, revoked.EffectiveStatusAt(pastExpiry))
}

func TestInvitation_CanBeAcceptedAt(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := issued.Add(48 * time.Hour)

	inv := pendingInvitation(expiry)
	assert.True(t, inv.CanBeAcceptedAt(issued))
	assert.True(t, inv.CanBeAcceptedAt(expiry))
	assert.False(t, inv.CanBeAcceptedAt(expiry.Add(time.Minute)))

	inv.Status = StatusAccepted
	assert.False(t, inv.CanBeAcceptedAt(issued))

	inv.Status = StatusRevoked
	assert.False(t, inv.CanBeAcceptedAt(issued))
}

func TestInvitation_IsExpiredAt(t *testing.T) {
	expiry := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	inv := pendingInvitation(expiry)

	assert.False(t, inv.IsExpiredAt(expiry.Add(-time.Hour)))
	assert.False(t, inv.IsExpiredAt(expiry))
	assert.True(t, inv.IsExpiredAt(expiry.Add(time.Nanosecond)))
}
