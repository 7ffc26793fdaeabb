package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusPaid.IsValid())
	assert.True(t, StatusRejected.IsValid())

	assert.False(t, Status("").IsValid())
	assert.False(t, Status("cancelled").IsValid())
	assert.False(t, Status("PENDING").IsValid())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusPaid, true},

		// No skipping approval
		{StatusPending, StatusPaid, false},

		// No backwards moves
		{StatusApproved, StatusPending, false},
		{StatusPaid, StatusPending, false},
		{StatusPaid, StatusApproved, false},
		{StatusRejected, StatusPending, false},

		// Terminal states stay terminal
		{StatusPaid, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPaid, false},

		// Self transitions are not a thing
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusApproved, false},

		// Unknown targets never pass
		{StatusPending, Status("cancelled"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
