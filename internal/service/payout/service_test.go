package payout

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayoutDB *database.DB

func payoutTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testPayoutDB != nil {
		return testPayoutDB
	}

	var err error
	testPayoutDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(testPayoutDB))
	return testPayoutDB
}

func truncatePayoutTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	tables := []string{"payout_requests", "commissions", "leads", "properties", "refresh_tokens", "realtors", "realtor_invitations", "users"}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

// createPayoutTestRealtor inserts the user, invitation and realtor rows a
// ledger needs and returns the realtor id.
func createPayoutTestRealtor(t *testing.T, ctx context.Context, db *database.DB) string {
	t.Helper()
	unique := fmt.Sprintf("%d", time.Now().UnixNano())

	var userID string
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, first_name, last_name, role)
		VALUES ($1, 'Jane', 'Smith', 'realtor')
		RETURNING id
	`, fmt.Sprintf("jane-%s@example.com", unique)).Scan(&userID)
	require.NoError(t, err)

	var invitationID string
	err = db.QueryRow(ctx, `
		INSERT INTO realtor_invitations (email, first_name, last_name, token, status, expires_at, accepted_at)
		VALUES ($1, 'Jane', 'Smith', gen_random_uuid(), 'accepted', NOW() + INTERVAL '48 hours', NOW())
		RETURNING id
	`, fmt.Sprintf("jane-%s@example.com", unique)).Scan(&invitationID)
	require.NoError(t, err)

	var realtorID string
	err = db.QueryRow(ctx, `
		INSERT INTO realtors (
			user_id, invitation_id, slug, phone_number,
			street, lga, city, state, postal_code, country, full_address,
			bank_name, account_number, account_name
		) VALUES ($1, $2, $3, '08031234567',
			'12 Marina Road', 'Eti-Osa', 'Lagos', 'Lagos', '106104', 'Nigeria', '12 Marina Road, Lagos',
			'First Bank', '0123456789', 'Jane Smith')
		RETURNING id
	`, userID, invitationID, fmt.Sprintf("jane-smith-%s", unique)).Scan(&realtorID)
	require.NoError(t, err)

	return realtorID
}

func createPayoutTestCommission(t *testing.T, ctx context.Context, db *database.DB, realtorID, amount, status string) {
	t.Helper()

	var propertyID string
	err := db.QueryRow(ctx, `
		INSERT INTO properties (title, location, price) VALUES ('Test Listing', 'Lagos', 50000000)
		RETURNING id
	`).Scan(&propertyID)
	require.NoError(t, err)

	var leadID string
	err = db.QueryRow(ctx, `
		INSERT INTO leads (full_name, email, phone_number, message, property_id, realtor_id, source)
		VALUES ('Buyer', 'buyer@example.com', '08039876543', 'Interested in a viewing', $1, $2, 'referral_link')
		RETURNING id
	`, propertyID, realtorID).Scan(&leadID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO commissions (realtor_id, lead_id, amount, status, transaction_date)
		VALUES ($1, $2, $3, $4, NOW())
	`, realtorID, leadID, amount, status)
	require.NoError(t, err)
}

func newPayoutService(db *database.DB) payout.PayoutService {
	return NewPayoutService(db, postgresql.NewPayoutRepository(db), postgresql.NewRealtorRepository(db))
}

func TestPayoutService_Request_NoBalance(t *testing.T) {
	ctx := context.Background()
	db := payoutTestDB(t)
	truncatePayoutTables(t, ctx, db)
	svc := newPayoutService(db)

	realtorID := createPayoutTestRealtor(t, ctx, db)

	_, err := svc.Request(ctx, realtorID)
	assert.ErrorIs(t, err, payout.ErrNoEligibleBalance)
}

func TestPayoutService_Request_OnlyPendingCounts(t *testing.T) {
	ctx := context.Background()
	db := payoutTestDB(t)
	truncatePayoutTables(t, ctx, db)
	svc := newPayoutService(db)

	realtorID := createPayoutTestRealtor(t, ctx, db)
	createPayoutTestCommission(t, ctx, db, realtorID, "150000.00", "pending")
	createPayoutTestCommission(t, ctx, db, realtorID, "25000.50", "pending")
	createPayoutTestCommission(t, ctx, db, realtorID, "999999.00", "paid")
	createPayoutTestCommission(t, ctx, db, realtorID, "888888.00", "rejected")

	request, err := svc.Request(ctx, realtorID)
	require.NoError(t, err)
	assert.Equal(t, payout.StatusOpen, request.Status)
	assert.True(t, request.Amount.Equal(decimal.RequireFromString("175000.50")),
		"got %s", request.Amount)
}

func TestPayoutService_Request_OneOpenAtATime(t *testing.T) {
	ctx := context.Background()
	db := payoutTestDB(t)
	truncatePayoutTables(t, ctx, db)
	svc := newPayoutService(db)

	realtorID := createPayoutTestRealtor(t, ctx, db)
	createPayoutTestCommission(t, ctx, db, realtorID, "150000.00", "pending")

	_, err := svc.Request(ctx, realtorID)
	require.NoError(t, err)

	_, err = svc.Request(ctx, realtorID)
	assert.ErrorIs(t, err, payout.ErrPayoutAlreadyRequested)
}

func TestPayoutService_Request_Concurrent(t *testing.T) {
	ctx := context.Background()
	db := payoutTestDB(t)
	truncatePayoutTables(t, ctx, db)
	svc := newPayoutService(db)

	realtorID := createPayoutTestRealtor(t, ctx, db)
	createPayoutTestCommission(t, ctx, db, realtorID, "150000.00", "pending")

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Request(ctx, realtorID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, payout.ErrPayoutAlreadyRequested)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestPayoutService_SettleAndCancel(t *testing.T) {
	ctx := context.Background()
	db := payoutTestDB(t)
	truncatePayoutTables(t, ctx, db)
	svc := newPayoutService(db)

	realtorID := createPayoutTestRealtor(t, ctx, db)
	createPayoutTestCommission(t, ctx, db, realtorID, "150000.00", "pending")

	request, err := svc.Request(ctx, realtorID)
	require.NoError(t, err)

	settled, err := svc.Settle(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, payout.StatusSettled, settled.Status)
	require.NotNil(t, settled.ClosedAt)

	// Closing twice is rejected either way
	_, err = svc.Settle(ctx, request.ID)
	assert.ErrorIs(t, err, payout.ErrPayoutAlreadyClosed)
	_, err = svc.Cancel(ctx, request.ID)
	assert.ErrorIs(t, err, payout.ErrPayoutAlreadyClosed)

	// A settled request no longer blocks a new one
	_, err = svc.Request(ctx, realtorID)
	require.NoError(t, err)
}
