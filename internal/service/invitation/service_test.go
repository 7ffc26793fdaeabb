package invitation

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/havenbrook/realty-backend-go/internal/domain/invitation"
	"github.com/havenbrook/realty-backend-go/internal/domain/user"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/havenbrook/realty-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInvitationDB *database.DB

// noopEmailService keeps invitation tests off the network.
type noopEmailService struct{}

func (noopEmailService) SendInvitation(_, _, _, _ string) error { return nil }

func invitationTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testInvitationDB != nil {
		return testInvitationDB
	}

	var err error
	testInvitationDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(testInvitationDB))
	return testInvitationDB
}

func truncateInvitationTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	tables := []string{"payout_requests", "commissions", "leads", "properties", "refresh_tokens", "realtors", "realtor_invitations", "users"}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newInvitationService(db *database.DB) invitation.InvitationService {
	return NewInvitationService(
		db,
		postgresql.NewInvitationRepository(db),
		postgresql.NewUserRepository(db),
		postgresql.NewRealtorRepository(db),
		noopEmailService{},
		48*time.Hour,
		"http://localhost:3000",
	)
}

func acceptRequest(token string) invitation.AcceptRequest {
	return invitation.AcceptRequest{
		Token:           token,
		PhoneNumber:     "08031234567",
		Street:          "12 Marina Road",
		LGA:             "Eti-Osa",
		City:            "Lagos",
		State:           "Lagos",
		PostalCode:      "106104",
		Country:         "Nigeria",
		Password:        "password123",
		ConfirmPassword: "password123",
		BankName:        "First Bank",
		AccountNumber:   "0123456789",
		AccountName:     "Jane Smith",
		AgreedToTerms:   true,
	}
}

func TestInvitationService_CreateAndSend(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	created, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, invitation.StatusPending, created.Status)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), created.ExpiresAt, time.Minute)

	// A second invitation to the same email while one is pending
	_, err = svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	assert.ErrorIs(t, err, invitation.ErrEmailAlreadyInvited)
}

func TestInvitationService_Accept_ProvisionsRealtor(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	created, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, acceptRequest(created.Token))
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", accepted.Slug)
	assert.Equal(t, "jane@example.com", accepted.Email)
	assert.NotEmpty(t, accepted.RealtorID)

	// The provisioned user holds the realtor role
	userRepo := postgresql.NewUserRepository(db)
	provisioned, err := userRepo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleRealtor, provisioned.Role)
	require.NotNil(t, provisioned.PasswordHash)

	realtorRepo := postgresql.NewRealtorRepository(db)
	rl, err := realtorRepo.GetByID(ctx, accepted.RealtorID)
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", rl.Slug)
	assert.Equal(t, "12 Marina Road, Eti-Osa, Lagos, Lagos, 106104, Nigeria", rl.FullAddress)

	// A second accept of the same token is rejected
	_, err = svc.Accept(ctx, acceptRequest(created.Token))
	assert.ErrorIs(t, err, invitation.ErrInvitationInvalid)
}

func TestInvitationService_Accept_SlugCollision(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	first, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Smith",
	})
	require.NoError(t, err)
	accepted, err := svc.Accept(ctx, acceptRequest(first.Token))
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", accepted.Slug)

	second, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email: "jane2@example.com", FirstName: "Jane", LastName: "Smith",
	})
	require.NoError(t, err)
	accepted2, err := svc.Accept(ctx, acceptRequest(second.Token))
	require.NoError(t, err)
	assert.Equal(t, "jane-smith-2", accepted2.Slug)
}

func TestInvitationService_Accept_Expired(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	invitationRepo := postgresql.NewInvitationRepository(db)
	expired, err := invitationRepo.Create(ctx, invitation.Invitation{
		Email:     "late@example.com",
		FirstName: "Late",
		LastName:  "Riser",
		Token:     "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Status:    invitation.StatusPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Accept(ctx, acceptRequest(expired.Token))
	assert.ErrorIs(t, err, invitation.ErrInvitationInvalid)

	// No account was provisioned
	userRepo := postgresql.NewUserRepository(db)
	exists, err := userRepo.ExistsByEmail(ctx, "late@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInvitationService_Accept_Concurrent(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	created, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Smith",
	})
	require.NoError(t, err)

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Accept(ctx, acceptRequest(created.Token))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, invitation.ErrInvitationInvalid)
		}
	}
	assert.Equal(t, 1, succeeded)

	// Exactly one realtor exists
	var count int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM realtors").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestInvitationService_Revoke(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	created, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Smith",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, created.ID))

	// A revoked token cannot be accepted
	_, err = svc.Accept(ctx, acceptRequest(created.Token))
	assert.ErrorIs(t, err, invitation.ErrInvitationInvalid)
}

func TestInvitationService_Revoke_AfterAccept(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	created, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Smith",
	})
	require.NoError(t, err)

	_, err = svc.Accept(ctx, acceptRequest(created.Token))
	require.NoError(t, err)

	err = svc.Revoke(ctx, created.ID)
	assert.ErrorIs(t, err, invitation.ErrCannotRevokeAccepted)
}

func TestInvitationService_Resend_RotatesToken(t *testing.T) {
	ctx := context.Background()
	db := invitationTestDB(t)
	truncateInvitationTables(t, ctx, db)
	svc := newInvitationService(db)

	created, err := svc.CreateAndSend(ctx, invitation.CreateRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Smith",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Resend(ctx, created.ID))

	invitationRepo := postgresql.NewInvitationRepository(db)
	refreshed, err := invitationRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, created.Token, refreshed.Token)

	// The old link is dead, the new one accepts
	_, err = svc.Accept(ctx, acceptRequest(created.Token))
	assert.ErrorIs(t, err, invitation.ErrInvitationNotFound)

	_, err = svc.Accept(ctx, acceptRequest(refreshed.Token))
	assert.NoError(t, err)
}
