package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/payout"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const payoutColumns = `id, realtor_id, amount, status, requested_at, closed_at`

type payoutRepositoryImpl struct {
	db *database.DB
}

// NewPayoutRepository creates a new payout repository instance
func NewPayoutRepository(db *database.DB) payout.PayoutRepository {
	return &payoutRepositoryImpl{db: db}
}

func scanPayout(row pgx.Row) (payout.Request, error) {
	var req payout.Request
	err := row.Scan(&req.ID, &req.RealtorID, &req.Amount, &req.Status, &req.RequestedAt, &req.ClosedAt)
	return req, err
}

// Create implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) Create(ctx context.Context, req payout.Request) (payout.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payout_requests (realtor_id, amount, status)
		VALUES ($1, $2, $3)
		RETURNING ` + payoutColumns

	created, err := scanPayout(q.QueryRow(ctx, query, req.RealtorID, req.Amount, req.Status))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payout.Request{}, payout.ErrPayoutAlreadyRequested
		}
		return payout.Request{}, fmt.Errorf("failed to create payout request: %w", err)
	}

	return created, nil
}

// GetByID implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) GetByID(ctx context.Context, id string) (payout.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + ` FROM payout_requests WHERE id = $1`

	req, err := scanPayout(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payout.Request{}, payout.ErrPayoutNotFound
		}
		return payout.Request{}, fmt.Errorf("failed to get payout request by id: %w", err)
	}

	return req, nil
}

// ListByRealtorID implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) ListByRealtorID(ctx context.Context, realtorID string) ([]payout.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + ` FROM payout_requests WHERE realtor_id = $1 ORDER BY requested_at DESC`

	rows, err := q.Query(ctx, query, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout requests: %w", err)
	}
	defer rows.Close()

	var requests []payout.Request
	for rows.Next() {
		req, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payout request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// Close implements payout.PayoutRepository.
func (r *payoutRepositoryImpl) Close(ctx context.Context, id string, to payout.Status) (payout.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payout_requests
		SET status = $2, closed_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING ` + payoutColumns

	req, err := scanPayout(q.QueryRow(ctx, query, id, to))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, lookupErr := r.GetByID(ctx, id); lookupErr != nil {
				return payout.Request{}, lookupErr
			}
			return payout.Request{}, payout.ErrPayoutAlreadyClosed
		}
		return payout.Request{}, fmt.Errorf("failed to close payout request: %w", err)
	}

	return req, nil
}

// LockPendingBalance implements payout.PayoutRepository. Row locks on the
// pending commissions hold concurrent payout requests for the same realtor
// until this transaction commits.
func (r *payoutRepositoryImpl) LockPendingBalance(ctx context.Context, realtorID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT amount
		FROM commissions
		WHERE realtor_id = $1 AND status = 'pending'
		FOR UPDATE
	`

	rows, err := q.Query(ctx, query, realtorID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock pending commissions: %w", err)
	}
	defer rows.Close()

	balance := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan commission amount: %w", err)
		}
		balance = balance.Add(amount)
	}

	if err = rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("rows iteration error: %w", err)
	}

	return balance, nil
}
