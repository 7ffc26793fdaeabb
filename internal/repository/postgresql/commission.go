package postgresql

import (
	"context"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/commission"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const commissionColumns = `id, realtor_id, lead_id, amount, status, notes,
		transaction_date, created_at, updated_at`

type commissionRepositoryImpl struct {
	db *database.DB
}

// NewCommissionRepository creates a new commission repository instance
func NewCommissionRepository(db *database.DB) commission.CommissionRepository {
	return &commissionRepositoryImpl{db: db}
}

func scanCommission(row pgx.Row) (commission.Commission, error) {
	var c commission.Commission
	err := row.Scan(
		&c.ID, &c.RealtorID, &c.LeadID, &c.Amount, &c.Status, &c.Notes,
		&c.TransactionDate, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// Create implements commission.CommissionRepository.
func (r *commissionRepositoryImpl) Create(ctx context.Context, c commission.Commission) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commissions (realtor_id, lead_id, amount, status, notes, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + commissionColumns

	created, err := scanCommission(q.QueryRow(ctx, query,
		c.RealtorID, c.LeadID, c.Amount, c.Status, c.Notes, c.TransactionDate,
	))
	if err != nil {
		return commission.Commission{}, fmt.Errorf("failed to create commission: %w", err)
	}

	return created, nil
}

// GetByID implements commission.CommissionRepository.
func (r *commissionRepositoryImpl) GetByID(ctx context.Context, id string) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`

	c, err := scanCommission(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return commission.Commission{}, commission.ErrCommissionNotFound
		}
		return commission.Commission{}, fmt.Errorf("failed to get commission by id: %w", err)
	}

	return c, nil
}

// ListByRealtorID implements commission.CommissionRepository.
func (r *commissionRepositoryImpl) ListByRealtorID(ctx context.Context, realtorID string) ([]commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE realtor_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	defer rows.Close()

	var commissions []commission.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		commissions = append(commissions, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return commissions, nil
}

// UpdateStatus implements commission.CommissionRepository. The status guard
// in the WHERE clause is the compare-and-set: a concurrent transition that
// already moved the row leaves nothing for this update to match.
func (r *commissionRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to commission.Status) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE commissions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + commissionColumns

	c, err := scanCommission(q.QueryRow(ctx, query, id, from, to))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, lookupErr := r.GetByID(ctx, id); lookupErr != nil {
				return commission.Commission{}, lookupErr
			}
			return commission.Commission{}, commission.ErrInvalidTransition
		}
		return commission.Commission{}, fmt.Errorf("failed to update commission status: %w", err)
	}

	return c, nil
}

// SummaryByRealtorID implements commission.CommissionRepository. Computed
// straight off the ledger rows so it cannot diverge from them.
func (r *commissionRepositoryImpl) SummaryByRealtorID(ctx context.Context, realtorID string) (commission.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COALESCE(SUM(amount), 0)
		FROM commissions
		WHERE realtor_id = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, realtorID)
	if err != nil {
		return commission.Summary{}, fmt.Errorf("failed to aggregate commissions: %w", err)
	}
	defer rows.Close()

	summary := commission.Summary{
		Total:    decimal.Zero,
		Pending:  decimal.Zero,
		Approved: decimal.Zero,
		Paid:     decimal.Zero,
		Rejected: decimal.Zero,
	}

	for rows.Next() {
		var status commission.Status
		var amount decimal.Decimal
		if err := rows.Scan(&status, &amount); err != nil {
			return commission.Summary{}, fmt.Errorf("failed to scan summary row: %w", err)
		}

		summary.Total = summary.Total.Add(amount)
		switch status {
		case commission.StatusPending:
			summary.Pending = amount
		case commission.StatusApproved:
			summary.Approved = amount
		case commission.StatusPaid:
			summary.Paid = amount
		case commission.StatusRejected:
			summary.Rejected = amount
		}
	}

	if err = rows.Err(); err != nil {
		return commission.Summary{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return summary, nil
}
