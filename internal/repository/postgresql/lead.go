package postgresql

import (
	"context"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/lead"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leadRepositoryImpl struct {
	db *database.DB
}

// NewLeadRepository creates a new lead repository instance
func NewLeadRepository(db *database.DB) lead.LeadRepository {
	return &leadRepositoryImpl{db: db}
}

// Create implements lead.LeadRepository.
func (r *leadRepositoryImpl) Create(ctx context.Context, l lead.Lead) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leads (full_name, email, phone_number, message, property_id, realtor_id, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, full_name, email, phone_number, message, property_id, realtor_id, source, created_at
	`

	var created lead.Lead
	err := q.QueryRow(ctx, query,
		l.FullName, l.Email, l.PhoneNumber, l.Message, l.PropertyID, l.RealtorID, l.Source,
	).Scan(
		&created.ID, &created.FullName, &created.Email, &created.PhoneNumber,
		&created.Message, &created.PropertyID, &created.RealtorID, &created.Source, &created.CreatedAt,
	)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}

	return created, nil
}

// GetByID implements lead.LeadRepository.
func (r *leadRepositoryImpl) GetByID(ctx context.Context, id string) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, phone_number, message, property_id, realtor_id, source, created_at
		FROM leads
		WHERE id = $1
	`

	var found lead.Lead
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.FullName, &found.Email, &found.PhoneNumber,
		&found.Message, &found.PropertyID, &found.RealtorID, &found.Source, &found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return lead.Lead{}, lead.ErrLeadNotFound
		}
		return lead.Lead{}, fmt.Errorf("failed to get lead by id: %w", err)
	}

	return found, nil
}

// List implements lead.LeadRepository.
func (r *leadRepositoryImpl) List(ctx context.Context) ([]lead.Lead, error) {
	return r.list(ctx, `
		SELECT id, full_name, email, phone_number, message, property_id, realtor_id, source, created_at
		FROM leads
		ORDER BY created_at DESC
	`)
}

// ListByRealtorID implements lead.LeadRepository.
func (r *leadRepositoryImpl) ListByRealtorID(ctx context.Context, realtorID string) ([]lead.Lead, error) {
	return r.list(ctx, `
		SELECT id, full_name, email, phone_number, message, property_id, realtor_id, source, created_at
		FROM leads
		WHERE realtor_id = $1
		ORDER BY created_at DESC
	`, realtorID)
}

func (r *leadRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []lead.Lead
	for rows.Next() {
		var l lead.Lead
		err := rows.Scan(
			&l.ID, &l.FullName, &l.Email, &l.PhoneNumber,
			&l.Message, &l.PropertyID, &l.RealtorID, &l.Source, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leads, nil
}
