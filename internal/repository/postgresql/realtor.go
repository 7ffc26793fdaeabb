package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/realtor"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const realtorColumns = `r.id, r.user_id, r.invitation_id, r.slug, r.phone_number,
		r.street, r.lga, r.city, r.state, r.postal_code, r.country, r.full_address,
		r.bank_name, r.account_number, r.account_name, r.profile_image_url,
		r.created_at, r.updated_at,
		u.email, u.first_name, u.last_name`

type realtorRepositoryImpl struct {
	db *database.DB
}

// NewRealtorRepository creates a new realtor repository instance
func NewRealtorRepository(db *database.DB) realtor.RealtorRepository {
	return &realtorRepositoryImpl{db: db}
}

func scanRealtor(row pgx.Row) (realtor.Realtor, error) {
	var rl realtor.Realtor
	err := row.Scan(
		&rl.ID, &rl.UserID, &rl.InvitationID, &rl.Slug, &rl.PhoneNumber,
		&rl.Address.Street, &rl.Address.LGA, &rl.Address.City, &rl.Address.State,
		&rl.Address.PostalCode, &rl.Address.Country, &rl.FullAddress,
		&rl.BankName, &rl.AccountNumber, &rl.AccountName, &rl.ProfileImageURL,
		&rl.CreatedAt, &rl.UpdatedAt,
		&rl.Email, &rl.FirstName, &rl.LastName,
	)
	return rl, err
}

// Create implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) Create(ctx context.Context, rl realtor.Realtor) (realtor.Realtor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO realtors (
				user_id, invitation_id, slug, phone_number,
				street, lga, city, state, postal_code, country, full_address,
				bank_name, account_number, account_name, profile_image_url
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING *
		)
		SELECT ` + realtorColumns + `
		FROM inserted r
		JOIN users u ON u.id = r.user_id
	`

	created, err := scanRealtor(q.QueryRow(ctx, query,
		rl.UserID, rl.InvitationID, rl.Slug, rl.PhoneNumber,
		rl.Address.Street, rl.Address.LGA, rl.Address.City, rl.Address.State,
		rl.Address.PostalCode, rl.Address.Country, rl.FullAddress,
		rl.BankName, rl.AccountNumber, rl.AccountName, rl.ProfileImageURL,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "realtors_slug_key" {
			return realtor.Realtor{}, realtor.ErrSlugTaken
		}
		return realtor.Realtor{}, fmt.Errorf("failed to create realtor: %w", err)
	}

	return created, nil
}

// GetByID implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) GetByID(ctx context.Context, id string) (realtor.Realtor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + realtorColumns + ` FROM realtors r JOIN users u ON u.id = r.user_id WHERE r.id = $1`

	rl, err := scanRealtor(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return realtor.Realtor{}, realtor.ErrRealtorNotFound
		}
		return realtor.Realtor{}, fmt.Errorf("failed to get realtor by id: %w", err)
	}

	return rl, nil
}

// GetBySlug implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) GetBySlug(ctx context.Context, slug string) (realtor.Realtor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + realtorColumns + ` FROM realtors r JOIN users u ON u.id = r.user_id WHERE r.slug = $1`

	rl, err := scanRealtor(q.QueryRow(ctx, query, slug))
	if err != nil {
		if err == pgx.ErrNoRows {
			return realtor.Realtor{}, realtor.ErrRealtorNotFound
		}
		return realtor.Realtor{}, fmt.Errorf("failed to get realtor by slug: %w", err)
	}

	return rl, nil
}

// GetByUserID implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) GetByUserID(ctx context.Context, userID string) (realtor.Realtor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + realtorColumns + ` FROM realtors r JOIN users u ON u.id = r.user_id WHERE r.user_id = $1`

	rl, err := scanRealtor(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return realtor.Realtor{}, realtor.ErrRealtorNotFound
		}
		return realtor.Realtor{}, fmt.Errorf("failed to get realtor by user id: %w", err)
	}

	return rl, nil
}

// ExistsBySlug implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM realtors WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return exists, nil
}

// UpdateProfile implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) UpdateProfile(ctx context.Context, rl realtor.Realtor) (realtor.Realtor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE realtors SET
				phone_number = $2,
				street = $3, lga = $4, city = $5, state = $6,
				postal_code = $7, country = $8, full_address = $9,
				bank_name = $10, account_number = $11, account_name = $12,
				profile_image_url = $13,
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + realtorColumns + `
		FROM updated r
		JOIN users u ON u.id = r.user_id
	`

	updated, err := scanRealtor(q.QueryRow(ctx, query,
		rl.ID, rl.PhoneNumber,
		rl.Address.Street, rl.Address.LGA, rl.Address.City, rl.Address.State,
		rl.Address.PostalCode, rl.Address.Country, rl.FullAddress,
		rl.BankName, rl.AccountNumber, rl.AccountName, rl.ProfileImageURL,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return realtor.Realtor{}, realtor.ErrRealtorNotFound
		}
		return realtor.Realtor{}, fmt.Errorf("failed to update realtor profile: %w", err)
	}

	return updated, nil
}

// Delete implements realtor.RealtorRepository. Deletes the linked user row
// too; the invitation stays behind for audit.
func (r *realtorRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var userID string
	err := q.QueryRow(ctx, `DELETE FROM realtors WHERE id = $1 RETURNING user_id`, id).Scan(&userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return realtor.ErrRealtorNotFound
		}
		return fmt.Errorf("failed to delete realtor: %w", err)
	}

	if _, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete realtor user: %w", err)
	}

	return nil
}

// List implements realtor.RealtorRepository.
func (r *realtorRepositoryImpl) List(ctx context.Context) ([]realtor.Realtor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + realtorColumns + ` FROM realtors r JOIN users u ON u.id = r.user_id ORDER BY r.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list realtors: %w", err)
	}
	defer rows.Close()

	var realtors []realtor.Realtor
	for rows.Next() {
		rl, err := scanRealtor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan realtor: %w", err)
		}
		realtors = append(realtors, rl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return realtors, nil
}
