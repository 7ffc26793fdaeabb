package postgresql

import (
	"context"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/property"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type propertyRepositoryImpl struct {
	db *database.DB
}

// NewPropertyRepository creates a new property repository instance
func NewPropertyRepository(db *database.DB) property.PropertyRepository {
	return &propertyRepositoryImpl{db: db}
}

// Create implements property.PropertyRepository.
func (r *propertyRepositoryImpl) Create(ctx context.Context, p property.Property) (property.Property, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO properties (title, location, price, realtor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, location, price, realtor_id, created_at, updated_at
	`

	var created property.Property
	err := q.QueryRow(ctx, query, p.Title, p.Location, p.Price, p.RealtorID).Scan(
		&created.ID, &created.Title, &created.Location, &created.Price,
		&created.RealtorID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return property.Property{}, fmt.Errorf("failed to create property: %w", err)
	}

	return created, nil
}

// GetByID implements property.PropertyRepository.
func (r *propertyRepositoryImpl) GetByID(ctx context.Context, id string) (property.Property, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, location, price, realtor_id, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	var found property.Property
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Title, &found.Location, &found.Price,
		&found.RealtorID, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return property.Property{}, property.ErrPropertyNotFound
		}
		return property.Property{}, fmt.Errorf("failed to get property by id: %w", err)
	}

	return found, nil
}

// List implements property.PropertyRepository.
func (r *propertyRepositoryImpl) List(ctx context.Context) ([]property.Property, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, location, price, realtor_id, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []property.Property
	for rows.Next() {
		var p property.Property
		err := rows.Scan(
			&p.ID, &p.Title, &p.Location, &p.Price,
			&p.RealtorID, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return properties, nil
}
