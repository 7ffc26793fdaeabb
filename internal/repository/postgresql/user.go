package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/havenbrook/realty-backend-go/internal/domain/user"
	"github.com/havenbrook/realty-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, first_name, last_name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, first_name, last_name, password_hash, role, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.Email, newUser.FirstName, newUser.LastName, newUser.PasswordHash, newUser.Role,
	).Scan(
		&created.ID, &created.Email, &created.FirstName, &created.LastName,
		&created.PasswordHash, &created.Role, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailAlreadyExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, first_name, last_name, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Email, &found.FirstName, &found.LastName,
		&found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, first_name, last_name, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID, &found.Email, &found.FirstName, &found.LastName,
		&found.PasswordHash, &found.Role, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user email: %w", err)
	}

	return exists, nil
}
