package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/models"
)

type UserRepository interface {
	UpsertUser(ctx context.Context, externalID string, profile models.Profile) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, external_id, username, first_name, last_name, balance, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.ExternalID, &u.Username, &u.FirstName, &u.LastName, &u.Balance, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertUser creates the user on first sight of externalID. For a known user
// only the non-empty profile fields are refreshed; the balance is never touched.
func (r *userRepo) UpsertUser(ctx context.Context, externalID string, profile models.Profile) (*models.User, error) {
	query := `
		INSERT INTO users (external_id, username, first_name, last_name)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (external_id) DO UPDATE
		SET username   = COALESCE(EXCLUDED.username, users.username),
		    first_name = COALESCE(EXCLUDED.first_name, users.first_name),
		    last_name  = COALESCE(EXCLUDED.last_name, users.last_name),
		    updated_at = now()
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, query, externalID, profile.Username, profile.FirstName, profile.LastName)
	return scanUser(row)
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepo) GetUserByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, externalID))
}
