package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/models"
)

// ErrSupportLinkTaken signals a support link id collision; callers regenerate and retry.
var ErrSupportLinkTaken = errors.New("support link id already in use")

type CreatorRepository interface {
	CreateCreator(ctx context.Context, creator models.NewCreator, supportLinkID string) (*models.Creator, error)
	GetCreatorByID(ctx context.Context, id int64) (*models.Creator, error)
	GetCreatorByUserID(ctx context.Context, userID int64) (*models.Creator, error)
	GetCreatorBySupportLink(ctx context.Context, linkID string) (*models.Creator, error)
	GetCreatorByHandle(ctx context.Context, handle string) (*models.Creator, error)
	UpdateCreatorProfile(ctx context.Context, id int64, update models.CreatorUpdate) (*models.Creator, error)
}

type creatorRepo struct {
	db *sql.DB
}

func NewCreatorRepository(db *sql.DB) CreatorRepository {
	return &creatorRepo{db: db}
}

const creatorColumns = `id, user_id, handle, display_name, bio, support_link_id, is_active, balance, created_at, updated_at`

func scanCreator(row interface{ Scan(...any) error }) (*models.Creator, error) {
	var c models.Creator
	err := row.Scan(&c.ID, &c.UserID, &c.Handle, &c.DisplayName, &c.Bio, &c.SupportLinkID, &c.IsActive, &c.Balance, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrCreatorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *creatorRepo) CreateCreator(ctx context.Context, creator models.NewCreator, supportLinkID string) (*models.Creator, error) {
	query := `
		INSERT INTO creators (user_id, handle, display_name, bio, support_link_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING ` + creatorColumns
	row := r.db.QueryRowContext(ctx, query, creator.UserID, creator.Handle, creator.DisplayName, creator.Bio, supportLinkID)

	c, err := scanCreator(row)
	if err == nil {
		return c, nil
	}
	if constraint, ok := isUniqueViolation(err); ok {
		switch constraint {
		case "creators_user_id_key":
			return nil, apperrors.ErrCreatorExists
		case "creators_handle_key":
			return nil, apperrors.ErrHandleTaken
		case "creators_support_link_id_key":
			return nil, ErrSupportLinkTaken
		}
	}
	if isForeignKeyViolation(err) {
		return nil, apperrors.ErrUserNotFound
	}
	return nil, err
}

func (r *creatorRepo) GetCreatorByID(ctx context.Context, id int64) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE id = $1`
	return scanCreator(r.db.QueryRowContext(ctx, query, id))
}

func (r *creatorRepo) GetCreatorByUserID(ctx context.Context, userID int64) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE user_id = $1`
	return scanCreator(r.db.QueryRowContext(ctx, query, userID))
}

func (r *creatorRepo) GetCreatorBySupportLink(ctx context.Context, linkID string) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE support_link_id = $1 AND is_active`
	return scanCreator(r.db.QueryRowContext(ctx, query, linkID))
}

func (r *creatorRepo) GetCreatorByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE handle = $1`
	return scanCreator(r.db.QueryRowContext(ctx, query, handle))
}

// UpdateCreatorProfile changes only the fields set in update. An empty bio clears it.
func (r *creatorRepo) UpdateCreatorProfile(ctx context.Context, id int64, update models.CreatorUpdate) (*models.Creator, error) {
	query := `
		UPDATE creators
		SET display_name = COALESCE($2, display_name),
		    bio          = CASE WHEN $3::text IS NULL THEN bio ELSE NULLIF($3::text, '') END,
		    updated_at   = now()
		WHERE id = $1
		RETURNING ` + creatorColumns
	return scanCreator(r.db.QueryRowContext(ctx, query, id, update.DisplayName, update.Bio))
}
