package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const AnonymousSupporter = "Anonymous"

type SupporterRepository interface {
	RecordSupport(ctx context.Context, userID, creatorID int64, supporterName string, amount decimal.Decimal) error
	GetSupporters(ctx context.Context, creatorID int64) ([]models.Supporter, error)
}

type supporterRepo struct {
	db *sql.DB
}

func NewSupporterRepository(db *sql.DB) SupporterRepository {
	return &supporterRepo{db: db}
}

// RecordSupport adds amount to the running total for the pair. A non-empty
// name replaces the stored one.
func (r *supporterRepo) RecordSupport(ctx context.Context, userID, creatorID int64, supporterName string, amount decimal.Decimal) error {
	query := `
		INSERT INTO supporters (user_id, creator_id, supporter_name, total_sent)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		ON CONFLICT (user_id, creator_id) DO UPDATE
		SET total_sent     = supporters.total_sent + EXCLUDED.total_sent,
		    supporter_name = COALESCE(EXCLUDED.supporter_name, supporters.supporter_name)
	`
	_, err := r.db.ExecContext(ctx, query, userID, creatorID, supporterName, amount)
	return err
}

func (r *supporterRepo) GetSupporters(ctx context.Context, creatorID int64) ([]models.Supporter, error) {
	query := `
		SELECT s.user_id, s.creator_id,
		       COALESCE(NULLIF(s.supporter_name, ''), NULLIF(u.first_name, ''), NULLIF(u.username, ''), $2),
		       s.total_sent, s.first_supported_at
		FROM supporters s
		JOIN users u ON u.id = s.user_id
		WHERE s.creator_id = $1
		ORDER BY s.total_sent DESC, s.first_supported_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, creatorID, AnonymousSupporter)
	if err != nil {
		logger.Log.Error("failed to query supporters", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	supporters := make([]models.Supporter, 0)
	for rows.Next() {
		var s models.Supporter
		if err := rows.Scan(&s.UserID, &s.CreatorID, &s.SupporterName, &s.TotalSent, &s.FirstSupportedAt); err != nil {
			logger.Log.Error("failed to scan supporter", zap.Error(err))
			return nil, err
		}
		supporters = append(supporters, s)
	}
	return supporters, rows.Err()
}
