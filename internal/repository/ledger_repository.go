package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/models"
	"go.uber.org/zap"
)

const (
	DefaultUserHistoryLimit    = 50
	DefaultCreatorHistoryLimit = 100
)

// LedgerRepository reads the append-only transactions table. Rows are only
// ever written inside the balance transactions of BalanceRepository.
type LedgerRepository interface {
	GetUserTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
	GetCreatorTransactions(ctx context.Context, creatorID int64, limit int) ([]models.Transaction, error)
}

type ledgerRepo struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) LedgerRepository {
	return &ledgerRepo{db: db}
}

const transactionColumns = `id, from_user_id, to_creator_id, amount, admin_fee, type, description, reference, status, created_at`

// appendTransaction writes t and fills in its id and created_at.
func appendTransaction(ctx context.Context, q queryer, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (from_user_id, to_creator_id, amount, admin_fee, type, description, reference, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return q.QueryRowContext(ctx, query,
		t.FromUserID, t.ToCreatorID, t.Amount, t.AdminFee, string(t.Type), t.Description, t.Reference, t.Status,
	).Scan(&t.ID, &t.CreatedAt)
}

// appendPurchase is appendTransaction keyed by the purchase reference.
// It reports false, without writing, when the reference was already recorded.
func appendPurchase(ctx context.Context, q queryer, t *models.Transaction) (bool, error) {
	query := `
		INSERT INTO transactions (from_user_id, to_creator_id, amount, admin_fee, type, description, reference, status)
		VALUES ($1, NULL, $2, 0, 'purchase', $3, $4, $5)
		ON CONFLICT (reference) WHERE type = 'purchase' DO NOTHING
		RETURNING id, created_at
	`
	err := q.QueryRowContext(ctx, query, t.FromUserID, t.Amount, t.Description, t.Reference, t.Status).Scan(&t.ID, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ledgerRepo) GetUserTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultUserHistoryLimit
	}
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE from_user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.query(ctx, query, userID, limit)
}

func (r *ledgerRepo) GetCreatorTransactions(ctx context.Context, creatorID int64, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultCreatorHistoryLimit
	}
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE to_creator_id = $1 AND type = 'transfer'
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.query(ctx, query, creatorID, limit)
}

func (r *ledgerRepo) query(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query transactions", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var (
			t   models.Transaction
			typ string
		)
		if err := rows.Scan(&t.ID, &t.FromUserID, &t.ToCreatorID, &t.Amount, &t.AdminFee, &typ, &t.Description, &t.Reference, &t.Status, &t.CreatedAt); err != nil {
			logger.Log.Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		t.Type = models.TransactionType(typ)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
