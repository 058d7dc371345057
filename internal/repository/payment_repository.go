package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/models"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	CreateIntent(ctx context.Context, intent *models.PaymentIntent) error
	GetIntent(ctx context.Context, reference string) (*models.PaymentIntent, error)
	GetPendingIntents(ctx context.Context, olderThan time.Time, limit int) ([]models.PaymentIntent, error)
	UpdateIntentStatus(ctx context.Context, reference string, status models.PaymentStatus) error
}

type paymentRepo struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepo{db: db}
}

const intentColumns = `reference, user_id, coins, status, checkout_url, created_at, updated_at`

func scanIntent(row interface{ Scan(...any) error }) (*models.PaymentIntent, error) {
	var (
		p      models.PaymentIntent
		status string
	)
	err := row.Scan(&p.Reference, &p.UserID, &p.Coins, &status, &p.CheckoutURL, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Status = models.PaymentStatus(status)
	return &p, nil
}

func (r *paymentRepo) CreateIntent(ctx context.Context, intent *models.PaymentIntent) error {
	query := `
		INSERT INTO payment_intents (reference, user_id, coins, checkout_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + intentColumns
	created, err := scanIntent(r.db.QueryRowContext(ctx, query, intent.Reference, intent.UserID, intent.Coins, intent.CheckoutURL))
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		logger.Log.Error("failed to create payment intent", zap.String("reference", intent.Reference), zap.Error(err))
		return err
	}
	*intent = *created
	return nil
}

func (r *paymentRepo) GetIntent(ctx context.Context, reference string) (*models.PaymentIntent, error) {
	query := `SELECT ` + intentColumns + ` FROM payment_intents WHERE reference = $1`
	return scanIntent(r.db.QueryRowContext(ctx, query, reference))
}

func (r *paymentRepo) GetPendingIntents(ctx context.Context, olderThan time.Time, limit int) ([]models.PaymentIntent, error) {
	query := `
		SELECT ` + intentColumns + ` FROM payment_intents
		WHERE status = 'pending' AND created_at <= $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, olderThan, limit)
	if err != nil {
		logger.Log.Error("failed to query pending payment intents", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	intents := make([]models.PaymentIntent, 0)
	for rows.Next() {
		p, err := scanIntent(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, *p)
	}
	return intents, rows.Err()
}

// UpdateIntentStatus moves a pending intent to a final status. Intents that
// are already final are left as they are.
func (r *paymentRepo) UpdateIntentStatus(ctx context.Context, reference string, status models.PaymentStatus) error {
	query := `
		UPDATE payment_intents
		SET status = $2, updated_at = now()
		WHERE reference = $1 AND status = 'pending'
	`
	_, err := r.db.ExecContext(ctx, query, reference, string(status))
	if err != nil {
		logger.Log.Error("failed to update payment intent", zap.String("reference", reference), zap.Error(err))
	}
	return err
}
