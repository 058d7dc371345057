package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithdrawal(ctx context.Context, w models.NewWithdrawal) (*models.WithdrawalRequest, error)
	GetWithdrawal(ctx context.Context, id int64) (*models.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, creatorID int64) ([]models.WithdrawalRequest, error)
	GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, id int64, operatorID string, at time.Time) (*models.WithdrawalRequest, error)
	RejectWithdrawal(ctx context.Context, id int64, operatorID, reason string, at time.Time) (*models.WithdrawalRequest, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, creator_id, amount, bank_account, status, requested_at, approved_at, approved_by, reviewed_at, reviewed_by, rejection_reason`

func scanWithdrawal(row interface{ Scan(...any) error }) (*models.WithdrawalRequest, error) {
	var (
		w      models.WithdrawalRequest
		status string
	)
	err := row.Scan(&w.ID, &w.CreatorID, &w.Amount, &w.BankAccount, &status, &w.RequestedAt,
		&w.ApprovedAt, &w.ApprovedBy, &w.ReviewedAt, &w.ReviewedBy, &w.RejectionReason)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	w.Status = models.WithdrawalStatus(status)
	return &w, nil
}

// CreateWithdrawal files a pending request. Nothing is reserved on the
// creator balance until an operator approves it.
func (r *withdrawalRepo) CreateWithdrawal(ctx context.Context, nw models.NewWithdrawal) (*models.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (creator_id, amount, bank_account)
		VALUES ($1, $2, $3)
		RETURNING ` + withdrawalColumns
	w, err := scanWithdrawal(r.db.QueryRowContext(ctx, query, nw.CreatorID, nw.Amount, nw.BankAccount))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrCreatorNotFound
		}
		logger.Log.Error("failed to create withdrawal request", zap.Int64("creator_id", nw.CreatorID), zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (r *withdrawalRepo) GetWithdrawal(ctx context.Context, id int64) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`
	return scanWithdrawal(r.db.QueryRowContext(ctx, query, id))
}

func (r *withdrawalRepo) GetWithdrawals(ctx context.Context, creatorID int64) ([]models.WithdrawalRequest, error) {
	query := `
		SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE creator_id = $1
		ORDER BY requested_at DESC, id DESC
	`
	return r.list(ctx, query, creatorID)
}

// GetPendingWithdrawals returns the review queue, oldest first.
func (r *withdrawalRepo) GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	query := `
		SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
		WHERE status = 'pending'
		ORDER BY requested_at ASC, id ASC
	`
	return r.list(ctx, query)
}

func (r *withdrawalRepo) list(ctx context.Context, query string, args ...any) ([]models.WithdrawalRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	withdrawals := make([]models.WithdrawalRequest, 0)
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal request", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, rows.Err()
}

// lockPending locks the request row and fails with ErrInvalidState unless it is pending.
func lockPending(ctx context.Context, tx *sql.Tx, id int64) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	w, err := scanWithdrawal(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if w.Status != models.WithdrawalPending {
		return nil, apperrors.ErrInvalidState
	}
	return w, nil
}

// ApproveWithdrawal debits the creator balance and marks the request approved
// in one transaction. If the balance no longer covers the amount the request
// stays pending and ErrInsufficientBalance is returned.
func (r *withdrawalRepo) ApproveWithdrawal(ctx context.Context, id int64, operatorID string, at time.Time) (*models.WithdrawalRequest, error) {
	var approved *models.WithdrawalRequest
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		w, err := lockPending(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := debitCreator(ctx, tx, w.CreatorID, w.Amount); err != nil {
			return err
		}
		query := `
			UPDATE withdrawal_requests
			SET status = 'approved', approved_at = $2, approved_by = $3, reviewed_at = $2, reviewed_by = $3
			WHERE id = $1
			RETURNING ` + withdrawalColumns
		approved, err = scanWithdrawal(tx.QueryRowContext(ctx, query, id, at, operatorID))
		if err != nil {
			return fmt.Errorf("mark approved: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Persistence("approve withdrawal", err)
	}
	return approved, nil
}

func (r *withdrawalRepo) RejectWithdrawal(ctx context.Context, id int64, operatorID, reason string, at time.Time) (*models.WithdrawalRequest, error) {
	var rejected *models.WithdrawalRequest
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := lockPending(ctx, tx, id); err != nil {
			return err
		}
		query := `
			UPDATE withdrawal_requests
			SET status = 'rejected', reviewed_at = $2, reviewed_by = $3, rejection_reason = NULLIF($4, '')
			WHERE id = $1
			RETURNING ` + withdrawalColumns
		var err error
		rejected, err = scanWithdrawal(tx.QueryRowContext(ctx, query, id, at, operatorID, reason))
		if err != nil {
			return fmt.Errorf("mark rejected: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Persistence("reject withdrawal", err)
	}
	return rejected, nil
}
