package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/wallet"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BalanceRepository interface {
	GetUserBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	GetCreatorBalance(ctx context.Context, creatorID int64) (decimal.Decimal, error)
	Transfer(ctx context.Context, posting models.TransferPosting) (models.TransferResult, error)
	Purchase(ctx context.Context, req models.PurchaseRequest) (models.PurchaseResult, error)
}

type balanceRepo struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) BalanceRepository {
	return &balanceRepo{db: db}
}

func (r *balanceRepo) GetUserBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, apperrors.ErrUserNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get user balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *balanceRepo) GetCreatorBalance(ctx context.Context, creatorID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM creators WHERE id = $1`, creatorID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, apperrors.ErrCreatorNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get creator balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

type lockedCreator struct {
	id       int64
	userID   int64
	balance  decimal.Decimal
	isActive bool
}

// Transfer debits the sender (user balance first, then the sender's own
// creator balance), credits the recipient with the net amount and appends the
// ledger row, all in one database transaction. The sender's user row is locked
// first, then the creator rows in ascending id order.
func (r *balanceRepo) Transfer(ctx context.Context, p models.TransferPosting) (models.TransferResult, error) {
	var result models.TransferResult

	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		var userBalance decimal.Decimal
		err := tx.QueryRowContext(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, p.FromUserID).Scan(&userBalance)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("lock sender: %w", err)
		}

		creators, err := lockCreators(ctx, tx, p.ToCreatorID, p.FromUserID)
		if err != nil {
			return err
		}

		var recipient, own *lockedCreator
		for i := range creators {
			c := &creators[i]
			if c.id == p.ToCreatorID {
				recipient = c
			}
			if c.userID == p.FromUserID {
				own = c
			}
		}
		if recipient == nil || !recipient.isActive {
			return apperrors.ErrCreatorNotFound
		}
		if own != nil && own.id == recipient.id {
			return apperrors.ErrSelfTransfer
		}

		var ownBalance *decimal.Decimal
		if own != nil {
			ownBalance = &own.balance
		}
		plan, err := wallet.PlanDebit(userBalance, ownBalance, p.Amount)
		if err != nil {
			return err
		}

		result.FromUserBalance = userBalance
		if plan.FromUser.IsPositive() {
			if result.FromUserBalance, err = debitUser(ctx, tx, p.FromUserID, plan.FromUser); err != nil {
				return err
			}
		}
		if own != nil {
			balance := own.balance
			if plan.UsesCreatorBalance() {
				if balance, err = debitCreator(ctx, tx, own.id, plan.FromCreator); err != nil {
					return err
				}
			}
			result.FromCreatorBalance = &balance
		}

		if err := creditCreator(ctx, tx, p.ToCreatorID, p.NetAmount); err != nil {
			return err
		}

		from, to := p.FromUserID, p.ToCreatorID
		entry := &models.Transaction{
			FromUserID:  &from,
			ToCreatorID: &to,
			Amount:      p.Amount,
			AdminFee:    p.AdminFee,
			Type:        models.TransactionTransfer,
			Status:      models.TransactionCompleted,
		}
		if p.Description != "" {
			entry.Description = &p.Description
		}
		if err := appendTransaction(ctx, tx, entry); err != nil {
			logger.Log.Error("ledger append failed, transfer rolled back",
				zap.Int64("from_user_id", p.FromUserID),
				zap.Int64("to_creator_id", p.ToCreatorID),
				zap.Stringer("amount", p.Amount),
				zap.Error(err))
			return fmt.Errorf("append ledger row: %w", err)
		}

		result.TransactionID = entry.ID
		result.Amount = p.Amount
		result.AdminFee = p.AdminFee
		result.NetAmount = p.NetAmount
		return nil
	})
	if err != nil {
		return models.TransferResult{}, apperrors.Persistence("transfer", err)
	}
	return result, nil
}

func lockCreators(ctx context.Context, tx *sql.Tx, recipientID, senderUserID int64) ([]lockedCreator, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, user_id, balance, is_active FROM creators
		WHERE id = $1 OR user_id = $2
		ORDER BY id
		FOR UPDATE
	`, recipientID, senderUserID)
	if err != nil {
		return nil, fmt.Errorf("lock creators: %w", err)
	}
	defer closeRows(rows)

	var creators []lockedCreator
	for rows.Next() {
		var c lockedCreator
		if err := rows.Scan(&c.id, &c.userID, &c.balance, &c.isActive); err != nil {
			return nil, fmt.Errorf("scan creator: %w", err)
		}
		creators = append(creators, c)
	}
	return creators, rows.Err()
}

// debitUser is a guarded decrement: it never lets the balance go below zero.
func debitUser(ctx context.Context, q queryer, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := q.QueryRowContext(ctx, `
		UPDATE users
		SET balance = balance - $1, updated_at = now()
		WHERE id = $2 AND balance >= $1
		RETURNING balance
	`, amount, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, apperrors.ErrInsufficientBalance
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("debit user: %w", err)
	}
	return balance, nil
}

func debitCreator(ctx context.Context, q queryer, creatorID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := q.QueryRowContext(ctx, `
		UPDATE creators
		SET balance = balance - $1, updated_at = now()
		WHERE id = $2 AND balance >= $1
		RETURNING balance
	`, amount, creatorID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, apperrors.ErrInsufficientBalance
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("debit creator: %w", err)
	}
	return balance, nil
}

func creditCreator(ctx context.Context, q queryer, creatorID int64, amount decimal.Decimal) error {
	res, err := q.ExecContext(ctx, `
		UPDATE creators
		SET balance = balance + $1, updated_at = now()
		WHERE id = $2
	`, amount, creatorID)
	if err != nil {
		return fmt.Errorf("credit creator: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrCreatorNotFound
	}
	return nil
}

// Purchase credits the user once per reference. A replayed reference leaves
// the balance untouched and is reported through PurchaseResult.Duplicate.
func (r *balanceRepo) Purchase(ctx context.Context, req models.PurchaseRequest) (models.PurchaseResult, error) {
	result := models.PurchaseResult{Reference: req.Reference}

	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		var balance decimal.Decimal
		err := tx.QueryRowContext(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, req.UserID).Scan(&balance)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		userID := req.UserID
		description := "Purchase via " + req.Reference
		entry := &models.Transaction{
			FromUserID:  &userID,
			Amount:      req.Amount,
			Type:        models.TransactionPurchase,
			Description: &description,
			Reference:   &req.Reference,
			Status:      models.TransactionCompleted,
		}
		inserted, err := appendPurchase(ctx, tx, entry)
		if err != nil {
			return fmt.Errorf("append ledger row: %w", err)
		}
		if !inserted {
			result.Duplicate = true
			result.Balance = balance
			return nil
		}

		err = tx.QueryRowContext(ctx, `
			UPDATE users
			SET balance = balance + $1, updated_at = now()
			WHERE id = $2
			RETURNING balance
		`, req.Amount, req.UserID).Scan(&result.Balance)
		if err != nil {
			return fmt.Errorf("credit user: %w", err)
		}
		result.TransactionID = entry.ID
		return nil
	})
	if err != nil {
		return models.PurchaseResult{}, apperrors.Persistence("purchase", err)
	}
	return result, nil
}
