package service

import (
	"context"
	"strings"
	"time"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/metrics"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/repository"
	"github.com/a2sh3r/bono/internal/wallet"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, w models.NewWithdrawal) (*models.WithdrawalReceipt, error)
	ListWithdrawals(ctx context.Context, creatorID int64) ([]models.WithdrawalRequest, error)
	ListPending(ctx context.Context) ([]models.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID int64, operatorID string) (*models.WithdrawalRequest, error)
	RejectWithdrawal(ctx context.Context, withdrawalID int64, operatorID, reason string) (*models.WithdrawalRequest, error)
}

type withdrawalService struct {
	withdrawals repository.WithdrawalRepository
	balances    repository.BalanceRepository
	feeRate     decimal.Decimal
	now         func() time.Time
}

func NewWithdrawalService(withdrawals repository.WithdrawalRepository, balances repository.BalanceRepository, feeRate decimal.Decimal) WithdrawalService {
	return &withdrawalService{
		withdrawals: withdrawals,
		balances:    balances,
		feeRate:     feeRate,
		now:         time.Now,
	}
}

// RequestWithdrawal files a pending payout. The balance is not checked or
// held here; approval debits it.
func (s *withdrawalService) RequestWithdrawal(ctx context.Context, nw models.NewWithdrawal) (*models.WithdrawalReceipt, error) {
	if nw.CreatorID <= 0 {
		return nil, apperrors.ErrInvalidRequest
	}
	if err := wallet.ValidateAmount(nw.Amount); err != nil {
		return nil, err
	}
	nw.BankAccount.Details = strings.TrimSpace(nw.BankAccount.Details)
	if nw.BankAccount.Details == "" {
		return nil, apperrors.ErrMissingBankAccount
	}
	if nw.BankAccount.AccountHolder != nil {
		holder := strings.TrimSpace(*nw.BankAccount.AccountHolder)
		nw.BankAccount.AccountHolder = &holder
		if holder == "" {
			nw.BankAccount.AccountHolder = nil
		}
	}

	balance, err := s.balances.GetCreatorBalance(ctx, nw.CreatorID)
	if err != nil {
		return nil, err
	}

	w, err := s.withdrawals.CreateWithdrawal(ctx, nw)
	if err != nil {
		return nil, err
	}
	metrics.WithdrawalsTotal.WithLabelValues(string(models.WithdrawalPending)).Inc()
	logger.Log.Info("withdrawal requested",
		zap.Int64("withdrawal_id", w.ID),
		zap.Int64("creator_id", w.CreatorID),
		zap.Stringer("amount", w.Amount))

	return &models.WithdrawalReceipt{
		WithdrawalRequest: *w,
		AvailableEstimate: wallet.PayoutEstimate(balance, s.feeRate),
	}, nil
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, creatorID int64) ([]models.WithdrawalRequest, error) {
	if _, err := s.balances.GetCreatorBalance(ctx, creatorID); err != nil {
		return nil, err
	}
	return s.withdrawals.GetWithdrawals(ctx, creatorID)
}

func (s *withdrawalService) ListPending(ctx context.Context) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.GetPendingWithdrawals(ctx)
}

func (s *withdrawalService) ApproveWithdrawal(ctx context.Context, withdrawalID int64, operatorID string) (*models.WithdrawalRequest, error) {
	operatorID = strings.TrimSpace(operatorID)
	if withdrawalID <= 0 || operatorID == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	w, err := s.withdrawals.ApproveWithdrawal(ctx, withdrawalID, operatorID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	metrics.WithdrawalsTotal.WithLabelValues(string(models.WithdrawalApproved)).Inc()
	logger.Log.Info("withdrawal approved",
		zap.Int64("withdrawal_id", w.ID),
		zap.Int64("creator_id", w.CreatorID),
		zap.Stringer("amount", w.Amount),
		zap.String("operator", operatorID))
	return w, nil
}

func (s *withdrawalService) RejectWithdrawal(ctx context.Context, withdrawalID int64, operatorID, reason string) (*models.WithdrawalRequest, error) {
	operatorID = strings.TrimSpace(operatorID)
	if withdrawalID <= 0 || operatorID == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	w, err := s.withdrawals.RejectWithdrawal(ctx, withdrawalID, operatorID, strings.TrimSpace(reason), s.now().UTC())
	if err != nil {
		return nil, err
	}
	metrics.WithdrawalsTotal.WithLabelValues(string(models.WithdrawalRejected)).Inc()
	logger.Log.Info("withdrawal rejected",
		zap.Int64("withdrawal_id", w.ID),
		zap.String("operator", operatorID))
	return w, nil
}
