package service

import (
	"context"
	"errors"
	"strings"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/metrics"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/repository"
	"github.com/a2sh3r/bono/internal/wallet"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransferService interface {
	Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error)
}

type transferService struct {
	balances   repository.BalanceRepository
	supporters repository.SupporterRepository
	feeRate    decimal.Decimal
}

func NewTransferService(balances repository.BalanceRepository, supporters repository.SupporterRepository, feeRate decimal.Decimal) TransferService {
	return &transferService{
		balances:   balances,
		supporters: supporters,
		feeRate:    feeRate,
	}
}

// Transfer moves coins from a user's unified wallet to a creator. The debit,
// credit and ledger row commit together; the supporter aggregate is updated
// afterwards and its failure does not undo the transfer.
func (s *transferService) Transfer(ctx context.Context, req models.TransferRequest) (models.TransferResult, error) {
	if req.FromUserID <= 0 || req.ToCreatorID <= 0 {
		metrics.TransfersTotal.WithLabelValues("invalid").Inc()
		return models.TransferResult{}, apperrors.ErrInvalidRequest
	}
	if err := wallet.ValidateAmount(req.Amount); err != nil {
		metrics.TransfersTotal.WithLabelValues("invalid").Inc()
		return models.TransferResult{}, err
	}

	fee, net := wallet.SplitFee(req.Amount, s.feeRate)
	result, err := s.balances.Transfer(ctx, models.TransferPosting{
		FromUserID:  req.FromUserID,
		ToCreatorID: req.ToCreatorID,
		Amount:      req.Amount,
		AdminFee:    fee,
		NetAmount:   net,
		Description: strings.TrimSpace(req.Message),
	})
	if err != nil {
		metrics.TransfersTotal.WithLabelValues(transferFailureLabel(err)).Inc()
		if errors.Is(err, apperrors.ErrPersistence) {
			logger.Log.Error("transfer failed",
				zap.Int64("from_user_id", req.FromUserID),
				zap.Int64("to_creator_id", req.ToCreatorID),
				zap.Error(err))
		}
		return models.TransferResult{}, err
	}

	metrics.TransfersTotal.WithLabelValues("completed").Inc()
	metrics.TransferAmount.Observe(req.Amount.InexactFloat64())
	metrics.FeesCollected.Add(fee.InexactFloat64())

	if err := s.supporters.RecordSupport(ctx, req.FromUserID, req.ToCreatorID, strings.TrimSpace(req.SupporterName), req.Amount); err != nil {
		logger.Log.Warn("failed to update supporter aggregate",
			zap.Int64("from_user_id", req.FromUserID),
			zap.Int64("to_creator_id", req.ToCreatorID),
			zap.Error(err))
	}

	logger.Log.Info("transfer completed",
		zap.Int64("transaction_id", result.TransactionID),
		zap.Int64("from_user_id", req.FromUserID),
		zap.Int64("to_creator_id", req.ToCreatorID),
		zap.Stringer("amount", req.Amount),
		zap.Stringer("admin_fee", fee))

	return result, nil
}

func transferFailureLabel(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, apperrors.ErrSelfTransfer):
		return "self_transfer"
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrCreatorNotFound):
		return "not_found"
	default:
		return "error"
	}
}
