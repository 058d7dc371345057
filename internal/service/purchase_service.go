package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/metrics"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/payment"
	"github.com/a2sh3r/bono/internal/repository"
	"github.com/a2sh3r/bono/internal/wallet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PurchaseService interface {
	Purchase(ctx context.Context, userID int64, amount decimal.Decimal, reference string) (models.PurchaseResult, error)
	InitiatePurchase(ctx context.Context, userID int64, coins decimal.Decimal) (*models.Checkout, error)
	HandleCallback(ctx context.Context, reference string) (models.PurchaseResult, error)
}

type PurchaseOptions struct {
	CoinPrice   decimal.Decimal
	CallbackURL string
}

type purchaseService struct {
	balances repository.BalanceRepository
	users    repository.UserRepository
	payments repository.PaymentRepository
	provider payment.Provider
	opts     PurchaseOptions
}

func NewPurchaseService(
	balances repository.BalanceRepository,
	users repository.UserRepository,
	payments repository.PaymentRepository,
	provider payment.Provider,
	opts PurchaseOptions,
) PurchaseService {
	return &purchaseService{
		balances: balances,
		users:    users,
		payments: payments,
		provider: provider,
		opts:     opts,
	}
}

// Purchase credits coins bought outside the ledger. A reference that was
// already credited is reported as a duplicate and credits nothing.
func (s *purchaseService) Purchase(ctx context.Context, userID int64, amount decimal.Decimal, reference string) (models.PurchaseResult, error) {
	if userID <= 0 {
		return models.PurchaseResult{}, apperrors.ErrInvalidRequest
	}
	if err := wallet.ValidateAmount(amount); err != nil {
		return models.PurchaseResult{}, err
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = "purchase_" + uuid.NewString()
	}

	result, err := s.balances.Purchase(ctx, models.PurchaseRequest{
		UserID:    userID,
		Amount:    amount,
		Reference: reference,
	})
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues("failed").Inc()
		return models.PurchaseResult{}, err
	}

	if result.Duplicate {
		metrics.PurchasesTotal.WithLabelValues("duplicate").Inc()
		logger.Log.Info("duplicate purchase reference ignored",
			zap.Int64("user_id", userID),
			zap.String("reference", reference))
		return result, nil
	}

	metrics.PurchasesTotal.WithLabelValues("credited").Inc()
	logger.Log.Info("purchase credited",
		zap.Int64("user_id", userID),
		zap.String("reference", reference),
		zap.Stringer("amount", amount))
	return result, nil
}

func (s *purchaseService) InitiatePurchase(ctx context.Context, userID int64, coins decimal.Decimal) (*models.Checkout, error) {
	if userID <= 0 {
		return nil, apperrors.ErrInvalidRequest
	}
	if err := wallet.ValidateAmount(coins); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	reference := fmt.Sprintf("bono_%d_%s", userID, uuid.NewString())
	checkout, err := s.provider.Initialize(ctx, payment.InitializeRequest{
		Reference:   reference,
		UserID:      userID,
		Coins:       coins,
		Amount:      coins.Mul(s.opts.CoinPrice).Round(2),
		CallbackURL: s.opts.CallbackURL,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrProviderNotConfigured) {
			logger.Log.Error("failed to initialize payment", zap.Int64("user_id", userID), zap.Error(err))
		}
		return nil, err
	}

	intent := &models.PaymentIntent{
		Reference:   reference,
		UserID:      userID,
		Coins:       coins,
		CheckoutURL: checkout.CheckoutURL,
	}
	if err := s.payments.CreateIntent(ctx, intent); err != nil {
		return nil, err
	}

	return &models.Checkout{Reference: reference, CheckoutURL: checkout.CheckoutURL}, nil
}

// HandleCallback credits a provider payment after verifying it server-side.
// The callback body only names the reference; the user and the coin amount
// come from the provider's verification.
func (s *purchaseService) HandleCallback(ctx context.Context, reference string) (models.PurchaseResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return models.PurchaseResult{}, apperrors.ErrInvalidRequest
	}

	v, err := s.provider.Verify(ctx, reference)
	if errors.Is(err, apperrors.ErrPaymentNotFound) {
		return models.PurchaseResult{}, fmt.Errorf("%w: %w", apperrors.ErrPaymentNotVerified, err)
	}
	if err != nil {
		return models.PurchaseResult{}, err
	}

	switch v.Status {
	case payment.StatusSuccess:
	case payment.StatusFailed:
		s.closeIntent(ctx, reference, models.PaymentFailed)
		return models.PurchaseResult{}, apperrors.ErrPaymentNotVerified
	default:
		return models.PurchaseResult{}, apperrors.ErrPaymentNotVerified
	}

	userID, coins, err := s.creditTarget(ctx, reference, v)
	if err != nil {
		logger.Log.Warn("payment verification mismatch", zap.String("reference", reference), zap.Error(err))
		return models.PurchaseResult{}, apperrors.ErrPaymentNotVerified
	}

	result, err := s.Purchase(ctx, userID, coins, reference)
	if err != nil {
		return models.PurchaseResult{}, err
	}
	s.closeIntent(ctx, reference, models.PaymentCompleted)
	return result, nil
}

// creditTarget decides who gets how many coins. A locally stored intent wins
// and must agree with the provider metadata.
func (s *purchaseService) creditTarget(ctx context.Context, reference string, v *payment.Verification) (int64, decimal.Decimal, error) {
	userID, err := v.UserID()
	if err != nil {
		return 0, decimal.Zero, err
	}
	coins := v.Metadata.Coins

	intent, err := s.payments.GetIntent(ctx, reference)
	switch {
	case errors.Is(err, apperrors.ErrPaymentNotFound):
		return userID, coins, nil
	case err != nil:
		return 0, decimal.Zero, err
	}

	if intent.UserID != userID || !intent.Coins.Equal(coins) {
		return 0, decimal.Zero, fmt.Errorf("intent for user %d and %s coins, provider reported user %d and %s coins",
			intent.UserID, intent.Coins, userID, coins)
	}
	return intent.UserID, intent.Coins, nil
}

func (s *purchaseService) closeIntent(ctx context.Context, reference string, status models.PaymentStatus) {
	if err := s.payments.UpdateIntentStatus(ctx, reference, status); err != nil {
		logger.Log.Warn("failed to close payment intent",
			zap.String("reference", reference),
			zap.String("status", string(status)),
			zap.Error(err))
	}
}
