package service

import (
	"context"
	"errors"
	"time"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/metrics"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/repository"
	"go.uber.org/zap"
)

const reconcileBatchSize = 100

// PaymentReconciler re-verifies checkouts whose provider callback never
// arrived and credits them through the normal purchase path.
type PaymentReconciler struct {
	payments     repository.PaymentRepository
	purchases    PurchaseService
	pollInterval time.Duration
	minAge       time.Duration
	now          func() time.Time
}

func NewPaymentReconciler(payments repository.PaymentRepository, purchases PurchaseService, interval time.Duration) *PaymentReconciler {
	return &PaymentReconciler{
		payments:     payments,
		purchases:    purchases,
		pollInterval: interval,
		minAge:       interval,
		now:          time.Now,
	}
}

func (u *PaymentReconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(u.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.reconcilePending(ctx)
		}
	}
}

func (u *PaymentReconciler) reconcilePending(ctx context.Context) {
	intents, err := u.payments.GetPendingIntents(ctx, u.now().Add(-u.minAge), reconcileBatchSize)
	if err != nil {
		logger.Log.Error("failed to get pending payment intents", zap.Error(err))
		return
	}
	metrics.PendingPayments.Set(float64(len(intents)))

	for _, intent := range intents {
		_, err := u.purchases.HandleCallback(ctx, intent.Reference)
		switch {
		case err == nil:
			logger.Log.Info("pending payment reconciled", zap.String("reference", intent.Reference))
		case errors.Is(err, apperrors.ErrPaymentNotFound):
			if err := u.payments.UpdateIntentStatus(ctx, intent.Reference, models.PaymentFailed); err != nil {
				logger.Log.Error("failed to mark payment intent failed", zap.String("reference", intent.Reference), zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrPaymentNotVerified):
			logger.Log.Debug("payment not settled yet", zap.String("reference", intent.Reference))
		case errors.Is(err, apperrors.ErrProviderNotConfigured):
			return
		default:
			logger.Log.Warn("failed to reconcile payment", zap.String("reference", intent.Reference), zap.Error(err))
		}
	}
}
