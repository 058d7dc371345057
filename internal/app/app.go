package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/bono/internal/config"
	"github.com/a2sh3r/bono/internal/database"
	"github.com/a2sh3r/bono/internal/handlers"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/payment"
	"github.com/a2sh3r/bono/internal/repository"
	"github.com/a2sh3r/bono/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	server     *http.Server
	db         *sql.DB
	reconciler *service.PaymentReconciler
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	creatorRepo := repository.NewCreatorRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	supporterRepo := repository.NewSupporterRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	provider := payment.NewClient(cfg.PaymentProviderURL, cfg.PaymentAPIKey)
	if cfg.PaymentAPIKey == "" {
		logger.Log.Warn("payment provider API key is not set, checkout and callbacks are disabled")
	}

	purchaseService := service.NewPurchaseService(balanceRepo, userRepo, paymentRepo, provider, service.PurchaseOptions{
		CoinPrice:   cfg.CoinPrice,
		CallbackURL: cfg.PaymentCallbackURL,
	})

	handler := handlers.NewHandler(handlers.Services{
		Users:       service.NewUserService(userRepo, creatorRepo, supporterRepo),
		Transfers:   service.NewTransferService(balanceRepo, supporterRepo, cfg.FeeRate),
		Purchases:   purchaseService,
		Withdrawals: service.NewWithdrawalService(withdrawalRepo, balanceRepo, cfg.FeeRate),
		Ledger:      service.NewLedgerService(ledgerRepo, userRepo, creatorRepo),
		Operators:   service.NewOperatorService(cfg.AdminLogin, cfg.AdminPasswordHash),
	}, cfg.SecretKey)

	r := handlers.NewRouter(handler, handlers.RouterOptions{
		SecretKey:     cfg.SecretKey,
		WebhookSecret: cfg.PaymentWebhookSecret,
		RateLimit:     cfg.RateLimitRPS,
		RateBurst:     cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		server:     server,
		db:         db,
		reconciler: service.NewPaymentReconciler(paymentRepo, purchaseService, cfg.PaymentPollInterval),
	}, nil
}

// Run serves HTTP and reconciles pending payments until ctx is cancelled or
// the server fails, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.reconciler.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Log.Info("shutting down server...")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("server shutdown failed", zap.Error(err))
			return err
		}
		return nil
	})

	return g.Wait()
}

func (a *App) Close() error {
	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}
	return nil
}
