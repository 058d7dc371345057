package handlers

import (
	"net/http"
	"time"

	"github.com/a2sh3r/bono/internal/middleware"
	"github.com/a2sh3r/bono/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const operatorTokenTTL = 12 * time.Hour

type Services struct {
	Users       service.UserService
	Transfers   service.TransferService
	Purchases   service.PurchaseService
	Withdrawals service.WithdrawalService
	Ledger      service.LedgerService
	Operators   service.OperatorService
}

type Handler struct {
	userService       service.UserService
	transferService   service.TransferService
	purchaseService   service.PurchaseService
	withdrawalService service.WithdrawalService
	ledgerService     service.LedgerService
	operatorService   service.OperatorService
	secretKey         string
}

func NewHandler(s Services, secretKey string) *Handler {
	return &Handler{
		userService:       s.Users,
		transferService:   s.Transfers,
		purchaseService:   s.Purchases,
		withdrawalService: s.Withdrawals,
		ledgerService:     s.Ledger,
		operatorService:   s.Operators,
		secretKey:         secretKey,
	}
}

type RouterOptions struct {
	SecretKey     string
	WebhookSecret string
	RateLimit     float64
	RateBurst     int
}

func NewRouter(handler *Handler, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, "method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, "invalid URL format", http.StatusNotFound)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	limiter := middleware.NewClientRateLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)

	r.Route("/api", func(r chi.Router) {
		r.Post("/identity", handler.Identify)
		r.Get("/user", handler.GetUser)
		r.Get("/user/transactions", handler.GetUserTransactions)

		r.Post("/creators", handler.CreateCreator)
		r.Patch("/creators/{creatorId}", handler.UpdateCreator)
		r.Get("/creators/lookup", handler.LookupCreator)
		r.Get("/creators/check-handle", handler.CheckHandle)
		r.Get("/creators/by-user", handler.GetCreatorByUser)
		r.Get("/public/creator/{linkId}", handler.GetPublicCreator)

		r.Get("/creator/withdrawals", handler.ListCreatorWithdrawals)
		r.Get("/creator/transactions", handler.GetCreatorTransactions)
		r.Get("/creator/supporters", handler.ListSupporters)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware(limiter))
			r.Post("/transfer", handler.Transfer)
			r.Post("/purchase", handler.Purchase)
			r.Post("/purchase/initiate", handler.InitiatePurchase)
			r.Post("/withdrawals", handler.RequestWithdrawal)
		})

		r.With(middleware.NewHashMiddleware(opts.WebhookSecret)).Post("/payment/callback", handler.PaymentCallback)

		r.Post("/admin/login", handler.AdminLogin)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminMiddleware(opts.SecretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))
			r.Get("/admin/withdrawals/pending", handler.ListPendingWithdrawals)
			r.Post("/withdrawals/approve", handler.ApproveWithdrawal)
			r.Post("/withdrawals/reject", handler.RejectWithdrawal)
		})
	})

	return r
}
