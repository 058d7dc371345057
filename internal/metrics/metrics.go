package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts transfers by outcome
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bono_transfers_total",
			Help: "Total number of coin transfers",
		},
		[]string{"status"},
	)

	// TransferAmount tracks gross transfer amounts
	TransferAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bono_transfer_amount",
			Help:    "Gross amount of coins per transfer",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 10000},
		},
	)

	// FeesCollected sums platform fees taken from transfers
	FeesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bono_fees_collected_total",
			Help: "Total platform fees collected in coins",
		},
	)

	// PurchasesTotal counts purchases by outcome (credited, duplicate, failed)
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bono_purchases_total",
			Help: "Total number of coin purchases",
		},
		[]string{"status"},
	)

	// WithdrawalsTotal counts withdrawal lifecycle events
	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bono_withdrawals_total",
			Help: "Total number of withdrawal requests by transition",
		},
		[]string{"status"},
	)

	// PendingPayments tracks payment intents still awaiting verification
	PendingPayments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bono_pending_payments",
			Help: "Number of payment intents awaiting verification",
		},
	)

	// RequestDuration tracks HTTP request latency
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bono_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
