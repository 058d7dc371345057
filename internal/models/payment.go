package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentIntent tracks a checkout started with the payment provider until
// its reference is verified and credited.
type PaymentIntent struct {
	Reference   string          `json:"reference" db:"reference"`
	UserID      int64           `json:"userId" db:"user_id"`
	Coins       decimal.Decimal `json:"coins" db:"coins"`
	Status      PaymentStatus   `json:"status" db:"status"`
	CheckoutURL string          `json:"checkoutUrl" db:"checkout_url"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

type Checkout struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkoutUrl"`
}
