package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTransfer TransactionType = "transfer"
	TransactionPurchase TransactionType = "purchase"
)

const TransactionCompleted = "completed"

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID          int64           `json:"id" db:"id"`
	FromUserID  *int64          `json:"fromUserId" db:"from_user_id"`
	ToCreatorID *int64          `json:"toCreatorId" db:"to_creator_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	AdminFee    decimal.Decimal `json:"adminFee" db:"admin_fee"`
	Type        TransactionType `json:"type" db:"type"`
	Description *string         `json:"description,omitempty" db:"description"`
	Reference   *string         `json:"reference,omitempty" db:"reference"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

type TransferRequest struct {
	FromUserID    int64
	ToCreatorID   int64
	Amount        decimal.Decimal
	Message       string
	SupporterName string
}

// TransferPosting is a validated transfer with its fee split already computed.
type TransferPosting struct {
	FromUserID  int64
	ToCreatorID int64
	Amount      decimal.Decimal
	AdminFee    decimal.Decimal
	NetAmount   decimal.Decimal
	Description string
}

type TransferResult struct {
	TransactionID      int64           `json:"transactionId"`
	Amount             decimal.Decimal `json:"amount"`
	AdminFee           decimal.Decimal `json:"adminFee"`
	NetAmount          decimal.Decimal `json:"netAmount"`
	FromUserBalance    decimal.Decimal `json:"fromUserBalance"`
	FromCreatorBalance *decimal.Decimal `json:"fromCreatorBalance,omitempty"`
}

type PurchaseRequest struct {
	UserID    int64
	Amount    decimal.Decimal
	Reference string
}

type PurchaseResult struct {
	TransactionID int64           `json:"transactionId,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Reference     string          `json:"reference"`
	Duplicate     bool            `json:"duplicate"`
}
