package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// BankAccount is the opaque payout destination stored as JSONB.
type BankAccount struct {
	AccountHolder *string `json:"account_holder"`
	Details       string  `json:"details"`
}

func (b BankAccount) Value() (driver.Value, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (b *BankAccount) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = BankAccount{}
		return nil
	default:
		return errors.New("unsupported bank_account column type")
	}
}

type WithdrawalRequest struct {
	ID              int64            `json:"id" db:"id"`
	CreatorID       int64            `json:"creatorId" db:"creator_id"`
	Amount          decimal.Decimal  `json:"amount" db:"amount"`
	BankAccount     BankAccount      `json:"bankAccount" db:"bank_account"`
	Status          WithdrawalStatus `json:"status" db:"status"`
	RequestedAt     time.Time        `json:"requestedAt" db:"requested_at"`
	ApprovedAt      *time.Time       `json:"approvedAt,omitempty" db:"approved_at"`
	ApprovedBy      *string          `json:"approvedBy,omitempty" db:"approved_by"`
	ReviewedAt      *time.Time       `json:"reviewedAt,omitempty" db:"reviewed_at"`
	ReviewedBy      *string          `json:"reviewedBy,omitempty" db:"reviewed_by"`
	RejectionReason *string          `json:"rejectionReason,omitempty" db:"rejection_reason"`
}

type NewWithdrawal struct {
	CreatorID   int64
	Amount      decimal.Decimal
	BankAccount BankAccount
}

// WithdrawalReceipt is returned to the creator when a request is filed.
// AvailableEstimate is informational only; nothing is held at request time.
type WithdrawalReceipt struct {
	WithdrawalRequest
	AvailableEstimate decimal.Decimal `json:"availableEstimate"`
}
