package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supporter is a display-only aggregate; it is never used for balance accounting.
type Supporter struct {
	UserID           int64           `json:"userId" db:"user_id"`
	CreatorID        int64           `json:"creatorId" db:"creator_id"`
	SupporterName    string          `json:"supporterName" db:"supporter_name"`
	TotalSent        decimal.Decimal `json:"totalSent" db:"total_sent"`
	FirstSupportedAt time.Time       `json:"firstSupportedAt" db:"first_supported_at"`
}
