// Package wallet holds the pure balance arithmetic shared by the transfer
// and withdrawal paths. Nothing here touches storage.
package wallet

import (
	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits stored for every coin amount.
const Scale = 4

// MaxAmount is the first value that no longer fits a NUMERIC(20,4) column.
var MaxAmount = decimal.New(1, 16)

// Debit says how much to take from each of the sender's balances.
type Debit struct {
	FromUser    decimal.Decimal
	FromCreator decimal.Decimal
}

func (d Debit) Total() decimal.Decimal {
	return d.FromUser.Add(d.FromCreator)
}

// UsesCreatorBalance reports whether the sender's creator balance is touched.
func (d Debit) UsesCreatorBalance() bool {
	return d.FromCreator.IsPositive()
}

// AvailableToSpend is the unified wallet: the user balance plus the balance of
// the creator profile the user owns, if any.
func AvailableToSpend(userBalance decimal.Decimal, creatorBalance *decimal.Decimal) decimal.Decimal {
	if creatorBalance == nil {
		return userBalance
	}
	return userBalance.Add(*creatorBalance)
}

// PlanDebit spends the user balance first and takes any shortfall from the
// sender's own creator balance.
func PlanDebit(userBalance decimal.Decimal, creatorBalance *decimal.Decimal, amount decimal.Decimal) (Debit, error) {
	if err := ValidateAmount(amount); err != nil {
		return Debit{}, err
	}
	if AvailableToSpend(userBalance, creatorBalance).LessThan(amount) {
		return Debit{}, apperrors.ErrInsufficientBalance
	}

	if userBalance.GreaterThanOrEqual(amount) {
		return Debit{FromUser: amount, FromCreator: decimal.Zero}, nil
	}

	fromUser := decimal.Max(userBalance, decimal.Zero)
	return Debit{FromUser: fromUser, FromCreator: amount.Sub(fromUser)}, nil
}

// SplitFee returns the platform fee and the net credit for a gross amount.
// The fee is rounded to Scale so that fee + net always equals amount.
func SplitFee(amount, rate decimal.Decimal) (fee, net decimal.Decimal) {
	fee = amount.Mul(rate).Round(Scale)
	return fee, amount.Sub(fee)
}

// PayoutEstimate is what a creator would receive for balance after the fee.
func PayoutEstimate(balance, rate decimal.Decimal) decimal.Decimal {
	_, net := SplitFee(balance, rate)
	return net
}

func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Round(Scale)) || amount.GreaterThanOrEqual(MaxAmount) {
		return apperrors.ErrInvalidAmount
	}
	return nil
}
