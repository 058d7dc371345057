package wallet

import (
	"testing"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestAvailableToSpend(t *testing.T) {
	assert.True(t, AvailableToSpend(d("10"), nil).Equal(d("10")))
	assert.True(t, AvailableToSpend(d("10"), dp("2.5")).Equal(d("12.5")))
}

func TestPlanDebit(t *testing.T) {
	tests := []struct {
		name        string
		user        string
		creator     *decimal.Decimal
		amount      string
		wantUser    string
		wantCreator string
		wantErr     error
	}{
		{
			name:        "user balance covers the amount",
			user:        "100",
			amount:      "40",
			wantUser:    "40",
			wantCreator: "0",
		},
		{
			name:        "exact user balance",
			user:        "40",
			creator:     dp("10"),
			amount:      "40",
			wantUser:    "40",
			wantCreator: "0",
		},
		{
			name:        "shortfall taken from own creator balance",
			user:        "30",
			creator:     dp("50"),
			amount:      "45",
			wantUser:    "30",
			wantCreator: "15",
		},
		{
			name:        "empty user balance spends creator balance only",
			user:        "0",
			creator:     dp("50"),
			amount:      "50",
			wantUser:    "0",
			wantCreator: "50",
		},
		{
			name:    "insufficient without creator",
			user:    "10",
			amount:  "50",
			wantErr: apperrors.ErrInsufficientBalance,
		},
		{
			name:    "insufficient with creator",
			user:    "10",
			creator: dp("5"),
			amount:  "15.0001",
			wantErr: apperrors.ErrInsufficientBalance,
		},
		{
			name:    "zero amount",
			user:    "10",
			amount:  "0",
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			user:    "10",
			amount:  "-1",
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "amount beyond storage range",
			user:    "10",
			amount:  "10000000000000000",
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "too many decimals",
			user:    "10",
			amount:  "0.00001",
			wantErr: apperrors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanDebit(d(tt.user), tt.creator, d(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.FromUser.Equal(d(tt.wantUser)), "from user: %s", got.FromUser)
			assert.True(t, got.FromCreator.Equal(d(tt.wantCreator)), "from creator: %s", got.FromCreator)
			assert.True(t, got.Total().Equal(d(tt.amount)))
		})
	}
}

func TestSplitFee(t *testing.T) {
	tests := []struct {
		amount  string
		rate    string
		wantFee string
		wantNet string
	}{
		{"40", "0.05", "2", "38"},
		{"100", "0.05", "5", "95"},
		{"0.01", "0.05", "0.0005", "0.0095"},
		{"0.0001", "0.05", "0", "0.0001"},
		{"33.3333", "0.05", "1.6667", "31.6666"},
		{"10", "0", "0", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"@"+tt.rate, func(t *testing.T) {
			fee, net := SplitFee(d(tt.amount), d(tt.rate))
			assert.True(t, fee.Equal(d(tt.wantFee)), "fee: %s", fee)
			assert.True(t, net.Equal(d(tt.wantNet)), "net: %s", net)
			assert.True(t, fee.Add(net).Equal(d(tt.amount)))
		})
	}
}

func TestPayoutEstimate(t *testing.T) {
	assert.True(t, PayoutEstimate(d("200"), d("0.05")).Equal(d("190")))
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{"0.0001", false},
		{"100", false},
		{"9999999999999999.9999", false},
		{"10000000000000000", true},
		{"1e17", true},
		{"0", true},
		{"-5", true},
		{"1.00001", true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidateAmount(d(tt.amount))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
		})
	}
}
