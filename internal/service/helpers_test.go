package service

import (
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: dec(s)}
}
