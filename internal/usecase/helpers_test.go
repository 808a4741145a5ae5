package usecase_test

import (
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: d(s)}
}
