package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits kept for monetary amounts.
const MoneyScale = 2

var (
	// MinTakeCap is the floor of the weekly throttle.
	MinTakeCap = decimal.RequireFromString("1.00")

	// InitialMemberTake is the take recorded when a member joins a team.
	InitialMemberTake = decimal.RequireFromString("0.01")
)

// Take is one row of take history for a (team, member) pair.
// CTime is the creation time of the pair's first-ever take and never changes.
type Take struct {
	ID         int64
	TeamID     string
	MemberID   string
	Amount     decimal.Decimal
	CTime      time.Time
	MTime      time.Time
	RecorderID string
}

// MaxThisWeek is the throttle cap: twice last week's take, but at least 1.00.
func MaxThisWeek(lastWeek decimal.Decimal) decimal.Decimal {
	return decimal.Max(lastWeek.Mul(decimal.NewFromInt(2)), MinTakeCap)
}

// Throttle clamps amount to the cap derived from lastWeek.
// The second return value is true when the amount was reduced.
func Throttle(amount, lastWeek decimal.Decimal) (decimal.Decimal, bool) {
	limit := MaxThisWeek(lastWeek)
	if amount.GreaterThan(limit) {
		return limit, true
	}
	return amount, false
}
