package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Team is a plural participant whose members share its incoming funds.
type Team struct {
	ID        string
	Slug      string
	Name      string
	Owner     string
	IsPlural  bool
	Balance   decimal.Decimal
	Receiving decimal.Decimal
	Giving    decimal.Decimal
}

// Budget is what the team can hand out this period: balance + receiving - giving.
// It can be negative.
func (t *Team) Budget() decimal.Decimal {
	return t.Balance.Add(t.Receiving).Sub(t.Giving)
}

// OwnTake returns the team's residual take given the sum of member nominal takes.
func (t *Team) OwnTake(totalNominal decimal.Decimal) decimal.Decimal {
	return decimal.Max(t.Receiving.Sub(totalNominal), decimal.Zero)
}

// RequirePlural returns ErrNotATeam unless t is a team.
func (t *Team) RequirePlural() error {
	if t == nil || !t.IsPlural {
		return ErrNotATeam
	}
	return nil
}

// SlugLower is the case-insensitive lookup key for a slug.
func SlugLower(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
