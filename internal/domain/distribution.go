package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DistributionEntry is one member's share of a team budget. It is computed on
// demand and never stored.
type DistributionEntry struct {
	MemberID      string          `json:"member_id"`
	NominalAmount decimal.Decimal `json:"nominal_amount"`
	ActualAmount  decimal.Decimal `json:"actual_amount"`
	Balance       decimal.Decimal `json:"balance"`
	Percentage    decimal.Decimal `json:"percentage"`
	CTime         *time.Time      `json:"ctime,omitempty"`
	MTime         *time.Time      `json:"mtime,omitempty"`
	IsTeam        bool            `json:"is_team"`
}

// Distribution is an insertion-ordered map of member id to entry.
// Iteration order is payout order.
type Distribution struct {
	TeamID  string
	Budget  decimal.Decimal
	entries []DistributionEntry
	index   map[string]int
}

// NewDistribution creates an empty distribution for a team.
func NewDistribution(teamID string, budget decimal.Decimal) *Distribution {
	return &Distribution{
		TeamID: teamID,
		Budget: budget,
		index:  make(map[string]int),
	}
}

// Set appends the entry, or replaces it in place if the member is already present.
func (d *Distribution) Set(entry DistributionEntry) {
	if i, ok := d.index[entry.MemberID]; ok {
		d.entries[i] = entry
		return
	}
	d.index[entry.MemberID] = len(d.entries)
	d.entries = append(d.entries, entry)
}

// Get returns the entry for memberID.
func (d *Distribution) Get(memberID string) (DistributionEntry, bool) {
	if d == nil {
		return DistributionEntry{}, false
	}
	i, ok := d.index[memberID]
	if !ok {
		return DistributionEntry{}, false
	}
	return d.entries[i], true
}

// ActualFor returns the actual amount for memberID, or zero if absent.
func (d *Distribution) ActualFor(memberID string) decimal.Decimal {
	e, ok := d.Get(memberID)
	if !ok {
		return decimal.Zero
	}
	return e.ActualAmount
}

// Keys returns member ids in distribution order.
func (d *Distribution) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.MemberID
	}
	return keys
}

// Entries returns a copy of the entries in distribution order.
func (d *Distribution) Entries() []DistributionEntry {
	if d == nil {
		return nil
	}
	return slices.Clone(d.entries)
}

// Len returns the number of entries, including the team's own.
func (d *Distribution) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// TotalActual sums the actual amounts of all entries.
func (d *Distribution) TotalActual() decimal.Decimal {
	total := decimal.Zero
	if d == nil {
		return total
	}
	for _, e := range d.entries {
		total = total.Add(e.ActualAmount)
	}
	return total
}

// TeamEntry returns the team's own residual entry.
func (d *Distribution) TeamEntry() (DistributionEntry, bool) {
	return d.Get(d.TeamID)
}

type distributionJSON struct {
	TeamID  string              `json:"team_id"`
	Budget  decimal.Decimal     `json:"budget"`
	Entries []DistributionEntry `json:"entries"`
}

// MarshalJSON encodes the distribution as an ordered list of entries.
func (d *Distribution) MarshalJSON() ([]byte, error) {
	return json.Marshal(distributionJSON{
		TeamID:  d.TeamID,
		Budget:  d.Budget,
		Entries: d.entries,
	})
}

// UnmarshalJSON restores a distribution, rebuilding the index.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	var raw distributionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = *NewDistribution(raw.TeamID, raw.Budget)
	for _, e := range raw.Entries {
		d.Set(e)
	}

	return nil
}

// Distribute computes actual takes for a team from its current nominal takes.
//
// Members are paid newest take-relationship first (ctime descending), then the
// team's own residual take is appended. Each entry receives min(nominal, remaining)
// and never less than zero; the team's own entry does not reduce what remains.
func Distribute(team *Team, takes []Take) (*Distribution, error) {
	if err := team.RequirePlural(); err != nil {
		return nil, err
	}

	ordered := slices.Clone(takes)
	slices.SortStableFunc(ordered, func(a, b Take) int {
		return b.CTime.Compare(a.CTime)
	})

	totalNominal := decimal.Zero
	for _, take := range ordered {
		if take.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: member %s amount %s", ErrNegativeNominal, take.MemberID, take.Amount)
		}
		totalNominal = totalNominal.Add(take.Amount)
	}

	budget := team.Budget()
	balance := budget
	dist := NewDistribution(team.ID, budget)

	for _, take := range ordered {
		ctime, mtime := take.CTime, take.MTime
		actual := payable(take.Amount, balance)
		balance = balance.Sub(actual)

		dist.Set(DistributionEntry{
			MemberID:      take.MemberID,
			NominalAmount: take.Amount,
			ActualAmount:  actual,
			Balance:       balance,
			Percentage:    percentage(actual, budget),
			CTime:         &ctime,
			MTime:         &mtime,
		})
	}

	own := team.OwnTake(totalNominal)
	actual := payable(own, balance)
	dist.Set(DistributionEntry{
		MemberID:      team.ID,
		NominalAmount: own,
		ActualAmount:  actual,
		Balance:       balance,
		Percentage:    percentage(actual, budget),
		IsTeam:        true,
	})

	return dist, nil
}

func payable(nominal, balance decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Min(nominal, balance), decimal.Zero)
}

func percentage(actual, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}
	return actual.Div(budget)
}
