package domain

import "github.com/shopspring/decimal"

// Member is a participant acting as a team member.
// Taking and Receiving are aggregates maintained by balance reconciliation only.
type Member struct {
	ID        string
	Username  string
	IsClaimed bool
	IsAdmin   bool
	Taking    decimal.Decimal
	Receiving decimal.Decimal
}

// MemberID implements the member capability used by the take setter.
func (m *Member) MemberID() string { return m.ID }

// RecorderID lets a participant record takes.
func (m *Member) RecorderID() string { return m.ID }

// SetBalances refreshes the cached aggregates after a reconciliation.
func (m *Member) SetBalances(taking, receiving decimal.Decimal) {
	m.Taking = taking
	m.Receiving = receiving
}

// Claimed reports whether the participant is a real (non-stub) account.
func (m *Member) Claimed() bool { return m.IsClaimed }

// Admin is a privileged actor that may record takes on behalf of others.
type Admin struct {
	ID string
}

// RecorderID implements the recorder capability.
func (a Admin) RecorderID() string { return a.ID }

// Viewer describes who is looking at a team page.
type Viewer struct {
	ParticipantID string
	Admin         bool
}
