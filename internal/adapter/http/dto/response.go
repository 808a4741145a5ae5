package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug"`
	Name       string          `json:"name"`
	Owner      string          `json:"owner"`
	Balance    decimal.Decimal `json:"balance"`
	Receiving  decimal.Decimal `json:"receiving"`
	Giving     decimal.Decimal `json:"giving"`
	Budget     decimal.Decimal `json:"budget"`
	ShowAsTeam bool            `json:"show_as_team"`
}

// TeamFromDomain converts a domain team to a response.
func TeamFromDomain(t *domain.Team, showAsTeam bool) *TeamResponse {
	return &TeamResponse{
		ID:         t.ID,
		Slug:       t.Slug,
		Name:       t.Name,
		Owner:      t.Owner,
		Balance:    t.Balance,
		Receiving:  t.Receiving,
		Giving:     t.Giving,
		Budget:     t.Budget(),
		ShowAsTeam: showAsTeam,
	}
}

// DistributionEntryResponse is one member's share in API responses.
type DistributionEntryResponse struct {
	MemberID   string          `json:"member_id"`
	Nominal    decimal.Decimal `json:"nominal_amount"`
	Actual     decimal.Decimal `json:"actual_amount"`
	Balance    decimal.Decimal `json:"balance"`
	Percentage decimal.Decimal `json:"percentage"`
	CTime      *time.Time      `json:"ctime,omitempty"`
	MTime      *time.Time      `json:"mtime,omitempty"`
	IsTeam     bool            `json:"is_team"`
}

// DistributionResponse is a team's distribution in payout order.
type DistributionResponse struct {
	TeamID      string                       `json:"team_id"`
	Budget      decimal.Decimal              `json:"budget"`
	TotalActual decimal.Decimal              `json:"total_actual"`
	Entries     []*DistributionEntryResponse `json:"entries"`
}

// DistributionFromDomain converts a distribution to a response.
func DistributionFromDomain(d *domain.Distribution) *DistributionResponse {
	entries := d.Entries()
	resp := &DistributionResponse{
		TeamID:      d.TeamID,
		Budget:      d.Budget,
		TotalActual: d.TotalActual(),
		Entries:     make([]*DistributionEntryResponse, len(entries)),
	}

	for i, e := range entries {
		resp.Entries[i] = &DistributionEntryResponse{
			MemberID:   e.MemberID,
			Nominal:    e.NominalAmount,
			Actual:     e.ActualAmount,
			Balance:    e.Balance,
			Percentage: e.Percentage,
			CTime:      e.CTime,
			MTime:      e.MTime,
			IsTeam:     e.IsTeam,
		}
	}

	return resp
}

// MemberTakeResponse describes a member's take and weekly cap.
type MemberTakeResponse struct {
	TeamID      string          `json:"team_id"`
	MemberID    string          `json:"member_id"`
	IsMember    bool            `json:"is_member"`
	Amount      decimal.Decimal `json:"amount"`
	LastWeek    decimal.Decimal `json:"last_week"`
	MaxThisWeek decimal.Decimal `json:"max_this_week"`
}

// SetTakeResponse is returned after a take was recorded.
type SetTakeResponse struct {
	TeamID    string          `json:"team_id"`
	MemberID  string          `json:"member_id"`
	Requested decimal.Decimal `json:"requested"`
	Recorded  decimal.Decimal `json:"recorded"`
	Throttled bool            `json:"throttled"`
	Taking    decimal.Decimal `json:"taking"`
}

// MemberAuditResponse is the result of a member audit.
type MemberAuditResponse struct {
	MemberID       string          `json:"member_id"`
	RecordedTaking decimal.Decimal `json:"recorded_taking"`
	ActualTaking   decimal.Decimal `json:"actual_taking"`
	Difference     decimal.Decimal `json:"difference"`
	Teams          []string        `json:"teams"`
	Consistent     bool            `json:"consistent"`
	CheckedAt      time.Time       `json:"checked_at"`
}

// MemberAuditFromUseCase converts a member audit to a response.
func MemberAuditFromUseCase(a *usecase.MemberAudit) *MemberAuditResponse {
	teams := a.Teams
	if teams == nil {
		teams = []string{}
	}

	return &MemberAuditResponse{
		MemberID:       a.MemberID,
		RecordedTaking: a.RecordedTaking,
		ActualTaking:   a.ActualTaking,
		Difference:     a.Difference,
		Teams:          teams,
		Consistent:     a.Consistent,
		CheckedAt:      a.CheckedAt,
	}
}

// TeamAuditResponse is the result of a team audit.
type TeamAuditResponse struct {
	TeamID        string                 `json:"team_id"`
	Consistent    bool                   `json:"consistent"`
	Members       []*MemberAuditResponse `json:"members"`
	Discrepancies []*MemberAuditResponse `json:"discrepancies"`
	CheckedAt     time.Time              `json:"checked_at"`
}

// TeamAuditFromUseCase converts a team audit to a response.
func TeamAuditFromUseCase(a *usecase.TeamAudit) *TeamAuditResponse {
	resp := &TeamAuditResponse{
		TeamID:        a.TeamID,
		Consistent:    a.Consistent,
		Members:       make([]*MemberAuditResponse, len(a.Members)),
		Discrepancies: make([]*MemberAuditResponse, len(a.Discrepancies)),
		CheckedAt:     a.CheckedAt,
	}
	for i, m := range a.Members {
		resp.Members[i] = MemberAuditFromUseCase(m)
	}
	for i, m := range a.Discrepancies {
		resp.Discrepancies[i] = MemberAuditFromUseCase(m)
	}

	return resp
}
