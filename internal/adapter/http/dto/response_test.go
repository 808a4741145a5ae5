package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

func TestTeamFromDomain(t *testing.T) {
	team := &domain.Team{
		ID:        "team-1",
		Slug:      "Enterprise",
		Name:      "Enterprise",
		Owner:     "picard",
		IsPlural:  true,
		Balance:   decimal.RequireFromString("10"),
		Receiving: decimal.RequireFromString("100"),
		Giving:    decimal.RequireFromString("5"),
	}

	resp := TeamFromDomain(team, true)
	if resp.ID != team.ID || resp.Owner != "picard" || !resp.ShowAsTeam {
		t.Fatalf("unexpected team response: %+v", resp)
	}

	if !resp.Budget.Equal(decimal.RequireFromString("105")) {
		t.Fatalf("expected budget 105, got %s", resp.Budget)
	}
}

func TestDistributionFromDomain(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	team := &domain.Team{ID: "team-1", IsPlural: true, Receiving: decimal.RequireFromString("100")}

	dist, err := domain.Distribute(team, []domain.Take{
		{TeamID: "team-1", MemberID: "alice", Amount: decimal.RequireFromString("80"), CTime: now, MTime: now},
		{TeamID: "team-1", MemberID: "bob", Amount: decimal.RequireFromString("50"), CTime: now.Add(time.Hour), MTime: now.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := DistributionFromDomain(dist)
	if len(resp.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Entries))
	}

	if resp.Entries[0].MemberID != "bob" || resp.Entries[2].MemberID != "team-1" || !resp.Entries[2].IsTeam {
		t.Fatalf("expected payout order bob, alice, team, got %+v", resp.Entries)
	}

	if !resp.TotalActual.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("expected total 100, got %s", resp.TotalActual)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	entries := decoded["entries"].([]any)
	own := entries[2].(map[string]any)
	if _, ok := own["ctime"]; ok {
		t.Fatalf("expected team entry to omit ctime, got %v", own)
	}
}

func TestTeamAuditFromUseCase(t *testing.T) {
	drifted := &usecase.MemberAudit{
		MemberID:       "alice",
		RecordedTaking: decimal.RequireFromString("5"),
		ActualTaking:   decimal.RequireFromString("7"),
		Difference:     decimal.RequireFromString("-2"),
	}

	resp := TeamAuditFromUseCase(&usecase.TeamAudit{
		TeamID:        "team-1",
		Members:       []*usecase.MemberAudit{drifted},
		Discrepancies: []*usecase.MemberAudit{drifted},
	})

	if resp.Consistent || len(resp.Discrepancies) != 1 || resp.Discrepancies[0].MemberID != "alice" {
		t.Fatalf("unexpected team audit response: %+v", resp)
	}

	if resp.Members[0].Teams == nil {
		t.Fatalf("expected teams to encode as an empty list")
	}
}
