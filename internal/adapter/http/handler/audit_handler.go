package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/takeledger/internal/adapter/http/dto"
	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

// AuditService checks member aggregates.
type AuditService interface {
	CheckMember(ctx context.Context, memberID string) (*usecase.MemberAudit, error)
	CheckTeam(ctx context.Context, teamID string) (*usecase.TeamAudit, error)
}

// TeamLookup resolves team slugs.
type TeamLookup interface {
	TeamBySlug(ctx context.Context, slug string) (*domain.Team, error)
}

// AuditHandler handles audit requests. An inconsistent result is still
// returned with 200; the body says whether it is consistent.
type AuditHandler struct {
	auditUC       AuditService
	teams         TeamLookup
	discrepancies func(n int)
}

// NewAuditHandler creates a new AuditHandler. onDiscrepancies may be nil.
func NewAuditHandler(auditUC AuditService, teams TeamLookup, onDiscrepancies func(n int)) *AuditHandler {
	if onDiscrepancies == nil {
		onDiscrepancies = func(int) {}
	}
	return &AuditHandler{auditUC: auditUC, teams: teams, discrepancies: onDiscrepancies}
}

// CheckMember audits one member.
func (h *AuditHandler) CheckMember(w http.ResponseWriter, r *http.Request) {
	report, err := h.auditUC.CheckMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil && !errors.Is(err, usecase.ErrInconsistentTaking) {
		writeError(w, mapDomainError(err), "failed to audit member", err.Error())
		return
	}

	if !report.Consistent {
		h.discrepancies(1)
	}

	writeJSON(w, http.StatusOK, dto.MemberAuditFromUseCase(report))
}

// CheckTeam audits every member of a team.
func (h *AuditHandler) CheckTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.teams.TeamBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get team", err.Error())
		return
	}

	report, err := h.auditUC.CheckTeam(r.Context(), team.ID)
	if err != nil && !errors.Is(err, usecase.ErrInconsistentTaking) {
		writeError(w, mapDomainError(err), "failed to audit team", err.Error())
		return
	}

	h.discrepancies(len(report.Discrepancies))

	writeJSON(w, http.StatusOK, dto.TeamAuditFromUseCase(report))
}
