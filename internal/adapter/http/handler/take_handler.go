package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/adapter/http/dto"
	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

// TakeService is the take use case as seen by the HTTP layer.
type TakeService interface {
	TeamBySlug(ctx context.Context, slug string) (*domain.Team, error)
	Member(ctx context.Context, id string) (*domain.Member, error)
	ComputeActualTakes(ctx context.Context, team *domain.Team) (*domain.Distribution, error)
	TakeFor(ctx context.Context, team *domain.Team, memberID string) (decimal.Decimal, error)
	MemberOf(ctx context.Context, team *domain.Team, memberID string) (bool, error)
	ThrottleCap(ctx context.Context, team *domain.Team, memberID string) (decimal.Decimal, decimal.Decimal, error)
	SetTake(ctx context.Context, team *domain.Team, member usecase.TakeMember, amount decimal.Decimal, recorder usecase.Recorder) (decimal.Decimal, error)
	AddMember(ctx context.Context, team *domain.Team, member usecase.NewMember, recorder usecase.Recorder) error
	RemoveMember(ctx context.Context, team *domain.Team, member usecase.TakeMember, recorder usecase.Recorder) error
	ShowAsTeam(ctx context.Context, team *domain.Team, viewer domain.Viewer) (bool, error)
}

// Retrier re-runs an operation that failed on a transient lock error.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ErrorObserver counts failed and retried take changes.
type ErrorObserver interface {
	TakeError(errorType string)
	TakeRetried()
}

type onceRetrier struct{}

func (onceRetrier) Retry(ctx context.Context, operation func() error) error { return operation() }

type noopErrorObserver struct{}

func (noopErrorObserver) TakeError(string) {}
func (noopErrorObserver) TakeRetried()     {}

// TakeHandler handles take-related HTTP requests.
type TakeHandler struct {
	takeUC   TakeService
	retrier  Retrier
	observer ErrorObserver
}

// NewTakeHandler creates a new TakeHandler. retrier and observer may be nil.
func NewTakeHandler(takeUC TakeService, retrier Retrier, observer ErrorObserver) *TakeHandler {
	if retrier == nil {
		retrier = onceRetrier{}
	}
	if observer == nil {
		observer = noopErrorObserver{}
	}
	return &TakeHandler{takeUC: takeUC, retrier: retrier, observer: observer}
}

// GetTeam returns a team and whether it is shown as a team to the caller.
func (h *TakeHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, ok := h.team(w, r)
	if !ok {
		return
	}

	show, err := h.takeUC.ShowAsTeam(r.Context(), team, viewerFrom(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get team", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TeamFromDomain(team, show))
}

// Distribution returns the team's actual takes in payout order.
func (h *TakeHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	team, ok := h.team(w, r)
	if !ok {
		return
	}

	dist, err := h.takeUC.ComputeActualTakes(r.Context(), team)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute takes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DistributionFromDomain(dist))
}

// GetTake returns a member's nominal take and weekly cap.
func (h *TakeHandler) GetTake(w http.ResponseWriter, r *http.Request) {
	team, ok := h.team(w, r)
	if !ok {
		return
	}
	memberID := chi.URLParam(r, "id")

	isMember, err := h.takeUC.MemberOf(r.Context(), team, memberID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get take", err.Error())
		return
	}

	amount, err := h.takeUC.TakeFor(r.Context(), team, memberID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get take", err.Error())
		return
	}

	lastWeek, maxThisWeek, err := h.takeUC.ThrottleCap(r.Context(), team, memberID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get take", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &dto.MemberTakeResponse{
		TeamID:      team.ID,
		MemberID:    memberID,
		IsMember:    isMember,
		Amount:      amount,
		LastWeek:    lastWeek,
		MaxThisWeek: maxThisWeek,
	})
}

// SetTake records a member's take. The recorded amount may be lower than the
// requested one when the weekly cap applies. A positive take for a participant
// who is not a member adds them, which only the owner or an admin may do.
func (h *TakeHandler) SetTake(w http.ResponseWriter, r *http.Request) {
	var req dto.SetTakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	requested, err := req.ParseAmount()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	memberID := chi.URLParam(r, "id")
	act, err := actorFrom(r, req.RecorderID)
	if err != nil {
		h.fail(w, r, "failed to set take", err)
		return
	}
	if !act.may(memberID) {
		h.fail(w, r, "failed to set take", domain.ErrForbidden)
		return
	}

	var (
		team     *domain.Team
		member   *domain.Member
		recorded decimal.Decimal
	)
	err = h.retry(r.Context(), func() error {
		// reload on every attempt so balances are current
		var err error
		if team, err = h.takeUC.TeamBySlug(r.Context(), chi.URLParam(r, "slug")); err != nil {
			return err
		}
		if member, err = h.takeUC.Member(r.Context(), memberID); err != nil {
			return err
		}
		// joining through a take needs the same rights as AddMember
		if requested.IsPositive() && !act.may(team.Owner) {
			isMember, err := h.takeUC.MemberOf(r.Context(), team, memberID)
			if err != nil {
				return err
			}
			if !isMember {
				return domain.ErrForbidden
			}
		}
		recorded, err = h.takeUC.SetTake(r.Context(), team, member, requested, act.recorder)
		return err
	})
	if err != nil {
		h.fail(w, r, "failed to set take", err)
		return
	}

	writeJSON(w, http.StatusOK, &dto.SetTakeResponse{
		TeamID:    team.ID,
		MemberID:  member.ID,
		Requested: requested,
		Recorded:  recorded,
		Throttled: recorded.LessThan(requested.Round(domain.MoneyScale)),
		Taking:    member.Taking,
	})
}

// AddMember adds a participant to the team with the initial take. Only the
// team owner or an admin may add members.
func (h *TakeHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	act, err := actorFrom(r, req.RecorderID)
	if err != nil {
		h.fail(w, r, "failed to add member", err)
		return
	}

	err = h.retry(r.Context(), func() error {
		team, err := h.takeUC.TeamBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			return err
		}
		if !act.may(team.Owner) {
			return domain.ErrForbidden
		}
		member, err := h.takeUC.Member(r.Context(), req.MemberID)
		if err != nil {
			return err
		}
		return h.takeUC.AddMember(r.Context(), team, member, act.recorder)
	})
	if err != nil {
		h.fail(w, r, "failed to add member", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember drops a member from the team. The member, the team owner or an
// admin may do this.
func (h *TakeHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req dto.RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	act, err := actorFrom(r, req.RecorderID)
	if err != nil {
		h.fail(w, r, "failed to remove member", err)
		return
	}

	memberID := chi.URLParam(r, "id")
	err = h.retry(r.Context(), func() error {
		team, err := h.takeUC.TeamBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			return err
		}
		if !act.may(memberID, team.Owner) {
			return domain.ErrForbidden
		}
		member, err := h.takeUC.Member(r.Context(), memberID)
		if err != nil {
			return err
		}
		return h.takeUC.RemoveMember(r.Context(), team, member, act.recorder)
	})
	if err != nil {
		h.fail(w, r, "failed to remove member", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TakeHandler) team(w http.ResponseWriter, r *http.Request) (*domain.Team, bool) {
	team, err := h.takeUC.TeamBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get team", err.Error())
		return nil, false
	}
	return team, true
}

func (h *TakeHandler) retry(ctx context.Context, operation func() error) error {
	attempts := 0
	return h.retrier.Retry(ctx, func() error {
		attempts++
		if attempts > 1 {
			h.observer.TakeRetried()
		}
		return operation()
	})
}

func (h *TakeHandler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := mapDomainError(err)
	h.observer.TakeError(errorType(err))

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(message)
	}

	writeError(w, status, message, err.Error())
}
