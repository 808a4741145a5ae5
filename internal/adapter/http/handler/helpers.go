package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/iho/takeledger/internal/adapter/http/dto"
	"github.com/iho/takeledger/internal/adapter/http/middleware"
	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotATeam):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMemberLimitReached):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStubParticipantAdded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrLockUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrInconsistentTaking):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorType is a low-cardinality label for a take error.
func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrLockUnavailable):
		return "lock_unavailable"
	case errors.Is(err, domain.ErrMemberLimitReached):
		return "member_limit"
	case errors.Is(err, domain.ErrStubParticipantAdded):
		return "stub_participant"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	}

	switch mapDomainError(err) {
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// recorderID is a participant recording a take.
type recorderID string

func (r recorderID) RecorderID() string { return string(r) }

// actor is who is making a request.
type actor struct {
	recorder usecase.Recorder
	viewer   domain.Viewer
	// authenticated is false when authentication is disabled and the
	// recorder came from the request body.
	authenticated bool
}

// actorFrom resolves the caller from the token claims, or from fallbackID when
// authentication is disabled.
func actorFrom(r *http.Request, fallbackID string) (*actor, error) {
	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok {
		a := &actor{
			recorder:      recorderID(claims.ParticipantID),
			viewer:        claims.Viewer(),
			authenticated: true,
		}
		if claims.Admin {
			a.recorder = domain.Admin{ID: claims.ParticipantID}
		}
		return a, nil
	}

	fallbackID = strings.TrimSpace(fallbackID)
	if fallbackID == "" {
		return nil, domain.ErrUnauthorized
	}

	return &actor{
		recorder: recorderID(fallbackID),
		viewer:   domain.Viewer{ParticipantID: fallbackID},
	}, nil
}

// may reports whether the actor may act on behalf of any of ids.
func (a *actor) may(ids ...string) bool {
	if !a.authenticated || a.viewer.Admin {
		return true
	}
	for _, id := range ids {
		if id != "" && id == a.viewer.ParticipantID {
			return true
		}
	}
	return false
}

// viewerFrom returns who is looking, anonymous if unknown.
func viewerFrom(r *http.Request) domain.Viewer {
	if claims, ok := middleware.GetClaimsFromContext(r.Context()); ok {
		return claims.Viewer()
	}
	return domain.Viewer{}
}
