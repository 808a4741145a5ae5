package domain

import "errors"

var (
	// Precondition errors
	ErrNotATeam      = errors.New("participant is not a team")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAmount = errors.New("invalid take amount")

	// Membership errors
	ErrMemberLimitReached   = errors.New("team member limit reached")
	ErrStubParticipantAdded = errors.New("cannot add an unclaimed participant as a member")

	// Lookup errors
	ErrTeamNotFound   = errors.New("team not found")
	ErrMemberNotFound = errors.New("member not found")

	// ErrLockUnavailable is returned when the take ledger lock could not be
	// acquired (timeout, deadlock, serialization failure). Callers may retry.
	ErrLockUnavailable = errors.New("take ledger lock unavailable")

	// Authentication errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrNegativeNominal means a stored or computed nominal take is negative.
	ErrNegativeNominal = errors.New("negative nominal take")
)

// IsRetryable reports whether err is a transient concurrency failure.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLockUnavailable)
}
