package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration of the take critical section,
	// lock wait included.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultDistributionCacheTTL is how long a display snapshot of a team's
	// distribution is kept.
	DefaultDistributionCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
