package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
)

// TeamRepository defines data access for teams.
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Team, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Team, error)
}

// MemberRepository defines data access for participants acting as members.
type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByIDTx(ctx context.Context, tx Transaction, id string) (*domain.Member, error)
	// ApplyBalanceDiff adds diff to the member's taking and receiving and
	// returns the updated values.
	ApplyBalanceDiff(ctx context.Context, tx Transaction, id string, diff decimal.Decimal) (BalanceUpdate, error)
}

// TakeRepository defines data access for the take ledger.
type TakeRepository interface {
	// LockLedger takes the exclusive ledger-wide lock for the rest of tx.
	LockLedger(ctx context.Context, tx Transaction) error
	// CurrentTakes returns the team's current takes ordered by ctime descending.
	// Outside a locked transaction the result is an eventually consistent snapshot.
	CurrentTakes(ctx context.Context, teamID string) ([]domain.Take, error)
	CurrentTakesTx(ctx context.Context, tx Transaction, teamID string) ([]domain.Take, error)
	CurrentTake(ctx context.Context, teamID, memberID string) (*domain.Take, error)
	// LastTakeBefore returns the latest amount recorded for the pair with mtime
	// strictly before the given time. found is false when there is none.
	LastTakeBefore(ctx context.Context, teamID, memberID string, before time.Time) (amount decimal.Decimal, found bool, err error)
	// Insert records a new take, keeping the ctime of the pair's first take.
	Insert(ctx context.Context, tx Transaction, take *domain.Take) (*domain.Take, error)
	TeamsForMemberTx(ctx context.Context, tx Transaction, memberID string) ([]string, error)
}

// BalanceUpdate holds a member's aggregates after a diff was applied.
type BalanceUpdate struct {
	Taking    decimal.Decimal
	Receiving decimal.Decimal
}

// PayPeriodLocator finds pay-period boundaries.
type PayPeriodLocator interface {
	// MostRecentlyCompletedPeriodStart returns the start of the most recently
	// completed pay period, or the zero time if no period has completed yet.
	MostRecentlyCompletedPeriodStart(ctx context.Context, now time.Time) (time.Time, error)
}

// TakeChangeNotifier is told when a member's take changed, so their funded
// tips can be recomputed. Implementations must not block.
type TakeChangeNotifier interface {
	OnMemberTakeChanged(ctx context.Context, memberID string)
}

// TakeMember is the member capability the take setter works with.
type TakeMember interface {
	MemberID() string
	SetBalances(taking, receiving decimal.Decimal)
}

// NewMember is a member that may still be an unclaimed stub.
type NewMember interface {
	TakeMember
	domain.Claimable
}

// Recorder is whoever records a take: a participant or a privileged actor.
type Recorder interface {
	RecorderID() string
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ErrCacheMiss is returned by Cache.Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key so the request can be retried.
	Release(ctx context.Context, key string) error
}

// TakeObserver receives instrumentation from the take use case.
type TakeObserver interface {
	TakeRecorded(throttled bool)
	LockWait(d time.Duration)
	CriticalSection(d time.Duration)
	BalanceDiffsApplied(n int)
}

type noopObserver struct{}

func (noopObserver) TakeRecorded(bool)             {}
func (noopObserver) LockWait(time.Duration)        {}
func (noopObserver) CriticalSection(time.Duration) {}
func (noopObserver) BalanceDiffsApplied(int)       {}
