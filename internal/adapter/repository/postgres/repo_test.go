package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

func beginMockTx(t *testing.T, pool pgxmock.PgxPoolIface) usecase.Transaction {
	t.Helper()
	pool.ExpectBegin()
	tx, err := newTxManagerWithPool(pool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	return tx
}

func TestTakeRepositoryLockLedger(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectExec("set_config").WithArgs("1500ms").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	pool.ExpectExec("LOCK TABLE takes IN EXCLUSIVE MODE").WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))

	repo := newTakeRepository(pool, 1500*time.Millisecond)
	if err := repo.LockLedger(context.Background(), tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, pool)
}

func TestTakeRepositoryLockLedgerWithoutTimeout(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectExec("LOCK TABLE takes").WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))

	if err := newTakeRepository(pool, 0).LockLedger(context.Background(), tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, pool)
}

func TestTakeRepositoryLockLedgerTimeout(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectExec("set_config").WithArgs("100ms").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	pool.ExpectExec("LOCK TABLE takes").WillReturnError(&pgconn.PgError{Code: pgErrLockNotAvailable})

	err := newTakeRepository(pool, 100*time.Millisecond).LockLedger(context.Background(), tx)
	if !errors.Is(err, domain.ErrLockUnavailable) {
		t.Fatalf("expected ErrLockUnavailable, got %v", err)
	}
	if !domain.IsRetryable(err) {
		t.Fatal("lock timeout should be retryable")
	}
}

func TestTakeRepositoryTeamsForMemberTx(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectQuery("SELECT team FROM current_takes").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"team"}).AddRow("team-a").AddRow("team-b"))

	teams, err := newTakeRepository(pool, 0).TeamsForMemberTx(context.Background(), tx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 2 || teams[0] != "team-a" || teams[1] != "team-b" {
		t.Fatalf("unexpected teams: %v", teams)
	}
}

func TestTakeRepositoryMissingRows(t *testing.T) {
	pool := newMockPool(t)
	repo := newTakeRepository(pool, 0)
	ctx := context.Background()

	pool.ExpectQuery("FROM current_takes").WithArgs("team-1", "alice").WillReturnError(pgx.ErrNoRows)
	take, err := repo.CurrentTake(ctx, "team-1", "alice")
	if err != nil || take != nil {
		t.Fatalf("expected no take, got %v, %v", take, err)
	}

	before := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
	pool.ExpectQuery("SELECT amount FROM takes").WithArgs("team-1", "alice", pgxmock.AnyArg()).WillReturnError(pgx.ErrNoRows)
	amount, found, err := repo.LastTakeBefore(ctx, "team-1", "alice", before)
	if err != nil || found || !amount.IsZero() {
		t.Fatalf("expected nothing found, got %s, %v, %v", amount, found, err)
	}

	assertExpectations(t, pool)
}

func TestTeamRepositoryGetBySlugLowercases(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery("FROM teams WHERE slug_lower").WithArgs("crew").WillReturnError(pgx.ErrNoRows)

	_, err := newTeamRepository(pool).GetBySlug(context.Background(), " Crew ")
	if !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}

	assertExpectations(t, pool)
}

func TestMemberRepositoryApplyBalanceDiffUnknownMember(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectQuery("UPDATE participants").WithArgs("ghost", pgxmock.AnyArg()).WillReturnError(pgx.ErrNoRows)

	_, err := newMemberRepository(pool).ApplyBalanceDiff(context.Background(), tx, "ghost", decimal.NewFromInt(1))
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestPaydayRepositoryNoCompletedPayday(t *testing.T) {
	pool := newMockPool(t)

	pool.ExpectQuery("SELECT ts_start FROM paydays").WithArgs(pgxmock.AnyArg()).WillReturnError(pgx.ErrNoRows)

	start, err := newPaydayRepository(pool).MostRecentlyCompletedPeriodStart(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.IsZero() {
		t.Fatalf("expected zero time, got %v", start)
	}
}

func TestNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.01", "12.50", "-3.25", "1000000000.00"} {
		want := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(want))
		if !got.Equal(want) {
			t.Errorf("round trip of %s gave %s", s, got)
		}
	}
}
