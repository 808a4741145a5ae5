package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/infrastructure/postgres/generated"
	"github.com/iho/takeledger/internal/usecase"
)

// TakeRepository implements usecase.TakeRepository on the takes table and
// the current_takes view.
type TakeRepository struct {
	queries     *generated.Queries
	lockTimeout time.Duration
}

// NewTakeRepository creates a new TakeRepository. lockTimeout bounds the wait
// for the ledger lock; zero leaves the server default.
func NewTakeRepository(pool *pgxpool.Pool, lockTimeout time.Duration) *TakeRepository {
	return newTakeRepository(pool, lockTimeout)
}

func newTakeRepository(db generated.DBTX, lockTimeout time.Duration) *TakeRepository {
	return &TakeRepository{queries: generated.New(db), lockTimeout: lockTimeout}
}

// LockLedger takes an EXCLUSIVE lock on takes for the rest of tx. Plain reads
// still proceed; every other take change waits.
func (r *TakeRepository) LockLedger(ctx context.Context, tx usecase.Transaction) error {
	queries := generated.New(pgxTx(tx))

	if r.lockTimeout > 0 {
		timeout := fmt.Sprintf("%dms", r.lockTimeout.Milliseconds())
		if err := queries.SetLockTimeout(ctx, timeout); err != nil {
			return mapLockError(err)
		}
	}

	if err := queries.LockTakes(ctx); err != nil {
		return mapLockError(err)
	}

	return nil
}

// CurrentTakes returns the team's current takes, ctime descending.
func (r *TakeRepository) CurrentTakes(ctx context.Context, teamID string) ([]domain.Take, error) {
	return currentTakes(ctx, r.queries, teamID)
}

// CurrentTakesTx is CurrentTakes inside tx.
func (r *TakeRepository) CurrentTakesTx(ctx context.Context, tx usecase.Transaction, teamID string) ([]domain.Take, error) {
	takes, err := currentTakes(ctx, generated.New(pgxTx(tx)), teamID)
	return takes, mapConcurrencyError(err)
}

func currentTakes(ctx context.Context, queries *generated.Queries, teamID string) ([]domain.Take, error) {
	rows, err := queries.ListCurrentTakes(ctx, teamID)
	if err != nil {
		return nil, err
	}

	takes := make([]domain.Take, 0, len(rows))
	for _, row := range rows {
		takes = append(takes, rowToTake(row))
	}

	return takes, nil
}

// CurrentTake returns the member's current take, or nil if they have none.
func (r *TakeRepository) CurrentTake(ctx context.Context, teamID, memberID string) (*domain.Take, error) {
	row, err := r.queries.GetCurrentTake(ctx, generated.GetCurrentTakeParams{
		Team:   teamID,
		Member: memberID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	take := rowToTake(row)
	return &take, nil
}

// LastTakeBefore returns the latest amount recorded before the given time.
func (r *TakeRepository) LastTakeBefore(ctx context.Context, teamID, memberID string, before time.Time) (decimal.Decimal, bool, error) {
	amount, err := r.queries.GetLastTakeBefore(ctx, generated.GetLastTakeBeforeParams{
		Team:   teamID,
		Member: memberID,
		Before: timeToPgTimestamptz(before),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	return numericToDecimal(amount), true, nil
}

// Insert records a take. The stored ctime is that of the pair's first take,
// or take.CTime if there is none.
func (r *TakeRepository) Insert(ctx context.Context, tx usecase.Transaction, take *domain.Take) (*domain.Take, error) {
	queries := generated.New(pgxTx(tx))

	row, err := queries.InsertTake(ctx, generated.InsertTakeParams{
		Member:   take.MemberID,
		Team:     take.TeamID,
		Ctime:    timeToPgTimestamptz(take.CTime),
		Mtime:    timeToPgTimestamptz(take.MTime),
		Amount:   decimalToNumeric(take.Amount),
		Recorder: take.RecorderID,
	})
	if err != nil {
		return nil, mapConcurrencyError(err)
	}

	inserted := rowToTake(generated.CurrentTake(row))
	return &inserted, nil
}

// TeamsForMemberTx returns the ids of teams where the member has a current take.
func (r *TakeRepository) TeamsForMemberTx(ctx context.Context, tx usecase.Transaction, memberID string) ([]string, error) {
	queries := generated.New(pgxTx(tx))

	teams, err := queries.ListTeamsForMember(ctx, memberID)
	if err != nil {
		return nil, mapConcurrencyError(err)
	}

	return teams, nil
}
