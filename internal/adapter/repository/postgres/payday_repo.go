package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/takeledger/internal/infrastructure/postgres/generated"
)

// PaydayRepository locates pay periods from the paydays table.
type PaydayRepository struct {
	queries *generated.Queries
}

// NewPaydayRepository creates a new PaydayRepository.
func NewPaydayRepository(pool *pgxpool.Pool) *PaydayRepository {
	return newPaydayRepository(pool)
}

func newPaydayRepository(db generated.DBTX) *PaydayRepository {
	return &PaydayRepository{queries: generated.New(db)}
}

// Create records a payday. Pass an end not after start for a running payday.
func (r *PaydayRepository) Create(ctx context.Context, start, end time.Time) error {
	_, err := r.queries.CreatePayday(ctx, generated.CreatePaydayParams{
		TsStart: timeToPgTimestamptz(start),
		TsEnd:   timeToPgTimestamptz(end),
	})

	return err
}

// MostRecentlyCompletedPeriodStart returns ts_start of the latest payday that
// finished by now, or the zero time.
func (r *PaydayRepository) MostRecentlyCompletedPeriodStart(ctx context.Context, now time.Time) (time.Time, error) {
	start, err := r.queries.GetLastCompletedPaydayStart(ctx, timeToPgTimestamptz(now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}

	return start.Time, nil
}
