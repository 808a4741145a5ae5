// Package payperiod derives pay-period boundaries from a cron schedule, for
// deployments that do not record paydays in the database.
package payperiod

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultLookback is how far back boundaries are searched.
const DefaultLookback = 15 * 24 * time.Hour

var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Schedule treats every activation of a cron spec as the start of a pay
// period that ends at the next activation.
type Schedule struct {
	spec     string
	schedule cron.Schedule
	lookback time.Duration
	location *time.Location
}

// NewSchedule parses spec, e.g. "0 0 * * THU" for weekly periods starting
// Thursday midnight. A non-positive lookback uses DefaultLookback.
func NewSchedule(spec string, lookback time.Duration, location *time.Location) (*Schedule, error) {
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid pay period schedule %q: %w", spec, err)
	}
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	if location == nil {
		location = time.UTC
	}

	return &Schedule{spec: spec, schedule: schedule, lookback: lookback, location: location}, nil
}

// MostRecentlyCompletedPeriodStart returns the start of the last period that
// ended at or before now, or the zero time when fewer than two boundaries
// fall inside the lookback window.
func (s *Schedule) MostRecentlyCompletedPeriodStart(ctx context.Context, now time.Time) (time.Time, error) {
	now = now.In(s.location)

	var previous, latest time.Time
	for t := s.schedule.Next(now.Add(-s.lookback)); !t.IsZero() && !t.After(now); t = s.schedule.Next(t) {
		previous, latest = latest, t
	}

	if previous.IsZero() {
		return time.Time{}, nil
	}

	return previous.UTC(), nil
}

// String returns the cron spec.
func (s *Schedule) String() string {
	return s.spec
}
