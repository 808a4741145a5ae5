package payperiod

import (
	"context"
	"testing"
	"time"
)

func TestScheduleWeekly(t *testing.T) {
	s, err := NewSchedule("0 0 * * THU", 0, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Thursday 2024-03-07 00:00 is a boundary
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid week",
			now:  time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly on a boundary",
			now:  time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "just before a boundary",
			now:  time.Date(2024, 3, 6, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.MostRecentlyCompletedPeriodStart(context.Background(), tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleShortLookbackHasNoCompletedPeriod(t *testing.T) {
	s, err := NewSchedule("@weekly", 3*24*time.Hour, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.MostRecentlyCompletedPeriodStart(context.Background(), time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
}

func TestScheduleWithSeconds(t *testing.T) {
	s, err := NewSchedule("0 0 0 * * *", 0, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.MostRecentlyCompletedPeriodStart(context.Background(), time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewScheduleInvalid(t *testing.T) {
	if _, err := NewSchedule("every thursday", 0, nil); err == nil {
		t.Fatal("expected parse error")
	}
}
