package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
	"github.com/iho/takeledger/internal/usecase/mocks"
)

type takeMocks struct {
	txMgr    *mocks.MockTransactionManager
	tx       *mocks.MockTransaction
	teams    *mocks.MockTeamRepository
	members  *mocks.MockMemberRepository
	takes    *mocks.MockTakeRepository
	periods  *mocks.MockPayPeriodLocator
	notifier *mocks.MockTakeChangeNotifier
	cache    *mocks.MockCache
	observer *mocks.MockTakeObserver
}

var clock = time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

func newTakeMocks(t *testing.T) (*takeMocks, *usecase.TakeUseCase) {
	ctrl := gomock.NewController(t)
	m := &takeMocks{
		txMgr:    mocks.NewMockTransactionManager(ctrl),
		tx:       mocks.NewMockTransaction(ctrl),
		teams:    mocks.NewMockTeamRepository(ctrl),
		members:  mocks.NewMockMemberRepository(ctrl),
		takes:    mocks.NewMockTakeRepository(ctrl),
		periods:  mocks.NewMockPayPeriodLocator(ctrl),
		notifier: mocks.NewMockTakeChangeNotifier(ctrl),
		cache:    mocks.NewMockCache(ctrl),
		observer: mocks.NewMockTakeObserver(ctrl),
	}

	uc := usecase.NewTakeUseCase(usecase.TakeUseCaseConfig{
		TxManager:  m.txMgr,
		TeamRepo:   m.teams,
		MemberRepo: m.members,
		TakeRepo:   m.takes,
		Periods:    m.periods,
		Notifier:   m.notifier,
		Cache:      m.cache,
		Observer:   m.observer,
		Now:        func() time.Time { return clock },
	})

	return m, uc
}

func (m *takeMocks) allowTimings() {
	m.observer.EXPECT().LockWait(gomock.Any()).AnyTimes()
	m.observer.EXPECT().CriticalSection(gomock.Any()).AnyTimes()
	m.observer.EXPECT().BalanceDiffsApplied(gomock.Any()).AnyTimes()
}

func (m *takeMocks) lastWeek(teamID, memberID string, amount decimal.Decimal) {
	periodStart := clock.Add(-72 * time.Hour)
	m.periods.EXPECT().MostRecentlyCompletedPeriodStart(gomock.Any(), clock).Return(periodStart, nil)
	m.takes.EXPECT().LastTakeBefore(gomock.Any(), teamID, memberID, periodStart).Return(amount, true, nil)
}

func testTeam() *domain.Team {
	return &domain.Team{ID: "team-1", Slug: "TheEnterprise", Owner: "picard", IsPlural: true, Receiving: d("100")}
}

func TestTakeUseCase_SetTake_ThrottlesAndRunsCriticalSectionInOrder(t *testing.T) {
	m, uc := newTakeMocks(t)
	team := testTeam()
	alice := &domain.Member{ID: "alice", IsClaimed: true}

	m.lastWeek("team-1", "alice", d("40"))
	m.allowTimings()
	m.observer.EXPECT().TakeRecorded(true)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	inserted := domain.Take{ID: 1, TeamID: "team-1", MemberID: "alice", Amount: d("80"), CTime: clock, MTime: clock}

	gomock.InOrder(
		m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil),
		m.takes.EXPECT().LockLedger(gomock.Any(), m.tx).Return(nil),
		m.teams.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "team-1").Return(testTeam(), nil),
		m.takes.EXPECT().CurrentTakesTx(gomock.Any(), m.tx, "team-1").Return(nil, nil),
		m.takes.EXPECT().Insert(gomock.Any(), m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ usecase.Transaction, take *domain.Take) (*domain.Take, error) {
				if !take.Amount.Equal(d("80")) {
					t.Errorf("inserted amount = %s, want 80", take.Amount)
				}
				if take.RecorderID != "alice" {
					t.Errorf("recorder = %q, want alice", take.RecorderID)
				}
				if !take.CTime.Equal(clock) || !take.MTime.Equal(clock) {
					t.Errorf("timestamps = %v/%v, want %v", take.CTime, take.MTime, clock)
				}
				return &inserted, nil
			}),
		m.takes.EXPECT().CurrentTakesTx(gomock.Any(), m.tx, "team-1").Return([]domain.Take{inserted}, nil),
		m.members.EXPECT().ApplyBalanceDiff(gomock.Any(), m.tx, "alice", decEq("80")).
			Return(usecase.BalanceUpdate{Taking: d("80"), Receiving: d("80")}, nil),
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		m.cache.EXPECT().Delete(gomock.Any(), "distribution:team-1").Return(nil),
		m.notifier.EXPECT().OnMemberTakeChanged(gomock.Any(), "alice"),
	)

	recorded, err := uc.SetTake(context.Background(), team, alice, d("100"), alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !recorded.Equal(d("80")) {
		t.Errorf("recorded = %s, want 80", recorded)
	}
	if !alice.Taking.Equal(d("80")) || !alice.Receiving.Equal(d("80")) {
		t.Errorf("member balances = %s/%s, want 80/80", alice.Taking, alice.Receiving)
	}
}

func TestTakeUseCase_SetTake_AtOrBelowCapRecordedExactly(t *testing.T) {
	tests := []struct {
		name      string
		lastWeek  string
		requested string
		want      string
	}{
		{"below cap", "40", "50", "50"},
		{"at cap", "40", "80", "80"},
		{"no history gets the floor", "0", "1.00", "1.00"},
		{"trailing zeros", "40", "12.340", "12.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, uc := newTakeMocks(t)
			team := testTeam()
			alice := &domain.Member{ID: "alice", IsClaimed: true}

			m.lastWeek("team-1", "alice", d(tt.lastWeek))
			m.allowTimings()
			m.observer.EXPECT().TakeRecorded(false)
			m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
			m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
			m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
			m.takes.EXPECT().LockLedger(gomock.Any(), m.tx).Return(nil)
			m.teams.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "team-1").Return(testTeam(), nil)
			m.takes.EXPECT().CurrentTakesTx(gomock.Any(), m.tx, "team-1").Return(nil, nil).Times(2)
			m.takes.EXPECT().Insert(gomock.Any(), m.tx, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ usecase.Transaction, take *domain.Take) (*domain.Take, error) {
					if !take.Amount.Equal(d(tt.want)) {
						t.Errorf("inserted amount = %s, want %s", take.Amount, tt.want)
					}
					return take, nil
				})
			m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			m.notifier.EXPECT().OnMemberTakeChanged(gomock.Any(), "alice")

			recorded, err := uc.SetTake(context.Background(), team, alice, d(tt.requested), alice)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !recorded.Equal(d(tt.want)) {
				t.Errorf("recorded = %s, want %s", recorded, tt.want)
			}
		})
	}
}

func TestTakeUseCase_SetTake_RejectsBeforeTouchingLedger(t *testing.T) {
	alice := &domain.Member{ID: "alice", IsClaimed: true}

	tests := []struct {
		name     string
		team     *domain.Team
		member   usecase.TakeMember
		amount   string
		recorder usecase.Recorder
		wantErr  error
	}{
		{"individual participant", &domain.Team{ID: "solo"}, alice, "1", alice, domain.ErrNotATeam},
		{"nil team", nil, alice, "1", alice, domain.ErrNotATeam},
		{"negative amount", testTeam(), alice, "-0.01", alice, domain.ErrInvalidAmount},
		{"absurd amount", testTeam(), alice, "1000000000.01", alice, domain.ErrInvalidAmount},
		{"fraction of a cent rounding to zero", testTeam(), alice, "0.004", alice, domain.ErrInvalidAmount},
		{"fraction of a cent rounding up", testTeam(), alice, "0.999", alice, domain.ErrInvalidAmount},
		{"missing member", testTeam(), nil, "1", alice, domain.ErrInvalidInput},
		{"missing recorder", testTeam(), alice, "1", nil, domain.ErrInvalidInput},
		{"blank member id", testTeam(), &domain.Member{}, "1", alice, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc := newTakeMocks(t)

			_, err := uc.SetTake(context.Background(), tt.team, tt.member, d(tt.amount), tt.recorder)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTakeUseCase_SetTake_LockUnavailableRecordsNothing(t *testing.T) {
	m, uc := newTakeMocks(t)
	alice := &domain.Member{ID: "alice", IsClaimed: true}

	m.lastWeek("team-1", "alice", d("1"))
	m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.takes.EXPECT().LockLedger(gomock.Any(), m.tx).
		Return(fmt.Errorf("%w: lock timeout", domain.ErrLockUnavailable))
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	_, err := uc.SetTake(context.Background(), testTeam(), alice, d("1"), alice)
	if !errors.Is(err, domain.ErrLockUnavailable) {
		t.Fatalf("err = %v, want ErrLockUnavailable", err)
	}
	if !domain.IsRetryable(err) {
		t.Error("lock failure should be retryable")
	}
	if !alice.Taking.IsZero() {
		t.Errorf("member taking changed to %s", alice.Taking)
	}
}

func TestTakeUseCase_SetTake_ReconcileFailureRollsBack(t *testing.T) {
	m, uc := newTakeMocks(t)
	alice := &domain.Member{ID: "alice", IsClaimed: true, Taking: d("5"), Receiving: d("7")}
	team := testTeam()

	m.lastWeek("team-1", "alice", d("10"))
	m.allowTimings()
	m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.takes.EXPECT().LockLedger(gomock.Any(), m.tx).Return(nil)
	m.teams.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "team-1").
		Return(&domain.Team{ID: "team-1", IsPlural: true, Receiving: d("100"), Balance: d("3")}, nil)
	m.takes.EXPECT().CurrentTakesTx(gomock.Any(), m.tx, "team-1").Return(nil, nil)
	m.takes.EXPECT().Insert(gomock.Any(), m.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ usecase.Transaction, take *domain.Take) (*domain.Take, error) {
			return take, nil
		})
	m.takes.EXPECT().CurrentTakesTx(gomock.Any(), m.tx, "team-1").
		Return([]domain.Take{{TeamID: "team-1", MemberID: "alice", Amount: d("10"), CTime: clock, MTime: clock}}, nil)
	m.members.EXPECT().ApplyBalanceDiff(gomock.Any(), m.tx, "alice", gomock.Any()).
		Return(usecase.BalanceUpdate{}, errors.New("connection reset"))
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	_, err := uc.SetTake(context.Background(), team, alice, d("10"), alice)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !alice.Taking.Equal(d("5")) || !alice.Receiving.Equal(d("7")) {
		t.Errorf("member balances = %s/%s, want unchanged 5/7", alice.Taking, alice.Receiving)
	}
	if !team.Balance.IsZero() {
		t.Errorf("team refreshed from an aborted transaction: balance %s", team.Balance)
	}
}

func TestTakeUseCase_AddMember_RejectsStubBeforeLocking(t *testing.T) {
	_, uc := newTakeMocks(t)
	stub := &domain.Member{ID: "stub", IsClaimed: false}
	admin := domain.Admin{ID: "admin"}

	err := uc.AddMember(context.Background(), testTeam(), stub, admin)
	if !errors.Is(err, domain.ErrStubParticipantAdded) {
		t.Errorf("err = %v, want ErrStubParticipantAdded", err)
	}
}

func TestTakeUseCase_ComputeActualTakes_UsesCache(t *testing.T) {
	m, uc := newTakeMocks(t)
	team := testTeam()

	takes := []domain.Take{{TeamID: "team-1", MemberID: "alice", Amount: d("30"), CTime: clock, MTime: clock}}

	var stored []byte
	gomock.InOrder(
		m.cache.EXPECT().Get(gomock.Any(), "distribution:team-1").Return(nil, usecase.ErrCacheMiss),
		m.takes.EXPECT().CurrentTakes(gomock.Any(), "team-1").Return(takes, nil),
		m.cache.EXPECT().Set(gomock.Any(), "distribution:team-1", gomock.Any(), usecase.DefaultDistributionCacheTTL).
			DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
				stored = value
				return nil
			}),
	)

	first, err := uc.ComputeActualTakes(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.cache.EXPECT().Get(gomock.Any(), "distribution:team-1").DoAndReturn(
		func(context.Context, string) ([]byte, error) { return stored, nil })

	second, err := uc.ComputeActualTakes(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first.Keys()) != 2 || len(second.Keys()) != 2 {
		t.Fatalf("keys = %v / %v, want member and team", first.Keys(), second.Keys())
	}
	for i, key := range first.Keys() {
		if second.Keys()[i] != key {
			t.Errorf("cached order differs at %d: %s != %s", i, second.Keys()[i], key)
		}
		if !second.ActualFor(key).Equal(first.ActualFor(key)) {
			t.Errorf("cached actual for %s = %s, want %s", key, second.ActualFor(key), first.ActualFor(key))
		}
	}
}

func TestTakeUseCase_ComputeActualTakes_CacheErrorFallsBack(t *testing.T) {
	m, uc := newTakeMocks(t)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	m.takes.EXPECT().CurrentTakes(gomock.Any(), "team-1").Return(nil, nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	dist, err := uc.ComputeActualTakes(context.Background(), testTeam())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dist.ActualFor("team-1").Equal(d("100")) {
		t.Errorf("team actual = %s, want 100", dist.ActualFor("team-1"))
	}
}

func TestTakeUseCase_LastWeek(t *testing.T) {
	t.Run("no completed period", func(t *testing.T) {
		m, uc := newTakeMocks(t)
		m.periods.EXPECT().MostRecentlyCompletedPeriodStart(gomock.Any(), clock).Return(time.Time{}, nil)

		got, err := uc.LastWeek(context.Background(), testTeam(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("last week = %s, want 0", got)
		}
	})

	t.Run("no take before period", func(t *testing.T) {
		m, uc := newTakeMocks(t)
		start := clock.Add(-time.Hour)
		m.periods.EXPECT().MostRecentlyCompletedPeriodStart(gomock.Any(), clock).Return(start, nil)
		m.takes.EXPECT().LastTakeBefore(gomock.Any(), "team-1", "alice", start).Return(decimal.Zero, false, nil)

		_, maxThisWeek, err := uc.ThrottleCap(context.Background(), testTeam(), "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !maxThisWeek.Equal(d("1.00")) {
			t.Errorf("max this week = %s, want 1.00", maxThisWeek)
		}
	})

	t.Run("locator failure", func(t *testing.T) {
		m, uc := newTakeMocks(t)
		m.periods.EXPECT().MostRecentlyCompletedPeriodStart(gomock.Any(), clock).Return(time.Time{}, errors.New("db gone"))

		if _, err := uc.LastWeek(context.Background(), testTeam(), "alice"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
