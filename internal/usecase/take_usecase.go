package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
)

// TakeUseCase handles setting takes and distributing team budgets.
type TakeUseCase struct {
	txManager      TransactionManager
	teamRepo       TeamRepository
	memberRepo     MemberRepository
	takeRepo       TakeRepository
	periods        PayPeriodLocator
	notifier       TakeChangeNotifier
	cache          Cache
	observer       TakeObserver
	logger         zerolog.Logger
	now            func() time.Time
	cacheTTL       time.Duration
	maxTeamMembers int
}

// TakeUseCaseConfig holds the dependencies of TakeUseCase.
type TakeUseCaseConfig struct {
	TxManager      TransactionManager
	TeamRepo       TeamRepository
	MemberRepo     MemberRepository
	TakeRepo       TakeRepository
	Periods        PayPeriodLocator
	Notifier       TakeChangeNotifier // optional
	Cache          Cache              // optional
	Observer       TakeObserver       // optional
	Logger         *zerolog.Logger    // optional
	Now            func() time.Time   // optional, defaults to time.Now
	CacheTTL       time.Duration
	MaxTeamMembers int // 0 means domain.DefaultMaxTeamMembers, negative disables the cap
}

// NewTakeUseCase creates a new TakeUseCase.
func NewTakeUseCase(cfg TakeUseCaseConfig) *TakeUseCase {
	uc := &TakeUseCase{
		txManager:      cfg.TxManager,
		teamRepo:       cfg.TeamRepo,
		memberRepo:     cfg.MemberRepo,
		takeRepo:       cfg.TakeRepo,
		periods:        cfg.Periods,
		notifier:       cfg.Notifier,
		cache:          cfg.Cache,
		observer:       cfg.Observer,
		logger:         zerolog.Nop(),
		now:            cfg.Now,
		cacheTTL:       cfg.CacheTTL,
		maxTeamMembers: cfg.MaxTeamMembers,
	}

	if cfg.Logger != nil {
		uc.logger = cfg.Logger.With().Str("component", "takes").Logger()
	}
	if uc.observer == nil {
		uc.observer = noopObserver{}
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.cacheTTL <= 0 {
		uc.cacheTTL = DefaultDistributionCacheTTL
	}
	if uc.maxTeamMembers == 0 {
		uc.maxTeamMembers = domain.DefaultMaxTeamMembers
	}

	return uc
}

// TeamBySlug looks a team up by its slug.
func (uc *TakeUseCase) TeamBySlug(ctx context.Context, slug string) (*domain.Team, error) {
	if err := domain.ValidateSlug(slug); err != nil {
		return nil, err
	}
	return uc.teamRepo.GetBySlug(ctx, slug)
}

// Member looks a participant up by id.
func (uc *TakeUseCase) Member(ctx context.Context, id string) (*domain.Member, error) {
	if err := domain.ValidateID("member", id); err != nil {
		return nil, err
	}
	return uc.memberRepo.GetByID(ctx, id)
}

// LastWeek returns the member's nominal take as of the start of the most
// recently completed pay period, or zero.
func (uc *TakeUseCase) LastWeek(ctx context.Context, team *domain.Team, memberID string) (decimal.Decimal, error) {
	if err := team.RequirePlural(); err != nil {
		return decimal.Zero, err
	}

	start, err := uc.periods.MostRecentlyCompletedPeriodStart(ctx, uc.now().UTC())
	if err != nil {
		return decimal.Zero, err
	}
	if start.IsZero() {
		return decimal.Zero, nil
	}

	amount, found, err := uc.takeRepo.LastTakeBefore(ctx, team.ID, memberID, start)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return decimal.Zero, nil
	}

	return amount, nil
}

// ThrottleCap returns last week's take and the maximum allowed this week.
func (uc *TakeUseCase) ThrottleCap(ctx context.Context, team *domain.Team, memberID string) (lastWeek, maxThisWeek decimal.Decimal, err error) {
	lastWeek, err = uc.LastWeek(ctx, team, memberID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return lastWeek, domain.MaxThisWeek(lastWeek), nil
}

// SetTake records a member's take from the team pool and returns the amount
// actually recorded, which is the requested amount clamped to the weekly cap.
func (uc *TakeUseCase) SetTake(
	ctx context.Context,
	team *domain.Team,
	member TakeMember,
	amount decimal.Decimal,
	recorder Recorder,
) (decimal.Decimal, error) {
	// 0. Validate inputs before touching the ledger
	if err := checkTakeInput(team, member, recorder); err != nil {
		return decimal.Zero, err
	}

	amount, err := domain.NormalizeAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}

	// 1. Throttle against last period's take
	lastWeek, err := uc.LastWeek(ctx, team, member.MemberID())
	if err != nil {
		return decimal.Zero, err
	}

	amount, throttled := domain.Throttle(amount, lastWeek)
	if throttled {
		uc.logger.Debug().
			Str("team_id", team.ID).
			Str("member_id", member.MemberID()).
			Str("last_week", lastWeek.StringFixed(domain.MoneyScale)).
			Str("recorded", amount.StringFixed(domain.MoneyScale)).
			Msg("take throttled")
	}

	// 2. Critical section; a positive take for a non-member makes them join
	guard := func(current *domain.Distribution) (bool, error) {
		if _, ok := current.Get(member.MemberID()); ok || amount.IsZero() {
			return true, nil
		}
		if err := uc.admit(member, current); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := uc.recordTake(ctx, team, member, amount, recorder, guard); err != nil {
		return decimal.Zero, err
	}

	uc.observer.TakeRecorded(throttled)

	return amount, nil
}

// AddMember makes member part of the team with the initial take. The team
// size cap is checked against the ledger state inside the critical section.
// Adding an existing member changes nothing.
func (uc *TakeUseCase) AddMember(ctx context.Context, team *domain.Team, member NewMember, recorder Recorder) error {
	if err := checkTakeInput(team, member, recorder); err != nil {
		return err
	}
	if !member.Claimed() {
		return domain.ErrStubParticipantAdded
	}

	guard := func(current *domain.Distribution) (bool, error) {
		if _, ok := current.Get(member.MemberID()); ok {
			return false, nil
		}
		if err := uc.admit(member, current); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := uc.recordTake(ctx, team, member, domain.InitialMemberTake, recorder, guard); err != nil {
		return err
	}

	uc.observer.TakeRecorded(false)

	return nil
}

// RemoveMember records a zero take, which drops the member from the team.
func (uc *TakeUseCase) RemoveMember(ctx context.Context, team *domain.Team, member TakeMember, recorder Recorder) error {
	if err := checkTakeInput(team, member, recorder); err != nil {
		return err
	}

	if err := uc.recordTake(ctx, team, member, decimal.Zero, recorder, nil); err != nil {
		return err
	}

	uc.observer.TakeRecorded(false)

	return nil
}

// recordTake runs the serialized part of a take change: lock the ledger, compute
// the old distribution, insert, compute the new one and reconcile balances, all
// in one transaction. guard, if set, runs once the lock is held and may abort
// the change with an error or skip it by returning false.
func (uc *TakeUseCase) recordTake(
	ctx context.Context,
	team *domain.Team,
	member TakeMember,
	amount decimal.Decimal,
	recorder Recorder,
	guard func(current *domain.Distribution) (bool, error),
) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	// 1. Begin transaction
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// 2. Lock the whole take ledger
	lockStart := time.Now()
	if err := uc.takeRepo.LockLedger(ctx, tx); err != nil {
		return err
	}
	uc.observer.LockWait(time.Since(lockStart))

	sectionStart := time.Now()
	defer func() { uc.observer.CriticalSection(time.Since(sectionStart)) }()

	// 3. Re-read team aggregates under the lock so the budget is not stale
	fresh, err := uc.teamRepo.GetByIDForUpdate(ctx, tx, team.ID)
	if err != nil {
		return err
	}
	if err := fresh.RequirePlural(); err != nil {
		return err
	}

	// 4. Distribution before the change
	oldTakes, err := uc.computeTx(ctx, tx, fresh)
	if err != nil {
		return err
	}

	if guard != nil {
		proceed, err := guard(oldTakes)
		if err != nil || !proceed {
			return err
		}
	}

	// 5. Insert the new take
	now := uc.now().UTC()
	_, err = uc.takeRepo.Insert(ctx, tx, &domain.Take{
		TeamID:     fresh.ID,
		MemberID:   member.MemberID(),
		Amount:     amount,
		CTime:      now,
		MTime:      now,
		RecorderID: recorder.RecorderID(),
	})
	if err != nil {
		return err
	}

	// 6. Distribution after the change
	newTakes, err := uc.computeTx(ctx, tx, fresh)
	if err != nil {
		return err
	}

	// 7. Reconcile member aggregates; the caller's member is refreshed only
	// once the transaction has committed
	staged := &stagedBalances{id: member.MemberID()}
	diffs, err := ReconcileBalances(ctx, tx, uc.memberRepo, oldTakes, newTakes, staged)
	if err != nil {
		return err
	}

	// 8. Commit transaction
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if staged.set {
		member.SetBalances(staged.taking, staged.receiving)
	}
	team.Balance, team.Receiving, team.Giving = fresh.Balance, fresh.Receiving, fresh.Giving

	uc.observer.BalanceDiffsApplied(len(diffs))
	uc.logger.Info().
		Str("team_id", fresh.ID).
		Str("member_id", member.MemberID()).
		Str("recorder_id", recorder.RecorderID()).
		Str("amount", amount.StringFixed(domain.MoneyScale)).
		Int("balance_diffs", len(diffs)).
		Msg("take recorded")

	uc.invalidate(ctx, fresh.ID)
	if uc.notifier != nil {
		uc.notifier.OnMemberTakeChanged(ctx, member.MemberID())
	}

	return nil
}

func (uc *TakeUseCase) computeTx(ctx context.Context, tx Transaction, team *domain.Team) (*domain.Distribution, error) {
	takes, err := uc.takeRepo.CurrentTakesTx(ctx, tx, team.ID)
	if err != nil {
		return nil, err
	}
	return domain.Distribute(team, takes)
}

// ComputeActualTakes returns the team's distribution for display. It is read
// without the ledger lock and may be served from cache, so it is an eventually
// consistent snapshot.
func (uc *TakeUseCase) ComputeActualTakes(ctx context.Context, team *domain.Team) (*domain.Distribution, error) {
	if err := team.RequirePlural(); err != nil {
		return nil, err
	}

	if cached, ok := uc.cached(ctx, team.ID); ok {
		return cached, nil
	}

	takes, err := uc.takeRepo.CurrentTakes(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	dist, err := domain.Distribute(team, takes)
	if err != nil {
		return nil, err
	}

	uc.store(ctx, dist)

	return dist, nil
}

// CurrentTakes returns the team's current nominal takes, newest first.
func (uc *TakeUseCase) CurrentTakes(ctx context.Context, team *domain.Team) ([]domain.Take, error) {
	if err := team.RequirePlural(); err != nil {
		return nil, err
	}
	return uc.takeRepo.CurrentTakes(ctx, team.ID)
}

// TakeFor returns the member's current nominal take, or zero.
func (uc *TakeUseCase) TakeFor(ctx context.Context, team *domain.Team, memberID string) (decimal.Decimal, error) {
	if err := team.RequirePlural(); err != nil {
		return decimal.Zero, err
	}

	take, err := uc.takeRepo.CurrentTake(ctx, team.ID, memberID)
	if err != nil {
		return decimal.Zero, err
	}
	if take == nil {
		return decimal.Zero, nil
	}

	return take.Amount, nil
}

// MemberOf reports whether memberID has a current take in the team.
func (uc *TakeUseCase) MemberOf(ctx context.Context, team *domain.Team, memberID string) (bool, error) {
	if err := team.RequirePlural(); err != nil {
		return false, err
	}

	take, err := uc.takeRepo.CurrentTake(ctx, team.ID, memberID)
	if err != nil {
		return false, err
	}

	return take != nil, nil
}

// ShowAsTeam decides whether a team page is shown as a team to viewer. Teams
// without members are only shown to admins and to the team's owner.
func (uc *TakeUseCase) ShowAsTeam(ctx context.Context, team *domain.Team, viewer domain.Viewer) (bool, error) {
	if team == nil || !team.IsPlural {
		return false, nil
	}
	if viewer.Admin {
		return true, nil
	}

	takes, err := uc.takeRepo.CurrentTakes(ctx, team.ID)
	if err != nil {
		return false, err
	}
	if len(takes) == 0 {
		return viewer.ParticipantID != "" && viewer.ParticipantID == team.Owner, nil
	}

	return true, nil
}

func distributionKey(teamID string) string {
	return "distribution:" + teamID
}

func (uc *TakeUseCase) cached(ctx context.Context, teamID string) (*domain.Distribution, bool) {
	if uc.cache == nil {
		return nil, false
	}

	data, err := uc.cache.Get(ctx, distributionKey(teamID))
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			uc.logger.Warn().Err(err).Str("team_id", teamID).Msg("distribution cache read failed")
		}
		return nil, false
	}

	var dist domain.Distribution
	if err := json.Unmarshal(data, &dist); err != nil {
		uc.logger.Warn().Err(err).Str("team_id", teamID).Msg("discarding undecodable cached distribution")
		return nil, false
	}

	return &dist, true
}

func (uc *TakeUseCase) store(ctx context.Context, dist *domain.Distribution) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(dist)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, distributionKey(dist.TeamID), data, uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("team_id", dist.TeamID).Msg("distribution cache write failed")
	}
}

func (uc *TakeUseCase) invalidate(ctx context.Context, teamID string) {
	if uc.cache == nil {
		return
	}

	if err := uc.cache.Delete(ctx, distributionKey(teamID)); err != nil {
		uc.logger.Warn().Err(err).Str("team_id", teamID).Msg("distribution cache invalidation failed")
	}
}

// admit checks that member may join the team whose locked distribution is
// current. Members that cannot be stubs only face the size cap.
func (uc *TakeUseCase) admit(member TakeMember, current *domain.Distribution) error {
	// the team's own entry is always present
	if err := domain.ValidateTeamSize(current.Len()-1, uc.maxTeamMembers); err != nil {
		return err
	}
	if c, ok := member.(domain.Claimable); ok && !c.Claimed() {
		return domain.ErrStubParticipantAdded
	}
	return nil
}

func checkTakeInput(team *domain.Team, member TakeMember, recorder Recorder) error {
	if err := team.RequirePlural(); err != nil {
		return err
	}
	if member == nil {
		return domain.ErrInvalidInput
	}
	if err := domain.ValidateID("member", member.MemberID()); err != nil {
		return err
	}
	if recorder == nil {
		return domain.ErrInvalidInput
	}
	return domain.ValidateID("recorder", recorder.RecorderID())
}

// stagedBalances collects the acting member's refreshed aggregates until commit.
type stagedBalances struct {
	id        string
	taking    decimal.Decimal
	receiving decimal.Decimal
	set       bool
}

func (s *stagedBalances) MemberID() string { return s.id }

func (s *stagedBalances) SetBalances(taking, receiving decimal.Decimal) {
	s.taking, s.receiving, s.set = taking, receiving, true
}
