// Package memory is an in-process implementation of the take ledger ports.
// It serializes take changes with a single ledger-wide lock and undoes
// uncommitted writes on rollback.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/usecase"
)

// Store holds teams, members, takes and paydays in memory.
type Store struct {
	mu      sync.RWMutex
	ledger  chan struct{}
	teams   map[string]domain.Team
	members map[string]domain.Member
	takes   []domain.Take
	paydays []Payday
	nextID  int64
}

// Payday is a completed or running payout window.
type Payday struct {
	Start time.Time
	End   time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		ledger:  make(chan struct{}, 1),
		teams:   make(map[string]domain.Team),
		members: make(map[string]domain.Member),
	}
}

// PutTeam inserts or replaces a team.
func (s *Store) PutTeam(team domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
}

// PutMember inserts or replaces a participant.
func (s *Store) PutMember(member domain.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[member.ID] = member
}

// AddPayday records a payday window. A payday whose end is not after its start
// is still running.
func (s *Store) AddPayday(start, end time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paydays = append(s.paydays, Payday{Start: start, End: end})
}

// History returns every take row recorded for the pair, oldest first.
func (s *Store) History(teamID, memberID string) []domain.Take {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []domain.Take
	for _, t := range s.takes {
		if t.TeamID == teamID && t.MemberID == memberID {
			rows = append(rows, t)
		}
	}
	return rows
}

// Begin starts a new transaction.
func (s *Store) Begin(ctx context.Context) (usecase.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Tx{store: s}, nil
}

// Tx is an in-memory transaction. Writes are applied immediately and undone
// on rollback; the ledger lock is released on commit or rollback.
type Tx struct {
	store  *Store
	undo   []func()
	locked bool
	done   bool
}

// Commit commits the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("transaction already closed")
	}
	t.done = true
	t.undo = nil
	t.unlock()
	return nil
}

// Rollback undoes the transaction's writes. Rolling back a closed
// transaction is a no-op.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true

	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()

	t.undo = nil
	t.unlock()
	return nil
}

func (t *Tx) unlock() {
	if t.locked {
		t.locked = false
		<-t.store.ledger
	}
}

func asTx(tx usecase.Transaction) (*Tx, error) {
	mt, ok := tx.(*Tx)
	if !ok || mt.done {
		return nil, fmt.Errorf("memory: invalid or closed transaction")
	}
	return mt, nil
}

// Teams returns the team repository view of the store.
func (s *Store) Teams() *TeamRepository { return &TeamRepository{s: s} }

// Members returns the member repository view of the store.
func (s *Store) Members() *MemberRepository { return &MemberRepository{s: s} }

// Takes returns the take repository view of the store.
func (s *Store) Takes() *TakeRepository { return &TakeRepository{s: s} }

// TeamRepository implements usecase.TeamRepository.
type TeamRepository struct{ s *Store }

// GetByID retrieves a team by ID.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	team, ok := r.s.teams[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return &team, nil
}

// GetBySlug retrieves a team by slug, case-insensitively.
func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*domain.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := domain.SlugLower(slug)
	for _, team := range r.s.teams {
		if strings.ToLower(team.Slug) == key {
			return &team, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

// GetByIDForUpdate retrieves a team inside a transaction.
func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Team, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// MemberRepository implements usecase.MemberRepository.
type MemberRepository struct{ s *Store }

// GetByID retrieves a member by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	member, ok := r.s.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return &member, nil
}

// GetByIDTx retrieves a member inside a transaction.
func (r *MemberRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, id string) (*domain.Member, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ApplyBalanceDiff adds diff to the member's taking and receiving.
func (r *MemberRepository) ApplyBalanceDiff(ctx context.Context, tx usecase.Transaction, id string, diff decimal.Decimal) (usecase.BalanceUpdate, error) {
	mt, err := asTx(tx)
	if err != nil {
		return usecase.BalanceUpdate{}, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	before, ok := r.s.members[id]
	if !ok {
		return usecase.BalanceUpdate{}, domain.ErrMemberNotFound
	}

	after := before
	after.Taking = before.Taking.Add(diff)
	after.Receiving = before.Receiving.Add(diff)
	r.s.members[id] = after

	mt.undo = append(mt.undo, func() {
		m := r.s.members[id]
		m.Taking = m.Taking.Sub(diff)
		m.Receiving = m.Receiving.Sub(diff)
		r.s.members[id] = m
	})

	return usecase.BalanceUpdate{Taking: after.Taking, Receiving: after.Receiving}, nil
}

// TakeRepository implements usecase.TakeRepository.
type TakeRepository struct{ s *Store }

// LockLedger acquires the store-wide ledger lock for the rest of tx, waiting
// until ctx is done.
func (r *TakeRepository) LockLedger(ctx context.Context, tx usecase.Transaction) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	if mt.locked {
		return nil
	}

	select {
	case r.s.ledger <- struct{}{}:
		mt.locked = true
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrLockUnavailable, ctx.Err())
	}
}

// CurrentTakes returns the latest non-zero take per member, ctime descending.
func (r *TakeRepository) CurrentTakes(ctx context.Context, teamID string) ([]domain.Take, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.currentTakes(teamID), nil
}

// CurrentTakesTx is CurrentTakes inside a transaction.
func (r *TakeRepository) CurrentTakesTx(ctx context.Context, tx usecase.Transaction, teamID string) ([]domain.Take, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}
	return r.CurrentTakes(ctx, teamID)
}

// CurrentTake returns the member's current take, or nil.
func (r *TakeRepository) CurrentTake(ctx context.Context, teamID, memberID string) (*domain.Take, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.currentTakes(teamID) {
		if t.MemberID == memberID {
			return &t, nil
		}
	}
	return nil, nil
}

// LastTakeBefore returns the latest amount recorded before the given time.
func (r *TakeRepository) LastTakeBefore(ctx context.Context, teamID, memberID string, before time.Time) (decimal.Decimal, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest *domain.Take
	for i := range r.s.takes {
		t := &r.s.takes[i]
		if t.TeamID != teamID || t.MemberID != memberID || !t.MTime.Before(before) {
			continue
		}
		if latest == nil || newer(*t, *latest) {
			latest = t
		}
	}

	if latest == nil {
		return decimal.Zero, false, nil
	}
	return latest.Amount, true, nil
}

// Insert appends a take row, preserving the pair's original ctime.
func (r *TakeRepository) Insert(ctx context.Context, tx usecase.Transaction, take *domain.Take) (*domain.Take, error) {
	mt, err := asTx(tx)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teams[take.TeamID]; !ok {
		return nil, domain.ErrTeamNotFound
	}
	if _, ok := r.s.members[take.MemberID]; !ok {
		return nil, domain.ErrMemberNotFound
	}

	row := *take
	for _, t := range r.s.takes {
		if t.TeamID == row.TeamID && t.MemberID == row.MemberID {
			row.CTime = t.CTime
			break
		}
	}

	r.s.nextID++
	row.ID = r.s.nextID
	r.s.takes = append(r.s.takes, row)

	mt.undo = append(mt.undo, func() {
		r.s.takes = slices.DeleteFunc(r.s.takes, func(t domain.Take) bool { return t.ID == row.ID })
	})

	return &row, nil
}

// TeamsForMemberTx returns the ids of teams where the member has a current take.
func (r *TakeRepository) TeamsForMemberTx(ctx context.Context, tx usecase.Transaction, memberID string) ([]string, error) {
	if _, err := asTx(tx); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var ids []string
	for teamID := range r.s.teams {
		for _, t := range r.s.currentTakes(teamID) {
			if t.MemberID == memberID {
				ids = append(ids, teamID)
				break
			}
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// MostRecentlyCompletedPeriodStart returns the start of the latest payday
// that ended by now, or the zero time.
func (s *Store) MostRecentlyCompletedPeriodStart(ctx context.Context, now time.Time) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var start time.Time
	for _, p := range s.paydays {
		if p.End.After(p.Start) && !p.End.After(now) && p.Start.After(start) {
			start = p.Start
		}
	}
	return start, nil
}

// currentTakes must be called with s.mu held.
func (s *Store) currentTakes(teamID string) []domain.Take {
	latest := make(map[string]domain.Take)
	for _, t := range s.takes {
		if t.TeamID != teamID {
			continue
		}
		if cur, ok := latest[t.MemberID]; !ok || newer(t, cur) {
			latest[t.MemberID] = t
		}
	}

	takes := make([]domain.Take, 0, len(latest))
	for _, t := range latest {
		if t.Amount.IsPositive() {
			takes = append(takes, t)
		}
	}

	slices.SortFunc(takes, func(a, b domain.Take) int {
		if c := b.CTime.Compare(a.CTime); c != 0 {
			return c
		}
		return strings.Compare(a.MemberID, b.MemberID)
	})

	return takes
}

func newer(a, b domain.Take) bool {
	if !a.MTime.Equal(b.MTime) {
		return a.MTime.After(b.MTime)
	}
	return a.ID > b.ID
}
