package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
)

var (
	// ErrInconsistentTaking is returned when a member's taking does not match
	// the sum of their actual takes.
	ErrInconsistentTaking = errors.New("member taking does not match actual takes")
)

// AuditUseCase checks member aggregates against recomputed distributions.
type AuditUseCase struct {
	txManager  TransactionManager
	teamRepo   TeamRepository
	memberRepo MemberRepository
	takeRepo   TakeRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(
	txManager TransactionManager,
	teamRepo TeamRepository,
	memberRepo MemberRepository,
	takeRepo TakeRepository,
) *AuditUseCase {
	return &AuditUseCase{
		txManager:  txManager,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		takeRepo:   takeRepo,
	}
}

// MemberAudit is the result of checking one member.
type MemberAudit struct {
	MemberID       string
	RecordedTaking decimal.Decimal
	ActualTaking   decimal.Decimal
	Difference     decimal.Decimal
	Teams          []string
	Consistent     bool
	CheckedAt      time.Time
}

// TeamAudit is the result of checking every member of a team.
type TeamAudit struct {
	TeamID        string
	Members       []*MemberAudit
	Discrepancies []*MemberAudit
	Consistent    bool
	CheckedAt     time.Time
}

// CheckMember compares the member's taking with the sum of their actual takes
// across all teams. It holds the ledger lock so it sees a committed state.
func (uc *AuditUseCase) CheckMember(ctx context.Context, memberID string) (*MemberAudit, error) {
	if err := domain.ValidateID("member", memberID); err != nil {
		return nil, err
	}

	var result *MemberAudit
	err := uc.locked(ctx, func(tx Transaction) error {
		audit, err := uc.checkMember(ctx, tx, memberID)
		result = audit
		return err
	})
	if err != nil {
		return nil, err
	}

	if !result.Consistent {
		return result, ErrInconsistentTaking
	}

	return result, nil
}

// CheckTeam audits every current member of the team.
func (uc *AuditUseCase) CheckTeam(ctx context.Context, teamID string) (*TeamAudit, error) {
	if err := domain.ValidateID("team", teamID); err != nil {
		return nil, err
	}

	report := &TeamAudit{
		TeamID:        teamID,
		Discrepancies: make([]*MemberAudit, 0),
		CheckedAt:     time.Now().UTC(),
	}

	err := uc.locked(ctx, func(tx Transaction) error {
		takes, err := uc.takeRepo.CurrentTakesTx(ctx, tx, teamID)
		if err != nil {
			return err
		}

		for _, take := range takes {
			audit, err := uc.checkMember(ctx, tx, take.MemberID)
			if err != nil {
				return fmt.Errorf("failed to audit member %s: %w", take.MemberID, err)
			}

			report.Members = append(report.Members, audit)
			if !audit.Consistent {
				report.Discrepancies = append(report.Discrepancies, audit)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Consistent = len(report.Discrepancies) == 0
	if !report.Consistent {
		return report, ErrInconsistentTaking
	}

	return report, nil
}

func (uc *AuditUseCase) checkMember(ctx context.Context, tx Transaction, memberID string) (*MemberAudit, error) {
	member, err := uc.memberRepo.GetByIDTx(ctx, tx, memberID)
	if err != nil {
		return nil, err
	}

	teamIDs, err := uc.takeRepo.TeamsForMemberTx(ctx, tx, memberID)
	if err != nil {
		return nil, err
	}

	actual := decimal.Zero
	for _, teamID := range teamIDs {
		team, err := uc.teamRepo.GetByIDForUpdate(ctx, tx, teamID)
		if err != nil {
			return nil, err
		}

		takes, err := uc.takeRepo.CurrentTakesTx(ctx, tx, teamID)
		if err != nil {
			return nil, err
		}

		dist, err := domain.Distribute(team, takes)
		if err != nil {
			return nil, err
		}

		actual = actual.Add(dist.ActualFor(memberID))
	}

	diff := member.Taking.Sub(actual)

	return &MemberAudit{
		MemberID:       memberID,
		RecordedTaking: member.Taking,
		ActualTaking:   actual,
		Difference:     diff,
		Teams:          teamIDs,
		Consistent:     diff.IsZero(),
		CheckedAt:      time.Now().UTC(),
	}, nil
}

// locked runs fn in a read transaction holding the ledger lock. Nothing is
// written, so the transaction is always rolled back.
func (uc *AuditUseCase) locked(ctx context.Context, fn func(tx Transaction) error) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.takeRepo.LockLedger(ctx, tx); err != nil {
		return err
	}

	return fn(tx)
}
