package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/infrastructure/postgres/generated"
	"github.com/iho/takeledger/internal/usecase"
)

// MemberRepository implements usecase.MemberRepository over the participants table.
type MemberRepository struct {
	queries *generated.Queries
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return newMemberRepository(pool)
}

func newMemberRepository(db generated.DBTX) *MemberRepository {
	return &MemberRepository{queries: generated.New(db)}
}

// Create stores a new participant.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	_, err := r.queries.CreateParticipant(ctx, generated.CreateParticipantParams{
		ID:        member.ID,
		Username:  member.Username,
		IsClaimed: member.IsClaimed,
		IsAdmin:   member.IsAdmin,
	})

	return err
}

// GetByID retrieves a participant by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	row, err := r.queries.GetParticipantByID(ctx, id)
	if err != nil {
		return nil, memberError(err)
	}

	return rowToMember(row), nil
}

// GetByIDTx retrieves a participant inside tx.
func (r *MemberRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, id string) (*domain.Member, error) {
	queries := generated.New(pgxTx(tx))

	row, err := queries.GetParticipantByID(ctx, id)
	if err != nil {
		return nil, mapConcurrencyError(memberError(err))
	}

	return rowToMember(row), nil
}

// ApplyBalanceDiff adds diff to taking and receiving in a single UPDATE.
func (r *MemberRepository) ApplyBalanceDiff(ctx context.Context, tx usecase.Transaction, id string, diff decimal.Decimal) (usecase.BalanceUpdate, error) {
	queries := generated.New(pgxTx(tx))

	row, err := queries.ApplyTakingDiff(ctx, generated.ApplyTakingDiffParams{
		ID:   id,
		Diff: decimalToNumeric(diff),
	})
	if err != nil {
		return usecase.BalanceUpdate{}, mapConcurrencyError(memberError(err))
	}

	return usecase.BalanceUpdate{
		Taking:    numericToDecimal(row.Taking),
		Receiving: numericToDecimal(row.Receiving),
	}, nil
}

func memberError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrMemberNotFound
	}
	return err
}
