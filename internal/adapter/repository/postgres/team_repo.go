package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/infrastructure/postgres/generated"
	"github.com/iho/takeledger/internal/usecase"
)

// TeamRepository implements usecase.TeamRepository.
type TeamRepository struct {
	queries *generated.Queries
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return newTeamRepository(pool)
}

func newTeamRepository(db generated.DBTX) *TeamRepository {
	return &TeamRepository{queries: generated.New(db)}
}

// Create stores a new team.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	_, err := r.queries.CreateTeam(ctx, generated.CreateTeamParams{
		ID:        team.ID,
		Slug:      team.Slug,
		Name:      team.Name,
		Owner:     team.Owner,
		IsPlural:  team.IsPlural,
		Balance:   decimalToNumeric(team.Balance),
		Receiving: decimalToNumeric(team.Receiving),
		Giving:    decimalToNumeric(team.Giving),
	})

	return err
}

// GetByID retrieves a team by ID.
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	row, err := r.queries.GetTeamByID(ctx, id)
	if err != nil {
		return nil, teamError(err)
	}

	return rowToTeam(row), nil
}

// GetBySlug retrieves a team by its case-insensitive slug.
func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*domain.Team, error) {
	row, err := r.queries.GetTeamBySlug(ctx, domain.SlugLower(slug))
	if err != nil {
		return nil, teamError(err)
	}

	return rowToTeam(row), nil
}

// GetByIDForUpdate retrieves a team by ID with a FOR UPDATE lock.
func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Team, error) {
	queries := generated.New(pgxTx(tx))

	row, err := queries.GetTeamByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapConcurrencyError(teamError(err))
	}

	return rowToTeam(row), nil
}

func teamError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrTeamNotFound
	}
	return err
}
