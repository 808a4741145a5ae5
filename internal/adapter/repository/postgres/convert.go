package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/infrastructure/postgres/generated"
)

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func rowToTeam(row generated.Team) *domain.Team {
	return &domain.Team{
		ID:        row.ID,
		Slug:      row.Slug,
		Name:      row.Name,
		Owner:     row.Owner,
		IsPlural:  row.IsPlural,
		Balance:   numericToDecimal(row.Balance),
		Receiving: numericToDecimal(row.Receiving),
		Giving:    numericToDecimal(row.Giving),
	}
}

func rowToMember(row generated.Participant) *domain.Member {
	return &domain.Member{
		ID:        row.ID,
		Username:  row.Username,
		IsClaimed: row.IsClaimed,
		IsAdmin:   row.IsAdmin,
		Taking:    numericToDecimal(row.Taking),
		Receiving: numericToDecimal(row.Receiving),
	}
}

func rowToTake(row generated.CurrentTake) domain.Take {
	return domain.Take{
		ID:         row.ID,
		TeamID:     row.Team,
		MemberID:   row.Member,
		Amount:     numericToDecimal(row.Amount),
		CTime:      row.Ctime.Time,
		MTime:      row.Mtime.Time,
		RecorderID: row.Recorder,
	}
}
