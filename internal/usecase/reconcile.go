package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/takeledger/internal/domain"
)

// BalanceDiff is one applied change to a member's aggregates.
type BalanceDiff struct {
	MemberID  string
	Diff      decimal.Decimal
	Taking    decimal.Decimal
	Receiving decimal.Decimal
}

// ReconcileBalances applies the change in actual amount between oldTakes and
// newTakes to the taking and receiving of every member in either distribution,
// skipping the team's own entry and zero diffs. It must run in the same
// transaction as the take insert.
//
// When acting is one of the reconciled members, its cached balances are
// refreshed from the stored values.
func ReconcileBalances(
	ctx context.Context,
	tx Transaction,
	members MemberRepository,
	oldTakes, newTakes *domain.Distribution,
	acting TakeMember,
) ([]BalanceDiff, error) {
	teamID := newTakes.TeamID
	if teamID == "" {
		teamID = oldTakes.TeamID
	}

	var diffs []BalanceDiff
	for _, memberID := range unionKeys(oldTakes, newTakes) {
		if memberID == teamID {
			continue
		}

		diff := newTakes.ActualFor(memberID).Sub(oldTakes.ActualFor(memberID))
		if diff.IsZero() {
			continue
		}

		update, err := members.ApplyBalanceDiff(ctx, tx, memberID, diff)
		if err != nil {
			return nil, fmt.Errorf("apply balance diff for %s: %w", memberID, err)
		}

		if acting != nil && acting.MemberID() == memberID {
			acting.SetBalances(update.Taking, update.Receiving)
		}

		diffs = append(diffs, BalanceDiff{
			MemberID:  memberID,
			Diff:      diff,
			Taking:    update.Taking,
			Receiving: update.Receiving,
		})
	}

	return diffs, nil
}

// unionKeys returns a's keys followed by keys only present in b.
func unionKeys(a, b *domain.Distribution) []string {
	keys := a.Keys()
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	for _, k := range b.Keys() {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
