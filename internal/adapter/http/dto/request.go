package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SetTakeRequest is the request body for setting a member's take.
// RecorderID is only read when authentication is disabled.
type SetTakeRequest struct {
	Amount     string `json:"amount"`
	RecorderID string `json:"recorder_id,omitempty"`
}

// ParseAmount parses the requested amount.
func (r *SetTakeRequest) ParseAmount() (decimal.Decimal, error) {
	return parseAmount(r.Amount)
}

// AddMemberRequest is the request body for adding a member to a team.
type AddMemberRequest struct {
	MemberID   string `json:"member_id"`
	RecorderID string `json:"recorder_id,omitempty"`
}

// RemoveMemberRequest is the optional request body for removing a member.
type RemoveMemberRequest struct {
	RecorderID string `json:"recorder_id,omitempty"`
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return amount, nil
}
