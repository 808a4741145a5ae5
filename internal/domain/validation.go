package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxSlugLength = 255
	MaxIDLength   = 64
	MaxTakeAmount = "1000000000" // 1 billion
)

var slugRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidateSlug validates a team slug.
func ValidateSlug(slug string) error {
	slug = strings.TrimSpace(slug)

	if slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if len(slug) > MaxSlugLength {
		return fmt.Errorf("%w: slug exceeds %d characters", ErrInvalidInput, MaxSlugLength)
	}

	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("%w: slug contains forbidden characters", ErrInvalidInput)
	}

	return nil
}

// ValidateID validates a participant or team identifier.
func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s id is required", ErrInvalidInput, kind)
	}

	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: %s id exceeds %d characters", ErrInvalidInput, kind, MaxIDLength)
	}

	return nil
}

// NormalizeAmount validates a take amount and sets it to MoneyScale. Amounts
// with fractions of a cent are rejected, never rounded.
func NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}

	rounded := amount.Round(MoneyScale)
	if !rounded.Equal(amount) {
		return decimal.Zero, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, MoneyScale)
	}

	maxAmount := decimal.RequireFromString(MaxTakeAmount)
	if amount.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: maximum take is %s", ErrInvalidAmount, MaxTakeAmount)
	}

	return rounded, nil
}
