package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateSlug(t *testing.T) {
	t.Parallel()

	t.Run("valid slug", func(t *testing.T) {
		if err := ValidateSlug("Gratiteam"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty slug rejected", func(t *testing.T) {
		err := ValidateSlug("   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("slug too long", func(t *testing.T) {
		err := ValidateSlug(strings.Repeat("a", MaxSlugLength+1))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("slug with spaces", func(t *testing.T) {
		err := ValidateSlug("the team")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	if err := ValidateID("member", "alice"); err != nil {
		t.Fatalf("expected valid id, got %v", err)
	}

	if err := ValidateID("member", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if err := ValidateID("member", strings.Repeat("x", MaxIDLength+1)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long id, got %v", err)
	}
}

func TestNormalizeAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  string
		want    string
		wantErr error
	}{
		{name: "zero", amount: "0", want: "0.00"},
		{name: "cents", amount: "12.34", want: "12.34"},
		{name: "trailing zeros", amount: "12.3400", want: "12.34"},
		{name: "fraction of a cent", amount: "12.345", wantErr: ErrInvalidAmount},
		{name: "rounds down to zero", amount: "0.004", wantErr: ErrInvalidAmount},
		{name: "rounds up to a dollar", amount: "0.999", wantErr: ErrInvalidAmount},
		{name: "negative", amount: "-0.01", wantErr: ErrInvalidAmount},
		{name: "too large", amount: "1000000000.01", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
