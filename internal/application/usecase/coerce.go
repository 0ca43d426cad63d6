package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eurocore-global/supplyhub-api/internal/domain"
	"github.com/eurocore-global/supplyhub-api/internal/domain/entity"
)

// parseCount coerces form text into a non-negative integer (quantities, lead
// days). Malformed or negative input is a validation error, not data to store.
func parseCount(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number: %w", field, domain.ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative: %w", field, domain.ErrInvalidInput)
	}
	return n, nil
}

// parseAmount coerces form text into a non-negative decimal amount.
func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be an amount: %w", field, domain.ErrInvalidInput)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative: %w", field, domain.ErrInvalidInput)
	}
	return d, nil
}

func validMembership(m string) bool {
	switch m {
	case entity.MembershipBasic, entity.MembershipModerate, entity.MembershipAdvanced:
		return true
	}
	return false
}
