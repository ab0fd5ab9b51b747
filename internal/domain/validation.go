package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxNameLength     = 255
	MaxNotesLength    = 1024
	MaxCategoryLength = 64
	MaxQueryLength    = 2000
	MaxAmount         = "1000000000000" // 1 trillion
	// MaxAmountDecimals matches the scale of the NUMERIC amount columns.
	MaxAmountDecimals = 2
)

// ValidateAmount requires a positive amount below MaxAmount with at most
// MaxAmountDecimals fraction digits.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !HasMoneyPrecision(amount) {
		return fmt.Errorf("%w: at most %d decimal places", ErrInvalidAmount, MaxAmountDecimals)
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxAmount)
	}

	return nil
}

// HasMoneyPrecision reports whether amount is stored without rounding.
// Trailing zeros do not count: 1.500 is accepted.
func HasMoneyPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MaxAmountDecimals))
}

// ValidateName checks a required display name against sentinel.
func ValidateName(name string, sentinel error) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", sentinel)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", sentinel, MaxNameLength)
	}

	return nil
}

// ValidateCategory validates a daily expense category.
func ValidateCategory(category string) error {
	category = strings.TrimSpace(category)

	if category == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrInvalidCategory)
	}

	if len(category) > MaxCategoryLength {
		return fmt.Errorf("%w: category exceeds %d characters", ErrInvalidCategory, MaxCategoryLength)
	}

	return nil
}

// ValidateDate requires a zero-padded ISO calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return nil
}

// ValidateMonth checks a calendar year and month pair.
func ValidateMonth(year, month int) error {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return fmt.Errorf("%w: %d-%d", ErrInvalidMonth, year, month)
	}

	return nil
}

// ValidateQuery rejects blank or oversized mentor queries.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}

	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrQueryTooLong, MaxQueryLength)
	}

	return nil
}
