package domain

import (
	"fmt"
	"time"
)

// Default split applied when no allocation has been recorded.
const (
	DefaultSavingsPercent = 30
	DefaultNeedsPercent   = 50
	DefaultWantsPercent   = 20
)

// Allocation splits income into savings, needs and wants percentages.
type Allocation struct {
	ID        string
	Savings   int
	Needs     int
	Wants     int
	CreatedAt time.Time
}

// DefaultAllocation returns the 30/50/20 split.
func DefaultAllocation() Allocation {
	return Allocation{
		Savings: DefaultSavingsPercent,
		Needs:   DefaultNeedsPercent,
		Wants:   DefaultWantsPercent,
	}
}

// Validate requires every bucket to be set and the total to be exactly 100.
func (a Allocation) Validate() error {
	if a.Savings <= 0 || a.Needs <= 0 || a.Wants <= 0 {
		return ErrMissingAllocation
	}

	if total := a.Savings + a.Needs + a.Wants; total != 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidAllocation, total)
	}

	return nil
}
