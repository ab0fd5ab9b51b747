package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultIncome is the monthly income assumed when none has been recorded.
const DefaultIncome = 40000

// Income is a monthly income record. Records are append-only; the most
// recently created one is the current income.
type Income struct {
	ID        string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// DefaultIncomeAmount returns DefaultIncome as a decimal.
func DefaultIncomeAmount() decimal.Decimal {
	return decimal.NewFromInt(DefaultIncome)
}
