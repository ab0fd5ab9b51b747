package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by daily expenses.
const DateLayout = "2006-01-02"

// MonthlyExpense is a fixed cost. It carries no date and always counts
// toward the current month.
type MonthlyExpense struct {
	ID          string
	Name        string
	Amount      decimal.Decimal
	IsRecurring bool
	CreatedAt   time.Time
}

// DailyExpense is a one-off spend on a calendar date.
type DailyExpense struct {
	ID        string
	Amount    decimal.Decimal
	Category  string
	Notes     string
	Date      string
	CreatedAt time.Time
}

// DefaultMonthlyExpenses returns the bills seeded into an empty expense list.
func DefaultMonthlyExpenses() []MonthlyExpense {
	return []MonthlyExpense{
		{Name: "Petrol", Amount: decimal.NewFromInt(900), IsRecurring: true},
		{Name: "Mobile Recharge", Amount: decimal.NewFromInt(267), IsRecurring: true},
		{Name: "Gym", Amount: decimal.NewFromInt(1500), IsRecurring: true},
		{Name: "Diet/Trainer", Amount: decimal.NewFromInt(1500), IsRecurring: true},
	}
}

// MonthRange returns the first and last ISO dates of the given month.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return first.Format(DateLayout), last.Format(DateLayout)
}
