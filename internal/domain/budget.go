package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Amounts holds the income allocated to each bucket.
type Amounts struct {
	Savings decimal.Decimal
	Needs   decimal.Decimal
	Wants   decimal.Decimal
}

// BudgetInput is the snapshot of financial records a budget is computed from.
type BudgetInput struct {
	Income          decimal.Decimal
	Allocation      Allocation
	MonthlyExpenses []MonthlyExpense
	DailyExpenses   []DailyExpense
}

// BudgetMetrics are the figures derived from a BudgetInput on a given day.
type BudgetMetrics struct {
	Amounts                     Amounts
	TotalMonthlyExpenses        decimal.Decimal
	TotalDailyExpensesThisMonth decimal.Decimal
	TotalSpentToday             decimal.Decimal
	TotalBudget                 decimal.Decimal
	TotalSpent                  decimal.Decimal
	RemainingBudget             decimal.Decimal
	DailyBudget                 decimal.Decimal
	MonthlySavings              decimal.Decimal
	YearlyProjection            decimal.Decimal
	FinanceScore                int
	DaysRemainingInMonth        int
}

// CalculateBudget derives budget metrics as of the calendar day of asOf.
//
// Savings are not spendable: the budget is needs plus wants, and any spend
// beyond it is taken out of savings. Monthly expenses always count toward
// the month of asOf. The allocation is used as given, even when it does not
// sum to 100.
func CalculateBudget(in BudgetInput, asOf time.Time) BudgetMetrics {
	amounts := Amounts{
		Savings: allocate(in.Income, in.Allocation.Savings),
		Needs:   allocate(in.Income, in.Allocation.Needs),
		Wants:   allocate(in.Income, in.Allocation.Wants),
	}

	totalMonthly := decimal.Zero
	for _, e := range in.MonthlyExpenses {
		totalMonthly = totalMonthly.Add(e.Amount)
	}

	today := asOf.Format(DateLayout)
	thisMonth := decimal.Zero
	spentToday := decimal.Zero
	for _, e := range in.DailyExpenses {
		if sameMonth(e.Date, asOf) {
			thisMonth = thisMonth.Add(e.Amount)
		}
		if e.Date == today {
			spentToday = spentToday.Add(e.Amount)
		}
	}

	totalBudget := amounts.Needs.Add(amounts.Wants)
	totalSpent := totalMonthly.Add(thisMonth)
	remaining := totalBudget.Sub(totalSpent)

	daysRemaining := DaysRemainingInMonth(asOf)
	dailyBudget := remaining.Div(decimal.NewFromInt(int64(daysRemaining)))

	monthlySavings := amounts.Savings
	if totalSpent.GreaterThan(totalBudget) {
		monthlySavings = monthlySavings.Sub(totalSpent.Sub(totalBudget))
	}

	return BudgetMetrics{
		Amounts:                     amounts,
		TotalMonthlyExpenses:        totalMonthly,
		TotalDailyExpensesThisMonth: thisMonth,
		TotalSpentToday:             spentToday,
		TotalBudget:                 totalBudget,
		TotalSpent:                  totalSpent,
		RemainingBudget:             remaining,
		DailyBudget:                 dailyBudget,
		MonthlySavings:              monthlySavings,
		YearlyProjection:            monthlySavings.Mul(twelve),
		FinanceScore:                financeScore(in.Income, monthlySavings, totalSpent, totalBudget),
		DaysRemainingInMonth:        daysRemaining,
	}
}

// DaysRemainingInMonth counts the days left in asOf's month, asOf included.
func DaysRemainingInMonth(asOf time.Time) int {
	lastDay := time.Date(asOf.Year(), asOf.Month()+1, 0, 0, 0, 0, 0, asOf.Location()).Day()
	return lastDay - asOf.Day() + 1
}

// allocate rounds half away from zero.
func allocate(income decimal.Decimal, percent int) decimal.Decimal {
	return income.Mul(decimal.NewFromInt(int64(percent))).Div(hundred).Round(0)
}

func sameMonth(date string, asOf time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}

	return d.Year() == asOf.Year() && d.Month() == asOf.Month()
}

func financeScore(income, monthlySavings, totalSpent, totalBudget decimal.Decimal) int {
	score := 50
	if monthlySavings.IsPositive() {
		score = 70
	}

	if totalSpent.LessThan(income) {
		score += 20
	} else {
		score -= 10
	}

	if totalSpent.LessThan(totalBudget) {
		score += 10
	} else {
		score -= 20
	}

	return min(100, max(0, score))
}
