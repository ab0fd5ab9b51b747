package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultGoalIcon is used when a goal is created without an icon.
const DefaultGoalIcon = "Target"

// Goal is a savings target. Timeline is free text such as "10 years"; only
// its leading integer is interpreted, always as years.
type Goal struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Current   decimal.Decimal
	Timeline  string
	Icon      string
	Selected  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthsToGoal returns the timeline's leading integer times twelve. ok is
// false when the timeline has no leading integer.
func (g *Goal) MonthsToGoal() (months int, ok bool) {
	years, ok := leadingInt(g.Timeline)
	if !ok {
		return 0, false
	}

	return years * 12, true
}

// MonthlyContribution is the amount still missing spread over the timeline.
// ok is false when the timeline yields no positive number of months.
func (g *Goal) MonthlyContribution() (decimal.Decimal, bool) {
	months, ok := g.MonthsToGoal()
	if !ok || months <= 0 {
		return decimal.Zero, false
	}

	return g.Amount.Sub(g.Current).Div(decimal.NewFromInt(int64(months))), true
}

// PercentComplete returns current/amount as a whole percentage.
func (g *Goal) PercentComplete() decimal.Decimal {
	if !g.Amount.IsPositive() {
		return decimal.Zero
	}

	return g.Current.Div(g.Amount).Mul(decimal.NewFromInt(100)).Round(0)
}

// DefaultGoals returns the goals seeded into an empty goal list.
func DefaultGoals() []Goal {
	return []Goal{
		{
			Name:     "Buy a House in Mumbai",
			Amount:   decimal.NewFromInt(2000000),
			Current:  decimal.NewFromInt(120000),
			Timeline: "10 years",
			Icon:     "Home",
			Selected: true,
		},
		{
			Name:     "Emergency Fund",
			Amount:   decimal.NewFromInt(100000),
			Current:  decimal.NewFromInt(45000),
			Timeline: "1 year",
			Icon:     "Briefcase",
			Selected: true,
		},
		{
			Name:     "Financial support for family",
			Amount:   decimal.NewFromInt(50000),
			Current:  decimal.NewFromInt(15000),
			Timeline: "5 years",
			Icon:     "Users",
			Selected: true,
		},
	}
}

// leadingInt parses an optionally signed integer prefix, ignoring leading
// whitespace and anything after the digits.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}
