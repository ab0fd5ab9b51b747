package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestGoal_MonthsToGoal(t *testing.T) {
	tests := []struct {
		timeline string
		months   int
		ok       bool
	}{
		{"10 years", 120, true},
		{"1 year", 12, true},
		{"  2 years", 24, true},
		{"3", 36, true},
		{"0 years", 0, true},
		{"-1 years", -12, true},
		{"soon", 0, false},
		{"", 0, false},
		{"years 5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.timeline, func(t *testing.T) {
			g := Goal{Timeline: tt.timeline}
			months, ok := g.MonthsToGoal()
			if ok != tt.ok || months != tt.months {
				t.Fatalf("MonthsToGoal(%q) = %d, %v; want %d, %v", tt.timeline, months, ok, tt.months, tt.ok)
			}
		})
	}
}

func TestGoal_MonthlyContribution(t *testing.T) {
	g := Goal{Amount: decimal.NewFromInt(24000), Current: decimal.Zero, Timeline: "2 years"}

	contribution, ok := g.MonthlyContribution()
	if !ok {
		t.Fatalf("expected contribution to be defined")
	}
	if !contribution.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected 1000, got %s", contribution)
	}

	for _, timeline := range []string{"soon", "0 years", "-3 years"} {
		g.Timeline = timeline
		if _, ok := g.MonthlyContribution(); ok {
			t.Fatalf("expected no contribution for timeline %q", timeline)
		}
	}
}

func TestGoal_PercentComplete(t *testing.T) {
	tests := []struct {
		amount  int64
		current int64
		want    int64
	}{
		{2000000, 120000, 6},
		{100000, 45000, 45},
		{50000, 15000, 30},
		{3, 2, 67},
		{100, 0, 0},
		{0, 10, 0},
	}

	for _, tt := range tests {
		g := Goal{Amount: decimal.NewFromInt(tt.amount), Current: decimal.NewFromInt(tt.current)}
		if got := g.PercentComplete(); !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Fatalf("PercentComplete(%d/%d) = %s, want %d", tt.current, tt.amount, got, tt.want)
		}
	}
}

func TestDefaultGoals(t *testing.T) {
	goals := DefaultGoals()
	if len(goals) != 3 {
		t.Fatalf("expected 3 default goals, got %d", len(goals))
	}

	for _, g := range goals {
		if !g.Selected {
			t.Fatalf("expected default goal %q to be selected", g.Name)
		}
		if _, ok := g.MonthlyContribution(); !ok {
			t.Fatalf("expected default goal %q to have a parseable timeline", g.Name)
		}
	}
}
