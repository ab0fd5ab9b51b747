package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)
	m.AdviceServed("status")
	m.ExpenseCreated("daily")
	m.FinanceScoreObserved(70)
	m.IdempotentReplay()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(metricFamilies))
	}
}

func TestRecorderUpdatesValues(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AdviceServed("goals")
	m.AdviceServed("goals")
	m.AdviceServed("summary")
	m.ExpenseCreated("monthly")
	m.FinanceScoreObserved(100)
	m.FinanceScoreObserved(50)

	if got := testutil.ToFloat64(m.AdviceAnswers.WithLabelValues("goals")); got != 2 {
		t.Fatalf("expected 2 goals answers, got %v", got)
	}
	if got := testutil.ToFloat64(m.ExpensesCreated.WithLabelValues("monthly")); got != 1 {
		t.Fatalf("expected 1 monthly expense, got %v", got)
	}
	if got := testutil.ToFloat64(m.FinanceScore); got != 50 {
		t.Fatalf("expected latest score 50, got %v", got)
	}
	if got := testutil.CollectAndCount(m.FinanceScores); got != 1 {
		t.Fatalf("expected one histogram series, got %d", got)
	}
}
