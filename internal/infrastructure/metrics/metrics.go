package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the budget domain Prometheus metrics. It implements
// usecase.MetricsRecorder.
type Metrics struct {
	AdviceAnswers     *prometheus.CounterVec
	ExpensesCreated   *prometheus.CounterVec
	FinanceScore      prometheus.Gauge
	FinanceScores     prometheus.Histogram
	IdempotentReplays prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AdviceAnswers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobudget_advice_served_total",
				Help: "Mentor answers served by intent",
			},
			[]string{"intent"},
		),
		ExpensesCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobudget_expenses_created_total",
				Help: "Expenses recorded by kind",
			},
			[]string{"kind"},
		),
		FinanceScore: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gobudget_finance_score",
			Help: "Most recently computed finance score",
		}),
		FinanceScores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobudget_finance_score_distribution",
			Help:    "Distribution of computed finance scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		IdempotentReplays: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobudget_idempotent_replays_total",
			Help: "Responses replayed from the idempotency store",
		}),
	}
}

// AdviceServed counts one mentor answer.
func (m *Metrics) AdviceServed(intent string) {
	m.AdviceAnswers.WithLabelValues(intent).Inc()
}

// ExpenseCreated counts one recorded expense.
func (m *Metrics) ExpenseCreated(kind string) {
	m.ExpensesCreated.WithLabelValues(kind).Inc()
}

// FinanceScoreObserved records a computed finance score.
func (m *Metrics) FinanceScoreObserved(score int) {
	m.FinanceScore.Set(float64(score))
	m.FinanceScores.Observe(float64(score))
}

// IdempotentReplay counts a response served from the idempotency store.
func (m *Metrics) IdempotentReplay() {
	m.IdempotentReplays.Inc()
}
