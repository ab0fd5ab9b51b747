package usecase

type nopMetrics struct{}

func (nopMetrics) AdviceServed(string)      {}
func (nopMetrics) ExpenseCreated(string)    {}
func (nopMetrics) FinanceScoreObserved(int) {}

func metricsOrNop(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return nopMetrics{}
	}

	return m
}
