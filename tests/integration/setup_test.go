package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/gobudget/internal/adapter/http"
	"github.com/iho/gobudget/internal/adapter/http/handler"
	"github.com/iho/gobudget/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/gobudget/internal/adapter/repository/redis"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
	"github.com/iho/gobudget/internal/usecase"
	"github.com/iho/gobudget/tests/testutil"
)

var kolkata = time.FixedZone("IST", 5*60*60+30*60)

// fixedNow is mid-March so the month has days on both sides.
var fixedNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, kolkata)

type app struct {
	db     *testutil.TestDB
	router http.Handler
}

func newApp(t *testing.T) *app {
	t.Helper()

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	redisClient := testutil.NewTestRedis(t)

	pool := testDB.Pool
	clock := testutil.FixedClock{At: fixedNow}
	logger := zerolog.Nop()

	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier(logger)
	idGen := postgres.NewULIDGenerator()
	m := metrics.New(prometheus.NewRegistry())

	incomeRepo := postgres.NewIncomeRepository(pool)
	allocationRepo := postgres.NewAllocationRepository(pool)
	monthlyRepo := postgres.NewMonthlyExpenseRepository(pool)
	dailyRepo := postgres.NewDailyExpenseRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	conversationRepo := postgres.NewConversationRepository(pool)

	loader := usecase.NewSnapshotLoader(incomeRepo, allocationRepo, monthlyRepo, dailyRepo, goalRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		IncomeHandler:         handler.NewIncomeHandler(usecase.NewIncomeUseCase(incomeRepo, idGen, clock)),
		AllocationHandler:     handler.NewAllocationHandler(usecase.NewAllocationUseCase(allocationRepo, idGen, clock)),
		GoalHandler:           handler.NewGoalHandler(usecase.NewGoalUseCase(txManager, retrier, goalRepo, idGen, clock)),
		MonthlyExpenseHandler: handler.NewMonthlyExpenseHandler(usecase.NewMonthlyExpenseUseCase(txManager, retrier, monthlyRepo, idGen, clock, m)),
		DailyExpenseHandler:   handler.NewDailyExpenseHandler(usecase.NewDailyExpenseUseCase(dailyRepo, idGen, clock, m)),
		DashboardHandler:      handler.NewDashboardHandler(usecase.NewDashboardUseCase(loader, dailyRepo, m), clock),
		MentorHandler: handler.NewMentorHandler(
			usecase.NewAdviceUseCase(loader, clock, m),
			usecase.NewConversationUseCase(txManager, retrier, conversationRepo, clock),
		),
		HealthHandler: handler.NewHealthHandler(
			handler.PostgresCheck(pool),
			handler.RedisCheck(redisClient),
		),
		IdempotencyStore:   redisrepo.NewIdempotencyStore(redisClient),
		OnIdempotentReplay: m.IdempotentReplay,
		Logger:             logger,
	})

	return &app{db: testDB, router: router}
}

func (a *app) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to parse response %q: %v", w.Body.String(), err)
	}

	return v
}
