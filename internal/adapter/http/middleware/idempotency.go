package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	redisrepo "github.com/iho/gobudget/internal/adapter/repository/redis"
	"github.com/iho/gobudget/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader marks a response served from the store.
	IdempotencyReplayHeader = "X-Idempotency-Replay"

	defaultIdempotencyTTL = 24 * time.Hour

	// storeTimeout bounds the writes made after the handler has returned.
	storeTimeout = 5 * time.Second
)

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// IdempotencyMiddleware replays the first successful response of a POST or
// PUT for requests carrying the same Idempotency-Key.
type IdempotencyMiddleware struct {
	store    usecase.IdempotencyStore
	ttl      time.Duration
	logger   zerolog.Logger
	onReplay func()
}

// IdempotencyOption configures an IdempotencyMiddleware.
type IdempotencyOption func(*IdempotencyMiddleware)

// WithTTL sets how long stored responses are kept.
func WithTTL(ttl time.Duration) IdempotencyOption {
	return func(m *IdempotencyMiddleware) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithReplayHook registers fn to run on every replayed response.
func WithReplayHook(fn func()) IdempotencyOption {
	return func(m *IdempotencyMiddleware) { m.onReplay = fn }
}

// WithLogger sets the logger used for store failures after a response is sent.
func WithLogger(logger zerolog.Logger) IdempotencyOption {
	return func(m *IdempotencyMiddleware) { m.logger = logger }
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, opts ...IdempotencyOption) *IdempotencyMiddleware {
	m := &IdempotencyMiddleware{
		store:    store,
		ttl:      defaultIdempotencyTTL,
		logger:   zerolog.Nop(),
		onReplay: func() {},
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(IdempotencyKeyHeader)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := r.Method + ":" + r.URL.Path + ":" + header

		exists, cached, err := m.store.CheckAndSet(ctx, key, nil, m.ttl)
		if err != nil {
			writeMiddlewareError(w, http.StatusInternalServerError, "idempotency check failed")
			return
		}

		if exists {
			if redisrepo.IsPending(cached) {
				writeMiddlewareError(w, http.StatusConflict, "request with this idempotency key is in progress")
				return
			}

			var stored storedResponse
			if err := json.Unmarshal(cached, &stored); err != nil {
				writeMiddlewareError(w, http.StatusInternalServerError, "corrupt idempotency record")
				return
			}

			m.onReplay()
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(IdempotencyReplayHeader, "true")
			w.WriteHeader(stored.Status)
			_, _ = w.Write(stored.Body)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}

		// Runs on panics as well; the panic keeps unwinding afterwards.
		succeeded := false
		defer func() {
			if !succeeded {
				m.release(ctx, key, header)
			}
		}()

		next.ServeHTTP(recorder, r)

		if recorder.statusCode < 200 || recorder.statusCode >= 300 {
			return
		}
		succeeded = true

		m.save(ctx, key, header, storedResponse{
			Status: recorder.statusCode,
			Body:   json.RawMessage(bytes.TrimSpace(recorder.body.Bytes())),
		})
	})
}

// storeContext detaches from the request so a client hanging up after the
// handler ran does not leave the key at the pending marker.
func storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
}

func (m *IdempotencyMiddleware) release(ctx context.Context, key, header string) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	if err := m.store.Release(ctx, key); err != nil {
		m.logger.Warn().Err(err).Str("key", header).Msg("failed to release idempotency key")
	}
}

func (m *IdempotencyMiddleware) save(ctx context.Context, key, header string, resp storedResponse) {
	record, err := json.Marshal(resp)
	if err != nil {
		m.logger.Warn().Err(err).Str("key", header).Msg("failed to encode idempotent response")
		m.release(ctx, key, header)
		return
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	if err := m.store.Update(ctx, key, record, m.ttl); err != nil {
		m.logger.Warn().Err(err).Str("key", header).Msg("failed to store idempotent response")
	}
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func writeMiddlewareError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
