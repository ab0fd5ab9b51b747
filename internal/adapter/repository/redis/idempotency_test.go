package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_CheckAndSetExisting(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, store.prefix+"key", `{"status":201}`, time.Minute).Err())

	exists, resp, err := store.CheckAndSet(ctx, "key", nil, time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, `{"status":201}`, string(resp))
}

func TestIdempotencyStore_CheckAndSetClaimsNewKey(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "pending", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, resp)

	val, err := mr.Get(store.prefix + "pending")
	require.NoError(t, err)
	assert.True(t, IsPending([]byte(val)))
	assert.Equal(t, time.Minute, mr.TTL(store.prefix+"pending"))
}

func TestIdempotencyStore_CheckAndSetWithResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "direct", []byte("body"), time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)

	val, err := mr.Get(store.prefix + "direct")
	require.NoError(t, err)
	assert.Equal(t, "body", val)
}

func TestIdempotencyStore_SecondClaimSeesPending(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "race", nil, time.Minute)
	require.NoError(t, err)

	exists, resp, err := store.CheckAndSet(ctx, "race", nil, time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, IsPending(resp))
}

func TestIdempotencyStore_UpdateAndRelease(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, "complete", []byte("done"), time.Minute))

	val, err := mr.Get(store.prefix + "complete")
	require.NoError(t, err)
	assert.Equal(t, "done", val)

	require.NoError(t, store.Release(ctx, "complete"))
	assert.False(t, mr.Exists(store.prefix+"complete"))
}

func TestIdempotencyStore_ConnectionError(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	mr.Close()

	_, _, err := store.CheckAndSet(context.Background(), "key", nil, time.Minute)
	assert.Error(t, err)
}

// expireBeforeGet deletes key just before the first GET reaches the server.
type expireBeforeGet struct {
	mr   *miniredis.Miniredis
	key  string
	gets int
}

func (h *expireBeforeGet) DialHook(next redislib.DialHook) redislib.DialHook { return next }

func (h *expireBeforeGet) ProcessHook(next redislib.ProcessHook) redislib.ProcessHook {
	return func(ctx context.Context, cmd redislib.Cmder) error {
		if cmd.Name() == "get" {
			h.gets++
			if h.gets == 1 {
				h.mr.Del(h.key)
			}
		}
		return next(ctx, cmd)
	}
}

func (h *expireBeforeGet) ProcessPipelineHook(next redislib.ProcessPipelineHook) redislib.ProcessPipelineHook {
	return next
}

func TestIdempotencyStore_ClaimsKeyThatExpiredMidCheck(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	fullKey := store.prefix + "flaky"
	require.NoError(t, client.Set(ctx, fullKey, `{"status":201}`, time.Minute).Err())
	client.AddHook(&expireBeforeGet{mr: mr, key: fullKey})

	exists, resp, err := store.CheckAndSet(ctx, "flaky", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, resp)

	val, err := mr.Get(fullKey)
	require.NoError(t, err)
	assert.True(t, IsPending([]byte(val)))
}
