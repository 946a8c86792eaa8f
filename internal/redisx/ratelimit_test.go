package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter(t *testing.T, max int) (*Limiter, *miniredis.Miniredis, *time.Time) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	now := time.Date(2025, 3, 1, 10, 0, 5, 0, time.UTC)
	l := NewOrderLimiter(client, max)
	l.Now = func() time.Time { return now }
	return l, mr, &now
}

func TestLimiter_AllowsUpToMax(t *testing.T) {
	l, _, _ := setupLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, _, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, retry, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 55*time.Second, retry)

	// other client unaffected
	ok, _, err = l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiter_NewWindowResets(t *testing.T) {
	l, _, now := setupLimiter(t, 1)
	ctx := context.Background()

	ok, _, _ := l.Allow(ctx, "ip")
	assert.True(t, ok)
	ok, _, _ = l.Allow(ctx, "ip")
	assert.False(t, ok)

	*now = now.Add(time.Minute)
	ok, _, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLimiter_SetsExpiry(t *testing.T) {
	l, mr, _ := setupLimiter(t, 5)
	_, _, err := l.Allow(context.Background(), "ip")
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, time.Minute, mr.TTL(keys[0]))
}

func TestLimiter_RedisDown(t *testing.T) {
	l, mr, _ := setupLimiter(t, 5)
	mr.Close()

	_, _, err := l.Allow(context.Background(), "ip")
	assert.Error(t, err)
}
