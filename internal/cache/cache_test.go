package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()
	c := &FakeCache{}
	require.Panics(t, func() { c.Ping(ctx) })
	require.Panics(t, func() { c.Set(ctx, "k", 1, 0) })
	require.Panics(t, func() { c.Incr(ctx, "k") })
	require.Panics(t, func() { c.Expire(ctx, "k", time.Second) })
	require.NoError(t, c.Close())

	var expired time.Duration
	clCalled := false
	c.PingFn = func(context.Context) *redis.StatusCmd { return redis.NewStatusResult("PONG", nil) }
	c.SetFn = func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("OK", nil)
	}
	c.IncrFn = func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(3, nil) }
	c.ExpireFn = func(_ context.Context, _ string, exp time.Duration) *redis.BoolCmd {
		expired = exp
		return redis.NewBoolResult(true, nil)
	}
	c.CloseFn = func() error { clCalled = true; return errors.New("close") }

	require.Equal(t, "PONG", c.Ping(ctx).Val())
	require.Equal(t, "OK", c.Set(ctx, "k", 1, 0).Val())
	require.EqualValues(t, 3, c.Incr(ctx, "k").Val())
	require.True(t, c.Expire(ctx, "k", time.Minute).Val())
	require.Equal(t, time.Minute, expired)
	require.EqualError(t, c.Close(), "close")
	require.True(t, clCalled)
}
