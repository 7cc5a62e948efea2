package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jdgk-cms/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func ipContext(ip string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.RemoteAddr = ip + ":5555"
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRateLimit(t *testing.T) {
	counts := map[string]int64{}
	var expiredKey string
	var expiredTTL time.Duration
	c := &cache.FakeCache{
		IncrFn: func(_ context.Context, key string) *redis.IntCmd {
			counts[key]++
			return redis.NewIntResult(counts[key], nil)
		},
		ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
			expiredKey, expiredTTL = key, ttl
			return redis.NewBoolResult(true, nil)
		},
	}
	mw := RateLimit(c, RateLimitConfig{Prefix: "contact", Limit: 2, Window: time.Minute}, discardLogger())
	next := func(echo.Context) error { return nil }

	require.NoError(t, mw(next)(ipContext("10.0.0.1")))
	require.Equal(t, "ratelimit:contact:10.0.0.1", expiredKey)
	require.Equal(t, time.Minute, expiredTTL)
	require.NoError(t, mw(next)(ipContext("10.0.0.1")))

	err := mw(next)(ipContext("10.0.0.1"))
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusTooManyRequests, he.Code)

	// 其他 IP 不受影響
	require.NoError(t, mw(next)(ipContext("10.0.0.2")))
}

func TestRateLimit_FailOpen(t *testing.T) {
	c := &cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("redis down"))
		},
	}
	called := false
	mw := RateLimit(c, RateLimitConfig{Prefix: "contact", Limit: 1, Window: time.Minute}, discardLogger())
	require.NoError(t, mw(func(echo.Context) error { called = true; return nil })(ipContext("10.0.0.3")))
	require.True(t, called)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := RateLimit(&cache.FakeCache{}, RateLimitConfig{Limit: 0}, discardLogger())
	require.NoError(t, mw(func(echo.Context) error { return nil })(ipContext("10.0.0.4")))
}
