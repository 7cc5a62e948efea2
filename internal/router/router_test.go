package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jdgk-cms/internal/cache"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/mail"
	"jdgk-cms/internal/metrics"
	"jdgk-cms/internal/middleware"
	"jdgk-cms/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func testDeps(c cache.Cache) Deps {
	return Deps{
		DB:        &database.FakeDB{},
		Cache:     c,
		Workers:   worker.NewPool(1, 1, slog.New(slog.NewTextHandler(io.Discard, nil))),
		Mailer:    &mail.FakeSender{},
		Metrics:   metrics.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		JWTSecret: "secret",
		JWTTTL:    time.Hour,
		ContactLimit: middleware.RateLimitConfig{
			Prefix: "contact",
			Limit:  1,
			Window: time.Minute,
		},
	}
}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, testDeps(&cache.FakeCache{}))

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /metrics",
		http.MethodGet + " /swagger/*",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/session",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/admin/users",
		http.MethodPost + " /api/admin/users",
		http.MethodGet + " /api/admin/users/:id",
		http.MethodPut + " /api/admin/users/:id",
		http.MethodPatch + " /api/admin/users/:id",
		http.MethodPut + " /api/admin/users/:id/role",
		http.MethodDelete + " /api/admin/users/:id",
		http.MethodGet + " /api/settings",
		http.MethodGet + " /api/settings/:key",
		http.MethodPost + " /api/settings/bulk_update",
		http.MethodGet + " /api/analytics_data",
		http.MethodPost + " /api/analytics_data",
		http.MethodPost + " /api/contact",
		http.MethodPost + " /api/storage/upload",
	}
	for _, res := range []string{"pages", "services", "blog_posts", "job_listings", "testimonials", "team_members"} {
		expected = append(expected,
			http.MethodGet+" /api/"+res,
			http.MethodPost+" /api/"+res,
			http.MethodGet+" /api/"+res+"/:id",
			http.MethodPut+" /api/"+res+"/:id",
			http.MethodPatch+" /api/"+res+"/:id",
			http.MethodDelete+" /api/"+res+"/:id",
		)
	}
	for _, res := range []string{"pages", "services", "blog_posts"} {
		expected = append(expected, http.MethodGet+" /api/"+res+"/slug/:slug")
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestSessionRequiresToken(t *testing.T) {
	e := echo.New()
	Setup(e, testDeps(&cache.FakeCache{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContactRateLimited(t *testing.T) {
	cch := &cache.FakeCache{
		IncrFn: func(context.Context, string) *redis.IntCmd { return redis.NewIntResult(2, nil) },
	}
	e := echo.New()
	Setup(e, testDeps(cch))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}
