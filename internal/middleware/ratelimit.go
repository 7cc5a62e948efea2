// File: internal/middleware/ratelimit.go
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"jdgk-cms/internal/cache"

	"github.com/labstack/echo/v4"
)

type RateLimitConfig struct {
	// Prefix 區分不同路由的計數，例如 "contact"
	Prefix string
	Limit  int64
	Window time.Duration
}

// RateLimit 以 Redis INCR + EXPIRE 做固定視窗限流，依 client IP 計數。
// Redis 失敗時放行並記錄 warning。
func RateLimit(c cache.Cache, cfg RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if cfg.Limit <= 0 {
				return next(ctx)
			}
			reqCtx := ctx.Request().Context()
			key := "ratelimit:" + cfg.Prefix + ":" + ctx.RealIP()

			n, err := c.Incr(reqCtx, key).Result()
			if err != nil {
				logger.Warn("rate limit unavailable", "key", key, "error", err)
				return next(ctx)
			}
			if n == 1 {
				if err := c.Expire(reqCtx, key, cfg.Window).Err(); err != nil {
					logger.Warn("rate limit expire failed", "key", key, "error", err)
				}
			}
			if n > cfg.Limit {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(ctx)
		}
	}
}
