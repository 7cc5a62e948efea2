// File: cmd/service/service.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/cache"
	"jdgk-cms/internal/config"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/mail"
	"jdgk-cms/internal/metrics"
	"jdgk-cms/internal/middleware"
	"jdgk-cms/internal/router"
	"jdgk-cms/internal/scheduler"
	"jdgk-cms/internal/service"
	"jdgk-cms/internal/store"
	"jdgk-cms/internal/upload"
	"jdgk-cms/internal/worker"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

var logOutput io.Writer = os.Stdout

// 以下變數供測試替換
var (
	loadConfig      = config.Load
	runMigrationsFn = database.RunMigrations
	newPgxPool      = database.NewPgxPool
	seedFn          = store.Seed
	newRedisClient  = cache.NewRedisClient
	newWorkerPool   = worker.NewPool
	newLocalStorage = func(dir string) (upload.Storage, error) { return upload.NewLocalStorage(dir) }
	newMinioStorage = func(ctx context.Context, cfg upload.MinioConfig) (upload.Storage, error) {
		return upload.NewMinioStorage(ctx, cfg)
	}
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	signalContext  = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := config.NewLogger(logOutput, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := service.SetHashCost(cfg.BcryptCost); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if err := seedFn(ctx, db, store.SeedOptions{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		AdminName:     cfg.AdminName,
	}, logger); err != nil {
		return fmt.Errorf("Seed 失敗: %w", err)
	}

	rdb, err := newRedisClient(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("upload storage: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, cfg.WorkerQueueSize, logger)
	defer wp.Stop()

	sched := scheduler.New(db, cfg.JobExpirySchedule, logger)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	m := metrics.New()
	e := newEcho(cfg, logger, m)
	router.Setup(e, router.Deps{
		DB:        db,
		Cache:     rdb,
		Workers:   wp,
		Mailer:    newMailer(cfg, logger),
		Storage:   storage,
		Metrics:   m,
		Logger:    logger,
		JWTSecret: cfg.JWTSecret,
		JWTTTL:    cfg.JWTTTL,
		ContactTo: cfg.ContactTo(),
		ContactLimit: middleware.RateLimitConfig{
			Prefix: "contact",
			Limit:  cfg.ContactRateLimit,
			Window: cfg.ContactRateWindow,
		},
		UploadDir:     localUploadDir(cfg),
		UploadMaxSize: cfg.UploadMaxBytes,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		errCh <- startServer(e, cfg.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.Warn("request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(m.Middleware())
	return e
}

// newMailer 未設定 SMTP_HOST 時只記錄不寄送
func newMailer(cfg *config.Config, logger *slog.Logger) mail.Sender {
	if !cfg.MailEnabled() {
		return mail.LogSender{Logger: logger}
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

func newStorage(ctx context.Context, cfg *config.Config) (upload.Storage, error) {
	if cfg.UseMinio() {
		return newMinioStorage(ctx, upload.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
	}
	return newLocalStorage(cfg.UploadDir)
}

// localUploadDir 使用 MinIO 時不提供 /uploads
func localUploadDir(cfg *config.Config) string {
	if cfg.UseMinio() {
		return ""
	}
	return cfg.UploadDir
}
