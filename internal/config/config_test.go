package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func noDotenv(t *testing.T) {
	t.Helper()
	loadDotenv = func() error { return nil }
	t.Cleanup(func() { loadDotenv = func() error { return godotenv.Load() } })
}

func TestLoad_Defaults(t *testing.T) {
	noDotenv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/cms")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	require.Equal(t, int32(10), cfg.DBMaxConns)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, "admin@jdgkbsi.ph", cfg.AdminEmail)
	require.Equal(t, "@hourly", cfg.JobExpirySchedule)
	require.Equal(t, int64(10<<20), cfg.UploadMaxBytes)
	require.False(t, cfg.MailEnabled())
	require.False(t, cfg.UseMinio())
	require.Equal(t, "info@jdgkbsi.ph", cfg.ContactTo())
}

func TestLoad_Overrides(t *testing.T) {
	noDotenv(t)
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.ph,https://b.ph")
	t.Setenv("CONTACT_RECIPIENT", "sales@jdgkbsi.ph")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("CONTACT_RATE_WINDOW", "1m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.ph", "https://b.ph"}, cfg.CORSAllowOrigins)
	require.Equal(t, "sales@jdgkbsi.ph", cfg.ContactTo())
	require.True(t, cfg.MailEnabled())
	require.True(t, cfg.UseMinio())
	require.Equal(t, time.Minute, cfg.ContactRateWindow)
}

func TestLoad_MissingRequired(t *testing.T) {
	noDotenv(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.ErrorContains(t, err, "parsing config")
}

func TestLoad_InvalidPoolSize(t *testing.T) {
	noDotenv(t)
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_MAX_CONNS", "0")
	_, err := Load()
	require.ErrorContains(t, err, "DB_MAX_CONNS")
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLogLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLogLevel(""))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "v", rec["k"])
}
