// File: internal/config/config.go
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 由環境變數載入；開發時可放在 .env
type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:":8080"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"0"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	// 預設管理員，只在帳號不存在時建立
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@jdgkbsi.ph"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"System Admin"`

	SMTPHost         string `env:"SMTP_HOST"`
	SMTPPort         int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername     string `env:"SMTP_USERNAME"`
	SMTPPassword     string `env:"SMTP_PASSWORD"`
	MailFrom         string `env:"MAIL_FROM" envDefault:"info@jdgkbsi.ph"`
	ContactRecipient string `env:"CONTACT_RECIPIENT"`

	ContactRateLimit  int64         `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"uploads"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPublicURL string `env:"MINIO_PUBLIC_URL"`

	JobExpirySchedule string `env:"JOB_EXPIRY_SCHEDULE" envDefault:"@hourly"`
	WorkerCount       int    `env:"WORKER_COUNT" envDefault:"4"`
	WorkerQueueSize   int    `env:"WORKER_QUEUE_SIZE" envDefault:"100"`
}

// 測試可替換
var loadDotenv = func() error { return godotenv.Load() }

// Load 先讀 .env（不存在則略過）再解析環境變數
func Load() (*Config, error) {
	_ = loadDotenv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DBMaxConns < 1 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}
	return cfg, nil
}

// MailEnabled 回報是否設定了 SMTP
func (c Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

// ContactTo 聯絡表單通知的收件者，未設定時寄到 MAIL_FROM
func (c Config) ContactTo() string {
	if c.ContactRecipient != "" {
		return c.ContactRecipient
	}
	return c.MailFrom
}

func (c Config) UseMinio() bool {
	return c.MinioEndpoint != ""
}

func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger 建立 JSON 格式的 slog.Logger
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLogLevel(level)}))
}
