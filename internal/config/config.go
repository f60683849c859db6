package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env          string         `json:"env"`
	Http         HttpConfig     `json:"http"`
	Log          LogConfig      `json:"log"`
	Storage      string         `json:"storage"`
	Postgres     PostgresConfig `json:"postgres"`
	Redis        RedisConfig    `json:"redis"`
	APIKey       string         `json:"api_key,omitempty"`
	Webhook      WebhookConfig  `json:"webhook"`
	SMS          SMSConfig      `json:"sms"`
	CriticalZone CriticalZone   `json:"critical_zone"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	AlertRPS        int           `json:"alert_rps"`
	AlertBurst      int           `json:"alert_burst"`
}

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	QueryTimeout    time.Duration
	AutoMigrate     bool
}

// RedisConfig is optional: an empty Addr disables the event queue and the
// critical-zone guard.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type SMSConfig struct {
	URL        string        `json:"url"`
	APIKey     string        `json:"api_key,omitempty"`
	ProviderID string        `json:"provider_id"`
	Sender     string        `json:"sender"`
	Timeout    time.Duration `json:"timeout"`
}

type CriticalZone struct {
	Threshold    int           `json:"threshold"`
	RadiusMeters float64       `json:"radius_meters"`
	Dedup        bool          `json:"dedup"`
	DedupTTL     time.Duration `json:"dedup_ttl"`
}

func LoadConfig() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			AlertRPS:        getEnvInt("ALERT_RATE_RPS", 1),
			AlertBurst:      getEnvInt("ALERT_RATE_BURST", 3),
		},
		Log: LogConfig{
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		},
		Storage: getEnv("STORAGE_DRIVER", StoragePostgres),
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "safezone"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
			QueryTimeout:    getEnvDuration("POSTGRES_QUERY_TIMEOUT", 5*time.Second),
			AutoMigrate:     getEnvBool("POSTGRES_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", false),
		},
		SMS: SMSConfig{
			URL:        getEnv("SMS_API_URL", "https://api.ola.pavulla.com/v1/messages"),
			APIKey:     getEnv("SMS_API_KEY", ""),
			ProviderID: getEnv("SMS_PROVIDER_ID", ""),
			Sender:     getEnv("SMS_SENDER", ""),
			Timeout:    getEnvDuration("SMS_TIMEOUT", 5*time.Second),
		},
		CriticalZone: CriticalZone{
			Threshold:    getEnvInt("CRITICAL_ZONE_THRESHOLD", 10),
			RadiusMeters: getEnvFloat("CRITICAL_ZONE_RADIUS_M", 1000),
			Dedup:        getEnvBool("CRITICAL_ZONE_DEDUP", false),
			DedupTTL:     getEnvDuration("CRITICAL_ZONE_DEDUP_TTL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage", cfg.Storage),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Int("critical_zone_threshold", cfg.CriticalZone.Threshold))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Storage {
	case StoragePostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case StorageMemory:
	default:
		return errors.New("STORAGE_DRIVER must be 'postgres' or 'memory'")
	}

	if c.CriticalZone.Threshold < 1 {
		return errors.New("CRITICAL_ZONE_THRESHOLD must be positive")
	}
	if c.CriticalZone.RadiusMeters <= 0 {
		return errors.New("CRITICAL_ZONE_RADIUS_M must be positive")
	}
	if c.SMS.Timeout <= 0 {
		return errors.New("SMS_TIMEOUT must be positive")
	}

	return nil
}

// ShowErrorDetails reports whether internal error text may reach clients.
func (c *Config) ShowErrorDetails() bool {
	return c.Env == "local" || c.Env == "dev"
}

func (c *Config) WebhookEnabled() bool {
	return !c.Webhook.Disabled && c.Webhook.URL != "" && c.Redis.Addr != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
