package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from the environment.
type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string
	RedisURL    string

	JWTSecret         string
	AccessTokenTTL    time.Duration
	AdminPasswordHash string

	CORSAllowAll bool
	CORSOrigins  []string

	// Pricing defaults, threaded into every resolver call.
	DefaultLaborRate     float64
	DefaultTaskMarkupPct float64
	BatchMarkupPct       float64

	SessionTTL time.Duration

	// Speech-to-text. Empty model path disables the audio endpoint.
	WhisperModelPath string

	// Optional MinIO archive for raw voice recordings.
	MinioEndpoint         string
	MinioAccessKey        string
	MinioSecretKey        string
	MinioUseSSL           bool
	MinioBucketRecordings string

	// Optional estimate summary mail.
	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	EmailRecipient   string

	// Optional Gemini-backed synonym suggestions for unmapped phrases.
	GeminiAPIKey string
	GeminiModel  string

	// Catalog bootstrap and refresh.
	CatalogSeedPath        string
	CatalogRefreshInterval time.Duration
}

// Load reads configuration from the environment, applying .env if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTokenTTL:    mustDuration(getEnv("JWT_ACCESS_TTL", "12h")),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		CORSAllowAll: corsAllowAll,
		CORSOrigins:  corsOrigins,

		DefaultLaborRate:     mustFloat(getEnv("DEFAULT_LABOR_RATE", "500")),
		DefaultTaskMarkupPct: mustFloat(getEnv("DEFAULT_TASK_MARKUP_PCT", "10")),
		BatchMarkupPct:       mustFloat(getEnv("BATCH_MARKUP_PCT", "15")),

		SessionTTL: mustDuration(getEnv("SESSION_TTL", "24h")),

		WhisperModelPath: getEnv("WHISPER_MODEL_PATH", ""),

		MinioEndpoint:         getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:        getEnv("MINIO_SECRET_KEY", ""),
		MinioUseSSL:           strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketRecordings: getEnv("MINIO_BUCKET_RECORDINGS", "voice-recordings"),

		EmailEnabled:     strings.EqualFold(getEnv("EMAIL_ENABLED", "false"), "true"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Målerikalkyl"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", ""),
		EmailRecipient:   getEnv("EMAIL_RECIPIENT", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		CatalogSeedPath:        getEnv("CATALOG_SEED_PATH", ""),
		CatalogRefreshInterval: mustDuration(getEnv("CATALOG_REFRESH_INTERVAL", "6h")),
	}

	if cfg.DatabaseURL == "" && cfg.CatalogSeedPath == "" {
		return nil, fmt.Errorf("DATABASE_URL or CATALOG_SEED_PATH is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if cfg.DefaultLaborRate <= 0 {
		return nil, fmt.Errorf("DEFAULT_LABOR_RATE must be positive")
	}
	if cfg.EmailEnabled && (cfg.SMTPHost == "" || cfg.EmailFromAddress == "" || cfg.EmailRecipient == "") {
		return nil, fmt.Errorf("SMTP_HOST, EMAIL_FROM_ADDRESS and EMAIL_RECIPIENT are required when EMAIL_ENABLED is true")
	}

	return cfg, nil
}

// DatabaseConfig exposes database settings to the platform db package.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// RedisConfig exposes redis settings to the session store and scheduler.
type RedisConfig interface {
	GetRedisURL() string
}

// JWTConfig exposes token settings to the auth middleware.
type JWTConfig interface {
	GetJWTSecret() string
	GetAccessTokenTTL() time.Duration
}

// AuthConfig exposes what the auth module needs to issue tokens.
type AuthConfig interface {
	JWTConfig
	GetAdminPasswordHash() string
}

// HTTPConfig exposes the settings the router needs.
type HTTPConfig interface {
	GetEnv() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

func (c *Config) GetDatabaseURL() string           { return c.DatabaseURL }
func (c *Config) GetRedisURL() string              { return c.RedisURL }
func (c *Config) GetJWTSecret() string             { return c.JWTSecret }
func (c *Config) GetAdminPasswordHash() string     { return c.AdminPasswordHash }
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }
func (c *Config) GetEnv() string                   { return c.Env }
func (c *Config) GetCORSAllowAll() bool            { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string         { return c.CORSOrigins }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

func mustInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
