package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DBDriver    string // mysql | postgres | sqlite
	MySQLURL    string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	PostgresDSN string
	SQLitePath  string

	CORSOrigins    []string
	TrustedProxies []string

	SessionTTL          time.Duration
	SessionCookieSecure bool
	AdminUsername       string
	AdminPassword       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SendGridAPIKey  string
	MailFrom        string
	ContactNotifyTo string

	UploadDir string

	SubmitRateLimit int
	LoginRateLimit  int
}

// Load reads the configuration from the environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOrDefault("PORT", "8080"),
		Environment: envOrDefault("APP_ENV", "development"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(envOrDefault("DB_DRIVER", "mysql")),
		MySQLURL:    firstNonEmpty(os.Getenv("MYSQL_URL"), os.Getenv("DATABASE_URL")),
		DBUser:      envOrDefault("DB_USER", "root"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      envOrDefault("DB_HOST", "127.0.0.1"),
		DBPort:      envOrDefault("DB_PORT", "3306"),
		DBName:      envOrDefault("DB_NAME", "studio_db"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SQLitePath:  envOrDefault("SQLITE_PATH", "studio.db"),

		CORSOrigins:    parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),

		SessionTTL:          time.Duration(envInt("SESSION_TTL_HOURS", 72)) * time.Hour,
		SessionCookieSecure: envBool("SESSION_COOKIE_SECURE", false),
		AdminUsername:       strings.TrimSpace(os.Getenv("ADMIN_USERNAME")),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		SendGridAPIKey:  strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		MailFrom:        envOrDefault("MAIL_FROM", "no-reply@studio.local"),
		ContactNotifyTo: strings.TrimSpace(os.Getenv("CONTACT_NOTIFY_TO")),

		UploadDir: envOrDefault("UPLOAD_DIR", "uploads"),

		SubmitRateLimit: envInt("SUBMIT_RATE_LIMIT", 5),
		LoginRateLimit:  envInt("LOGIN_RATE_LIMIT", 20),
	}

	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected mysql, postgres or sqlite)", cfg.DBDriver)
	}
	if cfg.DBDriver == "postgres" && cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required when DB_DRIVER=postgres")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func parseCorsOrigins(raw string) []string {
	origins := parseList(raw)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// parseList splits a comma separated value, dropping blanks. Nothing set
// yields nil.
func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
