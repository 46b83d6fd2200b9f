// Package config collects the environment-backed settings of the server.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Addr   string
	DBPath string

	// Debug echoes raw storage error detail back to clients. Never enable
	// in production.
	Debug bool

	JWTSecret  string
	SessionTTL time.Duration
	// CookieMaxAge is the token cookie lifetime in seconds.
	CookieMaxAge int

	// FrontendURL is the base for password reset links.
	FrontendURL    string
	AllowedOrigins []string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

// Load reads .env when present and assembles the configuration from the
// environment with sensible fallbacks.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           EnvOrDefault("SCHEDULER_ADDR", ":5000"),
		DBPath:         EnvOrDefault("SCHEDULER_DB_PATH", "data/scheduler.db"),
		Debug:          envBool("SCHEDULER_DEBUG", false),
		JWTSecret:      EnvOrDefault("JWT_SECRET", ""),
		SessionTTL:     envDuration("JWT_EXPIRES_IN", time.Hour),
		CookieMaxAge:   envInt("JWT_COOKIE_MAX_AGE", 3600),
		FrontendURL:    EnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: splitList(EnvOrDefault("CORS_ORIGINS", "*")),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       EnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:       os.Getenv("EMAIL_USER"),
		SMTPPass:       os.Getenv("EMAIL_PASS"),
	}
}

// EnvOrDefault returns the environment variable value or fallback when it is empty.
func EnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
