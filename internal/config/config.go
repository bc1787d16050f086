package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Development credentials for the admin console. Override in production.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	// Storage: a sqlite path or a postgres:// URL
	DatabaseURL string

	Auth    AuthConfig
	Admin   AdminConfig
	SMTP    SMTPConfig
	Layout  LayoutConfig
	Visitor VisitorConfig

	// Owner whose stored records overlay the portfolio served at "/".
	SiteOwnerID string
}

type AuthConfig struct {
	JWTSecret string
	JWKSURL   string
	Issuer    string
}

type AdminConfig struct {
	Username string
	Password string
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

type LayoutConfig struct {
	InlineBreakpoint   int
	SessionIdleTimeout time.Duration
}

type VisitorConfig struct {
	Retention time.Duration
}

// Load reads configuration from the environment, after merging an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", "portfolio.db"),

		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			JWKSURL:   getEnv("AUTH_JWKS_URL", ""),
			Issuer:    getEnv("AUTH_ISSUER", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", DefaultAdminUsername),
			Password: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		},
		SMTP: SMTPConfig{
			Host:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:    getEnv("SMTP_PORT", "587"),
			User:    getEnv("SMTP_USER", ""),
			Pass:    getEnv("SMTP_PASS", ""),
			ToEmail: getEnv("TO_EMAIL", ""),
		},
		Layout: LayoutConfig{
			InlineBreakpoint:   getEnvInt("INLINE_BREAKPOINT", 768),
			SessionIdleTimeout: getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		},
		Visitor: VisitorConfig{
			Retention: getEnvDuration("VISITOR_RETENTION", 365*24*time.Hour),
		},
		SiteOwnerID: getEnv("SITE_OWNER_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
		log.Warn().Str("key", key).Str("value", value).Msg("not an integer, using default")
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if v, err := time.ParseDuration(value); err == nil {
			return v
		}
		log.Warn().Str("key", key).Str("value", value).Msg("not a duration, using default")
	}
	return defaultValue
}
