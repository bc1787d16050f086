package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("INLINE_BREAKPOINT", "")
	t.Setenv("SESSION_IDLE_TIMEOUT", "")
	t.Setenv("ADMIN_USERNAME", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DatabaseURL)
	assert.Equal(t, 768, cfg.Layout.InlineBreakpoint)
	assert.Equal(t, 30*time.Minute, cfg.Layout.SessionIdleTimeout)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, DefaultAdminUsername, cfg.Admin.Username)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/folio")
	t.Setenv("INLINE_BREAKPOINT", "640")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost/folio", cfg.DatabaseURL)
	assert.Equal(t, 640, cfg.Layout.InlineBreakpoint)
	assert.Equal(t, 5*time.Minute, cfg.Layout.SessionIdleTimeout)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("INLINE_BREAKPOINT", "wide")
	t.Setenv("VISITOR_RETENTION", "forever")

	cfg := Load()

	assert.Equal(t, 768, cfg.Layout.InlineBreakpoint)
	assert.Equal(t, 365*24*time.Hour, cfg.Visitor.Retention)
}
