package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3010, cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "Equipo ObleaFusion", cfg.Brand.OwnerName)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Same(t, cfg, Get())
}

func TestLoadLegacyEnvironment(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("BOOKING_EMAIL_TO", "owner@example.com")
	t.Setenv("OWNER_NAME", "Juliana")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, "owner@example.com", cfg.Email.BookingTo)
	assert.Equal(t, "owner@example.com", cfg.Email.ContactRecipient())
	assert.Equal(t, "Juliana", cfg.Brand.OwnerName)
}

func TestLoadPrefixedEnvironmentWins(t *testing.T) {
	t.Setenv("MAIL_HOST", "legacy.example.com")
	t.Setenv("OBLEAFUSION_EMAIL_SMTP_HOST", "prefixed.example.com")
	t.Setenv("OBLEAFUSION_EMAIL_CONTACT_TO", "contact@example.com")

	cfg, err := Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "prefixed.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, "contact@example.com", cfg.Email.ContactRecipient())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9090
  allowed_origins: ["https://obleafusion.com"]
ratelimit:
  enabled: true
  requests_per_minute: 3
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := Load("release", dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, []string{"https://obleafusion.com"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3, cfg.RateLimit.RequestsPerMinute)
}
