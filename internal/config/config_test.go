package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/cargohost")
	t.Setenv("SESSION_KEY", "0123456789abcdef0123456789abcdef")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("PLANS_ENDPOINT", "")
	t.Setenv("RENDER_WAIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4001, cfg.Port)
	assert.Equal(t, "http://127.0.0.1:4001/api/plans", cfg.PlansEndpoint)
	assert.Equal(t, 2*time.Second, cfg.RenderWait)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SecureCookies)
	assert.Contains(t, cfg.CORSOrigins, "https://cargohost.ru")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PLANS_ENDPOINT", "https://plans.example.com/")
	t.Setenv("RENDER_WAIT", "500ms")
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://plans.example.com/", cfg.PlansEndpoint)
	assert.Equal(t, 500*time.Millisecond, cfg.RenderWait)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.SecureCookies)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"jwt secret", "JWT_SECRET"},
		{"database url", "DATABASE_URL"},
		{"session key", "SESSION_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.unset)
		})
	}
}

func TestLoad_ShortSessionKey(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_KEY", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 32 bytes")
}

func TestLoad_BadPort(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
