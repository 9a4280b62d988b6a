package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "API_BASE_URL", "API_TIMEOUT_SECONDS", "DEFAULT_USERNAME", "DEFAULT_REPO",
		"QUERY_CACHE_TTL_SECONDS", "QUERY_CACHE_MAX_ENTRIES", "RENDER_WAIT_MS",
		"TOKEN_COOKIE_NAME", "COOKIE_MAX_AGE_SECONDS", "COOKIE_SECURE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3001", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "brandox02", cfg.Query.DefaultUsername)
	assert.Equal(t, "commit-history-api", cfg.Query.DefaultRepo)
	assert.Equal(t, time.Duration(0), cfg.Query.CacheTTL)
	assert.Equal(t, 256, cfg.Query.CacheMaxEntries)
	assert.Equal(t, 2*time.Second, cfg.Query.RenderWait)
	assert.Equal(t, "token", cfg.Cookie.Name)
	assert.Equal(t, 0, cfg.Cookie.MaxAge)
	assert.False(t, cfg.Cookie.Secure)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://api.example.com/v2")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("QUERY_CACHE_TTL_SECONDS", "60")
	t.Setenv("RENDER_WAIT_MS", "250")
	t.Setenv("TOKEN_COOKIE_NAME", "auth")
	t.Setenv("COOKIE_MAX_AGE_SECONDS", "3600")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://api.example.com/v2", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Minute, cfg.Query.CacheTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Query.RenderWait)
	assert.Equal(t, "auth", cfg.Cookie.Name)
	assert.Equal(t, 3600, cfg.Cookie.MaxAge)
	assert.True(t, cfg.Cookie.Secure)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"base url without scheme", "API_BASE_URL", "localhost:3001"},
		{"non numeric timeout", "API_TIMEOUT_SECONDS", "soon"},
		{"negative wait", "RENDER_WAIT_MS", "-1"},
		{"bad bool", "COOKIE_SECURE", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
