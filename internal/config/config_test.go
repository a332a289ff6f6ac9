package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CONTENT_PATH", "")
	t.Setenv("CONTENT_STRICT", "")
	t.Setenv("GITHUB_URL", "")
	t.Setenv("SENTRY_DSN", "")

	cfg := Load()
	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "content", cfg.ContentPath)
	assert.False(t, cfg.ContentStrict)
	assert.Equal(t, "https://github.com", cfg.GitHubURL)
	assert.Empty(t, cfg.SentryDSN)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CONTENT_PATH", "site/content")
	t.Setenv("CONTENT_STRICT", "true")
	t.Setenv("GITHUB_URL", "https://github.com/someone")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "site/content", cfg.ContentPath)
	assert.True(t, cfg.ContentStrict)
	assert.Equal(t, "https://github.com/someone", cfg.GitHubURL)
}

func TestEnvBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("CONTENT_STRICT", "sometimes")
	assert.False(t, envBool("CONTENT_STRICT", false))
	assert.True(t, envBool("CONTENT_STRICT", true))
}
