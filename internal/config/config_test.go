package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 12, cfg.FeedPageSize)
	assert.Equal(t, 600*time.Millisecond, cfg.FeedLoadDelay)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Error(t, cfg.RequireSecret())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("FEED_PAGE_SIZE", "5")
	t.Setenv("FEED_LOAD_DELAY", "10ms")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.RequireSecret())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5, cfg.FeedPageSize)
	assert.Equal(t, 10*time.Millisecond, cfg.FeedLoadDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RejectsBadNumbers(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("FEED_PAGE_SIZE", "12")
	t.Setenv("FEED_LOAD_DELAY", "soon")
	_, err = Load()
	assert.Error(t, err)
}
