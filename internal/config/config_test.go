package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Second, cfg.Catalog.SubmitDelay())
	assert.Equal(t, "cancel", cfg.Catalog.ClosePolicy)
	assert.Equal(t, "owner@shopsmart.com", cfg.Auth.OwnerEmail)
	assert.Equal(t, int64(10*1024*1024), cfg.Assets.MaxSize)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_SUBMIT_DELAY_MS", "250")
	t.Setenv("CATALOG_CLOSE_POLICY", "FINISH")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, https://ops.example.com ,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("ASSET_PUBLIC_BASE_URL", "https://cdn.example.com/")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Catalog.SubmitDelay())
	assert.Equal(t, "finish", cfg.Catalog.ClosePolicy)
	assert.Equal(t, []string{"https://admin.example.com", "https://ops.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "https://cdn.example.com", cfg.Assets.PublicBaseURL)
}

func TestValidate(t *testing.T) {
	t.Run("production requires secrets", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		_, err := Load("")
		assert.Error(t, err)

		t.Setenv("JWT_SECRET", "prod-secret")
		_, err = Load("")
		assert.ErrorContains(t, err, "owner password")

		t.Setenv("OWNER_PASSWORD", "prod-password")
		_, err = Load("")
		assert.NoError(t, err)
	})

	t.Run("unknown close policy", func(t *testing.T) {
		t.Setenv("CATALOG_CLOSE_POLICY", "ignore")
		_, err := Load("")
		assert.ErrorContains(t, err, "close policy")
	})

	t.Run("negative delay", func(t *testing.T) {
		t.Setenv("CATALOG_SUBMIT_DELAY_MS", "-1")
		_, err := Load("")
		assert.Error(t, err)
	})
}
