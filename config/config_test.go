package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultUpstreamURL, cfg.Upstream.URL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.True(t, cfg.Page.URLSync)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("PAGE_URL_SYNC", "false")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_TTL", "1m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.False(t, cfg.Page.URLSync)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_ENV=production\nLOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
}

func TestLoadConfig_InvalidUpstreamURL(t *testing.T) {
	t.Setenv("UPSTREAM_URL", "not a url")

	cfg, err := LoadConfig("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadConfig("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
