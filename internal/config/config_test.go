package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any ambient values so the defaults apply.
	for _, key := range []string{"PORT", "REDIS_ADDR", "OTEL_ENABLED", "OTEL_SERVICE_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.OTEL.Enabled)
	assert.Equal(t, "planforge-api", cfg.OTEL.ServiceName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_ENDPOINT", "otel-collector:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.True(t, cfg.OTEL.Enabled)
	assert.Equal(t, "otel-collector:4318", cfg.OTEL.Endpoint)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Redis.Addr = "localhost:6379"
	assert.NoError(t, cfg.Validate())

	cfg.Redis.Addr = ""
	assert.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	cfg.OTEL.Enabled = true
	cfg.OTEL.Endpoint = ""
	assert.Error(t, cfg.Validate())

	cfg.OTEL.Endpoint = "otel-collector:4318"
	assert.NoError(t, cfg.Validate())
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "not-a-bool")
	assert.True(t, getEnvAsBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "false")
	assert.False(t, getEnvAsBool("TEST_BOOL", true))
}
