package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "x-access-token", cfg.TokenHeader)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "http://localhost:8080", cfg.SelfURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("TOKEN_HEADER", "x-vendor-token")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SWAGGER_HOST", "api.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "x-vendor-token", cfg.TokenHeader)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "api.example.com", cfg.SwaggerHost)
}

func TestLoadRejectsBadSelfURL(t *testing.T) {
	t.Setenv("SELF_URL", "not a url")

	_, err := Load()
	assert.Error(t, err)
}
