package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "careers_test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://nortetech.net, https://www.nortetech.net")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "careers_test", cfg.DB.Name)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, int64(10<<20), cfg.Uploads.MaxBytes)
	assert.Equal(t, []string{"https://nortetech.net", "https://www.nortetech.net"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.Uploads.AllowedTypes, "application/pdf")
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret is required")
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := DBConfig{Host: "db", Port: 5433, User: "site", Password: "pw", Name: "nortetech"}
	assert.Equal(t, "postgres://site:pw@db:5433/nortetech?sslmode=disable", cfg.DSN())
}
