package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 2*time.Second, cfg.Session.ResolveTimeout)
	assert.Equal(t, float64(5), cfg.Auth.LoginRateLimit)
	assert.Equal(t, "/login", cfg.HTTP.LoginPath)
	assert.Equal(t, "storefront", cfg.Mongo.Database)
	assert.Equal(t, 4, cfg.HTTP.VisitWorkers)
	assert.True(t, cfg.HTTP.EnableSwagger)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SESSION_RESOLVE_TIMEOUT", "250ms")
	t.Setenv("LOGIN_PATH", "/account/login")
	t.Setenv("ENV", "production")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Session.ResolveTimeout)
	assert.Equal(t, "/account/login", cfg.HTTP.LoginPath)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LOGIN_RATE_LIMIT", "0")

	_, err := Load(context.Background())
	assert.Error(t, err)
}
