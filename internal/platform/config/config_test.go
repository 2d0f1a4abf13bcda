package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Server.AuthRateLimit)
	assert.Empty(t, cfg.Server.TrustedProxies)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TagTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("SERVER_TRUSTEDPROXIES", "10.0.0.0/8,192.168.1.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.Server.TrustedProxies)
}
