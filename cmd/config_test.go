package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, AuthProviderJWT, cfg.AuthProvider)
	assert.Equal(t, 60*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, "@every 5m", cfg.RoleReconcileSchedule)
	assert.Equal(t, "@every 1m", cfg.StatsRefreshSchedule)
	assert.True(t, cfg.OpenAPIValidation)
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=parcelhub sslmode=disable", cfg.DSN())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("STATS_CACHE_TTL", "5m")
	t.Setenv("ADMIN_EMAILS", " Boss@Example.com , ops@example.com,")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("OPENAPI_VALIDATION", "false")

	cfg, err := LoadConfig(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 5*time.Minute, cfg.StatsCacheTTL)
	assert.EqualValues(t, 7, cfg.SnowflakeNode)
	assert.False(t, cfg.OpenAPIValidation)

	admins, err := cfg.AdminEmailList()
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "boss@example.com", admins[0].String())
	assert.Equal(t, "ops@example.com", admins[1].String())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"jwt without secret", func(c *Config) { c.JWTSecret = "" }},
		{"firebase without credentials", func(c *Config) { c.AuthProvider = AuthProviderFirebase }},
		{"unknown provider", func(c *Config) { c.AuthProvider = "ldap" }},
		{"snowflake node out of range", func(c *Config) { c.SnowflakeNode = 1024 }},
		{"bad admin email", func(c *Config) { c.AdminEmails = "not-an-email" }},
	}

	require.NoError(t, testConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
