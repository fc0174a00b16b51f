package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/direcional-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 30, cfg.JWT.Expiration)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 15*time.Second, cfg.Auth.UserCacheTTL())
	assert.Equal(t, "postgres://postgres:@localhost:5432/direcional_db?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")
	v.Set("JWT_EXPIRATION_MINUTES", "45")
	v.Set("HTTP_PORT", 9090)
	v.Set("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.Equal(t, 45*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Redis.Enabled())
}

func TestFromViper_ExpiracionInvalida(t *testing.T) {
	v := viper.New()
	v.Set("JWT_EXPIRATION_MINUTES", "0")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/w", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fw@h:5432/d?sslmode=disable", c.DSN())
}
