package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Token.Secret)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token.secret")
}

func TestDBConfig_DSN(t *testing.T) {
	dsn := DBConfig{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "dash"}.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=dash")
}

func TestRedisConfig_Addr(t *testing.T) {
	assert.Equal(t, "", RedisConfig{Port: "6379"}.Addr())
	assert.Equal(t, "cache:6379", RedisConfig{Host: "cache", Port: "6379"}.Addr())
}
