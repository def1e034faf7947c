package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notes")
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")

	cfg, dotenv, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.False(t, dotenv)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 600*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notes")
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, _, err := Load("testdata/missing.env")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notes")
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	_, _, err := Load("testdata/missing.env")
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notes")
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_TTL", "0s")

	_, _, err := Load("testdata/missing.env")
	assert.Error(t, err)
}
