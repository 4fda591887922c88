package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("AUTH0_DOMAIN", "example.auth0.com")
	t.Setenv("AUTH0_API_AUDIENCE", "https://api.example.com")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", s.DBHost)
	assert.Equal(t, 5432, s.DBPort)
	assert.Equal(t, 9440, s.WHPort)
	assert.True(t, s.WHSecure)
	assert.Equal(t, 5, s.MaxSteps)
	assert.Equal(t, "8080", s.HTTPPort)
	assert.Equal(t, "https://example.auth0.com/", s.Auth0Issuer)
	assert.Equal(t, []string{"RS256"}, s.Auth0Algorithms)
	assert.NotNil(t, s.Queue)
	assert.NotNil(t, s.Retention)
	assert.Equal(t, 7*24*time.Hour, s.Retention.TaskRetention)
}

func TestLoadRequiresDBPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "DATABASE_PASSWORD", cfgErr.Setting)
	assert.True(t, errors.Is(err, ErrMissingRequiredField))
}

func TestLoadRequiresSomeLLMProvider(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredField))
}

func TestLoadRejectsInvalidMaxSteps(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_STEPS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestLoadParsesWarehouseParams(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_WH_PARAMS", "max_execution_time=60, readonly=1")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"max_execution_time": "60",
		"readonly":           "1",
	}, s.WHParams)
}

func TestGuestIssuerDefaultsToHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GUEST_AUTH_HOST", "https://guest.example.com")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://guest.example.com", s.GuestAuthIssuer)
}

func TestHasProvider(t *testing.T) {
	setRequiredEnv(t)

	s, err := Load()
	require.NoError(t, err)
	assert.True(t, s.HasProvider("openai"))
	assert.False(t, s.HasProvider("anthropic"))
	assert.False(t, s.HasProvider("unknown"))
}
