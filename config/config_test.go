package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codefold/user-directory/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	require.Equal(t, "user-directory", cfg.AppName)
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.APITokenList())
}

func TestAPITokenList(t *testing.T) {
	t.Setenv("API_TOKENS", " one, two ,, three ")
	cfg := config.Load()

	require.Equal(t, []string{"one", "two", "three"}, cfg.APITokenList())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")
	cfg := config.Load()

	require.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins())
}
