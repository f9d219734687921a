package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "LOG_LEVEL", "LIGADB_WSDL_URL", "LIGADB_ENDPOINT", "LIGADB_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, defaultWSDLURL, cfg.Service.WSDLURL)
	assert.Empty(t, cfg.Service.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Service.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LIGADB_WSDL_URL", "http://localhost:8000/Sportsdata.asmx?WSDL")
	t.Setenv("LIGADB_ENDPOINT", "http://localhost:8000/Sportsdata.asmx")
	t.Setenv("LIGADB_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8000/Sportsdata.asmx?WSDL", cfg.Service.WSDLURL)
	assert.Equal(t, "http://localhost:8000/Sportsdata.asmx", cfg.Service.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unparsable timeout", "LIGADB_TIMEOUT", "soon"},
		{"negative timeout", "LIGADB_TIMEOUT", "-1s"},
		{"unknown log level", "LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
