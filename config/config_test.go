package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
grocy:
  url: https://grocy.example.com
  api_key: test-key
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://grocy.example.com", cfg.Grocy.URL)
	assert.Equal(t, "test-key", cfg.Grocy.APIKey)
	assert.Equal(t, 9192, cfg.Grocy.Port)
	assert.True(t, cfg.Grocy.VerifyTLS)
	assert.Equal(t, 30, cfg.Grocy.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
grocy:
  url: https://grocy.example.com
  api_key: test-key
  port: 443
  path: grocy
  verify_tls: false
  timeout_seconds: 10
filter:
  low: Item.AvailableAmount < 2
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 443, cfg.Grocy.Port)
	assert.Equal(t, "grocy", cfg.Grocy.Path)
	assert.False(t, cfg.Grocy.VerifyTLS)
	assert.Equal(t, "Item.AvailableAmount < 2", cfg.Filter["low"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{
			name:   "missing url",
			cfg:    Config{Grocy: GrocyConfig{APIKey: "k", Port: 9192}, Logging: LoggingConfig{Level: "info", Format: "console"}},
			errMsg: "grocy.url is required",
		},
		{
			name:   "missing api key",
			cfg:    Config{Grocy: GrocyConfig{URL: "https://x", Port: 9192}, Logging: LoggingConfig{Level: "info", Format: "console"}},
			errMsg: "grocy.api_key",
		},
		{
			name:   "placeholder api key",
			cfg:    Config{Grocy: GrocyConfig{URL: "https://x", APIKey: "your-api-key-here", Port: 9192}, Logging: LoggingConfig{Level: "info", Format: "console"}},
			errMsg: "grocy.api_key",
		},
		{
			name:   "bad port",
			cfg:    Config{Grocy: GrocyConfig{URL: "https://x", APIKey: "k", Port: 99999}, Logging: LoggingConfig{Level: "info", Format: "console"}},
			errMsg: "invalid grocy.port",
		},
		{
			name:   "bad level",
			cfg:    Config{Grocy: GrocyConfig{URL: "https://x", APIKey: "k", Port: 9192}, Logging: LoggingConfig{Level: "verbose", Format: "console"}},
			errMsg: "invalid logging level",
		},
		{
			name:   "bad format",
			cfg:    Config{Grocy: GrocyConfig{URL: "https://x", APIKey: "k", Port: 9192}, Logging: LoggingConfig{Level: "info", Format: "xml"}},
			errMsg: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	cfg := GrocyConfig{Port: 443, Path: "grocy", VerifyTLS: false, TimeoutSeconds: 10}
	opts := cfg.ClientOptions()
	assert.Len(t, opts, 4)
}
