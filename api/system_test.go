package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemConfigDecode(t *testing.T) {
	payload := `{
		"USER_USERNAME": "demo",
		"BASE_PATH": "/grocy",
		"BASE_URL": "https://grocy.example.com",
		"MODE": "production",
		"DEFAULT_LOCALE": "en",
		"LOCALE": "de",
		"CURRENCY": "EUR",
		"FEATURE_FLAG_STOCK": "1",
		"FEATURE_FLAG_CHORES": 1,
		"FEATURE_FLAG_TASKS": "0",
		"MAX_UPLOAD_SIZE": "64M"
	}`

	var cfg SystemConfig
	require.NoError(t, json.Unmarshal([]byte(payload), &cfg))

	assert.Equal(t, "demo", cfg.Username)
	assert.Equal(t, "/grocy", cfg.BasePath)
	assert.Equal(t, "https://grocy.example.com", cfg.BaseURL)
	assert.Equal(t, "production", cfg.Mode)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "EUR", cfg.Currency)

	// Exactly the FEATURE_FLAG_* keys, nothing else.
	assert.Len(t, cfg.FeatureFlags, 3)
	assert.Equal(t, "1", cfg.FeatureFlags["FEATURE_FLAG_STOCK"])
	assert.Equal(t, float64(1), cfg.FeatureFlags["FEATURE_FLAG_CHORES"])
	assert.Equal(t, "0", cfg.FeatureFlags["FEATURE_FLAG_TASKS"])
	assert.NotContains(t, cfg.FeatureFlags, "MAX_UPLOAD_SIZE")
}

func TestSystemInfoDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/info", r.URL.Path)
		w.Write([]byte(`{
			"grocy_version": {"Version": "4.0.3", "ReleaseDate": "2023-12-23"},
			"php_version": "8.2.0",
			"sqlite_version": "3.41.1",
			"os": "Linux",
			"client": "grocy"
		}`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	info, err := client.SystemInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "4.0.3", info.GrocyVersion.Version)
	assert.Equal(t, "8.2.0", info.PHPVersion)
	assert.Equal(t, "3.41.1", info.SQLiteVersion)
	assert.Equal(t, 2023, info.GrocyVersion.ReleaseDate.Year())
}

func TestSystemInfoMissingVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"grocy_version": {"Version": ""}}`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err := client.SystemInfo(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestLastDBChanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/db-changed-time", r.URL.Path)
		w.Write([]byte(`{"changed_time": "2024-03-01 08:15:00"}`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	ts, err := client.LastDBChanged(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 8, ts.Hour())
}
