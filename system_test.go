package grocy

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemInfoHandler(version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"grocy_version": {"Version": "%s", "ReleaseDate": "2023-12-23"},
			"php_version": "8.2.0", "sqlite_version": "3.41.1"
		}`, version)
	})
}

func TestSystemVersion(t *testing.T) {
	client, _ := newTestClient(t, systemInfoHandler("4.0.3"))

	version, err := client.System().Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4.0.3", version)
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		server  string
		minimum string
		want    bool
		wantErr bool
	}{
		{server: "4.0.3", minimum: "3.3.0", want: true},
		{server: "4.0.3", minimum: "4.0.3", want: true},
		{server: "3.3.2", minimum: "4.0.0", want: false},
		{server: "4.0.3", minimum: "not-a-version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s>=%s", tt.server, tt.minimum), func(t *testing.T) {
			client, _ := newTestClient(t, systemInfoHandler(tt.server))

			ok, err := client.System().VersionAtLeast(context.Background(), tt.minimum)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSystemConfigFeatureFlags(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/system/config", r.URL.Path)
		fmt.Fprint(w, `{
			"USER_USERNAME": "demo",
			"CURRENCY": "USD",
			"FEATURE_FLAG_STOCK": "1",
			"FEATURE_FLAG_RECIPES": "0"
		}`)
	}))

	cfg, err := client.System().Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Username)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Len(t, cfg.FeatureFlags, 2)
}
