package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a client at an httptest server.
func testClient(t *testing.T, server *httptest.Server, apiKey string, opts ...Option) *Client {
	t.Helper()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	client, err := NewClient(u.Scheme+"://"+u.Hostname(), apiKey, append([]Option{WithPort(port)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		apiKey  string
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			host:   "https://grocy.example.com",
			apiKey: "test-key",
		},
		{
			name:    "missing host",
			host:    "",
			apiKey:  "test-key",
			wantErr: true,
			errMsg:  "server URL is required",
		},
		{
			name:    "missing API key",
			host:    "https://grocy.example.com",
			apiKey:  "",
			wantErr: true,
			errMsg:  "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.host, tt.apiKey)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestBaseURLComposition(t *testing.T) {
	tests := []struct {
		name string
		host string
		opts []Option
		want string
	}{
		{
			name: "default port",
			host: "https://grocy.example.com",
			want: "https://grocy.example.com:9192/api/",
		},
		{
			name: "custom port",
			host: "https://grocy.example.com",
			opts: []Option{WithPort(443)},
			want: "https://grocy.example.com:443/api/",
		},
		{
			name: "with path",
			host: "https://grocy.example.com",
			opts: []Option{WithPort(443), WithPath("grocy")},
			want: "https://grocy.example.com:443/grocy/api/",
		},
		{
			name: "trailing slashes trimmed",
			host: "https://grocy.example.com/",
			opts: []Option{WithPath("/grocy/")},
			want: "https://grocy.example.com:9192/grocy/api/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.host, "test-key", tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.BaseURL())
		})
	}
}

func TestAPIKeyHeader(t *testing.T) {
	t.Run("key sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("GROCY-API-KEY"))
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := testClient(t, server, "test-key")
		_, err := client.Get(context.Background(), "objects/products", nil)
		require.NoError(t, err)
	})

	t.Run("demo mode sends no key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.Header["Grocy-Api-Key"]
			assert.False(t, present, "demo mode must not send an API key header")
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := testClient(t, server, DemoModeKey)
		_, err := client.Get(context.Background(), "objects/products", nil)
		require.NoError(t, err)
	})
}

func TestQueryFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/objects/chores", r.URL.Path)
		filters := r.URL.Query()["query[]"]
		assert.Equal(t, []string{"id=3", "name=Dishes"}, filters)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err := client.Get(context.Background(), "objects/chores", []string{"id=3", "name=Dishes"})
	require.NoError(t, err)
}

func TestRequestErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error_message":"boom"}`))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err := client.Get(context.Background(), "stock", nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Contains(t, string(reqErr.Body), "boom")
	assert.False(t, reqErr.IsNotFound())
	assert.False(t, reqErr.IsUnauthorized())
}

func TestRequestErrorClassification(t *testing.T) {
	tests := []struct {
		status       int
		notFound     bool
		unauthorized bool
	}{
		{http.StatusBadRequest, true, false},
		{http.StatusNotFound, true, false},
		{http.StatusUnauthorized, false, true},
		{http.StatusForbidden, false, true},
		{http.StatusInternalServerError, false, false},
	}

	for _, tt := range tests {
		reqErr := &RequestError{StatusCode: tt.status}
		assert.Equal(t, tt.notFound, reqErr.IsNotFound(), "status %d", tt.status)
		assert.Equal(t, tt.unauthorized, reqErr.IsUnauthorized(), "status %d", tt.status)
	}
}

func TestEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")

	body, err := client.Get(context.Background(), "stock", nil)
	require.NoError(t, err)
	assert.Nil(t, body)

	stock, err := client.Stock(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stock)
}

func TestPutHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "*/*", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err := client.Put(context.Background(), "objects/tasks/1", map[string]any{"name": "x"})
	require.NoError(t, err)
}

func TestPutBytesContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
	}))
	defer server.Close()

	client := testClient(t, server, "test-key")
	_, err := client.PutBytes(context.Background(), "files/productpictures/MS5qcGc=", []byte{0x1})
	require.NoError(t, err)
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("https://grocy.example.com", "test-key", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("https://grocy.example.com", "test-key", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})
}
