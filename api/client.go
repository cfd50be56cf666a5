package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultPort is the port Grocy listens on out of the box.
	DefaultPort = 9192

	// DemoModeKey is the sentinel API key for the public demo server.
	// When configured, no authentication header is sent.
	DemoModeKey = "demo_mode"

	apiKeyHeader = "GROCY-API-KEY"
)

// Client is the low-level HTTP client for the Grocy REST API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Grocy API client
func NewClient(host, apiKey string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("%w: server URL is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	options := clientOptions{
		port:    DefaultPort,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
		if options.insecureSkipVerify {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
	}

	logger := zerolog.Nop()
	if options.logger != nil {
		logger = *options.logger
	}

	host = strings.TrimRight(host, "/")
	path := strings.Trim(options.path, "/")

	baseURL := fmt.Sprintf("%s:%d/api/", host, options.port)
	if path != "" {
		baseURL = fmt.Sprintf("%s:%d/%s/api/", host, options.port, path)
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the composed base URL, ending in "/api/".
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an HTTP request against the API. It returns the raw response
// body, or nil when the server answered with an empty body.
func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if method == http.MethodPut {
		req.Header.Set("Accept", "*/*")
	} else {
		req.Header.Set("Accept", "application/json")
	}
	if c.apiKey != DemoModeKey {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug().Str("method", method).Str("endpoint", endpoint).Msg("request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(respBody)).
		Msg("response")

	if resp.StatusCode >= 400 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: respBody}
	}
	if len(respBody) == 0 {
		return nil, nil
	}
	return respBody, nil
}

// Get performs a GET request. Query filter expressions like "field=value" are
// passed through verbatim as repeated query[] parameters; the server, not the
// client, rejects malformed expressions.
func (c *Client) Get(ctx context.Context, endpoint string, filters []string) ([]byte, error) {
	if len(filters) > 0 {
		params := url.Values{}
		for _, f := range filters {
			params.Add("query[]", f)
		}
		endpoint += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, "", nil)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, endpoint, contentType, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, endpoint, contentType, body)
}

// PutBytes performs a PUT request with a raw octet-stream body. Used for file
// and picture uploads.
func (c *Client) PutBytes(ctx context.Context, endpoint string, data []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPut, endpoint, "application/octet-stream", bytes.NewReader(data))
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, endpoint, "", nil)
}

func encodeJSON(payload any) (io.Reader, string, error) {
	if payload == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}
