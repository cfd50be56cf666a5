package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	port               int
	path               string
	timeout            time.Duration
	httpClient         *http.Client
	insecureSkipVerify bool
	logger             *zerolog.Logger
}

// WithPort sets the server port. Defaults to DefaultPort.
func WithPort(port int) Option {
	return func(o *clientOptions) {
		if port > 0 {
			o.port = port
		}
	}
}

// WithPath sets an URL path prefix, e.g. "grocy" for servers living under
// /grocy/api/.
func WithPath(path string) Option {
	return func(o *clientOptions) {
		o.path = path
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout and cancellation are the
// embedding application's concern; this is the hook for it.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.insecureSkipVerify = true
	}
}

// WithLogger sets the logger used for request tracing. Defaults to a no-op
// logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = &logger
	}
}
