package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid grocy configuration")
	// ErrInvalidResponse indicates a success response whose body does not
	// satisfy the expected shape
	ErrInvalidResponse = errors.New("invalid response from Grocy API")
)

// RequestError represents a Grocy API error response (HTTP status >= 400)
type RequestError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("grocy API error: status %d: %s", e.StatusCode, string(e.Body))
}

// IsNotFound checks if the error indicates a missing resource. Grocy answers
// missing lookups with 400 on some endpoints and 404 on others.
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 400 || e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// invalidf builds an ErrInvalidResponse-wrapped error.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidResponse, fmt.Sprintf(format, args...))
}

// missingField reports a required field absent from a response payload.
func missingField(model, field string) error {
	return invalidf("%s: missing required field %q", model, field)
}
