package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrUpstreamFailed = errors.New("upstream request failed")

// UpstreamError reports a non-2xx or malformed response from an external API.
// StatusCode and Body are the upstream's own, kept verbatim for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
	Cause      error
}

func NewUpstreamError(statusCode int, body string) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Body:       body,
	}
}

func NewUpstreamErrorWithCause(statusCode int, body string, cause error) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Body:       body,
		Cause:      cause,
	}
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s: status %d", ErrUpstreamFailed, e.StatusCode)
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + sanitize(body)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamFailed
}

// HTTPStatus passes upstream client errors through and reports every other
// failure as a bad gateway.
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError {
		return e.StatusCode
	}
	return http.StatusBadGateway
}
