package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrMissingAPIKey marks a provider whose key was not configured at
// startup. Calls fail soft with this error rather than crashing.
var ErrMissingAPIKey = errors.New("API key not configured")

// StatusError classifies a non-2xx provider response into a
// human-readable error. The aggregator logs these but never surfaces
// them past its own boundary.
func StatusError(provider string, status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%s rate limit exceeded, try again later", provider)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%s authentication failed, check API key", provider)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%s service is temporarily unavailable", provider)
	default:
		return fmt.Errorf("%s request failed with status %d", provider, status)
	}
}

// TransportError classifies a request-level failure, distinguishing
// timeouts from other transport errors.
func TransportError(provider string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s request timed out: %w", provider, err)
	}
	return fmt.Errorf("%s request failed: %w", provider, err)
}
