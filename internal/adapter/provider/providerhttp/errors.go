// Package providerhttp maps HTTP transport failures and status codes of the
// food-data providers into domain.ProviderError kinds.
package providerhttp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

// MaxBodySize caps how much of a provider response is read.
const MaxBodySize = 5 * 1024 * 1024

// TransportError classifies an error returned by http.Client.Do.
// Cancellation by the caller is passed through untouched.
func TransportError(provider string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewProviderError(provider, domain.ErrTimeout, 0, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewProviderError(provider, domain.ErrTimeout, 0, err)
	}

	return domain.NewProviderError(provider, domain.ErrNetworkUnavailable, 0, err)
}

// StatusError classifies a non-success HTTP status.
func StatusError(provider string, status int) error {
	var kind error
	switch {
	case status == http.StatusTooManyRequests:
		kind = domain.ErrRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = domain.ErrProviderAuth
	case status >= 500:
		kind = domain.ErrServerError
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		kind = domain.ErrTimeout
	default:
		kind = domain.ErrInvalidRequest
	}
	return domain.NewProviderError(provider, kind, status, nil)
}

// ReadBody reads at most MaxBodySize bytes of the response body.
// A failure while reading counts as a transport failure.
func ReadBody(provider string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, TransportError(provider, fmt.Errorf("read body: %w", err))
	}
	return body, nil
}

// DecodeError wraps a JSON decoding failure.
func DecodeError(provider string, err error) error {
	return domain.NewProviderError(provider, domain.ErrMalformedResponse, 0, fmt.Errorf("decode json: %w", err))
}
