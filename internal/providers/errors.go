package providers

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RemoteQueryError carries the validation errors reported by the upstream API.
// Errors holds the upstream error list exactly as it was received.
type RemoteQueryError struct {
	Provider string
	Errors   string
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("%s rejected query: %s", e.Provider, e.Errors)
}

// AsRemoteQueryError attempts to unwrap an error into a RemoteQueryError.
func AsRemoteQueryError(err error) (*RemoteQueryError, bool) {
	var rqErr *RemoteQueryError
	if errors.As(err, &rqErr) {
		return rqErr, true
	}
	return nil, false
}

// RemoteTransportError captures a non-200 upstream response or a failed exchange.
// StatusCode and Body are relayed to callers unchanged.
type RemoteTransportError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteTransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed (status=%d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *RemoteTransportError) Unwrap() error {
	return e.Err
}

// NewExchangeError wraps a transport or decode failure as a bad-gateway RemoteTransportError.
func NewExchangeError(provider string, err error) *RemoteTransportError {
	return &RemoteTransportError{
		Provider:   provider,
		StatusCode: http.StatusBadGateway,
		Body:       http.StatusText(http.StatusBadGateway),
		Err:        err,
	}
}

// AsRemoteTransportError attempts to unwrap an error into a RemoteTransportError.
func AsRemoteTransportError(err error) (*RemoteTransportError, bool) {
	var rtErr *RemoteTransportError
	if errors.As(err, &rtErr) {
		return rtErr, true
	}
	return nil, false
}
