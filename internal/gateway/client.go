package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 3 * time.Minute

const (
	msgInvalidRequest = "Invalid Request"
	msgUnknownError   = "Unknown Error"
)

// StatusError reports a non-200 answer from the relay.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay returned status %d", e.StatusCode)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries a running relay for a date's report.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient returns a client for the relay at baseURL (e.g. http://127.0.0.1:8080).
// A nil httpClient gets a default with a generous timeout, since one report
// may take many upstream calls.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	var doer httpDoer = httpClient
	if httpClient == nil {
		doer = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: doer,
	}
}

// Query fetches the report for date. The returned text is always printable:
// the report on 200, otherwise a short message naming the failure, in which
// case err is a *StatusError.
func (c *Client) Query(ctx context.Context, date string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(date), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying relay: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("reading relay response: %w", err)
		}
		return string(body), nil
	case http.StatusBadRequest:
		return msgInvalidRequest, &StatusError{StatusCode: resp.StatusCode}
	case http.StatusInternalServerError:
		return msgUnknownError, &StatusError{StatusCode: resp.StatusCode}
	default:
		return fmt.Sprintf("Unexpected status %d", resp.StatusCode), &StatusError{StatusCode: resp.StatusCode}
	}
}
