package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultBaseURL is the root of the Guide to Pharmacology web services.
const DefaultBaseURL = "https://www.guidetopharmacology.org/services"

// DefaultTimeout bounds a single outbound call.
const DefaultTimeout = 20 * time.Second

// Fetcher is the outbound seam the handlers depend on. Tests substitute a
// fake implementation so handler logic can be exercised without the real
// service.
type Fetcher interface {
	Fetch(ctx context.Context, path string, params Params) ([]byte, error)
}

// Client issues GET requests against a fixed base URL. It is safe for
// concurrent use; the embedded http.Client pools connections and keeps no
// per-call state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service rooted at baseURL. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch issues exactly one GET for base+path with the given query parameters
// and returns the raw response body. There are no retries. Failures are
// classified: deadline overruns as ErrTimeout, transport problems as
// ErrConnectivity, and non-2xx statuses as *StatusError. The body is not
// parsed here so the relay can tell "success status but broken body" apart
// from "failure status".
func (c *Client) Fetch(ctx context.Context, path string, params Params) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", fullURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrConnectivity, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
