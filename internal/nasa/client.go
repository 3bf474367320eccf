package nasa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"astrolink/internal/metrics"
)

const userAgent = "AstroLink-NASA-Explorer/1.0"

// HTTPError is returned by Client.Get when the upstream answered with a
// non-2xx status. The body is kept so handlers can surface it as `details`.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d", e.StatusCode)
}

// Client is the shared HTTP client for all upstream providers. One instance
// serves every request; it holds no per-request state beyond the API key.
type Client struct {
	hc  *http.Client
	key string
	ep  Endpoints
}

// NewClient creates an upstream client with the given API key and endpoint
// catalog.
func NewClient(apiKey string, ep Endpoints) *Client {
	return &Client{
		hc: &http.Client{
			// Per-call deadlines come from the request context; this is a
			// hard ceiling in case a caller forgets one.
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
		key: apiKey,
		ep:  ep,
	}
}

// Key returns the configured api.nasa.gov API key.
func (c *Client) Key() string { return c.key }

// Endpoints returns the upstream base URL catalog.
func (c *Client) Endpoints() Endpoints { return c.ep }

// Get fetches url within the given timeout and returns the response body.
// Non-2xx statuses are returned as *HTTPError; transport errors and timeouts
// come back as-is. The caller never has to close anything.
func (c *Client) Get(ctx context.Context, kind Kind, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.hc.Do(req)
	metrics.ObserveUpstream(string(kind), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
