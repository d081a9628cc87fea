package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Client is the request proxy for the provider's data endpoints. It attaches
// the bearer token, issues the GET, and classifies the outcome. No retries:
// the calls are idempotent read-only lookups and the route layer already
// degrades to fallback data, so blind retries only add latency.
type Client struct {
	baseURL    string
	tokens     *TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOptions configures the request proxy. Zero values fall back to a 10s
// timeout and 5 requests per second.
type ClientOptions struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
}

func NewClient(opts ClientOptions, tokens *TokenSource) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 5
	}

	burst := int(opts.RatePerSecond)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL: opts.BaseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst),
	}
}

// Fetch calls the given provider endpoint and returns the top-level data
// object. Empty-string parameter values are omitted from the query. A 2xx
// body without a data object is a failure, not an empty success: every
// normalizer assumes the key exists.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, params map[string]string) (map[string]any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.baseURL + "/" + string(endpoint)
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: create request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %v", endpoint, ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// The token outlived its provider-side validity. Clear it so the
		// next call re-authenticates.
		c.tokens.Invalidate()
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrTokenExpired)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrAccessForbidden)
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrInvalidParameters)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrEndpointNotFound)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrProviderServer)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("fetch %s: %w", endpoint, &StatusError{Code: resp.StatusCode})
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrMalformedResponse)
	}

	data, ok := payload["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, ErrMalformedResponse)
	}

	return data, nil
}
