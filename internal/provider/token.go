package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// expiryBuffer is subtracted from the provider TTL so a token is never used
// within its last five minutes of real validity.
const expiryBuffer = 300 * time.Second

// TokenSource performs the client-credentials exchange against the provider
// token endpoint and caches the result until shortly before it expires.
type TokenSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	cache        CredentialCache
	httpClient   *http.Client
	group        singleflight.Group
	now          func() time.Time
}

func NewTokenSource(tokenURL, clientID, clientSecret string, cache CredentialCache) *TokenSource {
	return &TokenSource{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		cache:        cache,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token returns a valid bearer token, exchanging credentials only when the
// cached one has expired. Concurrent callers share a single exchange.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if cred, ok := s.cache.Get(); ok && cred.Valid(s.now()) {
		return cred.Token, nil
	}

	v, err, _ := s.group.Do("token", func() (any, error) {
		// Another caller in the same flight may have refilled the cache.
		if cred, ok := s.cache.Get(); ok && cred.Valid(s.now()) {
			return cred.Token, nil
		}
		return s.exchange(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate clears the cached credential so the next Token call
// re-authenticates. Called by the request proxy on a 401.
func (s *TokenSource) Invalidate() {
	s.cache.Invalidate()
}

func (s *TokenSource) exchange(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", fmt.Errorf("token exchange: %w", ErrInvalidCredentials)
	case resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("token exchange: %w", ErrAccessForbidden)
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("token exchange: %w", ErrProviderServer)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("token exchange: %w", &StatusError{Code: resp.StatusCode})
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("token exchange: %w", ErrMalformedResponse)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token exchange: %w", ErrMalformedResponse)
	}

	ttl := time.Duration(tr.ExpiresIn)*time.Second - expiryBuffer
	s.cache.Set(Credential{
		Token:     tr.AccessToken,
		ExpiresAt: s.now().Add(ttl),
	})

	return tr.AccessToken, nil
}
