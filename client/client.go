// Package client provides a typed Go client for the astro backend API.
// Every call returns the normalized record plus the warning string the
// backend attaches when it substituted fallback data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	horoscopedomain "github.com/AstroMantra/astro-backend/internal/horoscope/domain"
	matchingdomain "github.com/AstroMantra/astro-backend/internal/matching/domain"
	numerologydomain "github.com/AstroMantra/astro-backend/internal/numerology/domain"
	panchangdomain "github.com/AstroMantra/astro-backend/internal/panchang/domain"
)

// APIError is returned when the API responds with a non-2xx status or a
// success:false envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("astro api %d: %s", e.Status, e.Message)
}

// Client is a typed client for the astro backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// New creates a new Client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Warning string          `json:"warning"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) (string, error) {
	reqURL := c.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return "", err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", &APIError{Status: resp.StatusCode, Message: "undecodable response"}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return "", &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", &APIError{Status: resp.StatusCode, Message: "undecodable data payload"}
		}
	}
	return env.Warning, nil
}

// PanchangParams selects the date and place; zero values mean the backend
// defaults.
type PanchangParams struct {
	Date      string
	Latitude  string
	Longitude string
}

func (p PanchangParams) query() url.Values {
	q := url.Values{}
	setIf(q, "date", p.Date)
	setIf(q, "latitude", p.Latitude)
	setIf(q, "longitude", p.Longitude)
	return q
}

// Panchang calls GET /api/v1/panchang.
func (c *Client) Panchang(ctx context.Context, p PanchangParams) (panchangdomain.Panchang, string, error) {
	var out panchangdomain.Panchang
	warning, err := c.do(ctx, http.MethodGet, "/api/v1/panchang", p.query(), nil, &out)
	return out, warning, err
}

// CalendarParams adds the calendar system variant.
type CalendarParams struct {
	PanchangParams
	Type string
}

// Calendar calls GET /api/v1/calendar.
func (c *Client) Calendar(ctx context.Context, p CalendarParams) (panchangdomain.CalendarDay, string, error) {
	q := p.query()
	setIf(q, "type", p.Type)

	var out panchangdomain.CalendarDay
	warning, err := c.do(ctx, http.MethodGet, "/api/v1/calendar", q, nil, &out)
	return out, warning, err
}

// HoroscopeParams carries the required birth date and time plus optional
// place and chart type.
type HoroscopeParams struct {
	Date      string
	Time      string
	Latitude  string
	Longitude string
	ChartType string
}

// Horoscope calls GET /api/v1/horoscope.
func (c *Client) Horoscope(ctx context.Context, p HoroscopeParams) (horoscopedomain.BirthChart, string, error) {
	q := url.Values{}
	setIf(q, "date", p.Date)
	setIf(q, "time", p.Time)
	setIf(q, "latitude", p.Latitude)
	setIf(q, "longitude", p.Longitude)
	setIf(q, "chart_type", p.ChartType)

	var out horoscopedomain.BirthChart
	warning, err := c.do(ctx, http.MethodGet, "/api/v1/horoscope", q, nil, &out)
	return out, warning, err
}

// MatchingParams is the POST body for the compatibility route.
type MatchingParams struct {
	GroomDOB         string `json:"groom_dob"`
	GroomBirthTime   string `json:"groom_birth_time"`
	GroomCoordinates string `json:"groom_coordinates,omitempty"`
	BrideDOB         string `json:"bride_dob"`
	BrideBirthTime   string `json:"bride_birth_time"`
	BrideCoordinates string `json:"bride_coordinates,omitempty"`
	MatchingSystem   string `json:"matching_system,omitempty"`
}

// Matching calls POST /api/v1/matching.
func (c *Client) Matching(ctx context.Context, p MatchingParams) (matchingdomain.MatchReport, string, error) {
	var out matchingdomain.MatchReport
	warning, err := c.do(ctx, http.MethodPost, "/api/v1/matching", nil, p, &out)
	return out, warning, err
}

// NumerologyParams carries the required name and date plus the optional
// system selector.
type NumerologyParams struct {
	Name   string
	Date   string
	System string
}

// Numerology calls GET /api/v1/numerology.
func (c *Client) Numerology(ctx context.Context, p NumerologyParams) (numerologydomain.Profile, string, error) {
	q := url.Values{}
	setIf(q, "name", p.Name)
	setIf(q, "date", p.Date)
	setIf(q, "system", p.System)

	var out numerologydomain.Profile
	warning, err := c.do(ctx, http.MethodGet, "/api/v1/numerology", q, nil, &out)
	return out, warning, err
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
