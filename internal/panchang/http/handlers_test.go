package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroMantra/astro-backend/config"
	"github.com/AstroMantra/astro-backend/internal/panchang"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

var testDefaults = config.AstroConfig{
	DefaultLatitude:  23.1765,
	DefaultLongitude: 75.7885,
	Ayanamsa:         "1",
}

// newTestRouter wires the panchang routes against stub token and data
// servers. upstreamCalls counts data-endpoint hits.
func newTestRouter(t *testing.T, tokenStatus int, dataHandler http.HandlerFunc) (*gin.Engine, *atomic.Int64, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			return
		}
		w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
	}))

	var upstreamCalls atomic.Int64
	dataServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
		dataHandler(w, r)
	}))

	tokens := provider.NewTokenSource(tokenServer.URL, "id", "secret", provider.NewMemoryCache())
	client := provider.NewClient(provider.ClientOptions{BaseURL: dataServer.URL}, tokens)

	r := gin.New()
	New(panchang.NewService(client, nil), testDefaults).Register(r.Group("/api/v1"))

	return r, &upstreamCalls, func() {
		tokenServer.Close()
		dataServer.Close()
	}
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Warning string          `json:"warning"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, target string) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)

	var body envelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestDaily_DefaultCoordinates(t *testing.T) {
	var gotCoordinates string
	r, _, cleanup := newTestRouter(t, http.StatusOK, func(w http.ResponseWriter, req *http.Request) {
		gotCoordinates = req.URL.Query().Get("coordinates")
		w.Write([]byte(`{"data":{"sunrise":"2024-10-09T06:18:00+05:30","sunset":"2024-10-09T17:52:00+05:30"}}`))
	})
	defer cleanup()

	w, body := doRequest(t, r, http.MethodGet, "/api/v1/panchang?date=2024-10-09")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Empty(t, body.Warning)
	assert.Equal(t, "23.1765,75.7885", gotCoordinates)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "Wednesday, October 9, 2024", data["date"])
	assert.Equal(t, "6:18 AM", data["sunrise"])
	assert.Equal(t, "5:52 PM", data["sunset"])
}

func TestDaily_FallbackOnInvalidCredentials(t *testing.T) {
	// The token endpoint rejects the credentials entirely. The route must
	// still answer 200 with fallback data and a warning, never a 500.
	r, _, cleanup := newTestRouter(t, http.StatusUnauthorized, func(w http.ResponseWriter, req *http.Request) {})
	defer cleanup()

	w, body := doRequest(t, r, http.MethodGet, "/api/v1/panchang")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Warning)

	// The fallback payload is structurally identical to a live one.
	var fallbackKeys, liveKeys map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &fallbackKeys))

	liveJSON, err := json.Marshal(panchang.Normalize(map[string]any{}, panchang.Request{}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(liveJSON, &liveKeys))

	for key := range liveKeys {
		assert.Contains(t, fallbackKeys, key)
	}
	assert.Len(t, fallbackKeys, len(liveKeys))
}

func TestDaily_FallbackOnProviderError(t *testing.T) {
	r, _, cleanup := newTestRouter(t, http.StatusOK, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer cleanup()

	w, body := doRequest(t, r, http.MethodGet, "/api/v1/panchang")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Warning)
}

func TestDaily_BadDate(t *testing.T) {
	r, upstreamCalls, cleanup := newTestRouter(t, http.StatusOK, func(w http.ResponseWriter, req *http.Request) {})
	defer cleanup()

	w, body := doRequest(t, r, http.MethodGet, "/api/v1/panchang?date=tomorrow")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, int64(0), upstreamCalls.Load())
}

func TestCalendar_TypeDefault(t *testing.T) {
	var gotType string
	r, _, cleanup := newTestRouter(t, http.StatusOK, func(w http.ResponseWriter, req *http.Request) {
		gotType = req.URL.Query().Get("calendar")
		w.Write([]byte(`{"data":{"festivals":["Navaratri"]}}`))
	})
	defer cleanup()

	w, body := doRequest(t, r, http.MethodGet, "/api/v1/calendar?date=2024-10-09")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "purnimanta", gotType)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, []any{"Navaratri"}, data["festivals"])
	assert.Equal(t, []any{"Navaratri"}, data["special_days"])
}

func TestCalendar_FallbackOnProviderError(t *testing.T) {
	r, _, cleanup := newTestRouter(t, http.StatusOK, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	})
	defer cleanup()

	w, body := doRequest(t, r, http.MethodGet, "/api/v1/calendar")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Warning)
}
