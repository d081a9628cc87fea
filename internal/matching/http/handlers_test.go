package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroMantra/astro-backend/config"
	"github.com/AstroMantra/astro-backend/internal/matching"
	"github.com/AstroMantra/astro-backend/internal/provider"
)

func newTestRouter(t *testing.T, dataHandler http.HandlerFunc) (*gin.Engine, *atomic.Int64, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
	}))

	var upstreamCalls atomic.Int64
	dataServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
		dataHandler(w, r)
	}))

	tokens := provider.NewTokenSource(tokenServer.URL, "id", "secret", provider.NewMemoryCache())
	client := provider.NewClient(provider.ClientOptions{BaseURL: dataServer.URL}, tokens)

	defaults := config.AstroConfig{DefaultLatitude: 23.1765, DefaultLongitude: 75.7885, Ayanamsa: "1"}

	r := gin.New()
	New(matching.NewService(client), defaults).Register(r.Group("/api/v1"))

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

func postMatch(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/matching", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelopeBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

const fullBody = `{
	"groom_dob": "1994-03-12",
	"groom_birth_time": "09:15",
	"bride_dob": "1996-07-01",
	"bride_birth_time": "21:40"
}`

func TestMatch_DefaultsApplied(t *testing.T) {
	var q map[string]string
	r, _, cleanup := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		q = map[string]string{
			"groom_dob":         req.URL.Query().Get("groom_dob"),
			"bride_dob":         req.URL.Query().Get("bride_dob"),
			"groom_coordinates": req.URL.Query().Get("groom_coordinates"),
			"bride_coordinates": req.URL.Query().Get("bride_coordinates"),
			"system":            req.URL.Query().Get("system"),
		}
		w.Write([]byte(`{"data":{"total_points":28.5}}`))
	})
	defer cleanup()

	w, env := postMatch(t, r, fullBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "1994-03-12T09:15:00Z", q["groom_dob"])
	assert.Equal(t, "1996-07-01T21:40:00Z", q["bride_dob"])
	assert.Equal(t, "23.1765,75.7885", q["groom_coordinates"])
	assert.Equal(t, "23.1765,75.7885", q["bride_coordinates"])
	assert.Equal(t, "ashtakoota", q["system"])

	var data struct {
		TotalScore    float64 `json:"total_score"`
		Compatibility string  `json:"compatibility"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 28.5, data.TotalScore)
	assert.Equal(t, "Excellent", data.Compatibility)
}

func TestMatch_MissingParty(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			"groom only",
			`{"groom_dob":"1994-03-12","groom_birth_time":"09:15"}`,
			"bride_dob is required",
		},
		{
			"no birth times",
			`{"groom_dob":"1994-03-12","bride_dob":"1996-07-01"}`,
			"groom_birth_time is required",
		},
		{
			"empty body",
			`{}`,
			"groom_dob is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, upstreamCalls, cleanup := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})
			defer cleanup()

			w, env := postMatch(t, r, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantErr, env.Error)
			assert.Equal(t, int64(0), upstreamCalls.Load())
		})
	}
}

func TestMatch_MalformedJSON(t *testing.T) {
	r, upstreamCalls, cleanup := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {})
	defer cleanup()

	w, env := postMatch(t, r, `{"groom_dob":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, int64(0), upstreamCalls.Load())
}

func TestMatch_FallbackOnProviderError(t *testing.T) {
	r, _, cleanup := newTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer cleanup()

	w, env := postMatch(t, r, fullBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Warning)

	// Fallback reports still carry all eight kutas with their ceilings.
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	for _, name := range []string{"varna", "vasya", "tara", "yoni", "graha_maitri", "gana", "bhakoot", "nadi"} {
		kuta, ok := data[name].(map[string]any)
		require.True(t, ok, name)
		assert.Greater(t, kuta["max_score"], 0.0, name)
	}
	assert.Equal(t, 36.0, data["max_total"])
}
