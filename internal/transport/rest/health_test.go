package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	down := errors.New("connection refused")

	tests := []struct {
		name       string
		pingErr    error
		handler    func(h *HealthHandler) http.HandlerFunc
		wantCode   int
		wantStatus string
	}{
		{"live ignores store", down, func(h *HealthHandler) http.HandlerFunc { return h.Live }, http.StatusOK, "ok"},
		{"ready up", nil, func(h *HealthHandler) http.HandlerFunc { return h.Ready }, http.StatusOK, "ok"},
		{"ready down", down, func(h *HealthHandler) http.HandlerFunc { return h.Ready }, http.StatusServiceUnavailable, "down"},
		{"health up", nil, func(h *HealthHandler) http.HandlerFunc { return h.Health }, http.StatusOK, "ok"},
		{"health down", down, func(h *HealthHandler) http.HandlerFunc { return h.Health }, http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(pingerStub{err: tt.pingErr}, "sqlite", "v1.2.3")
			rec := httptest.NewRecorder()
			tt.handler(h)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			var resp HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestHealthHandler_HealthReportsStore(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(pingerStub{}, "postgres", "v1.2.3")
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "v1.2.3", resp.Version)

	comp, ok := resp.Components["credential_store"]
	require.True(t, ok)
	assert.Equal(t, "ok", comp.Status)
	assert.Equal(t, "postgres", comp.Driver)
	assert.NotEmpty(t, comp.Latency)
}
