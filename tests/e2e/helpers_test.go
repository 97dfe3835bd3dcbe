//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/PAVAN4141/CA.ai/internal/adapter/gemini"
	"github.com/PAVAN4141/CA.ai/internal/adapter/mailcompose"
	"github.com/PAVAN4141/CA.ai/internal/adapter/postgres"
	"github.com/PAVAN4141/CA.ai/internal/adapter/postgres/testhelper"
	authpkg "github.com/PAVAN4141/CA.ai/internal/auth"
	"github.com/PAVAN4141/CA.ai/internal/config"
	"github.com/PAVAN4141/CA.ai/internal/service/assistant"
	"github.com/PAVAN4141/CA.ai/internal/service/audit"
	authsvc "github.com/PAVAN4141/CA.ai/internal/service/auth"
	"github.com/PAVAN4141/CA.ai/internal/service/directory"
	"github.com/PAVAN4141/CA.ai/internal/service/inbox"
	"github.com/PAVAN4141/CA.ai/internal/service/shell"
	"github.com/PAVAN4141/CA.ai/internal/service/taxreturn"
	"github.com/PAVAN4141/CA.ai/internal/transport/middleware"
	"github.com/PAVAN4141/CA.ai/internal/transport/rest"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the console backed by a real PostgreSQL container
// (shared via testhelper). The AI provider has no API key, so every provider
// call fails and the panels fall back.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	ctx := context.Background()

	authCfg := config.AuthConfig{
		JWTSecret:         "test-secret-at-least-32-chars-long!!",
		JWTIssuer:         "test-issuer",
		AccessTokenTTL:    15 * time.Minute,
		Store:             config.StorePostgres,
		MinPasswordLength: 8,
		BcryptCost:        4,
	}

	reg := prometheus.NewRegistry()
	ai, err := gemini.New(ctx, logger, config.AIConfig{RequestTimeout: time.Second}, gemini.NewMetrics(reg))
	require.NoError(t, err)

	spaces := workspace.NewRegistry(logger, false)
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	sessions := postgres.NewSessionRepo(pool)

	authService := authsvc.NewService(logger, postgres.NewCredentialRepo(pool), sessions, jwtMgr, spaces, authCfg)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		Health:     rest.NewHealthHandler(sessions, config.StorePostgres, "test-version"),
		Auth:       rest.NewAuthHandler(authService, logger),
		Shell:      rest.NewShellHandler(shell.NewService(logger, spaces), logger),
		Clients:    rest.NewRecordHandler(directory.NewService(logger, spaces), "clients", "q", logger),
		Audits:     rest.NewRecordHandler(audit.NewService(logger, spaces), "audits", "status", logger),
		TaxReturns: rest.NewRecordHandler(taxreturn.NewService(logger, spaces), "tax_returns", "status", logger),
		Inbox:      rest.NewInboxHandler(inbox.NewService(logger, spaces, inbox.DemoGenerator{}, mailcompose.Gmail{}), logger),
		Assistant:  rest.NewAssistantHandler(assistant.NewService(logger, spaces, ai, true), logger),
		Tokens:     authService,
		Limiter:    limiter,
		CORS:       config.CORSConfig{AllowedOrigins: "*"},
		Metrics:    middleware.NewHTTPMetrics(reg),
		Gatherer:   reg,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// call sends a JSON request and returns the status and raw body.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

type session struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
}

// uniqueEmail returns an address no other test uses.
func uniqueEmail() string {
	return fmt.Sprintf("partner-%s@firm.in", uuid.New().String()[:8])
}

// registerUser signs up a fresh user and returns the session.
func registerUser(t *testing.T, ts *testServer) (session, string) {
	t.Helper()

	email := uniqueEmail()
	code, body := ts.call(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email": email, "password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	return decode[session](t, body), email
}
