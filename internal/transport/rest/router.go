package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PAVAN4141/CA.ai/internal/auth"
	"github.com/PAVAN4141/CA.ai/internal/config"
	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Claims, error)
}

type (
	ClientHandler    = RecordHandler[domain.Client, domain.ClientDraft, string]
	AuditHandler     = RecordHandler[domain.AuditEntry, domain.AuditDraft, domain.AuditStatus]
	TaxReturnHandler = RecordHandler[domain.TaxEntry, domain.TaxDraft, domain.TaxStatus]
)

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Logger *slog.Logger

	Health     *HealthHandler
	Auth       *AuthHandler
	Shell      *ShellHandler
	Clients    *ClientHandler
	Audits     *AuditHandler
	TaxReturns *TaxReturnHandler
	Inbox      *InboxHandler
	Assistant  *AssistantHandler

	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig

	// Metrics and Gatherer are optional; without them /metrics is not mounted.
	Metrics  *middleware.HTTPMetrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the console API: probes and sign-in are public, everything
// under /api needs a valid session.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	public := d.Limiter.Limit("auth", d.RateLimit.AuthPerMinute)
	mux.Handle("POST /auth/lookup", public(http.HandlerFunc(d.Auth.Lookup)))
	mux.Handle("POST /auth/register", public(http.HandlerFunc(d.Auth.Register)))
	mux.Handle("POST /auth/login", public(http.HandlerFunc(d.Auth.Login)))
	mux.Handle("POST /auth/logout", middleware.RequireAuth(http.HandlerFunc(d.Auth.Logout)))

	protected := middleware.Chain(
		middleware.RequireAuth,
		d.Limiter.Limit("api", d.RateLimit.APIPerMinute),
	)
	api := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, protected(h))
	}

	api("GET /api/shell", d.Shell.Get)
	api("PUT /api/shell", d.Shell.Navigate)

	mountRecords(api, "/api/clients", d.Clients)
	mountRecords(api, "/api/audits", d.Audits)
	mountRecords(api, "/api/tax-returns", d.TaxReturns)

	api("POST /api/inbox/sync", d.Inbox.Sync)
	api("GET /api/inbox", d.Inbox.List)
	api("DELETE /api/inbox/{id}", d.Inbox.Remove)
	api("POST /api/inbox/{id}/reply", d.Inbox.OpenReply)
	api("GET /api/inbox/reply", d.Inbox.Reply)
	api("POST /api/inbox/reply/view", d.Inbox.ViewReply)
	api("POST /api/inbox/reply/edit", d.Inbox.EditReply)
	api("POST /api/inbox/reply/back", d.Inbox.BackToOptions)
	api("PUT /api/inbox/reply/draft", d.Inbox.SetDraft)
	api("POST /api/inbox/reply/submit", d.Inbox.SubmitReply)
	api("POST /api/inbox/reply/cancel", d.Inbox.CancelReply)

	api("POST /api/assistant/chat", d.Assistant.Ask)
	api("GET /api/assistant/chat", d.Assistant.Transcript)
	api("POST /api/assistant/advisory", d.Assistant.Analyze)
	api("GET /api/assistant/advisory", d.Assistant.Analysis)
	api("POST /api/assistant/visualize", d.Assistant.Visualize)
	api("GET /api/assistant/visualize", d.Assistant.Chart)

	var metrics middleware.Middleware
	if d.Metrics != nil {
		metrics = middleware.Metrics(d.Metrics, mux)
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		metrics,
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	)(mux)
}

func mountRecords[T any, D any, F ~string](api func(string, http.HandlerFunc), base string, h *RecordHandler[T, D, F]) {
	api("GET "+base, h.List)
	api("POST "+base, h.Add)
	api("PATCH "+base+"/{id}", h.Update)
	api("DELETE "+base+"/{id}", h.Remove)
}
