package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/PAVAN4141/CA.ai/internal/adapter/gemini"
	"github.com/PAVAN4141/CA.ai/internal/adapter/mailcompose"
	"github.com/PAVAN4141/CA.ai/internal/auth"
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

// sessionSweepInterval is how often expired revoked-session rows are deleted.
const sessionSweepInterval = time.Hour

// App is the wired console: stores, services and the HTTP handler.
type App struct {
	Handler http.Handler

	auth    *authsvc.Service
	stores  *stores
	limiter *middleware.RateLimiter
}

// New wires every component from cfg. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ai, err := gemini.New(ctx, logger, cfg.AI, gemini.NewMetrics(reg))
	if err != nil {
		st.close()
		return nil, err
	}
	composer, err := mailcompose.New(cfg.Mail)
	if err != nil {
		st.close()
		return nil, err
	}

	spaces := workspace.NewRegistry(logger, cfg.Workspace.SeedDemo)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, st.credentials, st.sessions, jwtMgr, spaces, cfg.Auth)
	directoryService := directory.NewService(logger, spaces)
	auditService := audit.NewService(logger, spaces)
	taxService := taxreturn.NewService(logger, spaces)
	inboxService := inbox.NewService(logger, spaces, inbox.DemoGenerator{}, composer)
	assistantService := assistant.NewService(logger, spaces, ai, cfg.AI.SearchGrounding)
	shellService := shell.NewService(logger, spaces)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		Health:     rest.NewHealthHandler(st.sessions, st.driver, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Shell:      rest.NewShellHandler(shellService, logger),
		Clients:    rest.NewRecordHandler(directoryService, "clients", "q", logger),
		Audits:     rest.NewRecordHandler(auditService, "audits", "status", logger),
		TaxReturns: rest.NewRecordHandler(taxService, "tax_returns", "status", logger),
		Inbox:      rest.NewInboxHandler(inboxService, logger),
		Assistant:  rest.NewAssistantHandler(assistantService, logger),
		Tokens:     authService,
		Limiter:    limiter,
		RateLimit:  cfg.RateLimit,
		CORS:       cfg.CORS,
		Metrics:    middleware.NewHTTPMetrics(reg),
		Gatherer:   reg,
	})

	return &App{
		Handler: handler,
		auth:    authService,
		stores:  st,
		limiter: limiter,
	}, nil
}

// Close stops background work and releases the credential store.
func (a *App) Close() {
	a.limiter.Stop()
	a.stores.close()
}

// SweepSessions deletes expired revoked-session rows every interval until ctx is done.
func (a *App) SweepSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// The service logs failures; the next tick retries.
			_, _ = a.auth.CleanupRevokedSessions(ctx)
		}
	}
}

// Run is the application entry point. It loads configuration, wires the
// console and serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Auth.StoreDriver()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           a.Handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.SweepSessions(gctx, sessionSweepInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
