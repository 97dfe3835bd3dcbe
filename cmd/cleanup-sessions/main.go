// Command cleanup-sessions deletes revoked-session rows whose tokens have
// expired anyway. It is intended to be invoked by an external cron job when
// the postgres credential store is shared by several server instances.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/PAVAN4141/CA.ai/internal/adapter/postgres"
	"github.com/PAVAN4141/CA.ai/internal/app"
	"github.com/PAVAN4141/CA.ai/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Auth.StoreDriver() != config.StorePostgres {
		logger.Error("cleanup-sessions requires the postgres store", slog.String("store", cfg.Auth.Store))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()
	deleted, err := postgres.NewSessionRepo(pool).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("delete expired sessions failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", now),
		)
		os.Exit(1)
	}

	logger.Info("revoked session cleanup completed",
		slog.Int("deleted", deleted),
		slog.Time("threshold", now),
	)
}
