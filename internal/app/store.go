package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/adapter/memory"
	"github.com/PAVAN4141/CA.ai/internal/adapter/postgres"
	"github.com/PAVAN4141/CA.ai/internal/adapter/sqlite"
	"github.com/PAVAN4141/CA.ai/internal/config"
	"github.com/PAVAN4141/CA.ai/internal/domain"
)

type credentialStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) error
}

type sessionStore interface {
	Revoke(ctx context.Context, session *domain.RevokedSession) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Ping(ctx context.Context) error
}

// stores is the credential backend chosen by auth.store.
type stores struct {
	driver      string
	credentials credentialStore
	sessions    sessionStore
	close       func()
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	driver := cfg.Auth.StoreDriver()

	switch driver {
	case config.StoreMemory:
		logger.WarnContext(ctx, "credentials are kept in memory and lost on restart")
		return &stores{
			driver:      driver,
			credentials: memory.NewCredentialRepo(),
			sessions:    memory.NewSessionRepo(),
			close:       func() {},
		}, nil

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.InfoContext(ctx, "sqlite store ready", slog.String("path", cfg.SQLite.Path))
		return &stores{
			driver:      driver,
			credentials: sqlite.NewCredentialRepo(db),
			sessions:    sqlite.NewSessionRepo(db),
			close:       func() { _ = db.Close() },
		}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		logger.InfoContext(ctx, "postgres store ready", slog.Int("migrations_applied", applied))
		return &stores{
			driver:      driver,
			credentials: postgres.NewCredentialRepo(pool),
			sessions:    postgres.NewSessionRepo(pool),
			close:       pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown credential store %q", cfg.Auth.Store)
	}
}
