package workspace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/pkg/ctxutil"
)

// Registry owns the workspaces of all signed-in users. Workspaces live for the
// lifetime of the process.
type Registry struct {
	mu       sync.Mutex
	spaces   map[uuid.UUID]*Workspace
	seedDemo bool
	now      func() time.Time
	log      *slog.Logger
}

func NewRegistry(log *slog.Logger, seedDemo bool) *Registry {
	return &Registry{
		spaces:   make(map[uuid.UUID]*Workspace),
		seedDemo: seedDemo,
		now:      time.Now,
		log:      log.With("component", "workspace"),
	}
}

// Get returns the workspace of the user in ctx, creating it on first use.
func (r *Registry) Get(ctx context.Context) (*Workspace, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.spaces[userID]; ok {
		return ws, nil
	}

	ws := New(r.now().UTC())
	if r.seedDemo {
		if err := SeedDemo(ws); err != nil {
			return nil, err
		}
	}
	r.spaces[userID] = ws

	r.log.InfoContext(ctx, "workspace created",
		slog.String("user_id", userID.String()),
		slog.Bool("demo", r.seedDemo),
	)
	return ws, nil
}

// Reset clears the signed-out user's inbox and reply panel and drops any AI
// completion still pending. Other panels survive so the user finds them again
// after signing back in.
func (r *Registry) Reset(userID uuid.UUID) {
	r.mu.Lock()
	ws, ok := r.spaces[userID]
	r.mu.Unlock()

	if ok {
		ws.SignOut()
	}
}
