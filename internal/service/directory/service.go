package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

type workspaces interface {
	Get(ctx context.Context) (*workspace.Workspace, error)
}

// Service edits the shared client directory.
type Service struct {
	spaces workspaces
	log    *slog.Logger
}

func NewService(log *slog.Logger, spaces workspaces) *Service {
	return &Service{
		spaces: spaces,
		log:    log.With("service", "directory"),
	}
}

// List returns the clients whose name or email contains query, ignoring case.
// An empty query returns the whole directory.
func (s *Service) List(ctx context.Context, query string) ([]domain.Client, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return ws.Clients.List(), nil
	}
	return ws.Clients.Filter(func(c domain.Client) bool { return c.Matches(query) }), nil
}

func (s *Service) Add(ctx context.Context, draft domain.ClientDraft) (domain.Client, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.Client{}, err
	}

	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.TrimSpace(draft.Email)

	client, err := ws.Clients.Add(&draft)
	if err != nil {
		return domain.Client{}, fmt.Errorf("add client: %w", err)
	}

	s.log.InfoContext(ctx, "client added",
		slog.String("client_id", client.ID.String()),
		slog.String("email", client.Email),
	)
	return client, nil
}

// Update sets one field of a client. found is false when the id is unknown,
// which is not an error.
func (s *Service) Update(ctx context.Context, id uuid.UUID, field, value string) (client domain.Client, found bool, err error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.Client{}, false, err
	}

	client, found, err = ws.Clients.Update(id, field, strings.TrimSpace(value))
	if err != nil {
		return domain.Client{}, found, fmt.Errorf("update client: %w", err)
	}
	if found {
		s.log.InfoContext(ctx, "client updated",
			slog.String("client_id", id.String()),
			slog.String("field", field),
		)
	}
	return client, found, nil
}

// Remove deletes a client. Messages from the client stay in the inbox.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return err
	}
	if ws.Clients.Remove(id) {
		s.log.InfoContext(ctx, "client removed", slog.String("client_id", id.String()))
	}
	return nil
}
