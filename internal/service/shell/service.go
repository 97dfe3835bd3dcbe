package shell

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

type workspaces interface {
	Get(ctx context.Context) (*workspace.Workspace, error)
}

// Service reports and switches the active console panel.
type Service struct {
	spaces workspaces
	log    *slog.Logger
}

func NewService(log *slog.Logger, spaces workspaces) *Service {
	return &Service{
		spaces: spaces,
		log:    log.With("service", "shell"),
	}
}

// State is what the console needs to render its frame.
type State struct {
	Active domain.Panel          `json:"active"`
	Panels []domain.Panel        `json:"panels"`
	Stats  domain.DashboardStats `json:"stats"`
}

func (s *Service) State(ctx context.Context) (State, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return State{}, err
	}
	return State{
		Active: ws.Panel(),
		Panels: domain.Panels,
		Stats:  ws.Stats(),
	}, nil
}

func (s *Service) Navigate(ctx context.Context, panel domain.Panel) (State, error) {
	if !panel.IsValid() {
		return State{}, domain.NewValidationError("panel", fmt.Sprintf("unknown panel %q", panel))
	}
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return State{}, err
	}

	from := ws.Panel()
	ws.Navigate(panel)
	if from != panel {
		s.log.DebugContext(ctx, "panel changed",
			slog.String("from", from.String()),
			slog.String("to", panel.String()),
		)
	}
	return s.State(ctx)
}
