package taxreturn

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

// Service tracks tax return filings.
type Service struct {
	spaces workspaces
	log    *slog.Logger
}

func NewService(log *slog.Logger, spaces workspaces) *Service {
	return &Service{
		spaces: spaces,
		log:    log.With("service", "taxreturn"),
	}
}

// List returns tracked returns in insertion order, optionally narrowed to one status.
func (s *Service) List(ctx context.Context, status domain.TaxStatus) ([]domain.TaxEntry, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return ws.TaxReturns.List(), nil
	}
	return ws.TaxReturns.Filter(func(r domain.TaxEntry) bool { return r.Status == status }), nil
}

func (s *Service) Add(ctx context.Context, draft domain.TaxDraft) (domain.TaxEntry, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.TaxEntry{}, err
	}

	draft.ClientName = strings.TrimSpace(draft.ClientName)

	entry, err := ws.TaxReturns.Add(&draft)
	if err != nil {
		return domain.TaxEntry{}, fmt.Errorf("add tax return: %w", err)
	}

	s.log.InfoContext(ctx, "tax return added",
		slog.String("tax_return_id", entry.ID.String()),
		slog.String("client", entry.ClientName),
		slog.String("status", entry.Status.String()),
	)
	return entry, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, field, value string) (domain.TaxEntry, bool, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.TaxEntry{}, false, err
	}

	entry, found, err := ws.TaxReturns.Update(id, field, value)
	if err != nil {
		return domain.TaxEntry{}, found, fmt.Errorf("update tax return: %w", err)
	}
	if found {
		s.log.InfoContext(ctx, "tax return updated",
			slog.String("tax_return_id", id.String()),
			slog.String("field", field),
		)
	}
	return entry, found, nil
}

func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return err
	}
	if ws.TaxReturns.Remove(id) {
		s.log.InfoContext(ctx, "tax return removed", slog.String("tax_return_id", id.String()))
	}
	return nil
}
