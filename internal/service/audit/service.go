package audit

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

// Service manages the audit planner.
type Service struct {
	spaces workspaces
	log    *slog.Logger
}

func NewService(log *slog.Logger, spaces workspaces) *Service {
	return &Service{
		spaces: spaces,
		log:    log.With("service", "audit"),
	}
}

// List returns scheduled audits in insertion order, optionally narrowed to one status.
func (s *Service) List(ctx context.Context, status domain.AuditStatus) ([]domain.AuditEntry, error) {
	if status != "" && !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return ws.Audits.List(), nil
	}
	return ws.Audits.Filter(func(a domain.AuditEntry) bool { return a.Status == status }), nil
}

func (s *Service) Add(ctx context.Context, draft domain.AuditDraft) (domain.AuditEntry, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.AuditEntry{}, err
	}

	draft.ClientName = strings.TrimSpace(draft.ClientName)

	entry, err := ws.Audits.Add(&draft)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("add audit: %w", err)
	}

	s.log.InfoContext(ctx, "audit scheduled",
		slog.String("audit_id", entry.ID.String()),
		slog.String("client", entry.ClientName),
		slog.String("status", entry.Status.String()),
	)
	return entry, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, field, value string) (domain.AuditEntry, bool, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.AuditEntry{}, false, err
	}

	entry, found, err := ws.Audits.Update(id, field, value)
	if err != nil {
		return domain.AuditEntry{}, found, fmt.Errorf("update audit: %w", err)
	}
	if found {
		s.log.InfoContext(ctx, "audit updated",
			slog.String("audit_id", id.String()),
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
	if ws.Audits.Remove(id) {
		s.log.InfoContext(ctx, "audit removed", slog.String("audit_id", id.String()))
	}
	return nil
}
