package audit

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ws := workspace.New(time.Now())
	return NewService(slog.Default(), &workspacesMock{
		GetFunc: func(ctx context.Context) (*workspace.Workspace, error) { return ws, nil },
	})
}

func TestAdd_Scenario(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	before, _ := svc.List(ctx, "")
	entry, err := svc.Add(ctx, domain.AuditDraft{
		ClientName: "Acme", AuditType: "Statutory", Date: "2024-03-31",
		Team: "A", TimeEstimate: "10h", Status: domain.AuditStatusPending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _ := svc.List(ctx, "")

	if len(after) != len(before)+1 {
		t.Fatalf("list grew by %d, want 1", len(after)-len(before))
	}
	last := after[len(after)-1]
	if last != entry || last.Status != domain.AuditStatusPending || last.ClientName != "Acme" {
		t.Errorf("stored %+v", last)
	}
}

func TestAdd_TrimsClientNameOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	draft := domain.AuditDraft{
		ClientName: "  Acme  ", AuditType: " Statutory ", Date: "2024-03-31",
		Team: "A ", TimeEstimate: "10h", Status: domain.AuditStatusPending,
	}
	entry, err := svc.Add(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.ClientName != "Acme" {
		t.Errorf("ClientName = %q, want trimmed", entry.ClientName)
	}
	if entry.AuditType != draft.AuditType || entry.Team != draft.Team || entry.Date != draft.Date || entry.TimeEstimate != draft.TimeEstimate {
		t.Errorf("stored %+v, want other fields as drafted", entry)
	}
}

func TestAdd_BlankClientRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.AuditDraft{ClientName: "\t", AuditType: "Tax Audit"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if list, _ := svc.List(ctx, ""); len(list) != 0 {
		t.Errorf("list = %+v, want empty", list)
	}
}

func TestList_FilterByStatus(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	a, _ := svc.Add(ctx, domain.AuditDraft{ClientName: "A"})
	_, _ = svc.Add(ctx, domain.AuditDraft{ClientName: "B"})
	if _, _, err := svc.Update(ctx, a.ID, "status", "Completed"); err != nil {
		t.Fatal(err)
	}

	done, err := svc.List(ctx, domain.AuditStatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 1 || done[0].ID != a.ID {
		t.Errorf("List(Completed) = %+v", done)
	}
	if _, err := svc.List(ctx, "Archived"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown status error = %v", err)
	}
}

func TestUpdateRemove_AbsentIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	_, _ = svc.Add(ctx, domain.AuditDraft{ClientName: "A"})

	id := uuid.New()
	if _, found, err := svc.Update(ctx, id, "team", "B"); found || err != nil {
		t.Errorf("Update(absent) = %v, %v", found, err)
	}
	if err := svc.Remove(ctx, id); err != nil {
		t.Errorf("Remove(absent) = %v", err)
	}
	if list, _ := svc.List(ctx, ""); len(list) != 1 {
		t.Errorf("list changed: %+v", list)
	}
}
