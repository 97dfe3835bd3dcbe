package directory

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

func newTestService(t *testing.T) (*Service, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(time.Now())
	mock := &workspacesMock{
		GetFunc: func(ctx context.Context) (*workspace.Workspace, error) { return ws, nil },
	}
	return NewService(slog.Default(), mock), ws
}

func TestAdd_TrimsAndStores(t *testing.T) {
	t.Parallel()

	svc, ws := newTestService(t)
	got, err := svc.Add(context.Background(), domain.ClientDraft{Name: "  X ", Email: " x@y.com "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "X" || got.Email != "x@y.com" {
		t.Errorf("Add() = %+v", got)
	}
	if ws.Clients.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ws.Clients.Len())
	}
}

func TestAdd_Validation(t *testing.T) {
	t.Parallel()

	svc, ws := newTestService(t)
	_, err := svc.Add(context.Background(), domain.ClientDraft{Name: "X"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if ws.Clients.Len() != 0 {
		t.Error("invalid client stored")
	}
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	for _, d := range []domain.ClientDraft{
		{Name: "Alpha Tech Solutions", Email: "accounts@alphatech.com"},
		{Name: "Sharma Traders", Email: "sharma@traders.com"},
	} {
		if _, err := svc.Add(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"  ", 2},
		{"SHARMA", 1},
		{"alphatech.COM", 1},
		{"@", 2},
		{"nobody", 0},
	}
	for _, tt := range tests {
		got, err := svc.List(ctx, tt.query)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("List(%q) returned %d clients, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestUpdate_AbsentIsNoOp(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, found, err := svc.Update(context.Background(), uuid.New(), "name", "Y")
	if err != nil || found {
		t.Errorf("Update(absent) = found %v, err %v", found, err)
	}
}

func TestUpdate_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	c, _ := svc.Add(ctx, domain.ClientDraft{Name: "X", Email: "x@y.com"})

	if _, _, err := svc.Update(ctx, c.ID, "email", "nope"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	got, found, err := svc.Update(ctx, c.ID, "email", "new@y.com")
	if err != nil || !found || got.Email != "new@y.com" {
		t.Errorf("Update(email) = %+v, %v, %v", got, found, err)
	}
}

func TestRemove_Idempotent(t *testing.T) {
	t.Parallel()

	svc, ws := newTestService(t)
	ctx := context.Background()
	c, _ := svc.Add(ctx, domain.ClientDraft{Name: "X", Email: "x@y.com"})

	for range 2 {
		if err := svc.Remove(ctx, c.ID); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}
	if ws.Clients.Len() != 0 {
		t.Error("client not removed")
	}
}

func TestService_Unauthorized(t *testing.T) {
	t.Parallel()

	mock := &workspacesMock{
		GetFunc: func(ctx context.Context) (*workspace.Workspace, error) { return nil, domain.ErrUnauthorized },
	}
	svc := NewService(slog.Default(), mock)

	if _, err := svc.List(context.Background(), ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("List error = %v", err)
	}
	if err := svc.Remove(context.Background(), uuid.New()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Remove error = %v", err)
	}
	if len(mock.GetCalls()) != 2 {
		t.Errorf("Get calls = %d, want 2", len(mock.GetCalls()))
	}
}
