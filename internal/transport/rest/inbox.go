package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/service/inbox"
)

type inboxService interface {
	Sync(ctx context.Context) (inbox.SyncResult, error)
	List(ctx context.Context) ([]inbox.Row, error)
	Remove(ctx context.Context, id uuid.UUID) error
	ReplyState(ctx context.Context) (domain.ReplyPanel, error)
	OpenReply(ctx context.Context, id uuid.UUID) (domain.ReplyPanel, error)
	ViewReply(ctx context.Context) (domain.ReplyPanel, error)
	EditReply(ctx context.Context) (domain.ReplyPanel, error)
	BackToOptions(ctx context.Context) (domain.ReplyPanel, error)
	SetDraft(ctx context.Context, text string) (domain.ReplyPanel, error)
	CancelReply(ctx context.Context) (domain.ReplyPanel, error)
	SubmitReply(ctx context.Context) (inbox.SubmitResult, error)
}

// InboxHandler serves the simulated client inbox and its reply panel.
type InboxHandler struct {
	svc inboxService
	log *slog.Logger
}

func NewInboxHandler(svc inboxService, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{svc: svc, log: logger.With("handler", "inbox")}
}

type draftRequest struct {
	Text string `json:"text"`
}

// Sync handles POST /api/inbox/sync.
func (h *InboxHandler) Sync(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Sync(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// List handles GET /api/inbox.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if rows == nil {
		rows = []inbox.Row{}
	}
	writeJSON(w, http.StatusOK, rows)
}

// Remove handles DELETE /api/inbox/{id}.
func (h *InboxHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Remove(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reply handles GET /api/inbox/reply.
func (h *InboxHandler) Reply(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.ReplyState)
}

// OpenReply handles POST /api/inbox/{id}/reply.
func (h *InboxHandler) OpenReply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.panel(w, r, func(ctx context.Context) (domain.ReplyPanel, error) {
		return h.svc.OpenReply(ctx, id)
	})
}

// ViewReply handles POST /api/inbox/reply/view.
func (h *InboxHandler) ViewReply(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.ViewReply)
}

// EditReply handles POST /api/inbox/reply/edit.
func (h *InboxHandler) EditReply(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.EditReply)
}

// BackToOptions handles POST /api/inbox/reply/back.
func (h *InboxHandler) BackToOptions(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.BackToOptions)
}

// SetDraft handles PUT /api/inbox/reply/draft.
func (h *InboxHandler) SetDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if !readJSON(w, r, &req) {
		return
	}
	h.panel(w, r, func(ctx context.Context) (domain.ReplyPanel, error) {
		return h.svc.SetDraft(ctx, req.Text)
	})
}

// CancelReply handles POST /api/inbox/reply/cancel.
func (h *InboxHandler) CancelReply(w http.ResponseWriter, r *http.Request) {
	h.panel(w, r, h.svc.CancelReply)
}

// SubmitReply handles POST /api/inbox/reply/submit. The response carries the
// compose link the client opens; nothing is sent from here.
func (h *InboxHandler) SubmitReply(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SubmitReply(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *InboxHandler) panel(w http.ResponseWriter, r *http.Request, fn func(context.Context) (domain.ReplyPanel, error)) {
	p, err := fn(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
