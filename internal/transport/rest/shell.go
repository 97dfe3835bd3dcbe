package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/service/shell"
)

type shellService interface {
	State(ctx context.Context) (shell.State, error)
	Navigate(ctx context.Context, panel domain.Panel) (shell.State, error)
}

// ShellHandler exposes the active panel and dashboard stats.
type ShellHandler struct {
	svc shellService
	log *slog.Logger
}

func NewShellHandler(svc shellService, logger *slog.Logger) *ShellHandler {
	return &ShellHandler{svc: svc, log: logger.With("handler", "shell")}
}

type navigateRequest struct {
	Panel domain.Panel `json:"panel"`
}

// Get handles GET /api/shell.
func (h *ShellHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.State(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Navigate handles PUT /api/shell.
func (h *ShellHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if !readJSON(w, r, &req) {
		return
	}

	state, err := h.svc.Navigate(r.Context(), req.Panel)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
