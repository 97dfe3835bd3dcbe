package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/service/assistant"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

type assistantService interface {
	Ask(ctx context.Context, in assistant.AskInput) (domain.ChatMessage, error)
	Transcript(ctx context.Context) (assistant.TranscriptState, error)
	Analyze(ctx context.Context, scenario string) (string, error)
	Analysis(ctx context.Context) (assistant.AnalysisState, error)
	Visualize(ctx context.Context, text string) (domain.FinancialSeries, error)
	Chart(ctx context.Context) (workspace.ChartState, error)
}

// AssistantHandler serves the three AI panels. A POST blocks until the
// provider answers; a concurrent POST to the same panel gets 409.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

type analyzeRequest struct {
	Scenario string `json:"scenario"`
}

type analyzeResponse struct {
	Text string `json:"text"`
}

type visualizeRequest struct {
	Text string `json:"text"`
}

// Ask handles POST /api/assistant/chat.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req assistant.AskInput
	if !readJSON(w, r, &req) {
		return
	}

	msg, err := h.svc.Ask(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Transcript handles GET /api/assistant/chat.
func (h *AssistantHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Transcript(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Analyze handles POST /api/assistant/advisory.
func (h *AssistantHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !readJSON(w, r, &req) {
		return
	}

	text, err := h.svc.Analyze(r.Context(), req.Scenario)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Text: text})
}

// Analysis handles GET /api/assistant/advisory.
func (h *AssistantHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Analysis(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Visualize handles POST /api/assistant/visualize. A provider failure is 502
// and a reply that is not a valid series is 422; both leave the previous
// chart in place.
func (h *AssistantHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	var req visualizeRequest
	if !readJSON(w, r, &req) {
		return
	}

	series, err := h.svc.Visualize(r.Context(), req.Text)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// Chart handles GET /api/assistant/visualize.
func (h *AssistantHandler) Chart(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Chart(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
