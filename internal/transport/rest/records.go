package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// recordService is the CRUD surface shared by the client directory, the audit
// planner and the tax tracker. F is the list filter: a search query for
// clients, a status for audits and tax returns.
type recordService[T any, D any, F ~string] interface {
	List(ctx context.Context, filter F) ([]T, error)
	Add(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id uuid.UUID, field, value string) (T, bool, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// RecordHandler serves list, add, field update and remove for one record type.
type RecordHandler[T any, D any, F ~string] struct {
	svc         recordService[T, D, F]
	filterParam string
	log         *slog.Logger
}

// NewRecordHandler creates a RecordHandler. filterParam names the query
// parameter passed to List.
func NewRecordHandler[T any, D any, F ~string](
	svc recordService[T, D, F],
	name, filterParam string,
	logger *slog.Logger,
) *RecordHandler[T, D, F] {
	return &RecordHandler[T, D, F]{
		svc:         svc,
		filterParam: filterParam,
		log:         logger.With("handler", name),
	}
}

type fieldUpdateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// List handles GET. A missing filter parameter lists everything.
func (h *RecordHandler[T, D, F]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), F(r.URL.Query().Get(h.filterParam)))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST.
func (h *RecordHandler[T, D, F]) Add(w http.ResponseWriter, r *http.Request) {
	var draft D
	if !readJSON(w, r, &draft) {
		return
	}

	rec, err := h.svc.Add(r.Context(), draft)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Update handles PATCH /{id}. Editing an id that is no longer present is a
// no-op and answers 204.
func (h *RecordHandler[T, D, F]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req fieldUpdateRequest
	if !readJSON(w, r, &req) {
		return
	}

	rec, found, err := h.svc.Update(r.Context(), id, req.Field, req.Value)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Remove handles DELETE /{id}. Removing an absent id also answers 204.
func (h *RecordHandler[T, D, F]) Remove(w http.ResponseWriter, r *http.Request) {
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
