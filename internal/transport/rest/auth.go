package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/PAVAN4141/CA.ai/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Lookup(ctx context.Context, email string) (*auth.LookupResult, error)
	Register(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves the sign-in flow: look the email up, then register or log in.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type lookupRequest struct {
	Email string `json:"email"`
}

// Lookup handles POST /auth/lookup.
func (h *AuthHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if !readJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Lookup(r.Context(), req.Email)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.CredentialsInput
	if !readJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.CredentialsInput
	if !readJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Logout handles POST /auth/logout. The session comes from the Auth middleware.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
