// Package memory keeps credentials and revoked sessions in process memory.
// Everything is lost on restart; intended for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// CredentialRepo is a map of normalized email to credential.
type CredentialRepo struct {
	mu    sync.RWMutex
	byKey map[string]domain.Credential
}

func NewCredentialRepo() *CredentialRepo {
	return &CredentialRepo{byKey: make(map[string]domain.Credential)}
}

func (r *CredentialRepo) GetByEmail(_ context.Context, email string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byKey[email]
	if !ok {
		return nil, fmt.Errorf("credential %s: %w", email, domain.ErrNotFound)
	}
	return &c, nil
}

func (r *CredentialRepo) Create(_ context.Context, cred *domain.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[cred.Email]; ok {
		return fmt.Errorf("credential %s: %w", cred.Email, domain.ErrAlreadyExists)
	}
	r.byKey[cred.Email] = *cred
	return nil
}

// SessionRepo holds revoked session ids with their token expiry.
type SessionRepo struct {
	mu      sync.Mutex
	revoked map[uuid.UUID]time.Time
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{revoked: make(map[uuid.UUID]time.Time)}
}

func (r *SessionRepo) Revoke(_ context.Context, s *domain.RevokedSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.revoked[s.ID]; !ok {
		r.revoked[s.ID] = s.ExpiresAt
	}
	return nil
}

func (r *SessionRepo) IsRevoked(_ context.Context, sessionID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.revoked[sessionID]
	return ok, nil
}

func (r *SessionRepo) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, id)
			n++
		}
	}
	return n, nil
}

// Ping always succeeds.
func (r *SessionRepo) Ping(context.Context) error { return nil }
