package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PAVAN4141/CA.ai/internal/auth"
	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/pkg/ctxutil"
)

// Logout revokes the current session and clears the user's inbox and reply panel.
// Returns ErrUnauthorized if no session is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	now := s.now().UTC()
	err := s.sessions.Revoke(ctx, &domain.RevokedSession{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: now.Add(s.cfg.AccessTokenTTL),
		RevokedAt: now,
	})
	if err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.onSignOut.Reset(userID)

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
	)
	return nil
}

// ValidateToken validates an access token and rejects revoked sessions.
// Returns ErrUnauthorized if the token is invalid, expired or signed out.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Claims{}, domain.ErrUnauthorized
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.SessionID)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if revoked {
		return auth.Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// CleanupRevokedSessions deletes revocations whose tokens have expired anyway.
// This is a maintenance operation.
func (s *Service) CleanupRevokedSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupRevokedSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up revoked sessions", slog.Int("count", count))
	}
	return count, nil
}
