package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// SessionRepo records signed-out access token sessions until the tokens would have expired.
type SessionRepo struct {
	q Querier
}

// NewSessionRepo creates a revoked-session repository.
func NewSessionRepo(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Revoke records a session as signed out. Revoking twice is not an error.
func (r *SessionRepo) Revoke(ctx context.Context, s *domain.RevokedSession) error {
	query, args, err := psql.Insert("revoked_sessions").
		Columns("id", "user_id", "expires_at", "revoked_at").
		Values(s.ID, s.UserID, s.ExpiresAt, s.RevokedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return mapError(err, "session", s.ID.String())
	}
	return nil
}

// IsRevoked reports whether the session has been signed out.
func (r *SessionRepo) IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	query, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("revoked_sessions").
		Where(sq.Eq{"id": sessionID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build revoked query: %w", err)
	}

	var revoked bool
	if err := r.q.QueryRow(ctx, query, args...).Scan(&revoked); err != nil {
		return false, mapError(err, "session", sessionID.String())
	}
	return revoked, nil
}

// DeleteExpired removes revocations whose tokens have expired by now.
// Returns the count of deleted rows.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := psql.Delete("revoked_sessions").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cleanup delete: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "session", "expired")
	}
	return int(tag.RowsAffected()), nil
}

// Ping checks connectivity for readiness probes.
func (r *SessionRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.q.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}
