package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// SessionRepo records signed-out sessions. Times are stored as unix nanoseconds.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a revoked-session repository.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Revoke records a session as signed out. Revoking twice is not an error.
func (r *SessionRepo) Revoke(ctx context.Context, s *domain.RevokedSession) error {
	query, args, err := builder.Insert("revoked_sessions").
		Options("OR IGNORE").
		Columns("id", "user_id", "expires_at", "revoked_at").
		Values(s.ID.String(), s.UserID.String(), s.ExpiresAt.UnixNano(), s.RevokedAt.UnixNano()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revoke insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "session", s.ID.String())
	}
	return nil
}

// IsRevoked reports whether the session has been signed out.
func (r *SessionRepo) IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	query, args, err := builder.Select("COUNT(*)").
		From("revoked_sessions").
		Where(sq.Eq{"id": sessionID.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build revoked query: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, mapError(err, "session", sessionID.String())
	}
	return n > 0, nil
}

// DeleteExpired removes revocations whose tokens have expired by now.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := builder.Delete("revoked_sessions").
		Where(sq.LtOrEq{"expires_at": now.UnixNano()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cleanup delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "session", "expired")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}

// Ping checks the database file is usable.
func (r *SessionRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
