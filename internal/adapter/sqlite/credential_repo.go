package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// CredentialRepo stores email + bcrypt hash pairs in the local database.
type CredentialRepo struct {
	db *sql.DB
}

// NewCredentialRepo creates a credential repository.
func NewCredentialRepo(db *sql.DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// GetByEmail returns the credential for a normalized email.
// Returns domain.ErrNotFound if the email is not registered.
func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query, args, err := builder.Select("id", "email", "password_hash", "created_at").
		From("credentials").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build credential query: %w", err)
	}

	var (
		c       domain.Credential
		created string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Email, &c.PasswordHash, &created)
	if err != nil {
		return nil, mapError(err, "credential", email)
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("credential %s: parse created_at: %w", email, err)
	}
	return &c, nil
}

// Create inserts a credential. Returns domain.ErrAlreadyExists if the email is taken.
func (r *CredentialRepo) Create(ctx context.Context, cred *domain.Credential) error {
	query, args, err := builder.Insert("credentials").
		Columns("id", "email", "password_hash", "created_at").
		Values(cred.ID.String(), cred.Email, cred.PasswordHash, cred.CreatedAt.UTC().Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build credential insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, "credential", cred.Email)
	}
	return nil
}
