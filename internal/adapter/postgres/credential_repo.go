package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// CredentialRepo stores email + bcrypt hash pairs.
type CredentialRepo struct {
	q Querier
}

// NewCredentialRepo creates a credential repository over a pool or transaction.
func NewCredentialRepo(q Querier) *CredentialRepo {
	return &CredentialRepo{q: q}
}

var credentialColumns = []string{"id", "email", "password_hash", "created_at"}

// GetByEmail returns the credential for a normalized email.
// Returns domain.ErrNotFound if the email is not registered.
func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query, args, err := psql.Select(credentialColumns...).
		From("credentials").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build credential query: %w", err)
	}

	var c domain.Credential
	err = r.q.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		return nil, mapError(err, "credential", email)
	}
	return &c, nil
}

// Create inserts a credential. Returns domain.ErrAlreadyExists if the email is taken.
func (r *CredentialRepo) Create(ctx context.Context, cred *domain.Credential) error {
	query, args, err := psql.Insert("credentials").
		Columns(credentialColumns...).
		Values(cred.ID, cred.Email, cred.PasswordHash, cred.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build credential insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return mapError(err, "credential", cred.Email)
	}
	return nil
}
