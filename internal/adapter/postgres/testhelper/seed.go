package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// SeedCredential inserts a credential with a unique email and returns it.
func SeedCredential(t *testing.T, pool *pgxpool.Pool) domain.Credential {
	t.Helper()

	cred := domain.Credential{
		ID:           uuid.New(),
		Email:        "user-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: "$2a$04$placeholderhashplaceholderhashplaceholderhashpla",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO credentials (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		cred.ID, cred.Email, cred.PasswordHash, cred.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCredential: %v", err)
	}
	return cred
}
