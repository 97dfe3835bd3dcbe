package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Register stores a bcrypt hash for a new email and signs the user in.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("auth.Register user id: %w", err)
	}
	cred := &domain.Credential{
		ID:           id,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	// Email uniqueness is enforced by the store.
	if err := s.credentials.Create(ctx, cred); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(cred)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", cred.ID.String()))
	return result, nil
}
