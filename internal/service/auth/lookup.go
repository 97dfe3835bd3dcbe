package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Lookup reports whether an email already has credentials.
func (s *Service) Lookup(ctx context.Context, email string) (*LookupResult, error) {
	email = domain.NormalizeEmail(email)

	var errs []domain.FieldError
	if errs = appendEmailErrors(errs, email); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	_, err := s.credentials.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return &LookupResult{Email: email, Registered: true}, nil
	case errors.Is(err, domain.ErrNotFound):
		return &LookupResult{Email: email, Registered: false}, nil
	default:
		return nil, fmt.Errorf("auth.Lookup: %w", err)
	}
}
