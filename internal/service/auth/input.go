package auth

import (
	"fmt"
	"net/mail"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

// CredentialsInput holds email + password for Register and Login.
type CredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the register form. minPassword comes from config.
func (i CredentialsInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPassword:
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("min %d characters", minPassword)})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidateLogin only checks presence: password rules may have changed since registration.
func (i CredentialsInput) ValidateLogin() error {
	var errs []domain.FieldError
	errs = appendEmailErrors(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > 254 {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}
