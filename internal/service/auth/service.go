package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/auth"
	"github.com/PAVAN4141/CA.ai/internal/config"
	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// credentialRepo defines the credential store needed by the auth service.
type credentialRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) error
}

// sessionRepo defines the revoked-session store needed by the auth service.
type sessionRepo interface {
	Revoke(ctx context.Context, session *domain.RevokedSession) error
	IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// jwtManager defines the access token operations needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, auth.Claims, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// signOutHook is told when a user signs out so per-user console state can be cleared.
type signOutHook interface {
	Reset(userID uuid.UUID)
}

// Service implements the console's AuthProvider: lookup, register, login and logout.
type Service struct {
	log         *slog.Logger
	credentials credentialRepo
	sessions    sessionRepo
	jwt         jwtManager
	onSignOut   signOutHook
	cfg         config.AuthConfig
	now         func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	credentials credentialRepo,
	sessions sessionRepo,
	jwt jwtManager,
	onSignOut signOutHook,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		credentials: credentials,
		sessions:    sessions,
		jwt:         jwt,
		onSignOut:   onSignOut,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *Service) issueToken(cred *domain.Credential) (*AuthResult, error) {
	token, claims, err := s.jwt.GenerateAccessToken(cred.ID, cred.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt,
		UserID:      cred.ID,
		Email:       cred.Email,
	}, nil
}
