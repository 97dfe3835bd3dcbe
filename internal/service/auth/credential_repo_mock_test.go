package auth

import (
	"context"
	"sync"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

var _ credentialRepo = &credentialRepoMock{}

type credentialRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Credential, error)
	CreateFunc     func(ctx context.Context, cred *domain.Credential) error

	calls struct {
		GetByEmail []struct{ Email string }
		Create     []struct{ Cred *domain.Credential }
	}
	lockGetByEmail sync.RWMutex
	lockCreate     sync.RWMutex
}

func (mock *credentialRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	if mock.GetByEmailFunc == nil {
		panic("credentialRepoMock.GetByEmailFunc: method is nil but credentialRepo.GetByEmail was just called")
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{email})
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *credentialRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.lockGetByEmail.RLock()
	defer mock.lockGetByEmail.RUnlock()
	return mock.calls.GetByEmail
}

func (mock *credentialRepoMock) Create(ctx context.Context, cred *domain.Credential) error {
	if mock.CreateFunc == nil {
		panic("credentialRepoMock.CreateFunc: method is nil but credentialRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Cred *domain.Credential }{cred})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, cred)
}

func (mock *credentialRepoMock) CreateCalls() []struct{ Cred *domain.Credential } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}
