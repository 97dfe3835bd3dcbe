package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	RevokeFunc        func(ctx context.Context, session *domain.RevokedSession) error
	IsRevokedFunc     func(ctx context.Context, sessionID uuid.UUID) (bool, error)
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int, error)

	calls struct {
		Revoke        []struct{ Session *domain.RevokedSession }
		IsRevoked     []struct{ SessionID uuid.UUID }
		DeleteExpired []struct{ Now time.Time }
	}
	lock sync.RWMutex
}

func (mock *sessionRepoMock) Revoke(ctx context.Context, session *domain.RevokedSession) error {
	if mock.RevokeFunc == nil {
		panic("sessionRepoMock.RevokeFunc: method is nil but sessionRepo.Revoke was just called")
	}
	mock.lock.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, struct{ Session *domain.RevokedSession }{session})
	mock.lock.Unlock()
	return mock.RevokeFunc(ctx, session)
}

func (mock *sessionRepoMock) RevokeCalls() []struct{ Session *domain.RevokedSession } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Revoke
}

func (mock *sessionRepoMock) IsRevoked(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	if mock.IsRevokedFunc == nil {
		panic("sessionRepoMock.IsRevokedFunc: method is nil but sessionRepo.IsRevoked was just called")
	}
	mock.lock.Lock()
	mock.calls.IsRevoked = append(mock.calls.IsRevoked, struct{ SessionID uuid.UUID }{sessionID})
	mock.lock.Unlock()
	return mock.IsRevokedFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, struct{ Now time.Time }{now})
	mock.lock.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}
