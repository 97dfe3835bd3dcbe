package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ signOutHook = &signOutHookMock{}

type signOutHookMock struct {
	ResetFunc func(userID uuid.UUID)

	calls struct {
		Reset []struct{ UserID uuid.UUID }
	}
	lockReset sync.RWMutex
}

func (mock *signOutHookMock) Reset(userID uuid.UUID) {
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, struct{ UserID uuid.UUID }{userID})
	mock.lockReset.Unlock()
	if mock.ResetFunc != nil {
		mock.ResetFunc(userID)
	}
}

func (mock *signOutHookMock) ResetCalls() []struct{ UserID uuid.UUID } {
	mock.lockReset.RLock()
	defer mock.lockReset.RUnlock()
	return mock.calls.Reset
}
