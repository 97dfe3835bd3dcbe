package assistant

import (
	"context"
	"sync"

	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

// workspacesMock is a mock implementation of workspaces.
type workspacesMock struct {
	GetFunc func(ctx context.Context) (*workspace.Workspace, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *workspacesMock) Get(ctx context.Context) (*workspace.Workspace, error) {
	if mock.GetFunc == nil {
		panic("workspacesMock.GetFunc: method is nil but workspaces.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *workspacesMock) GetCalls() []struct{ Ctx context.Context } {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}
