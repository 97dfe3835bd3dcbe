package rest

import (
	"context"
	"sync"

	"github.com/PAVAN4141/CA.ai/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LookupFunc   func(ctx context.Context, email string) (*auth.LookupResult, error)
	RegisterFunc func(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error

	calls struct {
		Lookup   []struct{ Email string }
		Register []struct{ Input auth.CredentialsInput }
		Login    []struct{ Input auth.CredentialsInput }
		Logout   []struct{ Ctx context.Context }
	}
	lockLookup   sync.RWMutex
	lockRegister sync.RWMutex
	lockLogin    sync.RWMutex
	lockLogout   sync.RWMutex
}

func (mock *authServiceMock) Lookup(ctx context.Context, email string) (*auth.LookupResult, error) {
	if mock.LookupFunc == nil {
		panic("authServiceMock.LookupFunc: method is nil but authService.Lookup was just called")
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, struct{ Email string }{email})
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, email)
}

func (mock *authServiceMock) LookupCalls() []struct{ Email string } {
	mock.lockLookup.RLock()
	defer mock.lockLookup.RUnlock()
	return mock.calls.Lookup
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, struct{ Input auth.CredentialsInput }{input})
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct{ Input auth.CredentialsInput } {
	mock.lockRegister.RLock()
	defer mock.lockRegister.RUnlock()
	return mock.calls.Register
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.CredentialsInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, struct{ Input auth.CredentialsInput }{input})
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct{ Input auth.CredentialsInput } {
	mock.lockLogin.RLock()
	defer mock.lockLogin.RUnlock()
	return mock.calls.Login
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, struct{ Ctx context.Context }{ctx})
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct{ Ctx context.Context } {
	mock.lockLogout.RLock()
	defer mock.lockLogout.RUnlock()
	return mock.calls.Logout
}
