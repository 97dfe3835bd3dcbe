package inbox

import "sync"

// composerMock is a mock implementation of composer.
type composerMock struct {
	ComposeFunc func(to, subject, body string) string

	calls struct {
		Compose []struct {
			To      string
			Subject string
			Body    string
		}
	}
	lockCompose sync.RWMutex
}

func (mock *composerMock) Compose(to, subject, body string) string {
	if mock.ComposeFunc == nil {
		panic("composerMock.ComposeFunc: method is nil but composer.Compose was just called")
	}
	mock.lockCompose.Lock()
	mock.calls.Compose = append(mock.calls.Compose, struct {
		To      string
		Subject string
		Body    string
	}{To: to, Subject: subject, Body: body})
	mock.lockCompose.Unlock()
	return mock.ComposeFunc(to, subject, body)
}

func (mock *composerMock) ComposeCalls() []struct {
	To      string
	Subject string
	Body    string
} {
	mock.lockCompose.RLock()
	defer mock.lockCompose.RUnlock()
	return mock.calls.Compose
}
