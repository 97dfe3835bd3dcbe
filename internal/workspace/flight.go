package workspace

import (
	"fmt"
	"sync"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Ticket identifies one in-flight provider call.
type Ticket struct {
	epoch uint64
}

// Flight allows at most one outstanding provider call per panel and drops
// completions that arrive after the panel was left.
type Flight struct {
	mu       sync.Mutex
	inFlight bool
	epoch    uint64
}

// Begin claims the panel. It fails with domain.ErrBusy while a call is in flight.
func (f *Flight) Begin() (Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return Ticket{}, fmt.Errorf("begin: %w", domain.ErrBusy)
	}
	f.inFlight = true
	return Ticket{epoch: f.epoch}, nil
}

// Finish releases the panel and reports whether the completion is still
// current. A false result means the caller must discard the result.
func (f *Flight) Finish(t Ticket) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.epoch != f.epoch {
		return false
	}
	f.inFlight = false
	return true
}

// Detach abandons the outstanding call, if any. Its completion becomes stale
// and a new call may begin immediately.
func (f *Flight) Detach() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.epoch++
	f.inFlight = false
}

func (f *Flight) InFlight() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight
}
