// Package workspace holds the per-user console state: the entity lists, the
// reply panel, the AI panels and the active shell panel.
package workspace

import (
	"sync"
	"time"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/liststore"
)

type (
	ClientStore  = liststore.Store[domain.Client, domain.ClientDraft]
	AuditStore   = liststore.Store[domain.AuditEntry, domain.AuditDraft]
	TaxStore     = liststore.Store[domain.TaxEntry, domain.TaxDraft]
	MessageStore = liststore.Store[domain.InboxMessage, domain.MessageDraft]
)

// Workspace is one user's console. The client directory is a single instance
// shared by the directory editor and the inbox generator.
type Workspace struct {
	Clients    *ClientStore
	Audits     *AuditStore
	TaxReturns *TaxStore
	Inbox      *MessageStore

	Chat       *Conversation
	Advisory   *Analysis
	Visualizer *Chart

	mu    sync.Mutex
	panel domain.Panel
	reply domain.ReplyPanel
}

func New(now time.Time) *Workspace {
	return &Workspace{
		Clients:    liststore.New[domain.Client, domain.ClientDraft](),
		Audits:     liststore.New[domain.AuditEntry, domain.AuditDraft](),
		TaxReturns: liststore.New[domain.TaxEntry, domain.TaxDraft](),
		Inbox:      liststore.New[domain.InboxMessage, domain.MessageDraft](),
		Chat:       newConversation(now),
		Advisory:   &Analysis{},
		Visualizer: &Chart{},
		panel:      domain.PanelDashboard,
		reply:      domain.ReplyPanel{Mode: domain.ReplyModeClosed},
	}
}

func (w *Workspace) Panel() domain.Panel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.panel
}

// Navigate switches the active panel. Every AI call except the destination
// panel's is detached, so a call started from another panel cannot land
// after the user moved on. Leaving the communication panel closes the reply
// panel.
func (w *Workspace) Navigate(to domain.Panel) {
	w.mu.Lock()
	defer w.mu.Unlock()

	from := w.panel
	if from == to {
		return
	}
	for panel, f := range w.flights() {
		if panel != to {
			f.Detach()
		}
	}
	if from == domain.PanelClientCommunication {
		w.reply.Close()
	}
	w.panel = to
}

func (w *Workspace) flights() map[domain.Panel]*Flight {
	return map[domain.Panel]*Flight{
		domain.PanelTaxChat:  &w.Chat.Flight,
		domain.PanelAdvisory: &w.Advisory.Flight,
		domain.PanelFinViz:   &w.Visualizer.Flight,
	}
}

func (w *Workspace) Reply() domain.ReplyPanel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reply
}

// UpdateReply runs fn on the reply panel under the workspace lock. The panel
// is only changed when fn succeeds.
func (w *Workspace) UpdateReply(fn func(p *domain.ReplyPanel) error) (domain.ReplyPanel, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.reply
	if err := fn(&next); err != nil {
		return w.reply, err
	}
	w.reply = next
	return next, nil
}

// SignOut clears the inbox and the reply panel and detaches every AI call
// still in flight.
func (w *Workspace) SignOut() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, f := range w.flights() {
		f.Detach()
	}
	w.Inbox.Clear()
	w.reply.Close()
}

// Stats computes the dashboard counters.
func (w *Workspace) Stats() domain.DashboardStats {
	return domain.DashboardStats{
		ActiveAudits: len(w.Audits.Filter(func(a domain.AuditEntry) bool {
			return a.Status != domain.AuditStatusCompleted
		})),
		OpenTaxReturns: len(w.TaxReturns.Filter(func(t domain.TaxEntry) bool {
			return t.Status != domain.TaxStatusFiled
		})),
		NewMessages: len(w.Inbox.Filter(func(m domain.InboxMessage) bool {
			return m.Status == domain.MessageStatusNew
		})),
		Clients: w.Clients.Len(),
	}
}
