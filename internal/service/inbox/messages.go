package inbox

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

// Sync regenerates queries from the current directory. Only messages with new
// ids are added: existing messages keep their status and reply, and messages
// from removed clients stay.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	var added int
	for _, msg := range s.gen.Generate(ws.Clients.List(), s.now().UTC()) {
		if ws.Inbox.InsertIfAbsent(msg) {
			added++
		}
	}
	res := SyncResult{Added: added, Total: ws.Inbox.Len()}

	s.log.InfoContext(ctx, "inbox synced",
		slog.Int("added", res.Added),
		slog.Int("total", res.Total),
	)
	return res, nil
}

func (s *Service) List(ctx context.Context) ([]Row, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return nil, err
	}

	msgs := ws.Inbox.List()
	rows := make([]Row, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, row(ws, m))
	}
	return rows, nil
}

// Remove deletes a message. A reply panel open on it is closed.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return err
	}

	_, _ = ws.UpdateReply(func(p *domain.ReplyPanel) error {
		if p.IsOpen() && p.MessageID == id {
			p.Close()
		}
		return nil
	})
	if ws.Inbox.Remove(id) {
		s.log.InfoContext(ctx, "message removed", slog.String("message_id", id.String()))
	}
	return nil
}

func row(ws *workspace.Workspace, m domain.InboxMessage) Row {
	r := Row{InboxMessage: m, ClientName: UnknownClient}
	if c, ok := sender(ws, m.FromEmail); ok {
		r.ClientName = c.Name
		r.Actionable = true
	}
	return r
}
