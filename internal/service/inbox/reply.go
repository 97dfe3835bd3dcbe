package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

// ReplyState returns the reply panel.
func (s *Service) ReplyState(ctx context.Context) (domain.ReplyPanel, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.ReplyPanel{}, err
	}
	return ws.Reply(), nil
}

// OpenReply opens the reply panel on a message whose sender is in the directory.
func (s *Service) OpenReply(ctx context.Context, id uuid.UUID) (domain.ReplyPanel, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.ReplyPanel{}, err
	}

	msg, ok := ws.Inbox.Get(id)
	if !ok {
		return domain.ReplyPanel{}, fmt.Errorf("open reply: message %s: %w", id, domain.ErrNotFound)
	}
	if err := checkActionable(ws, msg); err != nil {
		return domain.ReplyPanel{}, fmt.Errorf("open reply: %w", err)
	}

	return ws.UpdateReply(func(p *domain.ReplyPanel) error {
		p.Open(msg)
		return nil
	})
}

func (s *Service) ViewReply(ctx context.Context) (domain.ReplyPanel, error) {
	return s.transition(ctx, (*domain.ReplyPanel).View)
}

func (s *Service) BackToOptions(ctx context.Context) (domain.ReplyPanel, error) {
	return s.transition(ctx, (*domain.ReplyPanel).Back)
}

func (s *Service) EditReply(ctx context.Context) (domain.ReplyPanel, error) {
	return s.transition(ctx, (*domain.ReplyPanel).Edit)
}

func (s *Service) SetDraft(ctx context.Context, text string) (domain.ReplyPanel, error) {
	return s.transition(ctx, func(p *domain.ReplyPanel) error { return p.SetDraft(text) })
}

// CancelReply closes the panel from any state. The message is not touched.
func (s *Service) CancelReply(ctx context.Context) (domain.ReplyPanel, error) {
	return s.transition(ctx, func(p *domain.ReplyPanel) error {
		p.Close()
		return nil
	})
}

// SubmitReply marks the message Replied with the draft, builds the compose link
// and closes the panel. A blank draft is rejected and nothing changes.
func (s *Service) SubmitReply(ctx context.Context) (SubmitResult, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return SubmitResult{}, err
	}

	var res SubmitResult
	_, err = ws.UpdateReply(func(p *domain.ReplyPanel) error {
		id, text, err := p.Submission()
		if err != nil {
			return err
		}

		msg, ok := ws.Inbox.Get(id)
		if !ok {
			return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
		}
		if err := checkActionable(ws, msg); err != nil {
			return err
		}

		replied, found, err := ws.Inbox.Mutate(id, func(m domain.InboxMessage) (domain.InboxMessage, error) {
			return m.MarkReplied(text), nil
		})
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
		}

		res = SubmitResult{
			Message:    replied,
			ComposeURL: s.compose.Compose(replied.FromEmail, "Re: "+replied.Subject, text),
		}
		p.Close()
		return nil
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("submit reply: %w", err)
	}

	s.log.InfoContext(ctx, "reply submitted",
		slog.String("message_id", res.Message.ID.String()),
		slog.String("to", res.Message.FromEmail),
	)
	return res, nil
}

func (s *Service) transition(ctx context.Context, fn func(p *domain.ReplyPanel) error) (domain.ReplyPanel, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.ReplyPanel{}, err
	}
	return ws.UpdateReply(fn)
}

func checkActionable(ws *workspace.Workspace, msg domain.InboxMessage) error {
	if _, ok := sender(ws, msg.FromEmail); !ok {
		return domain.NewValidationError("fromEmail", "sender is not in the client directory")
	}
	return nil
}
