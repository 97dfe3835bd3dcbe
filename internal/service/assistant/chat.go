package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Ask sends a regulatory question with the conversation so far. Provider
// failures become the fallback answer; only busy, stale and validation
// errors are returned.
func (s *Service) Ask(ctx context.Context, in AskInput) (domain.ChatMessage, error) {
	if err := in.Validate(); err != nil {
		return domain.ChatMessage{}, err
	}
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	ticket, err := ws.Chat.Begin()
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("ask: %w", err)
	}

	prompt := strings.TrimSpace(in.Prompt)
	history := ws.Chat.History()
	question := domain.ChatMessage{
		Role:      domain.ChatRoleUser,
		Text:      prompt,
		Timestamp: s.now().UTC(),
	}
	ws.Chat.Append(question)

	grounded := s.grounded
	if in.Grounded != nil {
		grounded = *in.Grounded
	}

	answer, err := s.ai.AskRegulatoryQuestion(ctx, prompt, history, grounded)

	if !ws.Chat.Finish(ticket) {
		ws.Chat.Retract(question)
		s.log.WarnContext(ctx, "chat completion dropped")
		return domain.ChatMessage{}, fmt.Errorf("ask: %w", domain.ErrStale)
	}

	reply := domain.ChatMessage{
		Role:      domain.ChatRoleModel,
		Text:      answer.Text,
		Sources:   answer.Sources,
		Timestamp: s.now().UTC(),
	}
	switch {
	case err != nil:
		s.log.ErrorContext(ctx, "regulatory question failed", slog.String("error", err.Error()))
		reply = domain.ChatMessage{Role: domain.ChatRoleModel, Text: domain.ChatFallback, Timestamp: reply.Timestamp, Synthetic: true}
	case strings.TrimSpace(answer.Text) == "":
		reply.Text = domain.ChatEmpty
		reply.Synthetic = true
	}
	ws.Chat.Append(reply)

	s.log.InfoContext(ctx, "chat answered",
		slog.Bool("grounded", grounded),
		slog.Int("sources", len(reply.Sources)),
	)
	return reply, nil
}

func (s *Service) Transcript(ctx context.Context) (TranscriptState, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return TranscriptState{}, err
	}
	return TranscriptState{
		Messages: ws.Chat.Messages(),
		Loading:  ws.Chat.InFlight(),
	}, nil
}
