package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Analyze asks for a long-form strategic analysis of a scenario.
func (s *Service) Analyze(ctx context.Context, scenario string) (string, error) {
	if err := validatePrompt("scenario", scenario); err != nil {
		return "", err
	}
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return "", err
	}

	ticket, err := ws.Advisory.Begin()
	if err != nil {
		return "", fmt.Errorf("analyze: %w", err)
	}

	scenario = strings.TrimSpace(scenario)
	text, err := s.ai.GetStrategicAnalysis(ctx, scenario)

	if !ws.Advisory.Finish(ticket) {
		s.log.WarnContext(ctx, "advisory completion dropped")
		return "", fmt.Errorf("analyze: %w", domain.ErrStale)
	}

	switch {
	case err != nil:
		s.log.ErrorContext(ctx, "strategic analysis failed", slog.String("error", err.Error()))
		text = domain.AdvisoryFallback
	case strings.TrimSpace(text) == "":
		text = domain.AdvisoryEmpty
	}
	ws.Advisory.Set(scenario, text)

	s.log.InfoContext(ctx, "analysis generated", slog.Int("length", len(text)))
	return text, nil
}

func (s *Service) Analysis(ctx context.Context) (AnalysisState, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return AnalysisState{}, err
	}
	prompt, text := ws.Advisory.Result()
	return AnalysisState{Prompt: prompt, Text: text, Loading: ws.Advisory.InFlight()}, nil
}
