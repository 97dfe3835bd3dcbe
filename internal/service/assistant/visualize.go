package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

// Visualize extracts a chartable series from free text. Unlike chat and
// advisory, a failure is returned to the caller; the panel records it and
// keeps the previous chart.
func (s *Service) Visualize(ctx context.Context, text string) (domain.FinancialSeries, error) {
	if err := validatePrompt("text", text); err != nil {
		return domain.FinancialSeries{}, err
	}
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return domain.FinancialSeries{}, err
	}

	ticket, err := ws.Visualizer.Begin()
	if err != nil {
		return domain.FinancialSeries{}, fmt.Errorf("visualize: %w", err)
	}

	series, err := s.ai.ExtractFinancialSeries(ctx, text)

	if !ws.Visualizer.Finish(ticket) {
		s.log.WarnContext(ctx, "extraction completion dropped")
		return domain.FinancialSeries{}, fmt.Errorf("visualize: %w", domain.ErrStale)
	}

	if err != nil {
		s.log.ErrorContext(ctx, "extraction failed", slog.String("error", err.Error()))
		ws.Visualizer.Fail(domain.ExtractionFailure)
		return domain.FinancialSeries{}, fmt.Errorf("visualize: %w", err)
	}
	ws.Visualizer.Succeed(series)

	s.log.InfoContext(ctx, "series extracted", slog.Int("points", len(series.Data)))
	return series, nil
}

func (s *Service) Chart(ctx context.Context) (workspace.ChartState, error) {
	ws, err := s.spaces.Get(ctx)
	if err != nil {
		return workspace.ChartState{}, err
	}
	return ws.Visualizer.State(), nil
}
