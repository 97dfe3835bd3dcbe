package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// groundingSources collects web citations from the first candidate.
func groundingSources(resp *genai.GenerateContentResponse) []domain.GroundingSource {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	var sources []domain.GroundingSource
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		sources = append(sources, domain.GroundingSource{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}

type rawPoint struct {
	Category *string  `json:"category"`
	Value    *float64 `json:"value"`
}

type rawSeries struct {
	Summary *string     `json:"summary"`
	Data    *[]rawPoint `json:"data"`
}

// parseSeries decodes extraction output. Anything but a complete
// {summary, data[{category, value}]} object is ErrSchemaMismatch.
func parseSeries(text string) (domain.FinancialSeries, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.FinancialSeries{}, fmt.Errorf("empty response: %w", domain.ErrSchemaMismatch)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	var raw rawSeries
	if err := dec.Decode(&raw); err != nil {
		return domain.FinancialSeries{}, fmt.Errorf("decode: %v: %w", err, domain.ErrSchemaMismatch)
	}
	if dec.More() {
		return domain.FinancialSeries{}, fmt.Errorf("trailing data: %w", domain.ErrSchemaMismatch)
	}
	if raw.Summary == nil {
		return domain.FinancialSeries{}, fmt.Errorf("missing summary: %w", domain.ErrSchemaMismatch)
	}
	if raw.Data == nil {
		return domain.FinancialSeries{}, fmt.Errorf("missing data: %w", domain.ErrSchemaMismatch)
	}

	series := domain.FinancialSeries{
		Summary: *raw.Summary,
		Data:    make([]domain.SeriesPoint, 0, len(*raw.Data)),
	}
	for i, p := range *raw.Data {
		if p.Category == nil || p.Value == nil {
			return domain.FinancialSeries{}, fmt.Errorf("data[%d] incomplete: %w", i, domain.ErrSchemaMismatch)
		}
		series.Data = append(series.Data, domain.SeriesPoint{Category: *p.Category, Value: *p.Value})
	}
	return series, nil
}
