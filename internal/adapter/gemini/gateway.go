// Package gemini implements the console's AI gateway on Google's Gemini API.
// Every call is a single round trip: no retry, no streaming.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/PAVAN4141/CA.ai/internal/config"
	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// generator is the subset of *genai.Models the gateway calls.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// errNoAPIKey is returned by every call when no API key is configured.
var errNoAPIKey = errors.New("gemini: api key not configured")

type unconfigured struct{}

func (unconfigured) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, errNoAPIKey
}

// Gateway translates console prompts into Gemini calls.
type Gateway struct {
	models  generator
	cfg     config.AIConfig
	limiter *rate.Limiter
	metrics *Metrics
	log     *slog.Logger
}

// New creates a Gateway. An empty API key yields a gateway whose calls all fail
// with a provider error.
func New(ctx context.Context, logger *slog.Logger, cfg config.AIConfig, metrics *Metrics) (*Gateway, error) {
	if cfg.APIKey == "" {
		logger.WarnContext(ctx, "AI api key not set; provider calls will fail")
		return newGateway(unconfigured{}, logger, cfg, metrics), nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGateway(client.Models, logger, cfg, metrics), nil
}

func newGateway(models generator, logger *slog.Logger, cfg config.AIConfig, metrics *Metrics) *Gateway {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60)
	}
	return &Gateway{
		models:  models,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, max(cfg.RequestsPerMinute/10, 1)),
		metrics: metrics,
		log:     logger.With("adapter", "gemini"),
	}
}

// AskRegulatoryQuestion answers a tax/compliance question with the chat history
// as context. With grounded set, Google Search grounding is enabled and web
// citations are returned as sources.
func (g *Gateway) AskRegulatoryQuestion(ctx context.Context, prompt string, history []domain.ChatTurn, grounded bool) (domain.GroundedAnswer, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatInstruction, genai.RoleUser),
	}
	if grounded && g.cfg.SearchGrounding {
		gc.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := g.generate(ctx, opChat, g.cfg.ChatModel, contents, gc)
	if err != nil {
		return domain.GroundedAnswer{}, err
	}

	answer := domain.GroundedAnswer{
		Text:    resp.Text(),
		Sources: groundingSources(resp),
	}
	if answer.Text == "" {
		g.observe(opChat, outcomeEmpty)
	} else {
		g.observe(opChat, outcomeOK)
	}
	return answer, nil
}

// GetStrategicAnalysis runs a long-reasoning request with the configured thinking budget.
func (g *Gateway) GetStrategicAnalysis(ctx context.Context, prompt string) (string, error) {
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(advisoryInstruction, genai.RoleUser),
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(g.cfg.ThinkingBudget)},
	}

	resp, err := g.generate(ctx, opAdvisory, g.cfg.AdvisoryModel, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, gc)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		g.observe(opAdvisory, outcomeEmpty)
	} else {
		g.observe(opAdvisory, outcomeOK)
	}
	return text, nil
}

// ExtractFinancialSeries asks for JSON matching {summary, data[{category, value}]}.
// Output that does not parse as that shape is domain.ErrSchemaMismatch.
func (g *Gateway) ExtractFinancialSeries(ctx context.Context, text string) (domain.FinancialSeries, error) {
	gc := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   seriesSchema,
	}

	resp, err := g.generate(ctx, opExtraction, g.cfg.ExtractionModel, []*genai.Content{
		genai.NewContentFromText(extractionPrompt+text, genai.RoleUser),
	}, gc)
	if err != nil {
		return domain.FinancialSeries{}, err
	}

	series, err := parseSeries(resp.Text())
	if err != nil {
		g.observe(opExtraction, outcomeMismatch)
		g.log.ErrorContext(ctx, "extraction response rejected", slog.String("error", err.Error()))
		return domain.FinancialSeries{}, fmt.Errorf("gemini.ExtractFinancialSeries: %w", err)
	}
	g.observe(opExtraction, outcomeOK)
	return series, nil
}

// generate waits for the limiter, applies the request timeout and performs one call.
// Failures are wrapped with domain.ErrUpstream.
func (g *Gateway) generate(
	ctx context.Context,
	op, model string,
	contents []*genai.Content,
	gc *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		g.observe(op, outcomeError)
		return nil, fmt.Errorf("gemini %s: rate limiter: %v: %w", op, err, domain.ErrUpstream)
	}

	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, model, contents, gc)
	if g.metrics != nil {
		g.metrics.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
	if err == nil && resp == nil {
		err = errors.New("nil response")
	}
	if err != nil {
		g.observe(op, outcomeError)
		g.log.ErrorContext(ctx, "provider call failed",
			slog.String("operation", op),
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("gemini %s: %v: %w", op, err, domain.ErrUpstream)
	}
	return resp, nil
}

func (g *Gateway) observe(op, outcome string) {
	if g.metrics == nil {
		return
	}
	g.metrics.Requests.WithLabelValues(op, outcome).Inc()
}
