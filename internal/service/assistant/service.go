package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

type workspaces interface {
	Get(ctx context.Context) (*workspace.Workspace, error)
}

type gateway interface {
	AskRegulatoryQuestion(ctx context.Context, prompt string, history []domain.ChatTurn, grounded bool) (domain.GroundedAnswer, error)
	GetStrategicAnalysis(ctx context.Context, prompt string) (string, error)
	ExtractFinancialSeries(ctx context.Context, text string) (domain.FinancialSeries, error)
}

// Service drives the three AI panels. Each panel allows one provider call at a
// time, and a call whose panel was left before it returned changes nothing.
type Service struct {
	spaces   workspaces
	ai       gateway
	grounded bool
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates the assistant service. grounded is the default search
// grounding setting for chat questions.
func NewService(
	log *slog.Logger,
	spaces workspaces,
	ai gateway,
	grounded bool,
) *Service {
	return &Service{
		spaces:   spaces,
		ai:       ai,
		grounded: grounded,
		now:      time.Now,
		log:      log.With("service", "assistant"),
	}
}

// TranscriptState is the chat panel as shown to the user.
type TranscriptState struct {
	Messages []domain.ChatMessage `json:"messages"`
	Loading  bool                 `json:"loading"`
}

// AnalysisState is the advisory panel as shown to the user.
type AnalysisState struct {
	Prompt  string `json:"prompt"`
	Text    string `json:"text"`
	Loading bool   `json:"loading"`
}
