package workspace

import (
	"slices"
	"sync"
	"time"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Conversation is the regulatory chat panel.
type Conversation struct {
	Flight

	mu       sync.RWMutex
	messages []domain.ChatMessage
}

func newConversation(now time.Time) *Conversation {
	return &Conversation{
		messages: []domain.ChatMessage{{
			Role:      domain.ChatRoleModel,
			Text:      domain.WelcomeMessage,
			Timestamp: now,
			Synthetic: true,
		}},
	}
}

func (c *Conversation) Messages() []domain.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.messages)
}

// History returns the turns to send to the provider. Synthetic messages are
// skipped, and so is a question whose answer was a fallback.
func (c *Conversation) History() []domain.ChatTurn {
	c.mu.RLock()
	defer c.mu.RUnlock()

	turns := make([]domain.ChatTurn, 0, len(c.messages))
	for i, m := range c.messages {
		if m.Synthetic {
			continue
		}
		if m.Role == domain.ChatRoleUser && i+1 < len(c.messages) && c.messages[i+1].Synthetic {
			continue
		}
		turns = append(turns, domain.ChatTurn{Role: m.Role, Text: m.Text})
	}
	return turns
}

func (c *Conversation) Append(msgs ...domain.ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, msgs...)
	c.mu.Unlock()
}

// Retract removes the most recent message matching m. A question whose
// answer was dropped is retracted so it does not linger unanswered.
func (c *Conversation) Retract(m domain.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.messages) - 1; i >= 0; i-- {
		got := c.messages[i]
		if got.Role == m.Role && got.Text == m.Text && got.Timestamp.Equal(m.Timestamp) {
			c.messages = slices.Delete(c.messages, i, i+1)
			return
		}
	}
}

// Analysis is the strategic advisory panel.
type Analysis struct {
	Flight

	mu     sync.RWMutex
	prompt string
	text   string
}

func (a *Analysis) Result() (prompt, text string) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.prompt, a.text
}

func (a *Analysis) Set(prompt, text string) {
	a.mu.Lock()
	a.prompt, a.text = prompt, text
	a.mu.Unlock()
}

// Chart is the financial visualizer panel. A failed extraction records the
// failure but keeps the last successful series.
type Chart struct {
	Flight

	mu      sync.RWMutex
	series  *domain.FinancialSeries
	failure string
}

// ChartState is a snapshot of the visualizer panel.
type ChartState struct {
	Series  *domain.FinancialSeries `json:"series"`
	Failure string                  `json:"failure,omitempty"`
	Loading bool                    `json:"loading"`
}

func (c *Chart) State() ChartState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := ChartState{Failure: c.failure, Loading: c.InFlight()}
	if c.series != nil {
		cp := *c.series
		cp.Data = slices.Clone(c.series.Data)
		st.Series = &cp
	}
	return st
}

func (c *Chart) Succeed(series domain.FinancialSeries) {
	c.mu.Lock()
	c.series = &series
	c.failure = ""
	c.mu.Unlock()
}

func (c *Chart) Fail(message string) {
	c.mu.Lock()
	c.failure = message
	c.mu.Unlock()
}
