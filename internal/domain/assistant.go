package domain

import "time"

// Fixed texts shown in place of provider output.
const (
	WelcomeMessage = "Hello. I am your Regulatory Assistant. I can help you with Tax Laws, GST, " +
		"IFRS/GAAP standards, and recent amendments. I use Google Search to provide up-to-date information."
	ChatFallback      = "I encountered an error connecting to the regulation database. Please try again."
	ChatEmpty         = "I couldn't generate a response."
	AdvisoryFallback  = "Error: Unable to generate strategic analysis. Please try again."
	AdvisoryEmpty     = "No analysis generated."
	ExtractionFailure = "Failed to analyze data. Please ensure the text contains financial figures."
)

// GroundingSource is a citation returned with a grounded answer.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ChatTurn is one role-tagged turn of conversation history sent to the provider.
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatMessage is one entry of the regulatory chat transcript.
type ChatMessage struct {
	Role      ChatRole          `json:"role"`
	Text      string            `json:"text"`
	Sources   []GroundingSource `json:"sources,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	// Synthetic marks the welcome and fallback turns, which are never sent back as history.
	Synthetic bool `json:"-"`
}

// GroundedAnswer is the result of a regulatory question.
type GroundedAnswer struct {
	Text    string
	Sources []GroundingSource
}

// SeriesPoint is one bar of an extracted chart.
type SeriesPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// FinancialSeries is the structured result of extraction.
type FinancialSeries struct {
	Summary string        `json:"summary"`
	Data    []SeriesPoint `json:"data"`
}

// DashboardStats summarizes the workspace for the dashboard panel.
type DashboardStats struct {
	ActiveAudits   int `json:"activeAudits"`
	OpenTaxReturns int `json:"openTaxReturns"`
	NewMessages    int `json:"newMessages"`
	Clients        int `json:"clients"`
}
