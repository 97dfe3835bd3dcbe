package assistant

import (
	"strings"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// AskInput is a chat question. Grounded overrides the configured default.
type AskInput struct {
	Prompt   string `json:"prompt"`
	Grounded *bool  `json:"grounded,omitempty"`
}

func (i AskInput) Validate() error {
	return validatePrompt("prompt", i.Prompt)
}

const maxPromptLength = 20000

func validatePrompt(field, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NewValidationError(field, "required")
	}
	if len(text) > maxPromptLength {
		return domain.NewValidationError(field, "max 20000 characters")
	}
	return nil
}
