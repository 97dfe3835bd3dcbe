// Package mailcompose builds compose-window URLs for reply handoff. Nothing is sent.
package mailcompose

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PAVAN4141/CA.ai/internal/config"
)

const gmailBase = "https://mail.google.com/mail/?view=cm&fs=1"

// Gmail opens the Gmail web compose window.
type Gmail struct{}

func (Gmail) Compose(to, subject, body string) string {
	return fmt.Sprintf("%s&to=%s&su=%s&body=%s", gmailBase, escape(to), escape(subject), escape(body))
}

// Mailto hands off to the default mail client.
type Mailto struct{}

func (Mailto) Compose(to, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", escape(to), escape(subject), escape(body))
}

// Composer builds a compose URL from recipient, subject and body.
type Composer interface {
	Compose(to, subject, body string) string
}

// New returns the composer named by cfg.Compose.
func New(cfg config.MailConfig) (Composer, error) {
	switch strings.ToLower(cfg.Compose) {
	case config.ComposeGmail:
		return Gmail{}, nil
	case config.ComposeMailto:
		return Mailto{}, nil
	default:
		return nil, fmt.Errorf("mailcompose: unknown style %q", cfg.Compose)
	}
}

// escape percent-encodes a URL component, spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
