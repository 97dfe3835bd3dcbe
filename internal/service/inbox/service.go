package inbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/PAVAN4141/CA.ai/internal/domain"
	"github.com/PAVAN4141/CA.ai/internal/workspace"
)

// UnknownClient is shown for messages whose sender is not in the directory.
const UnknownClient = "Unknown Client"

type workspaces interface {
	Get(ctx context.Context) (*workspace.Workspace, error)
}

type generator interface {
	Generate(clients []domain.Client, now time.Time) []domain.InboxMessage
}

type composer interface {
	Compose(to, subject, body string) string
}

// Service runs the client communication panel.
type Service struct {
	spaces  workspaces
	gen     generator
	compose composer
	now     func() time.Time
	log     *slog.Logger
}

func NewService(
	log *slog.Logger,
	spaces workspaces,
	gen generator,
	compose composer,
) *Service {
	return &Service{
		spaces:  spaces,
		gen:     gen,
		compose: compose,
		now:     time.Now,
		log:     log.With("service", "inbox"),
	}
}

// Row is an inbox message with its sender resolved against the directory.
type Row struct {
	domain.InboxMessage
	ClientName string `json:"clientName"`
	Actionable bool   `json:"actionable"`
}

// SyncResult reports how many messages a sync added.
type SyncResult struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// SubmitResult is the replied message and the compose link to open.
type SubmitResult struct {
	Message    domain.InboxMessage `json:"message"`
	ComposeURL string              `json:"composeUrl"`
}

// sender resolves fromEmail against the directory, ignoring case.
func sender(ws *workspace.Workspace, email string) (domain.Client, bool) {
	matches := ws.Clients.Filter(func(c domain.Client) bool {
		return domain.SameEmail(c.Email, email)
	})
	if len(matches) == 0 {
		return domain.Client{}, false
	}
	return matches[0], true
}
