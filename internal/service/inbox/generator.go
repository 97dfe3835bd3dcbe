package inbox

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// messageNamespace scopes the derived ids of generated messages.
var messageNamespace = uuid.MustParse("6f1c2a4e-93d5-4b0e-8a61-2f7d9c3e5b10")

type template struct {
	subject string
	query   string
}

var demoTemplates = []template{
	{"Clarification on TDS Rate", "Could you please clarify the TDS rate for Technical Services under the new amendment?"},
	{"Audit Invoice Received", "We have received the invoice for the March 2024 Audit. Processing payment shortly."},
	{"Investment Proof Submission", "What is the deadline for submitting investment proofs for this FY?"},
	{"GSTR-1 Filing Status", "Have we filed the GSTR-1 for last month yet? Please confirm."},
	{"Urgent: Notice u/s 143(1)", "We received an intimation from the IT department today. Can we discuss this?"},
}

// DemoGenerator synthesizes client queries from the directory. It is test data,
// not a mail integration: client i gets template i mod 5.
type DemoGenerator struct{}

// Generate returns one message per client. The id is derived from the client id
// and the lower-cased email, so regenerating for an unchanged client yields the
// same id while a new or re-addressed client yields a new one.
func (DemoGenerator) Generate(clients []domain.Client, now time.Time) []domain.InboxMessage {
	msgs := make([]domain.InboxMessage, 0, len(clients))
	for i, c := range clients {
		tpl := demoTemplates[i%len(demoTemplates)]
		msgs = append(msgs, domain.InboxMessage{
			ID:        MessageID(c),
			FromEmail: c.Email,
			Subject:   tpl.subject,
			QueryText: tpl.query,
			Status:    domain.MessageStatusNew,
			Timestamp: now,
		})
	}
	return msgs
}

// MessageID is the id a generated message for c gets.
func MessageID(c domain.Client) uuid.UUID {
	key := c.ID.String() + "|" + strings.ToLower(c.Email)
	return uuid.NewSHA1(messageNamespace, []byte(key))
}
