package inbox

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

func TestDemoGenerator_OneMessagePerClient(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	var clients []domain.Client
	for i := range 6 {
		clients = append(clients, domain.Client{ID: uuid.New(), Name: "C", Email: string(rune('a'+i)) + "@y.com"})
	}

	msgs := DemoGenerator{}.Generate(clients, now)
	if len(msgs) != len(clients) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(clients))
	}
	for i, m := range msgs {
		if m.FromEmail != clients[i].Email {
			t.Errorf("msgs[%d].FromEmail = %q", i, m.FromEmail)
		}
		if m.Status != domain.MessageStatusNew || !m.Timestamp.Equal(now) {
			t.Errorf("msgs[%d] = %+v", i, m)
		}
		if m.Subject != demoTemplates[i%5].subject {
			t.Errorf("msgs[%d].Subject = %q", i, m.Subject)
		}
	}
	if msgs[5].Subject != "Clarification on TDS Rate" {
		t.Errorf("template must wrap around, got %q", msgs[5].Subject)
	}
}

func TestMessageID(t *testing.T) {
	t.Parallel()

	c := domain.Client{ID: uuid.New(), Email: "X@Y.com"}
	same := c
	same.Email = "x@y.COM"
	moved := c
	moved.Email = "other@y.com"

	if MessageID(c) != MessageID(same) {
		t.Error("id must ignore email case")
	}
	if MessageID(c) == MessageID(moved) {
		t.Error("changing the email must change the id")
	}
	if MessageID(c) == MessageID(domain.Client{ID: uuid.New(), Email: c.Email}) {
		t.Error("different clients must get different ids")
	}
}
