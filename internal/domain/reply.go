package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ReplyPanel tracks the reply UI for one inbox message. The zero value is closed.
//
//	Closed  --open(New)-->      Editing("")
//	Closed  --open(Replied)-->  Options
//	Options --view-->           Viewing --back--> Options
//	Options|Viewing --edit-->   Editing(existing reply)
//	Editing --submit-->         Closed
//	any     --close-->          Closed
type ReplyPanel struct {
	Mode      ReplyMode `json:"mode"`
	MessageID uuid.UUID `json:"messageId,omitempty"`
	Draft     string    `json:"draft"`
	Existing  string    `json:"existingReply,omitempty"`
}

func (p ReplyPanel) IsOpen() bool {
	return p.Mode != "" && p.Mode != ReplyModeClosed
}

// Open targets msg. Opening while another message is selected replaces the selection.
func (p *ReplyPanel) Open(msg InboxMessage) {
	p.MessageID = msg.ID
	p.Existing = msg.ReplyText
	if msg.Status == MessageStatusReplied {
		p.Mode = ReplyModeOptions
		p.Draft = msg.ReplyText
		return
	}
	p.Mode = ReplyModeEditing
	p.Draft = ""
}

func (p *ReplyPanel) View() error {
	if p.Mode != ReplyModeOptions {
		return p.transitionErr("view")
	}
	p.Mode = ReplyModeViewing
	return nil
}

func (p *ReplyPanel) Back() error {
	if p.Mode != ReplyModeViewing {
		return p.transitionErr("back")
	}
	p.Mode = ReplyModeOptions
	return nil
}

// Edit starts a new reply seeded with the existing one.
func (p *ReplyPanel) Edit() error {
	if p.Mode != ReplyModeOptions && p.Mode != ReplyModeViewing {
		return p.transitionErr("edit")
	}
	p.Mode = ReplyModeEditing
	p.Draft = p.Existing
	return nil
}

func (p *ReplyPanel) SetDraft(text string) error {
	if p.Mode != ReplyModeEditing {
		return p.transitionErr("set draft")
	}
	p.Draft = text
	return nil
}

// Submission returns the message id and draft ready to be sent. The panel is
// left unchanged so a failed send keeps the draft.
func (p ReplyPanel) Submission() (uuid.UUID, string, error) {
	if p.Mode != ReplyModeEditing {
		return uuid.Nil, "", p.transitionErr("submit")
	}
	if isBlank(p.Draft) {
		return uuid.Nil, "", NewValidationError("draft", "required")
	}
	return p.MessageID, p.Draft, nil
}

func (p *ReplyPanel) Close() {
	*p = ReplyPanel{Mode: ReplyModeClosed}
}

func (p ReplyPanel) transitionErr(action string) error {
	mode := p.Mode
	if mode == "" {
		mode = ReplyModeClosed
	}
	return fmt.Errorf("reply panel: cannot %s while %s: %w", action, mode, ErrConflict)
}
