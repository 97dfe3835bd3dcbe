package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// AuditEntry
// ---------------------------------------------------------------------------

// AuditEntry is one scheduled engagement on the audit planner.
type AuditEntry struct {
	ID           uuid.UUID   `json:"id"`
	ClientName   string      `json:"clientName"`
	AuditType    string      `json:"auditType"`
	Date         string      `json:"date"`
	Team         string      `json:"team"`
	TimeEstimate string      `json:"timeEstimate"`
	Status       AuditStatus `json:"status"`
}

func (a AuditEntry) RecordID() uuid.UUID { return a.ID }

// WithField returns a copy of a with one field replaced.
func (a AuditEntry) WithField(field, value string) (AuditEntry, error) {
	switch field {
	case "clientName":
		if isBlank(value) {
			return a, NewValidationError(field, "required")
		}
		a.ClientName = value
	case "auditType":
		a.AuditType = value
	case "date":
		if !validDate(value) {
			return a, NewValidationError(field, "must be YYYY-MM-DD")
		}
		a.Date = value
	case "team":
		a.Team = value
	case "timeEstimate":
		a.TimeEstimate = value
	case "status":
		s := AuditStatus(value)
		if !s.IsValid() {
			return a, NewValidationError(field, fmt.Sprintf("unknown status %q", value))
		}
		a.Status = s
	default:
		return a, NewValidationError("field", fmt.Sprintf("unknown field %q", field))
	}
	return a, nil
}

// AuditDraft holds the not-yet-committed values of a new audit.
type AuditDraft struct {
	ClientName   string      `json:"clientName"`
	AuditType    string      `json:"auditType"`
	Date         string      `json:"date"`
	Team         string      `json:"team"`
	TimeEstimate string      `json:"timeEstimate"`
	Status       AuditStatus `json:"status"`
}

func (d AuditDraft) Validate() error {
	var errs fieldErrors
	if isBlank(d.ClientName) {
		errs.add("clientName", "required")
	}
	if !validDate(d.Date) {
		errs.add("date", "must be YYYY-MM-DD")
	}
	if d.Status != "" && !d.Status.IsValid() {
		errs.add("status", fmt.Sprintf("unknown status %q", d.Status))
	}
	return errs.err()
}

func (d AuditDraft) Build(id uuid.UUID) AuditEntry {
	status := d.Status
	if status == "" {
		status = AuditStatusPending
	}
	return AuditEntry{
		ID:           id,
		ClientName:   d.ClientName,
		AuditType:    d.AuditType,
		Date:         d.Date,
		Team:         d.Team,
		TimeEstimate: d.TimeEstimate,
		Status:       status,
	}
}

// ---------------------------------------------------------------------------
// TaxEntry
// ---------------------------------------------------------------------------

// TaxEntry is one return tracked on the compliance tracker.
type TaxEntry struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"clientName"`
	ReturnType string    `json:"returnType"`
	DueDate    string    `json:"dueDate"`
	Status     TaxStatus `json:"status"`
}

func (t TaxEntry) RecordID() uuid.UUID { return t.ID }

func (t TaxEntry) WithField(field, value string) (TaxEntry, error) {
	switch field {
	case "clientName":
		if isBlank(value) {
			return t, NewValidationError(field, "required")
		}
		t.ClientName = value
	case "returnType":
		t.ReturnType = value
	case "dueDate":
		if !validDate(value) {
			return t, NewValidationError(field, "must be YYYY-MM-DD")
		}
		t.DueDate = value
	case "status":
		s := TaxStatus(value)
		if !s.IsValid() {
			return t, NewValidationError(field, fmt.Sprintf("unknown status %q", value))
		}
		t.Status = s
	default:
		return t, NewValidationError("field", fmt.Sprintf("unknown field %q", field))
	}
	return t, nil
}

type TaxDraft struct {
	ClientName string    `json:"clientName"`
	ReturnType string    `json:"returnType"`
	DueDate    string    `json:"dueDate"`
	Status     TaxStatus `json:"status"`
}

func (d TaxDraft) Validate() error {
	var errs fieldErrors
	if isBlank(d.ClientName) {
		errs.add("clientName", "required")
	}
	if !validDate(d.DueDate) {
		errs.add("dueDate", "must be YYYY-MM-DD")
	}
	if d.Status != "" && !d.Status.IsValid() {
		errs.add("status", fmt.Sprintf("unknown status %q", d.Status))
	}
	return errs.err()
}

func (d TaxDraft) Build(id uuid.UUID) TaxEntry {
	status := d.Status
	if status == "" {
		status = TaxStatusNotStarted
	}
	return TaxEntry{
		ID:         id,
		ClientName: d.ClientName,
		ReturnType: d.ReturnType,
		DueDate:    d.DueDate,
		Status:     status,
	}
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// Client is a directory record. Inbox messages refer to clients by email only.
type Client struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (c Client) RecordID() uuid.UUID { return c.ID }

func (c Client) WithField(field, value string) (Client, error) {
	switch field {
	case "name":
		if isBlank(value) {
			return c, NewValidationError(field, "required")
		}
		c.Name = value
	case "email":
		if isBlank(value) {
			return c, NewValidationError(field, "required")
		}
		if !validEmail(value) {
			return c, NewValidationError(field, "invalid email")
		}
		c.Email = value
	default:
		return c, NewValidationError("field", fmt.Sprintf("unknown field %q", field))
	}
	return c, nil
}

// Matches reports whether query is a case-insensitive substring of the name or email.
func (c Client) Matches(query string) bool {
	return ContainsFold(c.Name, query) || ContainsFold(c.Email, query)
}

type ClientDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (d ClientDraft) Validate() error {
	var errs fieldErrors
	if isBlank(d.Name) {
		errs.add("name", "required")
	}
	switch {
	case isBlank(d.Email):
		errs.add("email", "required")
	case !validEmail(d.Email):
		errs.add("email", "invalid email")
	}
	return errs.err()
}

func (d ClientDraft) Build(id uuid.UUID) Client {
	return Client{ID: id, Name: d.Name, Email: d.Email}
}

// ---------------------------------------------------------------------------
// InboxMessage
// ---------------------------------------------------------------------------

// InboxMessage is a client query waiting in the communication panel.
type InboxMessage struct {
	ID        uuid.UUID     `json:"id"`
	FromEmail string        `json:"fromEmail"`
	Subject   string        `json:"subject"`
	QueryText string        `json:"queryText"`
	Status    MessageStatus `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	ReplyText string        `json:"replyText,omitempty"`
}

func (m InboxMessage) RecordID() uuid.UUID { return m.ID }

// WithField edits message content. Status and reply only change through the reply panel.
func (m InboxMessage) WithField(field, value string) (InboxMessage, error) {
	switch field {
	case "subject":
		if isBlank(value) {
			return m, NewValidationError(field, "required")
		}
		m.Subject = value
	case "queryText":
		if isBlank(value) {
			return m, NewValidationError(field, "required")
		}
		m.QueryText = value
	default:
		return m, NewValidationError("field", fmt.Sprintf("field %q is not editable", field))
	}
	return m, nil
}

// MarkReplied records a submitted reply. There is no transition back to New.
func (m InboxMessage) MarkReplied(text string) InboxMessage {
	m.Status = MessageStatusReplied
	m.ReplyText = text
	return m
}

type MessageDraft struct {
	FromEmail string    `json:"fromEmail"`
	Subject   string    `json:"subject"`
	QueryText string    `json:"queryText"`
	Timestamp time.Time `json:"timestamp"`
}

func (d MessageDraft) Validate() error {
	var errs fieldErrors
	if isBlank(d.FromEmail) {
		errs.add("fromEmail", "required")
	}
	if isBlank(d.Subject) {
		errs.add("subject", "required")
	}
	if isBlank(d.QueryText) {
		errs.add("queryText", "required")
	}
	return errs.err()
}

func (d MessageDraft) Build(id uuid.UUID) InboxMessage {
	return InboxMessage{
		ID:        id,
		FromEmail: d.FromEmail,
		Subject:   d.Subject,
		QueryText: d.QueryText,
		Status:    MessageStatusNew,
		Timestamp: d.Timestamp,
	}
}

// validDate accepts an empty value or a calendar date in YYYY-MM-DD form.
func validDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
