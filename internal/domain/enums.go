package domain

// AuditStatus is the progress of a scheduled audit.
type AuditStatus string

const (
	AuditStatusPending    AuditStatus = "Pending"
	AuditStatusInProgress AuditStatus = "In Progress"
	AuditStatusCompleted  AuditStatus = "Completed"
)

func (s AuditStatus) String() string { return string(s) }

func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPending, AuditStatusInProgress, AuditStatusCompleted:
		return true
	}
	return false
}

// TaxStatus is the filing state of a tax return.
type TaxStatus string

const (
	TaxStatusNotStarted TaxStatus = "Not Started"
	TaxStatusProcessing TaxStatus = "Processing"
	TaxStatusFiled      TaxStatus = "Filed"
)

func (s TaxStatus) String() string { return string(s) }

func (s TaxStatus) IsValid() bool {
	switch s {
	case TaxStatusNotStarted, TaxStatusProcessing, TaxStatusFiled:
		return true
	}
	return false
}

// MessageStatus is the state of an inbox message. There is no way back from Replied.
type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "New"
	MessageStatusReplied MessageStatus = "Replied"
)

func (s MessageStatus) String() string { return string(s) }

func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusNew, MessageStatusReplied:
		return true
	}
	return false
}

// Panel identifies one tab of the console shell.
type Panel string

const (
	PanelDashboard           Panel = "DASHBOARD"
	PanelTaxChat             Panel = "TAX_CHAT"
	PanelAdvisory            Panel = "ADVISORY"
	PanelFinViz              Panel = "FIN_VIZ"
	PanelAuditPlanner        Panel = "AUDIT_PLANNER"
	PanelTaxTracker          Panel = "TAX_TRACKER"
	PanelClientData          Panel = "CLIENT_DATA"
	PanelClientCommunication Panel = "CLIENT_COMMUNICATION"
)

// Panels lists every panel in sidebar order.
var Panels = []Panel{
	PanelDashboard,
	PanelTaxChat,
	PanelAdvisory,
	PanelFinViz,
	PanelAuditPlanner,
	PanelTaxTracker,
	PanelClientData,
	PanelClientCommunication,
}

func (p Panel) String() string { return string(p) }

func (p Panel) IsValid() bool {
	for _, known := range Panels {
		if p == known {
			return true
		}
	}
	return false
}

// UsesProvider reports whether the panel forwards user text to the AI provider.
func (p Panel) UsesProvider() bool {
	return p == PanelTaxChat || p == PanelAdvisory || p == PanelFinViz
}

// ChatRole tags a conversation turn.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

func (r ChatRole) String() string { return string(r) }

// ReplyMode is the state of the reply panel in the communication tab.
type ReplyMode string

const (
	ReplyModeClosed  ReplyMode = "closed"
	ReplyModeEditing ReplyMode = "editing"
	ReplyModeOptions ReplyMode = "options"
	ReplyModeViewing ReplyMode = "viewing"
)

func (m ReplyMode) String() string { return string(m) }
