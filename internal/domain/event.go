package domain

import "context"

// EventKind classifies inbound events. The core does not know or care how
// they arrive.
type EventKind string

const (
	EventText    EventKind = "text"    // free-form text input
	EventChoice  EventKind = "choice"  // discrete choice token
	EventCommand EventKind = "command" // flow trigger (start, help, profile, search)
)

// Commands accepted as flow triggers.
const (
	CommandStart   = "start"
	CommandHelp    = "help"
	CommandProfile = "profile"
	CommandSearch  = "search"
	CommandHistory = "history"
)

// Event is a normalized inbound update from the messaging platform.
type Event struct {
	UserID  int64     `json:"user_id"`
	Kind    EventKind `json:"kind"`
	Payload string    `json:"payload"`
}

// ReplyKind tells the presenter which descriptor fields are populated.
type ReplyKind string

const (
	ReplyWelcome      ReplyKind = "welcome"
	ReplyHelp         ReplyKind = "help"
	ReplyFallback     ReplyKind = "fallback" // unrecognized input outside a flow
	ReplyPrompt       ReplyKind = "prompt"
	ReplyRejected     ReplyKind = "rejected" // same step retried
	ReplyProfileSaved ReplyKind = "profile_saved"
	ReplyVacancy      ReplyKind = "vacancy"
	ReplyDecision     ReplyKind = "decision"
	ReplyNoProfile    ReplyKind = "no_profile"
	ReplyNoVacancy    ReplyKind = "no_vacancy" // decision arrived with nothing on screen
	ReplyHistory      ReplyKind = "history"
)

// Reply is the presenter-facing result descriptor. The core never formats
// platform-specific markup; the presenter turns this into text and buttons.
type Reply struct {
	Kind     ReplyKind         `json:"kind"`
	Step     Step              `json:"step,omitempty"`
	Reason   RejectReason      `json:"reason,omitempty"`
	Floor    int               `json:"floor,omitempty"`
	Choices  []Choice          `json:"choices,omitempty"`
	Profile  *Profile          `json:"profile,omitempty"`
	Vacancy  *Vacancy          `json:"vacancy,omitempty"`
	Decision Decision          `json:"decision,omitempty"`
	ApplyURL string            `json:"apply_url,omitempty"`
	History  []VacancyResponse `json:"history,omitempty"`
}

// EventDispatcher routes inbound events to the flow and swipe usecases,
// serializing processing per user.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) (*Reply, error)
}
