package domain

import (
	"context"
	"time"
)

// Step is a stage in the linear profile-collection state machine.
type Step string

const (
	StepIdle               Step = "idle"
	StepAwaitingSkills     Step = "awaiting_skills"
	StepAwaitingExperience Step = "awaiting_experience"
	StepAwaitingSalary     Step = "awaiting_salary"
	StepAwaitingFormat     Step = "awaiting_format"
	StepAwaitingDecision   Step = "awaiting_decision"
)

// Draft holds the partially collected profile answers. Fields present are
// exactly those for steps already completed.
type Draft struct {
	Skills     []string         `json:"skills,omitempty"`
	Experience *ExperienceLevel `json:"experience,omitempty"`
	Salary     *int             `json:"salary,omitempty"`
	Format     *WorkFormat      `json:"format,omitempty"`
	Vacancy    *Vacancy         `json:"vacancy,omitempty"` // vacancy currently on screen
}

// Session is the transient per-user conversation state.
type Session struct {
	UserID    int64     `json:"user_id"`
	Step      Step      `json:"step"`
	Draft     Draft     `json:"draft"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(userID int64) *Session {
	return &Session{
		UserID: userID,
		Step:   StepIdle,
	}
}

// SessionRepository stores transient sessions keyed by user. Implementations
// may be in-memory or durable; Get returns (nil, nil) when no session exists.
type SessionRepository interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Set(ctx context.Context, session *Session) error
	Clear(ctx context.Context, userID int64) error
}
