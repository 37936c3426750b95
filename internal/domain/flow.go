package domain

import "context"

// Choice is one option of an enumerated choice set the presenter must render.
type Choice struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// Choice tokens understood by the dispatcher.
const (
	TokenExpJunior    = "exp_junior"
	TokenExpMiddle    = "exp_middle"
	TokenExpSenior    = "exp_senior"
	TokenFormatOffice = "format_office"
	TokenFormatRemote = "format_remote"
	TokenFormatHybrid = "format_hybrid"
	TokenSwipeLike    = "swipe_like"
	TokenSwipeSkip    = "swipe_skip"
)

func ExperienceChoices() []Choice {
	return []Choice{
		{Token: TokenExpJunior, Label: "Junior (< 1 year)"},
		{Token: TokenExpMiddle, Label: "Middle (1-3 years)"},
		{Token: TokenExpSenior, Label: "Senior (3+ years)"},
	}
}

func FormatChoices() []Choice {
	return []Choice{
		{Token: TokenFormatOffice, Label: "Office"},
		{Token: TokenFormatRemote, Label: "Remote"},
		{Token: TokenFormatHybrid, Label: "Hybrid"},
	}
}

func SwipeChoices() []Choice {
	return []Choice{
		{Token: TokenSwipeLike, Label: "Like"},
		{Token: TokenSwipeSkip, Label: "Skip"},
	}
}

// StepPrompt tells the caller which step to ask next, or that the flow is
// done and carries the finalized profile.
type StepPrompt struct {
	Step    Step     `json:"step"`
	Choices []Choice `json:"choices,omitempty"`
	Done    bool     `json:"done"`
	Profile *Profile `json:"profile,omitempty"`
}

// VacancyCard is a vacancy ready for rendering with its two swipe options.
type VacancyCard struct {
	Vacancy *Vacancy `json:"vacancy"`
	Choices []Choice `json:"choices"`
}

// DecisionOutcome is the result of a swipe. ApplyURL is set for accepted.
type DecisionOutcome struct {
	Decision Decision `json:"decision"`
	Vacancy  *Vacancy `json:"vacancy"`
	ApplyURL string   `json:"apply_url,omitempty"`
}

// ProfileFlowUsecase drives the profile-collection state machine.
type ProfileFlowUsecase interface {
	// StartProfile forces the session to the skills step, discarding any
	// in-progress answers. Safe to call mid-flow.
	StartProfile(ctx context.Context, userID int64) (*StepPrompt, error)
	// Submit validates input for the current step. On success it advances the
	// session and returns the next prompt (or the completion descriptor); on
	// rejection it returns a *ValidationError and leaves the session as-is.
	Submit(ctx context.Context, userID int64, input string) (*StepPrompt, error)
}

// SwipeUsecase presents one vacancy at a time and records the decision.
type SwipeUsecase interface {
	PresentNext(ctx context.Context, userID int64) (*VacancyCard, error)
	Decide(ctx context.Context, userID int64, decision Decision) (*DecisionOutcome, error)
	// History lists the user's past decisions, newest first.
	History(ctx context.Context, userID int64) ([]VacancyResponse, error)
}
