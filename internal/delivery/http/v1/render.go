package v1

import (
	"fmt"
	"strings"

	"go-jobswipe-backend/internal/domain"
)

// RenderedReply is what the bot platform bridge actually sends to the user:
// plain text plus an optional enumerated choice set. No platform markup here.
type RenderedReply struct {
	Text    string          `json:"text"`
	Choices []domain.Choice `json:"choices,omitempty"`
}

const welcomeText = `Hi! I'm a job-search bot with swipe-style vacancy cards.

How it works:
1. Fill in your profile (skills, experience, salary)
2. Get vacancy cards
3. Swipe: like or skip
4. After a like, send your application

Start with the profile command to tell us about yourself.`

const helpText = `Available commands:

start - greeting and instructions
help - this message
profile - fill in or update your profile
search - get a vacancy card
history - your past decisions`

const fallbackText = `I only understand commands:
start, help, profile, search, history.

Send the profile command to get going.`

var stepPrompts = map[domain.Step]string{
	domain.StepAwaitingSkills: `Let's fill in your profile!

List your skills separated by commas (at least two).
Example: Python, React, Docker`,
	domain.StepAwaitingExperience: "Choose your experience level:",
	domain.StepAwaitingSalary: `What salary are you looking for? Numbers only.
Example: 150000`,
	domain.StepAwaitingFormat: "Choose your work format:",
}

var rejectTexts = map[domain.RejectReason]string{
	domain.RejectTooFewSkills:  "Please list at least 2 skills separated by commas.\nExample: Python, SQL",
	domain.RejectNotANumber:    "Please send a number only.\nExample: 150000",
	domain.RejectUnknownChoice: "Please pick one of the offered options.",
}

// RenderReply maps a core reply descriptor to presenter output.
func RenderReply(reply *domain.Reply) RenderedReply {
	switch reply.Kind {
	case domain.ReplyWelcome:
		return RenderedReply{Text: welcomeText}
	case domain.ReplyHelp:
		return RenderedReply{Text: helpText}
	case domain.ReplyPrompt:
		return RenderedReply{Text: stepPrompts[reply.Step], Choices: reply.Choices}
	case domain.ReplyRejected:
		return renderRejection(reply)
	case domain.ReplyProfileSaved:
		return RenderedReply{Text: renderProfile(reply.Profile)}
	case domain.ReplyVacancy:
		return RenderedReply{Text: renderVacancy(reply.Vacancy), Choices: reply.Choices}
	case domain.ReplyDecision:
		return renderDecision(reply)
	case domain.ReplyNoProfile:
		return RenderedReply{Text: "Fill in your profile first - send the profile command."}
	case domain.ReplyNoVacancy:
		return RenderedReply{Text: "There is no vacancy on screen. Send the search command first."}
	case domain.ReplyHistory:
		return RenderedReply{Text: renderHistory(reply.History)}
	}
	return RenderedReply{Text: fallbackText}
}

func renderRejection(reply *domain.Reply) RenderedReply {
	if reply.Reason == domain.RejectBelowMinimum {
		return RenderedReply{Text: fmt.Sprintf("That is too low. Please send a realistic amount (from %d).", reply.Floor)}
	}
	if text, ok := rejectTexts[reply.Reason]; ok {
		return RenderedReply{Text: text}
	}
	return RenderedReply{Text: "Invalid input, please try again."}
}

func renderProfile(p *domain.Profile) string {
	return fmt.Sprintf(`Profile saved!

Skills: %s
Experience: %s
Salary: %d
Format: %s

Now send the search command to see vacancies!`,
		strings.Join(p.Skills, ", "), p.Experience, p.Salary, p.Format)
}

func renderVacancy(v *domain.Vacancy) string {
	return fmt.Sprintf(`%s at %s

Salary: %d
Location: %s
Skills: %s`,
		v.Title, v.Company, v.Salary, v.Location, strings.Join(v.Skills, ", "))
}

func renderHistory(records []domain.VacancyResponse) string {
	if len(records) == 0 {
		return "No decisions yet. Send the search command to see a vacancy."
	}
	var b strings.Builder
	b.WriteString("Your decisions, newest first:\n")
	for _, r := range records {
		verdict := "skipped"
		if r.Action == domain.DecisionAccepted {
			verdict = "liked"
		}
		fmt.Fprintf(&b, "\n%s - %s (%s)", r.CreatedAt.Format("2006-01-02 15:04"), r.VacancyID, verdict)
	}
	return b.String()
}

func renderDecision(reply *domain.Reply) RenderedReply {
	if reply.Decision == domain.DecisionAccepted {
		return RenderedReply{Text: fmt.Sprintf("Great choice! Apply here:\n%s", reply.ApplyURL)}
	}
	return RenderedReply{Text: "Skipped. Send the search command for the next one."}
}
