package usecase

import (
	"context"
	"fmt"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/flow"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/logger"
	"go-jobswipe-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileFlowUsecase struct {
	sessions  domain.SessionRepository
	users     domain.UserRepository
	validate  *validator.Validate
	minSalary int
}

func NewProfileFlowUsecase(sessions domain.SessionRepository, users domain.UserRepository, validate *validator.Validate, minSalary int) domain.ProfileFlowUsecase {
	return &profileFlowUsecase{
		sessions:  sessions,
		users:     users,
		validate:  validate,
		minSalary: minSalary,
	}
}

// StartProfile resets the session to the skills step. Re-issuing the trigger
// mid-flow discards in-progress answers, so the flow always restarts clean.
func (u *profileFlowUsecase) StartProfile(ctx context.Context, userID int64) (*domain.StepPrompt, error) {
	sess := domain.NewSession(userID)
	sess.Step = domain.StepAwaitingSkills
	sess.UpdatedAt = time.Now()

	if err := u.sessions.Set(ctx, sess); err != nil {
		return nil, &domain.PersistenceError{Op: "session.set", UserID: userID, Err: err}
	}
	return &domain.StepPrompt{Step: domain.StepAwaitingSkills}, nil
}

func (u *profileFlowUsecase) Submit(ctx context.Context, userID int64, input string) (*domain.StepPrompt, error) {
	sess, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "session.get", UserID: userID, Err: err}
	}
	if sess == nil || sess.Step == domain.StepIdle || sess.Step == domain.StepAwaitingDecision {
		return nil, domain.ErrNoActiveFlow
	}

	// On rejection the session is left untouched and the same step retried.
	switch sess.Step {
	case domain.StepAwaitingSkills:
		skills, err := flow.Skills(input)
		if err != nil {
			return nil, err
		}
		sess.Draft.Skills = skills
		sess.Step = domain.StepAwaitingExperience
		return u.advance(ctx, sess, domain.ExperienceChoices())

	case domain.StepAwaitingExperience:
		exp, err := flow.Experience(input)
		if err != nil {
			return nil, err
		}
		sess.Draft.Experience = &exp
		sess.Step = domain.StepAwaitingSalary
		return u.advance(ctx, sess, nil)

	case domain.StepAwaitingSalary:
		salary, err := flow.Salary(input, u.minSalary)
		if err != nil {
			return nil, err
		}
		sess.Draft.Salary = &salary
		sess.Step = domain.StepAwaitingFormat
		return u.advance(ctx, sess, domain.FormatChoices())

	case domain.StepAwaitingFormat:
		format, err := flow.Format(input)
		if err != nil {
			return nil, err
		}
		sess.Draft.Format = &format
		return u.complete(ctx, sess)
	}

	return nil, domain.ErrNoActiveFlow
}

func (u *profileFlowUsecase) advance(ctx context.Context, sess *domain.Session, choices []domain.Choice) (*domain.StepPrompt, error) {
	sess.UpdatedAt = time.Now()
	if err := u.sessions.Set(ctx, sess); err != nil {
		return nil, &domain.PersistenceError{Op: "session.set", UserID: sess.UserID, Err: err}
	}
	return &domain.StepPrompt{Step: sess.Step, Choices: choices}, nil
}

// complete builds the finalized profile and upserts it. The session keeps the
// full draft (including the last answer) until the upsert succeeds, so a
// failed write is retried by re-dispatching the final event without asking
// the user anything again.
func (u *profileFlowUsecase) complete(ctx context.Context, sess *domain.Session) (*domain.StepPrompt, error) {
	profile := &domain.Profile{
		TelegramID: sess.UserID,
		Skills:     sess.Draft.Skills,
		Experience: *sess.Draft.Experience,
		Salary:     *sess.Draft.Salary,
		Format:     *sess.Draft.Format,
		UpdatedAt:  time.Now(),
	}

	if err := u.validate.Struct(profile); err != nil {
		// The step validators guarantee this never fires; if it does the
		// draft invariant is broken and it is a fault, not user input.
		return nil, apperror.Internal(fmt.Errorf("finalized profile invalid: %s", validation.FormatValidationErrors(err)))
	}

	sess.UpdatedAt = time.Now()
	if err := u.sessions.Set(ctx, sess); err != nil {
		return nil, &domain.PersistenceError{Op: "session.set", UserID: sess.UserID, Err: err}
	}

	if err := u.users.Upsert(ctx, profile); err != nil {
		return nil, &domain.PersistenceError{Op: "profile.upsert", UserID: sess.UserID, Err: err}
	}

	if err := u.sessions.Clear(ctx, sess.UserID); err != nil {
		// Profile is already durable; a stale session only costs the user a
		// restart of the next flow.
		logger.With("usecase.profile_flow").Warn("failed to clear session after completion",
			"user_id", sess.UserID, "error", err)
	}

	return &domain.StepPrompt{Done: true, Profile: profile}, nil
}
