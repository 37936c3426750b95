package usecase

import (
	"context"
	"fmt"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/logger"

	"github.com/google/uuid"
)

type swipeUsecase struct {
	sessions  domain.SessionRepository
	users     domain.UserRepository
	responses domain.ResponseRepository
	catalog   domain.VacancyCatalog
}

func NewSwipeUsecase(sessions domain.SessionRepository, users domain.UserRepository, responses domain.ResponseRepository, catalog domain.VacancyCatalog) domain.SwipeUsecase {
	return &swipeUsecase{
		sessions:  sessions,
		users:     users,
		responses: responses,
		catalog:   catalog,
	}
}

func (u *swipeUsecase) PresentNext(ctx context.Context, userID int64) (*domain.VacancyCard, error) {
	profile, err := u.users.GetByTelegramID(ctx, userID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "profile.get", UserID: userID, Err: err}
	}
	if profile == nil {
		return nil, domain.ErrNoProfile
	}

	vacancy, err := u.catalog.Next(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("select vacancy: %w", err)
	}

	sess, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "session.get", UserID: userID, Err: err}
	}
	if sess == nil {
		sess = domain.NewSession(userID)
	}
	// A half-finished profile draft must not survive into the decision
	// state, so the draft is rebuilt from scratch around the vacancy.
	sess.Step = domain.StepAwaitingDecision
	sess.Draft = domain.Draft{Vacancy: vacancy}
	sess.UpdatedAt = time.Now()

	if err := u.sessions.Set(ctx, sess); err != nil {
		return nil, &domain.PersistenceError{Op: "session.set", UserID: userID, Err: err}
	}

	return &domain.VacancyCard{Vacancy: vacancy, Choices: domain.SwipeChoices()}, nil
}

// Decide records the swipe for both outcomes so the audit trail stays
// complete, then clears the session.
func (u *swipeUsecase) Decide(ctx context.Context, userID int64, decision domain.Decision) (*domain.DecisionOutcome, error) {
	if decision != domain.DecisionAccepted && decision != domain.DecisionRejected {
		return nil, apperror.BadRequest("unknown decision: " + string(decision))
	}

	sess, err := u.sessions.Get(ctx, userID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "session.get", UserID: userID, Err: err}
	}
	if sess == nil || sess.Step != domain.StepAwaitingDecision || sess.Draft.Vacancy == nil {
		return nil, domain.ErrNoActiveItem
	}
	vacancy := sess.Draft.Vacancy

	record := &domain.VacancyResponse{
		ID:        uuid.NewString(),
		UserID:    userID,
		VacancyID: vacancy.ID,
		Action:    decision,
		CreatedAt: time.Now(),
	}
	// Session untouched on failure: the user can swipe again and the append
	// is retried (duplicate records are allowed).
	if err := u.responses.Append(ctx, record); err != nil {
		return nil, &domain.PersistenceError{Op: "response.append", UserID: userID, Err: err}
	}

	if err := u.sessions.Clear(ctx, userID); err != nil {
		logger.With("usecase.swipe").Warn("failed to clear session after decision",
			"user_id", userID, "error", err)
	}

	outcome := &domain.DecisionOutcome{Decision: decision, Vacancy: vacancy}
	if decision == domain.DecisionAccepted {
		outcome.ApplyURL = vacancy.ApplyURL
	}
	return outcome, nil
}

func (u *swipeUsecase) History(ctx context.Context, userID int64) ([]domain.VacancyResponse, error) {
	records, err := u.responses.GetByUserID(ctx, userID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "response.list", UserID: userID, Err: err}
	}
	return records, nil
}
