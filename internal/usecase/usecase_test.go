package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/repository/memory"
	"go-jobswipe-backend/internal/usecase"
	"go-jobswipe-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Profile, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Append(ctx context.Context, response *domain.VacancyResponse) error {
	return m.Called(ctx, response).Error(0)
}

func (m *MockResponseRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.VacancyResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VacancyResponse), args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Next(ctx context.Context, profile *domain.Profile) (*domain.Vacancy, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func testVacancy() *domain.Vacancy {
	return &domain.Vacancy{
		ID:       "vac-001",
		Title:    "Go Backend Developer",
		Company:  "TechCorp",
		Salary:   180000,
		Location: "Moscow",
		Skills:   []string{"go", "postgresql"},
		ApplyURL: "https://example.com/apply",
	}
}

func TestProfileFlow(t *testing.T) {
	ctx := context.Background()
	const userID = int64(42)

	t.Run("Should advance skills step and store the normalized set", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		uc := usecase.NewProfileFlowUsecase(sessions, users, newValidator(), 30000)

		_, err := uc.StartProfile(ctx, userID)
		assert.NoError(t, err)

		prompt, err := uc.Submit(ctx, userID, "Python, React, Docker")
		assert.NoError(t, err)
		assert.Equal(t, domain.StepAwaitingExperience, prompt.Step)
		assert.Equal(t, domain.ExperienceChoices(), prompt.Choices)

		sess, _ := sessions.Get(ctx, userID)
		assert.Equal(t, []string{"python", "react", "docker"}, sess.Draft.Skills)
	})

	t.Run("Should keep the session untouched on rejected skills", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		uc := usecase.NewProfileFlowUsecase(sessions, new(MockUserRepo), newValidator(), 30000)

		_, _ = uc.StartProfile(ctx, userID)
		_, err := uc.Submit(ctx, userID, "Go")

		vErr, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.RejectTooFewSkills, vErr.Reason)

		sess, _ := sessions.Get(ctx, userID)
		assert.Equal(t, domain.StepAwaitingSkills, sess.Step)
		assert.Empty(t, sess.Draft.Skills)
	})

	t.Run("Should accept a salary above the floor and reject one below", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		uc := usecase.NewProfileFlowUsecase(sessions, new(MockUserRepo), newValidator(), 30000)

		_, _ = uc.StartProfile(ctx, userID)
		_, _ = uc.Submit(ctx, userID, "go, sql")
		_, _ = uc.Submit(ctx, userID, "middle")

		_, err := uc.Submit(ctx, userID, "5000")
		vErr, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.RejectBelowMinimum, vErr.Reason)

		sess, _ := sessions.Get(ctx, userID)
		assert.Equal(t, domain.StepAwaitingSalary, sess.Step)
		assert.Nil(t, sess.Draft.Salary)

		prompt, err := uc.Submit(ctx, userID, "150000")
		assert.NoError(t, err)
		assert.Equal(t, domain.StepAwaitingFormat, prompt.Step)

		sess, _ = sessions.Get(ctx, userID)
		assert.Equal(t, 150000, *sess.Draft.Salary)
	})

	t.Run("Should upsert the profile and clear the session on completion", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.TelegramID == userID &&
				len(p.Skills) == 2 &&
				p.Experience == domain.ExperienceSenior &&
				p.Salary == 200000 &&
				p.Format == domain.FormatRemote
		})).Return(nil)

		uc := usecase.NewProfileFlowUsecase(sessions, users, newValidator(), 30000)

		_, _ = uc.StartProfile(ctx, userID)
		_, _ = uc.Submit(ctx, userID, "go, kubernetes")
		_, _ = uc.Submit(ctx, userID, "senior")
		_, _ = uc.Submit(ctx, userID, "200000")

		prompt, err := uc.Submit(ctx, userID, "remote")
		assert.NoError(t, err)
		assert.True(t, prompt.Done)
		assert.NotNil(t, prompt.Profile)
		assert.Equal(t, domain.FormatRemote, prompt.Profile.Format)

		sess, _ := sessions.Get(ctx, userID)
		assert.Nil(t, sess)
		users.AssertExpectations(t)
	})

	t.Run("Should complete with punctuation-leading and non-Latin skills", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return assert.ObjectsAreEqual([]string{".net", "питон"}, p.Skills)
		})).Return(nil)

		uc := usecase.NewProfileFlowUsecase(sessions, users, newValidator(), 30000)

		_, _ = uc.StartProfile(ctx, userID)
		_, err := uc.Submit(ctx, userID, ".NET, Питон")
		assert.NoError(t, err)
		_, _ = uc.Submit(ctx, userID, "middle")
		_, _ = uc.Submit(ctx, userID, "100000")

		// Anything the skills step accepted must pass the final profile
		// validation; completion is never allowed to fail on it.
		prompt, err := uc.Submit(ctx, userID, "remote")
		assert.NoError(t, err)
		assert.True(t, prompt.Done)
		assert.Equal(t, []string{".net", "питон"}, prompt.Profile.Skills)
		users.AssertExpectations(t)
	})

	t.Run("Should signal NoActiveFlow outside a flow", func(t *testing.T) {
		uc := usecase.NewProfileFlowUsecase(memory.NewSessionRepository(), new(MockUserRepo), newValidator(), 30000)

		_, err := uc.Submit(ctx, userID, "anything")
		assert.ErrorIs(t, err, domain.ErrNoActiveFlow)
	})

	t.Run("Should restart from step one when the trigger is re-issued mid-flow", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return assert.ObjectsAreEqual([]string{"rust", "redis"}, p.Skills)
		})).Return(nil)

		uc := usecase.NewProfileFlowUsecase(sessions, users, newValidator(), 30000)

		_, _ = uc.StartProfile(ctx, userID)
		_, _ = uc.Submit(ctx, userID, "go, sql") // discarded by the restart

		prompt, err := uc.StartProfile(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, domain.StepAwaitingSkills, prompt.Step)

		_, _ = uc.Submit(ctx, userID, "Rust, Redis")
		_, _ = uc.Submit(ctx, userID, "junior")
		_, _ = uc.Submit(ctx, userID, "90000")
		done, err := uc.Submit(ctx, userID, "office")
		assert.NoError(t, err)
		assert.Equal(t, []string{"rust", "redis"}, done.Profile.Skills)
		users.AssertExpectations(t)
	})

	t.Run("Should surface a store failure and retry without re-asking", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
		users.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

		uc := usecase.NewProfileFlowUsecase(sessions, users, newValidator(), 30000)

		_, _ = uc.StartProfile(ctx, userID)
		_, _ = uc.Submit(ctx, userID, "go, sql")
		_, _ = uc.Submit(ctx, userID, "middle")
		_, _ = uc.Submit(ctx, userID, "100000")

		_, err := uc.Submit(ctx, userID, "hybrid")
		var pErr *domain.PersistenceError
		assert.ErrorAs(t, err, &pErr)
		assert.Equal(t, "profile.upsert", pErr.Op)

		// Answers survived the failure; re-dispatching the final event alone
		// completes the flow.
		sess, _ := sessions.Get(ctx, userID)
		assert.NotNil(t, sess)
		assert.Equal(t, []string{"go", "sql"}, sess.Draft.Skills)

		prompt, err := uc.Submit(ctx, userID, "hybrid")
		assert.NoError(t, err)
		assert.True(t, prompt.Done)
		users.AssertExpectations(t)
	})
}

func TestSwipe(t *testing.T) {
	ctx := context.Background()
	const userID = int64(7)

	profile := &domain.Profile{
		TelegramID: userID,
		Skills:     []string{"go", "sql"},
		Experience: domain.ExperienceMiddle,
		Salary:     120000,
		Format:     domain.FormatRemote,
	}

	t.Run("Should fail with NoProfile before the profile flow is completed", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByTelegramID", mock.Anything, userID).Return(nil, nil)

		uc := usecase.NewSwipeUsecase(memory.NewSessionRepository(), users, new(MockResponseRepo), new(MockCatalog))

		_, err := uc.PresentNext(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrNoProfile)
	})

	t.Run("Should present a vacancy and park the session on the decision step", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("GetByTelegramID", mock.Anything, userID).Return(profile, nil)
		cat := new(MockCatalog)
		cat.On("Next", mock.Anything, profile).Return(testVacancy(), nil)

		uc := usecase.NewSwipeUsecase(sessions, users, new(MockResponseRepo), cat)

		card, err := uc.PresentNext(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "vac-001", card.Vacancy.ID)
		assert.Len(t, card.Choices, 2)

		sess, _ := sessions.Get(ctx, userID)
		assert.Equal(t, domain.StepAwaitingDecision, sess.Step)
		assert.Equal(t, "vac-001", sess.Draft.Vacancy.ID)
	})

	t.Run("Should record an accepted swipe, return the apply URL and clear the session", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("GetByTelegramID", mock.Anything, userID).Return(profile, nil)
		cat := new(MockCatalog)
		cat.On("Next", mock.Anything, profile).Return(testVacancy(), nil)
		responses := new(MockResponseRepo)
		responses.On("Append", mock.Anything, mock.MatchedBy(func(r *domain.VacancyResponse) bool {
			return r.UserID == userID && r.VacancyID == "vac-001" && r.Action == domain.DecisionAccepted && r.ID != ""
		})).Return(nil)

		uc := usecase.NewSwipeUsecase(sessions, users, responses, cat)

		_, err := uc.PresentNext(ctx, userID)
		assert.NoError(t, err)

		outcome, err := uc.Decide(ctx, userID, domain.DecisionAccepted)
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/apply", outcome.ApplyURL)

		sess, _ := sessions.Get(ctx, userID)
		assert.Nil(t, sess)
		responses.AssertExpectations(t)
	})

	t.Run("Should record a rejected swipe as well", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("GetByTelegramID", mock.Anything, userID).Return(profile, nil)
		cat := new(MockCatalog)
		cat.On("Next", mock.Anything, profile).Return(testVacancy(), nil)
		responses := new(MockResponseRepo)
		responses.On("Append", mock.Anything, mock.MatchedBy(func(r *domain.VacancyResponse) bool {
			return r.Action == domain.DecisionRejected
		})).Return(nil)

		uc := usecase.NewSwipeUsecase(sessions, users, responses, cat)

		_, _ = uc.PresentNext(ctx, userID)
		outcome, err := uc.Decide(ctx, userID, domain.DecisionRejected)
		assert.NoError(t, err)
		assert.Empty(t, outcome.ApplyURL)
		responses.AssertExpectations(t)
	})

	t.Run("Should fail with NoActiveItem when nothing is on screen", func(t *testing.T) {
		uc := usecase.NewSwipeUsecase(memory.NewSessionRepository(), new(MockUserRepo), new(MockResponseRepo), new(MockCatalog))

		_, err := uc.Decide(ctx, userID, domain.DecisionAccepted)
		assert.ErrorIs(t, err, domain.ErrNoActiveItem)
	})

	t.Run("Should keep the session when the append fails so the swipe can be retried", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("GetByTelegramID", mock.Anything, userID).Return(profile, nil)
		cat := new(MockCatalog)
		cat.On("Next", mock.Anything, profile).Return(testVacancy(), nil)
		responses := new(MockResponseRepo)
		responses.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		responses.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

		uc := usecase.NewSwipeUsecase(sessions, users, responses, cat)

		_, _ = uc.PresentNext(ctx, userID)

		_, err := uc.Decide(ctx, userID, domain.DecisionAccepted)
		var pErr *domain.PersistenceError
		assert.ErrorAs(t, err, &pErr)
		assert.Equal(t, "response.append", pErr.Op)

		_, err = uc.Decide(ctx, userID, domain.DecisionAccepted)
		assert.NoError(t, err)
		responses.AssertExpectations(t)
	})

	t.Run("Should discard an abandoned profile draft when presenting a vacancy", func(t *testing.T) {
		sessions := memory.NewSessionRepository()
		users := new(MockUserRepo)
		users.On("GetByTelegramID", mock.Anything, userID).Return(profile, nil)
		cat := new(MockCatalog)
		cat.On("Next", mock.Anything, profile).Return(testVacancy(), nil)

		// User walked away mid-flow, then asked for a vacancy.
		abandoned := domain.NewSession(userID)
		abandoned.Step = domain.StepAwaitingSalary
		abandoned.Draft.Skills = []string{"go", "sql"}
		exp := domain.ExperienceMiddle
		abandoned.Draft.Experience = &exp
		assert.NoError(t, sessions.Set(ctx, abandoned))

		uc := usecase.NewSwipeUsecase(sessions, users, new(MockResponseRepo), cat)

		_, err := uc.PresentNext(ctx, userID)
		assert.NoError(t, err)

		sess, _ := sessions.Get(ctx, userID)
		assert.Equal(t, domain.StepAwaitingDecision, sess.Step)
		assert.Equal(t, "vac-001", sess.Draft.Vacancy.ID)
		assert.Empty(t, sess.Draft.Skills)
		assert.Nil(t, sess.Draft.Experience)
	})

	t.Run("Should list past decisions through the history query", func(t *testing.T) {
		records := []domain.VacancyResponse{
			{ID: "r2", UserID: userID, VacancyID: "vac-001", Action: domain.DecisionRejected},
			{ID: "r1", UserID: userID, VacancyID: "vac-001", Action: domain.DecisionAccepted},
		}
		responses := new(MockResponseRepo)
		responses.On("GetByUserID", mock.Anything, userID).Return(records, nil)

		uc := usecase.NewSwipeUsecase(memory.NewSessionRepository(), new(MockUserRepo), responses, new(MockCatalog))

		got, err := uc.History(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, records, got)
		responses.AssertExpectations(t)
	})

	t.Run("Should wrap a history read failure with its operation", func(t *testing.T) {
		responses := new(MockResponseRepo)
		responses.On("GetByUserID", mock.Anything, userID).Return(nil, errors.New("connection reset"))

		uc := usecase.NewSwipeUsecase(memory.NewSessionRepository(), new(MockUserRepo), responses, new(MockCatalog))

		_, err := uc.History(ctx, userID)
		var pErr *domain.PersistenceError
		assert.ErrorAs(t, err, &pErr)
		assert.Equal(t, "response.list", pErr.Op)
	})
}
