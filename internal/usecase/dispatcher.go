package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/logger"
)

// dispatcher routes inbound events to the flow and swipe usecases. Per-user
// processing is serialized with a per-user lock so two concurrently arriving
// events for the same user cannot interleave session mutations; different
// users proceed in parallel. The lock is held across store I/O, which only
// ever blocks that same user's next event.
type dispatcher struct {
	flows  domain.ProfileFlowUsecase
	swipes domain.SwipeUsecase

	mu    sync.Mutex
	locks map[int64]*userLock
}

// userLock is reference-counted so entries can be evicted from the lock map
// once the last waiter for that user is gone.
type userLock struct {
	sync.Mutex
	refs int
}

func NewDispatcher(flows domain.ProfileFlowUsecase, swipes domain.SwipeUsecase) domain.EventDispatcher {
	return &dispatcher{
		flows:  flows,
		swipes: swipes,
		locks:  make(map[int64]*userLock),
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, event domain.Event) (*domain.Reply, error) {
	lock := d.acquire(event.UserID)
	defer d.release(event.UserID, lock)

	switch event.Kind {
	case domain.EventCommand:
		return d.handleCommand(ctx, event)
	case domain.EventChoice:
		return d.handleChoice(ctx, event)
	case domain.EventText:
		return d.handleText(ctx, event)
	}
	return &domain.Reply{Kind: domain.ReplyFallback}, nil
}

func (d *dispatcher) acquire(userID int64) *userLock {
	d.mu.Lock()
	lock, ok := d.locks[userID]
	if !ok {
		lock = &userLock{}
		d.locks[userID] = lock
	}
	lock.refs++
	d.mu.Unlock()

	lock.Lock()
	return lock
}

func (d *dispatcher) release(userID int64, lock *userLock) {
	lock.Unlock()

	d.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(d.locks, userID)
	}
	d.mu.Unlock()
}

func (d *dispatcher) handleCommand(ctx context.Context, event domain.Event) (*domain.Reply, error) {
	switch event.Payload {
	case domain.CommandStart:
		return &domain.Reply{Kind: domain.ReplyWelcome}, nil
	case domain.CommandHelp:
		return &domain.Reply{Kind: domain.ReplyHelp}, nil
	case domain.CommandProfile:
		prompt, err := d.flows.StartProfile(ctx, event.UserID)
		if err != nil {
			return nil, d.systemError(event, err)
		}
		return &domain.Reply{Kind: domain.ReplyPrompt, Step: prompt.Step, Choices: prompt.Choices}, nil
	case domain.CommandSearch:
		card, err := d.swipes.PresentNext(ctx, event.UserID)
		if errors.Is(err, domain.ErrNoProfile) {
			return &domain.Reply{Kind: domain.ReplyNoProfile}, nil
		}
		if err != nil {
			return nil, d.systemError(event, err)
		}
		return &domain.Reply{Kind: domain.ReplyVacancy, Vacancy: card.Vacancy, Choices: card.Choices}, nil
	case domain.CommandHistory:
		records, err := d.swipes.History(ctx, event.UserID)
		if err != nil {
			return nil, d.systemError(event, err)
		}
		return &domain.Reply{Kind: domain.ReplyHistory, History: records}, nil
	}
	return &domain.Reply{Kind: domain.ReplyFallback}, nil
}

func (d *dispatcher) handleChoice(ctx context.Context, event domain.Event) (*domain.Reply, error) {
	switch event.Payload {
	case domain.TokenSwipeLike, domain.TokenSwipeSkip:
		decision := domain.DecisionAccepted
		if event.Payload == domain.TokenSwipeSkip {
			decision = domain.DecisionRejected
		}
		outcome, err := d.swipes.Decide(ctx, event.UserID, decision)
		if errors.Is(err, domain.ErrNoActiveItem) {
			return &domain.Reply{Kind: domain.ReplyNoVacancy}, nil
		}
		if err != nil {
			return nil, d.systemError(event, err)
		}
		return &domain.Reply{
			Kind:     domain.ReplyDecision,
			Decision: outcome.Decision,
			Vacancy:  outcome.Vacancy,
			ApplyURL: outcome.ApplyURL,
		}, nil
	}
	// Profile-step choice: strip the callback prefix, the validators work on
	// bare tokens.
	token := strings.TrimPrefix(event.Payload, "exp_")
	token = strings.TrimPrefix(token, "format_")
	return d.submit(ctx, event, token)
}

func (d *dispatcher) handleText(ctx context.Context, event domain.Event) (*domain.Reply, error) {
	return d.submit(ctx, event, event.Payload)
}

func (d *dispatcher) submit(ctx context.Context, event domain.Event, input string) (*domain.Reply, error) {
	prompt, err := d.flows.Submit(ctx, event.UserID, input)
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			return &domain.Reply{Kind: domain.ReplyRejected, Reason: vErr.Reason, Floor: vErr.Floor}, nil
		}
		if errors.Is(err, domain.ErrNoActiveFlow) {
			return &domain.Reply{Kind: domain.ReplyFallback}, nil
		}
		return nil, d.systemError(event, err)
	}
	if prompt.Done {
		return &domain.Reply{Kind: domain.ReplyProfileSaved, Profile: prompt.Profile}, nil
	}
	return &domain.Reply{Kind: domain.ReplyPrompt, Step: prompt.Step, Choices: prompt.Choices}, nil
}

// systemError logs the failure with enough context for operator diagnosis
// and converts it to a generic retry-later error for the user. It must not
// take down event processing for other users; the handler renders it as a
// normal (if unhappy) reply.
func (d *dispatcher) systemError(event domain.Event, err error) error {
	log := logger.With("dispatcher")
	var pErr *domain.PersistenceError
	if errors.As(err, &pErr) {
		log.Error("persistence failure", "user_id", pErr.UserID, "operation", pErr.Op, "error", pErr.Err)
	} else {
		log.Error("event processing failure", "user_id", event.UserID, "kind", event.Kind, "error", err)
	}
	return apperror.Unavailable("Something went wrong. Please try again later.", err)
}
