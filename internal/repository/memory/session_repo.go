// Package memory holds the default in-process session repository. Sessions
// are lost on restart; configure Redis for durability.
package memory

import (
	"context"
	"sync"

	"go-jobswipe-backend/internal/domain"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

func NewSessionRepository() domain.SessionRepository {
	return &sessionRepository{
		sessions: make(map[int64]domain.Session),
	}
}

func (r *sessionRepository) Get(_ context.Context, userID int64) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[userID]
	if !ok {
		return nil, nil
	}
	// Copy out so callers cannot mutate the stored value in place
	out := sess
	return &out, nil
}

func (r *sessionRepository) Set(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = *session
	return nil
}

func (r *sessionRepository) Clear(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}
